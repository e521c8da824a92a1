// Package combat resolves damage packets against a defender's stat block
// and ticks the status effects that land.
package combat

import "github.com/samdwyer/statforge/internal/gamedata"

// ResistanceMitigation returns the damage left after resistance, with
// penetration subtracted first. Effective resistance is clamped between
// the configured floor and cap; negative values amplify the hit.
func ResistanceMitigation(amount, resistance, penetration float64, c gamedata.ResistanceConstants) float64 {
	effective := resistance - penetration
	if effective > c.MaxCap {
		effective = c.MaxCap
	}
	if effective < c.MinValue {
		effective = c.MinValue
	}
	return amount * (1 - effective/100)
}

// ArmourReduction returns the physical damage left after armour. The
// reduction fraction is armour / (armour + K*damage), so armour mitigates
// small hits far better than big ones.
func ArmourReduction(armour, damage float64, c gamedata.ArmourConstants) float64 {
	if armour <= 0 || damage <= 0 {
		return damage
	}
	reduction := armour / (armour + c.DamageConstant*damage)
	return damage * (1 - reduction)
}

// HitChance returns the probability an attack lands, accuracy against
// evasion. Zero evasion always gets hit; zero accuracy never lands
// against any evasion.
func HitChance(accuracy, evasion float64) float64 {
	if evasion <= 0 {
		return 1
	}
	if accuracy <= 0 {
		return 0
	}
	return accuracy / (accuracy + evasion)
}

// EvasionCap returns the per-packet damage ceiling in cap mode:
// accuracy / (1 + evasion/scale). Higher accuracy raises the ceiling,
// higher evasion lowers it.
func EvasionCap(accuracy, evasion float64, c gamedata.EvasionConstants) float64 {
	if accuracy <= 0 {
		return 0
	}
	if evasion <= 0 {
		return accuracy
	}
	return accuracy / (1 + evasion/c.ScaleFactor)
}
