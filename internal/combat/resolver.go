package combat

import (
	"github.com/samdwyer/statforge/internal/damage"
	"github.com/samdwyer/statforge/internal/dice"
	"github.com/samdwyer/statforge/internal/gamedata"
	"github.com/samdwyer/statforge/internal/stat"
	"github.com/samdwyer/statforge/internal/status"
)

// Resolver applies damage packets to defenders under a fixed rule set.
type Resolver struct {
	dots      *gamedata.DotRegistry
	constants gamedata.Constants
}

// NewResolver builds a resolver from loaded configuration.
func NewResolver(dots *gamedata.DotRegistry, constants gamedata.Constants) *Resolver {
	return &Resolver{dots: dots, constants: constants}
}

// Resolve applies a packet to a defender and returns the new defender
// state plus the full accounting. The input defender is never mutated.
//
// Resolution order: resistances (with penetration) per type, armour on
// physical, the evasion step, then energy shield before life. Status
// applications are rolled last, each with chance statusDamage/maxLife.
func (r *Resolver) Resolve(defender *stat.Block, packet *damage.Packet, roller dice.Roller) (*stat.Block, *Result) {
	next := defender.Clone()
	result := &Result{
		ESBefore:   next.CurrentES,
		LifeBefore: next.CurrentLife,
	}

	for _, d := range gamedata.AllDamageTypes() {
		raw := packet.DamageOf(d)
		if raw <= 0 {
			continue
		}
		final := raw
		if d != gamedata.Physical {
			final = ResistanceMitigation(raw, next.Resistance(d), packet.PenetrationOf(d), r.constants.Resistance)
			if reduced := raw - final; reduced > 0 {
				result.ReducedByResists += reduced
			}
		}
		result.Taken = append(result.Taken, DamageTaken{
			Type:      d,
			Raw:       raw,
			Mitigated: max(raw-final, 0),
			Final:     final,
		})
	}

	for i := range result.Taken {
		if result.Taken[i].Type != gamedata.Physical || result.Taken[i].Final <= 0 {
			continue
		}
		afterArmour := ArmourReduction(next.Armour.Compute(), result.Taken[i].Final, r.constants.Armour)
		reduced := result.Taken[i].Final - afterArmour
		result.ReducedByArmour = reduced
		result.Taken[i].Mitigated += reduced
		result.Taken[i].Final = afterArmour
	}

	r.applyEvasion(next, packet, result, roller)

	result.TotalDamage = 0
	for _, d := range result.Taken {
		result.TotalDamage += d.Final
	}

	remaining := result.TotalDamage
	if next.CurrentES > 0 && remaining > 0 {
		absorbed := min(remaining, next.CurrentES)
		next.CurrentES -= absorbed
		remaining -= absorbed
		result.BlockedByES = absorbed
	}
	if remaining > 0 {
		next.CurrentLife -= remaining
	}
	if next.CurrentLife <= 0 {
		next.CurrentLife = 0
		result.KillingBlow = true
	}
	result.ESAfter = next.CurrentES
	result.LifeAfter = next.CurrentLife

	r.applyStatus(next, packet, result, roller)
	return next, result
}

// applyEvasion runs the configured evasion model over the mitigated
// totals. Chance mode rolls once per packet and evades everything on a
// miss; cap mode deterministically truncates damage above the ceiling.
// Either way, per-type amounts shrink proportionally.
func (r *Resolver) applyEvasion(next *stat.Block, packet *damage.Packet, result *Result, roller dice.Roller) {
	total := 0.0
	for _, d := range result.Taken {
		total += d.Final
	}
	if total <= 0 {
		return
	}

	evasion := next.Evasion.Compute()
	kept := total
	switch r.constants.Evasion.Mode {
	case gamedata.EvasionModeCap:
		ceiling := EvasionCap(packet.Accuracy, evasion, r.constants.Evasion)
		if total > ceiling {
			kept = ceiling
		}
	default:
		if evasion > 0 && roller.Float64() >= HitChance(packet.Accuracy, evasion) {
			kept = 0
		}
	}
	if kept >= total {
		return
	}

	result.Evaded = true
	result.PreventedByEvasion = total - kept
	ratio := kept / total
	for i := range result.Taken {
		evaded := result.Taken[i].Final * (1 - ratio)
		result.Taken[i].Mitigated += evaded
		result.Taken[i].Final *= ratio
	}
}

// applyStatus rolls each pending ailment against the defender's max
// life and applies the ones that land under their stacking policy.
func (r *Resolver) applyStatus(next *stat.Block, packet *damage.Packet, result *Result, roller dice.Roller) {
	maxLife := next.MaxLife.Compute()
	for _, pending := range packet.Ailments {
		chance := ApplyChance(pending.StatusDamage, maxLife)
		if chance <= 0 || roller.Float64() >= chance {
			continue
		}
		cfg, ok := r.dots.Get(pending.Kind)
		if !ok {
			continue
		}
		before := len(next.Effects)
		next.Effects = status.Apply(next.Effects, status.Application{
			Kind:      pending.Kind,
			Magnitude: pending.StatusDamage,
			Duration:  pending.Duration,
			DotBonus:  pending.DotBonus,
			SourceID:  packet.SourceID,
		}, cfg)
		// Report the instance that landed; under strongest-only a weaker
		// application refreshes instead of appending.
		if len(next.Effects) > before {
			result.EffectsApplied = append(result.EffectsApplied, next.Effects[len(next.Effects)-1])
		} else if strongest, ok := status.StrongestOf(next.Effects, pending.Kind); ok {
			result.EffectsApplied = append(result.EffectsApplied, strongest)
		}
	}
}

// ApplyChance is the probability a status application lands: the status
// damage as a fraction of the defender's max life, capped at certainty.
// A defender with no life pool cannot be afflicted.
func ApplyChance(statusDamage, maxLife float64) float64 {
	if maxLife <= 0 || statusDamage <= 0 {
		return 0
	}
	if statusDamage >= maxLife {
		return 1
	}
	return statusDamage / maxLife
}

// TickReport accounts for one status tick pass against a defender.
type TickReport struct {
	Damage      float64
	ByKind      map[gamedata.Ailment]float64
	Expired     []status.Effect
	KillingBlow bool
}

// TickStatus advances the defender's status effects by elapsed seconds,
// applying the accrued damage straight to life. Tick damage bypasses
// armour, resistances and evasion. Returns the new defender state.
func (r *Resolver) TickStatus(defender *stat.Block, elapsed float64, moving bool) (*stat.Block, *TickReport) {
	next := defender.Clone()
	surviving, ticked := status.Tick(next.Effects, elapsed, moving, r.dots)
	next.Effects = surviving

	report := &TickReport{
		Damage:  ticked.Damage,
		ByKind:  ticked.ByKind,
		Expired: ticked.Expired,
	}
	if ticked.Damage > 0 {
		next.CurrentLife -= ticked.Damage
		if next.CurrentLife <= 0 {
			next.CurrentLife = 0
			report.KillingBlow = true
		}
	}
	return next, report
}
