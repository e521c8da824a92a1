package combat

import (
	"fmt"
	"strings"

	"github.com/samdwyer/statforge/internal/gamedata"
	"github.com/samdwyer/statforge/internal/status"
)

// DamageTaken is the mitigation breakdown for one damage type of a hit.
type DamageTaken struct {
	Type      gamedata.DamageType
	Raw       float64
	Mitigated float64
	Final     float64
}

// MitigationPercent is how much of the raw damage was prevented.
func (d DamageTaken) MitigationPercent() float64 {
	if d.Raw <= 0 {
		return 0
	}
	p := d.Mitigated / d.Raw * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Result is the full accounting of one packet resolved against a
// defender.
type Result struct {
	Taken       []DamageTaken
	TotalDamage float64

	BlockedByES        float64
	ReducedByArmour    float64
	ReducedByResists   float64
	PreventedByEvasion float64
	// Evaded is set when the evasion step prevented damage: the whole
	// packet in chance mode, the overflow in cap mode.
	Evaded bool

	EffectsApplied []status.Effect

	ESBefore   float64
	ESAfter    float64
	LifeBefore float64
	LifeAfter  float64

	KillingBlow bool
}

// TotalRaw sums the pre-mitigation damage.
func (r *Result) TotalRaw() float64 {
	total := 0.0
	for _, d := range r.Taken {
		total += d.Raw
	}
	return total
}

// TotalMitigated sums everything that was prevented.
func (r *Result) TotalMitigated() float64 {
	total := 0.0
	for _, d := range r.Taken {
		total += d.Mitigated
	}
	return total
}

// OfType returns the breakdown for one damage type.
func (r *Result) OfType(d gamedata.DamageType) (DamageTaken, bool) {
	for _, taken := range r.Taken {
		if taken.Type == d {
			return taken, true
		}
	}
	return DamageTaken{}, false
}

// LifeChange is negative when life was lost.
func (r *Result) LifeChange() float64 { return r.LifeAfter - r.LifeBefore }

// ESChange is negative when energy shield was consumed.
func (r *Result) ESChange() float64 { return r.ESAfter - r.ESBefore }

// Summary renders a one-line account for logs.
func (r *Result) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%.1f damage", r.TotalDamage)
	if r.Evaded {
		fmt.Fprintf(&b, " (%.1f evaded)", r.PreventedByEvasion)
	}
	if r.BlockedByES > 0 {
		fmt.Fprintf(&b, ", %.1f absorbed by ES", r.BlockedByES)
	}
	if len(r.EffectsApplied) > 0 {
		names := make([]string, len(r.EffectsApplied))
		for i, e := range r.EffectsApplied {
			names[i] = e.Kind.String()
		}
		fmt.Fprintf(&b, ", applied %s", strings.Join(names, "+"))
	}
	if r.KillingBlow {
		b.WriteString(", killing blow")
	}
	return b.String()
}
