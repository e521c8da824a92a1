package status

import (
	"github.com/samdwyer/statforge/internal/gamedata"
)

// Apply merges a new application into the existing effect list according
// to the ailment's stacking policy, returning a new slice. The input
// slice is never mutated.
func Apply(effects []Effect, app Application, cfg gamedata.DotConfig) []Effect {
	switch cfg.StackPolicy {
	case gamedata.StackStrongestOnly:
		return applyStrongest(effects, app, cfg)
	case gamedata.StackUnlimited:
		out := cloneEffects(effects)
		return append(out, newEffect(app, cfg, 1.0))
	case gamedata.StackLimited:
		return applyLimited(effects, app, cfg)
	default:
		return cloneEffects(effects)
	}
}

// applyStrongest keeps at most one instance per kind. A reapplication
// always refreshes the duration; the magnitude is replaced only when the
// newcomer is strictly stronger.
func applyStrongest(effects []Effect, app Application, cfg gamedata.DotConfig) []Effect {
	out := cloneEffects(effects)
	for i := range out {
		if out[i].Kind != app.Kind {
			continue
		}
		fresh := newEffect(app, cfg, 1.0)
		if app.Magnitude > out[i].Magnitude {
			out[i] = fresh
		} else {
			out[i].Remaining = fresh.Total
			out[i].Total = fresh.Total
		}
		return out
	}
	return append(out, newEffect(app, cfg, 1.0))
}

// applyLimited appends stacks up to MaxStacks, discounting every stack
// after the first by StackEffectiveness. When full, the oldest stack of
// the kind is evicted.
func applyLimited(effects []Effect, app Application, cfg gamedata.DotConfig) []Effect {
	out := cloneEffects(effects)

	count := 0
	oldest := -1
	for i := range out {
		if out[i].Kind != app.Kind {
			continue
		}
		count++
		if oldest == -1 {
			oldest = i
		}
	}

	effectiveness := 1.0
	if count > 0 {
		effectiveness = cfg.StackEffectiveness
		if effectiveness == 0 {
			effectiveness = 1.0
		}
	}

	if cfg.MaxStacks > 0 && count >= cfg.MaxStacks {
		out = append(out[:oldest], out[oldest+1:]...)
	}
	return append(out, newEffect(app, cfg, effectiveness))
}

// TickResult reports what one tick pass produced.
type TickResult struct {
	// Damage is the total accrued over the elapsed window.
	Damage float64
	// ByType splits the damage by the type each ailment ticks as.
	ByType map[gamedata.DamageType]float64
	// ByKind splits the damage per ailment.
	ByKind map[gamedata.Ailment]float64
	// Expired holds the instances that ran out during this pass.
	Expired []Effect
}

// Tick advances every effect by elapsed seconds and returns the surviving
// instances plus the damage accrued. Damage per second for an instance is
//
//	baseDamagePercent * magnitude * effectiveness * (1 + dotBonus) * moving
//
// and an instance contributes dps * min(elapsed, remaining) so a stack
// that expires mid-window only pays for the time it was up. An elapsed of
// zero (or less) is a no-op. Effects whose ailment has no config tick no
// damage but still count down.
func Tick(effects []Effect, elapsed float64, moving bool, dots *gamedata.DotRegistry) ([]Effect, TickResult) {
	result := TickResult{
		ByType: make(map[gamedata.DamageType]float64),
		ByKind: make(map[gamedata.Ailment]float64),
	}
	if elapsed <= 0 {
		return cloneEffects(effects), result
	}

	surviving := make([]Effect, 0, len(effects))
	for _, e := range effects {
		window := elapsed
		if e.Remaining < window {
			window = e.Remaining
		}

		if cfg, ok := dots.Get(e.Kind); ok && cfg.BaseDamagePercent > 0 && window > 0 {
			dps := cfg.BaseDamagePercent * e.EffectiveMagnitude() * (1 + e.DotBonus)
			if moving && cfg.MovingMultiplier > 0 {
				dps *= cfg.MovingMultiplier
			}
			dealt := dps * window
			result.Damage += dealt
			result.ByType[e.DamageType] += dealt
			result.ByKind[e.Kind] += dealt
		}

		e.Remaining -= elapsed
		if e.Remaining <= 0 {
			e.Remaining = 0
			result.Expired = append(result.Expired, e)
			continue
		}
		surviving = append(surviving, e)
	}
	return surviving, result
}

// StacksOf counts the live instances of a kind.
func StacksOf(effects []Effect, kind gamedata.Ailment) int {
	n := 0
	for i := range effects {
		if effects[i].Kind == kind {
			n++
		}
	}
	return n
}

// StrongestOf returns the highest-magnitude instance of a kind.
func StrongestOf(effects []Effect, kind gamedata.Ailment) (Effect, bool) {
	best := -1
	for i := range effects {
		if effects[i].Kind != kind {
			continue
		}
		if best == -1 || effects[i].Magnitude > effects[best].Magnitude {
			best = i
		}
	}
	if best == -1 {
		return Effect{}, false
	}
	return effects[best], true
}

func cloneEffects(effects []Effect) []Effect {
	out := make([]Effect, len(effects))
	copy(out, effects)
	return out
}
