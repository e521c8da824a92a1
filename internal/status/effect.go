// Package status implements status effect instances and the pure engine
// that stacks and ticks them. Nothing here mutates its inputs: Apply and
// Tick return fresh slices so callers can keep snapshots.
package status

import (
	"github.com/google/uuid"

	"github.com/samdwyer/statforge/internal/gamedata"
)

// Effect is one live instance of an ailment on a target.
type Effect struct {
	// InstanceID distinguishes instances of the same kind.
	InstanceID uuid.UUID
	Kind       gamedata.Ailment
	// DamageType the ticks count as, copied from the kind's config.
	DamageType gamedata.DamageType

	// Magnitude is the status damage the instance was applied with; tick
	// damage scales from it.
	Magnitude float64
	// Effectiveness discounts later stacks under the limited policy.
	Effectiveness float64
	// DotBonus is the attacker's damage-over-time bonus frozen at
	// application time.
	DotBonus float64

	// Remaining and Total are seconds; Remaining counts down.
	Remaining float64
	Total     float64

	// SourceID names who applied the instance.
	SourceID string
}

// Application is a request to put an ailment on a target. The stacking
// policy of the ailment's config decides what actually happens.
type Application struct {
	Kind      gamedata.Ailment
	Magnitude float64
	// Duration overrides the config's base duration when positive.
	Duration float64
	DotBonus float64
	SourceID string
}

// newEffect materializes an application under the given config.
func newEffect(app Application, cfg gamedata.DotConfig, effectiveness float64) Effect {
	duration := cfg.BaseDuration
	if app.Duration > 0 {
		duration = app.Duration
	}
	return Effect{
		InstanceID:    uuid.New(),
		Kind:          app.Kind,
		DamageType:    cfg.DamageType,
		Magnitude:     app.Magnitude,
		Effectiveness: effectiveness,
		DotBonus:      app.DotBonus,
		Remaining:     duration,
		Total:         duration,
		SourceID:      app.SourceID,
	}
}

// EffectiveMagnitude is the magnitude after the stack discount.
func (e Effect) EffectiveMagnitude() float64 {
	return e.Magnitude * e.Effectiveness
}

// Active reports whether the instance still has time left.
func (e Effect) Active() bool { return e.Remaining > 0 }
