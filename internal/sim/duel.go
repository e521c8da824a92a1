package sim

import (
	"context"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/statforge/internal/combat"
	"github.com/samdwyer/statforge/internal/damage"
	"github.com/samdwyer/statforge/internal/gamedata"
	"github.com/samdwyer/statforge/internal/telemetry"
)

// DuelResult is the outcome of one duel.
type DuelResult struct {
	A string
	B string
	// Winner is empty on a draw (duration cap reached).
	Winner  string
	Elapsed float64
	// Packets is how many skill uses were resolved.
	Packets int
	// DamageByFighter is total post-mitigation damage dealt, keyed by
	// fighter ID, status ticks included.
	DamageByFighter map[string]float64
}

// Draw reports whether the duel ran out the clock.
func (r *DuelResult) Draw() bool { return r.Winner == "" }

// Duel runs two fighters against each other until one dies or the
// duration cap is hit. Fighters act on their own attack timers; status
// effects tick every simulation step.
func Duel(ctx context.Context, a, b *Fighter, dots *gamedata.DotRegistry, constants gamedata.Constants, cfg Config, rng *rand.Rand) *DuelResult {
	cfg.normalize()
	tracer := telemetry.Tracer("sim")
	ctx, span := tracer.Start(ctx, "sim.duel")
	defer span.End()
	span.SetAttributes(
		attribute.String("fighter.a", a.Def.ID),
		attribute.String("fighter.b", b.Def.ID),
	)

	resolver := combat.NewResolver(dots, constants)
	result := &DuelResult{
		A:               a.Def.ID,
		B:               b.Def.ID,
		DamageByFighter: map[string]float64{a.Def.ID: 0, b.Def.ID: 0},
	}

	// Work on copies so callers can reuse the fighters.
	blockA := a.Block.Clone()
	blockB := b.Block.Clone()
	cooldownA := a.attackInterval()
	cooldownB := b.attackInterval()

	for t := 0.0; t < cfg.MaxDuration; t += cfg.TickInterval {
		select {
		case <-ctx.Done():
			result.Elapsed = t
			return result
		default:
		}

		var report *combat.TickReport
		blockA, report = resolver.TickStatus(blockA, cfg.TickInterval, false)
		result.DamageByFighter[b.Def.ID] += report.Damage
		blockB, report = resolver.TickStatus(blockB, cfg.TickInterval, false)
		result.DamageByFighter[a.Def.ID] += report.Damage

		if done := checkDeath(result, a, b, blockA.IsAlive(), blockB.IsAlive(), t); done {
			break
		}

		cooldownA -= cfg.TickInterval
		for cooldownA <= 0 && blockB.IsAlive() {
			packet := damage.Generate(blockA, a.Skill, dots, rng)
			var res *combat.Result
			blockB, res = resolver.Resolve(blockB, packet, rng)
			result.Packets++
			result.DamageByFighter[a.Def.ID] += res.TotalDamage
			cooldownA += a.attackInterval()
		}

		cooldownB -= cfg.TickInterval
		for cooldownB <= 0 && blockA.IsAlive() {
			packet := damage.Generate(blockB, b.Skill, dots, rng)
			var res *combat.Result
			blockA, res = resolver.Resolve(blockA, packet, rng)
			result.Packets++
			result.DamageByFighter[b.Def.ID] += res.TotalDamage
			cooldownB += b.attackInterval()
		}

		if done := checkDeath(result, a, b, blockA.IsAlive(), blockB.IsAlive(), t); done {
			break
		}
		result.Elapsed = t + cfg.TickInterval
	}

	span.SetAttributes(
		attribute.String("duel.winner", result.Winner),
		attribute.Float64("duel.elapsed", result.Elapsed),
		attribute.Int("duel.packets", result.Packets),
	)
	return result
}

// checkDeath settles the outcome. Simultaneous deaths count as a draw.
func checkDeath(result *DuelResult, a, b *Fighter, aAlive, bAlive bool, t float64) bool {
	switch {
	case aAlive && bAlive:
		return false
	case aAlive:
		result.Winner = a.Def.ID
	case bAlive:
		result.Winner = b.Def.ID
	}
	result.Elapsed = t
	return true
}
