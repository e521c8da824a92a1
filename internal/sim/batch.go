package sim

import (
	"context"
	"math/rand"
	"runtime"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/samdwyer/statforge/internal/gamedata"
	"github.com/samdwyer/statforge/internal/telemetry"
)

// Matchup pairs two fighters for a duel.
type Matchup struct {
	A *Fighter
	B *Fighter
}

// AllPairs builds every unordered matchup from a roster.
func AllPairs(fighters []*Fighter) []Matchup {
	var pairs []Matchup
	for i := 0; i < len(fighters); i++ {
		for j := i + 1; j < len(fighters); j++ {
			pairs = append(pairs, Matchup{A: fighters[i], B: fighters[j]})
		}
	}
	return pairs
}

// RunMatchups runs every matchup concurrently, one duel per goroutine,
// bounded by CPU count. Each duel gets its own RNG derived from the
// config seed so the batch is reproducible regardless of scheduling.
func RunMatchups(ctx context.Context, matchups []Matchup, dots *gamedata.DotRegistry, constants gamedata.Constants, cfg Config) ([]*DuelResult, error) {
	tracer := telemetry.Tracer("sim")
	ctx, span := tracer.Start(ctx, "sim.batch")
	defer span.End()
	span.SetAttributes(attribute.Int("batch.matchups", len(matchups)))

	results := make([]*DuelResult, len(matchups))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, m := range matchups {
		g.Go(func() error {
			rng := rand.New(rand.NewSource(cfg.Seed + int64(i)))
			results[i] = Duel(ctx, m.A, m.B, dots, constants, cfg, rng)
			return ctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Standings tallies wins per fighter across a batch.
func Standings(results []*DuelResult) map[string]int {
	wins := make(map[string]int)
	for _, r := range results {
		if r != nil && !r.Draw() {
			wins[r.Winner]++
		}
	}
	return wins
}
