// Package main is the entry point for the statforge combat simulator.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"github.com/joho/godotenv"

	"github.com/samdwyer/statforge/data"
	"github.com/samdwyer/statforge/internal/damage"
	"github.com/samdwyer/statforge/internal/gamedata"
	"github.com/samdwyer/statforge/internal/sim"
	"github.com/samdwyer/statforge/internal/telemetry"
)

func main() {
	seed := flag.Int64("seed", 0, "simulation seed (0 = time-based)")
	duration := flag.Float64("max-duration", 120, "duel duration cap in seconds")
	flag.Parse()

	// Load .env file for local development
	// This makes HONEYCOMB_STATFORGE_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Simulation will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	if err := run(ctx, *seed, *duration); err != nil {
		log.Fatalf("Simulation error: %v", err)
	}
}

func run(ctx context.Context, seed int64, duration float64) error {
	skills, err := gamedata.LoadSkillRegistry()
	if err != nil {
		return fmt.Errorf("loading skills: %w", err)
	}
	dots, err := gamedata.LoadDotRegistry()
	if err != nil {
		return fmt.Errorf("loading dot configs: %w", err)
	}
	constants, err := gamedata.LoadConstants()
	if err != nil {
		return fmt.Errorf("loading constants: %w", err)
	}

	defs, err := data.LoadFighters()
	if err != nil {
		return fmt.Errorf("loading fighters: %w", err)
	}
	fighters := make([]*sim.Fighter, 0, len(defs))
	for _, def := range defs {
		f, err := sim.BuildFighter(def, skills, constants)
		if err != nil {
			return err
		}
		fighters = append(fighters, f)
	}

	log.Printf("Loaded %d skills, %d ailments, %d fighters", skills.Len(), dots.Len(), len(fighters))
	for _, f := range fighters {
		dps := damage.EstimateDPS(f.Block, f.Skill, dots)
		log.Printf("  %-12s %-18s est. %.1f dps, %.0f life",
			f.Def.Name, f.Skill.Name, dps, f.Block.MaxLife.Compute())
	}

	cfg := sim.DefaultConfig()
	cfg.Seed = seed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.MaxDuration = duration

	results, err := sim.RunMatchups(ctx, sim.AllPairs(fighters), dots, constants, cfg)
	if err != nil {
		return err
	}

	for _, r := range results {
		outcome := "draw"
		if !r.Draw() {
			outcome = r.Winner + " wins"
		}
		log.Printf("%s vs %s: %s after %.1fs (%d packets)", r.A, r.B, outcome, r.Elapsed, r.Packets)
	}

	standings := sim.Standings(results)
	names := make([]string, 0, len(standings))
	for name := range standings {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if standings[names[i]] != standings[names[j]] {
			return standings[names[i]] > standings[names[j]]
		}
		return names[i] < names[j]
	})
	log.Printf("Standings (seed %d):", cfg.Seed)
	for _, name := range names {
		log.Printf("  %-12s %d wins", name, standings[name])
	}
	return nil
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Always set headers from our API key - the .env file may have an unexpanded
	// variable reference that doesn't work, so we construct it properly here
	apiKey := os.Getenv("HONEYCOMB_STATFORGE_API_KEY")
	dataset := os.Getenv("HONEYCOMB_STATFORGE_DATASET")
	if dataset == "" {
		dataset = "statforge" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
