// Package sim pits fighter archetypes against each other to exercise the
// full pipeline: stat aggregation, packet generation, defense resolution
// and status ticking.
package sim

// Config holds simulation options.
type Config struct {
	// Seed for random number generation, for reproducible duels.
	// A seed of 0 means a random seed will be generated.
	Seed int64
	// MaxDuration caps a duel in simulated seconds; hitting it is a draw.
	MaxDuration float64
	// TickInterval is the simulation step in seconds.
	TickInterval float64
}

// DefaultConfig returns sensible simulation defaults.
func DefaultConfig() Config {
	return Config{
		MaxDuration:  120,
		TickInterval: 0.1,
	}
}

func (c *Config) normalize() {
	if c.MaxDuration <= 0 {
		c.MaxDuration = 120
	}
	if c.TickInterval <= 0 {
		c.TickInterval = 0.1
	}
}
