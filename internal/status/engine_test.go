package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/statforge/internal/gamedata"
)

func strongestCfg() gamedata.DotConfig {
	return gamedata.DotConfig{
		Ailment:           gamedata.Burn,
		BaseDuration:      4.0,
		TickRate:          0.5,
		BaseDamagePercent: 0.25,
		DamageType:        gamedata.Fire,
		StackPolicy:       gamedata.StackStrongestOnly,
	}
}

func unlimitedCfg() gamedata.DotConfig {
	return gamedata.DotConfig{
		Ailment:           gamedata.Poison,
		BaseDuration:      2.0,
		TickRate:          0.33,
		BaseDamagePercent: 0.2,
		DamageType:        gamedata.Chaos,
		StackPolicy:       gamedata.StackUnlimited,
	}
}

func limitedCfg(max int, eff float64) gamedata.DotConfig {
	return gamedata.DotConfig{
		Ailment:            gamedata.Bleed,
		BaseDuration:       5.0,
		TickRate:           1.0,
		BaseDamagePercent:  0.2,
		DamageType:         gamedata.Physical,
		StackPolicy:        gamedata.StackLimited,
		MaxStacks:          max,
		StackEffectiveness: eff,
		MovingMultiplier:   2.0,
	}
}

func TestApplyStrongestOnlyKeepsStronger(t *testing.T) {
	cfg := strongestCfg()

	effects := Apply(nil, Application{Kind: gamedata.Burn, Magnitude: 10}, cfg)
	require.Len(t, effects, 1)

	// Tick down, then reapply a weaker instance: magnitude kept,
	// duration refreshed.
	effects, _ = Tick(effects, 1.5, false, gamedata.MustLoadDotRegistry())
	assert.InDelta(t, 2.5, effects[0].Remaining, 1e-9)

	effects = Apply(effects, Application{Kind: gamedata.Burn, Magnitude: 5}, cfg)
	require.Len(t, effects, 1)
	assert.Equal(t, 10.0, effects[0].Magnitude)
	assert.InDelta(t, 4.0, effects[0].Remaining, 1e-9)
}

func TestApplyStrongestOnlyReplacesWithStronger(t *testing.T) {
	cfg := strongestCfg()

	effects := Apply(nil, Application{Kind: gamedata.Burn, Magnitude: 10}, cfg)
	effects = Apply(effects, Application{Kind: gamedata.Burn, Magnitude: 25}, cfg)

	require.Len(t, effects, 1)
	assert.Equal(t, 25.0, effects[0].Magnitude)
	assert.InDelta(t, 4.0, effects[0].Remaining, 1e-9)

	// Equal magnitude does not replace.
	first := effects[0].InstanceID
	effects = Apply(effects, Application{Kind: gamedata.Burn, Magnitude: 25}, cfg)
	require.Len(t, effects, 1)
	assert.Equal(t, first, effects[0].InstanceID)
}

func TestApplyUnlimitedStacks(t *testing.T) {
	cfg := unlimitedCfg()

	var effects []Effect
	for i := 0; i < 5; i++ {
		effects = Apply(effects, Application{Kind: gamedata.Poison, Magnitude: 10}, cfg)
	}
	assert.Equal(t, 5, StacksOf(effects, gamedata.Poison))
	for _, e := range effects {
		assert.Equal(t, 1.0, e.Effectiveness)
	}
}

func TestApplyLimitedFIFOEviction(t *testing.T) {
	cfg := limitedCfg(2, 0.5)

	effects := Apply(nil, Application{Kind: gamedata.Bleed, Magnitude: 100, SourceID: "a"}, cfg)
	effects = Apply(effects, Application{Kind: gamedata.Bleed, Magnitude: 100, SourceID: "b"}, cfg)
	require.Equal(t, 2, StacksOf(effects, gamedata.Bleed))

	// First stack full strength, second discounted.
	assert.Equal(t, 1.0, effects[0].Effectiveness)
	assert.Equal(t, 0.5, effects[1].Effectiveness)

	// Third application evicts the oldest.
	effects = Apply(effects, Application{Kind: gamedata.Bleed, Magnitude: 100, SourceID: "c"}, cfg)
	require.Equal(t, 2, StacksOf(effects, gamedata.Bleed))
	assert.Equal(t, "b", effects[0].SourceID)
	assert.Equal(t, "c", effects[1].SourceID)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	cfg := unlimitedCfg()
	original := Apply(nil, Application{Kind: gamedata.Poison, Magnitude: 10}, cfg)

	grown := Apply(original, Application{Kind: gamedata.Poison, Magnitude: 20}, cfg)
	assert.Len(t, original, 1)
	assert.Len(t, grown, 2)
}

func TestTickAccruesDamage(t *testing.T) {
	dots := gamedata.MustLoadDotRegistry()
	cfg, ok := dots.Get(gamedata.Poison)
	require.True(t, ok)

	effects := Apply(nil, Application{Kind: gamedata.Poison, Magnitude: 100}, cfg)

	// dps = 0.2 * 100 = 20; one second accrues 20.
	surviving, result := Tick(effects, 1.0, false, dots)
	require.Len(t, surviving, 1)
	assert.InDelta(t, 20.0, result.Damage, 1e-9)
	assert.InDelta(t, 20.0, result.ByType[gamedata.Chaos], 1e-9)
	assert.InDelta(t, 1.0, surviving[0].Remaining, 1e-9)
}

func TestTickDotBonusAndMoving(t *testing.T) {
	dots := gamedata.MustLoadDotRegistry()
	cfg, _ := dots.Get(gamedata.Bleed)

	effects := Apply(nil, Application{Kind: gamedata.Bleed, Magnitude: 100, DotBonus: 0.5}, cfg)

	// dps = 0.2 * 100 * 1.5 = 30; moving doubles it.
	_, still := Tick(effects, 1.0, false, dots)
	assert.InDelta(t, 30.0, still.Damage, 1e-9)

	_, moving := Tick(effects, 1.0, true, dots)
	assert.InDelta(t, 60.0, moving.Damage, 1e-9)
}

func TestTickPartialWindowOnExpiry(t *testing.T) {
	dots := gamedata.MustLoadDotRegistry()
	cfg, _ := dots.Get(gamedata.Poison)

	effects := Apply(nil, Application{Kind: gamedata.Poison, Magnitude: 100, Duration: 0.5}, cfg)

	// Window of 2s but only 0.5s remained: accrue dps * 0.5 and expire.
	surviving, result := Tick(effects, 2.0, false, dots)
	assert.Empty(t, surviving)
	assert.InDelta(t, 10.0, result.Damage, 1e-9)
	require.Len(t, result.Expired, 1)
	assert.Equal(t, gamedata.Poison, result.Expired[0].Kind)
}

func TestTickExactBoundaryRemoves(t *testing.T) {
	dots := gamedata.MustLoadDotRegistry()
	cfg, _ := dots.Get(gamedata.Poison)

	effects := Apply(nil, Application{Kind: gamedata.Poison, Magnitude: 100}, cfg)
	surviving, _ := Tick(effects, cfg.BaseDuration, false, dots)
	assert.Empty(t, surviving)
}

func TestTickZeroElapsedIsNoop(t *testing.T) {
	dots := gamedata.MustLoadDotRegistry()
	cfg, _ := dots.Get(gamedata.Poison)

	effects := Apply(nil, Application{Kind: gamedata.Poison, Magnitude: 100}, cfg)
	surviving, result := Tick(effects, 0, false, dots)
	assert.Equal(t, 0.0, result.Damage)
	require.Len(t, surviving, 1)
	assert.InDelta(t, cfg.BaseDuration, surviving[0].Remaining, 1e-9)
}

func TestTickPureDebuffDealsNothing(t *testing.T) {
	dots := gamedata.MustLoadDotRegistry()
	cfg, _ := dots.Get(gamedata.Chill)

	effects := Apply(nil, Application{Kind: gamedata.Chill, Magnitude: 50}, cfg)
	surviving, result := Tick(effects, 1.0, false, dots)
	assert.Equal(t, 0.0, result.Damage)
	require.Len(t, surviving, 1)
}
