package combat

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/statforge/internal/damage"
	"github.com/samdwyer/statforge/internal/dice"
	"github.com/samdwyer/statforge/internal/gamedata"
	"github.com/samdwyer/statforge/internal/stat"
)

func newResolver(t *testing.T) *Resolver {
	t.Helper()
	return NewResolver(gamedata.MustLoadDotRegistry(), gamedata.DefaultConstants())
}

func firePacket(amount float64) *damage.Packet {
	p := damage.NewPacket("attacker", "test")
	p.Damages[gamedata.Fire] = amount
	p.Accuracy = 1000
	return p
}

func physicalPacket(amount float64) *damage.Packet {
	p := damage.NewPacket("attacker", "test")
	p.Damages[gamedata.Physical] = amount
	p.Accuracy = 1000
	return p
}

func TestResistanceMitigation(t *testing.T) {
	c := gamedata.DefaultConstants().Resistance

	assert.InDelta(t, 25.0, ResistanceMitigation(100, 75, 0, c), 1e-9)
	// Penetration subtracts before applying.
	assert.InDelta(t, 50.0, ResistanceMitigation(100, 75, 25, c), 1e-9)
	// Cap at 100%: full immunity.
	assert.InDelta(t, 0.0, ResistanceMitigation(100, 150, 0, c), 1e-9)
	// Floor at -200%: at most triple damage.
	assert.InDelta(t, 300.0, ResistanceMitigation(100, -500, 0, c), 1e-9)
	// Penetration can push below zero and amplify.
	assert.InDelta(t, 125.0, ResistanceMitigation(100, 0, 25, c), 1e-9)
}

func TestArmourReduction(t *testing.T) {
	c := gamedata.DefaultConstants().Armour

	// 1000 armour vs 100 damage: 1000/(1000+1000) = 50% reduction.
	assert.InDelta(t, 50.0, ArmourReduction(1000, 100, c), 1e-9)
	// Same armour against a big hit mitigates far less.
	assert.InDelta(t, 1000.0/11000.0, 1-ArmourReduction(1000, 1000, c)/1000.0, 1e-9)
	// No armour changes nothing.
	assert.InDelta(t, 100.0, ArmourReduction(0, 100, c), 1e-9)
}

func TestResolveFireHitAgainstResistance(t *testing.T) {
	r := newResolver(t)
	defender := stat.NewBlock("target")
	defender.CurrentLife = 100
	defender.MaxLife = stat.NewValue(100)
	defender.Resistances[gamedata.Fire].AddFlat(50)

	next, result := r.Resolve(defender, firePacket(60), dice.Fixed(0.99))

	assert.InDelta(t, 30.0, result.TotalDamage, 1e-9)
	assert.InDelta(t, 30.0, result.ReducedByResists, 1e-9)
	assert.InDelta(t, 70.0, next.CurrentLife, 1e-9)
	assert.False(t, result.KillingBlow)
	// Original defender untouched.
	assert.InDelta(t, 100.0, defender.CurrentLife, 1e-9)
}

func TestResolveArmourOnPhysicalOnly(t *testing.T) {
	r := newResolver(t)
	defender := stat.NewBlock("target")
	defender.CurrentLife = 1000
	defender.MaxLife = stat.NewValue(1000)
	defender.Armour.AddFlat(1000)

	_, result := r.Resolve(defender, physicalPacket(100), dice.Fixed(0.99))
	assert.InDelta(t, 50.0, result.TotalDamage, 1e-9)
	assert.InDelta(t, 50.0, result.ReducedByArmour, 1e-9)

	// Armour does nothing against fire.
	_, result = r.Resolve(defender, firePacket(100), dice.Fixed(0.99))
	assert.InDelta(t, 100.0, result.TotalDamage, 1e-9)
	assert.Equal(t, 0.0, result.ReducedByArmour)
}

func TestResolveEnergyShieldAbsorbsFirst(t *testing.T) {
	r := newResolver(t)
	defender := stat.NewBlock("target")
	defender.CurrentLife = 100
	defender.MaxLife = stat.NewValue(100)
	defender.CurrentES = 30

	next, result := r.Resolve(defender, firePacket(50), dice.Fixed(0.99))

	assert.InDelta(t, 30.0, result.BlockedByES, 1e-9)
	assert.Equal(t, 0.0, next.CurrentES)
	assert.InDelta(t, 80.0, next.CurrentLife, 1e-9)
	assert.InDelta(t, -20.0, result.LifeChange(), 1e-9)
	assert.InDelta(t, -30.0, result.ESChange(), 1e-9)
}

func TestResolveKillingBlow(t *testing.T) {
	r := newResolver(t)
	defender := stat.NewBlock("target")
	defender.CurrentLife = 20

	next, result := r.Resolve(defender, firePacket(50), dice.Fixed(0.99))

	assert.True(t, result.KillingBlow)
	assert.Equal(t, 0.0, next.CurrentLife)
	assert.False(t, next.IsAlive())
}

func TestResolveEvasionChanceAllOrNothing(t *testing.T) {
	r := newResolver(t)
	defender := stat.NewBlock("target")
	defender.CurrentLife = 100
	defender.MaxLife = stat.NewValue(100)
	defender.Evasion.AddFlat(1000)

	// Accuracy 1000 vs evasion 1000: hit chance 0.5. Roll 0.9 misses.
	next, result := r.Resolve(defender, firePacket(50), dice.Fixed(0.9))
	assert.True(t, result.Evaded)
	assert.Equal(t, 0.0, result.TotalDamage)
	assert.InDelta(t, 50.0, result.PreventedByEvasion, 1e-9)
	assert.InDelta(t, 100.0, next.CurrentLife, 1e-9)

	// Roll 0.2 lands the whole packet.
	next, result = r.Resolve(defender, firePacket(50), dice.Fixed(0.2))
	assert.False(t, result.Evaded)
	assert.InDelta(t, 50.0, result.TotalDamage, 1e-9)
	assert.InDelta(t, 50.0, next.CurrentLife, 1e-9)
}

func TestResolveEvasionHitRate(t *testing.T) {
	r := newResolver(t)
	defender := stat.NewBlock("target")
	defender.CurrentLife = 1e9
	defender.MaxLife = stat.NewValue(1e9)
	defender.Evasion.AddFlat(1000)

	rng := rand.New(rand.NewSource(42))
	hits := 0
	const trials = 2000
	for i := 0; i < trials; i++ {
		_, result := r.Resolve(defender, firePacket(10), rng)
		if !result.Evaded {
			hits++
		}
	}
	// Expect about 50% at 1000 accuracy vs 1000 evasion.
	rate := float64(hits) / trials
	assert.InDelta(t, 0.5, rate, 0.05)
}

func TestResolveEvasionCapMode(t *testing.T) {
	constants := gamedata.DefaultConstants()
	constants.Evasion.Mode = gamedata.EvasionModeCap
	r := NewResolver(gamedata.MustLoadDotRegistry(), constants)

	defender := stat.NewBlock("target")
	defender.CurrentLife = 5000
	defender.MaxLife = stat.NewValue(5000)
	defender.Evasion.AddFlat(1000)

	// Cap = 1000 / (1 + 1000/1000) = 500; a 2000 hit is truncated.
	p := firePacket(2000)
	next, result := r.Resolve(defender, p, dice.Fixed(0.5))

	assert.True(t, result.Evaded)
	assert.InDelta(t, 500.0, result.TotalDamage, 1e-9)
	assert.InDelta(t, 1500.0, result.PreventedByEvasion, 1e-9)
	assert.InDelta(t, 4500.0, next.CurrentLife, 1e-9)
}

func TestResolveStatusApplication(t *testing.T) {
	r := newResolver(t)
	defender := stat.NewBlock("target")
	defender.CurrentLife = 100
	defender.MaxLife = stat.NewValue(100)

	p := physicalPacket(40)
	p.Ailments = []damage.PendingAilment{
		{Kind: gamedata.Bleed, StatusDamage: 40, Duration: 5, DotBonus: 0.1},
	}

	// Apply chance = 40/100; roll 0.1 lands it.
	next, result := r.Resolve(defender, p, dice.Fixed(0.1))
	require.Len(t, result.EffectsApplied, 1)
	require.Len(t, next.Effects, 1)
	applied := next.Effects[0]
	assert.Equal(t, gamedata.Bleed, applied.Kind)
	assert.Equal(t, 40.0, applied.Magnitude)
	assert.Equal(t, 5.0, applied.Remaining)
	assert.Equal(t, 0.1, applied.DotBonus)
	assert.Equal(t, "attacker", applied.SourceID)

	// Roll 0.9 misses the application.
	next, result = r.Resolve(defender, p, dice.Fixed(0.9))
	assert.Empty(t, result.EffectsApplied)
	assert.Empty(t, next.Effects)
}

func TestApplyChance(t *testing.T) {
	assert.Equal(t, 0.4, ApplyChance(40, 100))
	assert.Equal(t, 1.0, ApplyChance(250, 100))
	assert.Equal(t, 0.0, ApplyChance(40, 0))
	assert.Equal(t, 0.0, ApplyChance(40, -5))
	assert.Equal(t, 0.0, ApplyChance(0, 100))
}

func TestGenerateAndResolveEndToEnd(t *testing.T) {
	r := newResolver(t)

	attacker := stat.NewBlock("attacker")
	attacker.Weapon.Damage[gamedata.Physical] = stat.WeaponDamage{Min: 50, Max: 100}
	attacker.Damage[gamedata.Physical].AddIncreased(0.5)

	defender := stat.NewBlock("target")
	defender.MaxLife = stat.NewValue(500)
	defender.CurrentLife = 500

	// Midpoint weapon roll, then a crit roll that misses.
	p := damage.Generate(attacker, gamedata.BasicAttack(), gamedata.MustLoadDotRegistry(), dice.NewSequence(0.5, 0.9))
	require.False(t, p.IsCritical)
	// 75 weapon damage * 1.5 increased = 112.5
	require.InDelta(t, 112.5, p.DamageOf(gamedata.Physical), 1e-9)

	next, result := r.Resolve(defender, p, dice.Fixed(0.99))

	assert.InDelta(t, 112.5, result.TotalDamage, 1e-9)
	assert.InDelta(t, 387.5, next.CurrentLife, 1e-9)
	assert.Equal(t, 0.0, result.ReducedByArmour)
	assert.Equal(t, 0.0, result.ReducedByResists)
	assert.False(t, result.Evaded)
}

func TestTickStatusDamagesLife(t *testing.T) {
	r := newResolver(t)
	defender := stat.NewBlock("target")
	defender.CurrentLife = 100
	defender.MaxLife = stat.NewValue(100)

	p := physicalPacket(1)
	p.Ailments = []damage.PendingAilment{
		{Kind: gamedata.Bleed, StatusDamage: 100, Duration: 5},
	}
	defender, _ = r.Resolve(defender, p, dice.Fixed(0.0))
	require.Len(t, defender.Effects, 1)

	// Bleed ticks 20% of magnitude per second.
	next, report := r.TickStatus(defender, 1.0, false)
	assert.InDelta(t, 20.0, report.Damage, 1e-9)
	assert.False(t, report.KillingBlow)
	assert.Greater(t, defender.CurrentLife, next.CurrentLife)

	// Ticking long enough kills.
	next, report = r.TickStatus(defender, 5.0, false)
	assert.True(t, report.KillingBlow)
	assert.Equal(t, 0.0, next.CurrentLife)
	require.Len(t, report.Expired, 1)
}
