package stat

import "github.com/samdwyer/statforge/internal/gamedata"

// Ref names a stat a modifier can target.
type Ref int

const (
	Life Ref = iota
	Mana
	EnergyShield

	Strength
	Dexterity
	Intelligence
	Constitution
	Wisdom
	Charisma
	// AllAttributes fans a flat bonus out to all six attributes.
	AllAttributes

	Armour
	Evasion
	FireResistance
	ColdResistance
	LightningResistance
	ChaosResistance
	// AllResistances fans out to the four resistances.
	AllResistances

	Accuracy
	PhysicalDamage
	FireDamage
	ColdDamage
	LightningDamage
	ChaosDamage
	// ElementalDamage fans increased damage out to fire, cold and
	// lightning.
	ElementalDamage
	AttackSpeed
	CastSpeed
	CritChance
	CritMultiplier

	FirePenetration
	ColdPenetration
	LightningPenetration
	ChaosPenetration

	LifeRegen
	ManaRegen
	LifeLeech
	ManaLeech
	LifeOnHit

	MovementSpeed
	ItemRarity
	ItemQuantity

	numRefs
)

// Layer selects which modifier layer of a Value a contribution lands on.
type Layer int

const (
	LayerFlat Layer = iota
	LayerIncreased
	LayerMore
)

// Modifier is one contribution from a source: a stat, a layer, and an
// amount. Increased and more amounts are fractions, not percents.
type Modifier struct {
	Stat  Ref
	Layer Layer
	Value float64
}

// Convenience constructors keep source definitions readable.

func Flat(s Ref, v float64) Modifier      { return Modifier{Stat: s, Layer: LayerFlat, Value: v} }
func Increased(s Ref, v float64) Modifier { return Modifier{Stat: s, Layer: LayerIncreased, Value: v} }
func More(s Ref, v float64) Modifier      { return Modifier{Stat: s, Layer: LayerMore, Value: v} }

// AilmentStats collects the per-ailment bonuses a source can grant.
type AilmentStats struct {
	// DotBonus scales tick damage (fraction).
	DotBonus float64
	// DurationIncreased extends applied durations (fraction).
	DurationIncreased float64
	// Magnitude scales the status damage carried at application (fraction).
	Magnitude float64
	// MaxStacksBonus raises the stack cap for limited ailments.
	MaxStacksBonus int
}

func (a *AilmentStats) add(o AilmentStats) {
	a.DotBonus += o.DotBonus
	a.DurationIncreased += o.DurationIncreased
	a.Magnitude += o.Magnitude
	a.MaxStacksBonus += o.MaxStacksBonus
}

// WeaponDamage is one damage type's roll range on a weapon.
type WeaponDamage struct {
	Min float64
	Max float64
}

// WeaponStats are the local stats of the equipped weapon.
type WeaponStats struct {
	Damage [gamedata.NumDamageTypes]WeaponDamage
	// PhysicalIncreased is local increased physical damage on the
	// weapon itself, applied before global modifiers.
	PhysicalIncreased float64
	AttackSpeed       float64
	// CritChance is a fraction in [0,1].
	CritChance float64
}

// DefaultWeapon is an unarmed baseline.
func DefaultWeapon() WeaponStats {
	return WeaponStats{AttackSpeed: 1.0, CritChance: 0.05}
}

// Accumulator collects contributions from every source during a rebuild.
// Sources write into it; applyTo folds the totals into a Block.
type Accumulator struct {
	stats [numRefs]Value

	weapon    *WeaponStats
	ailments  [gamedata.NumAilments]AilmentStats
	convs     [gamedata.NumAilments][gamedata.NumDamageTypes]float64
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Add applies one modifier.
func (a *Accumulator) Add(m Modifier) {
	if m.Stat < 0 || m.Stat >= numRefs {
		return
	}
	switch m.Layer {
	case LayerFlat:
		a.stats[m.Stat].AddFlat(m.Value)
	case LayerIncreased:
		a.stats[m.Stat].AddIncreased(m.Value)
	case LayerMore:
		a.stats[m.Stat].AddMore(m.Value)
	}
}

// AddAll applies a batch of modifiers.
func (a *Accumulator) AddAll(mods []Modifier) {
	for _, m := range mods {
		a.Add(m)
	}
}

// SetWeapon installs the equipped weapon's local stats. The last source
// to set it wins; one weapon is equipped at a time.
func (a *Accumulator) SetWeapon(w WeaponStats) { a.weapon = &w }

// AddAilment accumulates per-ailment bonuses.
func (a *Accumulator) AddAilment(kind gamedata.Ailment, s AilmentStats) {
	if kind < 0 || kind >= gamedata.NumAilments {
		return
	}
	a.ailments[kind].add(s)
}

// AddConversion accumulates a hit-damage-to-status conversion fraction.
func (a *Accumulator) AddConversion(from gamedata.DamageType, to gamedata.Ailment, fraction float64) {
	if from < 0 || from >= gamedata.NumDamageTypes || to < 0 || to >= gamedata.NumAilments {
		return
	}
	a.convs[to][from] += fraction
}

// applyTo folds the accumulated contributions into a freshly reset block.
// Fan-out refs (AllAttributes, AllResistances, ElementalDamage) are
// distributed here so the block only ever holds concrete stats.
func (a *Accumulator) applyTo(b *Block) {
	b.MaxLife.merge(a.stats[Life])
	b.MaxMana.merge(a.stats[Mana])
	b.MaxEnergyShield.merge(a.stats[EnergyShield])

	all := a.stats[AllAttributes].Flat
	for _, attr := range []struct {
		ref Ref
		dst *Value
	}{
		{Strength, &b.Strength},
		{Dexterity, &b.Dexterity},
		{Intelligence, &b.Intelligence},
		{Constitution, &b.Constitution},
		{Wisdom, &b.Wisdom},
		{Charisma, &b.Charisma},
	} {
		dst := attr.dst
		dst.merge(a.stats[attr.ref])
		dst.AddFlat(all)
	}

	b.Armour.merge(a.stats[Armour])
	b.Evasion.merge(a.stats[Evasion])

	allRes := a.stats[AllResistances].Flat
	for _, res := range []struct {
		ref Ref
		dt  gamedata.DamageType
	}{
		{FireResistance, gamedata.Fire},
		{ColdResistance, gamedata.Cold},
		{LightningResistance, gamedata.Lightning},
		{ChaosResistance, gamedata.Chaos},
	} {
		b.Resistances[res.dt].merge(a.stats[res.ref])
		b.Resistances[res.dt].AddFlat(allRes)
	}

	b.Accuracy.merge(a.stats[Accuracy])

	elemInc := a.stats[ElementalDamage].Increased
	for _, dmg := range []struct {
		ref Ref
		dt  gamedata.DamageType
	}{
		{PhysicalDamage, gamedata.Physical},
		{FireDamage, gamedata.Fire},
		{ColdDamage, gamedata.Cold},
		{LightningDamage, gamedata.Lightning},
		{ChaosDamage, gamedata.Chaos},
	} {
		b.Damage[dmg.dt].merge(a.stats[dmg.ref])
		if dmg.dt == gamedata.Fire || dmg.dt == gamedata.Cold || dmg.dt == gamedata.Lightning {
			b.Damage[dmg.dt].AddIncreased(elemInc)
		}
	}

	b.AttackSpeed.merge(a.stats[AttackSpeed])
	b.CastSpeed.merge(a.stats[CastSpeed])
	b.CritChance.merge(a.stats[CritChance])
	b.CritMultiplier.merge(a.stats[CritMultiplier])

	for _, pen := range []struct {
		ref Ref
		dt  gamedata.DamageType
	}{
		{FirePenetration, gamedata.Fire},
		{ColdPenetration, gamedata.Cold},
		{LightningPenetration, gamedata.Lightning},
		{ChaosPenetration, gamedata.Chaos},
	} {
		b.Penetration[pen.dt].merge(a.stats[pen.ref])
	}

	b.LifeRegen.merge(a.stats[LifeRegen])
	b.ManaRegen.merge(a.stats[ManaRegen])
	b.LifeLeech.merge(a.stats[LifeLeech])
	b.ManaLeech.merge(a.stats[ManaLeech])
	b.LifeOnHit += a.stats[LifeOnHit].Flat

	b.MovementSpeedIncreased += a.stats[MovementSpeed].Increased
	b.ItemRarityIncreased += a.stats[ItemRarity].Increased
	b.ItemQuantityIncreased += a.stats[ItemQuantity].Increased

	if a.weapon != nil {
		b.Weapon = *a.weapon
	}
	for kind := gamedata.Ailment(0); kind < gamedata.NumAilments; kind++ {
		b.Ailments[kind].add(a.ailments[kind])
		for dt := gamedata.DamageType(0); dt < gamedata.NumDamageTypes; dt++ {
			b.Conversions[kind][dt] += a.convs[kind][dt]
		}
	}
}
