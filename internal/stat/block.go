package stat

import (
	"github.com/samdwyer/statforge/internal/gamedata"
	"github.com/samdwyer/statforge/internal/status"
)

// Equipment slots.
type Slot string

const (
	SlotWeapon Slot = "weapon"
	SlotHelmet Slot = "helmet"
	SlotChest  Slot = "chest"
	SlotGloves Slot = "gloves"
	SlotBoots  Slot = "boots"
	SlotRing   Slot = "ring"
	SlotAmulet Slot = "amulet"
)

// slotOrder fixes the order equipment contributes in, so equal-priority
// sources resolve ties the same way on every rebuild.
var slotOrder = []Slot{
	SlotWeapon, SlotHelmet, SlotChest, SlotGloves, SlotBoots, SlotRing, SlotAmulet,
}

// Block is a combatant's full aggregated stat sheet plus its runtime
// state (current resources and live status effects). Derived stats are
// rebuilt from sources; runtime state survives rebuilds, clamped to the
// new maxima.
type Block struct {
	ID string

	MaxLife         Value
	CurrentLife     float64
	MaxMana         Value
	CurrentMana     float64
	MaxEnergyShield Value
	CurrentES       float64

	Strength     Value
	Dexterity    Value
	Intelligence Value
	Constitution Value
	Wisdom       Value
	Charisma     Value

	Armour  Value
	Evasion Value
	// Resistances are percents (75 means 75%); the physical slot is
	// unused, physical mitigation goes through armour.
	Resistances [gamedata.NumDamageTypes]Value

	Accuracy Value
	// Damage holds the global per-type damage modifiers applied during
	// packet generation.
	Damage         [gamedata.NumDamageTypes]Value
	AttackSpeed    Value
	CastSpeed      Value
	CritChance     Value
	CritMultiplier Value
	// Penetration is in resistance percent, per type.
	Penetration [gamedata.NumDamageTypes]Value

	LifeRegen Value
	ManaRegen Value
	LifeLeech Value
	ManaLeech Value
	LifeOnHit float64

	MovementSpeedIncreased float64
	ItemRarityIncreased    float64
	ItemQuantityIncreased  float64

	Weapon WeaponStats

	// Ailments and Conversions drive status application on hit.
	Ailments    [gamedata.NumAilments]AilmentStats
	Conversions [gamedata.NumAilments][gamedata.NumDamageTypes]float64

	// Effects are the live status effect instances on this combatant.
	Effects []status.Effect

	equipped map[Slot]*ModifierSource
	buffs    []*Buff
}

// defaultCritMultiplier is used until SetBaseCritMultiplier installs the
// configured value.
const defaultCritMultiplier = 1.5

// NewBlock returns a block with baseline stats: enough to fight unarmed.
func NewBlock(id string) *Block {
	b := &Block{
		ID:             id,
		MaxLife:        NewValue(50),
		MaxMana:        NewValue(40),
		Strength:       NewValue(10),
		Dexterity:      NewValue(10),
		Intelligence:   NewValue(10),
		Constitution:   NewValue(10),
		Wisdom:         NewValue(10),
		Charisma:       NewValue(10),
		Accuracy:       NewValue(1000),
		AttackSpeed:    NewValue(1),
		CastSpeed:      NewValue(1),
		CritMultiplier: NewValue(defaultCritMultiplier),
		Weapon:         DefaultWeapon(),
		equipped:       make(map[Slot]*ModifierSource),
	}
	b.CurrentLife = b.MaxLife.Compute()
	b.CurrentMana = b.MaxMana.Compute()
	return b
}

// SetBaseCritMultiplier installs the configured crit damage multiplier as
// the base of CritMultiplier. The base survives rebuilds; modifiers from
// sources layer on top of it.
func (b *Block) SetBaseCritMultiplier(m float64) {
	b.CritMultiplier.Base = m
}

// RebuildFromSources recomputes every derived stat from scratch. Sources
// are applied in ascending priority. Current resources and live effects
// survive, clamped to the new maxima.
func (b *Block) RebuildFromSources(sources []Source) {
	life, mana, es := b.CurrentLife, b.CurrentMana, b.CurrentES
	effects := b.Effects
	equipped, buffs := b.equipped, b.buffs
	critBase := b.CritMultiplier.Base

	*b = *NewBlock(b.ID)
	b.Effects = effects
	b.equipped = equipped
	b.buffs = buffs
	b.CritMultiplier.Base = critBase

	acc := NewAccumulator()
	for _, src := range sortSources(sources) {
		src.Contribute(acc)
	}
	acc.applyTo(b)

	b.CurrentLife = min(life, b.MaxLife.Compute())
	b.CurrentMana = min(mana, b.MaxMana.Compute())
	b.CurrentES = min(es, b.MaxEnergyShield.Compute())
}

// rebuild recomputes from the block's own equipment and buffs.
func (b *Block) rebuild() {
	sources := make([]Source, 0, len(b.equipped)+len(b.buffs))
	for _, slot := range slotOrder {
		if item, ok := b.equipped[slot]; ok {
			sources = append(sources, item)
		}
	}
	for _, buff := range b.buffs {
		sources = append(sources, buff)
	}
	b.RebuildFromSources(sources)
}

// Equip installs an item in a slot and rebuilds. The previous occupant,
// if any, is returned.
func (b *Block) Equip(slot Slot, item *ModifierSource) *ModifierSource {
	prev := b.equipped[slot]
	b.equipped[slot] = item
	b.rebuild()
	return prev
}

// Unequip removes and returns the item in a slot.
func (b *Block) Unequip(slot Slot) *ModifierSource {
	prev, ok := b.equipped[slot]
	if !ok {
		return nil
	}
	delete(b.equipped, slot)
	b.rebuild()
	return prev
}

// Equipped returns the item in a slot.
func (b *Block) Equipped(slot Slot) *ModifierSource {
	return b.equipped[slot]
}

// ApplyBuff adds (or refreshes) a buff by ID and rebuilds.
func (b *Block) ApplyBuff(buff *Buff) {
	for i, existing := range b.buffs {
		if existing.SourceID == buff.SourceID {
			b.buffs[i] = buff
			b.rebuild()
			return
		}
	}
	b.buffs = append(b.buffs, buff)
	b.rebuild()
}

// RemoveBuff drops a buff by ID, rebuilding if it was present.
func (b *Block) RemoveBuff(id string) bool {
	for i, buff := range b.buffs {
		if buff.SourceID == id {
			b.buffs = append(b.buffs[:i], b.buffs[i+1:]...)
			b.rebuild()
			return true
		}
	}
	return false
}

// TickBuffs counts down timed buffs, rebuilding once if any expired.
func (b *Block) TickBuffs(elapsed float64) {
	if elapsed <= 0 {
		return
	}
	expired := false
	kept := b.buffs[:0]
	for _, buff := range b.buffs {
		if buff.Duration > 0 {
			buff.Remaining -= elapsed
		}
		if buff.Expired() {
			expired = true
			continue
		}
		kept = append(kept, buff)
	}
	b.buffs = kept
	if expired {
		b.rebuild()
	}
}

// Buffs returns the live buffs.
func (b *Block) Buffs() []*Buff { return b.buffs }

// IsAlive reports whether the combatant has life left.
func (b *Block) IsAlive() bool { return b.CurrentLife > 0 }

// Heal restores life, capped at max.
func (b *Block) Heal(amount float64) {
	b.CurrentLife = min(b.CurrentLife+amount, b.MaxLife.Compute())
}

// RestoreMana restores mana, capped at max.
func (b *Block) RestoreMana(amount float64) {
	b.CurrentMana = min(b.CurrentMana+amount, b.MaxMana.Compute())
}

// RechargeES restores energy shield, capped at max.
func (b *Block) RechargeES(amount float64) {
	b.CurrentES = min(b.CurrentES+amount, b.MaxEnergyShield.Compute())
}

// Resistance returns the computed resistance percent for a type.
func (b *Block) Resistance(d gamedata.DamageType) float64 {
	return b.Resistances[d].Compute()
}

// PenetrationFor returns the computed penetration percent for a type.
func (b *Block) PenetrationFor(d gamedata.DamageType) float64 {
	return b.Penetration[d].Compute()
}

// ConversionFor returns the aggregated hit-to-status conversion fraction.
func (b *Block) ConversionFor(from gamedata.DamageType, to gamedata.Ailment) float64 {
	return b.Conversions[to][from]
}

// Clone deep-copies the block, including runtime state.
func (b *Block) Clone() *Block {
	out := *b
	out.MaxLife = b.MaxLife.Clone()
	out.MaxMana = b.MaxMana.Clone()
	out.MaxEnergyShield = b.MaxEnergyShield.Clone()
	out.Strength = b.Strength.Clone()
	out.Dexterity = b.Dexterity.Clone()
	out.Intelligence = b.Intelligence.Clone()
	out.Constitution = b.Constitution.Clone()
	out.Wisdom = b.Wisdom.Clone()
	out.Charisma = b.Charisma.Clone()
	out.Armour = b.Armour.Clone()
	out.Evasion = b.Evasion.Clone()
	out.Accuracy = b.Accuracy.Clone()
	out.AttackSpeed = b.AttackSpeed.Clone()
	out.CastSpeed = b.CastSpeed.Clone()
	out.CritChance = b.CritChance.Clone()
	out.CritMultiplier = b.CritMultiplier.Clone()
	out.LifeRegen = b.LifeRegen.Clone()
	out.ManaRegen = b.ManaRegen.Clone()
	out.LifeLeech = b.LifeLeech.Clone()
	out.ManaLeech = b.ManaLeech.Clone()
	for i := range b.Resistances {
		out.Resistances[i] = b.Resistances[i].Clone()
		out.Damage[i] = b.Damage[i].Clone()
		out.Penetration[i] = b.Penetration[i].Clone()
	}
	out.Effects = make([]status.Effect, len(b.Effects))
	copy(out.Effects, b.Effects)
	out.equipped = make(map[Slot]*ModifierSource, len(b.equipped))
	for slot, item := range b.equipped {
		out.equipped[slot] = item
	}
	out.buffs = make([]*Buff, len(b.buffs))
	for i, buff := range b.buffs {
		cp := *buff
		out.buffs[i] = &cp
	}
	return &out
}
