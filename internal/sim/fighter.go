package sim

import (
	"fmt"

	"github.com/samdwyer/statforge/data"
	"github.com/samdwyer/statforge/internal/gamedata"
	"github.com/samdwyer/statforge/internal/stat"
)

// Fighter is a live combatant: an archetype bound to a stat block and the
// skill it fights with.
type Fighter struct {
	Def   data.FighterDef
	Block *stat.Block
	Skill gamedata.SkillDef
}

// BuildFighter turns an archetype definition into a fighter with a fully
// aggregated stat block.
func BuildFighter(def data.FighterDef, skills *gamedata.SkillRegistry, constants gamedata.Constants) (*Fighter, error) {
	skill, ok := skills.Get(def.SkillID)
	if !ok {
		return nil, fmt.Errorf("fighter %q uses unknown skill %q", def.ID, def.SkillID)
	}

	block := stat.NewBlock(def.ID)
	block.SetBaseCritMultiplier(constants.Crit.BaseMultiplier)
	block.RebuildFromSources(archetypeSources(def))
	block.CurrentLife = block.MaxLife.Compute()
	block.CurrentMana = block.MaxMana.Compute()
	block.CurrentES = block.MaxEnergyShield.Compute()

	return &Fighter{Def: def, Block: block, Skill: skill}, nil
}

// archetypeSources expresses an archetype as stat sources: one gear bag
// for the defensive numbers and one weapon.
func archetypeSources(def data.FighterDef) []stat.Source {
	mods := []stat.Modifier{
		stat.Flat(stat.Life, def.Life-50),
		stat.Flat(stat.Mana, def.Mana-40),
		stat.Flat(stat.EnergyShield, def.EnergyShield),
		stat.Flat(stat.Armour, def.Armour),
		stat.Flat(stat.Evasion, def.Evasion),
		stat.Flat(stat.FireResistance, def.FireRes),
		stat.Flat(stat.ColdResistance, def.ColdRes),
		stat.Flat(stat.LightningResistance, def.LightningRes),
		stat.Flat(stat.ChaosResistance, def.ChaosRes),
	}
	if def.Accuracy > 0 {
		mods = append(mods, stat.Flat(stat.Accuracy, def.Accuracy-1000))
	}
	for name, inc := range def.IncreasedDamage {
		if ref, ok := damageRefByName(name); ok {
			mods = append(mods, stat.Increased(ref, inc))
		}
	}

	weapon := stat.DefaultWeapon()
	weapon.Damage[gamedata.Physical] = stat.WeaponDamage{Min: def.WeaponPhysMin, Max: def.WeaponPhysMax}
	if def.WeaponCrit > 0 {
		weapon.CritChance = def.WeaponCrit
	}
	if def.WeaponSpeed > 0 {
		weapon.AttackSpeed = def.WeaponSpeed
	}

	return []stat.Source{
		stat.Gear(def.ID+"-kit", mods...),
		stat.Weapon(def.ID+"-weapon", weapon),
	}
}

func damageRefByName(name string) (stat.Ref, bool) {
	switch name {
	case "physical":
		return stat.PhysicalDamage, true
	case "fire":
		return stat.FireDamage, true
	case "cold":
		return stat.ColdDamage, true
	case "lightning":
		return stat.LightningDamage, true
	case "chaos":
		return stat.ChaosDamage, true
	case "elemental":
		return stat.ElementalDamage, true
	}
	return 0, false
}

// attackInterval is the seconds between skill uses.
func (f *Fighter) attackInterval() float64 {
	speed := f.Block.CastSpeed.Compute()
	if f.Skill.IsAttack() {
		speed = f.Block.AttackSpeed.Compute() * f.Block.Weapon.AttackSpeed
	}
	speed = f.Skill.EffectiveSpeed(speed)
	if speed <= 0 {
		return 1
	}
	return 1 / speed
}
