package data

import (
	"encoding/json"
	"fmt"
)

// FighterDef is a combatant archetype loaded from JSON: the baseline
// numbers and skill the simulator builds a stat block from.
type FighterDef struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	SkillID string `json:"skillId"`

	Life         float64 `json:"life"`
	Mana         float64 `json:"mana"`
	EnergyShield float64 `json:"energyShield"`

	Armour       float64 `json:"armour"`
	Evasion      float64 `json:"evasion"`
	FireRes      float64 `json:"fireRes"`
	ColdRes      float64 `json:"coldRes"`
	LightningRes float64 `json:"lightningRes"`
	ChaosRes     float64 `json:"chaosRes"`

	Accuracy float64 `json:"accuracy"`

	WeaponPhysMin float64 `json:"weaponPhysMin"`
	WeaponPhysMax float64 `json:"weaponPhysMax"`
	WeaponCrit    float64 `json:"weaponCrit"`
	WeaponSpeed   float64 `json:"weaponSpeed"`

	// IncreasedDamage are additive percentage bonuses per damage type
	// name, as fractions.
	IncreasedDamage map[string]float64 `json:"increasedDamage,omitempty"`
}

// FightersFile is the structure of fighters.json.
type FightersFile struct {
	Fighters []FighterDef `json:"fighters"`
}

// LoadFighters loads fighter archetypes from the embedded fighters.json.
func LoadFighters() ([]FighterDef, error) {
	content, err := dataFS.ReadFile("fighters.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded fighters.json: %w", err)
	}
	var file FightersFile
	if err := json.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("failed to parse fighters.json: %w", err)
	}
	return file.Fighters, nil
}

// MustLoadFighters loads fighter archetypes, panicking on error.
func MustLoadFighters() []FighterDef {
	fighters, err := LoadFighters()
	if err != nil {
		panic(err)
	}
	return fighters
}
