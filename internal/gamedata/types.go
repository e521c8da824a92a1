// Package gamedata provides embedded game data and the shared definition
// types the combat engine is driven by: damage types, ailments, skill
// definitions, damage-over-time configuration, and tunable constants.
package gamedata

import "fmt"

// DamageType identifies one of the five damage pools.
//
// The declaration order is load-bearing: damage conversions are processed
// in exactly this order (Physical -> Lightning -> Cold -> Fire -> Chaos),
// so damage converted into a later type is still eligible for that type's
// own conversions within the same pass.
type DamageType int

const (
	Physical DamageType = iota
	Lightning
	Cold
	Fire
	Chaos

	NumDamageTypes
)

// AllDamageTypes returns every damage type in conversion order.
func AllDamageTypes() []DamageType {
	return []DamageType{Physical, Lightning, Cold, Fire, Chaos}
}

// String returns the damage type name.
func (d DamageType) String() string {
	switch d {
	case Physical:
		return "Physical"
	case Lightning:
		return "Lightning"
	case Cold:
		return "Cold"
	case Fire:
		return "Fire"
	case Chaos:
		return "Chaos"
	default:
		return "Unknown"
	}
}

// ID returns the damage type identifier used in data files.
func (d DamageType) ID() string {
	switch d {
	case Physical:
		return "physical"
	case Lightning:
		return "lightning"
	case Cold:
		return "cold"
	case Fire:
		return "fire"
	case Chaos:
		return "chaos"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so damage types serialize
// as their data-file identifiers, including as JSON object keys.
func (d DamageType) MarshalText() ([]byte, error) {
	return []byte(d.ID()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DamageType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "physical":
		*d = Physical
	case "lightning":
		*d = Lightning
	case "cold":
		*d = Cold
	case "fire":
		*d = Fire
	case "chaos":
		*d = Chaos
	default:
		return fmt.Errorf("unknown damage type %q", string(text))
	}
	return nil
}

// Ailment identifies a status effect that hits can inflict. Poison, Bleed
// and Burn carry damage over time; the rest expose a magnitude for the
// caller to interpret (slow percentage, shock amplification, and so on).
type Ailment int

const (
	Poison Ailment = iota
	Bleed
	Burn
	Freeze
	Chill
	Static
	Fear
	Slow

	NumAilments
)

// AllAilments returns every ailment.
func AllAilments() []Ailment {
	return []Ailment{Poison, Bleed, Burn, Freeze, Chill, Static, Fear, Slow}
}

// String returns the ailment name.
func (a Ailment) String() string {
	switch a {
	case Poison:
		return "Poison"
	case Bleed:
		return "Bleed"
	case Burn:
		return "Burn"
	case Freeze:
		return "Freeze"
	case Chill:
		return "Chill"
	case Static:
		return "Static"
	case Fear:
		return "Fear"
	case Slow:
		return "Slow"
	default:
		return "Unknown"
	}
}

// ID returns the ailment identifier used in data files.
func (a Ailment) ID() string {
	switch a {
	case Poison:
		return "poison"
	case Bleed:
		return "bleed"
	case Burn:
		return "burn"
	case Freeze:
		return "freeze"
	case Chill:
		return "chill"
	case Static:
		return "static"
	case Fear:
		return "fear"
	case Slow:
		return "slow"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Ailment) MarshalText() ([]byte, error) {
	return []byte(a.ID()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Ailment) UnmarshalText(text []byte) error {
	switch string(text) {
	case "poison":
		*a = Poison
	case "bleed":
		*a = Bleed
	case "burn":
		*a = Burn
	case "freeze":
		*a = Freeze
	case "chill":
		*a = Chill
	case "static":
		*a = Static
	case "fear":
		*a = Fear
	case "slow":
		*a = Slow
	default:
		return fmt.Errorf("unknown ailment %q", string(text))
	}
	return nil
}
