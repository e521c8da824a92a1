package gamedata

// Constants are the engine-wide tuning knobs, loaded from constants.json.
// Every field has a sensible default via DefaultConstants, so a partial
// file only overrides what it names.
type Constants struct {
	Armour     ArmourConstants     `json:"armour"`
	Resistance ResistanceConstants `json:"resistance"`
	Crit       CritConstants       `json:"crit"`
	Evasion    EvasionConstants    `json:"evasion"`
}

// ArmourConstants tune physical damage reduction.
type ArmourConstants struct {
	// DamageConstant is K in reduction = armour / (armour + K*damage):
	// higher K means armour falls off faster against big hits.
	DamageConstant float64 `json:"damageConstant"`
}

// ResistanceConstants bound effective resistance after penetration.
type ResistanceConstants struct {
	// MaxCap is the highest effective resistance percent (full immunity
	// at 100).
	MaxCap float64 `json:"maxCap"`
	// MinValue is the lowest effective resistance percent; negative
	// values amplify damage taken.
	MinValue float64 `json:"minValue"`
}

// CritConstants tune critical strikes.
type CritConstants struct {
	// BaseMultiplier is the damage multiplier of a crit before bonuses.
	BaseMultiplier float64 `json:"baseMultiplier"`
}

// Evasion resolution modes.
const (
	// EvasionModeChance resolves evasion as a single all-or-nothing roll
	// with hit chance accuracy / (accuracy + evasion).
	EvasionModeChance = "chance"
	// EvasionModeCap resolves evasion deterministically by capping
	// per-packet damage at accuracy / (1 + evasion/scaleFactor).
	EvasionModeCap = "cap"
)

// EvasionConstants select and tune the evasion model.
type EvasionConstants struct {
	Mode string `json:"mode"`
	// ScaleFactor softens evasion in cap mode.
	ScaleFactor float64 `json:"scaleFactor"`
}

// DefaultConstants returns the baseline tuning used when no file overrides
// are present.
func DefaultConstants() Constants {
	return Constants{
		Armour:     ArmourConstants{DamageConstant: 10},
		Resistance: ResistanceConstants{MaxCap: 100, MinValue: -200},
		Crit:       CritConstants{BaseMultiplier: 1.5},
		Evasion:    EvasionConstants{Mode: EvasionModeChance, ScaleFactor: 1000},
	}
}

// LoadConstants reads constants.json over the defaults.
func LoadConstants() (Constants, error) {
	c := DefaultConstants()
	loaded, err := Load[Constants]("constants.json")
	if err != nil {
		return c, err
	}
	c.merge(loaded)
	return c, nil
}

// MustLoadConstants reads constants.json, panicking on error.
func MustLoadConstants() Constants {
	c, err := LoadConstants()
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Constants) merge(o Constants) {
	if o.Armour.DamageConstant != 0 {
		c.Armour.DamageConstant = o.Armour.DamageConstant
	}
	if o.Resistance.MaxCap != 0 {
		c.Resistance.MaxCap = o.Resistance.MaxCap
	}
	if o.Resistance.MinValue != 0 {
		c.Resistance.MinValue = o.Resistance.MinValue
	}
	if o.Crit.BaseMultiplier != 0 {
		c.Crit.BaseMultiplier = o.Crit.BaseMultiplier
	}
	if o.Evasion.Mode != "" {
		c.Evasion.Mode = o.Evasion.Mode
	}
	if o.Evasion.ScaleFactor != 0 {
		c.Evasion.ScaleFactor = o.Evasion.ScaleFactor
	}
}
