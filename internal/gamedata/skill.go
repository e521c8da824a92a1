package gamedata

// Skill tag identifiers. Tags categorize skills and gate weapon damage:
// only skills tagged "attack" roll the equipped weapon into their base
// damage pool.
const (
	TagAttack     = "attack"
	TagSpell      = "spell"
	TagMelee      = "melee"
	TagRanged     = "ranged"
	TagProjectile = "projectile"
	TagAoe        = "aoe"
)

// BaseDamage declares a skill's own damage roll for one damage type.
type BaseDamage struct {
	Type DamageType `json:"type"`
	Min  float64    `json:"min"`
	Max  float64    `json:"max"`
}

// Average returns the midpoint of the roll range.
func (b BaseDamage) Average() float64 {
	return (b.Min + b.Max) / 2
}

// DamageConversion moves a fraction of one damage type's pool into another
// during packet generation. Conversions are applied in damage-type
// declaration order and chain: damage converted into a later type is still
// subject to that type's own conversions.
type DamageConversion struct {
	From     DamageType `json:"from"`
	To       DamageType `json:"to"`
	Fraction float64    `json:"fraction"`
}

// AilmentConversion turns a fraction of hit damage of one type into status
// damage for an ailment. Skill conversions add to the attacker's own
// stat-based conversions for the same pair.
type AilmentConversion struct {
	From     DamageType `json:"from"`
	To       Ailment    `json:"to"`
	Fraction float64    `json:"fraction"`
}

// SkillDef is the immutable, declarative description of a damage-dealing
// ability. It carries no behavior; the damage generator consumes it as a
// value. Definitions are loaded from skills.json.
type SkillDef struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Tags []string `json:"tags"`

	// Base damage rolls per type, before conversions and scaling.
	BaseDamages []BaseDamage `json:"baseDamages,omitempty"`

	// WeaponEffectiveness is the fraction of rolled weapon damage an
	// attack skill contributes to its base pool (0 = pure spell).
	WeaponEffectiveness float64 `json:"weaponEffectiveness"`
	// DamageEffectiveness multiplies all scaled damage uniformly.
	DamageEffectiveness float64 `json:"damageEffectiveness"`
	// SpeedModifier multiplies the attacker's attack/cast speed.
	SpeedModifier float64 `json:"speedModifier"`

	// BaseCritChance adds to weapon crit chance, as a fraction in [0,1].
	BaseCritChance float64 `json:"baseCritChance"`
	// CritMultiplierBonus adds to the attacker's crit multiplier.
	CritMultiplierBonus float64 `json:"critMultiplierBonus"`

	DamageConversions  []DamageConversion  `json:"damageConversions,omitempty"`
	AilmentConversions []AilmentConversion `json:"ailmentConversions,omitempty"`

	// TypeEffectiveness multiplies scaled damage per type; absent types
	// default to 1.0.
	TypeEffectiveness map[DamageType]float64 `json:"typeEffectiveness,omitempty"`

	// HitsPerAttack repeats the whole generation pipeline per hit, each
	// hit rolling independently.
	HitsPerAttack int `json:"hitsPerAttack"`
	// ChainCount and PierceChance are delivery parameters interpreted by
	// the caller; the engine only carries them.
	ChainCount   int     `json:"chainCount,omitempty"`
	PierceChance float64 `json:"pierceChance,omitempty"`
}

// normalize fills in the defaults a sparse data file leaves at zero.
func (s *SkillDef) normalize() {
	if s.DamageEffectiveness == 0 {
		s.DamageEffectiveness = 1.0
	}
	if s.SpeedModifier == 0 {
		s.SpeedModifier = 1.0
	}
	if s.HitsPerAttack == 0 {
		s.HitsPerAttack = 1
	}
}

// HasTag reports whether the skill carries the given tag.
func (s *SkillDef) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// IsAttack reports whether the skill uses the equipped weapon.
func (s *SkillDef) IsAttack() bool { return s.HasTag(TagAttack) }

// IsSpell reports whether the skill is cast rather than swung.
func (s *SkillDef) IsSpell() bool { return s.HasTag(TagSpell) }

// Conversion returns the declared fraction converted from one damage type
// to another, or 0 if the pair is not converted.
func (s *SkillDef) Conversion(from, to DamageType) float64 {
	for _, c := range s.DamageConversions {
		if c.From == from && c.To == to {
			return c.Fraction
		}
	}
	return 0
}

// AilmentConversion returns the declared fraction of hit damage of a type
// converted to status damage for an ailment.
func (s *SkillDef) AilmentConversionFor(from DamageType, to Ailment) float64 {
	for _, c := range s.AilmentConversions {
		if c.From == from && c.To == to {
			return c.Fraction
		}
	}
	return 0
}

// Effectiveness returns the per-type damage multiplier, defaulting to 1.
func (s *SkillDef) Effectiveness(d DamageType) float64 {
	if s.TypeEffectiveness == nil {
		return 1.0
	}
	if eff, ok := s.TypeEffectiveness[d]; ok {
		return eff
	}
	return 1.0
}

// EffectiveSpeed returns the attack/cast speed after the skill's modifier.
func (s *SkillDef) EffectiveSpeed(baseSpeed float64) float64 {
	return baseSpeed * s.SpeedModifier
}

// BasicAttack returns the fallback skill used when no registry is loaded:
// a plain weapon swing at full effectiveness.
func BasicAttack() SkillDef {
	return SkillDef{
		ID:                  "basic_attack",
		Name:                "Basic Attack",
		Tags:                []string{TagAttack, TagMelee},
		WeaponEffectiveness: 1.0,
		DamageEffectiveness: 1.0,
		SpeedModifier:       1.0,
		HitsPerAttack:       1,
	}
}
