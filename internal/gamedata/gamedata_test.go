package gamedata

import "testing"

func TestLoadSkillRegistry(t *testing.T) {
	reg, err := LoadSkillRegistry()
	if err != nil {
		t.Fatalf("LoadSkillRegistry() error: %v", err)
	}

	expected := []string{
		"basic_attack",
		"fireball",
		"heavy_strike",
		"molten_strike",
		"blade_vortex",
		"viper_strike",
		"ice_nova",
		"glacial_hammer",
		"lightning_strike",
		"wild_strike",
		"double_strike",
		"infernal_blow",
	}
	if reg.Len() != len(expected) {
		t.Errorf("Len() = %d, want %d", reg.Len(), len(expected))
	}
	for _, id := range expected {
		if _, ok := reg.Get(id); !ok {
			t.Errorf("missing skill %q", id)
		}
	}
}

func TestSkillDefaultsNormalized(t *testing.T) {
	reg := MustLoadSkillRegistry()

	// fireball's file entry omits speedModifier and hitsPerAttack.
	fireball := reg.MustGet("fireball")
	if fireball.SpeedModifier != 1.0 {
		t.Errorf("SpeedModifier = %v, want 1.0", fireball.SpeedModifier)
	}
	if fireball.HitsPerAttack != 1 {
		t.Errorf("HitsPerAttack = %d, want 1", fireball.HitsPerAttack)
	}
	if fireball.WeaponEffectiveness != 0 {
		t.Errorf("WeaponEffectiveness = %v, want 0 for a spell", fireball.WeaponEffectiveness)
	}
	if !fireball.IsSpell() || fireball.IsAttack() {
		t.Errorf("fireball tags wrong: %v", fireball.Tags)
	}
}

func TestSkillConversionLookups(t *testing.T) {
	reg := MustLoadSkillRegistry()

	viper := reg.MustGet("viper_strike")
	if got := viper.Conversion(Physical, Chaos); got != 0.6 {
		t.Errorf("Conversion(Physical, Chaos) = %v, want 0.6", got)
	}
	if got := viper.Conversion(Physical, Fire); got != 0 {
		t.Errorf("Conversion(Physical, Fire) = %v, want 0", got)
	}
	if got := viper.AilmentConversionFor(Chaos, Poison); got != 0.6 {
		t.Errorf("AilmentConversionFor(Chaos, Poison) = %v, want 0.6", got)
	}

	double := reg.MustGet("double_strike")
	if double.HitsPerAttack != 2 {
		t.Errorf("double_strike HitsPerAttack = %d, want 2", double.HitsPerAttack)
	}
}

func TestLoadDotRegistry(t *testing.T) {
	reg, err := LoadDotRegistry()
	if err != nil {
		t.Fatalf("LoadDotRegistry() error: %v", err)
	}
	if reg.Len() != int(NumAilments) {
		t.Errorf("Len() = %d, want %d", reg.Len(), int(NumAilments))
	}

	bleed, ok := reg.Get(Bleed)
	if !ok {
		t.Fatal("missing bleed config")
	}
	if bleed.StackPolicy != StackLimited {
		t.Errorf("bleed StackPolicy = %v, want limited", bleed.StackPolicy)
	}
	if bleed.MaxStacks != 8 || bleed.StackEffectiveness != 0.5 {
		t.Errorf("bleed stacks = %d/%v, want 8/0.5", bleed.MaxStacks, bleed.StackEffectiveness)
	}
	if bleed.MovingMultiplier != 2.0 {
		t.Errorf("bleed MovingMultiplier = %v, want 2.0", bleed.MovingMultiplier)
	}

	poison, _ := reg.Get(Poison)
	if poison.StackPolicy != StackUnlimited {
		t.Errorf("poison StackPolicy = %v, want unlimited", poison.StackPolicy)
	}

	freeze, _ := reg.Get(Freeze)
	if freeze.BaseDamagePercent != 0 {
		t.Errorf("freeze BaseDamagePercent = %v, want 0 for a pure debuff", freeze.BaseDamagePercent)
	}
}

func TestLoadConstants(t *testing.T) {
	c, err := LoadConstants()
	if err != nil {
		t.Fatalf("LoadConstants() error: %v", err)
	}
	if c.Armour.DamageConstant != 10 {
		t.Errorf("Armour.DamageConstant = %v, want 10", c.Armour.DamageConstant)
	}
	if c.Resistance.MaxCap != 100 || c.Resistance.MinValue != -200 {
		t.Errorf("resistance bounds = %v/%v, want 100/-200", c.Resistance.MaxCap, c.Resistance.MinValue)
	}
	if c.Crit.BaseMultiplier != 1.5 {
		t.Errorf("Crit.BaseMultiplier = %v, want 1.5", c.Crit.BaseMultiplier)
	}
	if c.Evasion.Mode != EvasionModeChance {
		t.Errorf("Evasion.Mode = %q, want %q", c.Evasion.Mode, EvasionModeChance)
	}
}

func TestDamageTypeRoundTrip(t *testing.T) {
	for _, d := range AllDamageTypes() {
		text, err := d.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error: %v", d, err)
		}
		var back DamageType
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error: %v", text, err)
		}
		if back != d {
			t.Errorf("round trip: got %v, want %v", back, d)
		}
	}

	var d DamageType
	if err := d.UnmarshalText([]byte("shadow")); err == nil {
		t.Error("UnmarshalText accepted unknown damage type")
	}
}

func TestStackPolicyRoundTrip(t *testing.T) {
	for _, p := range []StackPolicy{StackStrongestOnly, StackUnlimited, StackLimited} {
		text, err := p.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error: %v", p, err)
		}
		var back StackPolicy
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error: %v", text, err)
		}
		if back != p {
			t.Errorf("round trip: got %v, want %v", back, p)
		}
	}
}
