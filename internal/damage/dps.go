package damage

import (
	"github.com/samdwyer/statforge/internal/gamedata"
	"github.com/samdwyer/statforge/internal/stat"
)

// AverageByType computes the expected per-type hit damage using roll
// midpoints instead of randomness, after conversion and scaling but
// before crit.
func AverageByType(attacker *stat.Block, skill gamedata.SkillDef) [gamedata.NumDamageTypes]float64 {
	var base [gamedata.NumDamageTypes]float64
	for _, bd := range skill.BaseDamages {
		base[bd.Type] += bd.Average()
	}
	if skill.IsAttack() && skill.WeaponEffectiveness > 0 {
		for _, d := range gamedata.AllDamageTypes() {
			w := attacker.Weapon.Damage[d]
			if w.Max <= 0 {
				continue
			}
			avg := (w.Min + w.Max) / 2 * skill.WeaponEffectiveness
			if d == gamedata.Physical {
				avg *= 1 + attacker.Weapon.PhysicalIncreased
			}
			base[d] += avg
		}
	}

	base = applyConversions(base, skill)

	var out [gamedata.NumDamageTypes]float64
	for _, d := range gamedata.AllDamageTypes() {
		if base[d] <= 0 {
			continue
		}
		mods := attacker.Damage[d]
		scaled := base[d] * (1 + mods.Increased)
		for _, m := range mods.More {
			scaled *= 1 + m
		}
		out[d] = scaled * skill.DamageEffectiveness * skill.Effectiveness(d)
	}
	return out
}

// EstimateDPS computes a skill's expected damage per second against a
// target with no defenses: average hit damage weighted by crit, times
// speed and hit count, plus the steady-state tick damage of the ailments
// each use applies.
func EstimateDPS(attacker *stat.Block, skill gamedata.SkillDef, dots *gamedata.DotRegistry) float64 {
	avg := AverageByType(attacker, skill)
	totalAvg := 0.0
	for _, amt := range avg {
		totalAvg += amt
	}

	critChance := CritChance(attacker, skill)
	critMult := attacker.CritMultiplier.Compute() + skill.CritMultiplierBonus
	critWeight := 1 + (critMult-1)*critChance

	speed := attacker.CastSpeed.Compute()
	if skill.IsAttack() {
		speed = attacker.AttackSpeed.Compute() * attacker.Weapon.AttackSpeed
	}
	speed = skill.EffectiveSpeed(speed)

	hitDPS := totalAvg * critWeight * speed * float64(skill.HitsPerAttack)

	dotDPS := 0.0
	for kind := gamedata.Ailment(0); kind < gamedata.NumAilments; kind++ {
		statusDamage := 0.0
		for _, d := range gamedata.AllDamageTypes() {
			if avg[d] <= 0 {
				continue
			}
			conv := skill.AilmentConversionFor(d, kind) + attacker.ConversionFor(d, kind)
			if conv > 0 {
				statusDamage += avg[d] * conv
			}
		}
		if statusDamage <= 0 {
			continue
		}
		cfg, ok := dots.Get(kind)
		if !ok || cfg.BaseDamagePercent <= 0 {
			continue
		}
		bonus := attacker.Ailments[kind]
		perApplication := cfg.BaseDamagePercent * statusDamage * (1 + bonus.Magnitude) * (1 + bonus.DotBonus)
		dotDPS += perApplication * speed
	}

	return hitDPS + dotDPS
}
