package damage

import (
	"github.com/samdwyer/statforge/internal/dice"
	"github.com/samdwyer/statforge/internal/gamedata"
	"github.com/samdwyer/statforge/internal/stat"
)

// Generate rolls one use of a skill into a packet. Multi-hit skills roll
// every hit independently and aggregate: damages and status damage sum,
// and the packet is critical if any hit crit.
func Generate(attacker *stat.Block, skill gamedata.SkillDef, dots *gamedata.DotRegistry, roller dice.Roller) *Packet {
	hits := skill.HitsPerAttack
	if hits < 1 {
		hits = 1
	}

	packet := generateHit(attacker, skill, dots, roller)
	for i := 1; i < hits; i++ {
		next := generateHit(attacker, skill, dots, roller)
		for d := range packet.Damages {
			packet.Damages[d] += next.Damages[d]
		}
		if next.IsCritical {
			packet.IsCritical = true
			packet.CritMultiplier = next.CritMultiplier
		}
		packet.Ailments = mergeAilments(packet.Ailments, next.Ailments)
	}
	packet.HitCount = hits
	return packet
}

// generateHit runs the full single-hit pipeline: base damage, conversion,
// scaling, crit, then status derivation from the post-crit damages.
func generateHit(attacker *stat.Block, skill gamedata.SkillDef, dots *gamedata.DotRegistry, roller dice.Roller) *Packet {
	packet := NewPacket(attacker.ID, skill.ID)

	base := rollBaseDamage(attacker, skill, roller)
	base = applyConversions(base, skill)

	for _, d := range gamedata.AllDamageTypes() {
		if base[d] <= 0 {
			continue
		}
		mods := attacker.Damage[d]
		scaled := base[d] * (1 + mods.Increased)
		for _, m := range mods.More {
			scaled *= 1 + m
		}
		scaled *= skill.DamageEffectiveness * skill.Effectiveness(d)
		if scaled > 0 {
			packet.Damages[d] = scaled
		}
	}

	chance := CritChance(attacker, skill)
	if roller.Float64() < chance {
		packet.IsCritical = true
		packet.CritMultiplier = attacker.CritMultiplier.Compute() + skill.CritMultiplierBonus
		for d := range packet.Damages {
			packet.Damages[d] *= packet.CritMultiplier
		}
	}

	for _, d := range gamedata.AllDamageTypes() {
		packet.Penetration[d] = attacker.PenetrationFor(d)
	}
	packet.Accuracy = attacker.Accuracy.Compute()

	packet.Ailments = deriveAilments(attacker, skill, dots, packet.Damages)
	return packet
}

// rollBaseDamage gathers the pre-conversion damage pool: the skill's own
// rolls, plus weapon damage for attack skills.
func rollBaseDamage(attacker *stat.Block, skill gamedata.SkillDef, roller dice.Roller) [gamedata.NumDamageTypes]float64 {
	var base [gamedata.NumDamageTypes]float64

	for _, bd := range skill.BaseDamages {
		base[bd.Type] += dice.Between(roller, bd.Min, bd.Max)
	}

	if skill.IsAttack() && skill.WeaponEffectiveness > 0 {
		for _, d := range gamedata.AllDamageTypes() {
			w := attacker.Weapon.Damage[d]
			if w.Max <= 0 {
				continue
			}
			rolled := dice.Between(roller,
				w.Min*skill.WeaponEffectiveness,
				w.Max*skill.WeaponEffectiveness)
			if d == gamedata.Physical {
				rolled *= 1 + attacker.Weapon.PhysicalIncreased
			}
			base[d] += rolled
		}
	}
	return base
}

// applyConversions moves damage between types in declaration order, so
// conversions chain: damage converted into a later type is converted
// again by that type's rules. Fractions summing past 1 over-move and
// leave the source negative; nothing caps them.
func applyConversions(pool [gamedata.NumDamageTypes]float64, skill gamedata.SkillDef) [gamedata.NumDamageTypes]float64 {
	if len(skill.DamageConversions) == 0 {
		return pool
	}
	for _, from := range gamedata.AllDamageTypes() {
		available := pool[from]
		if available <= 0 {
			continue
		}
		moved := 0.0
		for _, to := range gamedata.AllDamageTypes() {
			if to == from {
				continue
			}
			fraction := skill.Conversion(from, to)
			if fraction <= 0 {
				continue
			}
			amount := available * fraction
			pool[to] += amount
			moved += amount
		}
		pool[from] -= moved
	}
	return pool
}

// CritChance computes the skill's effective crit chance as a fraction in
// [0, 1]. Attack skills start from the weapon's crit; the attacker's flat,
// increased and more crit modifiers all apply.
func CritChance(attacker *stat.Block, skill gamedata.SkillDef) float64 {
	base := skill.BaseCritChance
	if skill.IsAttack() {
		base += attacker.Weapon.CritChance
	}
	v := attacker.CritChance.Clone()
	v.AddFlat(base)
	return clamp01(v.Compute())
}

// deriveAilments converts post-crit hit damage into pending status
// applications. Skill and attacker conversion fractions are additive per
// (damage type, ailment) pair.
func deriveAilments(attacker *stat.Block, skill gamedata.SkillDef, dots *gamedata.DotRegistry, damages [gamedata.NumDamageTypes]float64) []PendingAilment {
	var pending []PendingAilment
	for kind := gamedata.Ailment(0); kind < gamedata.NumAilments; kind++ {
		statusDamage := 0.0
		for _, d := range gamedata.AllDamageTypes() {
			if damages[d] <= 0 {
				continue
			}
			conv := skill.AilmentConversionFor(d, kind) + attacker.ConversionFor(d, kind)
			if conv > 0 {
				statusDamage += damages[d] * conv
			}
		}
		if statusDamage <= 0 {
			continue
		}

		cfg, ok := dots.Get(kind)
		if !ok {
			continue
		}
		bonus := attacker.Ailments[kind]
		pending = append(pending, PendingAilment{
			Kind:         kind,
			StatusDamage: statusDamage * (1 + bonus.Magnitude),
			Duration:     cfg.BaseDuration * (1 + bonus.DurationIncreased),
			DotBonus:     bonus.DotBonus,
		})
	}
	return pending
}

// mergeAilments sums status damage per kind across hits, keeping the
// duration and bonus of the first occurrence.
func mergeAilments(into, from []PendingAilment) []PendingAilment {
	for _, p := range from {
		merged := false
		for i := range into {
			if into[i].Kind == p.Kind {
				into[i].StatusDamage += p.StatusDamage
				merged = true
				break
			}
		}
		if !merged {
			into = append(into, p)
		}
	}
	return into
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
