// Package damage turns a skill use into a damage packet: the typed hit
// damage, crit outcome, penetration, accuracy, and pending status
// applications that defense resolution consumes.
package damage

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/samdwyer/statforge/internal/gamedata"
)

// PendingAilment is a status application carried by a packet, resolved
// against the defender's max life for its apply chance.
type PendingAilment struct {
	Kind gamedata.Ailment
	// StatusDamage is the converted hit damage, already scaled by the
	// attacker's magnitude bonus. It doubles as the effect magnitude.
	StatusDamage float64
	// Duration in seconds, already scaled by duration bonuses.
	Duration float64
	// DotBonus is the attacker's tick damage bonus, frozen here so the
	// effect keeps it after the attacker's stats change.
	DotBonus float64
}

// Packet is one delivered attack or cast: everything the defender needs
// to resolve it, with no reference back to the attacker.
type Packet struct {
	PacketID uuid.UUID
	SourceID string
	SkillID  string

	// Damages are the post-crit hit amounts per type.
	Damages [gamedata.NumDamageTypes]float64

	IsCritical     bool
	CritMultiplier float64

	// Penetration per type, in resistance percent.
	Penetration [gamedata.NumDamageTypes]float64

	Accuracy float64

	Ailments []PendingAilment

	// HitCount is how many hits this packet aggregates.
	HitCount int
}

// NewPacket returns an empty packet attributed to a source and skill.
func NewPacket(sourceID, skillID string) *Packet {
	return &Packet{
		PacketID: uuid.New(),
		SourceID: sourceID,
		SkillID:  skillID,
		HitCount: 1,
	}
}

// TotalDamage sums the hit damage across all types.
func (p *Packet) TotalDamage() float64 {
	total := 0.0
	for _, amt := range p.Damages {
		total += amt
	}
	return total
}

// DamageOf returns the hit damage of one type.
func (p *Packet) DamageOf(d gamedata.DamageType) float64 {
	return p.Damages[d]
}

// HasDamage reports whether the packet carries any hit damage.
func (p *Packet) HasDamage() bool {
	return p.TotalDamage() > 0
}

// PenetrationOf returns the resistance penetration for a type.
func (p *Packet) PenetrationOf(d gamedata.DamageType) float64 {
	return p.Penetration[d]
}

// Breakdown renders the typed damage for logs.
func (p *Packet) Breakdown() string {
	parts := make([]string, 0, gamedata.NumDamageTypes)
	for _, d := range gamedata.AllDamageTypes() {
		if p.Damages[d] > 0 {
			parts = append(parts, fmt.Sprintf("%.1f %s", p.Damages[d], d))
		}
	}
	if len(parts) == 0 {
		return "no damage"
	}
	return strings.Join(parts, ", ")
}
