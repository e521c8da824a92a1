package stat

import (
	"sort"

	"github.com/samdwyer/statforge/internal/gamedata"
)

// Source priorities. Lower priorities contribute first during a rebuild.
const (
	PriorityBase      = -100
	PriorityGear      = 0
	PrioritySkillTree = 100
	PriorityBuff      = 200
)

// Source contributes modifiers to a block rebuild. Contributions within a
// rebuild are order-insensitive in effect (all layers are commutative),
// but sources are still applied in stable priority order so more layers
// accumulate deterministically.
type Source interface {
	ID() string
	Priority() int
	Contribute(*Accumulator)
}

// sortSources orders sources by ascending priority, preserving the
// relative order of equal priorities.
func sortSources(sources []Source) []Source {
	sorted := make([]Source, len(sources))
	copy(sorted, sources)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() < sorted[j].Priority()
	})
	return sorted
}

// ModifierSource is a plain bag of modifiers at a fixed priority. Gear,
// passive tree allocations, and buffs are all expressed through it.
type ModifierSource struct {
	SourceID  string
	Prio      int
	Modifiers []Modifier

	// Weapon, Ailments and Conversions are optional extras mostly used
	// by gear.
	Weapon      *WeaponStats
	Ailments    []AilmentGrant
	Conversions []ConversionGrant
}

// AilmentGrant pairs an ailment with the stats a source grants it.
type AilmentGrant struct {
	Kind  gamedata.Ailment
	Stats AilmentStats
}

// ConversionGrant adds a hit-to-status conversion fraction.
type ConversionGrant struct {
	From     gamedata.DamageType
	To       gamedata.Ailment
	Fraction float64
}

func (s *ModifierSource) ID() string    { return s.SourceID }
func (s *ModifierSource) Priority() int { return s.Prio }

func (s *ModifierSource) Contribute(a *Accumulator) {
	a.AddAll(s.Modifiers)
	if s.Weapon != nil {
		a.SetWeapon(*s.Weapon)
	}
	for _, g := range s.Ailments {
		a.AddAilment(g.Kind, g.Stats)
	}
	for _, c := range s.Conversions {
		a.AddConversion(c.From, c.To, c.Fraction)
	}
}

// Gear returns a modifier source at gear priority.
func Gear(id string, mods ...Modifier) *ModifierSource {
	return &ModifierSource{SourceID: id, Prio: PriorityGear, Modifiers: mods}
}

// SkillTree returns a modifier source at passive-tree priority.
func SkillTree(id string, mods ...Modifier) *ModifierSource {
	return &ModifierSource{SourceID: id, Prio: PrioritySkillTree, Modifiers: mods}
}

// Weapon returns a gear source that equips the given weapon.
func Weapon(id string, w WeaponStats, mods ...Modifier) *ModifierSource {
	return &ModifierSource{SourceID: id, Prio: PriorityGear, Modifiers: mods, Weapon: &w}
}

// Buff is a timed modifier source at buff priority. Duration <= 0 means
// the buff never expires on its own.
type Buff struct {
	ModifierSource
	Duration  float64
	Remaining float64
}

// NewBuff returns a timed buff.
func NewBuff(id string, duration float64, mods ...Modifier) *Buff {
	return &Buff{
		ModifierSource: ModifierSource{SourceID: id, Prio: PriorityBuff, Modifiers: mods},
		Duration:       duration,
		Remaining:      duration,
	}
}

// Expired reports whether a timed buff has run out.
func (b *Buff) Expired() bool { return b.Duration > 0 && b.Remaining <= 0 }

// Func adapts a function into a Source for one-off contributions.
type Func struct {
	SourceID string
	Prio     int
	Fn       func(*Accumulator)
}

func (f *Func) ID() string    { return f.SourceID }
func (f *Func) Priority() int { return f.Prio }
func (f *Func) Contribute(a *Accumulator) {
	if f.Fn != nil {
		f.Fn(a)
	}
}
