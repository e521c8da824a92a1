package gamedata

import "fmt"

// SkillRegistry holds all loaded skill definitions keyed by ID.
type SkillRegistry struct {
	skills map[string]SkillDef
	order  []string
}

// LoadSkillRegistry builds the registry from the embedded skills.json.
func LoadSkillRegistry() (*SkillRegistry, error) {
	defs, err := Load[[]SkillDef]("skills.json")
	if err != nil {
		return nil, err
	}
	reg := &SkillRegistry{skills: make(map[string]SkillDef, len(defs))}
	for i := range defs {
		defs[i].normalize()
		if defs[i].ID == "" {
			return nil, fmt.Errorf("skill at index %d has no id", i)
		}
		if _, dup := reg.skills[defs[i].ID]; dup {
			return nil, fmt.Errorf("duplicate skill id %q", defs[i].ID)
		}
		reg.skills[defs[i].ID] = defs[i]
		reg.order = append(reg.order, defs[i].ID)
	}
	return reg, nil
}

// MustLoadSkillRegistry builds the registry, panicking on error.
func MustLoadSkillRegistry() *SkillRegistry {
	reg, err := LoadSkillRegistry()
	if err != nil {
		panic(err)
	}
	return reg
}

// Get returns the skill with the given ID.
func (r *SkillRegistry) Get(id string) (SkillDef, bool) {
	def, ok := r.skills[id]
	return def, ok
}

// MustGet returns the skill with the given ID, panicking if absent.
func (r *SkillRegistry) MustGet(id string) SkillDef {
	def, ok := r.skills[id]
	if !ok {
		panic(fmt.Sprintf("unknown skill id %q", id))
	}
	return def
}

// IDs returns all skill IDs in file order.
func (r *SkillRegistry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of loaded skills.
func (r *SkillRegistry) Len() int { return len(r.skills) }
