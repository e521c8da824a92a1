package gamedata

import "fmt"

// StackPolicy controls how a new instance of a status effect interacts
// with instances of the same kind already on the target.
type StackPolicy int

const (
	// StackStrongestOnly keeps at most one instance: a new application
	// replaces the current one only if strictly stronger, and always
	// refreshes the duration.
	StackStrongestOnly StackPolicy = iota
	// StackUnlimited appends every instance independently.
	StackUnlimited
	// StackLimited appends up to MaxStacks instances, later stacks at
	// reduced effectiveness; the oldest instance is evicted when full.
	StackLimited
)

var stackPolicyNames = map[StackPolicy]string{
	StackStrongestOnly: "strongest_only",
	StackUnlimited:     "unlimited",
	StackLimited:       "limited",
}

func (p StackPolicy) String() string {
	if s, ok := stackPolicyNames[p]; ok {
		return s
	}
	return fmt.Sprintf("StackPolicy(%d)", int(p))
}

// MarshalText implements encoding.TextMarshaler.
func (p StackPolicy) MarshalText() ([]byte, error) {
	s, ok := stackPolicyNames[p]
	if !ok {
		return nil, fmt.Errorf("unknown stack policy %d", int(p))
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *StackPolicy) UnmarshalText(text []byte) error {
	for policy, name := range stackPolicyNames {
		if name == string(text) {
			*p = policy
			return nil
		}
	}
	return fmt.Errorf("unknown stack policy %q", string(text))
}

// DotConfig describes the behavior of one ailment kind: how long it lasts,
// how hard it ticks, and how further applications stack. An ailment with
// BaseDamagePercent of zero is a pure debuff (freeze, chill, fear, slow)
// and deals no tick damage.
type DotConfig struct {
	Ailment Ailment `json:"ailment"`

	// BaseDuration is the lifetime in seconds of a fresh instance.
	BaseDuration float64 `json:"baseDuration"`
	// TickRate is the interval in seconds between damage applications.
	TickRate float64 `json:"tickRate"`
	// BaseDamagePercent is the fraction of the instance magnitude dealt
	// as damage per second before modifiers.
	BaseDamagePercent float64 `json:"baseDamagePercent"`

	// DamageType the ticks deal, for resistance purposes downstream.
	DamageType DamageType `json:"damageType"`

	StackPolicy StackPolicy `json:"stackPolicy"`
	// MaxStacks bounds instance count under StackLimited.
	MaxStacks int `json:"maxStacks,omitempty"`
	// StackEffectiveness scales the magnitude of every stack after the
	// first under StackLimited.
	StackEffectiveness float64 `json:"stackEffectiveness,omitempty"`

	// MovingMultiplier scales tick damage while the target moves
	// (bleed-style ailments). Zero means no movement interaction.
	MovingMultiplier float64 `json:"movingMultiplier,omitempty"`
}

// DotRegistry holds the ailment configurations keyed by kind.
type DotRegistry struct {
	configs map[Ailment]DotConfig
}

// LoadDotRegistry builds the registry from the embedded dots.json.
func LoadDotRegistry() (*DotRegistry, error) {
	configs, err := Load[[]DotConfig]("dots.json")
	if err != nil {
		return nil, err
	}
	reg := &DotRegistry{configs: make(map[Ailment]DotConfig, len(configs))}
	for _, cfg := range configs {
		if _, dup := reg.configs[cfg.Ailment]; dup {
			return nil, fmt.Errorf("duplicate dot config for ailment %s", cfg.Ailment)
		}
		reg.configs[cfg.Ailment] = cfg
	}
	return reg, nil
}

// MustLoadDotRegistry builds the registry, panicking on error.
func MustLoadDotRegistry() *DotRegistry {
	reg, err := LoadDotRegistry()
	if err != nil {
		panic(err)
	}
	return reg
}

// Get returns the configuration for an ailment kind.
func (r *DotRegistry) Get(a Ailment) (DotConfig, bool) {
	cfg, ok := r.configs[a]
	return cfg, ok
}

// All returns every configured ailment kind.
func (r *DotRegistry) All() []DotConfig {
	out := make([]DotConfig, 0, len(r.configs))
	for _, cfg := range r.configs {
		out = append(out, cfg)
	}
	return out
}

// Len returns the number of configured ailments.
func (r *DotRegistry) Len() int { return len(r.configs) }
