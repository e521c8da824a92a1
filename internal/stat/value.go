// Package stat implements layered stat values, the sources that
// contribute to them, and the aggregated stat block that combat reads.
package stat

// Value is a stat computed from three modifier layers:
//
//	(base + flat) * (1 + sum of increased) * product of (1 + more_i)
//
// Flat and increased contributions are additive within their layer; each
// more multiplier compounds. Compute never clamps: consumers that need a
// floor or cap apply it themselves.
type Value struct {
	Base      float64
	Flat      float64
	Increased float64
	More      []float64
}

// NewValue returns a Value with the given base and no modifiers.
func NewValue(base float64) Value {
	return Value{Base: base}
}

// AddFlat adds to the flat layer.
func (v *Value) AddFlat(amount float64) { v.Flat += amount }

// AddIncreased adds to the additive percentage layer, as a fraction
// (0.5 means 50% increased).
func (v *Value) AddIncreased(fraction float64) { v.Increased += fraction }

// AddMore appends a compounding multiplier, as a fraction (0.2 means 20%
// more; -0.3 means 30% less).
func (v *Value) AddMore(fraction float64) { v.More = append(v.More, fraction) }

// Compute collapses the layers into the final value.
func (v Value) Compute() float64 {
	result := (v.Base + v.Flat) * (1 + v.Increased)
	for _, m := range v.More {
		result *= 1 + m
	}
	return result
}

// Clone deep-copies the value, including the more layer.
func (v Value) Clone() Value {
	out := v
	if v.More != nil {
		out.More = make([]float64, len(v.More))
		copy(out.More, v.More)
	}
	return out
}

// merge folds another value's modifier layers into this one, leaving the
// base untouched.
func (v *Value) merge(o Value) {
	v.Flat += o.Flat
	v.Increased += o.Increased
	v.More = append(v.More, o.More...)
}
