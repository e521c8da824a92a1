package stat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueCompute(t *testing.T) {
	v := NewValue(100)
	assert.Equal(t, 100.0, v.Compute())

	v.AddFlat(20)
	assert.Equal(t, 120.0, v.Compute())

	// Increased layer is additive: 50% + 30% = 80% increased.
	v.AddIncreased(0.5)
	v.AddIncreased(0.3)
	assert.InDelta(t, 216.0, v.Compute(), 1e-9)

	// More layer compounds: *1.2 then *0.7.
	v.AddMore(0.2)
	v.AddMore(-0.3)
	assert.InDelta(t, 216.0*1.2*0.7, v.Compute(), 1e-9)
}

func TestValueBaseAndIncreasedOnly(t *testing.T) {
	v := NewValue(100)
	v.AddIncreased(0.5)
	v.AddIncreased(0.3)
	assert.InDelta(t, 180.0, v.Compute(), 1e-9)
}

func TestValueNoClamping(t *testing.T) {
	// Negative results pass through untouched.
	v := NewValue(10)
	v.AddFlat(-50)
	assert.InDelta(t, -40.0, v.Compute(), 1e-9)

	v = NewValue(100)
	v.AddMore(-1.5)
	assert.InDelta(t, -50.0, v.Compute(), 1e-9)
}

func TestValueCloneIsIndependent(t *testing.T) {
	v := NewValue(100)
	v.AddMore(0.5)

	c := v.Clone()
	c.AddMore(0.5)
	c.AddFlat(10)

	assert.InDelta(t, 150.0, v.Compute(), 1e-9)
	assert.InDelta(t, 110*1.5*1.5, c.Compute(), 1e-9)
}
