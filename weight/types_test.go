package weight_test

import (
	"testing"

	"github.com/katalvlaran/planarcut/weight"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCost_FiniteInfinite(t *testing.T) {
	f := weight.Finite(3)
	inf := weight.Infinite[int]()

	assert.True(t, f.IsFinite())
	assert.False(t, f.IsInfinite())
	assert.True(t, inf.IsInfinite())
	assert.False(t, inf.IsFinite())

	v, ok := f.Value()
	require.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = inf.Value()
	assert.False(t, ok)
}

func TestCost_Unwrap_PanicsOnInfinite(t *testing.T) {
	assert.Panics(t, func() {
		weight.Infinite[int]().Unwrap()
	})
	assert.NotPanics(t, func() {
		weight.Finite(5).Unwrap()
	})
}

func TestCost_AddSub(t *testing.T) {
	a := weight.Finite(10)
	b := weight.Finite(4)
	inf := weight.Infinite[int]()

	assert.Equal(t, weight.Finite(14), a.Add(b))
	assert.Equal(t, weight.Finite(6), a.Sub(b))
	assert.True(t, a.Add(inf).IsInfinite())
	assert.True(t, inf.Sub(a).IsInfinite())
}

func TestCost_Less(t *testing.T) {
	a := weight.Finite(1)
	b := weight.Finite(2)
	inf := weight.Infinite[int]()

	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.True(t, a.Less(inf))
	assert.False(t, inf.Less(a))
	assert.False(t, inf.Less(inf))
}

func TestCost_String(t *testing.T) {
	assert.Equal(t, "7", weight.Finite(7).String())
	assert.Equal(t, "∞", weight.Infinite[int]().String())
}

func TestCost_Float(t *testing.T) {
	a := weight.Finite(1.5)
	b := weight.Finite(2.25)
	assert.InDelta(t, 3.75, a.Add(b).Unwrap(), 1e-9)
}
