package function

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirst(t *testing.T) {
	tests := []struct {
		x, f, fPrime float64
	}{
		{0, -5, 17.7},
		{1, 3, 0.3},
		{2, -0.4, -5.1},
		{3, -3.2, 1.5},
		{4, 6.6, 20.1},
	}
	for _, tt := range tests {
		f, err := First.F(tt.x)
		require.NoError(t, err)
		assert.InDelta(t, tt.f, f, 1e-9, "f(%v)", tt.x)

		fPrime, err := First.FPrime(tt.x)
		require.NoError(t, err)
		assert.InDelta(t, tt.fPrime, fPrime, 1e-9, "f'(%v)", tt.x)
	}
}

func TestFirstKnownRoots(t *testing.T) {
	for _, root := range []float64{0.365, 1.922, 3.563} {
		f, err := First.F(root)
		require.NoError(t, err)
		assert.Less(t, math.Abs(f), 0.01, "f(%v)", root)
	}
}

func TestSecond(t *testing.T) {
	f, err := Second.F(126.632)
	require.NoError(t, err)
	assert.Less(t, math.Abs(f), 1e-3)

	f120, err := Second.F(120)
	require.NoError(t, err)
	f130, err := Second.F(130)
	require.NoError(t, err)
	assert.Less(t, f120*f130, 0.)

	fPrime, err := Second.FPrime(130)
	require.NoError(t, err)
	expected := 1 - math.Cosh(50./130.) + 50*math.Sinh(50./130.)/130.
	assert.InDelta(t, expected, fPrime, 1e-12)
}

func TestSecondDivisionByZero(t *testing.T) {
	_, err := Second.F(0)
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = Second.FPrime(0)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestByID(t *testing.T) {
	spec, err := ByID(1)
	require.NoError(t, err)
	assert.Equal(t, 1, spec.ID)

	spec, err = ByID(2)
	require.NoError(t, err)
	assert.Equal(t, 2, spec.ID)

	_, err = ByID(3)
	assert.ErrorIs(t, err, ErrUnknownFunction)
}
