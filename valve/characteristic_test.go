// Package valve_test contains unit tests for the inherent characteristic
// and its bisection inversion: midpoint identity, strict monotonicity for
// both curve directions, opening round trips, and failure modes.
package valve_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hydrath/bisect"
	"github.com/katalvlaran/hydrath/valve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
)

// ------------------------------------------------------------------------
// 1. Curve shape.
// ------------------------------------------------------------------------

func TestCharacteristic_MidpointIdentity(t *testing.T) {
	// At x = e the exponent vanishes: y = d/(1+e⁰) = d/2, exactly.
	y, err := valve.Characteristic(50, 2, 1, 50)
	require.NoError(t, err)
	assert.Equal(t, 0.5, y, "y(e) must be exactly half the upper asymptote")

	y, err = valve.Characteristic(30, -1.7, 0.84, 30)
	require.NoError(t, err)
	assert.Equal(t, 0.42, y)
}

func TestCharacteristic_StrictlyDecreasingForPositiveB(t *testing.T) {
	prev := math.Inf(1)
	for x := 0.5; x <= 100; x += 0.5 {
		y, err := valve.Characteristic(x, 2, 1, 50)
		require.NoError(t, err)
		require.Less(t, y, prev, "b>0 curve must fall strictly, x=%g", x)
		prev = y
	}
}

func TestCharacteristic_StrictlyIncreasingForNegativeB(t *testing.T) {
	prev := 0.0
	for x := 0.5; x <= 100; x += 0.5 {
		y, err := valve.Characteristic(x, -2, 1, 50)
		require.NoError(t, err)
		require.Greater(t, y, prev, "b<0 curve must rise strictly, x=%g", x)
		prev = y
	}
}

func TestCharacteristic_DerivativeSign(t *testing.T) {
	// Numerical derivative confirms the direction over the whole travel.
	rising := func(x float64) float64 {
		y, err := valve.Characteristic(x, -2, 1, 50)
		require.NoError(t, err)

		return y
	}
	for _, x := range []float64{0.1, 1, 10, 50, 90} {
		d := fd.Derivative(rising, x, &fd.Settings{Formula: fd.Central})
		assert.Positive(t, d, "dy/dx at x=%g", x)
	}
}

func TestCharacteristic_Asymptotes(t *testing.T) {
	// Near closed travel the b>0 curve approaches d, the b<0 curve 0;
	// wide open the b>0 curve is well below d/2.
	yNearZero, err := valve.Characteristic(1e-9, 2, 1, 50)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, yNearZero, 1e-12)

	yNearZero, err = valve.Characteristic(1e-9, -2, 1, 50)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, yNearZero, 1e-12)

	yOpen, err := valve.Characteristic(100, 2, 1, 50)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, yOpen, 1e-12, "1/(1+exp(2·ln2)) = 1/5")
}

func TestCharacteristic_DomainErrors(t *testing.T) {
	for _, x := range []float64{0, -1, 100.01, math.NaN()} {
		_, err := valve.Characteristic(x, 2, 1, 50)
		assert.ErrorIs(t, err, valve.ErrOpeningRange, "x=%g", x)
	}

	_, err := valve.Characteristic(50, 2, 1, 0)
	assert.ErrorIs(t, err, valve.ErrCurveParam, "e must be positive")

	_, err = valve.Characteristic(50, 2, 0, 50)
	assert.ErrorIs(t, err, valve.ErrCurveParam, "d must be positive")
}

// ------------------------------------------------------------------------
// 2. Inversion.
// ------------------------------------------------------------------------

func TestOpeningForKv_RoundTrip(t *testing.T) {
	// Recover the opening that produced a relative Kv, for both curve
	// directions and openings across the whole travel.
	for _, b := range []float64{2, -2, -0.8} {
		for _, x0 := range []float64{0.05, 1, 12.5, 50, 75, 99} {
			y, err := valve.Characteristic(x0, b, 1, 50)
			require.NoError(t, err)

			got, err := valve.OpeningForKv(y, b, 1, 50)
			require.NoError(t, err, "b=%g x0=%g", b, x0)
			assert.InDelta(t, x0, got, 2*valve.DefaultOpeningTolerance, "b=%g x0=%g", b, x0)
		}
	}
}

func TestOpeningForKv_IterationCount(t *testing.T) {
	// ⌈log₂(100/1e-4)⌉ = 20 halvings, independent of the curve parameters.
	iterations := 0
	_, err := valve.OpeningForKv(0.5, -2, 1, 50,
		bisect.WithObserver(func(bisect.Iteration) { iterations++ }))
	require.NoError(t, err)
	assert.Equal(t, bisect.Steps(valve.DefaultOpeningLo, valve.DefaultOpeningHi, valve.DefaultOpeningTolerance), iterations)
	assert.Equal(t, 20, iterations)
}

func TestOpeningForKv_TargetBeyondAsymptotes(t *testing.T) {
	// Targets at or past the asymptotes cannot be bracketed on [0, 100].
	for _, target := range []float64{1.5, -0.1} {
		_, err := valve.OpeningForKv(target, -2, 1, 50)
		assert.ErrorIs(t, err, bisect.ErrNoSignChange, "target=%g", target)
	}
}

func TestOpeningForKv_ParamValidation(t *testing.T) {
	_, err := valve.OpeningForKv(0.5, 0, 1, 50)
	assert.ErrorIs(t, err, valve.ErrCurveParam, "flat curve (b=0) is not invertible")

	_, err = valve.OpeningForKv(0.5, -2, 1, -50)
	assert.ErrorIs(t, err, valve.ErrCurveParam)

	_, err = valve.OpeningForKv(0.5, -2, 0, 50)
	assert.ErrorIs(t, err, valve.ErrCurveParam)
}
