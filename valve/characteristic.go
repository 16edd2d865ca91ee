package valve

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hydrath/bisect"
)

// characteristicOf is the raw three-parameter log-logistic curve, without
// domain validation. At x = 0 it evaluates in the IEEE limit: ln 0 = −∞, so
// y = d for b > 0 and y = 0 for b < 0, which keeps the closed inversion
// bracket [0, 100] total.
func characteristicOf(x, b, d, e float64) float64 {
	return d / (1 + math.Exp(b*(math.Log(x)-math.Log(e))))
}

// Characteristic returns the relative flow coefficient (fraction of the
// upper asymptote d) of a valve at relative opening x, % of travel, using
// the three-parameter log-logistic inherent characteristic
//
//	y = d / (1 + exp(b·(ln x − ln e)))
//
// e is the curve midpoint (y = d/2 at x = e), b the shape parameter: b < 0
// yields the usual strictly rising valve curve, b > 0 a strictly falling
// one. Opening must lie in (0, 100]; the midpoint e and asymptote d must be
// positive.
func Characteristic(x, b, d, e float64) (float64, error) {
	if math.IsNaN(x) || x <= 0 || x > 100 {
		return 0, fmt.Errorf("valve: opening=%g %%: %w", x, ErrOpeningRange)
	}
	if math.IsNaN(e) || e <= 0 {
		return 0, fmt.Errorf("valve: e=%g: %w", e, ErrCurveParam)
	}
	if math.IsNaN(d) || d <= 0 {
		return 0, fmt.Errorf("valve: d=%g: %w", d, ErrCurveParam)
	}

	return characteristicOf(x, b, d, e), nil
}

// OpeningForKv inverts the inherent characteristic: it returns the relative
// opening, % of travel, at which the valve delivers the target relative
// flow coefficient. The log-logistic curve has no closed-form inverse for
// arbitrary parameters, so the opening is found with hydrath/bisect on
// [DefaultOpeningLo, DefaultOpeningHi] with tolerance
// DefaultOpeningTolerance; pass bisect options to override.
//
// A target outside the curve's range over the bracket — at or beyond the
// asymptotes 0 and d — surfaces as bisect.ErrNoSignChange.
func OpeningForKv(target, b, d, e float64, opts ...bisect.Option) (float64, error) {
	// b = 0 flattens the curve to d/2 everywhere: nothing to invert, and the
	// x = 0 limit degenerates to 0·∞.
	if math.IsNaN(b) || b == 0 {
		return 0, fmt.Errorf("valve: b=%g: %w", b, ErrCurveParam)
	}
	if math.IsNaN(e) || e <= 0 {
		return 0, fmt.Errorf("valve: e=%g: %w", e, ErrCurveParam)
	}
	if math.IsNaN(d) || d <= 0 {
		return 0, fmt.Errorf("valve: d=%g: %w", d, ErrCurveParam)
	}

	forward := func(x float64) float64 { return characteristicOf(x, b, d, e) }
	solveOpts := append([]bisect.Option{bisect.WithTolerance(DefaultOpeningTolerance)}, opts...)

	return bisect.Solve(forward, target, DefaultOpeningLo, DefaultOpeningHi, solveOpts...)
}
