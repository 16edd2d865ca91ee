package bisect

import (
	"fmt"
	"math"
)

// Solve finds x* in [lo, hi] with f(x*) ≈ target by classic bisection.
// It accepts functional options to customize behavior (WithTolerance,
// WithMaxIterations, WithObserver).
//
// Returns:
//
//   - x*:  the last evaluated midpoint, always inside [lo, hi]. For a
//     zero-width bracket (lo == hi) it returns lo immediately, with zero
//     iterations.
//   - err: an error if inputs are invalid or the bracket does not straddle
//     the target.
//
// Preconditions and validation (in order):
//  1. f must be non-nil (ErrNilModel).
//  2. lo and hi must be finite with lo ≤ hi (ErrInvalidBracket).
//  3. Tolerance must be > 0 (ErrInvalidTolerance).
//  4. MaxIterations must be > 0 (ErrInvalidIterCap).
//  5. f(lo)−target and f(hi)−target must not share a sign (ErrNoSignChange).
//
// Algorithm:
//
//	Evaluate the residual at both endpoints, then repeatedly halve the
//	bracket, keeping the half across which the residual changes sign, until
//	hi−lo ≤ Tolerance. An exact zero residual at the midpoint is not
//	special-cased with an early exit: the sign test simply parks the root on
//	the shrinking bracket's boundary and the loop runs its full
//	⌈log₂(width/tol)⌉ course. Exact zeros are rare in float64 and cost at
//	most the normal number of halvings.
//
// Complexity:
//
//   - Time:  exactly ⌈log₂((hi−lo)/Tolerance)⌉ iterations, one forward-model
//     evaluation each (plus two endpoint evaluations up front).
//   - Space: O(1).
func Solve(f Func, target, lo, hi float64, opts ...Option) (float64, error) {
	// 1) Build Options from defaults and apply functional overrides.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate the forward model.
	if f == nil {
		return 0, ErrNilModel
	}

	// 3) Validate the bracket: finite endpoints, lo ≤ hi.
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo > hi {
		return 0, fmt.Errorf("bisect: bracket [%g, %g]: %w", lo, hi, ErrInvalidBracket)
	}

	// 4) Validate tolerance and iteration cap.
	if !(cfg.Tolerance > 0) { // catches NaN as well
		return 0, fmt.Errorf("bisect: tolerance %g: %w", cfg.Tolerance, ErrInvalidTolerance)
	}
	if cfg.MaxIterations <= 0 {
		return 0, fmt.Errorf("bisect: cap %d: %w", cfg.MaxIterations, ErrInvalidIterCap)
	}

	// 5) Zero-width bracket: the caller has already pinned x; nothing to do.
	if lo == hi {
		return lo, nil
	}

	// 6) Evaluate residuals at both endpoints and fail fast when they share
	//    a sign — bisecting such a bracket would converge to a non-root.
	fLo := f(lo) - target
	fHi := f(hi) - target
	if fLo*fHi > 0 {
		return 0, fmt.Errorf("bisect: f(%g)-target and f(%g)-target share sign: %w", lo, hi, ErrNoSignChange)
	}

	// 7) Halve the bracket until its width drops below tolerance. The
	//    midpoint of the final iteration is the answer.
	mid := lo
	var fMid float64
	for k := 1; hi-lo > cfg.Tolerance; k++ {
		if k > cfg.MaxIterations {
			return 0, fmt.Errorf("bisect: width %g after %d iterations (tolerance %g): %w",
				hi-lo, cfg.MaxIterations, cfg.Tolerance, ErrMaxIterations)
		}

		mid = (lo + hi) / 2
		fMid = f(mid) - target

		if (fMid < 0) == (fLo < 0) {
			// Residual keeps its sign on [lo, mid]: root lies in [mid, hi].
			lo, fLo = mid, fMid
		} else {
			// Sign change (or exact zero) in the lower half: root in [lo, mid].
			hi, fHi = mid, fMid
		}

		if cfg.Observer != nil {
			cfg.Observer(Iteration{K: k, Lo: lo, Hi: hi, Mid: mid, FMid: fMid})
		}
	}

	return mid, nil
}

// Steps reports the exact number of iterations Solve performs for a bracket
// of width hi−lo and the given tolerance: ⌈log₂((hi−lo)/tol)⌉. It returns 0
// when the bracket is already no wider than the tolerance. The count is
// deterministic — bisection halves the bracket every iteration regardless of
// the forward model.
func Steps(lo, hi, tol float64) int {
	width := hi - lo
	if !(tol > 0) || width <= tol {
		return 0
	}

	return int(math.Ceil(math.Log2(width / tol)))
}
