// Package bisect provides a precise, dependency-free bisection root-finder
// for scalar equations f(x) = target on a bracketed interval.
//
// Overview:
//
//   - Bisection halves an interval [lo, hi] known to contain a sign change of
//     f(x) − target until its width drops below a tolerance, then returns the
//     last midpoint. Convergence is guaranteed and deterministic: exactly
//     ⌈log₂((hi−lo)/tol)⌉ iterations for any finite bracket and positive
//     tolerance.
//   - The forward model is plugged in as a plain function value (Func), so the
//     solver stays generic and testable independently of any physical model.
//
// When to use:
//
//   - Inverting a monotone forward model with no closed-form inverse, e.g.
//     "which valve opening yields this relative Kv?" or "which flow rate
//     produces this head differential?" (see hydrath/valve and
//     hydrath/pipeflow for the two shipped inversions).
//   - Any smooth-enough scalar equation where a sign-changing bracket is
//     cheap to establish and derivative information is unavailable.
//
// Key features:
//
//   - Fail-fast bracket validation: a bracket whose endpoints do not straddle
//     the target is rejected with ErrNoSignChange instead of silently
//     bisecting toward a non-root.
//   - Functional options: WithTolerance, WithMaxIterations, WithObserver.
//   - WithObserver exposes every iteration (index, bracket, midpoint,
//     residual) for diagnostics and iteration-count assertions.
//   - The result never leaves the original bracket, and a zero-width bracket
//     short-circuits to lo with zero iterations.
//
// Performance and complexity:
//
//   - Time:  O(log₂(width/tol)) forward-model evaluations (one per iteration,
//     plus the two endpoint evaluations).
//   - Space: O(1) — a handful of stack-local scalars; reentrant and safe for
//     concurrent callers.
//
// Error handling (sentinel errors):
//
//   - ErrNilModel:         Solve received a nil Func.
//   - ErrInvalidBracket:   lo > hi, or an endpoint is NaN/±Inf.
//   - ErrInvalidTolerance: tolerance ≤ 0 (or NaN).
//   - ErrInvalidIterCap:   MaxIterations ≤ 0.
//   - ErrNoSignChange:     f(lo)−target and f(hi)−target share a sign.
//   - ErrMaxIterations:    the iteration cap was exhausted before the bracket
//     width dropped below tolerance (pathological width/tolerance ratios).
//
// See example_test.go for runnable examples.
package bisect
