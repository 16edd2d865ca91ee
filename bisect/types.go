// Package bisect defines the forward-model contract, configuration options
// and sentinel errors for the bisection root-finder.
//
// The solver inverts y = f(x) on a bracket [lo, hi]: given a target y it
// finds x* with f(x*) ≈ target. f is supplied as a plain function value with
// all fixed parameters already bound (typically via a closure), which keeps
// the solver independent of any concrete physical model.
//
// Options:
//
//	– Tolerance:     absolute bracket width at termination (must be > 0).
//	– MaxIterations: defensive cap on iterations (must be > 0).
//	– Observer:      optional per-iteration callback for diagnostics.
//
// Errors (sentinel):
//
//	– ErrNilModel         if the forward model is nil.
//	– ErrInvalidBracket   if lo > hi or an endpoint is NaN/±Inf.
//	– ErrInvalidTolerance if Tolerance ≤ 0 or NaN.
//	– ErrInvalidIterCap   if MaxIterations ≤ 0.
//	– ErrNoSignChange     if the bracket does not straddle the target.
//	– ErrMaxIterations    if the cap is reached before convergence.
package bisect

import "errors"

// Sentinel errors returned by Solve.
var (
	// ErrNilModel indicates that a nil Func was passed to Solve.
	ErrNilModel = errors.New("bisect: forward model is nil")

	// ErrInvalidBracket indicates a malformed search interval: lo > hi,
	// or at least one endpoint is NaN or infinite.
	ErrInvalidBracket = errors.New("bisect: bracket endpoints must be finite with lo <= hi")

	// ErrInvalidTolerance indicates a non-positive (or NaN) tolerance.
	ErrInvalidTolerance = errors.New("bisect: tolerance must be positive")

	// ErrInvalidIterCap indicates a non-positive iteration cap.
	ErrInvalidIterCap = errors.New("bisect: MaxIterations must be positive")

	// ErrNoSignChange indicates that f(lo)−target and f(hi)−target share a
	// sign, so the bracket is not guaranteed to contain a root. Bisecting
	// anyway would converge to an arbitrary non-root point, so Solve refuses.
	ErrNoSignChange = errors.New("bisect: bracket does not contain a sign change")

	// ErrMaxIterations indicates that the bracket failed to shrink below
	// Tolerance within MaxIterations halvings. Unreachable for sane inputs:
	// the default cap of 200 covers any width/tolerance ratio up to 2²⁰⁰.
	ErrMaxIterations = errors.New("bisect: iteration cap exhausted before convergence")
)

// DefaultTolerance is the absolute bracket width at which Solve terminates
// unless overridden with WithTolerance. Callers inverting a specific model
// usually pass a model-appropriate tolerance instead.
const DefaultTolerance = 1e-4

// DefaultMaxIterations bounds the number of halvings as a defensive guard
// against pathological width/tolerance ratios. 200 halvings shrink any
// representable float64 interval below any positive tolerance.
const DefaultMaxIterations = 200

// Func is a forward model y = f(x): a pure, total function on the chosen
// bracket. Fixed parameters are bound by the caller, typically as a closure:
//
//	f := func(x float64) float64 { return d / (1 + math.Exp(b*(math.Log(x)-math.Log(e)))) }
//
// Func must not panic and must return a finite value for every x inside the
// bracket; choosing a bracket inside the model's valid domain is the
// caller's responsibility.
type Func func(x float64) float64

// Iteration is a snapshot of one bisection step, delivered to the Observer
// after the bracket has been updated.
//
// K     – 1-based iteration index.
// Lo,Hi – bracket after this step.
// Mid   – midpoint evaluated in this step (the running answer).
// FMid  – residual f(Mid) − target at that midpoint.
type Iteration struct {
	K    int
	Lo   float64
	Hi   float64
	Mid  float64
	FMid float64
}

// Options configures Solve.
//
// Tolerance     – absolute width of the bracket at termination. Must be > 0.
// MaxIterations – hard cap on halvings. Must be > 0.
// Observer      – optional callback invoked once per iteration; nil disables.
type Options struct {
	Tolerance     float64
	MaxIterations int
	Observer      func(Iteration)
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// WithTolerance sets the absolute bracket width at which Solve terminates.
// Values ≤ 0 (or NaN) cause Solve to return ErrInvalidTolerance.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		o.Tolerance = tol
	}
}

// WithMaxIterations overrides the defensive iteration cap.
// Values ≤ 0 cause Solve to return ErrInvalidIterCap.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// WithObserver registers a callback invoked after every bisection step with
// the updated bracket and the evaluated midpoint. Useful for tracing
// convergence or asserting iteration counts in tests.
func WithObserver(fn func(Iteration)) Option {
	return func(o *Options) {
		o.Observer = fn
	}
}

// DefaultOptions returns the Options Solve starts from before applying
// functional overrides.
//
// Defaults:
//   - Tolerance:     DefaultTolerance (1e-4).
//   - MaxIterations: DefaultMaxIterations (200).
//   - Observer:      nil (no per-iteration callback).
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		Observer:      nil,
	}
}
