// Package valve defines sentinel errors and numerical constants for the
// sizing and characteristic calculations.
package valve

import "errors"

// Sentinel errors returned by the valve functions.
var (
	// ErrOpeningRange indicates a relative opening outside (0, 100] %.
	ErrOpeningRange = errors.New("valve: opening outside (0, 100] %")

	// ErrCurveParam indicates a non-positive characteristic parameter
	// (midpoint e or upper asymptote d).
	ErrCurveParam = errors.New("valve: characteristic parameter must be positive")

	// ErrPressureOrder indicates p1 ≤ p2: the formulas take the square root
	// of the differential, so upstream pressure must exceed downstream.
	ErrPressureOrder = errors.New("valve: upstream pressure must exceed downstream")

	// ErrPressureRange indicates a non-positive absolute pressure, or an
	// upstream pressure below the choked threshold FF·pv.
	ErrPressureRange = errors.New("valve: pressure out of range")

	// ErrDensityRange indicates a non-positive fluid density.
	ErrDensityRange = errors.New("valve: density must be positive")

	// ErrKvRange indicates a Kv outside the function's domain: negative
	// everywhere, and zero where the formula divides by Kv.
	ErrKvRange = errors.New("valve: Kv out of range")

	// ErrZetaRange indicates a non-positive resistance coefficient.
	ErrZetaRange = errors.New("valve: zeta coefficient must be positive")

	// ErrDiameterRange indicates a non-positive diameter.
	ErrDiameterRange = errors.New("valve: diameter must be positive")

	// ErrRecoveryRange indicates a liquid pressure-recovery factor FL
	// outside (0, 1].
	ErrRecoveryRange = errors.New("valve: FL outside (0, 1]")
)

// N2 is the IEC 60534 numerical constant relating Kv (m³/h) and ζ for a
// diameter expressed in mm.
const N2 = 0.0016

// CriticalPressure is the thermodynamic critical pressure of water, bar,
// used by the FF critical pressure ratio factor.
const CriticalPressure = 221.2

// Default bracket and tolerance for the OpeningForKv inversion, % of
// travel. The closed [0, 100] bracket is total thanks to IEEE limit
// evaluation at x = 0.
const (
	DefaultOpeningLo        = 0.0
	DefaultOpeningHi        = 100.0
	DefaultOpeningTolerance = 1e-4
)
