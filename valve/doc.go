// Package valve provides control-valve sizing arithmetic for liquids in the
// IEC 60534 tradition — Kv/flow conversions, resistance coefficients,
// piping-geometry and pressure-recovery factors, choked-flow limits — plus
// the three-parameter log-logistic inherent characteristic and its
// inversion from a target relative Kv back to a valve opening.
//
// Overview:
//
//   - Units: pressures in bar (absolute), flow in m³/h, diameters in mm
//     (DN), density in kg/m³, temperature in °C, opening in % of travel.
//   - Every sizing function is one closed-form expression; the only
//     iterative computation is OpeningForKv, which inverts the
//     characteristic with hydrath/bisect because the log-logistic curve has
//     no closed-form inverse for arbitrary shape parameters.
//
// Inherent characteristic:
//
//	Characteristic(x, b, d, e) = d / (1 + exp(b·(ln x − ln e)))
//
//   - x: relative opening, % of travel; e: curve midpoint (y = d/2 at
//     x = e); d: upper asymptote; b: shape/steepness (b < 0 gives the usual
//     rising valve curve, b > 0 a strictly falling one).
//   - OpeningForKv inverts the curve on the default bracket
//     [DefaultOpeningLo, DefaultOpeningHi] = [0, 100] % with tolerance
//     DefaultOpeningTolerance = 1e-4. The x = 0 endpoint is evaluated in
//     the IEEE limit (ln 0 = −∞ ⇒ y → 0 or d, by the sign of b), so the
//     closed bracket is total. A target outside the curve's range over the
//     bracket surfaces as bisect.ErrNoSignChange.
//
// Sizing relations (water-referenced Kv, N2 = 0.0016 for d in mm):
//
//   - Kv   = Q·√((ρ/1000)/Δp)            Flow = Kv·√(Δp/(ρ/1000))
//   - ζ    = N2·dn⁴/Kv²                  Kv   = 0.04·dn²/√ζ
//   - Fp   = 1/√(1 + (Σζ/N2)·(Kv/dnv²)²) with Σζ = ζ1+ζ2+ζB1−ζB2
//   - FLP  = FL/√(1 + (FL²/N2)·(ζ1+ζB1)·(Kv/dnv²)²)
//   - FF   = 0.96 − 0.28·√(pv/pc), pc = 221.2 bar
//   - ΔPmax = FL²·(p1 − FF·pv)           Qmax = Kv·FL·√((p1−FF·pv)/(ρ/1000))
//
// Error handling (sentinel errors):
//
//   - ErrOpeningRange  – opening x outside (0, 100] %.
//   - ErrCurveParam    – non-positive midpoint e or asymptote d.
//   - ErrPressureOrder – p1 ≤ p2 (no driving differential).
//   - ErrPressureRange – non-positive absolute pressure, or p1 below the
//     choked threshold FF·pv in Qmax.
//   - ErrDensityRange  – non-positive density.
//   - ErrKvRange       – negative (or, where division requires, zero) Kv.
//   - ErrZetaRange     – non-positive resistance coefficient.
//   - ErrDiameterRange – non-positive diameter.
//   - ErrRecoveryRange – FL outside (0, 1].
//
// All functions are pure and reentrant.
package valve
