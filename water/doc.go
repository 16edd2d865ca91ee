// Package water provides closed-form physical-property correlations for
// liquid water, the working fluid of the hydrath pipe-flow and valve-sizing
// packages.
//
// Overview:
//
//   - Every function is a single evaluable algebraic expression: no
//     iteration, no state, no I/O. Inputs and outputs use plain engineering
//     units (°C, m above sea level, kPa, bar, kg/m³, mPa·s, 1e-6 m²/s).
//   - Domain violations surface as typed sentinel errors naming the
//     offending parameter — never as NaN propagated through a calculation.
//
// Correlations (fixed reference forms, not re-derived):
//
//   - VapourPressure    – Magnus/Tetens saturation pressure, kPa.
//   - AtmPressure       – barometric pressure vs. elevation, bar.
//   - Density           – Kell-type polynomial, kg/m³.
//   - DynamicViscosity  – Poiseuille correlation, mPa·s.
//   - KinematicViscosity – μ/ρ chain, in units of 1e-6 m²/s.
//
// Valid ranges:
//
//   - Temperature: 0 ≤ t ≤ 100 °C (liquid water at ambient pressure);
//     outside this range the correlations extrapolate badly, so
//     ErrTemperatureRange is returned instead.
//   - Elevation: 0 ≤ masl ≤ 11000 m (troposphere); ErrElevationRange
//     otherwise.
//
// DefaultTemperature (15 °C) is the documented reference temperature used
// by downstream packages when the caller does not specify one.
package water
