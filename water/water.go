package water

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the property correlations.
var (
	// ErrTemperatureRange indicates a temperature outside 0…100 °C, where
	// the liquid-water correlations do not hold.
	ErrTemperatureRange = errors.New("water: temperature outside liquid range 0…100 °C")

	// ErrElevationRange indicates an elevation outside 0…11000 m, where the
	// barometric formula does not hold.
	ErrElevationRange = errors.New("water: elevation outside 0…11000 m")
)

// DefaultTemperature is the reference water temperature, °C, used by
// downstream packages when the caller leaves the temperature unset.
const DefaultTemperature = 15.0

// checkTemp validates the liquid-range precondition shared by every
// temperature-dependent correlation.
func checkTemp(temp float64) error {
	if math.IsNaN(temp) || temp < 0 || temp > 100 {
		return fmt.Errorf("water: temp=%g °C: %w", temp, ErrTemperatureRange)
	}

	return nil
}

// VapourPressure returns the saturation vapour pressure of water, kPa, at
// temperature temp, °C, using the Magnus/Tetens form
//
//	pv = 0.61078 · exp(17.27·t / (t + 237.3))
func VapourPressure(temp float64) (float64, error) {
	if err := checkTemp(temp); err != nil {
		return 0, err
	}

	return 0.61078 * math.Exp(17.27*temp/(temp+237.3)), nil
}

// AtmPressure returns the standard atmospheric pressure, bar, at elevation
// masl, m above sea level, via the barometric formula
//
//	p = 1.01325 · (1 − 2.25577e-5·h)^5.25588
func AtmPressure(masl float64) (float64, error) {
	if math.IsNaN(masl) || masl < 0 || masl > 11000 {
		return 0, fmt.Errorf("water: masl=%g m: %w", masl, ErrElevationRange)
	}

	return 1.01325 * math.Pow(1-2.25577e-5*masl, 5.25588), nil
}

// Density returns the density of liquid water, kg/m³, at temperature temp,
// °C, using a Kell-type polynomial
//
//	ρ = 1000 · (1 − (t+288.9414) / (508929.2·(t+68.12963)) · (t−3.9863)²)
func Density(temp float64) (float64, error) {
	if err := checkTemp(temp); err != nil {
		return 0, err
	}
	d := temp - 3.9863

	return 1000 * (1 - (temp+288.9414)/(508929.2*(temp+68.12963))*d*d), nil
}

// DynamicViscosity returns the dynamic viscosity of liquid water, mPa·s, at
// temperature temp, °C, using the Poiseuille correlation
//
//	μ = 1.78 / (1 + 0.0337·t + 0.000221·t²)
func DynamicViscosity(temp float64) (float64, error) {
	if err := checkTemp(temp); err != nil {
		return 0, err
	}

	return 1.78 / (1 + 0.0337*temp + 0.000221*temp*temp), nil
}

// KinematicViscosity returns the kinematic viscosity of liquid water at
// temperature temp, °C, in units of 1e-6 m²/s (equivalently, centistokes):
// ν = μ/ρ with the unit scaling folded in.
func KinematicViscosity(temp float64) (float64, error) {
	mu, err := DynamicViscosity(temp)
	if err != nil {
		return 0, err
	}
	rho, err := Density(temp)
	if err != nil {
		return 0, err
	}

	return mu * 1000 / rho, nil
}
