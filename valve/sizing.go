package valve

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hydrath/water"
)

// checkDP validates the pressure pair shared by the Kv/Flow conversions:
// both absolute pressures positive, upstream strictly above downstream.
func checkDP(p1, p2 float64) error {
	if math.IsNaN(p1) || p1 <= 0 {
		return fmt.Errorf("valve: p1=%g bar: %w", p1, ErrPressureRange)
	}
	if math.IsNaN(p2) || p2 <= 0 {
		return fmt.Errorf("valve: p2=%g bar: %w", p2, ErrPressureRange)
	}
	if p1 <= p2 {
		return fmt.Errorf("valve: p1=%g ≤ p2=%g bar: %w", p1, p2, ErrPressureOrder)
	}

	return nil
}

// checkDensity validates a liquid density, kg/m³.
func checkDensity(density float64) error {
	if math.IsNaN(density) || density <= 0 {
		return fmt.Errorf("valve: density=%g kg/m³: %w", density, ErrDensityRange)
	}

	return nil
}

// Kv returns the flow coefficient, m³/h, required to pass flow (m³/h) of a
// liquid of density density (kg/m³) across the differential p1−p2 (bar):
//
//	Kv = Q·√((ρ/1000)/Δp)
func Kv(flow, p1, p2, density float64) (float64, error) {
	if math.IsNaN(flow) || flow < 0 {
		return 0, fmt.Errorf("valve: flow=%g m³/h: %w", flow, ErrKvRange)
	}
	if err := checkDP(p1, p2); err != nil {
		return 0, err
	}
	if err := checkDensity(density); err != nil {
		return 0, err
	}

	return flow * math.Sqrt(density/1000/(p1-p2)), nil
}

// Flow returns the flow rate, m³/h, a valve of coefficient kv passes at the
// differential p1−p2 (bar) with a liquid of density density (kg/m³):
//
//	Q = Kv·√(Δp/(ρ/1000))
func Flow(kv, p1, p2, density float64) (float64, error) {
	if math.IsNaN(kv) || kv < 0 {
		return 0, fmt.Errorf("valve: kv=%g: %w", kv, ErrKvRange)
	}
	if err := checkDP(p1, p2); err != nil {
		return 0, err
	}
	if err := checkDensity(density); err != nil {
		return 0, err
	}

	return kv * math.Sqrt((p1-p2)/(density/1000)), nil
}

// Zeta returns the dimensionless resistance coefficient equivalent to a
// valve of coefficient kv and diameter dn (mm):
//
//	ζ = N2·dn⁴/Kv²
func Zeta(kv, dn float64) (float64, error) {
	if math.IsNaN(kv) || kv <= 0 {
		return 0, fmt.Errorf("valve: kv=%g: %w", kv, ErrKvRange)
	}
	if math.IsNaN(dn) || dn <= 0 {
		return 0, fmt.Errorf("valve: dn=%g mm: %w", dn, ErrDiameterRange)
	}
	d2 := dn * dn

	return N2 * d2 * d2 / (kv * kv), nil
}

// KvFromZeta returns the flow coefficient, m³/h, equivalent to a resistance
// coefficient zeta at diameter dn (mm) — the inverse of Zeta:
//
//	Kv = 0.04·dn²/√ζ
func KvFromZeta(zeta, dn float64) (float64, error) {
	if math.IsNaN(zeta) || zeta <= 0 {
		return 0, fmt.Errorf("valve: zeta=%g: %w", zeta, ErrZetaRange)
	}
	if math.IsNaN(dn) || dn <= 0 {
		return 0, fmt.Errorf("valve: dn=%g mm: %w", dn, ErrDiameterRange)
	}

	return 0.04 * dn * dn / math.Sqrt(zeta), nil
}

// fittingZetas returns the IEC 60534-2-1 inlet and outlet fitting
// coefficients for a valve of diameter dnv between pipe diameters dn1/dn2:
// reducer ζ1, diffuser ζ2, and the Bernoulli coefficients ζB1, ζB2.
func fittingZetas(dn1, dn2, dnv float64) (z1, z2, zb1, zb2 float64) {
	b1 := dnv / dn1
	b2 := dnv / dn2
	b1sq := b1 * b1
	b2sq := b2 * b2

	z1 = 0.5 * (1 - b1sq) * (1 - b1sq)
	z2 = (1 - b2sq) * (1 - b2sq)
	zb1 = 1 - b1sq*b1sq
	zb2 = 1 - b2sq*b2sq

	return z1, z2, zb1, zb2
}

// checkDiameters validates the pipe/valve diameter triple.
func checkDiameters(dn1, dn2, dnv float64) error {
	for _, d := range []struct {
		name string
		v    float64
	}{{"dn1", dn1}, {"dn2", dn2}, {"dnv", dnv}} {
		if math.IsNaN(d.v) || d.v <= 0 {
			return fmt.Errorf("valve: %s=%g mm: %w", d.name, d.v, ErrDiameterRange)
		}
	}

	return nil
}

// Fp returns the piping geometry factor of a valve of coefficient kv and
// diameter dnv (mm) installed between pipe diameters dn1 and dn2 (mm):
//
//	Fp = 1/√(1 + (Σζ/N2)·(Kv/dnv²)²),  Σζ = ζ1 + ζ2 + ζB1 − ζB2
//
// Fp = 1 for a line-size valve (dn1 = dn2 = dnv).
func Fp(kv, dn1, dn2, dnv float64) (float64, error) {
	if math.IsNaN(kv) || kv <= 0 {
		return 0, fmt.Errorf("valve: kv=%g: %w", kv, ErrKvRange)
	}
	if err := checkDiameters(dn1, dn2, dnv); err != nil {
		return 0, err
	}
	z1, z2, zb1, zb2 := fittingZetas(dn1, dn2, dnv)
	sum := z1 + z2 + zb1 - zb2
	ratio := kv / (dnv * dnv)

	return 1 / math.Sqrt(1+sum/N2*ratio*ratio), nil
}

// Flp returns the combined liquid pressure-recovery and piping geometry
// factor of a valve with recovery factor fl, coefficient kv and diameter
// dnv (mm) behind an inlet reducer from pipe diameter dn1 (mm):
//
//	FLP = FL/√(1 + (FL²/N2)·(ζ1 + ζB1)·(Kv/dnv²)²)
func Flp(fl, kv, dn1, dnv float64) (float64, error) {
	if err := checkRecovery(fl); err != nil {
		return 0, err
	}
	if math.IsNaN(kv) || kv <= 0 {
		return 0, fmt.Errorf("valve: kv=%g: %w", kv, ErrKvRange)
	}
	if err := checkDiameters(dn1, dn1, dnv); err != nil {
		return 0, err
	}
	z1, _, zb1, _ := fittingZetas(dn1, dn1, dnv)
	ratio := kv / (dnv * dnv)

	return fl / math.Sqrt(1+fl*fl/N2*(z1+zb1)*ratio*ratio), nil
}

// checkRecovery validates a liquid pressure-recovery factor FL.
func checkRecovery(fl float64) error {
	if math.IsNaN(fl) || fl <= 0 || fl > 1 {
		return fmt.Errorf("valve: FL=%g: %w", fl, ErrRecoveryRange)
	}

	return nil
}

// FF returns the liquid critical pressure ratio factor at water temperature
// temp (°C):
//
//	FF = 0.96 − 0.28·√(pv/pc)
//
// with pv the vapour pressure (bar) and pc = CriticalPressure.
func FF(temp float64) (float64, error) {
	pv, err := water.VapourPressure(temp)
	if err != nil {
		return 0, err
	}

	return 0.96 - 0.28*math.Sqrt(pv/100/CriticalPressure), nil
}

// DPmax returns the maximum effective pressure differential, bar, usable
// for sizing before the flow chokes, for a valve of recovery factor fl at
// upstream pressure p1 (bar, absolute) and water temperature temp (°C):
//
//	ΔPmax = FL²·(p1 − FF·pv)
func DPmax(fl, p1, temp float64) (float64, error) {
	if err := checkRecovery(fl); err != nil {
		return 0, err
	}
	if math.IsNaN(p1) || p1 <= 0 {
		return 0, fmt.Errorf("valve: p1=%g bar: %w", p1, ErrPressureRange)
	}
	ff, err := FF(temp)
	if err != nil {
		return 0, err
	}
	pv, _ := water.VapourPressure(temp) // validated inside FF

	return fl * fl * (p1 - ff*pv/100), nil
}

// Qmax returns the choked (maximum) flow rate, m³/h, of a valve of
// coefficient kv and recovery factor fl at upstream pressure p1 (bar,
// absolute), water temperature temp (°C) and density density (kg/m³):
//
//	Qmax = Kv·FL·√((p1 − FF·pv)/(ρ/1000))
//
// p1 must exceed the choked threshold FF·pv.
func Qmax(kv, fl, p1, temp, density float64) (float64, error) {
	if math.IsNaN(kv) || kv < 0 {
		return 0, fmt.Errorf("valve: kv=%g: %w", kv, ErrKvRange)
	}
	if err := checkRecovery(fl); err != nil {
		return 0, err
	}
	if math.IsNaN(p1) || p1 <= 0 {
		return 0, fmt.Errorf("valve: p1=%g bar: %w", p1, ErrPressureRange)
	}
	if err := checkDensity(density); err != nil {
		return 0, err
	}
	ff, err := FF(temp)
	if err != nil {
		return 0, err
	}
	pv, _ := water.VapourPressure(temp) // validated inside FF
	dp := p1 - ff*pv/100
	if dp <= 0 {
		return 0, fmt.Errorf("valve: p1=%g bar below choked threshold %g bar: %w", p1, ff*pv/100, ErrPressureRange)
	}

	return kv * fl * math.Sqrt(dp/(density/1000)), nil
}
