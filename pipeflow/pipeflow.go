package pipeflow

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hydrath/bisect"
	"github.com/katalvlaran/hydrath/water"
)

// velocityOf is the unvalidated core of Velocity, shared by the head-loss
// chain so the inversion closure stays allocation- and error-free.
func velocityOf(flow, dn float64) float64 {
	d := dn / 1000 // mm → m

	return (flow / 3600) / (math.Pi / 4 * d * d)
}

// reynoldsOf computes Re from an already validated velocity chain.
// nu is the kinematic viscosity in units of 1e-6 m²/s.
func reynoldsOf(flow, dn, nu float64) float64 {
	return velocityOf(flow, dn) * (dn / 1000) / (nu * 1e-6)
}

// frictionAt evaluates the Darcy friction factor at a known Reynolds number:
// the laminar closed form up to LaminarLimit inclusive, the Swamee–Jain
// approximation of Colebrook–White above it.
func frictionAt(re, dn, roughness float64) float64 {
	if re <= LaminarLimit {
		return 64 / re
	}

	return 0.25 / pow2(math.Log10(roughness/(3.7*dn)+5.74/math.Pow(re, 0.9)))
}

// darcyOf is the unvalidated single-segment Darcy–Weisbach head loss, m.
func darcyOf(flow, length, dn, roughness, nu float64) float64 {
	v := velocityOf(flow, dn)
	f := frictionAt(reynoldsOf(flow, dn, nu), dn, roughness)

	return f * (length / (dn / 1000)) * v * v / (2 * Gravity)
}

// headLossOf is the unvalidated Bernoulli chain: friction losses of both
// segments plus upstream, valve and downstream ζ terms at their local
// velocity heads, plus reducer/diffuser corrections at the valve.
func headLossOf(flow float64, ln Line, nu float64) float64 {
	v1 := velocityOf(flow, ln.DN1)
	v2 := velocityOf(flow, ln.DN2)
	vv := velocityOf(flow, ln.DNV)

	// Friction losses of the two pipe segments.
	h := darcyOf(flow, ln.L1, ln.DN1, ln.Roughness, nu) +
		darcyOf(flow, ln.L2, ln.DN2, ln.Roughness, nu)

	// Local losses, each at its own velocity head v²/2g.
	h += ln.ZetaUp * v1 * v1 / (2 * Gravity)
	h += ln.ZetaDown * v2 * v2 / (2 * Gravity)
	h += ln.ZetaValve * vv * vv / (2 * Gravity)

	// Reducer/diffuser corrections from the diameter ratios β = DNV/DN:
	// inlet contraction 0.5·(1−β₁²)², outlet expansion (1−β₂²)², both at
	// the valve velocity head.
	b1 := ln.DNV / ln.DN1
	b2 := ln.DNV / ln.DN2
	h += (0.5*pow2(1-b1*b1) + pow2(1-b2*b2)) * vv * vv / (2 * Gravity)

	return h
}

func pow2(x float64) float64 { return x * x }

// Velocity returns the mean flow velocity, m/s, of flow (m³/h) through a
// pipe of inner diameter dn (mm).
func Velocity(flow, dn float64) (float64, error) {
	if math.IsNaN(flow) || flow < 0 {
		return 0, fmt.Errorf("pipeflow: flow=%g m³/h: %w", flow, ErrFlowRange)
	}
	if math.IsNaN(dn) || dn <= 0 {
		return 0, fmt.Errorf("pipeflow: dn=%g mm: %w", dn, ErrDiameterRange)
	}

	return velocityOf(flow, dn), nil
}

// Reynolds returns the Reynolds number (dimensionless) of flow (m³/h)
// through a pipe of inner diameter dn (mm) at water temperature temp (°C).
func Reynolds(flow, dn, temp float64) (float64, error) {
	if _, err := Velocity(flow, dn); err != nil {
		return 0, err
	}
	nu, err := water.KinematicViscosity(temp)
	if err != nil {
		return 0, err
	}

	return reynoldsOf(flow, dn, nu), nil
}

// FrictionFactor returns the Darcy friction factor at Reynolds number re in
// a pipe of inner diameter dn (mm) and absolute roughness roughness (mm).
//
// For re ≤ LaminarLimit (2200) the laminar closed form 64/Re is returned
// exactly; above the limit the explicit Swamee–Jain approximation of the
// Colebrook–White correlation applies:
//
//	f = 0.25 / log₁₀(k/(3.7·d) + 5.74/Re^0.9)²
func FrictionFactor(re, dn, roughness float64) (float64, error) {
	if math.IsNaN(re) || re <= 0 {
		return 0, fmt.Errorf("pipeflow: Re=%g: %w", re, ErrReynoldsRange)
	}
	if math.IsNaN(dn) || dn <= 0 {
		return 0, fmt.Errorf("pipeflow: dn=%g mm: %w", dn, ErrDiameterRange)
	}
	if math.IsNaN(roughness) || roughness < 0 {
		return 0, fmt.Errorf("pipeflow: roughness=%g mm: %w", roughness, ErrRoughnessRange)
	}

	return frictionAt(re, dn, roughness), nil
}

// Friction returns the Darcy friction factor for flow (m³/h) through a pipe
// of inner diameter dn (mm) with absolute roughness roughness (mm) at water
// temperature temp (°C). Flow must be strictly positive: the laminar branch
// divides by Re.
func Friction(flow, dn, roughness, temp float64) (float64, error) {
	if math.IsNaN(flow) || flow <= 0 {
		return 0, fmt.Errorf("pipeflow: flow=%g m³/h: %w", flow, ErrFlowRange)
	}
	re, err := Reynolds(flow, dn, temp)
	if err != nil {
		return 0, err
	}

	return FrictionFactor(re, dn, roughness)
}

// DarcyWeisbach returns the friction head loss, m, of flow (m³/h) through
// one pipe segment of length length (m), inner diameter dn (mm) and
// absolute roughness roughness (mm) at water temperature temp (°C):
//
//	h = f · (L/d) · v² / 2g
func DarcyWeisbach(flow, length, dn, roughness, temp float64) (float64, error) {
	if math.IsNaN(length) || length < 0 {
		return 0, fmt.Errorf("pipeflow: length=%g m: %w", length, ErrLengthRange)
	}
	if _, err := Friction(flow, dn, roughness, temp); err != nil {
		return 0, err
	}
	nu, _ := water.KinematicViscosity(temp) // already validated above

	return darcyOf(flow, length, dn, roughness, nu), nil
}

// HeadLoss returns the total head loss, m, of flow (m³/h) through the line:
// Darcy–Weisbach friction of both segments plus all local (ζ) losses,
// including the reducer/diffuser corrections at the valve. Strictly
// increasing in flow for valid positive geometry.
func HeadLoss(flow float64, ln Line) (float64, error) {
	if math.IsNaN(flow) || flow <= 0 {
		return 0, fmt.Errorf("pipeflow: flow=%g m³/h: %w", flow, ErrFlowRange)
	}
	if err := ln.validate(); err != nil {
		return 0, err
	}
	nu, err := water.KinematicViscosity(ln.Temp)
	if err != nil {
		return 0, err
	}

	return headLossOf(flow, ln, nu), nil
}

// FlowForHead inverts HeadLoss: it returns the flow rate, m³/h, at which
// the line dissipates exactly the available head differential target (m).
// HeadLoss has no closed-form inverse in flow, so the root is found with
// hydrath/bisect on [DefaultFlowLo, DefaultFlowHi] with tolerance
// DefaultFlowTolerance; pass bisect options to override.
//
// A target the bracket cannot produce (larger than HeadLoss at 20 m³/h, or
// smaller than at 1e-5 m³/h) surfaces as bisect.ErrNoSignChange.
func FlowForHead(target float64, ln Line, opts ...bisect.Option) (float64, error) {
	if math.IsNaN(target) || target <= 0 {
		return 0, fmt.Errorf("pipeflow: target=%g m: %w", target, ErrHeadRange)
	}
	if err := ln.validate(); err != nil {
		return 0, err
	}
	nu, err := water.KinematicViscosity(ln.Temp)
	if err != nil {
		return 0, err
	}

	forward := func(flow float64) float64 { return headLossOf(flow, ln, nu) }
	solveOpts := append([]bisect.Option{bisect.WithTolerance(DefaultFlowTolerance)}, opts...)

	return bisect.Solve(forward, target, DefaultFlowLo, DefaultFlowHi, solveOpts...)
}
