// Package pipeflow defines the line geometry type, sentinel errors and
// physical constants for the pipe-hydraulics chain.
package pipeflow

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/hydrath/water"
)

// Sentinel errors returned by the pipeflow functions.
var (
	// ErrFlowRange indicates a flow rate outside the function's domain:
	// negative everywhere, and zero where the formula divides by flow.
	ErrFlowRange = errors.New("pipeflow: flow rate out of range")

	// ErrDiameterRange indicates a non-positive inner diameter.
	ErrDiameterRange = errors.New("pipeflow: diameter must be positive")

	// ErrLengthRange indicates a negative segment length.
	ErrLengthRange = errors.New("pipeflow: length must be non-negative")

	// ErrRoughnessRange indicates a negative absolute roughness.
	ErrRoughnessRange = errors.New("pipeflow: roughness must be non-negative")

	// ErrZetaRange indicates a negative local-loss (ζ) coefficient.
	ErrZetaRange = errors.New("pipeflow: zeta coefficient must be non-negative")

	// ErrReynoldsRange indicates a non-positive Reynolds number.
	ErrReynoldsRange = errors.New("pipeflow: Reynolds number must be positive")

	// ErrHeadRange indicates a non-positive target head differential.
	ErrHeadRange = errors.New("pipeflow: target head must be positive")
)

// Gravity is the standard acceleration of free fall, m/s².
const Gravity = 9.80665

// LaminarLimit is the Reynolds number up to which (inclusive) the friction
// factor follows the laminar closed form 64/Re; above it the Swamee–Jain
// approximation of Colebrook–White applies.
const LaminarLimit = 2200.0

// Default bracket and tolerance for the FlowForHead inversion, m³/h. The
// lower bound is strictly positive because the friction chain divides by
// flow; 20 m³/h comfortably covers DN15…DN80 control-valve lines.
const (
	DefaultFlowLo        = 1e-5
	DefaultFlowHi        = 20.0
	DefaultFlowTolerance = 1e-5
)

// Line describes a two-segment pressure pipe with an in-line valve:
// an upstream segment (DN1, L1), the valve (DNV), and a downstream segment
// (DN2, L2). Local losses are lumped into three ζ sums, each applied at its
// own velocity head; reducer/diffuser corrections are derived from the
// diameter ratios DNV/DN1 and DNV/DN2 internally.
//
// Units: diameters mm, lengths m, roughness mm, temperature °C.
type Line struct {
	DN1       float64 // upstream inner diameter, mm
	DN2       float64 // downstream inner diameter, mm
	DNV       float64 // valve seat/body diameter, mm
	L1        float64 // upstream segment length, m
	L2        float64 // downstream segment length, m
	ZetaUp    float64 // Σζ of upstream fittings, applied at v(DN1)
	ZetaValve float64 // ζ of the valve at its current travel, applied at v(DNV)
	ZetaDown  float64 // Σζ of downstream fittings, applied at v(DN2)
	Roughness float64 // absolute pipe roughness, mm
	Temp      float64 // water temperature, °C
}

// DefaultLine returns a representative DN50 line with a DN40 valve and the
// documented reference temperature (water.DefaultTemperature). Use it as a
// starting point and override fields as needed; Temp is always set
// explicitly here rather than defaulted inside the calculations.
func DefaultLine() Line {
	return Line{
		DN1:       50,
		DN2:       50,
		DNV:       40,
		L1:        10,
		L2:        10,
		ZetaUp:    0.5,
		ZetaValve: 0,
		ZetaDown:  1.0,
		Roughness: 0.1,
		Temp:      water.DefaultTemperature,
	}
}

// validate checks every geometric and fluid precondition of the line.
func (ln Line) validate() error {
	for _, d := range []struct {
		name string
		v    float64
	}{{"DN1", ln.DN1}, {"DN2", ln.DN2}, {"DNV", ln.DNV}} {
		if math.IsNaN(d.v) || d.v <= 0 {
			return fmt.Errorf("pipeflow: %s=%g mm: %w", d.name, d.v, ErrDiameterRange)
		}
	}
	if math.IsNaN(ln.L1) || ln.L1 < 0 {
		return fmt.Errorf("pipeflow: L1=%g m: %w", ln.L1, ErrLengthRange)
	}
	if math.IsNaN(ln.L2) || ln.L2 < 0 {
		return fmt.Errorf("pipeflow: L2=%g m: %w", ln.L2, ErrLengthRange)
	}
	for _, z := range []struct {
		name string
		v    float64
	}{{"ZetaUp", ln.ZetaUp}, {"ZetaValve", ln.ZetaValve}, {"ZetaDown", ln.ZetaDown}} {
		if math.IsNaN(z.v) || z.v < 0 {
			return fmt.Errorf("pipeflow: %s=%g: %w", z.name, z.v, ErrZetaRange)
		}
	}
	if math.IsNaN(ln.Roughness) || ln.Roughness < 0 {
		return fmt.Errorf("pipeflow: roughness=%g mm: %w", ln.Roughness, ErrRoughnessRange)
	}

	return nil
}
