// Package hydrath is your pure-Go toolbox for closed-form hydraulic and
// control-valve engineering calculations — from water properties to
// pipe-line head loss and implicit-equation inversion.
//
// 🚀 What is hydrath?
//
//	A small, dependency-light library that brings together:
//		• Water properties: vapour pressure, density, dynamic & kinematic viscosity
//		• Pipe flow: velocity, Reynolds number, Darcy friction factor, head loss
//		• Valve sizing: Kv/flow conversions, resistance coefficients, Fp/FLP/FF,
//		  choked-flow limits (ΔPmax, Qmax)
//		• Inherent characteristics: three-parameter log-logistic Kv curves
//		• Implicit solving: a generic bisection root-finder that inverts any
//		  monotone forward model (opening ⇦ relative Kv, flow ⇦ head differential)
//
// ✨ Why choose hydrath?
//
//   - Beginner-friendly – positional real-number arguments, documented
//     engineering units (bar, m³/h, mm, m, °C)
//   - Rock-solid guarantees – every domain violation surfaces as a typed
//     sentinel error, never as a silent NaN
//   - Pure functions – no state, no I/O, safe for concurrent callers
//   - Extensible – the solver accepts any forward model as a plain func value
//
// Under the hood, everything is organized under four subpackages:
//
//	bisect/   — generic bisection root-finder with bracket & convergence guards
//	water/    — physical-property correlations for liquid water
//	pipeflow/ — Bernoulli/Darcy–Weisbach pipe-line head-loss chain + inversion
//	valve/    — IEC 60534-style sizing helpers + log-logistic characteristic
//
// Quick ASCII example:
//
//	    ──┬── DN1, L1 ──▷|valve DNV|▷── DN2, L2 ──┬──
//	      ζup                ζv                  ζdw
//
//	a two-segment pipe line with an in-line valve: hydrath computes the total
//	head loss at a given flow, or inverts it to find the flow a given head
//	differential can drive.
//
// Dive into each package's doc.go for formulas, units, and error contracts.
//
//	go get github.com/katalvlaran/hydrath
package hydrath
