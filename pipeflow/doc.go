// Package pipeflow computes pressure-pipe hydraulics for water: velocity,
// Reynolds number, Darcy friction factor, Darcy–Weisbach head loss, and the
// total Bernoulli head-loss chain of a two-segment line with an in-line
// valve — plus the inversion "which flow does a given head differential
// drive?".
//
// Overview:
//
//   - Units follow valve-engineering practice: flow in m³/h, diameters in mm
//     (DN), lengths in m, roughness in mm, temperature in °C, head in m of
//     water column.
//   - The head-loss chain composes five closed-form stages:
//     water properties → velocity → Reynolds → friction factor →
//     Darcy–Weisbach, then sums friction and local (ζ) losses for the
//     upstream segment, the valve, and the downstream segment, each scaled
//     by its local velocity head v²/2g, with reducer/diffuser corrections
//     from the diameter ratios β = DNV/DN.
//   - HeadLoss is strictly increasing in flow for valid positive geometry,
//     which makes the bisection inversion in FlowForHead well-posed.
//
// Friction model:
//
//   - Laminar branch: f = 64/Re for Re ≤ LaminarLimit (2200), exactly.
//   - Turbulent branch: explicit Swamee–Jain approximation of the implicit
//     Colebrook–White correlation, f = 0.25 / log₁₀(k/(3.7·d) + 5.74/Re^0.9)².
//     The approximation is a fixed reference form, not re-derived.
//
// Inversion:
//
//   - FlowForHead inverts HeadLoss via hydrath/bisect on the default bracket
//     [DefaultFlowLo, DefaultFlowHi] = [1e-5, 20] m³/h with tolerance
//     DefaultFlowTolerance = 1e-5. A head differential outside what the
//     bracket can produce surfaces as bisect.ErrNoSignChange.
//
// Error handling (sentinel errors):
//
//   - ErrFlowRange      – negative (or, where positivity is required, zero) flow.
//   - ErrDiameterRange  – non-positive diameter.
//   - ErrLengthRange    – negative segment length.
//   - ErrRoughnessRange – negative absolute roughness.
//   - ErrZetaRange      – negative local-loss coefficient.
//   - ErrReynoldsRange  – non-positive Reynolds number in FrictionFactor.
//   - ErrHeadRange      – non-positive target head in FlowForHead.
//   - water.ErrTemperatureRange – temperature outside the liquid range.
//
// All functions are pure and reentrant; concurrent callers need no
// coordination.
package pipeflow
