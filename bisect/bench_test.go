package bisect_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hydrath/bisect"
)

// benchmarkSolve is a helper that inverts f over [lo, hi] with tolerance tol.
// It resets the timer before entering the loop and fails on unexpected errors.
func benchmarkSolve(b *testing.B, f bisect.Func, target, lo, hi, tol float64) {
	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		_, err := bisect.Solve(f, target, lo, hi, bisect.WithTolerance(tol))
		if err != nil {
			b.Fatalf("Solve failed: %v", err) // report and stop on error
		}
	}
}

// BenchmarkSolve_LinearCoarse benchmarks a cheap model with a coarse tolerance
// (≈20 iterations).
func BenchmarkSolve_LinearCoarse(b *testing.B) {
	benchmarkSolve(b, func(x float64) float64 { return x }, 42, 0, 100, 1e-4)
}

// BenchmarkSolve_LinearTight benchmarks a cheap model with a tight tolerance
// (≈47 iterations), isolating per-iteration overhead.
func BenchmarkSolve_LinearTight(b *testing.B) {
	benchmarkSolve(b, func(x float64) float64 { return x }, 42, 0, 100, 1e-12)
}

// BenchmarkSolve_Transcendental benchmarks a transcendental model where the
// forward evaluation dominates each iteration.
func BenchmarkSolve_Transcendental(b *testing.B) {
	f := func(x float64) float64 { return math.Exp(x) + math.Sin(3*x) }
	benchmarkSolve(b, f, 5, 0, 3, 1e-10)
}
