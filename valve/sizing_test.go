package valve_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hydrath/valve"
	"github.com/katalvlaran/hydrath/water"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------------
// 1. Kv ⇄ flow conversions.
// ------------------------------------------------------------------------

func TestKv_WaterAtOneBarIsFlow(t *testing.T) {
	// The Kv definition: water (1000 kg/m³) at Δp = 1 bar passes Kv m³/h.
	kv, err := valve.Kv(10, 3, 2, 1000)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, kv, 1e-12)
}

func TestKv_FlowRoundTrip(t *testing.T) {
	const p1, p2, rho = 6.0, 2.5, 998.2
	kv, err := valve.Kv(12.5, p1, p2, rho)
	require.NoError(t, err)

	flow, err := valve.Flow(kv, p1, p2, rho)
	require.NoError(t, err)
	assert.InDelta(t, 12.5, flow, 1e-12, "Kv and Flow must be exact inverses")
}

func TestKv_GrowsWithDensityAndShrinkingDP(t *testing.T) {
	base, err := valve.Kv(10, 3, 2, 1000)
	require.NoError(t, err)

	heavy, err := valve.Kv(10, 3, 2, 1200)
	require.NoError(t, err)
	assert.Greater(t, heavy, base, "denser fluid needs a larger valve")

	tight, err := valve.Kv(10, 3, 2.9, 1000)
	require.NoError(t, err)
	assert.Greater(t, tight, base, "smaller differential needs a larger valve")
}

func TestKvFlow_DomainErrors(t *testing.T) {
	_, err := valve.Kv(-1, 3, 2, 1000)
	assert.ErrorIs(t, err, valve.ErrKvRange)

	_, err = valve.Kv(10, 2, 2, 1000)
	assert.ErrorIs(t, err, valve.ErrPressureOrder, "p1 = p2 has no driving differential")

	_, err = valve.Kv(10, 2, 3, 1000)
	assert.ErrorIs(t, err, valve.ErrPressureOrder)

	_, err = valve.Kv(10, 3, -2, 1000)
	assert.ErrorIs(t, err, valve.ErrPressureRange, "absolute pressures must be positive")

	_, err = valve.Kv(10, 3, 2, 0)
	assert.ErrorIs(t, err, valve.ErrDensityRange)

	_, err = valve.Flow(-5, 3, 2, 1000)
	assert.ErrorIs(t, err, valve.ErrKvRange)
}

// ------------------------------------------------------------------------
// 2. Resistance coefficient ⇄ Kv.
// ------------------------------------------------------------------------

func TestZeta_KvRoundTrip(t *testing.T) {
	const kv, dn = 25.0, 50.0
	zeta, err := valve.Zeta(kv, dn)
	require.NoError(t, err)
	assert.InDelta(t, 0.0016*50*50*50*50/(25*25), zeta, 1e-12)

	back, err := valve.KvFromZeta(zeta, dn)
	require.NoError(t, err)
	assert.InDelta(t, kv, back, 1e-9, "ζ = N2·dn⁴/Kv² and Kv = 0.04·dn²/√ζ must invert")
}

func TestZeta_DomainErrors(t *testing.T) {
	_, err := valve.Zeta(0, 50)
	assert.ErrorIs(t, err, valve.ErrKvRange)

	_, err = valve.Zeta(25, 0)
	assert.ErrorIs(t, err, valve.ErrDiameterRange)

	_, err = valve.KvFromZeta(0, 50)
	assert.ErrorIs(t, err, valve.ErrZetaRange)

	_, err = valve.KvFromZeta(-2, 50)
	assert.ErrorIs(t, err, valve.ErrZetaRange)
}

// ------------------------------------------------------------------------
// 3. Piping geometry & pressure recovery factors.
// ------------------------------------------------------------------------

func TestFp_LineSizeValveIsUnity(t *testing.T) {
	// dn1 = dn2 = dnv: all fitting coefficients vanish, Fp = 1 exactly.
	fp, err := valve.Fp(25, 50, 50, 50)
	require.NoError(t, err)
	assert.Equal(t, 1.0, fp)
}

func TestFp_ReducersLowerFp(t *testing.T) {
	fp, err := valve.Fp(25, 50, 50, 40)
	require.NoError(t, err)
	assert.Less(t, fp, 1.0)
	assert.Greater(t, fp, 0.0)

	// A tighter valve-to-pipe ratio penalizes harder.
	fpTight, err := valve.Fp(25, 80, 80, 40)
	require.NoError(t, err)
	assert.Less(t, fpTight, fp)
}

func TestFlp_LineSizeValveEqualsFL(t *testing.T) {
	// No inlet fitting: FLP degenerates to FL.
	flp, err := valve.Flp(0.9, 25, 50, 50)
	require.NoError(t, err)
	assert.Equal(t, 0.9, flp)
}

func TestFlp_NeverExceedsFL(t *testing.T) {
	flp, err := valve.Flp(0.9, 25, 50, 40)
	require.NoError(t, err)
	assert.Less(t, flp, 0.9)
	assert.Greater(t, flp, 0.0)
}

func TestRecoveryFactorValidation(t *testing.T) {
	for _, fl := range []float64{0, -0.5, 1.01} {
		_, err := valve.Flp(fl, 25, 50, 40)
		assert.ErrorIs(t, err, valve.ErrRecoveryRange, "FL=%g", fl)

		_, err = valve.DPmax(fl, 6, 20)
		assert.ErrorIs(t, err, valve.ErrRecoveryRange, "FL=%g", fl)
	}
}

// ------------------------------------------------------------------------
// 4. Choked-flow limits: FF, ΔPmax, Qmax.
// ------------------------------------------------------------------------

func TestFF_ReferenceValues(t *testing.T) {
	// Cold water sits just under the 0.96 ceiling; hot water chokes sooner.
	ff20, err := valve.FF(20)
	require.NoError(t, err)
	assert.InDelta(t, 0.957, ff20, 1e-3)

	ff90, err := valve.FF(90)
	require.NoError(t, err)
	assert.Less(t, ff90, ff20, "FF must fall as vapour pressure rises")
	assert.Greater(t, ff90, 0.9)
}

func TestDPmax_Composition(t *testing.T) {
	// ΔPmax must equal FL²·(p1 − FF·pv) assembled from the public parts.
	const fl, p1, temp = 0.9, 6.0, 20.0
	dpmax, err := valve.DPmax(fl, p1, temp)
	require.NoError(t, err)

	ff, err := valve.FF(temp)
	require.NoError(t, err)
	pv, err := water.VapourPressure(temp)
	require.NoError(t, err)
	assert.InDelta(t, fl*fl*(p1-ff*pv/100), dpmax, 1e-12)
	assert.Less(t, dpmax, p1, "usable differential cannot exceed upstream pressure")
}

func TestQmax_Composition(t *testing.T) {
	const kv, fl, p1, temp, rho = 25.0, 0.9, 6.0, 20.0, 998.2
	qmax, err := valve.Qmax(kv, fl, p1, temp, rho)
	require.NoError(t, err)

	ff, err := valve.FF(temp)
	require.NoError(t, err)
	pv, err := water.VapourPressure(temp)
	require.NoError(t, err)
	want := kv * fl * math.Sqrt((p1-ff*pv/100)/(rho/1000))
	assert.InDelta(t, want, qmax, 1e-12)
}

func TestQmax_CapsFlowAtLargeDP(t *testing.T) {
	// Past ΔPmax the plain Kv formula keeps promising more flow; Qmax is
	// the physical ceiling.
	const kv, fl, p1, temp, rho = 25.0, 0.9, 6.0, 20.0, 998.2
	qmax, err := valve.Qmax(kv, fl, p1, temp, rho)
	require.NoError(t, err)

	unchoked, err := valve.Flow(kv, p1, 0.1, rho)
	require.NoError(t, err)
	assert.Greater(t, unchoked, qmax, "formula flow at near-vacuum outlet must exceed the choked ceiling")
}

func TestQmax_ChokedThreshold(t *testing.T) {
	// At 100 °C the vapour pressure ≈ 1 bar: an upstream pressure below
	// FF·pv leaves no usable differential.
	_, err := valve.Qmax(25, 0.9, 0.5, 100, 958)
	assert.ErrorIs(t, err, valve.ErrPressureRange)
}

func TestSizing_TemperatureErrorsPropagate(t *testing.T) {
	_, err := valve.FF(-10)
	assert.ErrorIs(t, err, water.ErrTemperatureRange)

	_, err = valve.DPmax(0.9, 6, 200)
	assert.ErrorIs(t, err, water.ErrTemperatureRange)

	_, err = valve.Qmax(25, 0.9, 6, 200, 1000)
	assert.ErrorIs(t, err, water.ErrTemperatureRange)
}
