package covering_test

import (
	"testing"

	"github.com/katalvlaran/lvlopt/coverage"
	"github.com/katalvlaran/lvlopt/covering"
	"github.com/katalvlaran/lvlopt/linprog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestThreshold_Structure pins the minimize-facilities objective, the MCLP
// link rows and the percentage-scaled threshold row.
func TestThreshold_Structure(t *testing.T) {
	s := tinyBinaryStore(t)
	p, err := covering.Threshold(s, 50, covering.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "ThresholdModel", p.Name())
	assert.Equal(t, linprog.Minimize, p.Sense())
	assert.Equal(t, map[string]float64{"Fire$A": 1, "Fire$B": 1}, termMap(p.Objective()))

	d1 := mustRow(t, p, "DD1")
	assert.Equal(t, map[string]float64{"Fire$A": 1, "Fire$B": 1, "Y$D1": -1}, termMap(d1.Expr))

	row := mustRow(t, p, "Threshold")
	assert.Equal(t, linprog.GreaterEq, row.Op)
	assert.Equal(t, 50.0, row.RHS)
	// Weights 10 and 20 of a total 30 scale to 100/3 and 200/3 percent.
	coefs := termMap(row.Expr)
	assert.InDelta(t, 100.0/3, coefs["Y$D1"], 1e-12)
	assert.InDelta(t, 200.0/3, coefs["Y$D2"], 1e-12)
	assert.InDelta(t, 100, coefs["Y$D1"]+coefs["Y$D2"], 1e-12, "coefficients total 100 percent")
}

// TestThreshold_PsiZeroTriviallySatisfied verifies ψ = 0 admits the all-zero
// assignment.
func TestThreshold_PsiZeroTriviallySatisfied(t *testing.T) {
	s := tinyBinaryStore(t)
	p, err := covering.Threshold(s, 0, covering.DefaultOptions())
	require.NoError(t, err)

	assert.True(t, allSatisfied(p, map[string]float64{}), "psi=0 threshold holds with nothing sited")
}

// TestThreshold_PsiRange verifies out-of-range thresholds fail before any
// problem is constructed.
func TestThreshold_PsiRange(t *testing.T) {
	s := tinyBinaryStore(t)
	for _, psi := range []float64{-0.5, 100.5, 1000} {
		p, err := covering.Threshold(s, psi, covering.DefaultOptions())
		assert.ErrorIs(t, err, covering.ErrPsiRange, "psi=%g", psi)
		assert.Nil(t, p, "no partial problem on range failure")
	}
}

// TestThreshold_ServiceableWeights verifies the flag feeds both the scaling
// coefficients and their denominator.
func TestThreshold_ServiceableWeights(t *testing.T) {
	s := tinyBinaryStore(t)
	require.NoError(t, s.UpdateServiceableDemand(map[string]float64{"D1": 30, "D2": 10}))

	opts := covering.DefaultOptions()
	opts.UseServiceable = true
	p, err := covering.Threshold(s, 25, opts)
	require.NoError(t, err)

	coefs := termMap(mustRow(t, p, "Threshold").Expr)
	assert.InDelta(t, 75, coefs["Y$D1"], 1e-12)
	assert.InDelta(t, 25, coefs["Y$D2"], 1e-12)
}

// TestThreshold_ZeroTotalWeight verifies the undefined-percentage case fails
// fast instead of emitting NaN coefficients.
func TestThreshold_ZeroTotalWeight(t *testing.T) {
	s := coverage.NewStore(coverage.Binary)
	require.NoError(t, s.AddFacility("Fire", "A", nil))
	require.NoError(t, s.AddDemand("D1", 0))

	_, err := covering.Threshold(s, 10, covering.DefaultOptions())
	assert.ErrorIs(t, err, covering.ErrZeroDemand)
}

// TestCCThreshold_Structure pins the partial-coverage threshold variant:
// strength-weighted link rows, demand caps, and a uniform 100/Σw scaling of
// the continuous covered levels.
func TestCCThreshold_Structure(t *testing.T) {
	s := tinyPartialStore(t)
	p, err := covering.CCThreshold(s, 40, covering.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "ThresholdModel", p.Name())
	assert.Equal(t, linprog.Minimize, p.Sense())
	assert.Equal(t, linprog.Continuous, varByName(t, p, "Y$D1").Dom)

	d1 := mustRow(t, p, "DD1")
	assert.Equal(t, map[string]float64{"Fire$A": 0.4, "Fire$B": 0.6, "Y$D1": -1}, termMap(d1.Expr))

	cap2 := mustRow(t, p, "DemandCapD2")
	assert.Equal(t, 20.0, cap2.RHS)

	row := mustRow(t, p, "Threshold")
	assert.Equal(t, 40.0, row.RHS)
	coefs := termMap(row.Expr)
	// Covered levels are in demand units; 100/30 converts each to percent.
	assert.InDelta(t, 100.0/30, coefs["Y$D1"], 1e-12)
	assert.InDelta(t, 100.0/30, coefs["Y$D2"], 1e-12)
}

// TestCCThreshold_PsiRangeAndKind verifies range and kind gating.
func TestCCThreshold_PsiRangeAndKind(t *testing.T) {
	s := tinyPartialStore(t)
	_, err := covering.CCThreshold(s, -1, covering.DefaultOptions())
	assert.ErrorIs(t, err, covering.ErrPsiRange)

	b := tinyBinaryStore(t)
	_, err = covering.CCThreshold(b, 50, covering.DefaultOptions())
	assert.ErrorIs(t, err, coverage.ErrKindMismatch)
}
