package covering_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lvlopt/coverage"
	"github.com/katalvlaran/lvlopt/covering"
	"github.com/katalvlaran/lvlopt/linprog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLSCP_Structure verifies unit objective coefficients on every facility
// variable and ≥1 coverage rows per demand.
func TestLSCP_Structure(t *testing.T) {
	s := tinyBinaryStore(t)
	p, err := covering.LSCP(s, covering.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "LSCP", p.Name())
	assert.Equal(t, linprog.Minimize, p.Sense())
	assert.Equal(t, map[string]float64{"Fire$A": 1, "Fire$B": 1}, termMap(p.Objective()),
		"objective coefficients are all 1 on facility variables")

	d1 := mustRow(t, p, "DD1")
	assert.Equal(t, linprog.GreaterEq, d1.Op)
	assert.Equal(t, 1.0, d1.RHS)
	assert.Equal(t, map[string]float64{"Fire$A": 1, "Fire$B": 1}, termMap(d1.Expr))

	d2 := mustRow(t, p, "DD2")
	assert.Equal(t, map[string]float64{"Fire$B": 1}, termMap(d2.Expr))

	_, ok := p.Constraint("NumTotalFacilities")
	assert.False(t, ok, "LSCP carries no facility cap")
}

// TestLSCP_SingleFacilitySuffices verifies siting B alone covers both
// demands while siting A alone does not.
func TestLSCP_SingleFacilitySuffices(t *testing.T) {
	s := tinyBinaryStore(t)
	p, err := covering.LSCP(s, covering.DefaultOptions())
	require.NoError(t, err)

	siteB := map[string]float64{"Fire$B": 1}
	assert.True(t, allSatisfied(p, siteB))
	assert.Equal(t, 1.0, lhs(p.Objective(), siteB), "minimum facility count is 1")

	siteA := map[string]float64{"Fire$A": 1}
	assert.False(t, allSatisfied(p, siteA), "A leaves D2 uncovered")
}

// TestLSCP_EmptyCoveragePlaceholder verifies a demand unit with no covering
// facility still produces a well-formed row: a single fixed-zero term, not
// an omitted or empty constraint.
func TestLSCP_EmptyCoveragePlaceholder(t *testing.T) {
	s := tinyBinaryStore(t)
	require.NoError(t, s.AddDemand("D3", 5))

	p, err := covering.LSCP(s, covering.DefaultOptions())
	require.NoError(t, err)

	d3 := mustRow(t, p, "DD3")
	require.Len(t, d3.Expr, 1)
	assert.Equal(t, linprog.GreaterEq, d3.Op)
	assert.Equal(t, 1.0, d3.RHS)

	dummy := d3.Expr[0].Var
	assert.Equal(t, "__dummy$D3", dummy.Name)
	assert.Equal(t, 0.0, dummy.Lo)
	assert.Equal(t, 0.0, dummy.Hi, "placeholder is fixed at zero")

	// The row survives emission rather than being silently dropped.
	var b strings.Builder
	require.NoError(t, linprog.Write(&b, p))
	assert.Contains(t, b.String(), " DD3: __dummy$D3 >= 1\n")

	// Infeasibility is a solve-time outcome, not a build error: no
	// assignment can satisfy DD3, since the placeholder is pinned to 0.
	assert.False(t, satisfied(d3, map[string]float64{"__dummy$D3": 0}))
}

// TestLSCP_KindGate verifies a partial store is rejected.
func TestLSCP_KindGate(t *testing.T) {
	s := tinyPartialStore(t)
	_, err := covering.LSCP(s, covering.DefaultOptions())
	assert.ErrorIs(t, err, coverage.ErrKindMismatch)
}
