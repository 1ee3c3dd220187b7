package linprog_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lvlopt/linprog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWrite_FullProblem pins the complete LP text for a problem exercising
// every section: objective, rows, bounds, generals and binaries.
func TestWrite_FullProblem(t *testing.T) {
	p, err := linprog.NewProblem("demo", linprog.Maximize)
	require.NoError(t, err)

	y := linprog.NewBinary("Y$1")
	w := linprog.NewFree("W$1")
	x := linprog.NewInteger("Fire$A")
	dummy := linprog.NewFixed("__dummy$2", 0)

	require.NoError(t, p.SetObjective(linprog.LinearExpr{}.Plus(10, y).Plus(1, w)))
	require.NoError(t, p.AddConstraint("C1",
		linprog.LinearExpr{}.Plus(1, x).Plus(-1, y), linprog.GreaterEq, 0))
	require.NoError(t, p.AddConstraint("C2",
		linprog.LinearExpr{}.Plus(1, dummy), linprog.GreaterEq, 1))

	var b strings.Builder
	require.NoError(t, linprog.Write(&b, p))

	want := `\ Problem: demo
Maximize
 obj: 10 Y$1 + W$1
Subject To
 C1: Fire$A - Y$1 >= 0
 C2: __dummy$2 >= 1
Bounds
 W$1 free
 __dummy$2 = 0
Generals
 Fire$A
 __dummy$2
Binaries
 Y$1
End
`
	assert.Equal(t, want, b.String())
}

// TestWrite_CoefficientRendering covers signs, magnitudes and fractions.
func TestWrite_CoefficientRendering(t *testing.T) {
	p, err := linprog.NewProblem("coef", linprog.Minimize)
	require.NoError(t, err)

	a := linprog.NewContinuous("a")
	b := linprog.NewContinuous("b")
	require.NoError(t, p.SetObjective(linprog.LinearExpr{}.Plus(-2, a).Plus(0.5, b)))
	require.NoError(t, p.AddConstraint("C1",
		linprog.LinearExpr{}.Plus(-1, a).Plus(1, b), linprog.LessEq, -3))

	var sb strings.Builder
	require.NoError(t, linprog.Write(&sb, p))
	out := sb.String()

	assert.Contains(t, out, " obj: - 2 a + 0.5 b\n")
	assert.Contains(t, out, " C1: - a + b <= -3\n")
	assert.NotContains(t, out, "Bounds", "default continuous bounds emit nothing")
}

// TestWrite_Determinism verifies identical problems produce identical text.
func TestWrite_Determinism(t *testing.T) {
	build := func() *linprog.Problem {
		p, err := linprog.NewProblem("det", linprog.Minimize)
		require.NoError(t, err)
		x := linprog.NewBinary("x")
		y := linprog.NewBinary("y")
		require.NoError(t, p.SetObjective(linprog.LinearExpr{}.Plus(1, x).Plus(1, y)))
		require.NoError(t, p.AddConstraint("C1", linprog.LinearExpr{}.Plus(1, x), linprog.GreaterEq, 1))
		require.NoError(t, p.AddConstraint("C2", linprog.LinearExpr{}.Plus(1, y), linprog.GreaterEq, 1))

		return p
	}

	var a, b strings.Builder
	require.NoError(t, linprog.Write(&a, build()))
	require.NoError(t, linprog.Write(&b, build()))
	assert.Equal(t, a.String(), b.String())
}

// TestWrite_InputContract covers nil writer/problem and missing objective.
func TestWrite_InputContract(t *testing.T) {
	var b strings.Builder

	assert.ErrorIs(t, linprog.Write(nil, nil), linprog.ErrNilWriter)
	assert.ErrorIs(t, linprog.Write(&b, nil), linprog.ErrNilProblem)

	p, err := linprog.NewProblem("empty", linprog.Minimize)
	require.NoError(t, err)
	assert.ErrorIs(t, linprog.Write(&b, p), linprog.ErrNoObjective)
}
