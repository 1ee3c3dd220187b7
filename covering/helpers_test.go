package covering_test

import (
	"testing"

	"github.com/katalvlaran/lvlopt/coverage"
	"github.com/katalvlaran/lvlopt/linprog"
	"github.com/stretchr/testify/require"
)

// tinyBinaryStore builds the canonical tiny instance: two demand units
// (weights 10 and 20), facility Fire/A covering D1 only, Fire/B covering
// both.
func tinyBinaryStore(t *testing.T) *coverage.Store {
	t.Helper()
	s := coverage.NewStore(coverage.Binary)
	require.NoError(t, s.AddFacility("Fire", "A", nil))
	require.NoError(t, s.AddFacility("Fire", "B", nil))
	require.NoError(t, s.AddDemand("D1", 10))
	require.NoError(t, s.AddDemand("D2", 20))
	require.NoError(t, s.SetCoverage("D1", "Fire", "A", 1))
	require.NoError(t, s.SetCoverage("D1", "Fire", "B", 1))
	require.NoError(t, s.SetCoverage("D2", "Fire", "B", 1))

	return s
}

// tinyPartialStore mirrors the tiny instance with fractional strengths.
func tinyPartialStore(t *testing.T) *coverage.Store {
	t.Helper()
	s := coverage.NewStore(coverage.Partial)
	require.NoError(t, s.AddFacility("Fire", "A", nil))
	require.NoError(t, s.AddFacility("Fire", "B", nil))
	require.NoError(t, s.AddDemand("D1", 10))
	require.NoError(t, s.AddDemand("D2", 20))
	require.NoError(t, s.SetCoverage("D1", "Fire", "A", 0.4))
	require.NoError(t, s.SetCoverage("D1", "Fire", "B", 0.6))
	require.NoError(t, s.SetCoverage("D2", "Fire", "B", 1))

	return s
}

// termMap flattens an expression into name → coefficient for assertions.
func termMap(expr linprog.LinearExpr) map[string]float64 {
	m := make(map[string]float64, len(expr))
	for _, t := range expr {
		m[t.Var.Name] += t.Coef
	}

	return m
}

// lhs evaluates an expression under a variable assignment; absent names
// count as zero.
func lhs(expr linprog.LinearExpr, assign map[string]float64) float64 {
	var total float64
	for _, t := range expr {
		total += t.Coef * assign[t.Var.Name]
	}

	return total
}

// satisfied reports whether the assignment satisfies the constraint.
func satisfied(c linprog.Constraint, assign map[string]float64) bool {
	v := lhs(c.Expr, assign)
	switch c.Op {
	case linprog.LessEq:
		return v <= c.RHS
	case linprog.GreaterEq:
		return v >= c.RHS
	default:
		return v == c.RHS
	}
}

// allSatisfied reports whether the assignment satisfies every constraint.
func allSatisfied(p *linprog.Problem, assign map[string]float64) bool {
	for _, c := range p.Constraints() {
		if !satisfied(c, assign) {
			return false
		}
	}

	return true
}

// mustRow fetches a named constraint or fails the test.
func mustRow(t *testing.T, p *linprog.Problem, name string) linprog.Constraint {
	t.Helper()
	c, ok := p.Constraint(name)
	require.True(t, ok, "constraint %q missing", name)

	return c
}

// varByName finds a registered variable or fails the test.
func varByName(t *testing.T, p *linprog.Problem, name string) *linprog.Variable {
	t.Helper()
	for _, v := range p.Variables() {
		if v.Name == name {
			return v
		}
	}
	t.Fatalf("variable %q not registered", name)

	return nil
}
