package covering

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/coverage"
	"github.com/katalvlaran/lvlopt/linprog"
)

// LSCP builds the location set covering problem over a Binary store.
//
// Church, R., & Murray, A. (2009). Coverage. Business Site Selection,
// Location Analysis, and GIS (pp. 209–233). Hoboken, NJ: Wiley.
//
// Formulation:
//
//	min  Σ X_f
//	s.t. Σ_{f covers d} X_f ≥ 1     ∀d   (row D<id>)
//	     X_f ∈ {0,1}
//
// There is no demand weighting and no facility cap: every demand unit must
// be covered by at least one sited facility.
//
// A demand unit with a structurally empty coverage set makes the problem
// infeasible by construction. The row is still emitted well-formed, carrying
// a single fixed-zero placeholder variable, so downstream emission never
// drops it; infeasibility is surfaced by the solver, not hidden by a
// malformed model file.
func LSCP(s *coverage.Store, opts Options) (*linprog.Problem, error) {
	const method = "LSCP"
	if err := checkStore(method, s, opts, coverage.Binary); err != nil {
		return nil, err
	}

	fvars := facilityVars(s, opts.Delineator, linprog.NewBinary)
	p, err := linprog.NewProblem(method, linprog.Minimize)
	if err != nil {
		return nil, err
	}
	if err = p.SetObjective(facilitySum(s, fvars)); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	for _, id := range s.DemandIDs() {
		rec, _ := s.Record(id)
		expr := coverageSum(rec, fvars, false)
		if len(expr) == 0 {
			expr = expr.Plus(1, linprog.NewFixed(prefixDummy+opts.Delineator+id, 0))
		}
		if err = p.AddConstraint(rowDemandPrefix+id, expr, linprog.GreaterEq, 1); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
	}

	return p, nil
}
