package covering

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/coverage"
	"github.com/katalvlaran/lvlopt/linprog"
)

// MCLP builds the maximal covering location problem over a Binary store.
//
// Church, Richard, and Charles R. ReVelle. 1974. The maximal covering
// location problem. Papers in Regional Science 32 (1):101–118.
//
// Formulation:
//
//	max  Σ_d w_d·Y_d
//	s.t. Σ_{f covers d} X_f − Y_d ≥ 0        ∀d   (row D<id>)
//	     Σ X_f ≤ limits.Total                      (NumTotalFacilities)
//	     Σ X_{f∈t} ≤ limits.PerType[t]             (Num<type>, optional)
//	     Y_d, X_f ∈ {0,1}
//
// A demand unit can only be marked covered when some sited facility actually
// covers it. Options.UseServiceable swaps the objective weight field only.
func MCLP(s *coverage.Store, limits FacilityLimits, opts Options) (*linprog.Problem, error) {
	const method = "MCLP"
	if err := checkStore(method, s, opts, coverage.Binary); err != nil {
		return nil, err
	}
	if err := checkLimits(method, limits); err != nil {
		return nil, err
	}

	dvars := demandVars(s, prefixCovered, opts.Delineator, linprog.NewBinary)
	fvars := facilityVars(s, opts.Delineator, linprog.NewBinary)
	p, err := linprog.NewProblem(method, linprog.Maximize)
	if err != nil {
		return nil, err
	}
	if err = p.SetObjective(demandObjective(s, dvars, opts.UseServiceable)); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	for _, id := range s.DemandIDs() {
		rec, _ := s.Record(id)
		expr := coverageSum(rec, fvars, false).Plus(-1, dvars[id])
		if err = p.AddConstraint(rowDemandPrefix+id, expr, linprog.GreaterEq, 0); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
	}
	if err = addCardinalityRows(p, s, fvars, limits); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return p, nil
}

// MCLPCC builds the complementary-coverage MCLP variant over a Partial
// store.
//
// Tong, Daoqin. 2012. Regional coverage maximization: a new model to account
// implicitly for complementary coverage. Geographical Analysis 44 (1):1–14.
//
// The covered level Y_d is continuous and capped at the demand weight, and
// the coverage row sums strength-weighted contributions, so several
// partially-covering facilities can jointly stand in for one full cover:
//
//	max  Σ_d w_d·Y_d
//	s.t. Σ_{f} c_{f,d}·X_f − Y_d ≥ 0          ∀d   (row D<id>)
//	     Y_d ≤ w_d                             ∀d   (row DemandCap<id>)
//	     cardinality rows as MCLP
//	     Y_d ≥ 0 continuous, X_f ∈ {0,1}
func MCLPCC(s *coverage.Store, limits FacilityLimits, opts Options) (*linprog.Problem, error) {
	const method = "MCLPCC"
	if err := checkStore(method, s, opts, coverage.Partial); err != nil {
		return nil, err
	}
	if err := checkLimits(method, limits); err != nil {
		return nil, err
	}

	dvars := demandVars(s, prefixCovered, opts.Delineator, linprog.NewContinuous)
	fvars := facilityVars(s, opts.Delineator, linprog.NewBinary)
	// Problem name follows the original emission: the CC variant still
	// announces itself as MCLP.
	p, err := linprog.NewProblem("MCLP", linprog.Maximize)
	if err != nil {
		return nil, err
	}
	if err = p.SetObjective(demandObjective(s, dvars, opts.UseServiceable)); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	for _, id := range s.DemandIDs() {
		rec, _ := s.Record(id)
		expr := coverageSum(rec, fvars, true).Plus(-1, dvars[id])
		if err = p.AddConstraint(rowDemandPrefix+id, expr, linprog.GreaterEq, 0); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
		capRow := linprog.LinearExpr{}.Plus(1, dvars[id])
		if err = p.AddConstraint("DemandCap"+id, capRow, linprog.LessEq, weightOf(rec, opts.UseServiceable)); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
	}
	if err = addCardinalityRows(p, s, fvars, limits); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return p, nil
}
