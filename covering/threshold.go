package covering

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/coverage"
	"github.com/katalvlaran/lvlopt/linprog"
)

// Row name of the aggregate percentage-coverage constraint.
const rowThreshold = "Threshold"

// checkPsi rejects thresholds outside [0,100] before any variable exists.
func checkPsi(method string, psi float64) error {
	if psi < 0 || psi > 100 {
		return fmt.Errorf("%s: psi %g: %w", method, psi, ErrPsiRange)
	}

	return nil
}

// Threshold builds the threshold covering model over a Binary store: the
// fewest facilities such that at least psi percent of total demand is
// covered.
//
// Murray, A. T., & Tong, D. (2009). GIS and spatial analysis in the media.
// Applied Geography 29 (2):250–259.
//
// Formulation:
//
//	min  Σ X_f
//	s.t. Σ_{f covers d} X_f − Y_d ≥ 0            ∀d   (row D<id>)
//	     Σ_d (100·w_d/Σw)·Y_d ≥ psi                    (Threshold)
//	     Y_d, X_f ∈ {0,1}
//
// psi is a percentage in [0,100]; psi = 0 makes the threshold row trivially
// satisfiable. The demand weights (and their total Σw) come from the field
// Options.UseServiceable selects.
func Threshold(s *coverage.Store, psi float64, opts Options) (*linprog.Problem, error) {
	const method = "Threshold"
	if err := checkStore(method, s, opts, coverage.Binary); err != nil {
		return nil, err
	}
	if err := checkPsi(method, psi); err != nil {
		return nil, err
	}
	tw := totalWeight(s, opts.UseServiceable)
	if tw == 0 {
		return nil, fmt.Errorf("%s: %w", method, ErrZeroDemand)
	}

	dvars := demandVars(s, prefixCovered, opts.Delineator, linprog.NewBinary)
	fvars := facilityVars(s, opts.Delineator, linprog.NewBinary)
	p, err := linprog.NewProblem("ThresholdModel", linprog.Minimize)
	if err != nil {
		return nil, err
	}
	if err = p.SetObjective(facilitySum(s, fvars)); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	var threshold linprog.LinearExpr
	for _, id := range s.DemandIDs() {
		rec, _ := s.Record(id)
		expr := coverageSum(rec, fvars, false).Plus(-1, dvars[id])
		if err = p.AddConstraint(rowDemandPrefix+id, expr, linprog.GreaterEq, 0); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
		// Rescale each unit's weight to its share of total demand, in
		// percentage points.
		threshold = threshold.Plus(100*weightOf(rec, opts.UseServiceable)/tw, dvars[id])
	}
	if err = p.AddConstraint(rowThreshold, threshold, linprog.GreaterEq, psi); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return p, nil
}

// CCThreshold builds the complementary-coverage threshold model over a
// Partial store.
//
// Tong, D. (2012). Regional coverage maximization: a new model to account
// implicitly for complementary coverage. Geographical Analysis 44 (1):1–14.
//
// Per-demand rows mirror MCLPCC (strength-weighted coverage linkage and a
// weight cap); the threshold row sums the continuous covered levels scaled
// by 100/Σw so the left side is in percentage units:
//
//	min  Σ X_f
//	s.t. Σ_{f} c_{f,d}·X_f − Y_d ≥ 0             ∀d   (row D<id>)
//	     Y_d ≤ w_d                                ∀d   (row DemandCap<id>)
//	     Σ_d (100/Σw)·Y_d ≥ psi                        (Threshold)
//	     Y_d ≥ 0 continuous, X_f ∈ {0,1}
func CCThreshold(s *coverage.Store, psi float64, opts Options) (*linprog.Problem, error) {
	const method = "CCThreshold"
	if err := checkStore(method, s, opts, coverage.Partial); err != nil {
		return nil, err
	}
	if err := checkPsi(method, psi); err != nil {
		return nil, err
	}
	tw := totalWeight(s, opts.UseServiceable)
	if tw == 0 {
		return nil, fmt.Errorf("%s: %w", method, ErrZeroDemand)
	}

	dvars := demandVars(s, prefixCovered, opts.Delineator, linprog.NewContinuous)
	fvars := facilityVars(s, opts.Delineator, linprog.NewBinary)
	p, err := linprog.NewProblem("ThresholdModel", linprog.Minimize)
	if err != nil {
		return nil, err
	}
	if err = p.SetObjective(facilitySum(s, fvars)); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	var threshold linprog.LinearExpr
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
		threshold = threshold.Plus(100/tw, dvars[id])
	}
	if err = p.AddConstraint(rowThreshold, threshold, linprog.GreaterEq, psi); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return p, nil
}
