package covering

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/coverage"
	"github.com/katalvlaran/lvlopt/linprog"
)

// BCLP builds the backup coverage location problem over a Binary store.
//
// Hogan, Kathleen, and Charles ReVelle. 1986. Concepts and Applications of
// Backup Coverage. Management Science 32 (11):1434–1444.
//
// Formulation:
//
//	max  Σ_d w_d·U_d
//	s.t. Σ_{f covers d} X_f − U_d ≥ 1        ∀d   (row D<id>)
//	     Σ X_f ≤ limits.Total                      (NumTotalFacilities)
//	     Σ X_{f∈t} ≤ limits.PerType[t]             (Num<type>, optional)
//	     U_d ∈ {0,1}, X_f ∈ ℤ≥0
//
// The backup indicator U_d may only reach 1 when at least two covering
// facilities are sited: one providing primary cover and a second providing
// backup. Siting variables are unbounded-above integers, since backup
// coverage counts additional covering facilities beyond the first.
func BCLP(s *coverage.Store, limits FacilityLimits, opts Options) (*linprog.Problem, error) {
	const method = "BCLP"
	if err := checkStore(method, s, opts, coverage.Binary); err != nil {
		return nil, err
	}
	if err := checkLimits(method, limits); err != nil {
		return nil, err
	}

	dvars := demandVars(s, prefixBackup, opts.Delineator, linprog.NewBinary)
	fvars := facilityVars(s, opts.Delineator, linprog.NewInteger)
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
		if err = p.AddConstraint(rowDemandPrefix+id, expr, linprog.GreaterEq, 1); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
	}
	if err = addCardinalityRows(p, s, fvars, limits); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return p, nil
}

// BCLPCC builds the partial-coverage backup model over a Partial store,
// blending single-cover and double-cover utility through a convex weight
// instead of BCLP's hard two-tier threshold.
//
// Per demand unit there are three continuous levels: primary W_d (≥0),
// backup Y_d (free — it may go negative as an intermediate), and overall
// Z_d (≥0).
//
// Formulation, with β = backupWeight:
//
//	max  Σ_d (β·Y_d + (1−β)·W_d)
//	s.t. Σ_f c_{f,d}·X_f − Z_d ≥ 0       ∀d   (row D<id>)
//	     W_d ≤ w_d                        ∀d   (row PrimaryDemand<id>)
//	     W_d − Z_d ≤ w_d                  ∀d   (row PrimaryOverall<id>)
//	     Z_d − Y_d ≥ w_d                  ∀d   (row OverallBackup<id>)
//	     Z_d ≤ 2·w_d                      ∀d   (row OverallDemand<id>)
//	     cardinality rows as MCLP
//	     X_f ∈ ℤ≥0
//
// Every chained row is per-demand: PrimaryOverall<id> relates W_d to the
// same unit's Z_d and nothing else.
func BCLPCC(s *coverage.Store, limits FacilityLimits, backupWeight float64, opts Options) (*linprog.Problem, error) {
	const method = "BCLPCC"
	if err := checkStore(method, s, opts, coverage.Partial); err != nil {
		return nil, err
	}
	if err := checkLimits(method, limits); err != nil {
		return nil, err
	}
	if backupWeight < 0 || backupWeight > 1 {
		return nil, fmt.Errorf("%s: backup weight %g: %w", method, backupWeight, ErrWeightRange)
	}
	primaryWeight := 1 - backupWeight

	primary := demandVars(s, prefixPrimary, opts.Delineator, linprog.NewContinuous)
	backup := demandVars(s, prefixCovered, opts.Delineator, linprog.NewFree)
	overall := demandVars(s, prefixOverall, opts.Delineator, linprog.NewContinuous)
	fvars := facilityVars(s, opts.Delineator, linprog.NewInteger)
	p, err := linprog.NewProblem(method, linprog.Maximize)
	if err != nil {
		return nil, err
	}
	var objective linprog.LinearExpr
	for _, id := range s.DemandIDs() {
		objective = objective.Plus(backupWeight, backup[id]).Plus(primaryWeight, primary[id])
	}
	if err = p.SetObjective(objective); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	for _, id := range s.DemandIDs() {
		rec, _ := s.Record(id)
		w := weightOf(rec, opts.UseServiceable)
		expr := coverageSum(rec, fvars, true).Plus(-1, overall[id])
		if err = p.AddConstraint(rowDemandPrefix+id, expr, linprog.GreaterEq, 0); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
		if err = p.AddConstraint("PrimaryDemand"+id,
			linprog.LinearExpr{}.Plus(1, primary[id]), linprog.LessEq, w); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
		if err = p.AddConstraint("PrimaryOverall"+id,
			linprog.LinearExpr{}.Plus(1, primary[id]).Plus(-1, overall[id]), linprog.LessEq, w); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
		if err = p.AddConstraint("OverallBackup"+id,
			linprog.LinearExpr{}.Plus(1, overall[id]).Plus(-1, backup[id]), linprog.GreaterEq, w); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
		if err = p.AddConstraint("OverallDemand"+id,
			linprog.LinearExpr{}.Plus(1, overall[id]), linprog.LessEq, 2*w); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
	}
	if err = addCardinalityRows(p, s, fvars, limits); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return p, nil
}
