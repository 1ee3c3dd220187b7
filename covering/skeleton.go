package covering

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/lvlopt/coverage"
	"github.com/katalvlaran/lvlopt/linprog"
)

// skeleton.go — the standard covering skeleton shared by the builders:
// store/parameter checks, variable creation, coverage sums, objective
// weights and cardinality rows. Only structure that is genuinely common
// across formulations lives here; constraint semantics stay in the builders.

// Constraint row names shared across models.
const (
	rowDemandPrefix = "D"
	rowTotal        = "NumTotalFacilities"
	rowTypePrefix   = "Num"
)

// checkStore runs the shared input contract: non-nil store, acceptable kind
// and mode, usable delineator. method prefixes returned errors.
func checkStore(method string, s *coverage.Store, opts Options, kind coverage.Kind) error {
	if s == nil {
		return fmt.Errorf("%s: %w", method, ErrNilStore)
	}
	if err := coverage.Validate(s, []coverage.Mode{coverage.ModeCoverage}, []coverage.Kind{kind}); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	if err := checkDelineator(s, opts.Delineator); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	return nil
}

// checkDelineator rejects tokens that would make generated variable names
// ambiguous: empty tokens, tokens containing whitespace, and tokens that
// occur inside any identifier of the store.
func checkDelineator(s *coverage.Store, delin string) error {
	if delin == "" || strings.ContainsAny(delin, " \t\n") {
		return fmt.Errorf("delineator %q: %w", delin, ErrDelineator)
	}
	for _, ftype := range s.FacilityTypes() {
		if strings.Contains(ftype, delin) {
			return fmt.Errorf("delineator %q occurs in facility type %q: %w", delin, ftype, ErrDelineator)
		}
		for _, fid := range s.FacilityIDs(ftype) {
			if strings.Contains(fid, delin) {
				return fmt.Errorf("delineator %q occurs in facility id %q: %w", delin, fid, ErrDelineator)
			}
		}
	}
	for _, id := range s.DemandIDs() {
		if strings.Contains(id, delin) {
			return fmt.Errorf("delineator %q occurs in demand id %q: %w", delin, id, ErrDelineator)
		}
	}

	return nil
}

// checkLimits rejects negative total or per-type caps.
func checkLimits(method string, limits FacilityLimits) error {
	if limits.Total < 0 {
		return fmt.Errorf("%s: total %d: %w", method, limits.Total, ErrCountRange)
	}
	for ftype, limit := range limits.PerType {
		if limit < 0 {
			return fmt.Errorf("%s: type %q cap %d: %w", method, ftype, limit, ErrCountRange)
		}
	}

	return nil
}

// demandVars creates one variable per demand unit, named
// <prefix><delin><id>, in sorted demand order.
func demandVars(s *coverage.Store, prefix, delin string, mk func(string) *linprog.Variable) map[string]*linprog.Variable {
	vars := make(map[string]*linprog.Variable, len(s.DemandIDs()))
	for _, id := range s.DemandIDs() {
		vars[id] = mk(prefix + delin + id)
	}

	return vars
}

// facilityVars creates one siting variable per facility, named
// <type><delin><id>, in sorted (type, id) order.
func facilityVars(s *coverage.Store, delin string, mk func(string) *linprog.Variable) map[string]map[string]*linprog.Variable {
	vars := make(map[string]map[string]*linprog.Variable)
	for _, ftype := range s.FacilityTypes() {
		byID := make(map[string]*linprog.Variable)
		for _, fid := range s.FacilityIDs(ftype) {
			byID[fid] = mk(ftype + delin + fid)
		}
		vars[ftype] = byID
	}

	return vars
}

// weightOf selects the objective weight field for a record.
func weightOf(rec *coverage.DemandRecord, useServiceable bool) float64 {
	if useServiceable {
		return rec.ServiceableDemand
	}

	return rec.Demand
}

// totalWeight sums the selected weight field over all demand units.
func totalWeight(s *coverage.Store, useServiceable bool) float64 {
	var total float64
	for _, id := range s.DemandIDs() {
		rec, _ := s.Record(id)
		total += weightOf(rec, useServiceable)
	}

	return total
}

// demandObjective builds Σ weight(d)·var(d) over all demand units.
func demandObjective(s *coverage.Store, dvars map[string]*linprog.Variable, useServiceable bool) linprog.LinearExpr {
	var expr linprog.LinearExpr
	for _, id := range s.DemandIDs() {
		rec, _ := s.Record(id)
		expr = expr.Plus(weightOf(rec, useServiceable), dvars[id])
	}

	return expr
}

// facilitySum builds Σ siting variables over every facility of every type.
func facilitySum(s *coverage.Store, fvars map[string]map[string]*linprog.Variable) linprog.LinearExpr {
	var expr linprog.LinearExpr
	for _, ftype := range s.FacilityTypes() {
		for _, fid := range s.FacilityIDs(ftype) {
			expr = expr.Plus(1, fvars[ftype][fid])
		}
	}

	return expr
}

// coverageSum builds the covering-facility sum for one demand record:
// presence terms (coefficient 1) for binary models, strength-weighted terms
// for partial models. Iteration is sorted for stable emission.
func coverageSum(rec *coverage.DemandRecord, fvars map[string]map[string]*linprog.Variable, weighted bool) linprog.LinearExpr {
	var expr linprog.LinearExpr
	for _, ftype := range sortedKeys(rec.Coverage) {
		byID := rec.Coverage[ftype]
		for _, fid := range sortedKeys(byID) {
			coef := 1.0
			if weighted {
				coef = byID[fid]
			}
			expr = expr.Plus(coef, fvars[ftype][fid])
		}
	}

	return expr
}

// addCardinalityRows appends the total facility cap and any per-type caps
// that name a type present in the store.
func addCardinalityRows(p *linprog.Problem, s *coverage.Store, fvars map[string]map[string]*linprog.Variable, limits FacilityLimits) error {
	if err := p.AddConstraint(rowTotal, facilitySum(s, fvars), linprog.LessEq, float64(limits.Total)); err != nil {
		return err
	}
	for _, ftype := range s.FacilityTypes() {
		limit, ok := limits.PerType[ftype]
		if !ok {
			continue
		}
		var expr linprog.LinearExpr
		for _, fid := range s.FacilityIDs(ftype) {
			expr = expr.Plus(1, fvars[ftype][fid])
		}
		if err := p.AddConstraint(rowTypePrefix+ftype, expr, linprog.LessEq, float64(limit)); err != nil {
			return err
		}
	}

	return nil
}

// sortedKeys returns the keys of m in sorted order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
