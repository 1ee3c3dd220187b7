package covering

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlopt/coverage"
	"github.com/katalvlaran/lvlopt/linprog"
)

// TraumaH builds the two-echelon trauma network model over a TraumaH store:
// siting an exact number of air depots and trauma centers so that covered
// demand is maximized, where a unit counts as covered when reached on the
// ground by a sited trauma center or by air through an active (air depot,
// trauma center) pair.
//
// Branas, C. C., MacKenzie, E. J., & ReVelle, C. S. (2000). A trauma
// resource allocation model for ambulances and hospitals. Health Services
// Research 35 (2):489.
//
// Formulation, with Y/V/U the overall/ground/air indicators per demand
// unit, X the siting indicators and Z_{jk} the pairing indicator of depot j
// with center k:
//
//	max  Σ_d w_d·Y_d
//	s.t. Σ X_AD = numAD                               (NumAirDepot)
//	     Σ X_TC = numTC                               (NumTraumaCenter)
//	     Y_d − V_d − U_d ≤ 0                     ∀d   (AirGround<id>)
//	     V_d − Σ_{tc covers d} X_tc ≤ 0          ∀d   (Gnd<id>)
//	     U_d − Σ_{(j,k) reaches d} Z_jk ≤ 0      ∀d   (Air<id>)
//	     Z_jk − X_tc_k ≤ 0                       ∀j,k (GndPair…)
//	     Z_jk − X_ad_j ≤ 0                       ∀j,k (AirPair…)
//	     all variables ∈ {0,1}
//
// The siting counts are equalities, not caps. A pairing can only be active
// when both of its endpoints are sited. Pairs are explicit two-field
// entities; their variable names are rendered with the delineator for LP
// output, but constraint wiring never parses identifiers back apart.
// The objective always uses nominal demand.
func TraumaH(s *coverage.Store, numAD, numTC int, opts Options) (*linprog.Problem, error) {
	const method = "TRAUMAH"
	if err := checkStore(method, s, opts, coverage.TraumaH); err != nil {
		return nil, err
	}
	if numAD < 0 {
		return nil, fmt.Errorf("%s: air depots %d: %w", method, numAD, ErrCountRange)
	}
	if numTC < 0 {
		return nil, fmt.Errorf("%s: trauma centers %d: %w", method, numTC, ErrCountRange)
	}
	if !s.HasFacilityType(coverage.AirDepotType) {
		return nil, fmt.Errorf("%s: %q: %w", method, coverage.AirDepotType, ErrMissingFacilityType)
	}
	if !s.HasFacilityType(coverage.TraumaCenterType) {
		return nil, fmt.Errorf("%s: %q: %w", method, coverage.TraumaCenterType, ErrMissingFacilityType)
	}

	delin := opts.Delineator
	overall := demandVars(s, prefixCovered, delin, linprog.NewBinary)
	ground := demandVars(s, prefixGround, delin, linprog.NewBinary)
	air := demandVars(s, prefixAir, delin, linprog.NewBinary)
	fvars := facilityVars(s, delin, linprog.NewBinary)

	// One pairing indicator per (air depot, trauma center) combination,
	// keyed by the pair entity itself.
	pairVars := make(map[coverage.DepotCenterPair]*linprog.Variable)
	for _, ad := range s.FacilityIDs(coverage.AirDepotType) {
		for _, tc := range s.FacilityIDs(coverage.TraumaCenterType) {
			pair := coverage.DepotCenterPair{AirDepot: ad, TraumaCenter: tc}
			pairVars[pair] = linprog.NewBinary(prefixPair + delin + ad + delin + tc)
		}
	}

	p, err := linprog.NewProblem(method, linprog.Maximize)
	if err != nil {
		return nil, err
	}
	if err = p.SetObjective(demandObjective(s, overall, false)); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	var adSum linprog.LinearExpr
	for _, ad := range s.FacilityIDs(coverage.AirDepotType) {
		adSum = adSum.Plus(1, fvars[coverage.AirDepotType][ad])
	}
	if err = p.AddConstraint(rowTypePrefix+coverage.AirDepotType, adSum, linprog.Equal, float64(numAD)); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	var tcSum linprog.LinearExpr
	for _, tc := range s.FacilityIDs(coverage.TraumaCenterType) {
		tcSum = tcSum.Plus(1, fvars[coverage.TraumaCenterType][tc])
	}
	if err = p.AddConstraint(rowTypePrefix+coverage.TraumaCenterType, tcSum, linprog.Equal, float64(numTC)); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	for _, id := range s.DemandIDs() {
		rec, _ := s.Record(id)

		link := linprog.LinearExpr{}.Plus(1, overall[id]).Plus(-1, ground[id]).Plus(-1, air[id])
		if err = p.AddConstraint("AirGround"+id, link, linprog.LessEq, 0); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}

		gnd := linprog.LinearExpr{}.Plus(1, ground[id])
		for _, tc := range sortedKeys(rec.Coverage[coverage.TraumaCenterType]) {
			gnd = gnd.Plus(-1, fvars[coverage.TraumaCenterType][tc])
		}
		if err = p.AddConstraint("Gnd"+id, gnd, linprog.LessEq, 0); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}

		airRow := linprog.LinearExpr{}.Plus(1, air[id])
		for _, pair := range sortedPairs(rec.Pairs) {
			airRow = airRow.Plus(-1, pairVars[pair])
		}
		if err = p.AddConstraint("Air"+id, airRow, linprog.LessEq, 0); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
	}

	// A pairing may only be active when both endpoints are sited.
	for _, ad := range s.FacilityIDs(coverage.AirDepotType) {
		for _, tc := range s.FacilityIDs(coverage.TraumaCenterType) {
			pair := coverage.DepotCenterPair{AirDepot: ad, TraumaCenter: tc}
			suffix := delin + ad + delin + tc
			gnd := linprog.LinearExpr{}.Plus(1, pairVars[pair]).Plus(-1, fvars[coverage.TraumaCenterType][tc])
			if err = p.AddConstraint("GndPair"+suffix, gnd, linprog.LessEq, 0); err != nil {
				return nil, fmt.Errorf("%s: %w", method, err)
			}
			airC := linprog.LinearExpr{}.Plus(1, pairVars[pair]).Plus(-1, fvars[coverage.AirDepotType][ad])
			if err = p.AddConstraint("AirPair"+suffix, airC, linprog.LessEq, 0); err != nil {
				return nil, fmt.Errorf("%s: %w", method, err)
			}
		}
	}

	return p, nil
}

// sortedPairs returns a deduplicated copy of pairs in (depot, center) order,
// so repeated AddPair calls never double a coefficient.
func sortedPairs(pairs []coverage.DepotCenterPair) []coverage.DepotCenterPair {
	seen := make(map[coverage.DepotCenterPair]struct{}, len(pairs))
	out := make([]coverage.DepotCenterPair, 0, len(pairs))
	for _, p := range pairs {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AirDepot != out[j].AirDepot {
			return out[i].AirDepot < out[j].AirDepot
		}

		return out[i].TraumaCenter < out[j].TraumaCenter
	})

	return out
}
