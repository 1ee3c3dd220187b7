// Package coverage defines core types, options, and sentinel errors
// for the coverage subpackage of github.com/katalvlaran/lvlopt.
package coverage

import (
	"errors"
)

// Sentinel errors for coverage operations.
var (
	// ErrNilStore indicates a nil *Store was supplied where one is required.
	ErrNilStore = errors.New("coverage: store must be non-nil")
	// ErrEmptyID indicates an empty facility-type, facility or demand identifier.
	ErrEmptyID = errors.New("coverage: identifier must be non-empty")
	// ErrDuplicateDemand indicates a demand id was added twice.
	ErrDuplicateDemand = errors.New("coverage: demand id already present")
	// ErrNegativeDemand indicates a negative demand or serviceable-demand value.
	ErrNegativeDemand = errors.New("coverage: demand must be non-negative")
	// ErrUnknownDemand indicates a demand id not present in the store.
	ErrUnknownDemand = errors.New("coverage: unknown demand id")
	// ErrUnknownFacility indicates a (type, id) pair not present in the store.
	ErrUnknownFacility = errors.New("coverage: unknown facility")
	// ErrStrengthRange indicates a coverage strength outside the kind's domain:
	// exactly 1 for Binary/TraumaH presence entries, [0,1] for Partial.
	ErrStrengthRange = errors.New("coverage: coverage strength out of range")
	// ErrKindMismatch indicates the store's kind is not accepted by the model.
	ErrKindMismatch = errors.New("coverage: coverage kind not allowed for this model")
	// ErrModeMismatch indicates the store's mode is not accepted by the model.
	ErrModeMismatch = errors.New("coverage: coverage mode not allowed for this model")
	// ErrMissingUpdate indicates UpdateServiceableDemand lacks a value for a
	// demand id present in the store.
	ErrMissingUpdate = errors.New("coverage: update missing demand id")
	// ErrPairKind indicates AddPair on a store whose kind is not TraumaH.
	ErrPairKind = errors.New("coverage: depot-center pairs require TraumaH kind")

	// ErrNoInput indicates Merge was called without any store.
	ErrNoInput = errors.New("coverage: merge requires at least one store")
	// ErrKindConflict indicates Merge inputs of differing kinds.
	ErrKindConflict = errors.New("coverage: conflicting coverage kinds")
	// ErrDemandKeys indicates Merge inputs whose demand-id sets differ.
	ErrDemandKeys = errors.New("coverage: demand keys invalid")
	// ErrFacilityTypeConflict indicates a facility type defined by two Merge inputs.
	ErrFacilityTypeConflict = errors.New("coverage: conflicting facility types")
)

// Kind tags the coverage semantics of a Store. It is set at construction and
// immutable thereafter; each model builder accepts exactly one kind.
type Kind int

const (
	// Binary coverage: a facility either fully covers a demand unit or not.
	Binary Kind = iota
	// Partial coverage: fractional contributions in [0,1] that may combine.
	Partial
	// TraumaH coverage: two-echelon ground/air trauma network coverage.
	TraumaH
)

// String returns the canonical kind name.
func (k Kind) String() string {
	switch k {
	case Binary:
		return "Binary"
	case Partial:
		return "Partial"
	case TraumaH:
		return "TraumaH"
	default:
		return "Unknown"
	}
}

// Mode tags what a Store's relation expresses. Coverage is the only mode
// today; the closed enum keeps Validate's surface stable if service-area or
// allocation relations are added later.
type Mode int

const (
	// ModeCoverage marks a plain covers/covered-by relation.
	ModeCoverage Mode = iota
)

// String returns the canonical mode name.
func (m Mode) String() string {
	if m == ModeCoverage {
		return "Coverage"
	}

	return "Unknown"
}

// Canonical facility-type names for the two-echelon TraumaH kind.
const (
	// AirDepotType is the facility-type name of air (helicopter) depots.
	AirDepotType = "AirDepot"
	// TraumaCenterType is the facility-type name of trauma centers.
	TraumaCenterType = "TraumaCenter"
)

// DepotCenterPair identifies one (air depot, trauma center) combination.
// The pair is an explicit two-field entity: constraint wiring never encodes
// it as a delimiter-joined string parsed back by position.
type DepotCenterPair struct {
	// AirDepot is the facility id under AirDepotType.
	AirDepot string
	// TraumaCenter is the facility id under TraumaCenterType.
	TraumaCenter string
}

// DemandRecord describes one demand unit and the facilities covering it.
// Records returned by Store accessors must be treated as read-only; all
// mutation goes through Store methods so the cached total stays exact.
type DemandRecord struct {
	// Demand is the nominal demand weight of the unit (≥ 0).
	Demand float64
	// ServiceableDemand is the demand eligible to be served (≥ 0).
	// Defaults to Demand unless overridden.
	ServiceableDemand float64
	// Coverage maps facility type → facility id → coverage strength.
	// Binary/TraumaH entries are presence-only (strength 1); Partial
	// entries carry a fractional strength in [0,1].
	Coverage map[string]map[string]float64
	// Pairs lists the depot-center combinations able to reach this unit by
	// air. Populated only for TraumaH stores.
	Pairs []DepotCenterPair
}

// clone deep-copies the record. Pair slices and coverage maps are owned by
// the copy; facility metadata is not part of a record.
func (r *DemandRecord) clone() *DemandRecord {
	c := &DemandRecord{
		Demand:            r.Demand,
		ServiceableDemand: r.ServiceableDemand,
		Coverage:          make(map[string]map[string]float64, len(r.Coverage)),
	}
	for ftype, byID := range r.Coverage {
		m := make(map[string]float64, len(byID))
		for id, strength := range byID {
			m[id] = strength
		}
		c.Coverage[ftype] = m
	}
	if len(r.Pairs) > 0 {
		c.Pairs = make([]DepotCenterPair, len(r.Pairs))
		copy(c.Pairs, r.Pairs)
	}

	return c
}
