package coverage

import (
	"fmt"
	"sort"
)

// Store is the root coverage entity: facilities grouped by type, demand
// units, and the per-demand coverage relation, all under one immutable Kind.
//
// A Store is built once from upstream geometric analysis, optionally mutated
// by UpdateServiceableDemand, optionally combined via Merge, then read-only
// as input to model builders. Builders never mutate their input store.
//
// Store is not safe for concurrent mutation; concurrent readers are fine as
// long as no UpdateServiceableDemand or SetCoverage call races them.
type Store struct {
	kind             Kind
	mode             Mode
	facilities       map[string]map[string]any
	demand           map[string]*DemandRecord
	totalServiceable float64
}

// NewStore returns an empty Store of the given kind in ModeCoverage.
func NewStore(kind Kind) *Store {
	return &Store{
		kind:       kind,
		mode:       ModeCoverage,
		facilities: make(map[string]map[string]any),
		demand:     make(map[string]*DemandRecord),
	}
}

// Kind reports the store's coverage kind.
func (s *Store) Kind() Kind { return s.kind }

// Mode reports the store's relation mode.
func (s *Store) Mode() Mode { return s.mode }

// AddFacility registers a facility under the given type. Metadata is opaque
// to the core — only identity matters. Re-adding an existing facility
// replaces its metadata.
func (s *Store) AddFacility(ftype, id string, meta any) error {
	if ftype == "" || id == "" {
		return fmt.Errorf("AddFacility(%q, %q): %w", ftype, id, ErrEmptyID)
	}
	byID, ok := s.facilities[ftype]
	if !ok {
		byID = make(map[string]any)
		s.facilities[ftype] = byID
	}
	byID[id] = meta

	return nil
}

// AddDemand registers a demand unit with the given nominal weight.
// ServiceableDemand defaults to the nominal weight.
func (s *Store) AddDemand(id string, weight float64) error {
	if id == "" {
		return fmt.Errorf("AddDemand(%q): %w", id, ErrEmptyID)
	}
	if weight < 0 {
		return fmt.Errorf("AddDemand(%q): weight %g: %w", id, weight, ErrNegativeDemand)
	}
	if _, ok := s.demand[id]; ok {
		return fmt.Errorf("AddDemand(%q): %w", id, ErrDuplicateDemand)
	}
	s.demand[id] = &DemandRecord{
		Demand:            weight,
		ServiceableDemand: weight,
		Coverage:          make(map[string]map[string]float64),
	}
	s.totalServiceable += weight

	return nil
}

// SetCoverage records that facility (ftype, fid) covers demand unit id with
// the given strength. Binary and TraumaH stores accept only strength 1
// (presence); Partial stores accept any strength in [0,1]. Both the demand
// unit and the facility must already exist.
func (s *Store) SetCoverage(id, ftype, fid string, strength float64) error {
	rec, ok := s.demand[id]
	if !ok {
		return fmt.Errorf("SetCoverage(%q): %w", id, ErrUnknownDemand)
	}
	if !s.hasFacility(ftype, fid) {
		return fmt.Errorf("SetCoverage(%q): facility %q/%q: %w", id, ftype, fid, ErrUnknownFacility)
	}
	switch s.kind {
	case Partial:
		if strength < 0 || strength > 1 {
			return fmt.Errorf("SetCoverage(%q): strength %g: %w", id, strength, ErrStrengthRange)
		}
	default:
		if strength != 1 {
			return fmt.Errorf("SetCoverage(%q): strength %g: %w", id, strength, ErrStrengthRange)
		}
	}
	byID, ok := rec.Coverage[ftype]
	if !ok {
		byID = make(map[string]float64)
		rec.Coverage[ftype] = byID
	}
	byID[fid] = strength

	return nil
}

// AddPair records that the given depot-center combination can reach demand
// unit id by air. Valid only on TraumaH stores; both endpoints must exist
// under their canonical facility types.
func (s *Store) AddPair(id string, p DepotCenterPair) error {
	if s.kind != TraumaH {
		return fmt.Errorf("AddPair(%q): kind %s: %w", id, s.kind, ErrPairKind)
	}
	rec, ok := s.demand[id]
	if !ok {
		return fmt.Errorf("AddPair(%q): %w", id, ErrUnknownDemand)
	}
	if !s.hasFacility(AirDepotType, p.AirDepot) {
		return fmt.Errorf("AddPair(%q): air depot %q: %w", id, p.AirDepot, ErrUnknownFacility)
	}
	if !s.hasFacility(TraumaCenterType, p.TraumaCenter) {
		return fmt.Errorf("AddPair(%q): trauma center %q: %w", id, p.TraumaCenter, ErrUnknownFacility)
	}
	rec.Pairs = append(rec.Pairs, p)

	return nil
}

// hasFacility reports whether (ftype, fid) is registered.
func (s *Store) hasFacility(ftype, fid string) bool {
	byID, ok := s.facilities[ftype]
	if !ok {
		return false
	}
	_, ok = byID[fid]

	return ok
}

// HasFacilityType reports whether any facility of the given type exists.
func (s *Store) HasFacilityType(ftype string) bool {
	return len(s.facilities[ftype]) > 0
}

// FacilityTypes returns all facility-type names in sorted order.
func (s *Store) FacilityTypes() []string {
	return sortedKeys(s.facilities)
}

// FacilityIDs returns the ids of all facilities of the given type in sorted
// order, or nil when the type is unknown.
func (s *Store) FacilityIDs(ftype string) []string {
	byID, ok := s.facilities[ftype]
	if !ok {
		return nil
	}

	return sortedKeys(byID)
}

// DemandIDs returns all demand ids in sorted order.
func (s *Store) DemandIDs() []string {
	return sortedKeys(s.demand)
}

// Record returns the demand record for id. The record must be treated as
// read-only; mutating it directly would desynchronize the cached total.
func (s *Store) Record(id string) (*DemandRecord, bool) {
	rec, ok := s.demand[id]

	return rec, ok
}

// TotalServiceableDemand returns the cached sum of all per-unit serviceable
// demand values. The cache is maintained atomically with every update path.
func (s *Store) TotalServiceableDemand() float64 {
	return s.totalServiceable
}

// TotalDemand returns the sum of all nominal demand weights.
func (s *Store) TotalDemand() float64 {
	var total float64
	for _, rec := range s.demand {
		total += rec.Demand
	}

	return total
}

// UpdateServiceableDemand rewrites every demand record's serviceable demand
// from updates and recomputes the cached total as their exact sum, in one
// all-or-nothing step: the store is untouched unless every id present in the
// store has a non-negative value in updates. Missing ids fail with
// ErrMissingUpdate. Repeated identical calls are idempotent.
func (s *Store) UpdateServiceableDemand(updates map[string]float64) error {
	// Validate fully before mutating anything.
	var total float64
	for id := range s.demand {
		v, ok := updates[id]
		if !ok {
			return fmt.Errorf("UpdateServiceableDemand: demand %q: %w", id, ErrMissingUpdate)
		}
		if v < 0 {
			return fmt.Errorf("UpdateServiceableDemand: demand %q: value %g: %w", id, v, ErrNegativeDemand)
		}
		total += v
	}
	for id, rec := range s.demand {
		rec.ServiceableDemand = updates[id]
	}
	s.totalServiceable = total

	return nil
}

// Clone returns a deep copy of the store. Facility metadata is copied by
// reference (it is opaque to the core); everything else is owned by the copy.
func (s *Store) Clone() *Store {
	c := NewStore(s.kind)
	c.mode = s.mode
	for ftype, byID := range s.facilities {
		m := make(map[string]any, len(byID))
		for id, meta := range byID {
			m[id] = meta
		}
		c.facilities[ftype] = m
	}
	for id, rec := range s.demand {
		c.demand[id] = rec.clone()
	}
	c.totalServiceable = s.totalServiceable

	return c
}

// Validate fails unless the store's mode is among modes and its kind among
// kinds. Every model builder calls this with its own requirements before
// constructing anything, so a store of the wrong kind fails fast instead of
// producing a silently-wrong formulation.
func Validate(s *Store, modes []Mode, kinds []Kind) error {
	if s == nil {
		return ErrNilStore
	}
	modeOK := false
	for _, m := range modes {
		if s.mode == m {
			modeOK = true
			break
		}
	}
	if !modeOK {
		return fmt.Errorf("Validate: expected modes %v, got %s: %w", modes, s.mode, ErrModeMismatch)
	}
	kindOK := false
	for _, k := range kinds {
		if s.kind == k {
			kindOK = true
			break
		}
	}
	if !kindOK {
		return fmt.Errorf("Validate: expected kinds %v, got %s: %w", kinds, s.kind, ErrKindMismatch)
	}

	return nil
}

// sortedKeys returns the keys of m in sorted order. Deterministic iteration
// keeps generated variable/constraint ordering stable across runs.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
