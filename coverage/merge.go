package coverage

import (
	"fmt"
)

// Merge combines multiple single-facility-type coverage stores into one
// multi-type store. Generally used when siting several types of facilities
// against the same demand set.
//
// Preconditions, all checked before any part of the result is built:
//
//   - every input is non-nil and shares the same Kind and Mode
//     (ErrKindConflict / ErrModeMismatch);
//   - all demand-id sets are pairwise identical (ErrDemandKeys);
//   - no facility-type name appears in more than one input
//     (ErrFacilityTypeConflict).
//
// The result's facilities are the disjoint union of the inputs' facility
// maps, and each demand unit's coverage is the disjoint union, by facility
// type, of the inputs' coverage. Inputs are never mutated; the result owns
// independent copies.
//
// Binary kind only: a demand unit covered (strength 1) by any facility of an
// input has its serviceable demand overwritten from that input's nominal
// demand for the unit — the unit becomes serviceable once any merged layer
// covers it. Inputs are applied in argument order, so a later layer wins
// when several cover the same unit. Partial and TraumaH merges leave
// serviceable demand untouched.
func Merge(stores ...*Store) (*Store, error) {
	if len(stores) == 0 {
		return nil, fmt.Errorf("Merge: %w", ErrNoInput)
	}
	for i, s := range stores {
		if s == nil {
			return nil, fmt.Errorf("Merge: store %d: %w", i, ErrNilStore)
		}
	}
	kind, mode := stores[0].kind, stores[0].mode
	seenTypes := make(map[string]int)
	for i, s := range stores {
		if s.kind != kind {
			return nil, fmt.Errorf("Merge: store %d has kind %s, want %s: %w", i, s.kind, kind, ErrKindConflict)
		}
		if s.mode != mode {
			return nil, fmt.Errorf("Merge: store %d has mode %s, want %s: %w", i, s.mode, mode, ErrModeMismatch)
		}
		for ftype := range s.facilities {
			if j, dup := seenTypes[ftype]; dup {
				return nil, fmt.Errorf("Merge: facility type %q defined by stores %d and %d: %w", ftype, j, i, ErrFacilityTypeConflict)
			}
			seenTypes[ftype] = i
		}
	}
	base := stores[0]
	for i, s := range stores[1:] {
		if len(s.demand) != len(base.demand) {
			return nil, fmt.Errorf("Merge: store %d: %w", i+1, ErrDemandKeys)
		}
		for id := range base.demand {
			if _, ok := s.demand[id]; !ok {
				return nil, fmt.Errorf("Merge: store %d missing demand %q: %w", i+1, id, ErrDemandKeys)
			}
		}
	}

	master := base.Clone()
	for _, s := range stores[1:] {
		for ftype, byID := range s.facilities {
			m := make(map[string]any, len(byID))
			for id, meta := range byID {
				m[id] = meta
			}
			master.facilities[ftype] = m
		}
		for id, rec := range s.demand {
			dst := master.demand[id]
			for ftype, byID := range rec.Coverage {
				m := make(map[string]float64, len(byID))
				for fid, strength := range byID {
					m[fid] = strength
				}
				dst.Coverage[ftype] = m
			}
			if len(rec.Pairs) > 0 {
				dst.Pairs = append(dst.Pairs, rec.Pairs...)
			}
		}
	}
	if kind == Binary {
		// A unit covered by any merged layer becomes serviceable at that
		// layer's nominal demand for the unit.
		for _, s := range stores {
			for id, rec := range s.demand {
				if coveredByAny(rec) {
					master.demand[id].ServiceableDemand = rec.Demand
				}
			}
		}
		var total float64
		for _, rec := range master.demand {
			total += rec.ServiceableDemand
		}
		master.totalServiceable = total
	}

	return master, nil
}

// coveredByAny reports whether any facility covers the record with strength 1.
func coveredByAny(rec *DemandRecord) bool {
	for _, byID := range rec.Coverage {
		for _, strength := range byID {
			if strength == 1 {
				return true
			}
		}
	}

	return false
}
