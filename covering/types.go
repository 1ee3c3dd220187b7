// Package covering defines options and sentinel errors for the covering
// subpackage of github.com/katalvlaran/lvlopt.
package covering

import (
	"errors"
)

// Sentinel errors for model construction.
var (
	// ErrNilStore indicates a nil coverage store argument.
	ErrNilStore = errors.New("covering: store must be non-nil")
	// ErrDelineator indicates an empty delineator, one containing spaces, or
	// one that occurs inside an identifier of the consumed store.
	ErrDelineator = errors.New("covering: invalid delineator")
	// ErrPsiRange indicates a coverage threshold ψ outside [0,100].
	ErrPsiRange = errors.New("covering: psi must be within [0,100]")
	// ErrWeightRange indicates a backup blend weight outside [0,1].
	ErrWeightRange = errors.New("covering: backup weight must be within [0,1]")
	// ErrCountRange indicates a negative facility count or cap.
	ErrCountRange = errors.New("covering: facility count must be non-negative")
	// ErrZeroDemand indicates a threshold model over a store whose total
	// demand weight is zero, which would make the percentage scaling undefined.
	ErrZeroDemand = errors.New("covering: total demand weight is zero")
	// ErrMissingFacilityType indicates a TraumaH store lacking one of the
	// two required facility types.
	ErrMissingFacilityType = errors.New("covering: required facility type missing")
)

// DefaultDelineator joins variable-name components unless overridden.
const DefaultDelineator = "$"

// Variable-name prefixes, matching the published formulations: Y for
// covered indicators, U for backup/air indicators, V for ground indicators,
// W for primary level, Z for overall level and depot-center pairs.
const (
	prefixCovered = "Y"
	prefixBackup  = "U"
	prefixGround  = "V"
	prefixAir     = "U"
	prefixPrimary = "W"
	prefixOverall = "Z"
	prefixPair    = "Z"
	prefixDummy   = "__dummy"
)

// Options carries the parameters every builder shares.
type Options struct {
	// Delineator joins prefix/facility-type and id in generated variable
	// names. It must be a simple token (non-empty, no spaces) and must not
	// occur in any facility-type, facility-id or demand-id of the store.
	Delineator string
	// UseServiceable selects ServiceableDemand instead of Demand as the
	// objective (and threshold-scaling) weight. It never changes constraint
	// structure.
	UseServiceable bool
}

// DefaultOptions returns Options with the "$" delineator and nominal demand
// weighting.
func DefaultOptions() Options {
	return Options{Delineator: DefaultDelineator}
}

// FacilityLimits caps how many facilities a model may site.
type FacilityLimits struct {
	// Total caps the number of sited facilities across all types.
	Total int
	// PerType optionally caps individual facility types. Types absent from
	// the consumed store are ignored.
	PerType map[string]int
}
