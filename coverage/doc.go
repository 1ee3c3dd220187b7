// Package coverage holds the facility/demand coverage relationship that the
// covering model builders consume.
//
// What:
//
//   - Store groups facilities (by type and id), demand units and the
//     per-demand coverage relation under a single immutable Kind.
//   - Validate gates a store against the kinds/modes a model accepts.
//   - UpdateServiceableDemand rewrites per-unit serviceable demand and the
//     cached total in one atomic step.
//   - Merge combines several single-facility-type stores into one
//     multi-type store, all-or-nothing.
//
// Why:
//
//   - The coverage relation is computed upstream (buffers, drive-time
//     isochrones, containment tests); this package only records and
//     validates it, so a builder can fail fast on a store of the wrong
//     kind instead of emitting a silently-wrong formulation.
//
// Kinds:
//
//   - Binary  — a facility fully covers a demand unit or not at all.
//   - Partial — a facility covers a demand unit to a degree in [0,1];
//     several facilities' contributions may combine.
//   - TraumaH — two-echelon trauma network coverage: ground coverage by
//     trauma centers plus air coverage through depot-center pairs.
//
// Errors:
//
//   - ErrKindMismatch / ErrModeMismatch: store rejected by Validate.
//   - ErrUnknownDemand / ErrUnknownFacility: dangling identifiers.
//   - ErrMissingUpdate: UpdateServiceableDemand lacks a demand id.
//   - ErrKindConflict / ErrDemandKeys / ErrFacilityTypeConflict:
//     merge preconditions violated; no partial merge is ever returned.
package coverage
