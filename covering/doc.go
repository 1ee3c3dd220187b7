// Package covering builds the covering location problem family from a
// validated coverage.Store: each builder returns a complete, solver-ready
// linprog.Problem (decision variables, objective, constraint set) and never
// solves it.
//
// What:
//
//   - MCLP        — maximal covering (Church & ReVelle 1974). Binary kind.
//   - MCLPCC      — complementary/partial maximal covering (Tong 2012). Partial kind.
//   - LSCP        — location set covering (Toregas/Church & Murray). Binary kind.
//   - Threshold   — minimize facilities s.t. ψ% of demand covered
//     (Murray & Tong 2009). Binary kind.
//   - CCThreshold — threshold with complementary coverage (Tong 2012). Partial kind.
//   - BCLP        — backup coverage (Hogan & ReVelle 1986). Binary kind.
//   - BCLPCC      — partial-coverage backup with a convex blend weight. Partial kind.
//   - TraumaH     — two-echelon trauma network: trauma centers, air depots
//     and depot-center pairs (Branas, MacKenzie & ReVelle 2000). TraumaH kind.
//
// Why:
//
//   - These formulations differ in subtle, published ways: variable domains
//     (binary vs. continuous vs. unbounded integer), constraint direction,
//     presence vs. strength-weighted coverage sums, and the two-echelon
//     pairing logic. Each builder encodes exactly one of them; the shared
//     skeleton factors only the genuinely common parts (variable naming,
//     coverage sums, cardinality caps, weight selection).
//
// Contract, shared by every builder:
//
//   - The input store is validated internally (kind + mode) and never mutated.
//   - Variable names join prefix/facility-type and id through
//     Options.Delineator; the token must not occur in any identifier of the
//     consumed store, or the emitted LP text would be ambiguous.
//   - Range checks (ψ, blend weight, counts) run before any variable is
//     created.
//   - Builders are reentrant and share no state: concurrent invocations
//     against the same store are safe as long as nothing mutates the store.
//
// Errors:
//
//   - ErrNilStore: missing input store (input-shape error).
//   - coverage.ErrKindMismatch / coverage.ErrModeMismatch: wrong store for
//     the model (validation error).
//   - ErrPsiRange / ErrWeightRange / ErrCountRange: parameter out of range.
//   - ErrDelineator: unusable or colliding delineator token.
//   - ErrZeroDemand: threshold scaling over a store with zero total weight.
//   - ErrMissingFacilityType: TraumaH store lacking AirDepot or TraumaCenter.
package covering
