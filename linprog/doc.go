// Package linprog represents linear optimization problems as plain values:
// an objective sense and expression, named linear constraints, and typed
// decision variables with domains and bounds.
//
// What:
//
//   - Variable — identity, domain (Binary / Integer / Continuous / Free)
//     and bounds.
//   - LinearExpr — an ordered list of coefficient·variable terms.
//   - Constraint — a named expression, comparison operator and right-hand side.
//   - Problem — objective + ordered constraint collection, with a first-use
//     ordered variable registry.
//   - Write — emission hook serializing a Problem to CPLEX LP text.
//
// Why:
//
//   - Model builders need a solver-agnostic assembly target; solving and
//     solver configuration stay outside this module. A Problem is a pure
//     value the caller hands to external tooling.
//
// Determinism:
//
//   - Constraints keep insertion order, variables keep first-use order, and
//     Write iterates only those orders — identical inputs produce identical
//     LP text.
//
// Errors:
//
//   - ErrNilProblem / ErrNilWriter / ErrNilVariable: missing required inputs.
//   - ErrEmptyName / ErrDuplicateConstraint / ErrNameClash: naming contract.
//   - ErrEmptyExpr: an objective or constraint without a single term; a
//     well-formed row always carries at least one (possibly fixed-zero) term.
//   - ErrNoObjective: Write on a problem whose objective was never set.
package linprog
