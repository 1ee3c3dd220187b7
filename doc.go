// Package lvlopt turns precomputed spatial coverage relationships into
// exact, solver-ready covering location formulations.
//
// 🚀 What is lvlopt?
//
//	A pure-Go library for the covering location problem family:
//		• Coverage store: facilities, demand units and their coverage relation
//		• Validation, serviceable-demand updates and multi-layer merging
//		• Model builders: MCLP, MCLP-CC, LSCP, Threshold, CC-Threshold,
//		  BCLP, BCLPCC and the two-echelon TRAUMAH model
//		• Solver-agnostic problem representation + LP-format emission
//
// ✨ Why choose lvlopt?
//
//   - Exact formulations – each builder reproduces its published model,
//     down to variable domains and constraint direction
//   - Fail-fast – kind/mode validation and range checks before any
//     variable is created
//   - Pure Go – no cgo, no solver dependency; the output is a value
//     you hand to whatever solver you like
//
// Under the hood, everything is organized under three subpackages:
//
//	coverage/ — Store, DemandRecord, Kind; Validate, UpdateServiceableDemand, Merge
//	linprog/  — Problem, Variable, LinearExpr, Constraint + LP text writer
//	covering/ — the seven covering model builders
//
// Data flow:
//
//	coverage.Store(s) ──▶ coverage.Merge ──▶ covering.MCLP/… ──▶ linprog.Problem ──▶ linprog.Write
//
// Computing the coverage relation itself (buffers, isochrones, containment)
// and solving the emitted problem are deliberately out of scope: lvlopt
// consumes a coverage relation and produces a problem, nothing more.
//
//	go get github.com/katalvlaran/lvlopt
package lvlopt
