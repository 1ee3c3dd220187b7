// Package linprog defines core types and sentinel errors for the linprog
// subpackage of github.com/katalvlaran/lvlopt.
package linprog

import (
	"errors"
	"math"
)

// Sentinel errors for problem assembly and emission.
var (
	// ErrNilProblem indicates a nil *Problem where one is required.
	ErrNilProblem = errors.New("linprog: problem must be non-nil")
	// ErrNilWriter indicates a nil io.Writer passed to Write.
	ErrNilWriter = errors.New("linprog: writer must be non-nil")
	// ErrNilVariable indicates a term referencing a nil variable.
	ErrNilVariable = errors.New("linprog: term references nil variable")
	// ErrEmptyName indicates an empty problem, constraint or variable name.
	ErrEmptyName = errors.New("linprog: name must be non-empty")
	// ErrDuplicateConstraint indicates two constraints sharing a name.
	ErrDuplicateConstraint = errors.New("linprog: duplicate constraint name")
	// ErrNameClash indicates two distinct variables sharing a name.
	ErrNameClash = errors.New("linprog: distinct variables share a name")
	// ErrEmptyExpr indicates an objective or constraint without any term.
	ErrEmptyExpr = errors.New("linprog: expression requires at least one term")
	// ErrNoObjective indicates Write on a problem with no objective set.
	ErrNoObjective = errors.New("linprog: problem has no objective")
)

// Sense is the optimization direction of a problem's objective.
type Sense int

const (
	// Minimize seeks the smallest objective value.
	Minimize Sense = iota
	// Maximize seeks the largest objective value.
	Maximize
)

// String returns the canonical sense name.
func (s Sense) String() string {
	if s == Maximize {
		return "Maximize"
	}

	return "Minimize"
}

// Domain classifies a decision variable.
type Domain int

const (
	// Binary variables take values in {0, 1}.
	Binary Domain = iota
	// Integer variables take non-negative integer values (unless bounds narrow them).
	Integer
	// Continuous variables take non-negative real values.
	Continuous
	// Free variables take any real value.
	Free
)

// String returns the canonical domain name.
func (d Domain) String() string {
	switch d {
	case Binary:
		return "Binary"
	case Integer:
		return "Integer"
	case Continuous:
		return "Continuous"
	case Free:
		return "Free"
	default:
		return "Unknown"
	}
}

// Variable is one decision variable: a stable identity plus domain and
// bounds. Builders generate names by joining a prefix or facility type with
// an id through a caller-chosen delineator; names must be unique within a
// problem (Problem enforces this on registration).
type Variable struct {
	// Name identifies the variable in constraints and emitted LP text.
	Name string
	// Dom is the variable's domain classification.
	Dom Domain
	// Lo and Hi bound the variable. Hi may be math.Inf(1); Lo may be
	// math.Inf(-1) for Free variables.
	Lo, Hi float64
}

// NewBinary returns a {0,1} integer variable.
func NewBinary(name string) *Variable {
	return &Variable{Name: name, Dom: Binary, Lo: 0, Hi: 1}
}

// NewInteger returns a non-negative integer variable with no upper bound.
func NewInteger(name string) *Variable {
	return &Variable{Name: name, Dom: Integer, Lo: 0, Hi: math.Inf(1)}
}

// NewContinuous returns a non-negative continuous variable with no upper bound.
func NewContinuous(name string) *Variable {
	return &Variable{Name: name, Dom: Continuous, Lo: 0, Hi: math.Inf(1)}
}

// NewFree returns an unrestricted continuous variable.
func NewFree(name string) *Variable {
	return &Variable{Name: name, Dom: Free, Lo: math.Inf(-1), Hi: math.Inf(1)}
}

// NewFixed returns an integer variable pinned to the single value v.
// Used for structurally empty rows that must still be emitted well-formed.
func NewFixed(name string, v float64) *Variable {
	return &Variable{Name: name, Dom: Integer, Lo: v, Hi: v}
}

// Term is one coefficient·variable product inside a linear expression.
type Term struct {
	Coef float64
	Var  *Variable
}

// LinearExpr is an ordered sum of terms. Order is preserved into emission.
type LinearExpr []Term

// Plus appends a term and returns the extended expression.
func (e LinearExpr) Plus(coef float64, v *Variable) LinearExpr {
	return append(e, Term{Coef: coef, Var: v})
}

// Op is a constraint comparison operator.
type Op int

const (
	// LessEq is the ≤ comparison.
	LessEq Op = iota
	// GreaterEq is the ≥ comparison.
	GreaterEq
	// Equal is the = comparison.
	Equal
)

// String returns the LP-format operator token.
func (o Op) String() string {
	switch o {
	case LessEq:
		return "<="
	case GreaterEq:
		return ">="
	case Equal:
		return "="
	default:
		return "?"
	}
}

// Constraint is one named linear constraint: Expr Op RHS.
type Constraint struct {
	Name string
	Expr LinearExpr
	Op   Op
	RHS  float64
}
