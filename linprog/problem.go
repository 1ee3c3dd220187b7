package linprog

import (
	"fmt"
)

// Problem is an assembled optimization problem: a named objective with a
// sense, plus an ordered collection of named constraints. Variables are
// registered on first use (through SetObjective or AddConstraint) and keep
// that order for deterministic emission.
//
// Problem performs no solving; it is the value handed to external emission
// or solver tooling.
type Problem struct {
	name        string
	sense       Sense
	objective   LinearExpr
	constraints []Constraint
	rowNames    map[string]struct{}
	vars        []*Variable
	varByName   map[string]*Variable
}

// NewProblem returns an empty problem with the given name and sense.
func NewProblem(name string, sense Sense) (*Problem, error) {
	if name == "" {
		return nil, fmt.Errorf("NewProblem: %w", ErrEmptyName)
	}

	return &Problem{
		name:      name,
		sense:     sense,
		rowNames:  make(map[string]struct{}),
		varByName: make(map[string]*Variable),
	}, nil
}

// Name returns the problem name.
func (p *Problem) Name() string { return p.name }

// Sense returns the optimization direction.
func (p *Problem) Sense() Sense { return p.sense }

// SetObjective installs the objective expression, registering its variables.
// The expression must carry at least one term.
func (p *Problem) SetObjective(expr LinearExpr) error {
	if len(expr) == 0 {
		return fmt.Errorf("SetObjective: %w", ErrEmptyExpr)
	}
	if err := p.register(expr); err != nil {
		return fmt.Errorf("SetObjective: %w", err)
	}
	p.objective = expr

	return nil
}

// AddConstraint appends a named constraint, registering its variables.
// Constraint names must be unique within the problem, and every row must
// carry at least one term so emission never drops it.
func (p *Problem) AddConstraint(name string, expr LinearExpr, op Op, rhs float64) error {
	if name == "" {
		return fmt.Errorf("AddConstraint: %w", ErrEmptyName)
	}
	if _, dup := p.rowNames[name]; dup {
		return fmt.Errorf("AddConstraint(%q): %w", name, ErrDuplicateConstraint)
	}
	if len(expr) == 0 {
		return fmt.Errorf("AddConstraint(%q): %w", name, ErrEmptyExpr)
	}
	if err := p.register(expr); err != nil {
		return fmt.Errorf("AddConstraint(%q): %w", name, err)
	}
	p.rowNames[name] = struct{}{}
	p.constraints = append(p.constraints, Constraint{Name: name, Expr: expr, Op: op, RHS: rhs})

	return nil
}

// Objective returns the objective expression (nil until SetObjective).
func (p *Problem) Objective() LinearExpr { return p.objective }

// Constraints returns all constraints in insertion order. The returned
// slice must be treated as read-only.
func (p *Problem) Constraints() []Constraint { return p.constraints }

// Constraint returns the constraint with the given name, if present.
func (p *Problem) Constraint(name string) (Constraint, bool) {
	if _, ok := p.rowNames[name]; !ok {
		return Constraint{}, false
	}
	for _, c := range p.constraints {
		if c.Name == name {
			return c, true
		}
	}

	return Constraint{}, false
}

// Variables returns every registered variable in first-use order. The
// returned slice must be treated as read-only.
func (p *Problem) Variables() []*Variable { return p.vars }

// register records each term's variable on first use, rejecting nil
// variables, unnamed variables and distinct variables sharing a name.
func (p *Problem) register(expr LinearExpr) error {
	for _, t := range expr {
		if t.Var == nil {
			return ErrNilVariable
		}
		if t.Var.Name == "" {
			return ErrEmptyName
		}
		prev, seen := p.varByName[t.Var.Name]
		if !seen {
			p.varByName[t.Var.Name] = t.Var
			p.vars = append(p.vars, t.Var)
			continue
		}
		if prev != t.Var {
			return fmt.Errorf("variable %q: %w", t.Var.Name, ErrNameClash)
		}
	}

	return nil
}
