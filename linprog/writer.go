package linprog

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Write serializes p to w in CPLEX LP text format: objective section per
// sense, one named row per constraint line, a Bounds section for variables
// with non-default bounds, Binaries/Generals declarations, and a closing
// End. Output is deterministic: constraints in insertion order, variables in
// first-use order.
//
// Write is the emission hook between model construction and external solver
// tooling; it never inspects feasibility.
func Write(w io.Writer, p *Problem) error {
	if w == nil {
		return fmt.Errorf("Write: %w", ErrNilWriter)
	}
	if p == nil {
		return fmt.Errorf("Write: %w", ErrNilProblem)
	}
	if len(p.objective) == 0 {
		return fmt.Errorf("Write(%q): %w", p.name, ErrNoObjective)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\\ Problem: %s\n", p.name)
	b.WriteString(p.sense.String())
	b.WriteString("\n obj: ")
	writeExpr(&b, p.objective)
	b.WriteString("\nSubject To\n")
	for _, c := range p.constraints {
		b.WriteString(" ")
		b.WriteString(c.Name)
		b.WriteString(": ")
		writeExpr(&b, c.Expr)
		fmt.Fprintf(&b, " %s %s\n", c.Op, num(c.RHS))
	}

	var bounds, binaries, generals []string
	for _, v := range p.vars {
		switch {
		case v.Dom == Binary:
			binaries = append(binaries, v.Name)
			continue
		case v.Dom == Integer:
			generals = append(generals, v.Name)
		}
		if line := boundLine(v); line != "" {
			bounds = append(bounds, line)
		}
	}
	if len(bounds) > 0 {
		b.WriteString("Bounds\n")
		for _, line := range bounds {
			b.WriteString(" ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	if len(generals) > 0 {
		b.WriteString("Generals\n")
		for _, name := range generals {
			b.WriteString(" ")
			b.WriteString(name)
			b.WriteString("\n")
		}
	}
	if len(binaries) > 0 {
		b.WriteString("Binaries\n")
		for _, name := range binaries {
			b.WriteString(" ")
			b.WriteString(name)
			b.WriteString("\n")
		}
	}
	b.WriteString("End\n")

	_, err := io.WriteString(w, b.String())

	return err
}

// boundLine renders v's bounds when they differ from the LP defaults
// (0 ≤ v ≤ +inf), or "" when the defaults apply.
func boundLine(v *Variable) string {
	loInf := math.IsInf(v.Lo, -1)
	hiInf := math.IsInf(v.Hi, 1)
	switch {
	case !loInf && !hiInf && v.Lo == v.Hi:
		return fmt.Sprintf("%s = %s", v.Name, num(v.Lo))
	case loInf && hiInf:
		return fmt.Sprintf("%s free", v.Name)
	case loInf:
		return fmt.Sprintf("%s <= %s", v.Name, num(v.Hi))
	case v.Lo == 0 && hiInf:
		return ""
	case v.Lo == 0:
		return fmt.Sprintf("%s <= %s", v.Name, num(v.Hi))
	case hiInf:
		return fmt.Sprintf("%s >= %s", v.Name, num(v.Lo))
	default:
		return fmt.Sprintf("%s <= %s <= %s", num(v.Lo), v.Name, num(v.Hi))
	}
}

// writeExpr renders a linear expression with explicit +/- separators,
// omitting unit coefficients.
func writeExpr(b *strings.Builder, expr LinearExpr) {
	for i, t := range expr {
		mag := math.Abs(t.Coef)
		neg := t.Coef < 0
		switch {
		case i == 0 && neg:
			b.WriteString("- ")
		case i > 0 && neg:
			b.WriteString(" - ")
		case i > 0:
			b.WriteString(" + ")
		}
		if mag != 1 {
			b.WriteString(num(mag))
			b.WriteString(" ")
		}
		b.WriteString(t.Var.Name)
	}
}

// num formats a float the shortest way that round-trips.
func num(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
