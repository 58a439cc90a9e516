package dnf

import (
	"fmt"
	"strings"

	"github.com/npillmayer/shrdlite"
	"github.com/npillmayer/shrdlite/world"
)

// Literal is an atomic relational claim over one or two identifiers,
// optionally negated.
type Literal struct {
	Relation world.Relation
	Args     [2]shrdlite.ObjectID
	Polarity bool // true = positive, false = negated
}

// NewLiteral builds a positive literal.
func NewLiteral(rel world.Relation, a, b shrdlite.ObjectID) Literal {
	return Literal{Relation: rel, Args: [2]shrdlite.ObjectID{a, b}, Polarity: true}
}

// Negate returns the negation of l.
func (l Literal) Negate() Literal {
	l.Polarity = !l.Polarity
	return l
}

// SelfReferential reports whether l has identical arguments for a
// relation of arity two. A conjunction containing such a literal is
// filtered out entirely, before search (§3 invariants) — this is
// distinct from §4.2 feasibility, which drops only the offending
// literal.
func (l Literal) SelfReferential() bool {
	return l.Relation.Arity() == 2 && l.Args[0] == l.Args[1]
}

// Holds evaluates l against w, honoring polarity.
func (l Literal) Holds(w *world.WorldState) bool {
	v := world.Test(w, l.Relation, l.Args[0], l.Args[1])
	if !l.Polarity {
		return !v
	}
	return v
}

// Feasible reports whether a positive ontop/inside placement literal is
// permitted by the §4.2 feasibility rules. All other literals are always
// feasible; self-reference is handled separately at the conjunction
// level.
func (l Literal) Feasible(w *world.WorldState) bool {
	if l.Polarity && (l.Relation == world.OnTop || l.Relation == world.Inside) {
		return world.CanPlace(w, l.Args[0], l.Args[1])
	}
	return true
}

func (l Literal) String() string {
	sign := ""
	if !l.Polarity {
		sign = "-"
	}
	if l.Relation.Arity() == 1 {
		return fmt.Sprintf("%s%s(%s)", sign, l.Relation, l.Args[0])
	}
	return fmt.Sprintf("%s%s(%s,%s)", sign, l.Relation, l.Args[0], l.Args[1])
}

// Conjunction is a set of literals all required to hold.
type Conjunction []Literal

// Satisfied reports whether every literal in c holds in w.
func (c Conjunction) Satisfied(w *world.WorldState) bool {
	for _, l := range c {
		if !l.Holds(w) {
			return false
		}
	}
	return true
}

// HasSelfReference reports whether any literal in c is self-referential.
func (c Conjunction) HasSelfReference() bool {
	for _, l := range c {
		if l.SelfReferential() {
			return true
		}
	}
	return false
}

// Feasible filters c down to its literals that individually pass §4.2
// feasibility, and reports whether any literal was dropped. Callers
// should first reject c entirely via HasSelfReference, per §3.
func (c Conjunction) Feasible(w *world.WorldState) (Conjunction, bool) {
	out := make(Conjunction, 0, len(c))
	dropped := false
	for _, l := range c {
		if l.Feasible(w) {
			out = append(out, l)
		} else {
			dropped = true
		}
	}
	return out, dropped
}

func (c Conjunction) String() string {
	parts := make([]string, len(c))
	for i, l := range c {
		parts[i] = l.String()
	}
	return strings.Join(parts, " & ")
}

// Formula is a disjunction of conjunctions — the interpretation target.
type Formula []Conjunction

// Satisfied reports whether any conjunction of f holds in w.
func (f Formula) Satisfied(w *world.WorldState) bool {
	for _, c := range f {
		if c.Satisfied(w) {
			return true
		}
	}
	return false
}

// Build is used by the interpreter (§4.5) to assemble a Formula from
// candidate conjunctions: conjunctions with a self-referential literal
// are dropped outright (§3), the remaining conjunctions have infeasible
// literals filtered (§4.2), conjunctions left empty are dropped, and the
// whole formula is rejected with "no interpretation" if nothing survives.
func Build(w *world.WorldState, conjunctions []Conjunction) (Formula, error) {
	var f Formula
	for _, c := range conjunctions {
		if c.HasSelfReference() {
			continue
		}
		valid, _ := c.Feasible(w)
		if len(valid) == 0 {
			continue
		}
		f = append(f, valid)
	}
	if len(f) == 0 {
		return nil, fmt.Errorf("no interpretation: every conjunction was rejected by feasibility rules")
	}
	return f, nil
}

// FilterSelfReferential drops conjunctions containing a self-referential
// literal (§3), without applying §4.2 feasibility filtering. Used by the
// direct-formula escape hatch (§6), which bypasses the interpreter
// entirely.
func FilterSelfReferential(conjunctions []Conjunction) Formula {
	var f Formula
	for _, c := range conjunctions {
		if !c.HasSelfReference() {
			f = append(f, c)
		}
	}
	return f
}

func (f Formula) String() string {
	parts := make([]string, len(f))
	for i, c := range f {
		parts[i] = c.String()
	}
	return strings.Join(parts, " | ")
}
