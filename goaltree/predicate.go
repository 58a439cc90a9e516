package goaltree

import (
	"fmt"

	"github.com/npillmayer/shrdlite"
	"github.com/npillmayer/shrdlite/world"
)

// PredKind tags a StackPredicate, rather than representing it as a
// closure, so predicates stay comparable and serializable (§9 design
// notes).
type PredKind int

const (
	PredLeftOf PredKind = iota
	PredRightOf
	PredBeside
)

// StackPredicate is a column test relative to another object g, named
// for where g lies as seen from the tested column: leftof(g) holds for
// columns right of g's column, rightof(g) for columns left of it, and
// beside(g) for the two adjacent columns.
type StackPredicate struct {
	Kind PredKind
	Of   shrdlite.ObjectID
}

// Satisfied reports whether column col satisfies the predicate, given g's
// current column in w.
func (p StackPredicate) Satisfied(w *world.WorldState, col int) bool {
	gcol, ok := w.ColumnOf(p.Of)
	if !ok {
		return false
	}
	switch p.Kind {
	case PredLeftOf:
		return col > gcol
	case PredRightOf:
		return col < gcol
	case PredBeside:
		d := col - gcol
		if d < 0 {
			d = -d
		}
		return d == 1
	}
	return false
}

func (p StackPredicate) String() string {
	switch p.Kind {
	case PredLeftOf:
		return fmt.Sprintf("leftof(%s)", p.Of)
	case PredRightOf:
		return fmt.Sprintf("rightof(%s)", p.Of)
	default:
		return fmt.Sprintf("beside(%s)", p.Of)
	}
}
