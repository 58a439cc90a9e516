package world

import "github.com/npillmayer/shrdlite"

// Relation names one of the seven spatial predicates, plus the two
// pseudo-relations 'holding' and 'at any location'.
type Relation int

const (
	LeftOf Relation = iota
	RightOf
	Beside
	Inside
	OnTop
	Under
	Above
	HoldingRel
	AnyLocation
)

func (r Relation) String() string {
	switch r {
	case LeftOf:
		return "leftof"
	case RightOf:
		return "rightof"
	case Beside:
		return "beside"
	case Inside:
		return "inside"
	case OnTop:
		return "ontop"
	case Under:
		return "under"
	case Above:
		return "above"
	case HoldingRel:
		return "holding"
	default:
		return "anywhere"
	}
}

// Arity returns the number of object arguments the relation takes: 1 for
// holding and anywhere, 2 for all spatial relations.
func (r Relation) Arity() int {
	switch r {
	case HoldingRel, AnyLocation:
		return 1
	default:
		return 2
	}
}

// Test evaluates relation r between a and b (b is ignored for the
// unary relations). Held objects are at no column, so every
// column-dependent relation involving a held object is false.
func Test(w *WorldState, r Relation, a, b shrdlite.ObjectID) bool {
	switch r {
	case HoldingRel:
		return w.Holding != Empty && w.Holding == a
	case AnyLocation:
		return true
	case LeftOf:
		return testLeftOf(w, a, b)
	case RightOf:
		return testLeftOf(w, b, a)
	case Beside:
		return testBeside(w, a, b)
	case Inside:
		return testInside(w, a, b)
	case OnTop:
		return testOnTop(w, a, b)
	case Under:
		// under(a,b) == above(b,a); literal arguments a,b are never
		// swapped for callers inspecting the DNF, only internally.
		return testAbove(w, b, a)
	case Above:
		return testAbove(w, a, b)
	default:
		return false
	}
}

func testLeftOf(w *WorldState, a, b shrdlite.ObjectID) bool {
	ca, ok1 := w.ColumnOf(a)
	cb, ok2 := w.ColumnOf(b)
	if !ok1 || !ok2 {
		return false
	}
	return ca < cb
}

func testBeside(w *WorldState, a, b shrdlite.ObjectID) bool {
	ca, ok1 := w.ColumnOf(a)
	cb, ok2 := w.ColumnOf(b)
	if !ok1 || !ok2 {
		return false
	}
	d := ca - cb
	if d < 0 {
		d = -d
	}
	return d == 1
}

// testInside holds when a sits exactly one cell above b in the same
// column and b is a box.
func testInside(w *WorldState, a, b shrdlite.ObjectID) bool {
	if b == shrdlite.Floor {
		return false
	}
	ca, ia, ok1 := w.IndexOf(a)
	cb, ib, ok2 := w.IndexOf(b)
	if !ok1 || !ok2 || ca != cb || ia != ib+1 {
		return false
	}
	ob, ok := w.Get(b)
	return ok && ob.Form == shrdlite.Box
}

// testOnTop holds when a immediately sits above b in the same column and
// b is not a box (box interiors use 'inside'). With b = floor, a must be
// at stack index 0.
func testOnTop(w *WorldState, a, b shrdlite.ObjectID) bool {
	if b == shrdlite.Floor {
		_, ia, ok := w.IndexOf(a)
		return ok && ia == 0
	}
	ca, ia, ok1 := w.IndexOf(a)
	cb, ib, ok2 := w.IndexOf(b)
	if !ok1 || !ok2 || ca != cb || ia != ib+1 {
		return false
	}
	ob, ok := w.Get(b)
	return ok && ob.Form != shrdlite.Box
}

// testAbove holds when a sits strictly above b in the same column. With
// b = floor, above holds for a anywhere in any stack (on the floor, ontop
// and above coincide).
func testAbove(w *WorldState, a, b shrdlite.ObjectID) bool {
	if b == shrdlite.Floor {
		_, ok := w.ColumnOf(a)
		return ok
	}
	ca, ia, ok1 := w.IndexOf(a)
	cb, ib, ok2 := w.IndexOf(b)
	if !ok1 || !ok2 || ca != cb {
		return false
	}
	return ia > ib
}
