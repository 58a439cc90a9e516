package world

import (
	"fmt"

	"github.com/npillmayer/shrdlite"
)

// Empty is the zero-value object identifier, meaning "the arm is holding
// nothing" when assigned to WorldState.Holding.
const Empty shrdlite.ObjectID = ""

// WorldState is a snapshot of stacks of objects, an optional held
// identifier, the arm's column, and the object attribute map. Column 0 is
// leftmost; within a stack, index 0 is the bottom and the last element is
// the top, the only graspable position.
//
// A WorldState is shared read-only through interpretation and planning.
// Call Clone before mutating a copy for a search branch.
type WorldState struct {
	Stacks  [][]shrdlite.ObjectID
	Holding shrdlite.ObjectID
	Arm     int
	Objects map[shrdlite.ObjectID]shrdlite.Object
}

// Clone returns a deep copy of the stacks (objects and holding/arm are
// copied by value; the object map is shared, since objects are immutable).
func (w *WorldState) Clone() *WorldState {
	stacks := make([][]shrdlite.ObjectID, len(w.Stacks))
	for i, s := range w.Stacks {
		stacks[i] = append([]shrdlite.ObjectID(nil), s...)
	}
	return &WorldState{
		Stacks:  stacks,
		Holding: w.Holding,
		Arm:     w.Arm,
		Objects: w.Objects,
	}
}

// ColumnOf returns the column containing id and whether it was found. A
// held object and the floor pseudo-object are never found by ColumnOf.
func (w *WorldState) ColumnOf(id shrdlite.ObjectID) (int, bool) {
	if id == shrdlite.Floor || id == Empty {
		return -1, false
	}
	for col, stack := range w.Stacks {
		for _, o := range stack {
			if o == id {
				return col, true
			}
		}
	}
	return -1, false
}

// IndexOf returns the (column, index-within-stack) of id and whether it
// was found.
func (w *WorldState) IndexOf(id shrdlite.ObjectID) (col, idx int, found bool) {
	for c, stack := range w.Stacks {
		for i, o := range stack {
			if o == id {
				return c, i, true
			}
		}
	}
	return -1, -1, false
}

// Top returns the topmost identifier of column col, or "" if the stack is
// empty.
func (w *WorldState) Top(col int) shrdlite.ObjectID {
	s := w.Stacks[col]
	if len(s) == 0 {
		return Empty
	}
	return s[len(s)-1]
}

// IsEmptyColumn reports whether column col has no objects.
func (w *WorldState) IsEmptyColumn(col int) bool {
	return len(w.Stacks[col]) == 0
}

// Get looks up the attributes of an identifier, including the floor
// pseudo-object.
func (w *WorldState) Get(id shrdlite.ObjectID) (shrdlite.Object, bool) {
	if id == shrdlite.Floor {
		return shrdlite.Object{Form: shrdlite.FloorForm}, true
	}
	o, ok := w.Objects[id]
	return o, ok
}

// AllIdentifiers returns every non-floor identifier known to the world,
// in a stable, deterministic order (stack, then bottom-to-top, then any
// identifier currently held).
func (w *WorldState) AllIdentifiers() []shrdlite.ObjectID {
	var ids []shrdlite.ObjectID
	for _, stack := range w.Stacks {
		ids = append(ids, stack...)
	}
	if w.Holding != Empty {
		ids = append(ids, w.Holding)
	}
	return ids
}

// String renders a compact, debug-only view of the stacks.
func (w *WorldState) String() string {
	return fmt.Sprintf("arm=%d holding=%q stacks=%v", w.Arm, w.Holding, w.Stacks)
}
