package world

import "github.com/npillmayer/shrdlite"

// CanPlace reports whether object a may be released onto, or inside, b
// (§4.2). It is applied both as a validity filter on generated DNF
// literals and as a legality check on the low-level drop action.
func CanPlace(w *WorldState, a, b shrdlite.ObjectID) bool {
	if b == shrdlite.Floor {
		return true
	}
	oa, ok := w.Get(a)
	if !ok {
		return false
	}
	ob, ok := w.Get(b)
	if !ok {
		return false
	}
	if ob.Form == shrdlite.Ball {
		// a ball accepts nothing above it.
		return false
	}
	if ob.Form == shrdlite.Box {
		return canPlaceInsideBox(oa, ob)
	}
	return canPlaceOnTop(oa, ob)
}

// canPlaceInsideBox applies the feasibility rules for a going inside box
// b: large objects never fit inside a small box, and pyramids, planks and
// other boxes only fit inside a large box when the inserted object is
// small.
func canPlaceInsideBox(a, b shrdlite.Object) bool {
	if a.Size == shrdlite.Large && b.Size == shrdlite.Small {
		return false
	}
	switch a.Form {
	case shrdlite.Pyramid, shrdlite.Plank, shrdlite.Box:
		return b.Size == shrdlite.Large && a.Size == shrdlite.Small
	default:
		return true
	}
}

// canPlaceOnTop applies the feasibility rules for a resting directly on
// top of non-box, non-floor object b.
func canPlaceOnTop(a, b shrdlite.Object) bool {
	if b.Size == shrdlite.Small && a.Size == shrdlite.Large {
		// a small object may not support a large one.
		return false
	}
	if a.Form == shrdlite.Ball {
		// a ball may rest only on the floor.
		return false
	}
	if a.Form == shrdlite.Box && a.Size == shrdlite.Small && b.Size == shrdlite.Small &&
		(b.Form == shrdlite.Brick || b.Form == shrdlite.Pyramid) {
		return false
	}
	if a.Form == shrdlite.Box && a.Size == shrdlite.Large && b.Form == shrdlite.Pyramid {
		return false
	}
	return true
}
