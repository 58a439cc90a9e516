package world_test

import (
	"testing"

	"github.com/npillmayer/shrdlite"
	"github.com/npillmayer/shrdlite/world"
)

func withObjects(extra map[shrdlite.ObjectID]shrdlite.Object) *world.WorldState {
	w := simpleWorld()
	for id, o := range extra {
		w.Objects[id] = o
	}
	return w
}

func TestFloorAcceptsEverything(t *testing.T) {
	w := simpleWorld()
	if !world.CanPlace(w, "e", shrdlite.Floor) {
		t.Errorf("the floor should accept everything")
	}
}

func TestBallAcceptsNothingAbove(t *testing.T) {
	w := simpleWorld()
	if world.CanPlace(w, "e", "f") {
		t.Errorf("a ball should accept nothing above it")
	}
}

func TestBallOnlyRestsOnFloor(t *testing.T) {
	w := simpleWorld()
	if world.CanPlace(w, "l", "e") {
		t.Errorf("a ball should only rest on the floor")
	}
}

func TestLargeNeverGoesInsideSmallBox(t *testing.T) {
	w := withObjects(map[shrdlite.ObjectID]shrdlite.Object{
		"k": {Form: shrdlite.Box, Size: shrdlite.Small},
		"e": {Form: shrdlite.Brick, Size: shrdlite.Large},
	})
	if world.CanPlace(w, "e", "k") {
		t.Errorf("a large object should never fit inside a small box")
	}
}

func TestPyramidPlankBoxNeedLargeSmallBoxPair(t *testing.T) {
	w := withObjects(map[shrdlite.ObjectID]shrdlite.Object{
		"k": {Form: shrdlite.Box, Size: shrdlite.Large},
		"m": {Form: shrdlite.Pyramid, Size: shrdlite.Small},
	})
	if !world.CanPlace(w, "m", "k") {
		t.Errorf("a small pyramid should fit inside a large box")
	}
	w2 := withObjects(map[shrdlite.ObjectID]shrdlite.Object{
		"k": {Form: shrdlite.Box, Size: shrdlite.Small},
		"m": {Form: shrdlite.Pyramid, Size: shrdlite.Small},
	})
	if world.CanPlace(w2, "m", "k") {
		t.Errorf("a pyramid should not fit inside a small box")
	}
}

func TestSmallCannotSupportLarge(t *testing.T) {
	w := withObjects(map[shrdlite.ObjectID]shrdlite.Object{
		"m": {Form: shrdlite.Pyramid, Size: shrdlite.Small},
		"e": {Form: shrdlite.Brick, Size: shrdlite.Large},
	})
	if world.CanPlace(w, "e", "m") {
		t.Errorf("a small object should not support a large one")
	}
}

func TestSmallBoxNotOnSmallBrickOrPyramid(t *testing.T) {
	w := withObjects(map[shrdlite.ObjectID]shrdlite.Object{
		"k": {Form: shrdlite.Box, Size: shrdlite.Small},
		"e": {Form: shrdlite.Brick, Size: shrdlite.Small},
		"m": {Form: shrdlite.Pyramid, Size: shrdlite.Small},
	})
	if world.CanPlace(w, "k", "e") {
		t.Errorf("a small box should not rest on a small brick")
	}
	if world.CanPlace(w, "k", "m") {
		t.Errorf("a small box should not rest on a small pyramid")
	}
}

func TestLargeBoxNotOnPyramid(t *testing.T) {
	w := withObjects(map[shrdlite.ObjectID]shrdlite.Object{
		"k": {Form: shrdlite.Box, Size: shrdlite.Large},
		"m": {Form: shrdlite.Pyramid, Size: shrdlite.Large},
	})
	if world.CanPlace(w, "k", "m") {
		t.Errorf("a large box should not rest on a pyramid of any size")
	}
}
