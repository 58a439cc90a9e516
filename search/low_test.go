package search_test

import (
	"context"
	"testing"

	"github.com/npillmayer/shrdlite"
	"github.com/npillmayer/shrdlite/search"
	"github.com/npillmayer/shrdlite/world"
)

func simpleWorld() *world.WorldState {
	objects := map[shrdlite.ObjectID]shrdlite.Object{
		"e": {Form: shrdlite.Brick, Size: shrdlite.Large, Color: shrdlite.Red},
		"l": {Form: shrdlite.Ball, Size: shrdlite.Small, Color: shrdlite.White},
		"g": {Form: shrdlite.Plank, Size: shrdlite.Large, Color: shrdlite.Green},
		"m": {Form: shrdlite.Pyramid, Size: shrdlite.Small, Color: shrdlite.Yellow},
		"k": {Form: shrdlite.Box, Size: shrdlite.Large, Color: shrdlite.Black},
		"f": {Form: shrdlite.Ball, Size: shrdlite.Small, Color: shrdlite.Blue},
	}
	return &world.WorldState{
		Stacks: [][]shrdlite.ObjectID{
			{"e", "l"},
			{"g", "m"},
			{"k", "f"},
		},
		Holding: world.Empty,
		Arm:     0,
		Objects: objects,
	}
}

func TestLowSuccessorsAtLeftEdgeOmitsLeft(t *testing.T) {
	w := simpleWorld()
	edges := search.LowSuccessors(search.LowNode{W: w})
	for _, e := range edges {
		if e.Action == string(shrdlite.Left) {
			t.Fatalf("left should not be a legal move at column 0")
		}
	}
}

func TestLowSuccessorsPickTakesTopOfColumn(t *testing.T) {
	w := simpleWorld()
	var pick *search.Edge
	for _, e := range search.LowSuccessors(search.LowNode{W: w}) {
		if e.Action == string(shrdlite.Pick) {
			edge := e
			pick = &edge
		}
	}
	if pick == nil {
		t.Fatalf("expected a legal pick at column 0 (l is on top)")
	}
	picked := pick.To.(search.LowNode).W
	if picked.Holding != "l" {
		t.Fatalf("holding = %q; want l", picked.Holding)
	}
	if top := picked.Top(0); top != "e" {
		t.Fatalf("top(0) = %q; want e", top)
	}
}

func TestRunLowPicksUpTheWhiteBall(t *testing.T) {
	w := simpleWorld()
	fulfilled := func(w *world.WorldState) bool { return w.Holding == "l" }
	heuristic := func(w *world.WorldState) float64 {
		col, ok := w.ColumnOf("l")
		if !ok {
			return 0
		}
		d := w.Arm - col
		if d < 0 {
			d = -d
		}
		return float64(d)
	}
	result := search.RunLow(context.Background(), w, fulfilled, heuristic)
	if result.Status != search.Success {
		t.Fatalf("status = %v; want Success", result.Status)
	}
	if len(result.Path) != 1 || result.Path[0] != string(shrdlite.Pick) {
		t.Fatalf("path = %v; want a single pick (l already tops column 0)", result.Path)
	}
}
