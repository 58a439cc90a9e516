package config

import (
	"fmt"

	"github.com/npillmayer/shrdlite"
	"github.com/npillmayer/shrdlite/world"
)

// World is a named, compiled-in preset: an initial WorldState plus its
// canonical example utterances, addressable by index from the command
// line (§6: "Example-index resolves against the named world's
// predefined examples").
type World struct {
	Name     string
	Initial  func() *world.WorldState
	Examples []string
}

// small builds a World preset helper with its own private object map,
// avoiding any shared mutable state between presets.
func small() *world.WorldState {
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

// medium is a four-column world whose last column starts empty, with a
// single box (d), enough to exercise placement ambiguity and widen-stack
// planning.
func medium() *world.WorldState {
	objects := map[shrdlite.ObjectID]shrdlite.Object{
		"a": {Form: shrdlite.Brick, Size: shrdlite.Small, Color: shrdlite.Red},
		"b": {Form: shrdlite.Brick, Size: shrdlite.Large, Color: shrdlite.Blue},
		"c": {Form: shrdlite.Ball, Size: shrdlite.Small, Color: shrdlite.White},
		"d": {Form: shrdlite.Box, Size: shrdlite.Large, Color: shrdlite.Yellow},
		"h": {Form: shrdlite.Pyramid, Size: shrdlite.Small, Color: shrdlite.Green},
	}
	return &world.WorldState{
		Stacks: [][]shrdlite.ObjectID{
			{"a"},
			{"b", "h"},
			{"d"},
			{},
		},
		Holding: world.Empty,
		Arm:     0,
		Objects: objects,
	}
}

// Worlds lists every compiled-in preset, addressable by Name on the
// command line.
var Worlds = map[string]World{
	"small": {
		Name:    "small",
		Initial: small,
		Examples: []string{
			"take the white ball",
			"put the white ball in a box",
			"put all balls on the floor",
			"put a ball in a box on the floor",
			"put it beside the yellow pyramid",
		},
	},
	"medium": {
		Name:    "medium",
		Initial: medium,
		Examples: []string{
			"take the red brick",
			"put the red brick on top of the blue brick",
			"move the small ball into the box",
		},
	},
}

// Lookup resolves a world by name, or reports an error naming the known
// presets.
func Lookup(name string) (World, error) {
	w, ok := Worlds[name]
	if !ok {
		return World{}, fmt.Errorf("unknown world %q (known: small, medium)", name)
	}
	return w, nil
}
