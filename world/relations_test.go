package world_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/shrdlite"
	"github.com/npillmayer/shrdlite/world"
)

func TestOntopAndAbove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shrdlite.world")
	defer teardown()

	w := simpleWorld()
	if !world.Test(w, world.OnTop, "l", "e") {
		t.Errorf("expected l ontop e")
	}
	if !world.Test(w, world.Above, "l", "e") {
		t.Errorf("expected l above e")
	}
	if !world.Test(w, world.OnTop, "e", shrdlite.Floor) {
		t.Errorf("expected e ontop floor")
	}
	if !world.Test(w, world.Above, "e", shrdlite.Floor) {
		t.Errorf("on the floor, ontop and above should coincide")
	}
	if world.Test(w, world.OnTop, "m", "e") {
		t.Errorf("m is not ontop e (different column)")
	}
}

func TestInsideRequiresBox(t *testing.T) {
	w := simpleWorld()
	if !world.Test(w, world.Inside, "f", "k") {
		t.Errorf("expected f inside k (k is a box)")
	}
	if world.Test(w, world.Inside, "l", "e") {
		t.Errorf("e is not a box: inside should be false")
	}
}

func TestUnderMatchesAboveReversed(t *testing.T) {
	w := simpleWorld()
	if !world.Test(w, world.Under, "e", "l") {
		t.Errorf("expected e under l")
	}
	if world.Test(w, world.Under, "l", "e") {
		t.Errorf("l is not under e")
	}
}

func TestLeftRightBeside(t *testing.T) {
	w := simpleWorld()
	if !world.Test(w, world.LeftOf, "e", "g") {
		t.Errorf("expected e leftof g")
	}
	if !world.Test(w, world.RightOf, "g", "e") {
		t.Errorf("expected g rightof e")
	}
	if !world.Test(w, world.Beside, "e", "g") {
		t.Errorf("expected e beside g")
	}
	if world.Test(w, world.Beside, "e", "k") {
		t.Errorf("e and k are two columns apart, not beside")
	}
}

func TestHeldObjectHasNoColumn(t *testing.T) {
	w := simpleWorld()
	w.Stacks[0] = w.Stacks[0][:1]
	w.Holding = "l"
	if world.Test(w, world.LeftOf, "l", "g") {
		t.Errorf("a held object should not participate in column relations")
	}
	if !world.Test(w, world.HoldingRel, "l", "") {
		t.Errorf("expected holding(l)")
	}
}

func TestAnyLocationAlwaysTrue(t *testing.T) {
	w := simpleWorld()
	if !world.Test(w, world.AnyLocation, "l", "") {
		t.Errorf("anywhere should always hold")
	}
}
