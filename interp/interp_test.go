package interp_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/shrdlite"
	"github.com/npillmayer/shrdlite/grammar"
	"github.com/npillmayer/shrdlite/interp"
	"github.com/npillmayer/shrdlite/world"
)

// simpleWorld mirrors the canonical three-stack scenario of §8: stacks
// [["e","l"], ["g","m"], ["k","f"]].
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

func TestResolveEntityUnambiguousThe(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shrdlite.interp")
	defer teardown()

	w := simpleWorld()
	ip := interp.New(w, nil)
	ent := grammar.Entity{
		Quantifier: grammar.The,
		Object:     grammar.ObjectFilter{Form: shrdlite.Ball, Color: shrdlite.White},
	}
	res, err := ip.ResolveEntity(ent)
	if err != nil {
		t.Fatalf("ResolveEntity error: %v", err)
	}
	if len(res.Candidates) != 1 || res.Candidates[0] != "l" {
		t.Fatalf("ResolveEntity = %+v; want single candidate l", res)
	}
}

func TestResolveEntityPronounRequiresHeldObject(t *testing.T) {
	w := simpleWorld()
	ip := interp.New(w, nil)
	_, err := ip.ResolveEntity(grammar.Entity{Pronoun: true})
	if err == nil {
		t.Fatalf("expected an error when nothing is held")
	}
}

func TestResolveEntityPronounResolvesHeld(t *testing.T) {
	w := simpleWorld()
	w.Holding = "f"
	ip := interp.New(w, nil)
	res, err := ip.ResolveEntity(grammar.Entity{Pronoun: true})
	if err != nil {
		t.Fatalf("ResolveEntity error: %v", err)
	}
	if len(res.Candidates) != 1 || res.Candidates[0] != "f" {
		t.Fatalf("ResolveEntity = %+v; want held object f", res)
	}
}

func TestResolveEntityAmbiguousTheSignalsClarification(t *testing.T) {
	w := simpleWorld()
	ip := interp.New(w, nil)
	// Two small balls exist: l and f. No clarification is queued to
	// narrow it, so this should surface an *AmbiguityError.
	ent := grammar.Entity{
		Quantifier: grammar.The,
		Object:     grammar.ObjectFilter{Form: shrdlite.Ball},
	}
	_, err := ip.ResolveEntity(ent)
	var ambig *interp.AmbiguityError
	if !errors.As(err, &ambig) {
		t.Fatalf("ResolveEntity error = %v; want *AmbiguityError", err)
	}
}

func TestResolveEntityAmbiguousTheNarrowedByClarification(t *testing.T) {
	w := simpleWorld()
	clarifications := []grammar.Clarification{
		{Object: grammar.ObjectFilter{Color: shrdlite.Blue}},
	}
	ip := interp.New(w, clarifications)
	ent := grammar.Entity{
		Quantifier: grammar.The,
		Object:     grammar.ObjectFilter{Form: shrdlite.Ball},
	}
	res, err := ip.ResolveEntity(ent)
	if err != nil {
		t.Fatalf("ResolveEntity error: %v", err)
	}
	if len(res.Candidates) != 1 || res.Candidates[0] != "f" {
		t.Fatalf("ResolveEntity = %+v; want narrowed to f", res)
	}
}

func TestResolveEntityRelativeLocation(t *testing.T) {
	w := simpleWorld()
	ip := interp.New(w, nil)
	// "the pyramid that is ontop of the plank" -> m (ontop of g).
	ent := grammar.Entity{
		Quantifier: grammar.The,
		Object: grammar.ObjectFilter{
			Form: shrdlite.Pyramid,
			Location: &grammar.Location{
				Relation: world.OnTop,
				Entity: grammar.Entity{
					Quantifier: grammar.The,
					Object:     grammar.ObjectFilter{Form: shrdlite.Plank},
				},
			},
		},
	}
	res, err := ip.ResolveEntity(ent)
	if err != nil {
		t.Fatalf("ResolveEntity error: %v", err)
	}
	if len(res.Candidates) != 1 || res.Candidates[0] != "m" {
		t.Fatalf("ResolveEntity = %+v; want m", res)
	}
}

func TestResolveEntityFloorIsSingleton(t *testing.T) {
	w := simpleWorld()
	ip := interp.New(w, nil)
	ent := grammar.Entity{
		Quantifier: grammar.The,
		Object:     grammar.ObjectFilter{Form: shrdlite.FloorForm},
	}
	res, err := ip.ResolveEntity(ent)
	if err != nil {
		t.Fatalf("ResolveEntity error: %v", err)
	}
	if len(res.Candidates) != 1 || res.Candidates[0] != shrdlite.Floor {
		t.Fatalf("ResolveEntity = %+v; want the floor singleton", res)
	}
}

func TestInterpretMoveOntoFloor(t *testing.T) {
	w := simpleWorld()
	cmd := grammar.Command{
		Kind: grammar.Move,
		Entity: grammar.Entity{
			Quantifier: grammar.All,
			Object:     grammar.ObjectFilter{Form: shrdlite.Ball},
		},
		Location: grammar.Location{
			Relation: world.OnTop,
			Entity: grammar.Entity{
				Quantifier: grammar.The,
				Object:     grammar.ObjectFilter{Form: shrdlite.FloorForm},
			},
		},
	}
	f, err := interp.Interpret(w, cmd, nil)
	if err != nil {
		t.Fatalf("Interpret error: %v", err)
	}
	if len(f) != 1 || len(f[0]) != 2 {
		t.Fatalf("Interpret = %v; want a single conjunction with one literal per ball", f)
	}
	for _, lit := range f[0] {
		if lit.Relation != world.OnTop || lit.Args[1] != shrdlite.Floor {
			t.Fatalf("literal = %+v; want ontop(ball,floor)", lit)
		}
	}
}

func TestInterpretTakeAllWithMultipleCandidatesFails(t *testing.T) {
	w := simpleWorld()
	cmd := grammar.Command{
		Kind: grammar.Take,
		Entity: grammar.Entity{
			Quantifier: grammar.All,
			Object:     grammar.ObjectFilter{Form: shrdlite.Ball},
		},
	}
	if _, err := interp.Interpret(w, cmd, nil); err == nil {
		t.Fatalf("expected an error: cannot hold more than one object")
	}
}

func TestInterpretTakeBuildsHoldingFormula(t *testing.T) {
	w := simpleWorld()
	cmd := grammar.Command{
		Kind: grammar.Take,
		Entity: grammar.Entity{
			Quantifier: grammar.The,
			Object:     grammar.ObjectFilter{Form: shrdlite.Box},
		},
	}
	f, err := interp.Interpret(w, cmd, nil)
	if err != nil {
		t.Fatalf("Interpret error: %v", err)
	}
	if len(f) != 1 || len(f[0]) != 1 {
		t.Fatalf("Interpret = %v; want a single holding(k) conjunction", f)
	}
	if f[0][0].Relation != world.HoldingRel || f[0][0].Args[0] != "k" {
		t.Fatalf("literal = %+v; want holding(k)", f[0][0])
	}
}

func TestInterpretTakeFailsWhenAlreadyHolding(t *testing.T) {
	w := simpleWorld()
	w.Holding = "f"
	cmd := grammar.Command{
		Kind: grammar.Take,
		Entity: grammar.Entity{
			Quantifier: grammar.The,
			Object:     grammar.ObjectFilter{Form: shrdlite.Box},
		},
	}
	if _, err := interp.Interpret(w, cmd, nil); err == nil {
		t.Fatalf("expected an error: already holding something")
	}
}

func TestInterpretMoveConjConj(t *testing.T) {
	w := simpleWorld()
	cmd := grammar.Command{
		Kind: grammar.Move,
		Entity: grammar.Entity{
			Quantifier: grammar.The,
			Object:     grammar.ObjectFilter{Form: shrdlite.Brick},
		},
		Location: grammar.Location{
			Relation: world.OnTop,
			Entity: grammar.Entity{
				Quantifier: grammar.The,
				Object:     grammar.ObjectFilter{Form: shrdlite.Plank},
			},
		},
	}
	f, err := interp.Interpret(w, cmd, nil)
	if err != nil {
		t.Fatalf("Interpret error: %v", err)
	}
	if len(f) != 1 || len(f[0]) != 1 {
		t.Fatalf("Interpret = %v; want single conjunction with a single literal", f)
	}
	if f[0][0].Relation != world.OnTop || f[0][0].Args[0] != "e" || f[0][0].Args[1] != "g" {
		t.Fatalf("literal = %+v; want ontop(e,g)", f[0][0])
	}
}

func TestInterpretMoveAnyDisjoinsOverEntities(t *testing.T) {
	w := simpleWorld()
	cmd := grammar.Command{
		Kind: grammar.Move,
		Entity: grammar.Entity{
			Quantifier: grammar.Any,
			Object:     grammar.ObjectFilter{Form: shrdlite.Ball},
		},
		Location: grammar.Location{
			Relation: world.Inside,
			Entity: grammar.Entity{
				Quantifier: grammar.The,
				Object:     grammar.ObjectFilter{Form: shrdlite.Box},
			},
		},
	}
	f, err := interp.Interpret(w, cmd, nil)
	if err != nil {
		t.Fatalf("Interpret error: %v", err)
	}
	if len(f) != 2 {
		t.Fatalf("Interpret = %v; want one conjunction per ball (disjoined)", f)
	}
	for _, c := range f {
		if len(c) != 1 || c[0].Relation != world.Inside || c[0].Args[1] != "k" {
			t.Fatalf("conjunction = %v; want a single inside(ball,k) literal", c)
		}
	}
}

func TestInterpretDropUsesHeldObject(t *testing.T) {
	w := simpleWorld()
	w.Holding = "f"
	cmd := grammar.Command{
		Kind: grammar.Drop,
		Location: grammar.Location{
			Relation: world.Beside,
			Entity: grammar.Entity{
				Quantifier: grammar.The,
				Object:     grammar.ObjectFilter{Form: shrdlite.Box},
			},
		},
	}
	f, err := interp.Interpret(w, cmd, nil)
	if err != nil {
		t.Fatalf("Interpret error: %v", err)
	}
	if len(f) != 1 || len(f[0]) != 1 || f[0][0].Args[0] != "f" {
		t.Fatalf("Interpret = %v; want a single beside(f,k) literal", f)
	}
}

func TestInterpretDropFailsWhenNotHolding(t *testing.T) {
	w := simpleWorld()
	cmd := grammar.Command{
		Kind: grammar.Drop,
		Location: grammar.Location{
			Relation: world.Beside,
			Entity: grammar.Entity{
				Quantifier: grammar.The,
				Object:     grammar.ObjectFilter{Form: shrdlite.Box},
			},
		},
	}
	if _, err := interp.Interpret(w, cmd, nil); err == nil {
		t.Fatalf("expected an error: not holding anything")
	}
}
