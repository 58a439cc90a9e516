package session_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/shrdlite"
	"github.com/npillmayer/shrdlite/grammar"
	"github.com/npillmayer/shrdlite/interp"
	"github.com/npillmayer/shrdlite/session"
	"github.com/npillmayer/shrdlite/world"
)

func simpleWorld() *world.WorldState {
	objects := map[shrdlite.ObjectID]shrdlite.Object{
		"l": {Form: shrdlite.Ball, Size: shrdlite.Small, Color: shrdlite.White},
		"f": {Form: shrdlite.Ball, Size: shrdlite.Small, Color: shrdlite.Blue},
		"k": {Form: shrdlite.Box, Size: shrdlite.Large, Color: shrdlite.Black},
	}
	return &world.WorldState{
		Stacks: [][]shrdlite.ObjectID{
			{"l"},
			{"k", "f"},
		},
		Holding: world.Empty,
		Arm:     0,
		Objects: objects,
	}
}

func TestSessionRejectsClarificationWithoutPending(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shrdlite.session")
	defer teardown()

	sess := session.New(simpleWorld())
	err := sess.SubmitClarification([]grammar.Clarification{{}})
	if err == nil {
		t.Fatalf("expected an error: no pending command")
	}
}

func TestSessionAmbiguityThenResolvedByClarification(t *testing.T) {
	sess := session.New(simpleWorld())
	cmd := grammar.Command{
		Kind:   grammar.Take,
		Entity: grammar.Entity{Quantifier: grammar.The, Object: grammar.ObjectFilter{Form: shrdlite.Ball}},
	}

	_, err := sess.Interpret(cmd)
	var ambig *interp.AmbiguityError
	if !errors.As(err, &ambig) {
		t.Fatalf("Interpret error = %v; want *interp.AmbiguityError", err)
	}
	if sess.State != session.AwaitingClarification {
		t.Fatalf("state = %v; want AwaitingClarification", sess.State)
	}

	if err := sess.SubmitClarification([]grammar.Clarification{
		{Object: grammar.ObjectFilter{Color: shrdlite.Blue}},
	}); err != nil {
		t.Fatalf("SubmitClarification error: %v", err)
	}

	f, err := sess.Retry()
	if err != nil {
		t.Fatalf("Retry error: %v", err)
	}
	if len(f) != 1 || f[0][0].Args[0] != "f" {
		t.Fatalf("formula = %v; want holding(f)", f)
	}
	if sess.State != session.AwaitingCommand {
		t.Fatalf("state = %v; want AwaitingCommand after resolution", sess.State)
	}
	if len(sess.Clarifications) != 0 {
		t.Fatalf("clarification queue should be cleared after a committed interpretation")
	}
}

func TestSessionRetryWithoutPendingFails(t *testing.T) {
	sess := session.New(simpleWorld())
	if _, err := sess.Retry(); err == nil {
		t.Fatalf("expected an error: nothing pending")
	}
}
