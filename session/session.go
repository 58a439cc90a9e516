package session

import (
	"errors"
	"fmt"

	"github.com/npillmayer/shrdlite/dnf"
	"github.com/npillmayer/shrdlite/grammar"
	"github.com/npillmayer/shrdlite/interp"
	"github.com/npillmayer/shrdlite/world"
)

// State is the small state machine the driver transitions through while
// resolving one command (§9).
type State int

const (
	AwaitingCommand State = iota
	AwaitingClarification
)

func (s State) String() string {
	if s == AwaitingClarification {
		return "awaiting-clarification"
	}
	return "awaiting-command"
}

// Session carries the pending command and clarification queue for one
// interactive session, replacing the original's global module-level
// state (§9).
type Session struct {
	World          *world.WorldState
	State          State
	Pending        *grammar.Command
	Clarifications []grammar.Clarification
}

// New starts a fresh session over w, awaiting its first command.
func New(w *world.WorldState) *Session {
	return &Session{World: w, State: AwaitingCommand}
}

// SubmitClarification appends cls to the pending clarification queue. It
// rejects the submission if no command is currently awaiting
// clarification (§5: "if a clarification is typed without a pending
// command, the driver rejects it").
func (s *Session) SubmitClarification(cls []grammar.Clarification) error {
	if s.Pending == nil {
		return errors.New("no pending command to clarify")
	}
	s.Clarifications = append(s.Clarifications, cls...)
	return nil
}

// Interpret resolves cmd against the session's world and accumulated
// clarifications. On success the session resets to AwaitingCommand and
// its clarification queue is cleared (§5: "cleared whenever a command is
// committed to interpretation"). On an ambiguity signal the session
// caches cmd as pending and transitions to AwaitingClarification,
// returning the *interp.AmbiguityError unwrapped for the caller to
// inspect via errors.As. Any other failure resets the session, since a
// fresh command is then required.
func (s *Session) Interpret(cmd grammar.Command) (dnf.Formula, error) {
	f, err := interp.Interpret(s.World, cmd, s.Clarifications)
	if err == nil {
		s.reset()
		return f, nil
	}
	var ambig *interp.AmbiguityError
	if errors.As(err, &ambig) {
		pending := cmd
		s.Pending = &pending
		s.State = AwaitingClarification
		return nil, err
	}
	s.reset()
	return nil, err
}

// Retry re-interprets the cached pending command after new
// clarifications have been submitted (§4.4: "After successful
// clarification the cached command is re-interpreted").
func (s *Session) Retry() (dnf.Formula, error) {
	if s.Pending == nil {
		return nil, fmt.Errorf("no pending command awaiting clarification")
	}
	cmd := *s.Pending
	return s.Interpret(cmd)
}

func (s *Session) reset() {
	s.Pending = nil
	s.Clarifications = nil
	s.State = AwaitingCommand
}
