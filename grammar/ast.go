package grammar

import (
	"github.com/npillmayer/shrdlite"
	"github.com/npillmayer/shrdlite/world"
)

// Quantifier is the grammatical quantifier of an Entity.
type Quantifier int

const (
	// Any matches "any/a/an": mode = disjunction over all matches.
	Any Quantifier = iota
	// The matches "the": mode = conjunction over a single, resolved match.
	The
	// All matches "every/all": mode = conjunction over all matches.
	All
)

func (q Quantifier) String() string {
	switch q {
	case The:
		return "the"
	case All:
		return "all"
	default:
		return "any"
	}
}

// ObjectFilter is a (possibly relative) description of an object: a
// simple form/size/color filter, optionally narrowed by a Location
// relative to another Entity.
type ObjectFilter struct {
	Form     shrdlite.Form
	Size     shrdlite.Size
	Color    shrdlite.Color
	Location *Location // nil for a simple (non-relative) object
}

// AsObject renders f as a plain Object, ignoring any relative Location;
// used as the wildcard filter passed to Object.Matches.
func (f ObjectFilter) AsObject() shrdlite.Object {
	return shrdlite.Object{Form: f.Form, Size: f.Size, Color: f.Color}
}

// Location is a (Relation, Entity) pair: "REL of ENTITY".
type Location struct {
	Relation world.Relation
	Entity   Entity
}

// Entity pairs a quantifier with an object description.
type Entity struct {
	Quantifier Quantifier
	Object     ObjectFilter
	Pronoun    bool // true for "it": resolved to the held object
}

// CommandKind identifies the shape of a ParsedCommand.
type CommandKind int

const (
	Take CommandKind = iota
	Drop
	Move
)

// Command is one non-clarification ParsedCommand: take(entity),
// drop(location), or move(entity, location).
type Command struct {
	Kind     CommandKind
	Entity   Entity   // used by Take and Move
	Location Location // used by Drop and Move
}

// Clarification is a ParsedCommand whose role is to disambiguate a
// pending command rather than issue a new one: a bare object
// description, e.g. "the red ball that is inside the yellow box".
type Clarification struct {
	Object ObjectFilter
}
