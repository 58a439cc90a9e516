package shrdlite

import "fmt"

// --- Object vocabulary -------------------------------------------------

// ObjectID identifies a physical object in a WorldState. Every identifier
// appearing in a stack or as held resolves in an object map.
type ObjectID string

// Floor is the singleton pseudo-object. It never appears in any stack; it
// is only valid as the second argument of ontop/above/inside literals and
// in relation tests.
const Floor ObjectID = "floor"

// Form is the shape of an object.
type Form int

// The recognized forms. AnyForm is a wildcard used by simple filters.
const (
	AnyForm Form = iota
	Brick
	Plank
	Ball
	Pyramid
	Box
	Table
	FloorForm
)

func (f Form) String() string {
	switch f {
	case Brick:
		return "brick"
	case Plank:
		return "plank"
	case Ball:
		return "ball"
	case Pyramid:
		return "pyramid"
	case Box:
		return "box"
	case Table:
		return "table"
	case FloorForm:
		return "floor"
	default:
		return "anyform"
	}
}

// Size is the size of an object. Unspecified acts as a wildcard.
type Size int

const (
	UnspecifiedSize Size = iota
	Small
	Large
)

func (s Size) String() string {
	switch s {
	case Small:
		return "small"
	case Large:
		return "large"
	default:
		return "unspecified"
	}
}

// Color is the color of an object. Unspecified acts as a wildcard.
type Color int

const (
	UnspecifiedColor Color = iota
	Red
	Black
	Blue
	Green
	Yellow
	White
)

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Black:
		return "black"
	case Blue:
		return "blue"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case White:
		return "white"
	default:
		return "unspecified"
	}
}

// Object carries the essential attributes of a physical object. Objects
// are defined by the world and are immutable for the lifetime of a
// session.
type Object struct {
	Form  Form
	Size  Size
	Color Color
}

// Matches reports whether o satisfies a filter object, treating AnyForm
// and the unspecified size/color as wildcards.
func (o Object) Matches(filter Object) bool {
	if filter.Form != AnyForm && filter.Form != o.Form {
		return false
	}
	if filter.Size != UnspecifiedSize && filter.Size != o.Size {
		return false
	}
	if filter.Color != UnspecifiedColor && filter.Color != o.Color {
		return false
	}
	return true
}

func (o Object) String() string {
	return fmt.Sprintf("%s %s %s", o.Color, o.Size, o.Form)
}

// --- Arm primitives ------------------------------------------------------

// ActionToken is a single element of a plan handed to the executor: either
// one of the four arm primitives or an annotation string.
type ActionToken string

// The four arm primitives. Unit cost in the low-level search.
const (
	Left  ActionToken = "l"
	Right ActionToken = "r"
	Pick  ActionToken = "p"
	Drop  ActionToken = "d"
)

// IsPrimitive reports whether t is one of the four arm primitives rather
// than an annotation string.
func (t ActionToken) IsPrimitive() bool {
	switch t {
	case Left, Right, Pick, Drop:
		return true
	default:
		return false
	}
}

// IsSilentComment reports whether t is an annotation meant for logging
// only, never printed to the user.
func (t ActionToken) IsSilentComment() bool {
	return len(t) > 0 && t[0] == '#'
}
