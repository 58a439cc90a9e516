package grammar

import (
	"fmt"
	"strings"

	"github.com/npillmayer/shrdlite"
	"github.com/npillmayer/shrdlite/world"
)

var quantifierWords = map[string]Quantifier{
	"any": Any, "a": Any, "an": Any,
	"the": The,
	"every": All, "all": All,
}

var sizeWords = map[string]shrdlite.Size{
	"small": shrdlite.Small, "tiny": shrdlite.Small,
	"large": shrdlite.Large, "big": shrdlite.Large,
}

var colorWords = map[string]shrdlite.Color{
	"red": shrdlite.Red, "black": shrdlite.Black, "blue": shrdlite.Blue,
	"green": shrdlite.Green, "yellow": shrdlite.Yellow, "white": shrdlite.White,
}

var formWords = map[string]shrdlite.Form{
	"brick": shrdlite.Brick, "plank": shrdlite.Plank, "ball": shrdlite.Ball,
	"pyramid": shrdlite.Pyramid, "box": shrdlite.Box, "table": shrdlite.Table,
	"object": shrdlite.AnyForm, "thing": shrdlite.AnyForm,
	"form": shrdlite.AnyForm, "one": shrdlite.AnyForm,
	"floor": shrdlite.FloorForm,
}

// lookupForm resolves tok against formWords, stemming a trailing plural
// "s" ("balls" -> "ball") when the bare token itself isn't a match.
func lookupForm(tok string) (shrdlite.Form, bool) {
	if f, ok := formWords[tok]; ok {
		return f, true
	}
	if stem := strings.TrimSuffix(tok, "s"); stem != tok {
		if f, ok := formWords[stem]; ok {
			return f, true
		}
	}
	return 0, false
}

type parser struct {
	toks []string
	pos  int
}

func (p *parser) peek() string {
	if p.pos >= len(p.toks) {
		return ""
	}
	return p.toks[p.pos]
}

func (p *parser) peekAt(n int) string {
	if p.pos+n >= len(p.toks) {
		return ""
	}
	return p.toks[p.pos+n]
}

func (p *parser) advance() { p.pos++ }

// parseRelation consumes and classifies a location preposition, per the
// vocabulary summary of §6.
func parseRelation(p *parser) (world.Relation, bool) {
	switch p.peek() {
	case "left":
		if p.peekAt(1) == "of" {
			p.pos += 2
			return world.LeftOf, true
		}
	case "right":
		if p.peekAt(1) == "of" {
			p.pos += 2
			return world.RightOf, true
		}
	case "inside", "in", "into":
		p.advance()
		return world.Inside, true
	case "on":
		p.advance()
		if p.peek() == "top" {
			p.advance()
			if p.peek() == "of" {
				p.advance()
			}
		} else if p.peek() == "of" {
			p.advance()
		}
		return world.OnTop, true
	case "to":
		p.advance()
		return world.OnTop, true
	case "under", "below":
		p.advance()
		return world.Under, true
	case "beside":
		p.advance()
		return world.Beside, true
	case "next":
		if p.peekAt(1) == "to" {
			p.pos += 2
			return world.Beside, true
		}
	case "above":
		p.advance()
		return world.Above, true
	case "at":
		if p.peekAt(1) == "any" && p.peekAt(2) == "location" {
			p.pos += 3
			return world.AnyLocation, true
		}
	case "being":
		if p.peekAt(1) == "held" {
			p.pos += 2
			return world.HoldingRel, true
		}
	}
	return 0, false
}

// peekIsRelation reports whether a relation starts at the current
// position, without consuming anything.
func peekIsRelation(p *parser) bool {
	save := p.pos
	_, ok := parseRelation(p)
	p.pos = save
	return ok
}

func parseQuantifier(p *parser) Quantifier {
	if q, ok := quantifierWords[p.peek()]; ok {
		p.advance()
		return q
	}
	return Any
}

// parseObjectWords consumes size/color/form words (in any order) that
// describe an object, per §6's sizes/forms vocabulary.
func parseObjectWords(p *parser) (shrdlite.Form, shrdlite.Size, shrdlite.Color, bool) {
	form, size, color := shrdlite.AnyForm, shrdlite.UnspecifiedSize, shrdlite.UnspecifiedColor
	consumed := false
	for {
		tok := p.peek()
		if sz, ok := sizeWords[tok]; ok {
			size = sz
			p.advance()
			consumed = true
			continue
		}
		if c, ok := colorWords[tok]; ok {
			color = c
			p.advance()
			consumed = true
			continue
		}
		if f, ok := lookupForm(tok); ok {
			form = f
			p.advance()
			consumed = true
			return form, size, color, consumed
		}
		break
	}
	return form, size, color, consumed
}

// skipRelativeMarker consumes an optional "that is"/"which is" marker
// ahead of a relative clause.
func skipRelativeMarker(p *parser) {
	if p.peek() == "that" || p.peek() == "which" {
		p.advance()
	}
	if p.peek() == "is" {
		p.advance()
	}
}

// parseObjectFilter parses an object description, allowing it to consume
// a trailing relative clause ("... REL ENTITY"), recursively.
func parseObjectFilter(p *parser) (ObjectFilter, bool) {
	form, size, color, ok := parseObjectWords(p)
	if !ok {
		return ObjectFilter{}, false
	}
	f := ObjectFilter{Form: form, Size: size, Color: color}
	skipRelativeMarker(p)
	if rel, ok := parseRelation(p); ok {
		if inner, ok := parseEntity(p); ok {
			f.Location = &Location{Relation: rel, Entity: inner}
		}
	}
	return f, true
}

// parseBareObjectFilter parses an object description without consuming a
// trailing relative clause — used for the subject entity of move/put/drop,
// which must leave a trailing relation for the command's own location.
func parseBareObjectFilter(p *parser) (ObjectFilter, bool) {
	form, size, color, ok := parseObjectWords(p)
	if !ok {
		return ObjectFilter{}, false
	}
	return ObjectFilter{Form: form, Size: size, Color: color}, true
}

// parseEntity parses a full quantifier+object description, allowing
// relative-clause chaining.
func parseEntity(p *parser) (Entity, bool) {
	if p.peek() == "it" {
		p.advance()
		return Entity{Pronoun: true}, true
	}
	q := parseQuantifier(p)
	obj, ok := parseObjectFilter(p)
	if !ok {
		return Entity{}, false
	}
	return Entity{Quantifier: q, Object: obj}, true
}

// parseBareEntity parses a quantifier+object description without a
// trailing relative clause.
func parseBareEntity(p *parser) (Entity, bool, bool) {
	if p.peek() == "it" {
		p.advance()
		return Entity{Pronoun: true}, true, true
	}
	q := parseQuantifier(p)
	obj, ok := parseBareObjectFilter(p)
	if !ok {
		return Entity{}, false, false
	}
	return Entity{Quantifier: q, Object: obj}, true, true
}

var takeVerbs = map[string]bool{"take": true, "grasp": true}
var moveVerbs = map[string]bool{"move": true, "put": true, "drop": true}

// expandAttachmentAmbiguity reflects the classic PP-attachment ambiguity
// of scenario D (§8): when a location's entity itself carries a nested
// relative location two levels deep, the trailing relation could modify
// either the inner entity (nearest-attachment, the default parse) or the
// outer entity. Both readings are returned.
func expandAttachmentAmbiguity(entity Entity, loc Location) []Command {
	nearest := Command{Kind: Move, Entity: entity, Location: loc}
	inner := loc.Entity
	if inner.Object.Location == nil {
		return []Command{nearest}
	}
	raisedEntity := entity
	raisedObj := entity.Object
	raisedObj.Location = inner.Object.Location
	raisedEntity.Object = raisedObj

	strippedInner := inner
	strippedInnerObj := inner.Object
	strippedInnerObj.Location = nil
	strippedInner.Object = strippedInnerObj

	raised := Command{
		Kind:     Move,
		Entity:   raisedEntity,
		Location: Location{Relation: loc.Relation, Entity: strippedInner},
	}
	return []Command{nearest, raised}
}

// ParseCommand parses an utterance into zero or more Command parses
// (§6). An utterance is first tokenized (lowercased, non-word characters
// stripped, polite wrappers removed).
func ParseCommand(utterance string) ([]Command, error) {
	toks := tokenize(utterance)
	if len(toks) == 0 {
		return nil, fmt.Errorf("empty utterance")
	}
	p := &parser{toks: toks}
	verb := p.peek()

	switch {
	case verb == "pick" && p.peekAt(1) == "up":
		p.pos += 2
		ent, ok := parseEntity(p)
		if !ok {
			return nil, fmt.Errorf("expected an entity after %q", "pick up")
		}
		return []Command{{Kind: Take, Entity: ent}}, nil

	case takeVerbs[verb]:
		p.advance()
		ent, ok := parseEntity(p)
		if !ok {
			return nil, fmt.Errorf("expected an entity after %q", verb)
		}
		return []Command{{Kind: Take, Entity: ent}}, nil

	case moveVerbs[verb]:
		p.advance()
		if peekIsRelation(p) {
			// "drop LOCATION": no explicit entity, operates on the
			// held object.
			rel, _ := parseRelation(p)
			locEnt, ok := parseEntity(p)
			if !ok {
				return nil, fmt.Errorf("expected an entity after the location preposition")
			}
			loc := Location{Relation: rel, Entity: locEnt}
			return []Command{{Kind: Drop, Location: loc}}, nil
		}
		ent, found, ok := parseBareEntity(p)
		if !ok || !found {
			return nil, fmt.Errorf("expected an entity or \"it\" after %q", verb)
		}
		rel, ok := parseRelation(p)
		if !ok {
			return nil, fmt.Errorf("expected a location after the entity")
		}
		locEnt, ok := parseEntity(p)
		if !ok {
			return nil, fmt.Errorf("expected an entity after the location preposition")
		}
		loc := Location{Relation: rel, Entity: locEnt}
		return expandAttachmentAmbiguity(ent, loc), nil
	}
	return nil, fmt.Errorf("unrecognized command %q", utterance)
}

// ParseClarification parses an utterance as a sequence of Clarification
// parses (bare object descriptions), as required while the driver is
// awaiting a clarification reply (§4.4, §7).
func ParseClarification(utterance string) ([]Clarification, error) {
	toks := tokenize(utterance)
	if len(toks) == 0 {
		return nil, fmt.Errorf("empty utterance")
	}
	p := &parser{toks: toks}
	_ = parseQuantifier(p) // optional leading "the"/"a"/etc.
	obj, ok := parseObjectFilter(p)
	if !ok {
		return nil, fmt.Errorf("could not parse a clarifying description from %q", utterance)
	}
	return []Clarification{{Object: obj}}, nil
}
