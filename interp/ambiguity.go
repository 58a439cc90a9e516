package interp

import (
	"fmt"
	"strings"

	"github.com/npillmayer/shrdlite"
	"github.com/npillmayer/shrdlite/grammar"
	"github.com/npillmayer/shrdlite/world"
)

// resolveSingle narrows candidates to exactly one identifier, consuming
// clarifications from the pending queue while more than one candidate
// remains (§4.4). It signals an *AmbiguityError carrying a fresh
// disambiguation question when the queue runs dry before the candidate
// set narrows to one.
func (ip *Interpreter) resolveSingle(candidates []shrdlite.ObjectID) (shrdlite.ObjectID, error) {
	for len(candidates) > 1 && len(ip.Clarifications) > 0 {
		cl := ip.Clarifications[0]
		ip.Clarifications = ip.Clarifications[1:]
		narrowed, err := ip.narrowByClarification(candidates, cl)
		if err != nil {
			return "", err
		}
		candidates = narrowed
	}
	switch len(candidates) {
	case 0:
		return "", fmt.Errorf("none of the objects matches your clarification")
	case 1:
		return candidates[0], nil
	default:
		q := ip.describeAmbiguity(candidates)
		tracer().Debugf("ambiguous entity, %d candidates remain: %s", len(candidates), q)
		return "", &AmbiguityError{Question: q}
	}
}

// narrowByClarification filters candidates against a clarifying
// description, additionally testing its (optional) relative location
// against the current world.
func (ip *Interpreter) narrowByClarification(candidates []shrdlite.ObjectID, cl grammar.Clarification) ([]shrdlite.ObjectID, error) {
	wanted := cl.Object.AsObject()
	var inner *Resolution
	if cl.Object.Location != nil {
		res, err := ip.ResolveEntity(cl.Object.Location.Entity)
		if err != nil {
			return nil, err
		}
		inner = &res
	}
	var out []shrdlite.ObjectID
	for _, id := range candidates {
		obj, ok := ip.World.Get(id)
		if !ok || !obj.Matches(wanted) {
			continue
		}
		if inner != nil && !ip.satisfiesRelative(id, cl.Object.Location.Relation, *inner) {
			continue
		}
		out = append(out, id)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("none of the objects matches your clarification")
	}
	return out, nil
}

// describeAmbiguity synthesizes a disambiguation question listing each
// remaining candidate by its color, size and form plus the object
// directly beneath it (§4.4: "left for future extension" beyond this
// minimal description).
func (ip *Interpreter) describeAmbiguity(candidates []shrdlite.ObjectID) string {
	descs := make([]string, 0, len(candidates))
	for _, id := range candidates {
		descs = append(descs, ip.describeCandidate(id))
	}
	return "Which one do you mean: " + strings.Join(descs, ", or ") + "?"
}

// describeCandidate names id by its attributes and, where it sits on top
// of something other than the floor, the object directly beneath it.
func (ip *Interpreter) describeCandidate(id shrdlite.ObjectID) string {
	obj, _ := ip.World.Get(id)
	desc := obj.String()
	col, idx, found := ip.World.IndexOf(id)
	if !found || idx == 0 {
		return desc
	}
	below := ip.World.Stacks[col][idx-1]
	belowObj, _ := ip.World.Get(below)
	return fmt.Sprintf("%s that is %s %s", desc, world.OnTop.String(), belowObj.String())
}
