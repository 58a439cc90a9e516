package interp

import (
	"fmt"

	"github.com/cnf/structhash"

	"github.com/npillmayer/shrdlite"
	"github.com/npillmayer/shrdlite/grammar"
	"github.com/npillmayer/shrdlite/world"
)

// Mode is the combination mode a resolved entity contributes to DNF
// assembly (§4.3).
type Mode int

const (
	ModeConjunction Mode = iota
	ModeDisjunction
)

// Resolution is the result of resolving an Entity: a combination mode and
// the ground identifiers it stands for.
type Resolution struct {
	Mode       Mode
	Candidates []shrdlite.ObjectID
}

// AmbiguityError is not an error proper: it carries a human-readable
// disambiguation question. The driver prompts the user, collects the
// next utterance as clarification parses, and retries interpretation
// (§4.4, §7, §9).
type AmbiguityError struct {
	Question string
}

func (e *AmbiguityError) Error() string { return e.Question }

// Interpreter holds the per-call state needed to resolve entities: the
// world being interpreted against, the pending clarification queue (which
// is drained as ambiguities are resolved), and a memo table keyed by an
// entity's structural hash (§4.3: "memoize entity resolution by the
// entity's structural key within one interpret call").
type Interpreter struct {
	World          *world.WorldState
	Clarifications []grammar.Clarification
	memo           map[string]Resolution
}

// New creates an Interpreter over w, seeded with the pending
// clarification queue.
func New(w *world.WorldState, clarifications []grammar.Clarification) *Interpreter {
	return &Interpreter{
		World:          w,
		Clarifications: clarifications,
		memo:           make(map[string]Resolution),
	}
}

func entityKey(ent grammar.Entity) string {
	return structhash.Sha1(ent, 1)
}

// ResolveEntity resolves ent to a mode and a candidate set (§4.3). The
// pronoun "it" resolves to whatever is currently held, failing if
// nothing is held. "the" resolves to a single candidate via the
// ambiguity resolver, possibly signaling an AmbiguityError.
func (ip *Interpreter) ResolveEntity(ent grammar.Entity) (Resolution, error) {
	if ent.Pronoun {
		if ip.World.Holding == world.Empty {
			return Resolution{}, fmt.Errorf("I'm not holding anything")
		}
		return Resolution{Mode: ModeConjunction, Candidates: []shrdlite.ObjectID{ip.World.Holding}}, nil
	}
	key := entityKey(ent)
	if cached, ok := ip.memo[key]; ok {
		return cached, nil
	}
	candidates, err := ip.resolveObject(ent.Object)
	if err != nil {
		return Resolution{}, err
	}
	if len(candidates) == 0 {
		return Resolution{}, fmt.Errorf("I don't see any object matching that description")
	}
	var res Resolution
	switch ent.Quantifier {
	case grammar.Any:
		res = Resolution{Mode: ModeDisjunction, Candidates: candidates}
	case grammar.All:
		res = Resolution{Mode: ModeConjunction, Candidates: candidates}
	case grammar.The:
		single, err := ip.resolveSingle(candidates)
		if err != nil {
			return Resolution{}, err
		}
		tracer().Debugf("resolved 'the' entity to %s among %d candidates", single, len(candidates))
		res = Resolution{Mode: ModeConjunction, Candidates: []shrdlite.ObjectID{single}}
	}
	ip.memo[key] = res
	return res, nil
}

// resolveObject walks a (possibly relative) object filter, returning the
// set of ground identifiers that match (§4.3).
func (ip *Interpreter) resolveObject(filter grammar.ObjectFilter) ([]shrdlite.ObjectID, error) {
	if filter.Form == shrdlite.FloorForm {
		// the floor is a singleton pseudo-object, never a member of
		// AllIdentifiers and never itself relative to anything.
		return []shrdlite.ObjectID{shrdlite.Floor}, nil
	}
	var inner *Resolution
	if filter.Location != nil {
		res, err := ip.ResolveEntity(filter.Location.Entity)
		if err != nil {
			return nil, err
		}
		inner = &res
	}
	wanted := filter.AsObject()
	var out []shrdlite.ObjectID
	for _, id := range ip.World.AllIdentifiers() {
		obj, ok := ip.World.Get(id)
		if !ok || !obj.Matches(wanted) {
			continue
		}
		if inner != nil && !ip.satisfiesRelative(id, filter.Location.Relation, *inner) {
			continue
		}
		out = append(out, id)
	}
	return out, nil
}

// satisfiesRelative reports whether id satisfies relation rel against
// the inner entity's resolution: existentially ("some member") for
// any/the, universally ("every member") for all (§4.3).
func (ip *Interpreter) satisfiesRelative(id shrdlite.ObjectID, rel world.Relation, inner Resolution) bool {
	if inner.Mode == ModeDisjunction {
		for _, o := range inner.Candidates {
			if world.Test(ip.World, rel, id, o) {
				return true
			}
		}
		return false
	}
	// ModeConjunction: either a single resolved "the"-candidate (treated
	// existentially, there being only one), or "all" (treated
	// universally, every member must satisfy).
	if len(inner.Candidates) <= 1 {
		for _, o := range inner.Candidates {
			if !world.Test(ip.World, rel, id, o) {
				return false
			}
		}
		return len(inner.Candidates) == 1
	}
	for _, o := range inner.Candidates {
		if !world.Test(ip.World, rel, id, o) {
			return false
		}
	}
	return true
}
