package interp

import (
	"fmt"

	"github.com/npillmayer/shrdlite"
	"github.com/npillmayer/shrdlite/dnf"
	"github.com/npillmayer/shrdlite/grammar"
	"github.com/npillmayer/shrdlite/world"
)

// combine assembles candidate conjunctions for entity/location
// resolutions (mE, OE) and (mL, OL) related by rel, per the §4.5
// combination table:
//
//	conj x conj -> one conjunction over every e x l pair
//	disj x conj -> one conjunction per e, disjoined over e
//	conj x disj -> one conjunction per l, disjoined over l
//	disj x disj -> one singleton conjunction per (e, l) pair, disjoined
func combine(rel world.Relation, mE Mode, OE []shrdlite.ObjectID, mL Mode, OL []shrdlite.ObjectID) []dnf.Conjunction {
	lit := func(e, l shrdlite.ObjectID) dnf.Literal { return dnf.NewLiteral(rel, e, l) }

	switch {
	case mE == ModeConjunction && mL == ModeConjunction:
		var c dnf.Conjunction
		for _, e := range OE {
			for _, l := range OL {
				c = append(c, lit(e, l))
			}
		}
		return []dnf.Conjunction{c}

	case mE == ModeDisjunction && mL == ModeConjunction:
		out := make([]dnf.Conjunction, 0, len(OE))
		for _, e := range OE {
			var c dnf.Conjunction
			for _, l := range OL {
				c = append(c, lit(e, l))
			}
			out = append(out, c)
		}
		return out

	case mE == ModeConjunction && mL == ModeDisjunction:
		out := make([]dnf.Conjunction, 0, len(OL))
		for _, l := range OL {
			var c dnf.Conjunction
			for _, e := range OE {
				c = append(c, lit(e, l))
			}
			out = append(out, c)
		}
		return out

	default: // disj x disj
		out := make([]dnf.Conjunction, 0, len(OE)*len(OL))
		for _, e := range OE {
			for _, l := range OL {
				out = append(out, dnf.Conjunction{lit(e, l)})
			}
		}
		return out
	}
}

// Interpret resolves a parsed grammar.Command against w into a
// disjunctive-normal-form goal formula (§4.5). It returns an
// *AmbiguityError (via errors.As) when a quantified entity needs
// clarification before the command can be fully resolved.
func Interpret(w *world.WorldState, cmd grammar.Command, clarifications []grammar.Clarification) (dnf.Formula, error) {
	ip := New(w, clarifications)

	switch cmd.Kind {
	case grammar.Take:
		eRes, err := ip.ResolveEntity(cmd.Entity)
		if err != nil {
			return nil, err
		}
		if cmd.Entity.Quantifier == grammar.All && len(eRes.Candidates) > 1 {
			return nil, fmt.Errorf("I can only hold one object at a time")
		}
		if w.Holding != world.Empty {
			return nil, fmt.Errorf("I'm already holding something")
		}
		conjs := combine(world.HoldingRel, eRes.Mode, eRes.Candidates, ModeConjunction, []shrdlite.ObjectID{world.Empty})
		return dnf.Build(w, conjs)

	case grammar.Drop:
		if w.Holding == world.Empty {
			return nil, fmt.Errorf("I'm not holding anything")
		}
		lRes, err := ip.ResolveEntity(cmd.Location.Entity)
		if err != nil {
			return nil, err
		}
		conjs := combine(cmd.Location.Relation, ModeConjunction, []shrdlite.ObjectID{w.Holding}, lRes.Mode, lRes.Candidates)
		return dnf.Build(w, conjs)

	case grammar.Move:
		eRes, err := ip.ResolveEntity(cmd.Entity)
		if err != nil {
			return nil, err
		}
		lRes, err := ip.ResolveEntity(cmd.Location.Entity)
		if err != nil {
			return nil, err
		}
		conjs := combine(cmd.Location.Relation, eRes.Mode, eRes.Candidates, lRes.Mode, lRes.Candidates)
		return dnf.Build(w, conjs)
	}
	return nil, fmt.Errorf("unrecognized command kind %v", cmd.Kind)
}
