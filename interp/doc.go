/*
Package interp is the semantic interpreter (§4.3–§4.5): it consumes
parsed grammar.Commands (and a queue of prior grammar.Clarifications) and
produces a disjunctive-normal-form formula of ground literals over the
current world.

It resolves quantified, possibly relative entities to sets of ground
object identifiers, resolves referential ambiguity via an interactive
clarification loop, and assembles the DNF shape appropriate to the
command and the quantifier modes of its entity and location (§4.5).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package interp

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'shrdlite.interp'.
func tracer() tracing.Trace {
	return tracing.Select("shrdlite.interp")
}
