/*
Package world implements the shared, read-only world model: columns of
stacked object identifiers, an optional held identifier, the arm's column,
and a mapping from identifier to object attributes. It also implements the
seven spatial relation predicates and the physical feasibility rules as
pure functions over a WorldState.

The WorldState is shared read-only through interpretation and planning;
nodes copy stacks on branch to keep snapshots independent. Only a plan
executor mutates a WorldState, by applying a completed plan.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package world

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'shrdlite.world'.
func tracer() tracing.Trace {
	return tracing.Select("shrdlite.world")
}
