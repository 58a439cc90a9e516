/*
Package search implements a generic A* engine (§4.8), plus the two
concrete state graphs it is run over: LowNode, the arm-primitive state
graph for a single sub-goal, and HighNode, the goal-tree cursor graph
whose edges each invoke a nested low-level search.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package search

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'shrdlite.search'.
func tracer() tracing.Trace {
	return tracing.Select("shrdlite.search")
}
