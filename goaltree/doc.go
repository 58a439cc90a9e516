/*
Package goaltree decomposes a disjunctive-normal-form goal formula into a
tree of executable sub-goals (§4.7), traversed by the high-level A* search
in package search.

The tree is arena-owned: nodes live in a single slice and reference each
other by index rather than by pointer, so the parent/heuristic-parent
relationship never forms a pointer cycle while still allowing O(1)
upward traversal.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package goaltree

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'shrdlite.goaltree'.
func tracer() tracing.Trace {
	return tracing.Select("shrdlite.goaltree")
}
