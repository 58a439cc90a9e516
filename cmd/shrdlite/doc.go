/*
Command shrdlite is the command-line driver: it glues the parser, the
interpreter, the goal tree, and the two-level planner together, and
owns the interactive readline/pterm UI described in §6.

Usage:

	shrdlite <world-name> (<utterance> | <example-index> | <action-string>)...

With no trailing arguments it starts an interactive prompt; remaining
arguments are consumed as a queue, with any pending clarification
consuming the next one (or, once the queue is empty, the next
interactively typed line) rather than being parsed as a fresh command.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'shrdlite.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("shrdlite.cmd")
}
