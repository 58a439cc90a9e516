/*
Package session replaces the original global `Command`/`Clarifications`
module-level state (§9) with an explicit Session value owned by the
driver: the pending command awaiting clarification, the queue of
clarification parses collected so far, and a small state machine
(AwaitingCommand ⇄ AwaitingClarification) that governs how the next
utterance is routed (§4.4, §5, §7).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package session

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'shrdlite.session'.
func tracer() tracing.Trace {
	return tracing.Select("shrdlite.session")
}
