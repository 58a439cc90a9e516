/*
Package grammar implements the minimal utterance parser. Its contract:
map an utterance to zero or more Command parses, or — when the driver is
awaiting a clarification reply — to zero or more Clarification parses.

Input is lowercased and non-word characters are stripped before parsing.
Polite wrappers (please, will/can/could you) are optional and ignored.
The grammar is intentionally small: it covers a fixed vocabulary of
forms, sizes, colors and spatial relations, and produces more than one
Command parse only for the textbook relative-location attachment
ambiguity ("put a ball in a box on the floor").

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package grammar

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'shrdlite.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("shrdlite.grammar")
}
