/*
Package dnf implements literals, conjunctions, and disjunctive-normal-form
formulas over ground object identifiers (§3, §4.5), together with the
"dnf "-prefixed direct-formula escape hatch grammar of §6: conjunctions
separated by '|', literals separated by '&', each literal of the form
R(arg1,arg2), R(arg), or -R(...) for negation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package dnf

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'shrdlite.dnf'.
func tracer() tracing.Trace {
	return tracing.Select("shrdlite.dnf")
}
