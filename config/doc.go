/*
Package config holds the ambient, compiled-in configuration of the
driver: named world presets (§6 "Worlds are compiled-in presets; no disk
formats are read or written") and their canonical example utterances.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package config

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'shrdlite.config'.
func tracer() tracing.Trace {
	return tracing.Select("shrdlite.config")
}
