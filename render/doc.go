/*
Package render presents parse trees and grammar diagnostics.

SVG draws a single derivation tree. Non-terminals are set in red with their
children centered below them, terminals in blue with a grey guide line down
to a strip at the bottom of the picture, where the input sentence can be
read from left to right. ε-nodes get a lighter ε below them.

HTML assembles a complete report for a parse: the grammar, a list of
problems found by grammar analysis, and one SVG per derivation tree.

Console renders trees and grammar properties for terminals, using pterm.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cfgtrees.render'.
func tracer() tracing.Trace {
	return tracing.Select("cfgtrees.render")
}
