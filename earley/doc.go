/*
Package earley implements a right-to-left chart parser for arbitrary
context-free grammars.

The parser is a variant of Earley's algorithm, walking the input from its
end towards its beginning. State set S[k] holds the chart items whose span
begins at input position k. Items start with the dot at the far right of a
right-hand side, and every scan or completion moves the dot one symbol to
the left, prepending the tree of the consumed symbol to a persistent list of
partial parses. Children thus end up in reading order without any reversal.

Because the partial parse is part of an item's identity, items for the same
rule and span reached by different derivations stay apart, and every
derivation the grammar admits shows up as a separate tree in the result.
Grammars may be ambiguous, left- or right-recursive, may contain
ε-productions and even cycles. To guarantee termination for the latter,
each state set is capped at an expansion limit; hitting the cap is reported
to the caller, who then holds only some of the derivations.

Usage:

    g, _ := loader.Parse("G", "S aSb|ε")
    p, err := earley.NewParser(g)
    ...
    trees, full := p.Parse(cfgtrees.SymbolList("aabb"))
    tree.Sort(trees)

Configuration

Key 'earley-expansion-limit' (int) overrides DefaultExpansionLimit for all
parsers created afterwards. Setting 'earley-trace-states' (bool) dumps every
state set to the tracer at debug level.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package earley

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cfgtrees.earley'.
func tracer() tracing.Trace {
	return tracing.Select("cfgtrees.earley")
}
