/*
Package grammar implements context-free grammars and their static analysis.

Building a Grammar

Grammars are either loaded from a grammar file (see package loader) or
specified using a grammar builder object. Symbols are plain strings; a
symbol is a non-terminal if and only if the grammar has productions for it.
Grammars may contain ε-productions.

Example:

    b := grammar.NewGrammarBuilder("G")
    b.LHS("S").Sym("A", "a").End()     // S  →  A a
    b.LHS("A").Sym("b").End()          // A  →  b
    b.LHS("A").Epsilon()               // A  →  ε
    g, err := b.Grammar()

The first non-terminal defined is the start symbol.

Static Grammar Analysis

A grammar may be subjected to an analysis, which finds non-terminals
which are unreachable from the start symbol, non-terminals which are
unable to derive any terminal string (unrealizable), non-terminals deriving
ε (nullable) and non-terminals deriving themselves without consuming input
(cyclic).

    props := grammar.Analysis(g)
    if props.InfinitelyAmbiguous() {
        ...  // some sentences have infinitely many derivations
    }

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cfgtrees.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("cfgtrees.grammar")
}
