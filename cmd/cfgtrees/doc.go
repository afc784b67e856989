/*
Command cfgtrees parses words against context-free grammars and shows all
their derivation trees.

Grammars are read from grammar files (see package grammar/loader). Words are
sequences of single-character symbols; whitespace and ε are ignored.

    cfgtrees parse -g anbn.txt aabb
    cfgtrees parse -g expr.txt --format html -o trees.html 'i+i*i'
    cfgtrees props -g expr.txt
    cfgtrees repl -g expr.txt

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cfgtrees.cli'.
func tracer() tracing.Trace {
	return tracing.Select("cfgtrees.cli")
}
