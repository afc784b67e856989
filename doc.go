/*
Package cfgtrees is a toolbox for recognizing strings against arbitrary
context-free grammars and producing every parse tree a grammar ascribes
to an input.

Grammars may be ambiguous, left- or right-recursive, may contain
ε-productions and even cycles. The parser never diverges: each state
set of the chart is capped by an expansion limit, and the parser reports
whether the result set is complete or truncated. Package structure is
as follows:

■ fp: Package fp implements persistent lists with shared tails and
hashed sets, the building blocks of the chart.

■ tree: Package tree implements parse trees (terminal leafs and
non-terminal nodes) with their derived attributes height, width and yield.

■ grammar: Package grammar implements grammars and static grammar
analysis (reachability, productivity, nullability, cyclicity).

■ earley: Package earley implements the chart parser.

■ render: Package render draws parse trees as SVG, HTML or on a terminal.

The base package contains data types which are used throughout all the
other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cfgtrees
