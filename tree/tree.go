/*
Package tree implements parse trees for context-free grammars.

A parse tree is either a terminal leaf, carrying an input symbol, or a
non-terminal node, carrying the left-hand side of a grammar rule and the
ordered children for the rule's right-hand side. A non-terminal node
without children is the result of an ε-production.

Trees are immutable value objects. Their derived attributes (height,
width, yield and hash) are computed when a node is created, so equality
and ordering never re-walk a tree more than once, and rendering is linear
in the size of the tree. Trees may be shared freely between different
parents and between different results of a parse.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"hash/fnv"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/cfgtrees/fp"
)

// Tree is the common interface of terminal and non-terminal nodes.
// The set of implementations is closed: *Terminal and *NonTerminal.
type Tree interface {
	Symbol() string     // grammar symbol at this node
	IsTerminal() bool   // variant tag
	Height() int        // 1 for leafs
	Width() int         // horizontal extent in leaf units, at least 1
	Yield() string      // terminal frontier, joined by spaces
	Frontier() []string // terminal frontier as a slice
	Hash() uint64
	Equals(Tree) bool
	String() string // bracketed form, e.g. (S a (S) b)
	leaves() int
	appendFrontier([]string) []string
}

var _ fp.Hashable[Tree] = (Tree)(nil)

// --- Terminals -------------------------------------------------------------

// Terminal is a leaf of a parse tree.
type Terminal struct {
	sym  string
	hash uint64
}

// NewTerminal creates a leaf for an input symbol.
func NewTerminal(sym string) *Terminal {
	return &Terminal{sym: sym, hash: hashString(sym)}
}

// Symbol returns the input symbol.
func (t *Terminal) Symbol() string { return t.sym }

// IsTerminal is always true for leafs.
func (t *Terminal) IsTerminal() bool { return true }

// Height of a leaf is 1.
func (t *Terminal) Height() int { return 1 }

// Width of a leaf is 1.
func (t *Terminal) Width() int { return 1 }

// Yield of a leaf is its symbol.
func (t *Terminal) Yield() string { return t.sym }

// Frontier of a leaf is its symbol.
func (t *Terminal) Frontier() []string { return []string{t.sym} }

// Hash returns a hash value derived from the symbol.
func (t *Terminal) Hash() uint64 { return t.hash }

// Equals is true if other is a leaf for the same symbol.
func (t *Terminal) Equals(other Tree) bool {
	o, ok := other.(*Terminal)
	return ok && (o == t || o.sym == t.sym)
}

func (t *Terminal) String() string { return t.sym }

func (t *Terminal) leaves() int { return 1 }

func (t *Terminal) appendFrontier(f []string) []string {
	return append(f, t.sym)
}

// --- Non-Terminals ---------------------------------------------------------

// NonTerminal is an inner node of a parse tree, representing the application
// of a grammar rule. Children are kept in left-to-right reading order.
type NonTerminal struct {
	sym      string
	children []Tree
	ht       int    // height of the sub-tree
	wd       int    // width of the sub-tree
	yield    string // sentence derived from this sub-tree
	yieldLen int    // length of yield in characters
	leafcnt  int    // number of terminal leafs
	hash     uint64
}

// NewNonTerminal creates a node for a rule sym → children. An empty children
// slice denotes an ε-production.
func NewNonTerminal(sym string, children []Tree) *NonTerminal {
	nt := &NonTerminal{
		sym:      sym,
		children: append([]Tree(nil), children...),
	}
	h, w := 0, 0
	chash := fp.EmptyHash
	yields := make([]string, 0, len(children))
	for i := len(nt.children) - 1; i >= 0; i-- {
		ch := nt.children[i]
		if ch == nil {
			panic("tree.NewNonTerminal: nil child")
		}
		chash = ch.Hash() + 31*chash
	}
	for _, ch := range nt.children {
		h = max(h, ch.Height())
		w += ch.Width()
		nt.leafcnt += ch.leaves()
		if y := ch.Yield(); y != "" {
			yields = append(yields, y)
		}
	}
	nt.ht = 1 + h
	nt.wd = max(1, w)
	nt.yield = strings.Join(yields, " ")
	nt.yieldLen = utf8.RuneCountInString(nt.yield)
	nt.hash = hashString(sym)*7 + chash
	return nt
}

// Symbol returns the left-hand side of the rule this node represents.
func (nt *NonTerminal) Symbol() string { return nt.sym }

// IsTerminal is always false for inner nodes.
func (nt *NonTerminal) IsTerminal() bool { return false }

// Height is 1 + the maximum height of the children (0 for ε-nodes).
func (nt *NonTerminal) Height() int { return nt.ht }

// Width is the sum of the children's widths, but at least 1.
func (nt *NonTerminal) Width() int { return nt.wd }

// Yield returns the terminal symbols derived by this node, separated by
// spaces.
func (nt *NonTerminal) Yield() string { return nt.yield }

// Frontier returns the terminal symbols derived by this node.
func (nt *NonTerminal) Frontier() []string {
	return nt.appendFrontier(make([]string, 0, nt.leafcnt))
}

// Children returns the children of this node in reading order.
// Clients must not modify the returned slice.
func (nt *NonTerminal) Children() []Tree { return nt.children }

// Child returns child number i.
func (nt *NonTerminal) Child(i int) Tree { return nt.children[i] }

// IsEpsilon is true for nodes of ε-productions.
func (nt *NonTerminal) IsEpsilon() bool { return len(nt.children) == 0 }

// Hash returns the structural hash value, consistent with Equals.
func (nt *NonTerminal) Hash() uint64 { return nt.hash }

// Equals compares two trees structurally.
func (nt *NonTerminal) Equals(other Tree) bool {
	o, ok := other.(*NonTerminal)
	if !ok {
		return false
	}
	if o == nt {
		return true
	}
	if o.hash != nt.hash || o.sym != nt.sym || len(o.children) != len(nt.children) {
		return false
	}
	for i, ch := range nt.children {
		if !ch.Equals(o.children[i]) {
			return false
		}
	}
	return true
}

func (nt *NonTerminal) String() string {
	var b strings.Builder
	nt.bracketed(&b)
	return b.String()
}

func (nt *NonTerminal) bracketed(b *strings.Builder) {
	b.WriteByte('(')
	b.WriteString(nt.sym)
	for _, ch := range nt.children {
		b.WriteByte(' ')
		if n, ok := ch.(*NonTerminal); ok {
			n.bracketed(b)
		} else {
			b.WriteString(ch.Symbol())
		}
	}
	b.WriteByte(')')
}

func (nt *NonTerminal) leaves() int { return nt.leafcnt }

func (nt *NonTerminal) appendFrontier(f []string) []string {
	for _, ch := range nt.children {
		f = ch.appendFrontier(f)
	}
	return f
}

// ---------------------------------------------------------------------------

func hashString(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}
