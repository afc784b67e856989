package tree

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/slices"
)

// Ascending orders trees for presentation: shorter yields first, then
// yields in lexicographic order, then lower trees first.
//
// Ascending is not a total order on structurally distinct trees: two
// different derivations of the same sentence with equal height compare
// as 0. Clients needing de-duplication have to use Equals.
func Ascending(a, b Tree) int {
	la, lb := yieldLen(a), yieldLen(b)
	if la != lb {
		return la - lb
	}
	if c := strings.Compare(a.Yield(), b.Yield()); c != 0 {
		return c
	}
	return a.Height() - b.Height()
}

// Sort sorts trees with Ascending. Trees comparing equal keep their
// relative order.
func Sort(trees []*NonTerminal) {
	slices.SortStableFunc(trees, func(a, b *NonTerminal) int {
		return Ascending(a, b)
	})
}

func yieldLen(t Tree) int {
	if nt, ok := t.(*NonTerminal); ok {
		return nt.yieldLen
	}
	return utf8.RuneCountInString(t.Yield())
}
