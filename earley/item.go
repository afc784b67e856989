package earley

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/npillmayer/cfgtrees/fp"
	"github.com/npillmayer/cfgtrees/tree"
)

// startSymbol names the LHS of the augmented start rule in item dumps.
// Top items are identified by their alternative index, not by name, so a
// grammar may well use "Start" itself.
const startSymbol = "Start"

const topAlt = -1

// Item is a dotted chart item. The dot moves from the right end of the RHS
// towards its left end; parsed holds the trees for the symbols right of the
// dot, in reading order.
//
// Items are immutable. Two items are equal if they agree on rule, dot,
// anchor position and partial parse.
type Item struct {
	nt     string
	alt    int // index of the alternative within nt's expansions
	rhs    []string
	dot    int
	finish int // input position at which the item's span ends
	parsed *fp.List[tree.Tree]
	hash   uint64
}

var _ fp.Hashable[*Item] = (*Item)(nil)

// predicted creates an item for alternative alt of nt, with the dot at the
// far right, anchored at input position finish.
func predicted(nt string, alt int, rhs []string, finish int) *Item {
	item := &Item{
		nt:     nt,
		alt:    alt,
		rhs:    rhs,
		dot:    len(rhs),
		finish: finish,
	}
	item.hash = item.computeHash()
	return item
}

// topItem is the predicted item for the augmented rule Start → start.
func topItem(start string, n int) *Item {
	return predicted(startSymbol, topAlt, []string{start}, n)
}

// advance creates the successor of prev, consuming one symbol with tree t.
// prev must not be finished.
func advance(prev *Item, t tree.Tree) *Item {
	if prev.Finished() {
		panic(fmt.Sprintf("earley: advancing finished item %v", prev))
	}
	item := &Item{
		nt:     prev.nt,
		alt:    prev.alt,
		rhs:    prev.rhs,
		dot:    prev.dot - 1,
		finish: prev.finish,
		parsed: fp.Cons(t, prev.parsed),
	}
	item.hash = item.computeHash()
	return item
}

func (item *Item) computeHash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(item.nt))
	return 23*h.Sum64() + 29*uint64(item.alt+1) + 19*uint64(item.dot) +
		13*uint64(item.finish) + 37*item.parsed.Hash()
}

// LHS returns the non-terminal of the item's rule.
func (item *Item) LHS() string { return item.nt }

// Dot returns the dot position, counting symbols left of the dot.
func (item *Item) Dot() int { return item.dot }

// Finished is true if the dot has arrived at the left end of the RHS.
func (item *Item) Finished() bool {
	return item.dot == 0
}

// FinishedAs is true if item is finished and its LHS is nt.
func (item *Item) FinishedAs(nt string) bool {
	return item.dot == 0 && item.nt == nt
}

// Match is true if sym is the symbol just left of the dot.
func (item *Item) Match(sym string) bool {
	return item.dot > 0 && item.rhs[item.dot-1] == sym
}

// Current returns the symbol just left of the dot. It panics for finished
// items.
func (item *Item) Current() string {
	if item.Finished() {
		panic(fmt.Sprintf("earley: current symbol of finished item %v", item))
	}
	return item.rhs[item.dot-1]
}

// Start returns the anchor position of the item. For a finished item in
// state set S[k], the span covered is k…Start().
func (item *Item) Start() int {
	return item.finish
}

// Complete creates the tree for a finished item. It panics for unfinished
// items.
func (item *Item) Complete() *tree.NonTerminal {
	if !item.Finished() {
		panic(fmt.Sprintf("earley: completing unfinished item %v", item))
	}
	return tree.NewNonTerminal(item.nt, item.parsed.Slice())
}

// CompleteTop returns the single tree of a finished top item. It panics
// unless the partial parse consists of exactly one non-terminal tree.
func (item *Item) CompleteTop() *tree.NonTerminal {
	if !item.Finished() {
		panic(fmt.Sprintf("earley: completing unfinished item %v", item))
	}
	if item.parsed.Len() != 1 {
		panic(fmt.Sprintf("earley: top item %v has %d trees", item, item.parsed.Len()))
	}
	t, ok := item.parsed.Head().(*tree.NonTerminal)
	if !ok {
		panic(fmt.Sprintf("earley: top item %v holds a terminal", item))
	}
	return t
}

func (item *Item) isTop() bool {
	return item.alt == topAlt
}

// Hash returns the hash value cached at construction.
func (item *Item) Hash() uint64 {
	return item.hash
}

// Equals compares items by rule, dot, anchor and partial parse.
func (item *Item) Equals(other *Item) bool {
	if item == other {
		return true
	}
	if other == nil || item.hash != other.hash {
		return false
	}
	return item.finish == other.finish && item.dot == other.dot &&
		item.alt == other.alt && item.nt == other.nt &&
		item.parsed.Equals(other.parsed)
}

// String returns the item in the form (S -> a.Sb, 3), with the symbols of
// the partial parse right of the dot.
func (item *Item) String() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(item.nt)
	b.WriteString(" -> ")
	for _, sym := range item.rhs[:item.dot] {
		b.WriteString(sym)
	}
	b.WriteByte('.')
	for t := range item.parsed.All() {
		b.WriteString(t.Symbol())
	}
	fmt.Fprintf(&b, ", %d)", item.finish)
	return b.String()
}
