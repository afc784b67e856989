package earley

import (
	"iter"
	"strings"

	"github.com/npillmayer/cfgtrees/fp"
)

// StateSet is the set of chart items whose span begins at a given input
// position. Items iterate in insertion order, which is the order in which
// the parser discovered them.
type StateSet struct {
	pos   int
	items *fp.Set[*Item]
}

func newStateSet(pos int) *StateSet {
	return &StateSet{pos: pos, items: fp.NewSet[*Item](16)}
}

// Position returns the input position of this state set.
func (S *StateSet) Position() int {
	return S.pos
}

// add inserts item, if not already present. It returns false for
// duplicates.
func (S *StateSet) add(item *Item) bool {
	return S.items.Add(item)
}

// Contains checks if an item equal to item is present.
func (S *StateSet) Contains(item *Item) bool {
	return S.items.Contains(item)
}

// Size returns the number of items.
func (S *StateSet) Size() int {
	if S == nil {
		return 0
	}
	return S.items.Size()
}

// All iterates over the items in insertion order.
func (S *StateSet) All() iter.Seq[*Item] {
	if S == nil {
		return func(func(*Item) bool) {}
	}
	return S.items.All()
}

// Items returns the items in insertion order.
func (S *StateSet) Items() []*Item {
	if S == nil {
		return nil
	}
	return S.items.Values()
}

func (S *StateSet) String() string {
	var b strings.Builder
	b.WriteString("{")
	first := true
	for item := range S.All() {
		if first {
			b.WriteString(" ")
			first = false
		} else {
			b.WriteString(", ")
		}
		b.WriteString(item.String())
	}
	b.WriteString(" }")
	return b.String()
}
