/*
Package fp implements immutable data structures in a functional style.

List is a persistent singly-linked list: consing a new head onto an
existing list never copies the tail, so many lists may share a common
suffix. Chart items of the Earley parser keep their partial parses in
such lists, which keeps memory proportional to the number of distinct
suffixes instead of the number of derivations.

Set is a deduplicating container with stable insertion order, keyed by
the elements' hash values and resolved by structural equality.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fp

import (
	"iter"
	"strings"
)

// Hashable is the constraint for elements of lists and sets. Hash must be
// consistent with Equals.
type Hashable[T any] interface {
	Hash() uint64
	Equals(T) bool
}

// EmptyHash is the hash value of the empty list. It is non-zero to set an
// empty list apart from a one-element list whose head hashes to 0.
const EmptyHash uint64 = 1

// List is a cons cell of a persistent list. The nil *List is the empty list.
type List[T Hashable[T]] struct {
	head   T
	tail   *List[T]
	length int
	hash   uint64
}

// Cons prepends head to tail. tail is shared, not copied.
func Cons[T Hashable[T]](head T, tail *List[T]) *List[T] {
	return &List[T]{
		head:   head,
		tail:   tail,
		length: tail.Len() + 1,
		hash:   head.Hash() + 31*tail.Hash(),
	}
}

// FromSlice creates a list with the elements of s in the same order.
func FromSlice[T Hashable[T]](s []T) *List[T] {
	var l *List[T]
	for i := len(s) - 1; i >= 0; i-- {
		l = Cons(s[i], l)
	}
	return l
}

// Head returns the first element of a non-empty list.
func (l *List[T]) Head() T {
	if l == nil {
		panic("fp.List: head of empty list")
	}
	return l.head
}

// Tail returns the list without its first element.
func (l *List[T]) Tail() *List[T] {
	if l == nil {
		return nil
	}
	return l.tail
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.length
}

// IsEmpty is true for the empty list.
func (l *List[T]) IsEmpty() bool {
	return l == nil
}

// Hash returns the cached hash value:
//
//    hash(empty)        = EmptyHash
//    hash(cons(h, t))   = h.Hash() + 31 * hash(t)
//
func (l *List[T]) Hash() uint64 {
	if l == nil {
		return EmptyHash
	}
	return l.hash
}

// Equals compares two lists element by element. Shared tails are detected
// by identity and not walked.
func (l *List[T]) Equals(other *List[T]) bool {
	for l != other {
		if l == nil || other == nil {
			return false
		}
		if l.length != other.length || l.hash != other.hash {
			return false
		}
		if !l.head.Equals(other.head) {
			return false
		}
		l, other = l.tail, other.tail
	}
	return true
}

// All iterates over the elements, head first.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for ; l != nil; l = l.tail {
			if !yield(l.head) {
				return
			}
		}
	}
}

// Slice copies the elements into a new slice, head first.
func (l *List[T]) Slice() []T {
	s := make([]T, 0, l.Len())
	for x := range l.All() {
		s = append(s, x)
	}
	return s
}

// String lists the elements' string forms, if they have one.
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteString("[")
	first := true
	for x := range l.All() {
		if !first {
			b.WriteString(" ")
		}
		first = false
		if s, ok := any(x).(interface{ String() string }); ok {
			b.WriteString(s.String())
		} else {
			b.WriteString("?")
		}
	}
	b.WriteString("]")
	return b.String()
}
