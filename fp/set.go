package fp

import "iter"

// Set is a deduplicating collection of hashable elements. Iteration
// follows insertion order, so two sets built by the same sequence of
// insertions iterate identically.
//
// Elements must not be removed while a set is being iterated; adding
// elements during an iteration is allowed and the new elements are
// visited as well.
type Set[T Hashable[T]] struct {
	buckets map[uint64][]int
	elems   []T
}

// NewSet creates an empty set with room for n elements.
func NewSet[T Hashable[T]](n int) *Set[T] {
	return &Set[T]{
		buckets: make(map[uint64][]int, n),
		elems:   make([]T, 0, n),
	}
}

// Add inserts x, if no equal element is present. It returns true if x
// has been added.
func (s *Set[T]) Add(x T) bool {
	if s.Contains(x) {
		return false
	}
	h := x.Hash()
	s.buckets[h] = append(s.buckets[h], len(s.elems))
	s.elems = append(s.elems, x)
	return true
}

// Contains checks for an element equal to x.
func (s *Set[T]) Contains(x T) bool {
	if s == nil {
		return false
	}
	for _, i := range s.buckets[x.Hash()] {
		if s.elems[i].Equals(x) {
			return true
		}
	}
	return false
}

// Size returns the number of elements.
func (s *Set[T]) Size() int {
	if s == nil {
		return 0
	}
	return len(s.elems)
}

// Empty is true if the set has no elements.
func (s *Set[T]) Empty() bool {
	return s.Size() == 0
}

// All iterates over the elements in insertion order.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s == nil {
			return
		}
		for i := 0; i < len(s.elems); i++ {
			if !yield(s.elems[i]) {
				return
			}
		}
	}
}

// Values returns a copy of the elements in insertion order.
func (s *Set[T]) Values() []T {
	if s == nil {
		return nil
	}
	return append([]T(nil), s.elems...)
}
