package fp

import (
	"fmt"
	"testing"
)

type num int

func (n num) Hash() uint64          { return uint64(n) }
func (n num) Equals(other num) bool { return n == other }
func (n num) String() string        { return fmt.Sprintf("%d", int(n)) }

func TestEmptyList(t *testing.T) {
	var l *List[num]
	if !l.IsEmpty() || l.Len() != 0 {
		t.Errorf("nil list should be empty")
	}
	if l.Hash() != EmptyHash {
		t.Errorf("empty list should hash to %d, is %d", EmptyHash, l.Hash())
	}
	if l.Tail() != nil {
		t.Errorf("tail of empty list should be empty")
	}
	if l.String() != "[]" {
		t.Errorf("expected [], got %s", l.String())
	}
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected Head() of empty list to panic")
		}
	}()
	l.Head()
}

func TestZeroHeadDiffersFromEmpty(t *testing.T) {
	var empty *List[num]
	one := Cons(num(0), nil)
	if one.Hash() == empty.Hash() {
		t.Errorf("list [0] must not hash like the empty list")
	}
	if one.Equals(empty) || empty.Equals(one) {
		t.Errorf("list [0] must not equal the empty list")
	}
}

func TestConsSharesTail(t *testing.T) {
	tail := FromSlice([]num{2, 3})
	a := Cons(num(1), tail)
	b := Cons(num(7), tail)
	if a.Tail() != b.Tail() {
		t.Errorf("expected tails to be shared")
	}
	if a.Len() != 3 || b.Len() != 3 {
		t.Errorf("expected length 3, have %d and %d", a.Len(), b.Len())
	}
	if a.Equals(b) {
		t.Errorf("lists with different heads must differ")
	}
	if a.String() != "[1 2 3]" {
		t.Errorf("expected [1 2 3], got %s", a.String())
	}
}

func TestStructuralEquality(t *testing.T) {
	a := FromSlice([]num{1, 2, 3})
	b := Cons(num(1), Cons(num(2), Cons(num(3), nil)))
	if !a.Equals(b) || a.Hash() != b.Hash() {
		t.Errorf("separately built equal lists must be equal with equal hashes")
	}
	c := FromSlice([]num{1, 2})
	if a.Equals(c) || c.Equals(a) {
		t.Errorf("lists of different length must differ")
	}
	// h = head + 31*tail
	want := uint64(1) + 31*(2+31*(3+31*EmptyHash))
	if a.Hash() != want {
		t.Errorf("expected hash %d, is %d", want, a.Hash())
	}
}

func TestIteration(t *testing.T) {
	l := FromSlice([]num{4, 5, 6})
	var seen []num
	for x := range l.All() {
		seen = append(seen, x)
		if x == 5 {
			break
		}
	}
	if len(seen) != 2 || seen[0] != 4 || seen[1] != 5 {
		t.Errorf("unexpected iteration %v", seen)
	}
	s := l.Slice()
	if len(s) != 3 || s[2] != 6 {
		t.Errorf("unexpected slice %v", s)
	}
}

func TestSet(t *testing.T) {
	s := NewSet[num](2)
	if !s.Empty() {
		t.Errorf("new set should be empty")
	}
	for _, x := range []num{3, 1, 3, 2, 1} {
		s.Add(x)
	}
	if s.Size() != 3 {
		t.Errorf("expected 3 elements, have %d", s.Size())
	}
	v := s.Values()
	if v[0] != 3 || v[1] != 1 || v[2] != 2 {
		t.Errorf("expected insertion order [3 1 2], got %v", v)
	}
	if !s.Contains(2) || s.Contains(4) {
		t.Errorf("membership broken")
	}
}

func TestSetGrowsDuringIteration(t *testing.T) {
	s := NewSet[num](4)
	s.Add(1)
	n := 0
	for x := range s.All() {
		n++
		if x < 4 {
			s.Add(x + 1)
		}
	}
	if n != 4 {
		t.Errorf("expected iteration to visit 4 elements, visited %d", n)
	}
}

type collider int

func (c collider) Hash() uint64               { return 42 }
func (c collider) Equals(other collider) bool { return c == other }

func TestSetHashCollisions(t *testing.T) {
	s := NewSet[collider](4)
	s.Add(1)
	s.Add(2)
	if !s.Add(3) || s.Add(2) {
		t.Errorf("set must resolve colliding hashes by equality")
	}
	if s.Size() != 3 {
		t.Errorf("expected 3 elements, have %d", s.Size())
	}
}
