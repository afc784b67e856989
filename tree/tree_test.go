package tree

import (
	"strings"
	"testing"

	"github.com/npillmayer/cfgtrees"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func leaf(s string) Tree { return NewTerminal(s) }

func node(sym string, children ...Tree) *NonTerminal {
	return NewNonTerminal(sym, children)
}

// (S a (S a (S) b) b)
func anbn() *NonTerminal {
	return node("S", leaf("a"), node("S", leaf("a"), node("S"), leaf("b")), leaf("b"))
}

func TestTerminalAttributes(t *testing.T) {
	a := NewTerminal("a")
	if a.Height() != 1 || a.Width() != 1 || a.Yield() != "a" || !a.IsTerminal() {
		t.Errorf("unexpected leaf attributes for %v", a)
	}
	if !a.Equals(NewTerminal("a")) || a.Equals(NewTerminal("b")) {
		t.Errorf("leaf equality broken")
	}
	if a.Equals(node("a")) {
		t.Errorf("leaf must not equal a non-terminal of the same symbol")
	}
}

func TestEpsilonNode(t *testing.T) {
	e := node("S")
	if !e.IsEpsilon() || e.Height() != 1 || e.Width() != 1 || e.Yield() != "" {
		t.Errorf("unexpected ε-node attributes: h=%d, w=%d, yield=%q", e.Height(), e.Width(), e.Yield())
	}
	if len(e.Frontier()) != 0 {
		t.Errorf("ε-node must have empty frontier")
	}
	if e.String() != "(S)" {
		t.Errorf("expected (S), got %s", e.String())
	}
}

func TestAttributeLaws(t *testing.T) {
	tr := anbn()
	if tr.Height() != 3 {
		t.Errorf("expected height 3, is %d", tr.Height())
	}
	if tr.Width() != 5 {
		t.Errorf("expected width 5, is %d", tr.Width())
	}
	if tr.Yield() != "a a b b" {
		t.Errorf("expected yield 'a a b b', is %q", tr.Yield())
	}
	if strings.Join(tr.Frontier(), "") != "aabb" {
		t.Errorf("unexpected frontier %v", tr.Frontier())
	}
	if tr.String() != "(S a (S a (S) b) b)" {
		t.Errorf("unexpected bracketed form %s", tr.String())
	}
	var check func(Tree)
	check = func(x Tree) {
		n, ok := x.(*NonTerminal)
		if !ok {
			return
		}
		h, w := 0, 0
		for _, ch := range n.Children() {
			h = max(h, ch.Height())
			w += ch.Width()
			check(ch)
		}
		if n.Height() != 1+h || n.Width() != max(1, w) {
			t.Errorf("attribute law violated at %v", n)
		}
	}
	check(tr)
}

func TestStructuralEquality(t *testing.T) {
	a, b := anbn(), anbn()
	if a == b || !a.Equals(b) || a.Hash() != b.Hash() {
		t.Errorf("separately built equal trees must be equal with equal hashes")
	}
	c := node("S", leaf("a"), node("S"), leaf("b"))
	if a.Equals(c) {
		t.Errorf("different trees compare equal")
	}
	children := []Tree{leaf("x")}
	d := NewNonTerminal("X", children)
	children[0] = leaf("y")
	if d.Child(0).Symbol() != "x" {
		t.Errorf("node must not share the caller's child slice")
	}
}

func TestAscending(t *testing.T) {
	short := node("E", leaf("i"))
	left := node("E", node("E", node("E", leaf("i")), leaf("+"), node("E", leaf("i"))), leaf("*"), node("E", leaf("i")))
	right := node("E", node("E", leaf("i")), leaf("+"), node("E", node("E", leaf("i")), leaf("*"), node("E", leaf("i"))))
	deep := node("E", node("E", leaf("i")))
	trees := []*NonTerminal{right, deep, left, short}
	Sort(trees)
	if trees[0] != short || trees[1] != deep {
		t.Errorf("expected short trees first, got %v", trees)
	}
	if Ascending(left, right) != 0 {
		t.Errorf("same yield and height should compare equal")
	}
	if trees[2] != right || trees[3] != left {
		t.Errorf("sort must be stable for equal trees")
	}
	if Ascending(short, deep) >= 0 {
		t.Errorf("lower tree should come first")
	}
}

type spanCollector struct {
	enter  []string
	leaves []cfgtrees.Span
}

func (c *spanCollector) EnterRule(nt *NonTerminal, ctxt RuleCtxt) bool {
	c.enter = append(c.enter, nt.Symbol()+ctxt.Span.String())
	return true
}

func (c *spanCollector) ExitRule(nt *NonTerminal, values []interface{}, ctxt RuleCtxt) interface{} {
	n := 0
	for _, v := range values {
		n += v.(int)
	}
	return n
}

func (c *spanCollector) Terminal(term *Terminal, ctxt RuleCtxt) interface{} {
	c.leaves = append(c.leaves, ctxt.Span)
	return 1
}

func TestWalk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgtrees.render")
	defer teardown()
	//
	c := &spanCollector{}
	v := Walk(anbn(), c, LtoR)
	if v.(int) != 4 {
		t.Errorf("expected 4 leaves counted, have %v", v)
	}
	if strings.Join(c.enter, " ") != "S(0…4) S(1…3) S(2…2)" {
		t.Errorf("unexpected spans %v", c.enter)
	}
	c = &spanCollector{}
	Walk(anbn(), c, RtoL)
	if len(c.leaves) != 4 || c.leaves[0].From() != 3 || c.leaves[3].From() != 0 {
		t.Errorf("expected leaves right-to-left, got %v", c.leaves)
	}
}
