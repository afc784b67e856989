package tree

import (
	"github.com/npillmayer/cfgtrees"
)

/*
Walking a parse tree is done with a listener, which gets notified on entering
and leaving every non-terminal node and on every terminal leaf. Listeners may
return values from ExitRule and Terminal; the values of a node's children are
handed to ExitRule of the parent, thus allowing for bottom-up attribute
computations with a top-down walk.
*/

// Listener is a type for walking a parse tree.
//
// EnterRule returns a boolean value indicating if the traversal should continue
// to the children of this node. ExitRule and Terminal may return user-defined
// values to be propagated upwards the tree.
type Listener interface {
	EnterRule(*NonTerminal, RuleCtxt) bool
	ExitRule(*NonTerminal, []interface{}, RuleCtxt) interface{}
	Terminal(*Terminal, RuleCtxt) interface{}
}

// RuleCtxt is a context structure for Listeners.
type RuleCtxt struct {
	Span  cfgtrees.Span // span of input symbols covered by this node
	Level int           // nesting level, 0 for the root
	Index int           // position within the parent's children, -1 for the root
}

// Direction lets clients decide wether children nodes should be traversed
// left-to-right (default) or right-to-left.
type Direction int

// Children nodes may be traversed left-to-right (default) or right-to-left.
const (
	LtoR Direction = 1
	RtoL Direction = -1
)

// Walk traverses a tree top-down, calling listener methods for all nodes
// encountered. It returns the value returned for the root node.
func Walk(t Tree, listener Listener, dir Direction) interface{} {
	if t == nil {
		return nil
	}
	if dir != RtoL {
		dir = LtoR
	}
	span := cfgtrees.Span{0, uint64(t.leaves())}
	return walk(t, listener, dir, RuleCtxt{Span: span, Level: 0, Index: -1})
}

func walk(t Tree, listener Listener, dir Direction, ctxt RuleCtxt) interface{} {
	if leaf, ok := t.(*Terminal); ok {
		return listener.Terminal(leaf, ctxt)
	}
	nt := t.(*NonTerminal)
	if !listener.EnterRule(nt, ctxt) {
		return listener.ExitRule(nt, nil, ctxt)
	}
	n := len(nt.children)
	spans := make([]cfgtrees.Span, n)
	pos := ctxt.Span.From()
	for i, ch := range nt.children {
		spans[i] = cfgtrees.Span{pos, pos + uint64(ch.leaves())}
		pos = spans[i].To()
	}
	values := make([]interface{}, n)
	i := 0
	if dir == RtoL {
		i = n - 1
	}
	for ; i >= 0 && i < n; i += int(dir) {
		chctxt := RuleCtxt{Span: spans[i], Level: ctxt.Level + 1, Index: i}
		values[i] = walk(nt.children[i], listener, dir, chctxt)
	}
	return listener.ExitRule(nt, values, ctxt)
}
