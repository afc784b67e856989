package earley

import (
	"fmt"

	"github.com/emirpasic/gods/lists/singlylinkedlist"
	"github.com/npillmayer/cfgtrees/fp"
	"github.com/npillmayer/cfgtrees/grammar"
	"github.com/npillmayer/cfgtrees/tree"
	"github.com/npillmayer/schuko/gconf"
)

// DefaultExpansionLimit is the maximum number of items per state set.
// Raising it trades memory for completeness on grammars with cycles.
const DefaultExpansionLimit = 100

// Parser is a chart parser for a grammar. A parser keeps the chart of its
// most recent parse for inspection and therefore must not be used by more
// than one goroutine at a time. Grammars may be shared between parsers.
type Parser struct {
	g      *grammar.Grammar
	start  string
	limit  int
	states []*StateSet // chart of the last parse
}

// Option configures a parser.
type Option func(p *Parser)

// ExpansionLimit sets the maximum number of items per state set. Values
// below 1 are ignored.
func ExpansionLimit(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.limit = n
		}
	}
}

// NewParser creates a parser for g. A grammar without productions is
// rejected with grammar.ErrEmptyGrammar.
func NewParser(g *grammar.Grammar, opts ...Option) (*Parser, error) {
	start, err := g.Start()
	if err != nil {
		return nil, fmt.Errorf("cannot create parser: %w", err)
	}
	p := &Parser{
		g:     g,
		start: start,
		limit: DefaultExpansionLimit,
	}
	if l := gconf.GetInt("earley-expansion-limit"); l > 0 {
		p.limit = l
	}
	for _, opt := range opts {
		opt(p)
	}
	tracer().Debugf("parser for grammar %s, expansion limit %d", g.Name, p.limit)
	return p, nil
}

// Limit returns the expansion limit in effect.
func (p *Parser) Limit() int {
	return p.limit
}

// Grammar returns the grammar the parser recognizes.
func (p *Parser) Grammar() *grammar.Grammar {
	return p.g
}

// Parse returns every derivation tree of input. The trees are rooted in the
// start symbol and appear in the order the parser found them; use tree.Sort
// for a stable presentation order. full is false if some state set
// exceeded the expansion limit. In this case trees holds the derivations
// found up to that point, which may be none.
//
// An input the grammar does not derive results in no trees and full = true.
func (p *Parser) Parse(input []string) (trees []*tree.NonTerminal, full bool) {
	n := len(input)
	states := make([]*StateSet, n+1)
	traceStates := gconf.GetBool("earley-trace-states")
	truncated := false
	for pos := n; pos >= 0; pos-- {
		queue := singlylinkedlist.New()
		if pos == n {
			queue.Add(topItem(p.start, n))
		} else {
			p.scan(input[pos], states[pos+1], queue)
		}
		S := newStateSet(pos)
		states[pos] = S
		empties := fp.NewSet[tree.Tree](4) // ε-trees discovered at pos
		for !queue.Empty() {
			if S.Size() > p.limit {
				tracer().Infof("state set %d exceeds expansion limit of %d", pos, p.limit)
				truncated = true
				break
			}
			v, _ := queue.Get(0)
			queue.Remove(0)
			item := v.(*Item)
			if !S.add(item) {
				continue
			}
			if item.Finished() {
				p.complete(item, pos, states, empties, queue)
			} else {
				p.predict(item, pos, empties, queue)
			}
		}
		if traceStates {
			dumpState(S)
		}
	}
	for item := range states[0].All() {
		if item.isTop() && item.Finished() {
			trees = append(trees, item.CompleteTop())
		}
	}
	p.states = states
	tracer().Infof("input of length %d: %d derivation(s), truncated=%v", n, len(trees), truncated)
	return trees, !truncated
}

// scan seeds the worklist of S[pos] with the items of S[pos+1] which wait
// for terminal sym. Non-terminals in the input are never scanned.
func (p *Parser) scan(sym string, next *StateSet, queue *singlylinkedlist.List) {
	if p.g.IsNonTerminal(sym) {
		tracer().Debugf("input symbol %q is a non-terminal", sym)
		return
	}
	t := tree.NewTerminal(sym)
	for item := range next.All() {
		if item.Match(sym) {
			queue.Add(advance(item, t))
		}
	}
}

// complete advances every item in S[end] waiting for the LHS of a finished
// item. If the span is empty, the tree is kept for later predictions at
// the same position.
func (p *Parser) complete(item *Item, pos int, states []*StateSet,
	empties *fp.Set[tree.Tree], queue *singlylinkedlist.List) {
	//
	if item.isTop() {
		return // harvested after the chart is complete
	}
	t := item.Complete()
	end := item.Start()
	if end == pos {
		empties.Add(t)
	}
	for prev := range states[end].All() {
		if prev.Match(item.nt) {
			queue.Add(advance(prev, t))
		}
	}
}

// predict enqueues all alternatives of the non-terminal left of the dot,
// anchored at pos. Known ε-trees of that non-terminal are consumed right
// away, as their completion has already happened.
func (p *Parser) predict(item *Item, pos int, empties *fp.Set[tree.Tree],
	queue *singlylinkedlist.List) {
	//
	nt := item.Current()
	alts := p.g.Expansions(nt)
	if alts == nil {
		return // terminal, waiting for a scan
	}
	for i, rhs := range alts {
		queue.Add(predicted(nt, i, rhs, pos))
	}
	for t := range empties.All() {
		if t.Symbol() == nt {
			queue.Add(advance(item, t))
		}
	}
}

// States returns the chart of the last parse, S[0] first. It is replaced
// by every call to Parse.
func (p *Parser) States() []*StateSet {
	return p.states
}
