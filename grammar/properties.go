package grammar

import (
	"github.com/emirpasic/gods/lists/singlylinkedlist"
	"github.com/emirpasic/gods/sets/treeset"
)

// Properties holds the results of a static analysis of a grammar. All the
// sets are computed by Analysis, before any client is able to read them,
// and do not change afterwards.
//
// The parser does not consult these properties; it operates on any grammar.
// They are meant for diagnostic output.
type Properties struct {
	g            *Grammar
	start        string
	reachable    *treeset.Set
	productive   *treeset.Set
	nullable     *treeset.Set
	cyclic       *treeset.Set
	unreachable  *treeset.Set
	unrealizable *treeset.Set
}

// Analysis computes the static properties of a grammar: reachable, productive,
// nullable and cyclic non-terminals. Analysis returns nil for an empty grammar.
func Analysis(g *Grammar) *Properties {
	start, err := g.Start()
	if err != nil {
		tracer().Errorf("cannot analyse grammar: %v", err)
		return nil
	}
	p := &Properties{g: g, start: start}
	p.reachable = p.computeReachable()
	p.unreachable = p.complement(p.reachable)
	p.unrealizable = p.computeUnrealizable()
	p.productive = p.complement(p.unrealizable)
	p.nullable = p.computeNullable()
	p.cyclic = p.computeCyclic()
	tracer().Debugf("grammar %s: unreachable=%v, unrealizable=%v, nullable=%v, cyclic=%v",
		g.Name, p.Unreachable(), p.Unrealizable(), p.Nullable(), p.Cyclic())
	return p
}

// Grammar returns the grammar which has been analysed.
func (p *Properties) Grammar() *Grammar {
	return p.g
}

// Reachable returns the non-terminals reachable from the start symbol, sorted.
func (p *Properties) Reachable() []string { return sorted(p.reachable) }

// Unreachable returns the non-terminals not reachable from the start symbol, sorted.
func (p *Properties) Unreachable() []string { return sorted(p.unreachable) }

// Productive returns the non-terminals deriving at least one terminal string, sorted.
func (p *Properties) Productive() []string { return sorted(p.productive) }

// Unrealizable returns the non-terminals deriving no terminal string at all, sorted.
func (p *Properties) Unrealizable() []string { return sorted(p.unrealizable) }

// Nullable returns the non-terminals deriving ε, sorted.
func (p *Properties) Nullable() []string { return sorted(p.nullable) }

// Cyclic returns the non-terminals A with A ⇒+ A, sorted.
func (p *Properties) Cyclic() []string { return sorted(p.cyclic) }

// IsReachable checks if nt is reachable from the start symbol.
func (p *Properties) IsReachable(nt string) bool { return p.reachable.Contains(nt) }

// IsProductive checks if nt derives some terminal string.
func (p *Properties) IsProductive(nt string) bool { return p.productive.Contains(nt) }

// IsNullable checks if nt derives ε.
func (p *Properties) IsNullable(nt string) bool { return p.nullable.Contains(nt) }

// IsCyclic checks if nt derives itself without consuming input.
func (p *Properties) IsCyclic(nt string) bool { return p.cyclic.Contains(nt) }

// InfinitelyAmbiguous is true if some cyclic non-terminal is reachable and
// productive. Some sentences of such a grammar have infinitely many derivations.
func (p *Properties) InfinitelyAmbiguous() bool {
	it := p.cyclic.Iterator()
	for it.Next() {
		nt := it.Value()
		if p.reachable.Contains(nt) && !p.unrealizable.Contains(nt) {
			return true
		}
	}
	return false
}

// HasProblems is true if the grammar has unreachable, unrealizable or cyclic
// non-terminals.
func (p *Properties) HasProblems() bool {
	return !p.unreachable.Empty() || !p.unrealizable.Empty() || !p.cyclic.Empty()
}

// Reachability is a breadth-first search starting at the start symbol.
func (p *Properties) computeReachable() *treeset.Set {
	reachable := treeset.NewWithStringComparator()
	queue := singlylinkedlist.New()
	queue.Add(p.start)
	for !queue.Empty() {
		v, _ := queue.Get(0)
		queue.Remove(0)
		nt := v.(string)
		if reachable.Contains(nt) {
			continue
		}
		reachable.Add(nt)
		for _, rhs := range p.g.Expansions(nt) {
			for _, sym := range rhs {
				if p.g.IsNonTerminal(sym) && !reachable.Contains(sym) {
					queue.Add(sym)
				}
			}
		}
	}
	return reachable
}

// Start with all non-terminals as being unrealizable, then remove every
// non-terminal with an alternative free of unrealizable symbols, until
// nothing changes any more. Terminals are never unrealizable.
func (p *Properties) computeUnrealizable() *treeset.Set {
	unrealizable := treeset.NewWithStringComparator()
	for _, nt := range p.g.NonTerminals() {
		unrealizable.Add(nt)
	}
	for changed := true; changed; {
		changed = false
		for _, v := range unrealizable.Values() {
			nt := v.(string)
			if p.someAlternative(nt, func(sym string) bool { return !unrealizable.Contains(sym) }) {
				unrealizable.Remove(nt)
				changed = true
			}
		}
	}
	return unrealizable
}

// A non-terminal is nullable if it has an alternative consisting of nullable
// symbols only. The empty alternative trivially qualifies.
func (p *Properties) computeNullable() *treeset.Set {
	nullable := treeset.NewWithStringComparator()
	for changed := true; changed; {
		changed = false
		for _, nt := range p.g.NonTerminals() {
			if nullable.Contains(nt) {
				continue
			}
			if p.someAlternative(nt, func(sym string) bool { return nullable.Contains(sym) }) {
				nullable.Add(nt)
				changed = true
			}
		}
	}
	return nullable
}

// A trivial successor B of A is a symbol such that A ⇒ αBβ with αβ ⇒* ε, i.e.,
// deriving B from A does not consume any input. A is cyclic if it is its own
// successor in the transitive closure of the trivial-successor relation.
func (p *Properties) computeCyclic() *treeset.Set {
	succ := make(map[string]*treeset.Set)
	for _, nt := range p.g.NonTerminals() {
		s := treeset.NewWithStringComparator()
		for _, rhs := range p.g.Expansions(nt) {
			var nonNull []string
			for _, sym := range rhs {
				if !p.nullable.Contains(sym) {
					nonNull = append(nonNull, sym)
				}
			}
			switch len(nonNull) {
			case 0:
				for _, sym := range rhs {
					s.Add(sym)
				}
			case 1:
				if p.g.IsNonTerminal(nonNull[0]) {
					s.Add(nonNull[0])
				}
			}
		}
		if !s.Empty() {
			succ[nt] = s
		}
	}
	for changed := true; changed; { // transitive closure
		changed = false
		for _, nt := range p.g.NonTerminals() {
			s, ok := succ[nt]
			if !ok {
				continue
			}
			size := s.Size()
			for _, v := range s.Values() {
				if t, ok := succ[v.(string)]; ok {
					s.Add(t.Values()...)
				}
			}
			if s.Size() > size {
				changed = true
			}
		}
	}
	cyclic := treeset.NewWithStringComparator()
	for nt, s := range succ {
		if s.Contains(nt) {
			cyclic.Add(nt)
		}
	}
	return cyclic
}

func (p *Properties) someAlternative(nt string, pred func(string) bool) bool {
	for _, rhs := range p.g.Expansions(nt) {
		all := true
		for _, sym := range rhs {
			if !pred(sym) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}

func (p *Properties) complement(s *treeset.Set) *treeset.Set {
	rest := treeset.NewWithStringComparator()
	for _, nt := range p.g.NonTerminals() {
		if !s.Contains(nt) {
			rest.Add(nt)
		}
	}
	return rest
}

func sorted(s *treeset.Set) []string {
	r := make([]string, 0, s.Size())
	for _, v := range s.Values() {
		r = append(r, v.(string))
	}
	return r
}
