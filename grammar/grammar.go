package grammar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cnf/structhash"
)

// ErrEmptyGrammar is returned for grammars without any production, as such
// grammars do not have a start symbol.
var ErrEmptyGrammar = errors.New("grammar has no productions")

// Grammar is a context-free grammar. It is an ordered collection of
// non-terminals, each with a non-empty, ordered list of alternatives.
// Every symbol which does not occur as a left-hand side is a terminal.
//
// The first non-terminal added is the start symbol. Duplicate alternatives
// are kept; they result in distinct derivations.
//
// Grammars are built incrementally and are read-only afterwards. A grammar
// may be shared between parsers running concurrently, provided nobody adds
// productions any more.
type Grammar struct {
	Name  string
	lhss  []string              // non-terminals in definition order
	rules map[string][][]string // alternatives per non-terminal
}

// New creates an empty grammar.
func New(name string) *Grammar {
	return &Grammar{
		Name:  name,
		rules: make(map[string][][]string),
	}
}

// AddProduction appends rhs to the alternatives of lhs. If lhs has not been
// seen before, it is registered as the next non-terminal. An empty rhs is an
// ε-production.
func (g *Grammar) AddProduction(lhs string, rhs []string) {
	if g.rules == nil {
		g.rules = make(map[string][][]string)
	}
	alts, ok := g.rules[lhs]
	if !ok {
		g.lhss = append(g.lhss, lhs)
	}
	g.rules[lhs] = append(alts, append([]string{}, rhs...))
}

// Start returns the start symbol, i.e. the first non-terminal added.
func (g *Grammar) Start() (string, error) {
	if g == nil || len(g.lhss) == 0 {
		return "", ErrEmptyGrammar
	}
	return g.lhss[0], nil
}

// NonTerminals returns the non-terminals in definition order.
func (g *Grammar) NonTerminals() []string {
	return append([]string(nil), g.lhss...)
}

// Expansions returns the alternatives for sym, or nil if sym is not a
// non-terminal. Clients must not modify the returned slices.
func (g *Grammar) Expansions(sym string) [][]string {
	if g == nil {
		return nil
	}
	return g.rules[sym]
}

// IsNonTerminal is true if sym occurs as a left-hand side.
func (g *Grammar) IsNonTerminal(sym string) bool {
	return g.Expansions(sym) != nil
}

// Size returns the number of productions (alternatives) of the grammar.
func (g *Grammar) Size() int {
	n := 0
	for _, alts := range g.rules {
		n += len(alts)
	}
	return n
}

// Terminals collects the symbols occuring on right-hand sides which are not
// non-terminals, in order of first occurence.
func (g *Grammar) Terminals() []string {
	seen := map[string]bool{}
	var terms []string
	for _, lhs := range g.lhss {
		for _, rhs := range g.rules[lhs] {
			for _, sym := range rhs {
				if !g.IsNonTerminal(sym) && !seen[sym] {
					seen[sym] = true
					terms = append(terms, sym)
				}
			}
		}
	}
	return terms
}

// EachProduction calls f for every production, in definition order.
func (g *Grammar) EachProduction(f func(lhs string, alt int, rhs []string)) {
	for _, lhs := range g.lhss {
		for i, rhs := range g.rules[lhs] {
			f(lhs, i, rhs)
		}
	}
}

// fingerprint is the hashed view of a grammar.
type fingerprint struct {
	Order []string
	Rules map[string][][]string
}

// Fingerprint returns a digest of the productions of g. Grammars with
// identical productions in identical order have identical fingerprints.
func (g *Grammar) Fingerprint() string {
	fp := fingerprint{Order: g.lhss, Rules: g.rules}
	h, err := structhash.Hash(fp, 1)
	if err != nil {
		tracer().Errorf("cannot compute fingerprint of grammar %q: %v", g.Name, err)
		return ""
	}
	return h
}

// ProductionString formats a production as "S → a S b" or "S → ε".
func ProductionString(lhs string, rhs []string) string {
	if len(rhs) == 0 {
		return lhs + " → ε"
	}
	return lhs + " → " + strings.Join(rhs, " ")
}

// Dump is a debugging helper, tracing all productions at debug level.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s -----------------------------", g.Name)
	n := 0
	g.EachProduction(func(lhs string, alt int, rhs []string) {
		tracer().Debugf("%3d: %s", n, ProductionString(lhs, rhs))
		n++
	})
	tracer().Debugf("----------------------------------------------")
}

func (g *Grammar) String() string {
	var b strings.Builder
	for _, lhs := range g.lhss {
		b.WriteString(lhs)
		b.WriteString(" →")
		for i, rhs := range g.rules[lhs] {
			if i > 0 {
				b.WriteString(" |")
			}
			if len(rhs) == 0 {
				b.WriteString(" ε")
			}
			for _, sym := range rhs {
				b.WriteString(" ")
				b.WriteString(sym)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// --- Grammar Builder -------------------------------------------------------

// Builder is a helper for constructing grammars in code:
//
//    b := grammar.NewGrammarBuilder("G")
//    b.LHS("S").Sym("a").Sym("S").Sym("b").End()   // S → a S b
//    b.LHS("S").Epsilon()                          // S → ε
//    g, err := b.Grammar()
//
type Builder struct {
	g *Grammar
}

// NewGrammarBuilder creates a builder for a new grammar.
func NewGrammarBuilder(name string) *Builder {
	return &Builder{g: New(name)}
}

// RuleBuilder collects the right-hand side of a single production.
type RuleBuilder struct {
	b   *Builder
	lhs string
	rhs []string
}

// LHS starts a new production for non-terminal lhs.
func (b *Builder) LHS(lhs string) *RuleBuilder {
	return &RuleBuilder{b: b, lhs: lhs}
}

// Sym appends symbols to the right-hand side.
func (rb *RuleBuilder) Sym(syms ...string) *RuleBuilder {
	rb.rhs = append(rb.rhs, syms...)
	return rb
}

// End adds the production to the grammar.
func (rb *RuleBuilder) End() *Builder {
	rb.b.g.AddProduction(rb.lhs, rb.rhs)
	return rb.b
}

// Epsilon adds an ε-production for the LHS. Symbols collected so far are
// discarded.
func (rb *RuleBuilder) Epsilon() *Builder {
	rb.b.g.AddProduction(rb.lhs, nil)
	return rb.b
}

// Grammar returns the grammar built so far. It is an error to build a
// grammar without productions.
func (b *Builder) Grammar() (*Grammar, error) {
	if _, err := b.g.Start(); err != nil {
		return nil, fmt.Errorf("grammar %q: %w", b.g.Name, err)
	}
	return b.g, nil
}
