package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/cfgtrees/grammar"
	"github.com/npillmayer/cfgtrees/tree"
	"github.com/pterm/pterm"
)

// Console writes t as an indented tree for terminals. Every node shows its
// symbol; non-terminals show the span of input they cover as well.
func Console(w io.Writer, t *tree.NonTerminal) error {
	ll := LeveledList(t)
	root := pterm.NewTreeFromLeveledList(ll)
	s, err := pterm.DefaultTree.WithRoot(root).Srender()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// LeveledList flattens t in reading order, one item per node.
func LeveledList(t *tree.NonTerminal) pterm.LeveledList {
	l := &leveler{}
	tree.Walk(t, l, tree.LtoR)
	tracer().Debugf("|ll| = %d", len(l.ll))
	return l.ll
}

// leveler is a tree.Listener collecting pterm list items.
type leveler struct {
	ll pterm.LeveledList
}

func (l *leveler) EnterRule(nt *tree.NonTerminal, ctxt tree.RuleCtxt) bool {
	text := nt.Symbol() + " " + ctxt.Span.String()
	if nt.IsEpsilon() {
		text = nt.Symbol() + " → ε"
	}
	l.ll = append(l.ll, pterm.LeveledListItem{Level: ctxt.Level, Text: text})
	return true
}

func (l *leveler) ExitRule(*tree.NonTerminal, []interface{}, tree.RuleCtxt) interface{} {
	return nil
}

func (l *leveler) Terminal(t *tree.Terminal, ctxt tree.RuleCtxt) interface{} {
	l.ll = append(l.ll, pterm.LeveledListItem{Level: ctxt.Level, Text: t.Symbol()})
	return nil
}

// PropertiesTable writes the analysis results as a table, one row per
// non-terminal.
func PropertiesTable(w io.Writer, p *grammar.Properties) error {
	mark := func(b bool) string {
		if b {
			return "✓"
		}
		return ""
	}
	data := pterm.TableData{
		{"Non-terminal", "reachable", "productive", "nullable", "cyclic"},
	}
	for _, nt := range p.Grammar().NonTerminals() {
		data = append(data, []string{
			nt,
			mark(p.IsReachable(nt)),
			mark(p.IsProductive(nt)),
			mark(p.IsNullable(nt)),
			mark(p.IsCyclic(nt)),
		})
	}
	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	if _, err = io.WriteString(w, s+"\n"); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "infinitely ambiguous: %v\n", p.InfinitelyAmbiguous())
	return err
}

// Bracketed writes trees one per line, in presentation order.
func Bracketed(w io.Writer, trees []*tree.NonTerminal) error {
	sorted := append([]*tree.NonTerminal(nil), trees...)
	tree.Sort(sorted)
	var b strings.Builder
	for _, t := range sorted {
		b.WriteString(t.String())
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
