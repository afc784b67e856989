package earley

import (
	"errors"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/npillmayer/cfgtrees"
	"github.com/npillmayer/cfgtrees/grammar"
	"github.com/npillmayer/cfgtrees/grammar/loader"
	"github.com/npillmayer/cfgtrees/tree"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/tools/txtar"
)

func makeParser(t *testing.T, name string, text string, opts ...Option) *Parser {
	g, err := loader.Parse(name, text)
	if err != nil {
		t.Fatalf("cannot load grammar %s: %v", name, err)
	}
	p, err := NewParser(g, opts...)
	if err != nil {
		t.Fatalf("cannot create parser: %v", err)
	}
	return p
}

func treeStrings(trees []*tree.NonTerminal) []string {
	s := make([]string, len(trees))
	for i, t := range trees {
		s[i] = t.String()
	}
	sort.Strings(s)
	return s
}

func archiveFile(a *txtar.Archive, name string) (string, bool) {
	for _, f := range a.Files {
		if f.Name == name {
			return string(f.Data), true
		}
	}
	return "", false
}

// --- the Tests -------------------------------------------------------------

// Every archive in testdata holds a grammar, an input word, the expected
// value of the 'full' flag and the expected trees in bracketed form.
func TestFixtures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgtrees.earley")
	defer teardown()
	//
	files, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no test fixtures found")
	}
	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		t.Run(name, func(t *testing.T) {
			a, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatal(err)
			}
			gtext, ok := archiveFile(a, "grammar")
			if !ok {
				t.Fatalf("fixture %s has no grammar", name)
			}
			input, _ := archiveFile(a, "input")
			full, _ := archiveFile(a, "full")
			expected, _ := archiveFile(a, "trees")
			p := makeParser(t, name, gtext)
			word := cfgtrees.SymbolList(input)
			trees, isFull := p.Parse(word)
			if want := strings.TrimSpace(full) == "true"; isFull != want {
				t.Errorf("expected full=%v, got %v", want, isFull)
			}
			var want []string
			for _, line := range strings.Split(expected, "\n") {
				if line = strings.TrimSpace(line); line != "" {
					want = append(want, line)
				}
			}
			sort.Strings(want)
			got := treeStrings(trees)
			if strings.Join(got, "\n") != strings.Join(want, "\n") {
				t.Errorf("expected trees\n%s\ngot\n%s", strings.Join(want, "\n"), strings.Join(got, "\n"))
			}
			start, _ := p.Grammar().Start()
			for _, tr := range trees {
				if tr.Symbol() != start {
					t.Errorf("tree %v not rooted in start symbol %s", tr, start)
				}
				if strings.Join(tr.Frontier(), "") != strings.Join(word, "") {
					t.Errorf("tree %v does not derive %q", tr, input)
				}
			}
		})
	}
}

func TestSingleTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgtrees.earley")
	defer teardown()
	//
	p := makeParser(t, "anbn", "S aSb|ε")
	trees, full := p.Parse(cfgtrees.SymbolList("aabb"))
	if !full || len(trees) != 1 {
		t.Fatalf("expected a single tree, got %d trees, full=%v", len(trees), full)
	}
	tr := trees[0]
	if tr.Height() != 3 {
		t.Errorf("expected height 3, is %d", tr.Height())
	}
	if tr.Width() != 5 {
		t.Errorf("expected width 5, is %d", tr.Width())
	}
	if tr.Yield() != "a a b b" {
		t.Errorf("expected yield 'a a b b', is %q", tr.Yield())
	}
}

func TestAmbiguityIsDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgtrees.earley")
	defer teardown()
	//
	p := makeParser(t, "expr", "E E+E|E*E|i")
	input := cfgtrees.SymbolList("i+i*i")
	first, _ := p.Parse(input)
	second, _ := p.Parse(input)
	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("expected 2 trees, got %d and %d", len(first), len(second))
	}
	tree.Sort(first)
	tree.Sort(second)
	for i := range first {
		if !first[i].Equals(second[i]) {
			t.Errorf("tree #%d differs between runs: %v vs %v", i, first[i], second[i])
		}
	}
	if first[0].Equals(first[1]) {
		t.Errorf("expected distinct derivations, got %v twice", first[0])
	}
}

func TestCycleTruncates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgtrees.earley")
	defer teardown()
	//
	p := makeParser(t, "cycle", "S S|a")
	trees, full := p.Parse([]string{"a"})
	if full {
		t.Errorf("expected parse of cyclic grammar to be truncated")
	}
	found := false
	for _, tr := range trees {
		if tr.String() == "(S a)" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected one-step derivation (S a) among %v", treeStrings(trees))
	}
}

func TestRaisingLimitKeepsTrees(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgtrees.earley")
	defer teardown()
	//
	low := makeParser(t, "cycle", "S S|a", ExpansionLimit(20))
	high := makeParser(t, "cycle", "S S|a", ExpansionLimit(200))
	lowTrees, _ := low.Parse([]string{"a"})
	highTrees, _ := high.Parse([]string{"a"})
	if len(highTrees) < len(lowTrees) {
		t.Errorf("higher limit found fewer trees: %d < %d", len(highTrees), len(lowTrees))
	}
	for _, lt := range lowTrees {
		found := false
		for _, ht := range highTrees {
			if lt.Equals(ht) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("tree %v lost at higher expansion limit", lt)
		}
	}
}

func TestNonTerminalInInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgtrees.earley")
	defer teardown()
	//
	p := makeParser(t, "G", "S aA\nA b")
	trees, full := p.Parse([]string{"a", "A"})
	if len(trees) != 0 || !full {
		t.Errorf("expected rejection of non-terminal input, got %d trees, full=%v", len(trees), full)
	}
}

func TestEmptyGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgtrees.earley")
	defer teardown()
	//
	_, err := NewParser(grammar.New("empty"))
	if !errors.Is(err, grammar.ErrEmptyGrammar) {
		t.Errorf("expected ErrEmptyGrammar, got %v", err)
	}
}

func TestConfiguredLimit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgtrees.earley")
	defer teardown()
	gconf.Initialize(testconfig.Conf{"earley-expansion-limit": "7"})
	defer gconf.Initialize(testconfig.Conf{})
	//
	p := makeParser(t, "G", "S a")
	if p.Limit() != 7 {
		t.Errorf("expected configured limit 7, is %d", p.Limit())
	}
	p = makeParser(t, "G", "S a", ExpansionLimit(11))
	if p.Limit() != 11 {
		t.Errorf("expected option to override configuration, limit is %d", p.Limit())
	}
}

func TestStatesAreReplaced(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgtrees.earley")
	defer teardown()
	//
	p := makeParser(t, "anbn", "S aSb|ε")
	if len(p.States()) != 0 {
		t.Errorf("expected no chart before first parse")
	}
	p.Parse(cfgtrees.SymbolList("aabb"))
	if len(p.States()) != 5 {
		t.Errorf("expected 5 state sets, have %d", len(p.States()))
	}
	p.Parse(cfgtrees.SymbolList("ab"))
	if len(p.States()) != 3 {
		t.Errorf("expected chart to be replaced by 3 state sets, have %d", len(p.States()))
	}
	var b strings.Builder
	if err := p.WriteStates(&b); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	t.Logf("\n%s", out)
	for _, s := range []string{"State 0:", "State 2:", "(Start -> S., 2)", "(Start -> .S, 2)", "(S -> aSb., 2)"} {
		if !strings.Contains(out, s) {
			t.Errorf("expected chart dump to contain %q", s)
		}
	}
	if strings.Contains(out, "State 3:") {
		t.Errorf("chart dump contains states of previous parse")
	}
}

func TestItemInvariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgtrees.earley")
	defer teardown()
	//
	item := predicted("S", 0, []string{"a", "S"}, 3)
	if item.Finished() || !item.Match("S") || item.Current() != "S" {
		t.Errorf("predicted item %v should wait for S", item)
	}
	if item.String() != "(S -> aS., 3)" {
		t.Errorf("unexpected item string %q", item.String())
	}
	s := advance(item, tree.NewNonTerminal("S", nil))
	done := advance(s, tree.NewTerminal("a"))
	if !done.FinishedAs("S") || done.Start() != 3 {
		t.Errorf("expected finished S item anchored at 3, is %v", done)
	}
	if done.String() != "(S -> .aS, 3)" {
		t.Errorf("unexpected item string %q", done.String())
	}
	if got := done.Complete().String(); got != "(S a (S))" {
		t.Errorf("expected (S a (S)), got %s", got)
	}
	again := advance(advance(item, tree.NewNonTerminal("S", nil)), tree.NewTerminal("a"))
	if !done.Equals(again) || done.Hash() != again.Hash() {
		t.Errorf("expected structurally equal items to be equal")
	}
	other := advance(predicted("S", 1, []string{"a", "S"}, 3), tree.NewNonTerminal("S", nil))
	if s.Equals(other) {
		t.Errorf("items of different alternatives must differ")
	}
	mustPanic(t, "advance finished", func() { advance(done, tree.NewTerminal("a")) })
	mustPanic(t, "current of finished", func() { done.Current() })
	mustPanic(t, "complete unfinished", func() { item.Complete() })
	mustPanic(t, "complete non-singleton top", func() { done.CompleteTop() })
}

func mustPanic(t *testing.T, what string, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic", what)
		}
	}()
	f()
}
