package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/cfgtrees"
	"github.com/npillmayer/cfgtrees/earley"
	"github.com/npillmayer/cfgtrees/grammar"
	"github.com/npillmayer/cfgtrees/render"
	"github.com/npillmayer/cfgtrees/tree"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Parse words interactively",
		Long: `repl reads words line by line and prints their derivation trees.
Lines starting with ':' are commands:

  :load FILE    load another grammar
  :props        analyse the current grammar
  :limit N      set the expansion limit
  :states       print the state sets of the last parse
  :quit         leave (same as <ctrl>D)`,
		Args: cobra.NoArgs,
		RunE: runREPL,
	}
	rootCmd.AddCommand(cmd)
}

// Intp is our interpreter object.
type Intp struct {
	g        *grammar.Grammar
	parser   *earley.Parser
	limit    int
	analyses map[string]*grammar.Properties // by grammar fingerprint
	repl     *readline.Instance
}

func runREPL(cmd *cobra.Command, args []string) error {
	intp := &Intp{analyses: make(map[string]*grammar.Properties)}
	if *rootFlags.grammar != "" {
		if err := intp.load(*rootFlags.grammar); err != nil {
			return err
		}
	}
	repl, err := readline.New("cfgtrees> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	intp.repl = repl
	pterm.Info.Println("Welcome to cfgtrees")
	tracer().Infof("Quit with <ctrl>D")
	intp.REPL()
	return nil
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	fmt.Println("Good bye!")
}

// Eval executes a command or parses a word, given on a line by itself.
func (intp *Intp) Eval(line string) (bool, error) {
	if !strings.HasPrefix(line, ":") {
		return false, intp.parse(line)
	}
	args := strings.Fields(line)
	switch args[0] {
	case ":quit", ":q":
		return true, nil
	case ":load":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: :load FILE")
		}
		return false, intp.load(args[1])
	case ":props":
		if intp.g == nil {
			return false, errNoGrammar
		}
		return false, showProperties(intp.analysis())
	case ":limit":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: :limit N")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			return false, fmt.Errorf("limit must be a positive number: %q", args[1])
		}
		intp.limit = n
		return false, intp.newParser()
	case ":states":
		if intp.parser == nil {
			return false, errNoGrammar
		}
		return false, intp.parser.WriteStates(os.Stdout)
	}
	return false, fmt.Errorf("unknown command %s", args[0])
}

func (intp *Intp) load(path string) error {
	g, err := loadGrammar(path)
	if err != nil {
		return err
	}
	intp.g = g
	if err := intp.newParser(); err != nil {
		return err
	}
	if p := intp.analysis(); p.HasProblems() {
		pterm.Info.Printf("grammar %s has problems, see :props\n", g.Name)
	}
	return nil
}

func (intp *Intp) newParser() error {
	if intp.g == nil {
		return nil
	}
	p, err := earley.NewParser(intp.g, earley.ExpansionLimit(intp.limit))
	if err != nil {
		return err
	}
	intp.parser = p
	return nil
}

// analysis returns the properties of the current grammar. Reloading an
// unchanged grammar file does not repeat the analysis.
func (intp *Intp) analysis() *grammar.Properties {
	fp := intp.g.Fingerprint()
	if p, ok := intp.analyses[fp]; ok {
		tracer().Debugf("using cached analysis for grammar %s", fp)
		return p
	}
	p := grammar.Analysis(intp.g)
	intp.analyses[fp] = p
	return p
}

func (intp *Intp) parse(line string) error {
	if intp.parser == nil {
		return errNoGrammar
	}
	word := cfgtrees.SymbolList(line)
	trees, full := intp.parser.Parse(word)
	report := render.Report{
		Grammar:  intp.g,
		Sentence: strings.Join(word, ""),
		Trees:    trees,
		Full:     full,
	}
	pterm.Info.Println(report.Heading())
	return eachTree(trees, func(t *tree.NonTerminal) error {
		return render.Console(os.Stdout, t)
	})
}
