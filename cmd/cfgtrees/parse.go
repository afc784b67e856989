package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/cfgtrees"
	"github.com/npillmayer/cfgtrees/earley"
	"github.com/npillmayer/cfgtrees/grammar"
	"github.com/npillmayer/cfgtrees/render"
	"github.com/npillmayer/cfgtrees/tree"
	"github.com/spf13/cobra"
)

var parseFlags = struct {
	limit  *int
	format *string
	output *string
	states *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "parse [word]",
		Short: "Print all derivation trees of a word",
		Example: `  cfgtrees parse -g anbn.txt aabb
  cfgtrees parse -g expr.txt --format html -o trees.html 'i+i*i'`,
		Args: cobra.MaximumNArgs(1),
		RunE: runParse,
	}
	parseFlags.limit = cmd.Flags().IntP("limit", "l", 0,
		fmt.Sprintf("maximum number of items per state set (default %d)", earley.DefaultExpansionLimit))
	parseFlags.format = cmd.Flags().StringP("format", "f", "tree", "output format [tree|bracket|svg|html]")
	parseFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	parseFlags.states = cmd.Flags().Bool("states", false, "print the parser's state sets after the trees")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) (retErr error) {
	g, err := loadGrammar(*rootFlags.grammar)
	if err != nil {
		return err
	}
	word := ""
	if len(args) > 0 {
		word = args[0]
	}
	p, err := earley.NewParser(g, earley.ExpansionLimit(*parseFlags.limit))
	if err != nil {
		return err
	}
	trees, full := p.Parse(cfgtrees.SymbolList(word))
	report := render.Report{
		Grammar:  g,
		Sentence: strings.Join(cfgtrees.SymbolList(word), ""),
		Trees:    trees,
		Full:     full,
	}
	var w io.Writer = os.Stdout
	if *parseFlags.output != "" {
		f, err := os.Create(*parseFlags.output)
		if err != nil {
			return fmt.Errorf("cannot create output file: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil && retErr == nil {
				retErr = err
			}
		}()
		w = f
	}
	if err := writeTrees(w, report, *parseFlags.format); err != nil {
		return err
	}
	if *parseFlags.states {
		return p.WriteStates(w)
	}
	return nil
}

func writeTrees(w io.Writer, report render.Report, format string) error {
	switch format {
	case "html":
		report.Properties = grammar.Analysis(report.Grammar)
		return render.HTML(w, report)
	case "bracket":
		return render.Bracketed(w, report.Trees)
	case "svg":
		return eachTree(report.Trees, func(t *tree.NonTerminal) error {
			return render.SVG(w, t)
		})
	case "tree":
		if _, err := fmt.Fprintln(w, report.Heading()); err != nil {
			return err
		}
		return eachTree(report.Trees, func(t *tree.NonTerminal) error {
			return render.Console(w, t)
		})
	}
	return fmt.Errorf("unknown output format %q", format)
}

// eachTree calls f for the trees in presentation order.
func eachTree(trees []*tree.NonTerminal, f func(*tree.NonTerminal) error) error {
	sorted := append([]*tree.NonTerminal(nil), trees...)
	tree.Sort(sorted)
	for _, t := range sorted {
		if err := f(t); err != nil {
			return err
		}
	}
	return nil
}
