package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/npillmayer/cfgtrees/grammar"
	"github.com/npillmayer/cfgtrees/grammar/loader"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	trace   *string
	grammar *string
}{}

var rootCmd = &cobra.Command{
	Use:   "cfgtrees",
	Short: "Find all derivation trees of a word for a context-free grammar",
	Long: `cfgtrees parses words against arbitrary context-free grammars,
including ambiguous and cyclic ones, and prints every derivation tree.
It also reports on unreachable, unrealizable, nullable and cyclic
non-terminals of a grammar.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initTracing(*rootFlags.trace)
		initDisplay()
	},
}

func init() {
	rootFlags.trace = rootCmd.PersistentFlags().StringP("trace", "t", "Error", "trace level [Debug|Info|Error]")
	rootFlags.grammar = rootCmd.PersistentFlags().StringP("grammar", "g", "", "grammar file path")
}

// Execute runs the command selected by the command line arguments.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}

// All tracers go to a Go logger on stderr, sharing a single trace level.
func initTracing(level string) {
	gtrace.SyntaxTracer = gologadapter.New()
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracer().SetTraceLevel(tracing.TraceLevelFromString(level))
	tracer().Infof("trace level is %s", level)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

var errNoGrammar = errors.New("no grammar file given, use --grammar")

func loadGrammar(path string) (*grammar.Grammar, error) {
	if path == "" {
		return nil, errNoGrammar
	}
	g, err := loader.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot load grammar: %w", err)
	}
	tracer().Infof("loaded grammar %s with %d productions", g.Name, g.Size())
	return g, nil
}
