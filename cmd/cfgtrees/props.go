package main

import (
	"os"

	"github.com/npillmayer/cfgtrees/grammar"
	"github.com/npillmayer/cfgtrees/render"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "props",
		Short:   "Analyse a grammar",
		Example: `  cfgtrees props -g expr.txt`,
		Args:    cobra.NoArgs,
		RunE:    runProps,
	}
	rootCmd.AddCommand(cmd)
}

func runProps(cmd *cobra.Command, args []string) error {
	g, err := loadGrammar(*rootFlags.grammar)
	if err != nil {
		return err
	}
	return showProperties(grammar.Analysis(g))
}

func showProperties(p *grammar.Properties) error {
	g := p.Grammar()
	pterm.Info.Printf("grammar %s, fingerprint %s\n", g.Name, g.Fingerprint())
	pterm.Println(g.String())
	if err := render.PropertiesTable(os.Stdout, p); err != nil {
		return err
	}
	for _, problem := range (render.Report{Grammar: g, Properties: p}).Problems() {
		pterm.Error.Println(problem)
	}
	return nil
}
