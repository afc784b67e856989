/*
Package loader reads grammars from their textual representation.

Grammar File Format

A grammar file contains one production per line. A line starts with the
left-hand side, followed by whitespace, followed by one or more
alternatives, separated by '|':

    S aSb|ε
    A aA | c

Every alternative is a sequence of single-character symbols. Whitespace
inside an alternative is insignificant, and the character ε denotes the
empty alternative (it is stripped, so "ε", "" and " " all are ε-productions).
Lines without any right-hand side are ignored. The first production line
establishes the start symbol.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/npillmayer/cfgtrees"
	"github.com/npillmayer/cfgtrees/grammar"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cfgtrees.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("cfgtrees.grammar")
}

// ErrSyntax is returned for malformed grammar files.
var ErrSyntax = errors.New("grammar syntax error")

var (
	sharedLexer *lexer
	lexerErr    error
	lexerOnce   sync.Once
)

func getLexer() (*lexer, error) {
	lexerOnce.Do(func() {
		sharedLexer, lexerErr = newLexer()
	})
	return sharedLexer, lexerErr
}

// LoadFile reads a grammar from a file. The grammar is named after the file.
func LoadFile(path string) (*grammar.Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open grammar file: %w", err)
	}
	defer f.Close()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Load(name, f)
}

// Load reads a grammar from r.
func Load(name string, r io.Reader) (*grammar.Grammar, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read grammar %q: %w", name, err)
	}
	return Parse(name, string(content))
}

// Parse creates a grammar from its textual representation.
func Parse(name string, content string) (*grammar.Grammar, error) {
	lx, err := getLexer()
	if err != nil {
		return nil, err
	}
	var scanErr error
	toks, err := lx.tokens([]byte(content), func(e error) {
		tracer().Errorf("grammar %s: %v", name, e)
		if scanErr == nil {
			scanErr = fmt.Errorf("%w: %v", ErrSyntax, e)
		}
	})
	if err != nil {
		return nil, err
	}
	if scanErr != nil {
		return nil, scanErr
	}
	g := grammar.New(name)
	lines := splitLines(toks)
	for _, line := range lines {
		if err := addLine(g, line); err != nil {
			return nil, fmt.Errorf("grammar %q: %w", name, err)
		}
	}
	if _, err := g.Start(); err != nil {
		return nil, fmt.Errorf("grammar %q: %w", name, err)
	}
	g.Dump()
	return g, nil
}

func splitLines(toks []token) [][]token {
	var lines [][]token
	var line []token
	for _, t := range toks {
		if t.typ == tokNewline {
			lines = append(lines, line)
			line = nil
			continue
		}
		line = append(line, t)
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}

// addLine interprets the tokens of a single line, already stripped of the
// newline.
func addLine(g *grammar.Grammar, line []token) error {
	line = trimSpace(line)
	if len(line) == 0 {
		return nil
	}
	lhs := line[0]
	if lhs.typ != tokWord {
		return fmt.Errorf("%w: line %d: left-hand side expected, found %s", ErrSyntax, lhs.line, lhs)
	}
	if len(line) == 1 { // no right-hand side
		tracer().Infof("line %d: ignoring %q without right-hand side", lhs.line, lhs.lexeme)
		return nil
	}
	if line[1].typ != tokSpace {
		return fmt.Errorf("%w: line %d: whitespace expected after %q", ErrSyntax, lhs.line, lhs.lexeme)
	}
	var alt strings.Builder
	for _, t := range line[2:] {
		if t.typ == tokBar {
			g.AddProduction(lhs.lexeme, cfgtrees.SymbolList(alt.String()))
			alt.Reset()
			continue
		}
		alt.WriteString(t.lexeme)
	}
	g.AddProduction(lhs.lexeme, cfgtrees.SymbolList(alt.String()))
	return nil
}

func trimSpace(line []token) []token {
	for len(line) > 0 && line[0].typ == tokSpace {
		line = line[1:]
	}
	for len(line) > 0 && line[len(line)-1].typ == tokSpace {
		line = line[:len(line)-1]
	}
	return line
}
