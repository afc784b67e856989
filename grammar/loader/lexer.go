package loader

import (
	"fmt"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types of the grammar file format.
const (
	tokWord    int = iota + 1 // run of symbol characters
	tokSpace                  // blanks and tabs
	tokBar                    // separator of alternatives
	tokNewline                // end of a production line
)

var tokenNames = map[int]string{
	tokWord:    "word",
	tokSpace:   "space",
	tokBar:     "'|'",
	tokNewline: "newline",
}

// token is what the lexer hands to the loader.
type token struct {
	typ    int
	lexeme string
	line   int
	col    int
}

func (t token) String() string {
	return fmt.Sprintf("%s %q @%d:%d", tokenNames[t.typ], t.lexeme, t.line, t.col)
}

// lexer wraps a compiled lexmachine DFA for grammar files.
type lexer struct {
	lm *lexmachine.Lexer
}

func newLexer() (*lexer, error) {
	lm := lexmachine.NewLexer()
	lm.Add([]byte(`\r?\n`), makeToken(tokNewline))
	lm.Add([]byte(`( |\t|\r)+`), makeToken(tokSpace))
	lm.Add([]byte(`\|`), makeToken(tokBar))
	lm.Add([]byte(`[^ \t\r\n|]+`), makeToken(tokWord))
	if err := lm.Compile(); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, err
	}
	return &lexer{lm: lm}, nil
}

// tokens scans the complete input. Unconsumed input is reported as an error;
// the lexer skips over it and continues.
func (l *lexer) tokens(input []byte, onError func(error)) ([]token, error) {
	s, err := l.lm.Scanner(input)
	if err != nil {
		return nil, err
	}
	var toks []token
	for tok, err, eof := s.Next(); !eof; tok, err, eof = s.Next() {
		if err != nil {
			onError(err)
			if ui, is := err.(*machines.UnconsumedInput); is {
				s.TC = ui.FailTC
			}
			continue
		}
		t := tok.(*lexmachine.Token)
		toks = append(toks, token{
			typ:    t.Type,
			lexeme: string(t.Lexeme),
			line:   t.StartLine,
			col:    t.StartColumn,
		})
	}
	return toks, nil
}

// makeToken is a lexmachine action which wraps a scanned match into a token.
func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
