package cfgtrees

import (
	"fmt"
	"unicode"
)

// Epsilon is the character denoting the empty word in grammar files
// and in input words. It is stripped whenever symbols are extracted.
const Epsilon = 'ε'

// SymbolList splits a word into single-character symbols, ignoring
// whitespace and ε.
//
//    SymbolList("a S b")  // => [a S b]
//    SymbolList("ε")      // => []
//
func SymbolList(word string) []string {
	syms := make([]string, 0, len(word))
	for _, r := range word {
		if unicode.IsSpace(r) || r == Epsilon {
			continue
		}
		syms = append(syms, string(r))
	}
	return syms
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input symbol run. For every
// terminal and non-terminal, a parse tree walk will track which input positions
// this symbol covers. A span denotes a start position and the position just
// behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is true for ε-spans.
func (s Span) IsNull() bool {
	return s[0] == s[1]
}

// Extend returns the smallest span covering both s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
