package earley

import (
	"fmt"
	"io"
)

func dumpState(S *StateSet) {
	tracer().Debugf("--- State %04d ------------------------------------", S.Position())
	n := 1
	for item := range S.All() {
		tracer().Debugf("[%2d] %s", n, item)
		n++
	}
}

// WriteStates prints the chart of the last parse, one block per state set,
// S[0] first. Nothing is written if no parse has run yet.
func (p *Parser) WriteStates(w io.Writer) error {
	for _, S := range p.states {
		if _, err := fmt.Fprintf(w, "State %d:\n", S.Position()); err != nil {
			return err
		}
		for item := range S.All() {
			if _, err := fmt.Fprintln(w, item.String()); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
