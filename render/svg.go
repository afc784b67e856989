package render

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/npillmayer/cfgtrees/tree"
)

// Layout of tree drawings, in pixels.
const (
	HSep        = 30 // horizontal distance of leafs
	VSep        = 45 // vertical distance of levels
	StripHeight = 30 // height of the sentence strip at the bottom
	Top         = 15 // gap between a line and the symbol below it
	Bottom      = 5  // gap between a symbol and the lines below it
)

const (
	nonTerminalColour = "#cc0000"
	terminalColour    = "#0000cc"
	nonTerminalLine   = "black"
	terminalLine      = "#dddddd"
	nullColour        = "#aaaaaa"
	nullSymbol        = "&#x03B5;"
	backgroundColour  = "#fff7db"
	stripColour       = "#f0e6bc"
)

// SVG writes a drawing of t as a standalone SVG element.
func SVG(w io.Writer, t *tree.NonTerminal) error {
	out := &svgWriter{w: w}
	levels := layoutHeight(t)
	width := t.Width() * HSep
	out.startTag("svg")
	out.attr("width", width)
	out.attr("height", levels*VSep+StripHeight)
	out.attr("xmlns", "http://www.w3.org/2000/svg")
	out.attr("version", "1.1")
	out.attr("font-family", "sans-serif")
	out.attr("font-size", 15)
	out.closeBracket()
	out.startTag("rect")
	out.attr("width", width)
	out.attr("height", levels*VSep)
	out.attr("fill", backgroundColour)
	out.closeEmpty()
	out.startTag("rect")
	out.attr("y", levels*VSep)
	out.attr("width", width)
	out.attr("height", StripHeight)
	out.attr("fill", stripColour)
	out.closeEmpty()
	draw(out, t, HSep/2, 30, levels)
	out.endTag("svg")
	out.printf("\n")
	if out.err != nil {
		tracer().Errorf("cannot write SVG: %v", out.err)
	}
	return out.err
}

// SVGString returns the drawing of t.
func SVGString(t *tree.NonTerminal) string {
	var b strings.Builder
	SVG(&b, t) // strings.Builder does not fail
	return b.String()
}

// layoutHeight is the number of rows needed to draw t. It differs from
// t.Height() in reserving a row for the ε below an empty node.
func layoutHeight(t tree.Tree) int {
	nt, ok := t.(*tree.NonTerminal)
	if !ok {
		return 1
	}
	h := 1
	for _, ch := range nt.Children() {
		h = max(h, layoutHeight(ch))
	}
	return h + 1
}

// draw paints t with its leftmost leaf at x and its symbol at y. levels is
// the number of rows left down to the sentence strip. draw returns the
// x-coordinate of t's symbol.
func draw(out *svgWriter, t tree.Tree, x, y, levels int) int {
	if t.IsTerminal() {
		out.text(x, y, terminalColour, t.Symbol())
		ly := y + levels*VSep - 10
		out.text(x, ly, terminalColour, t.Symbol())
		out.startLines(terminalLine)
		out.line(x, y+Bottom, x, ly-Top)
		out.endLines()
		return x
	}
	nt := t.(*tree.NonTerminal)
	ty := y + VSep
	children := nt.Children()
	rootsX := make([]int, len(children))
	tx := x
	for i, ch := range children {
		rootsX[i] = draw(out, ch, tx, ty, levels-1)
		tx += ch.Width() * HSep
	}
	n := len(children)
	rx := x
	if n > 0 { // median of the children's positions
		rx = (rootsX[(n-1)/2] + rootsX[n/2]) / 2
	}
	out.text(rx, y, nonTerminalColour, nt.Symbol())
	if n == 0 {
		out.rawText(x, ty, nullColour, nullSymbol)
		out.startLines(nullColour)
		out.line(x, y+Bottom, x, ty-Top)
		out.endLines()
		return rx
	}
	out.startLines(nonTerminalLine)
	for _, cx := range rootsX {
		out.line(rx, y+Bottom, cx, ty-Top)
	}
	out.endLines()
	return rx
}

// --- SVG output ------------------------------------------------------------

// svgWriter remembers the first error and ignores all output after it.
type svgWriter struct {
	w   io.Writer
	err error
}

func (out *svgWriter) printf(format string, args ...interface{}) {
	if out.err != nil {
		return
	}
	_, out.err = fmt.Fprintf(out.w, format, args...)
}

func (out *svgWriter) startTag(tag string) { out.printf("<%s", tag) }

func (out *svgWriter) attr(name string, value interface{}) {
	out.printf(" %s=\"%v\"", name, value)
}

func (out *svgWriter) closeBracket() { out.printf(">") }

func (out *svgWriter) closeEmpty() { out.printf("/>") }

func (out *svgWriter) endTag(tag string) { out.printf("</%s>", tag) }

func (out *svgWriter) startLines(colour string) {
	out.startTag("g")
	out.attr("stroke", colour)
	out.attr("stroke-width", 1)
	out.attr("stroke-linecap", "round")
	out.closeBracket()
}

func (out *svgWriter) endLines() { out.endTag("g") }

func (out *svgWriter) line(x1, y1, x2, y2 int) {
	out.startTag("line")
	out.attr("x1", x1)
	out.attr("y1", y1)
	out.attr("x2", x2)
	out.attr("y2", y2)
	out.closeEmpty()
}

// text draws a symbol, escaping it for XML.
func (out *svgWriter) text(x, y int, colour string, s string) {
	out.rawText(x, y, colour, html.EscapeString(s))
}

func (out *svgWriter) rawText(x, y int, colour string, s string) {
	out.startTag("text")
	out.attr("x", x)
	out.attr("y", y)
	out.attr("text-anchor", "middle")
	out.attr("fill", colour)
	out.closeBracket()
	out.printf("%s", s)
	out.endTag("text")
}
