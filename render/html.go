package render

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/npillmayer/cfgtrees/grammar"
	"github.com/npillmayer/cfgtrees/tree"
)

// Report collects everything shown on an HTML result page.
type Report struct {
	Grammar    *grammar.Grammar
	Properties *grammar.Properties // may be nil
	Sentence   string
	Trees      []*tree.NonTerminal
	Full       bool // false if the parse has been truncated
}

// Heading returns the title of the derivation section, distinguishing
// truncated, empty, single and multiple results.
func (r Report) Heading() string {
	var h string
	switch {
	case !r.Full:
		h = "Some derivations"
	case len(r.Trees) == 0:
		h = "No derivations"
	case len(r.Trees) == 1:
		h = "Derivation tree"
	default:
		h = "Derivation trees"
	}
	return fmt.Sprintf("%s for '%s'", h, r.Sentence)
}

// Problems lists the findings of grammar analysis as sentences. It is empty
// for grammars without unreachable, unrealizable or cyclic non-terminals.
func (r Report) Problems() []string {
	p := r.Properties
	if p == nil || !p.HasProblems() {
		return nil
	}
	start, _ := r.Grammar.Start()
	var problems []string
	add := func(nts []string, label string) {
		if len(nts) == 0 {
			return
		}
		if len(nts) == 1 {
			problems = append(problems, fmt.Sprintf("Non-terminal %s is %s.", nts[0], label))
			return
		}
		problems = append(problems, fmt.Sprintf("Non-terminals %s are %s.", strings.Join(nts, ", "), label))
	}
	add(p.Unreachable(), "unreachable from the start symbol "+start)
	add(p.Unrealizable(), "unrealizable, i.e. generate no strings")
	if p.InfinitelyAmbiguous() {
		add(p.Cyclic(), "cyclic, so some strings have infinitely many derivations")
	} else {
		add(p.Cyclic(), "cyclic")
	}
	return problems
}

// Productions lists the rules of the grammar, one line per non-terminal.
func (r Report) Productions() []string {
	var lines []string
	for _, lhs := range r.Grammar.NonTerminals() {
		var alts []string
		for _, rhs := range r.Grammar.Expansions(lhs) {
			if len(rhs) == 0 {
				alts = append(alts, "ε")
				continue
			}
			alts = append(alts, strings.Join(rhs, " "))
		}
		lines = append(lines, lhs+" → "+strings.Join(alts, " | "))
	}
	return lines
}

// Drawings returns an SVG drawing for every tree, in presentation order.
func (r Report) Drawings() []template.HTML {
	trees := append([]*tree.NonTerminal(nil), r.Trees...)
	tree.Sort(trees)
	svgs := make([]template.HTML, len(trees))
	for i, t := range trees {
		svgs[i] = template.HTML(SVGString(t)) // symbols are escaped by SVG
	}
	return svgs
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta http-equiv="Content-Type" content="text/html; charset=utf-8"/>
<title>Derivation trees</title>
</head>
<body>
<h1>Derivation trees</h1>
<h2>Grammar {{ .Grammar.Name }}</h2>
<ul class="plain">
{{- range .Productions }}
<li>{{ . }}</li>
{{- end }}
</ul>
{{- with .Problems }}
<p>This grammar has the following problems:</p>
<ul>
{{- range . }}
<li>{{ . }}</li>
{{- end }}
</ul>
{{- end }}
<h2>{{ .Heading }}</h2>
{{- range .Drawings }}
{{ . }}
{{- end }}
</body>
</html>
`))

// HTML writes a complete HTML page for a parse result.
func HTML(w io.Writer, r Report) error {
	if r.Grammar == nil {
		return fmt.Errorf("render: report without grammar")
	}
	tracer().Debugf("rendering report for %q with %d tree(s)", r.Sentence, len(r.Trees))
	if err := reportTemplate.Execute(w, r); err != nil {
		tracer().Errorf("cannot render report: %v", err)
		return err
	}
	return nil
}
