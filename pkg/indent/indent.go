// Package indent recomputes the leading whitespace of LilyPond and Scheme
// source lines.
package indent

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/walteh/golily/pkg/changes"
	"github.com/walteh/golily/pkg/position"
	"github.com/walteh/golily/pkg/tokenize"
)

// Options control the indent engine.
type Options struct {
	IndentWidth int
	TabWidth    int
	// UseTabs nil means: use tabs when the document already does.
	UseTabs *bool
	// StartScheme lexes the text as the inside of a Scheme expression.
	StartScheme bool
}

func DefaultOptions() Options {
	return Options{IndentWidth: 2, TabWidth: 8}
}

func (o Options) normalized() Options {
	if o.IndentWidth <= 0 {
		o.IndentWidth = 2
	}
	if o.TabWidth <= 0 {
		o.TabWidth = 8
	}
	return o
}

// schemeKeywords are form heads whose body is indented by IndentWidth
// instead of being aligned with the first argument.
var schemeKeywords = map[string]bool{
	"define": true, "define*": true, "define-public": true, "define-macro": true,
	"define-music-function": true, "define-scheme-function": true,
	"define-void-function": true, "define-markup-command": true,
	"define-event-function": true, "define-syntax": true,
	"lambda": true, "lambda*": true, "let": true, "let*": true, "letrec": true,
	"begin": true, "cond": true, "case": true, "when": true, "unless": true,
	"if": true, "do": true, "with-output-to-string": true,
}

type line struct {
	start int
	wsEnd int
	end   int
	// keep is set for lines that start inside a string or comment.
	keep   bool
	indent int
	set    bool
}

func (l line) blank() bool {
	return l.wsEnd == l.end
}

func leading(s string) int {
	return len(s) - len(strings.TrimLeft(s, " \t"))
}

func width(ws string, tabWidth int) int {
	return position.VirtualColumn(ws, utf8.RuneCountInString(ws), tabWidth)
}

// Changes returns the minimal edits that re-indent text.
func Changes(ctx context.Context, text string, opts Options) *changes.List {
	opts = opts.normalized()
	ix := position.NewIndex(text)
	out := changes.New(text)

	lines := make([]line, ix.LineCount())
	for i := range lines {
		start := ix.LineStart(i)
		l := ix.Line(i)
		lines[i] = line{start: start, wsEnd: start + leading(l), end: start + len(l)}
	}

	first := ix.Line(0)
	useTabs := strings.Contains(first[:leading(first)], "\t") || strings.Contains(text, "\n\t")
	if opts.UseTabs != nil {
		useTabs = *opts.UseTabs
	}
	makeIndent := func(n int) string {
		if useTabs {
			return strings.Repeat("\t", n/opts.TabWidth) + strings.Repeat(" ", n%opts.TabWidth)
		}
		return strings.Repeat(" ", n)
	}

	var initial []tokenize.Parser
	if opts.StartScheme {
		initial = []tokenize.Parser{tokenize.NewParser(tokenize.Toplevel), {Name: tokenize.SchemeList}}
	}
	tokens := tokenize.Default().Lex(text, initial...).Collect()

	// mark lines starting inside a multi-line token
	j := 0
	for i := range lines {
		for j < len(tokens) && tokens[j].End() <= lines[i].start {
			j++
		}
		if j < len(tokens) && tokens[j].Offset < lines[i].start && tokens[j].Kind != tokenize.Space {
			lines[i].keep = true
		}
	}

	base := width(first[:leading(first)], opts.TabWidth)
	stack := []int{base}
	top := func() int { return stack[len(stack)-1] }
	pop := func() {
		if len(stack) > 1 {
			stack = stack[:len(stack)-1]
		}
	}

	// column returns the output column of a token on an already indented line.
	column := func(tk tokenize.Token) int {
		l := lines[tk.Line]
		src := ix.Line(tk.Line)
		indentWidth := width(src[:l.wsEnd-l.start], opts.TabWidth)
		if l.set {
			indentWidth = l.indent
		}
		return indentWidth + position.VirtualColumn(src, tk.Column, opts.TabWidth) -
			width(src[:l.wsEnd-l.start], opts.TabWidth)
	}

	for k, tk := range tokens {
		if tk.Kind == tokenize.Space {
			continue
		}
		if l := &lines[tk.Line]; !l.keep && !l.set && tk.Offset == l.wsEnd {
			l.set = true
			switch {
			case isLongComment(tk):
				l.indent = 0
			case isCloser(tk) && len(stack) > 1:
				l.indent = stack[len(stack)-2]
			default:
				l.indent = top()
			}
		}

		switch tk.Kind {
		case tokenize.OpenBracket, tokenize.OpenSimultaneous, tokenize.ChordStart:
			stack = append(stack, top()+opts.IndentWidth)
		case tokenize.SchemeLilyStart:
			stack = append(stack, top()+opts.IndentWidth)
		case tokenize.SchemeOpenParen:
			stack = append(stack, schemeIndent(tokens, k, column, opts.IndentWidth))
		case tokenize.CloseBracket, tokenize.CloseSimultaneous, tokenize.ChordEnd,
			tokenize.SchemeCloseParen, tokenize.SchemeLilyEnd:
			pop()
		}
	}

	changed := 0
	for i, l := range lines {
		if l.keep {
			continue
		}
		ws := text[l.start:l.wsEnd]
		want := ""
		if !l.blank() {
			n := top()
			if l.set {
				n = l.indent
			} else if i == 0 {
				n = base
			}
			want = makeIndent(n)
		}
		if ws != want {
			if err := out.Add(l.start, l.wsEnd, want); err == nil {
				changed++
			}
		}
	}
	zerolog.Ctx(ctx).Debug().Int("lines", len(lines)).Int("changed", changed).Msg("indented")
	return out
}

// Indent returns text re-indented.
func Indent(ctx context.Context, text string, opts Options) string {
	return Changes(ctx, text, opts).Apply()
}

func isLongComment(tk tokenize.Token) bool {
	return (tk.Kind == tokenize.Comment && strings.HasPrefix(tk.Text, "%%%")) ||
		(tk.Kind == tokenize.SchemeComment && strings.HasPrefix(tk.Text, ";;;"))
}

func isCloser(tk tokenize.Token) bool {
	switch tk.Kind {
	case tokenize.CloseBracket, tokenize.CloseSimultaneous, tokenize.ChordEnd,
		tokenize.SchemeCloseParen, tokenize.SchemeLilyEnd:
		return true
	}
	return false
}

// schemeIndent is the indent of lines continuing the form opened by the
// paren at tokens[k].
func schemeIndent(tokens []tokenize.Token, k int, column func(tokenize.Token) int, indentWidth int) int {
	paren := column(tokens[k])
	if k+1 >= len(tokens) || tokens[k+1].Line != tokens[k].Line {
		return paren + 1
	}
	head := tokens[k+1]
	if head.Kind != tokenize.SchemeWord {
		return paren + 1
	}
	if schemeKeywords[head.Text] {
		return paren + indentWidth
	}
	if k+3 < len(tokens) && tokens[k+2].Kind == tokenize.Space && tokens[k+3].Line == head.Line {
		return column(tokens[k+3])
	}
	return paren + 1
}
