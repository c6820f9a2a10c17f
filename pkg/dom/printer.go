package dom

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/walteh/golily/pkg/pitch"
)

// Printer turns nodes into LilyPond text without indenting it.
type Printer struct {
	// Language writes Pitch nodes. Nil means nederlands.
	Language            *pitch.Language
	TypographicalQuotes bool

	err error
}

// Err returns the first error met while printing. Pitches that cannot be
// written in the printer's language are written in nederlands instead.
func (p *Printer) Err() error {
	return p.err
}

func (p *Printer) language() *pitch.Language {
	if p.Language == nil {
		return pitch.Default()
	}
	return p.Language
}

func (p *Printer) pitch(pt pitch.Pitch) string {
	s, err := p.language().Format(pt)
	if err == nil {
		return s
	}
	if p.err == nil {
		p.err = err
	}
	s, _ = pitch.Default().Format(pt)
	return s
}

// Print returns the text of n and all its children.
func (p *Printer) Print(n Node) string {
	switch n := n.(type) {
	case *Text:
		return n.Text
	case *Line:
		return n.Text
	case *Comment:
		lines := strings.Split(strings.TrimRight(n.Text, "\n"), "\n")
		for i, l := range lines {
			lines[i] = strings.TrimRight("% "+l, " ")
		}
		return strings.Join(lines, "\n")
	case *BlockComment:
		text := strings.TrimSpace(n.Text)
		if strings.Contains(text, "\n") {
			return "%{\n" + text + "\n%}"
		}
		return "%{ " + text + " %}"
	case *QuotedString:
		return p.quote(n.Text)
	case *Scheme:
		return "#" + n.Expr
	case *Version:
		return `\version "` + n.Version + `"`
	case *Include:
		return `\include "` + n.File + `"`
	case *Newline, *BlankLine:
		return ""
	case *Identifier:
		return `\` + n.Name
	case *Pitch:
		return p.pitch(n.Pitch)
	case *Duration:
		return n.Duration.String()
	case *KeySignature:
		tonic := n.Tonic
		tonic.Octave = 0
		return `\key ` + p.pitch(tonic) + ` \` + n.Mode
	case *TimeSignature:
		return fmt.Sprintf(`\time %d/%d`, n.Num, n.Beat)
	case *Partial:
		return `\partial ` + n.Duration.String()
	case *Tempo:
		parts := []string{`\tempo`}
		if n.Text != "" {
			parts = append(parts, p.quote(n.Text))
		}
		if n.Value != "" {
			parts = append(parts, n.Duration.String()+" = "+n.Value)
		}
		return strings.Join(parts, " ")
	case *Clef:
		if plainWord.MatchString(n.Name) {
			return `\clef ` + n.Name
		}
		return `\clef "` + n.Name + `"`
	case *VoiceSeparator:
		return `\\`

	case *Body:
		return p.join(&n.branch)
	case *Seq:
		return p.enclose("{", "}", &n.branch, false)
	case *Sim:
		return p.enclose("<<", ">>", &n.branch, false)
	case *Seqr:
		return p.enclose("{", "}", &n.branch, true)
	case *Simr:
		return p.enclose("<<", ">>", &n.branch, true)
	case *SimPoly:
		return p.poly(&n.branch)
	case *Assignment:
		if v := n.Value(); v != nil {
			return n.Name + " = " + p.Print(v)
		}
		return n.Name + " ="
	case *Score:
		return p.enclose(`\score {`, "}", &n.branch, false)
	case *Book:
		return p.enclose(`\book {`, "}", &n.branch, false)
	case *Header:
		return p.enclose(`\header {`, "}", &n.branch, false)
	case *Paper:
		return p.enclose(`\paper {`, "}", &n.branch, false)
	case *Layout:
		return p.enclose(`\layout {`, "}", &n.branch, false)
	case *Midi:
		return p.enclose(`\midi {`, "}", &n.branch, false)
	case *With:
		return p.enclose(`\with {`, "}", &n.branch, false)
	case *ContextDef:
		text := `\` + n.Kind
		if len(n.children) > 0 {
			text += "\n" + p.join(&n.branch)
		}
		return "\\context {\n" + text + "\n}"
	case *Context:
		head := `\new ` + n.Kind
		if n.Name != "" {
			head += ` = "` + n.Name + `"`
		}
		return p.prefix(head, &n.branch)
	case *Relative:
		return p.prefix(`\relative`, &n.branch)
	case *Transposition:
		return p.prefix(`\transposition`, &n.branch)
	case *InputMode:
		return p.prefix(`\`+n.Mode, &n.branch)
	case *LyricsTo:
		return p.prefix(`\lyricsto "`+n.Voice+`"`, &n.branch)
	case *Markup:
		return p.prefix(`\markup`, &n.branch)
	case *MarkupCmd:
		return p.prefix(`\`+n.Name, &n.branch)
	case *MarkupEncl:
		return `\` + n.Name + " " + p.enclose("{", "}", &n.branch, false)
	}
	panic(fmt.Sprintf("dom: unknown node %T", n))
}

var plainWord = regexp.MustCompile(`^[A-Za-z]+$`)

// spacing returns the number of newlines a node wants before and after it.
func spacing(n Node) (before, after int) {
	switch n := n.(type) {
	case *Line, *BlankLine, *Assignment, *Score, *Book,
		*Header, *Paper, *Layout, *Midi, *ContextDef:
		before, after = 1, 1
	case *BlockComment:
		if strings.Contains(strings.TrimSpace(n.Text), "\n") {
			before, after = 1, 1
		}
	case *Comment, *Newline, *Version, *Include,
		*KeySignature, *TimeSignature, *Partial, *Tempo:
		after = 1
	}
	b := n.base()
	return max(before, b.Before), max(after, b.After)
}

// join prints the children separated by a space, or by the newlines the
// children ask for.
func (p *Printer) join(b *branch) string {
	var sb strings.Builder
	var prev Node
	for _, c := range b.children {
		text := p.Print(c)
		if prev != nil {
			_, after := spacing(prev)
			before, _ := spacing(c)
			nl := max(after, before)
			if b.Multiline {
				nl = max(nl, 1)
			}
			switch {
			case nl > 0:
				sb.WriteString(strings.Repeat("\n", nl))
			case text != "" && sb.Len() > 0 && !strings.HasSuffix(sb.String(), " "):
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(text)
		prev = c
	}
	return sb.String()
}

func (p *Printer) enclose(open, close string, b *branch, removable bool) string {
	if len(b.children) == 0 {
		return open + " " + close
	}
	text := p.join(b)
	if removable && len(b.children) == 1 && simple(b.children[0], text) {
		return text
	}
	if b.Multiline || strings.Contains(text, "\n") {
		return open + "\n" + text + "\n" + close
	}
	return open + " " + text + " " + close
}

// simple reports whether a single child can stand without braces.
func simple(n Node, text string) bool {
	switch n.(type) {
	case *Seq, *Sim, *SimPoly, *Context:
		return true
	}
	return !strings.ContainsAny(text, " \t\n")
}

func (p *Printer) poly(b *branch) string {
	parts := make([]string, len(b.children))
	multiline := b.Multiline
	for i, c := range b.children {
		parts[i] = p.Print(c)
		multiline = multiline || strings.Contains(parts[i], "\n")
	}
	switch {
	case len(parts) == 0:
		return "<< >>"
	case multiline:
		return "<<\n" + strings.Join(parts, "\n\\\\\n") + "\n>>"
	}
	return "<< " + strings.Join(parts, ` \\ `) + " >>"
}

func (p *Printer) prefix(head string, b *branch) string {
	if text := p.join(b); text != "" {
		return head + " " + text
	}
	return head
}

var (
	doubleQuoted = regexp.MustCompile(`"([^"]*)"`)
	singleQuoted = regexp.MustCompile(`(^|[\s(\[])'([^']*)'`)
)

func (p *Printer) quote(text string) string {
	if p.TypographicalQuotes {
		text = doubleQuoted.ReplaceAllString(text, "“${1}”")
		text = singleQuoted.ReplaceAllString(text, "${1}‘${2}’")
		text = strings.ReplaceAll(text, "'", "’")
	}
	text = strings.ReplaceAll(text, `\`, `\\`)
	text = strings.ReplaceAll(text, `"`, `\"`)
	return `"` + text + `"`
}
