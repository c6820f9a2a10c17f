package transform

import (
	"strings"

	"github.com/walteh/golily/pkg/pitch"
	"github.com/walteh/golily/pkg/tokenize"
)

// paragraphStart returns the offset of the first line of the run of
// non-blank lines that ends at offset.
func paragraphStart(text string, offset int) int {
	start := strings.LastIndexByte(text[:offset], '\n') + 1
	for start > 0 {
		prev := strings.LastIndexByte(text[:start-1], '\n') + 1
		if strings.TrimSpace(text[prev:start-1]) == "" {
			break
		}
		start = prev
	}
	return start
}

type expression struct {
	start, end int
	// first is the first pitch of the expression.
	first    tokenize.Token
	relative bool
	tail     []string
}

// RepeatLast returns the last pitch or chord before offset in the current
// paragraph, without its duration, followed by the ties, articulation
// shorthands and \rest written directly after it. In \relative music the
// octave marks of the first pitch are dropped so that inserting the text
// repeats the same pitch.
func RepeatLast(text string, offset int) (string, bool) {
	offset = min(max(offset, 0), len(text))
	from := paragraphStart(text, offset)

	lx := tokenize.DefaultRelative().Lex(text)
	var (
		last    *expression
		chord   *expression
		trailer bool
	)
	for t := range lx.All() {
		if t.Offset >= offset {
			break
		}
		if t.Kind.IsSpaceOrComment() || t.Offset < from {
			continue
		}
		switch {
		case t.Kind == tokenize.ChordStart:
			chord = &expression{start: t.Offset, relative: inRelative(lx)}
			trailer = false
		case chord != nil && t.Kind == tokenize.Pitch:
			if chord.first.Text == "" {
				chord.first = t
			}
		case chord != nil && t.Kind == tokenize.ChordEnd:
			chord.end = t.End()
			trailer = chord.first.Text != ""
			if trailer {
				last = chord
			}
			chord = nil
		case chord != nil:
		case t.Kind == tokenize.Pitch && !t.Arg:
			last = &expression{start: t.Offset, end: t.End(), first: t, relative: inRelative(lx)}
			trailer = true
		case trailer && t.Kind == tokenize.Duration:
		case trailer && (t.Kind == tokenize.ArticulationShorthand || t.Kind == tokenize.Tie || t.Is(tokenize.Command, `\rest`)):
			last.tail = append(last.tail, t.Text)
		default:
			trailer = false
		}
	}
	if last == nil {
		return "", false
	}
	first := last.first.Text
	if last.relative {
		if nt, ok := pitch.SplitNote(first); ok {
			nt.Octave, nt.OctaveCheck = "", ""
			first = nt.String()
		}
	}
	var sb strings.Builder
	sb.WriteString(text[last.start:last.first.Offset])
	sb.WriteString(first)
	sb.WriteString(text[last.first.End():last.end])
	for _, s := range last.tail {
		sb.WriteString(s)
	}
	return sb.String(), true
}

func inRelative(lx *tokenize.Lexer) bool {
	for _, p := range lx.Stack() {
		if p.Name == tokenize.Relative {
			return true
		}
	}
	return false
}
