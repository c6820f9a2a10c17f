package tokenize

import (
	"fmt"
	"strings"

	"github.com/walteh/golily/pkg/position"
)

// Token is one lexed piece of source text. Concatenating the Text of all
// tokens of a document reproduces it exactly.
type Token struct {
	Kind Kind
	Text string

	// Offset is the byte offset of Text in the source.
	Offset int

	Line      int
	Column    int
	EndLine   int
	EndColumn int

	// Depth is the nesting at the start of the token.
	Depth Depth
	// Parser and Level describe the top of the stack that lexed the token.
	Parser ParserName
	Level  int

	// Arg marks pitches and durations that are command arguments, such as the
	// pitch after \relative or \key, or the duration after \partial.
	Arg bool

	// Problem is set on Error tokens.
	Problem error
}

// End returns the byte offset just after the token.
func (t Token) End() int {
	return t.Offset + len(t.Text)
}

func (t Token) Start() position.Cursor {
	return position.Cursor{Line: t.Line, Column: t.Column}
}

func (t Token) Finish() position.Cursor {
	return position.Cursor{Line: t.EndLine, Column: t.EndColumn}
}

func (t Token) Range() position.Range {
	return position.Range{Start: t.Start(), End: t.Finish()}
}

func (t Token) Position() position.RawPosition {
	return position.NewBasicPosition(t.Text, t.Offset)
}

// NewlineCount is the number of newlines in the token text.
func (t Token) NewlineCount() int {
	return strings.Count(t.Text, "\n")
}

// IsToplevelBlankLine reports whether the token is whitespace outside any
// music expression containing an empty line.
func (t Token) IsToplevelBlankLine() bool {
	return t.Kind == Space && t.Depth.Bracket == 0 && t.NewlineCount() >= 2
}

// Is reports whether the token has kind k and, when texts are given, one of
// those texts.
func (t Token) Is(k Kind, texts ...string) bool {
	if t.Kind != k {
		return false
	}
	if len(texts) == 0 {
		return true
	}
	for _, s := range texts {
		if t.Text == s {
			return true
		}
	}
	return false
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
}

// Problems returns the errors carried by Error tokens.
func Problems(tokens []Token) []error {
	var out []error
	for _, t := range tokens {
		if t.Kind == Error && t.Problem != nil {
			out = append(out, t.Problem)
		}
	}
	return out
}

// Join concatenates token texts.
func Join(tokens []Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.WriteString(t.Text)
	}
	return sb.String()
}
