// Package semtok classifies the tokens of a LilyPond document for semantic
// highlighting.
package semtok

import (
	"strings"
	"unicode/utf8"

	"github.com/walteh/golily/pkg/position"
	"github.com/walteh/golily/pkg/tokenize"
	"github.com/walteh/golily/pkg/words"
)

// Tokens returns the highlighted tokens of text in document order. Tokens
// that span lines are split per line; spaces and brackets are left out.
func Tokens(text string) []Token {
	toks := tokenize.Default().Lex(text).Collect()
	var out []Token
	for i, t := range toks {
		typ, mod, ok := classify(toks, i)
		if !ok {
			continue
		}
		out = appendLines(out, t, typ, mod)
	}
	return out
}

// TokensInRange returns the tokens of text that overlap r.
func TokensInRange(text string, r position.Range) []Token {
	var out []Token
	for _, t := range Tokens(text) {
		if t.Range.End.Before(r.Start) || !t.Range.Start.Before(r.End) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func classify(toks []tokenize.Token, i int) (TokenType, TokenModifier, bool) {
	t := toks[i]
	switch t.Kind {
	case tokenize.Comment, tokenize.BlockCommentStart, tokenize.BlockComment,
		tokenize.BlockCommentEnd, tokenize.SchemeComment:
		return TokenComment, ModifierNone, true
	case tokenize.StringStart, tokenize.String, tokenize.StringEscape,
		tokenize.StringEnd, tokenize.SchemeChar, tokenize.LyricWord, tokenize.MarkupWord:
		return TokenString, ModifierNone, true
	case tokenize.Scheme, tokenize.SchemeQuote, tokenize.SchemeLilyStart, tokenize.SchemeLilyEnd:
		return TokenMacro, ModifierNone, true
	case tokenize.SchemeWord:
		if isSchemeNumber(t.Text) {
			return TokenNumber, ModifierNone, true
		}
		if i > 0 && toks[i-1].Kind == tokenize.SchemeOpenParen {
			return TokenFunction, ModifierNone, true
		}
		return TokenVariable, ModifierNone, true
	case tokenize.Number, tokenize.Fingering, tokenize.Figure:
		return TokenNumber, ModifierNone, true
	case tokenize.Duration:
		if t.Arg {
			return TokenNumber, ModifierReadonly, true
		}
		return TokenNumber, ModifierNone, true
	case tokenize.Pitch:
		if t.Arg {
			return TokenNote, ModifierReadonly, true
		}
		return TokenNote, ModifierNone, true
	case tokenize.Rest, tokenize.Skip, tokenize.ChordRoot, tokenize.DrumNote, tokenize.ChordRepeat:
		return TokenNote, ModifierNone, true
	case tokenize.ArticulationShorthand, tokenize.Direction, tokenize.Dynamic,
		tokenize.Slur, tokenize.Beam, tokenize.ChordModifier:
		return TokenDecorator, ModifierNone, true
	case tokenize.Equals, tokenize.VoiceSeparator, tokenize.BarCheck, tokenize.Tie,
		tokenize.Tremolo, tokenize.LyricHyphen, tokenize.LyricExtender, tokenize.FigureAccidental:
		return TokenOperator, ModifierNone, true
	case tokenize.MarkupCommand:
		return TokenFunction, ModifierDefaultLibrary, true
	case tokenize.Command:
		return command(strings.TrimPrefix(t.Text, `\`))
	case tokenize.Identifier:
		if words.Is(words.Contexts, t.Text) {
			return TokenContext, ModifierNone, true
		}
		if next, ok := nextSignificant(toks, i); ok && next.Kind == tokenize.Equals {
			return TokenVariable, ModifierDeclaration, true
		}
		return TokenVariable, ModifierNone, true
	}
	return 0, ModifierNone, false
}

func command(name string) (TokenType, TokenModifier, bool) {
	switch {
	case words.Is(words.Keywords, name):
		return TokenKeyword, ModifierNone, true
	case words.Is(words.Contexts, name):
		return TokenContext, ModifierNone, true
	case words.Is(words.MusicCommands, name):
		return TokenFunction, ModifierDefaultLibrary, true
	}
	return TokenVariable, ModifierNone, true
}

func nextSignificant(toks []tokenize.Token, i int) (tokenize.Token, bool) {
	for _, t := range toks[i+1:] {
		if !t.Kind.IsSpaceOrComment() {
			return t, true
		}
	}
	return tokenize.Token{}, false
}

func isSchemeNumber(s string) bool {
	s = strings.TrimLeft(s, "+-")
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' && r != '/' {
			return false
		}
	}
	return true
}

// appendLines adds t, split at newlines. Empty pieces are dropped.
func appendLines(out []Token, t tokenize.Token, typ TokenType, mod TokenModifier) []Token {
	c := t.Start()
	offset := t.Offset
	for i, piece := range strings.Split(t.Text, "\n") {
		if i > 0 {
			c = position.Cursor{Line: c.Line + 1}
		}
		if piece != "" {
			end := c
			end.Column += utf8.RuneCountInString(piece)
			out = append(out, Token{
				Type:     typ,
				Modifier: mod,
				Position: position.NewBasicPosition(piece, offset),
				Range:    position.Range{Start: c, End: end},
			})
		}
		offset += len(piece) + 1
	}
	return out
}

// Encode writes tokens in the relative five-integer form of the language
// server protocol: line delta, start delta, length, type, modifiers.
func Encode(tokens []Token) []uint32 {
	data := make([]uint32, 0, len(tokens)*5)
	var prev position.Cursor
	for _, t := range tokens {
		start := t.Range.Start
		deltaLine := start.Line - prev.Line
		deltaStart := start.Column
		if deltaLine == 0 {
			deltaStart -= prev.Column
		}
		data = append(data,
			uint32(deltaLine),
			uint32(deltaStart),
			uint32(t.Range.End.Column-start.Column),
			uint32(t.Type-1),
			uint32(t.Modifier),
		)
		prev = start
	}
	return data
}
