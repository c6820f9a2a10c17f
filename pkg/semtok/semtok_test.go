package semtok_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/golily/pkg/position"
	"github.com/walteh/golily/pkg/semtok"
)

type kinded struct {
	text     string
	typ      semtok.TokenType
	modifier semtok.TokenModifier
}

func summarize(tokens []semtok.Token) []kinded {
	out := make([]kinded, len(tokens))
	for i, t := range tokens {
		out[i] = kinded{t.Position.Text, t.Type, t.Modifier}
	}
	return out
}

func TestTokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []kinded
	}{
		{
			name:  "assignment with relative music",
			input: "melody = \\relative c' { c4-. d\\f }",
			expected: []kinded{
				{"melody", semtok.TokenVariable, semtok.ModifierDeclaration},
				{"=", semtok.TokenOperator, semtok.ModifierNone},
				{`\relative`, semtok.TokenFunction, semtok.ModifierDefaultLibrary},
				{"c'", semtok.TokenNote, semtok.ModifierReadonly},
				{"c", semtok.TokenNote, semtok.ModifierNone},
				{"4", semtok.TokenNumber, semtok.ModifierNone},
				{"-.", semtok.TokenDecorator, semtok.ModifierNone},
				{"d", semtok.TokenNote, semtok.ModifierNone},
				{`\f`, semtok.TokenDecorator, semtok.ModifierNone},
			},
		},
		{
			name:  "keywords and variables",
			input: "\\score { \\new Staff \\melody }",
			expected: []kinded{
				{`\score`, semtok.TokenKeyword, semtok.ModifierNone},
				{`\new`, semtok.TokenFunction, semtok.ModifierDefaultLibrary},
				{"Staff", semtok.TokenContext, semtok.ModifierNone},
				{`\melody`, semtok.TokenVariable, semtok.ModifierNone},
			},
		},
		{
			name:  "lyrics",
			input: `\lyricmode { Ly -- rics }`,
			expected: []kinded{
				{`\lyricmode`, semtok.TokenFunction, semtok.ModifierDefaultLibrary},
				{"Ly", semtok.TokenString, semtok.ModifierNone},
				{"--", semtok.TokenOperator, semtok.ModifierNone},
				{"rics", semtok.TokenString, semtok.ModifierNone},
			},
		},
		{
			name:  "markup",
			input: `\markup \bold foo`,
			expected: []kinded{
				{`\markup`, semtok.TokenFunction, semtok.ModifierDefaultLibrary},
				{`\bold`, semtok.TokenFunction, semtok.ModifierDefaultLibrary},
				{"foo", semtok.TokenString, semtok.ModifierNone},
			},
		},
		{
			name:  "comment",
			input: "% hello\nc",
			expected: []kinded{
				{"% hello", semtok.TokenComment, semtok.ModifierNone},
				{"c", semtok.TokenNote, semtok.ModifierNone},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, summarize(semtok.Tokens(tt.input)))
		})
	}
}

func TestTokensArePerLine(t *testing.T) {
	text := "%{ one\ntwo %}\n{ c }"
	tokens := semtok.Tokens(text)
	require.NotEmpty(t, tokens)
	for _, tok := range tokens {
		assert.Equal(t, tok.Range.Start.Line, tok.Range.End.Line, tok.Position.Text)
		assert.NotContains(t, tok.Position.Text, "\n")
		assert.Equal(t, tok.Position.Text, text[tok.Position.Offset:tok.Position.End()])
	}
	last := tokens[len(tokens)-1]
	assert.Equal(t, position.Range{Start: position.Cursor{Line: 2, Column: 2}, End: position.Cursor{Line: 2, Column: 3}}, last.Range)
}

func TestTokensInRange(t *testing.T) {
	text := "a = { c }\n% note\nb = { d }\n"
	r := position.Range{Start: position.Cursor{Line: 1}, End: position.Cursor{Line: 2}}
	got := semtok.TokensInRange(text, r)
	require.Len(t, got, 1)
	assert.Equal(t, semtok.TokenComment, got[0].Type)
}

func TestEncode(t *testing.T) {
	tokens := []semtok.Token{
		{Type: semtok.TokenKeyword, Range: position.Range{Start: position.Cursor{Line: 0, Column: 0}, End: position.Cursor{Line: 0, Column: 6}}},
		{Type: semtok.TokenNote, Modifier: semtok.ModifierReadonly, Range: position.Range{Start: position.Cursor{Line: 0, Column: 10}, End: position.Cursor{Line: 0, Column: 12}}},
		{Type: semtok.TokenComment, Range: position.Range{Start: position.Cursor{Line: 2, Column: 4}, End: position.Cursor{Line: 2, Column: 9}}},
	}
	assert.Equal(t, []uint32{
		0, 0, 6, 2, 0,
		0, 10, 2, 7, 2,
		2, 4, 5, 5, 0,
	}, semtok.Encode(tokens))
}

func TestLegend(t *testing.T) {
	types, modifiers := semtok.Legend()
	require.Len(t, types, 11)
	assert.Equal(t, "variable", types[semtok.TokenVariable-1])
	assert.Equal(t, "enumMember", types[semtok.TokenNote-1])
	assert.Equal(t, []string{"declaration", "readonly", "defaultLibrary"}, modifiers)
	assert.Equal(t, "type", semtok.TokenContext.String())
}
