package tokenize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/golily/pkg/lyerr"
	"github.com/walteh/golily/pkg/tokenize"
)

type tok struct {
	kind tokenize.Kind
	text string
}

func collect(tokens []tokenize.Token) []tok {
	out := make([]tok, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, tok{t.Kind, t.Text})
	}
	return out
}

func TestTokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tok
	}{
		{
			name:  "chord mode switch",
			input: "\\chordmode { c:maj7 } \n",
			expected: []tok{
				{tokenize.Command, `\chordmode`},
				{tokenize.Space, " "},
				{tokenize.OpenBracket, "{"},
				{tokenize.Space, " "},
				{tokenize.ChordRoot, "c"},
				{tokenize.ChordModifier, ":maj7"},
				{tokenize.Space, " "},
				{tokenize.CloseBracket, "}"},
				{tokenize.Space, " \n"},
			},
		},
		{
			name:  "lyrics",
			input: `\lyricmode { Ly -- rics __ }`,
			expected: []tok{
				{tokenize.Command, `\lyricmode`},
				{tokenize.Space, " "},
				{tokenize.OpenBracket, "{"},
				{tokenize.Space, " "},
				{tokenize.LyricWord, "Ly"},
				{tokenize.Space, " "},
				{tokenize.LyricHyphen, "--"},
				{tokenize.Space, " "},
				{tokenize.LyricWord, "rics"},
				{tokenize.Space, " "},
				{tokenize.LyricExtender, "__"},
				{tokenize.Space, " "},
				{tokenize.CloseBracket, "}"},
			},
		},
		{
			name:  "figures",
			input: `\figuremode { <6 4>2 }`,
			expected: []tok{
				{tokenize.Command, `\figuremode`},
				{tokenize.Space, " "},
				{tokenize.OpenBracket, "{"},
				{tokenize.Space, " "},
				{tokenize.FigureStart, "<"},
				{tokenize.Figure, "6"},
				{tokenize.Space, " "},
				{tokenize.Figure, "4"},
				{tokenize.FigureEnd, ">"},
				{tokenize.Duration, "2"},
				{tokenize.Space, " "},
				{tokenize.CloseBracket, "}"},
			},
		},
		{
			name:  "drums",
			input: `\drummode { bd4 sn }`,
			expected: []tok{
				{tokenize.Command, `\drummode`},
				{tokenize.Space, " "},
				{tokenize.OpenBracket, "{"},
				{tokenize.Space, " "},
				{tokenize.DrumNote, "bd"},
				{tokenize.Duration, "4"},
				{tokenize.Space, " "},
				{tokenize.DrumNote, "sn"},
				{tokenize.Space, " "},
				{tokenize.CloseBracket, "}"},
			},
		},
		{
			name:  "markup argument",
			input: `\markup \bold foo c4`,
			expected: []tok{
				{tokenize.Command, `\markup`},
				{tokenize.Space, " "},
				{tokenize.MarkupCommand, `\bold`},
				{tokenize.Space, " "},
				{tokenize.MarkupWord, "foo"},
				{tokenize.Space, " "},
				{tokenize.Pitch, "c"},
				{tokenize.Duration, "4"},
			},
		},
		{
			name:  "scheme expression",
			input: `#(define x 1) c`,
			expected: []tok{
				{tokenize.Scheme, "#"},
				{tokenize.SchemeOpenParen, "("},
				{tokenize.SchemeWord, "define"},
				{tokenize.Space, " "},
				{tokenize.SchemeWord, "x"},
				{tokenize.Space, " "},
				{tokenize.Number, "1"},
				{tokenize.SchemeCloseParen, ")"},
				{tokenize.Space, " "},
				{tokenize.Pitch, "c"},
			},
		},
		{
			name:  "embedded music in scheme",
			input: `#(foo #{ c4 #})`,
			expected: []tok{
				{tokenize.Scheme, "#"},
				{tokenize.SchemeOpenParen, "("},
				{tokenize.SchemeWord, "foo"},
				{tokenize.Space, " "},
				{tokenize.SchemeLilyStart, "#{"},
				{tokenize.Space, " "},
				{tokenize.Pitch, "c"},
				{tokenize.Duration, "4"},
				{tokenize.Space, " "},
				{tokenize.SchemeLilyEnd, "#}"},
				{tokenize.SchemeCloseParen, ")"},
			},
		},
		{
			name:  "relative pitch argument",
			input: `\relative c' { c4 d }`,
			expected: []tok{
				{tokenize.Command, `\relative`},
				{tokenize.Space, " "},
				{tokenize.Pitch, "c'"},
				{tokenize.Space, " "},
				{tokenize.OpenBracket, "{"},
				{tokenize.Space, " "},
				{tokenize.Pitch, "c"},
				{tokenize.Duration, "4"},
				{tokenize.Space, " "},
				{tokenize.Pitch, "d"},
				{tokenize.Space, " "},
				{tokenize.CloseBracket, "}"},
			},
		},
		{
			name:  "durations",
			input: `\partial 8 c4 \breve r\longa. s2*3/4`,
			expected: []tok{
				{tokenize.Command, `\partial`},
				{tokenize.Space, " "},
				{tokenize.Duration, "8"},
				{tokenize.Space, " "},
				{tokenize.Pitch, "c"},
				{tokenize.Duration, "4"},
				{tokenize.Space, " "},
				{tokenize.Command, `\breve`},
				{tokenize.Space, " "},
				{tokenize.Rest, "r"},
				{tokenize.Duration, `\longa.`},
				{tokenize.Space, " "},
				{tokenize.Skip, "s"},
				{tokenize.Duration, "2*3/4"},
			},
		},
		{
			name:  "chord with octave check and cautionary accidental",
			input: `<c e'? g=''>2`,
			expected: []tok{
				{tokenize.ChordStart, "<"},
				{tokenize.Pitch, "c"},
				{tokenize.Space, " "},
				{tokenize.Pitch, "e'?"},
				{tokenize.Space, " "},
				{tokenize.Pitch, "g=''"},
				{tokenize.ChordEnd, ">"},
				{tokenize.Duration, "2"},
			},
		},
		{
			name:  "context names and assignments",
			input: "melody = { c }\n\\new Staff.x = \"up\" \\melody",
			expected: []tok{
				{tokenize.Identifier, "melody"},
				{tokenize.Space, " "},
				{tokenize.Equals, "="},
				{tokenize.Space, " "},
				{tokenize.OpenBracket, "{"},
				{tokenize.Space, " "},
				{tokenize.Pitch, "c"},
				{tokenize.Space, " "},
				{tokenize.CloseBracket, "}"},
				{tokenize.Space, "\n"},
				{tokenize.Command, `\new`},
				{tokenize.Space, " "},
				{tokenize.Identifier, "Staff.x"},
				{tokenize.Space, " "},
				{tokenize.Equals, "="},
				{tokenize.Space, " "},
				{tokenize.StringStart, `"`},
				{tokenize.String, "up"},
				{tokenize.StringEnd, `"`},
				{tokenize.Space, " "},
				{tokenize.Command, `\melody`},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := tokenize.Tokens(tt.input)
			assert.Equal(t, tt.expected, collect(tokens))
			assert.Equal(t, tt.input, tokenize.Join(tokens))
		})
	}
}

func TestModeSwitchLeavesToplevel(t *testing.T) {
	lx := tokenize.Default().Lex("\\chordmode { c:maj7 } \n")
	tokens := lx.Collect()
	require.Len(t, tokens, 9)
	assert.Equal(t, []tokenize.Parser{{Name: tokenize.Toplevel}}, lx.Stack())
	assert.Equal(t, tokenize.Depth{}, lx.Depth())
	assert.Equal(t, 1, tokens[4].Depth.Bracket)
	assert.Equal(t, tokenize.Chordmode, tokens[4].Parser)
}

func TestConcatenationReproducesSource(t *testing.T) {
	inputs := []string{
		"",
		"\\version \"2.24.0\"\n\\header { title = \"Test\" }\n",
		"\\score {\n  \\new Staff \\relative c'' { c4-. d8( e) | f2\\ff ~ f }\n  \\layout { }\n}\n",
		"%{ block\n comment %}\n% line\n{ c \"a \\\" b\" #'(1 . 2) }",
		"\\markup \\column { \\line { a \\fontsize #3 b } \\italic c }",
		"x = #(define-music-function (m) (ly:music?) #{ \\transpose c d $m #})",
		"\\new Lyrics \\lyricsto \"v\" { a -- b __ _ c }",
		"\t{ éè <<  } } >> ) ",
		"{ c \"unterminated",
		"%{ never closed",
	}
	for _, in := range inputs {
		tokens := tokenize.Tokens(in)
		assert.Equal(t, in, tokenize.Join(tokens), "input %q", in)
		for i := 1; i < len(tokens); i++ {
			assert.Equal(t, tokens[i-1].End(), tokens[i].Offset, "input %q token %d", in, i)
			assert.Equal(t, tokens[i-1].Finish(), tokens[i].Start(), "input %q token %d", in, i)
		}
	}
}

func TestProblems(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
		last     tok
	}{
		{
			name:     "unterminated string",
			input:    `{ c "abc`,
			expected: lyerr.ErrUnterminatedString,
			last:     tok{tokenize.Error, `"abc`},
		},
		{
			name:     "unterminated block comment",
			input:    "c %{ abc\n d",
			expected: lyerr.ErrUnterminatedBlockComment,
			last:     tok{tokenize.Error, "%{ abc\n d"},
		},
		{
			name:     "unbalanced bracket",
			input:    `{ c } } d`,
			expected: lyerr.ErrUnbalancedBrackets,
			last:     tok{tokenize.Pitch, "d"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := tokenize.Tokens(tt.input)
			require.NotEmpty(t, tokens)
			assert.Equal(t, tt.last, collect(tokens[len(tokens)-1:])[0])
			problems := tokenize.Problems(tokens)
			require.Len(t, problems, 1)
			assert.True(t, errors.Is(problems[0], tt.expected), "got %v", problems[0])
			assert.Equal(t, tt.input, tokenize.Join(tokens))
		})
	}
}

func TestMode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected tokenize.Mode
	}{
		{"music", `{ c`, tokenize.MusicMode},
		{"lyrics", `\lyricmode { a b`, tokenize.LyricMode},
		{"chords", `\chordmode { c`, tokenize.ChordMode},
		{"drums", `\drums { bd`, tokenize.DrumMode},
		{"markup inside lyrics", `\lyricmode { a \markup \italic`, tokenize.LyricMode},
		{"left mode", `\chordmode { c } d`, tokenize.MusicMode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lx := tokenize.Default().Lex(tt.input)
			lx.Collect()
			assert.Equal(t, tt.expected, lx.Mode())
		})
	}
}

func TestRelativeTokenizer(t *testing.T) {
	lx := tokenize.DefaultRelative().Lex(`\relative c' { c4 d }`)
	tokens := lx.Collect()
	require.Len(t, tokens, 12)

	assert.Equal(t, tokenize.Toplevel, tokens[0].Parser)
	assert.True(t, tokens[2].Arg)
	assert.Equal(t, tokenize.Relative, tokens[2].Parser)
	assert.Equal(t, tokenize.Relative, tokens[6].Parser)
	assert.Equal(t, 1, tokens[6].Level)
	assert.Len(t, lx.Stack(), 1)
}

func TestResume(t *testing.T) {
	lx := tokenize.Default().Lex(`\relative c' { c`)
	lx.Collect()
	st := lx.State()
	assert.Equal(t, 1, st.Depth.Bracket)
	assert.Equal(t, st.Depth, tokenize.Default().Resume("", st).Depth())

	rest := tokenize.Default().Resume(" d }", st)
	tokens := rest.Collect()
	assert.Equal(t, []tok{
		{tokenize.Space, " "},
		{tokenize.Pitch, "d"},
		{tokenize.Space, " "},
		{tokenize.CloseBracket, "}"},
	}, collect(tokens))
	assert.Equal(t, tokenize.Depth{}, rest.Depth())
}

func TestWithRules(t *testing.T) {
	tz := tokenize.New(tokenize.WithRules(tokenize.Toplevel, tokenize.Rule{Pattern: `@@`, Kind: tokenize.Comment}))
	tokens := tz.Lex("c @@ d").Collect()
	assert.Equal(t, []tok{
		{tokenize.Pitch, "c"},
		{tokenize.Space, " "},
		{tokenize.Comment, "@@"},
		{tokenize.Space, " "},
		{tokenize.Pitch, "d"},
	}, collect(tokens))
}

func TestLanguage(t *testing.T) {
	lx := tokenize.Default().Lex("\\include \"english.ly\"\n{ cs }")
	tokens := lx.Collect()
	require.NotNil(t, lx.Language())
	assert.Equal(t, "english", lx.Language().Name)
	assert.Equal(t, tok{tokenize.Pitch, "cs"}, collect(tokens)[len(tokens)-3])

	lx = tokenize.Default().Lex(`\language "deutsch" { h }`)
	lx.Collect()
	require.NotNil(t, lx.Language())
	assert.Equal(t, "deutsch", lx.Language().Name)
}

func TestToplevelBlankLine(t *testing.T) {
	tokens := tokenize.Tokens("a = { c\n\n d }\n\nb = { e }\n")
	var blank []int
	for i, tk := range tokens {
		if tk.IsToplevelBlankLine() {
			blank = append(blank, i)
		}
	}
	require.Len(t, blank, 1)
	assert.Equal(t, "\n\n", tokens[blank[0]].Text)
	assert.Equal(t, 2, tokens[blank[0]].Line)
	assert.Equal(t, 2, tokens[blank[0]].NewlineCount())
}

func TestDrumNames(t *testing.T) {
	assert.True(t, tokenize.IsDrumName("bassdrum"))
	assert.True(t, tokenize.IsDrumName("hh"))
	assert.False(t, tokenize.IsDrumName("c"))
	names := tokenize.DrumNames()
	assert.IsNonDecreasing(t, names)
	assert.Contains(t, names, "tamb")
}
