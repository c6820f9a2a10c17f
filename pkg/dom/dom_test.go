package dom_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/golily/pkg/diff"
	"github.com/walteh/golily/pkg/dom"
	"github.com/walteh/golily/pkg/duration"
	"github.com/walteh/golily/pkg/lyerr"
	"github.com/walteh/golily/pkg/pitch"
	"github.com/walteh/golily/pkg/rational"
)

var (
	c1  = pitch.Pitch{Octave: 1}
	d   = pitch.Pitch{Step: 1}
	e   = pitch.Pitch{Step: 2}
	g   = pitch.Pitch{Step: 4}
	bes = pitch.Pitch{Step: 6, Alter: rational.New(-1, 2)}
)

func TestPrint(t *testing.T) {
	tests := []struct {
		name     string
		node     func() dom.Node
		expected string
	}{
		{
			name:     "sequential music",
			node:     func() dom.Node { return dom.NewSeq(dom.NewPitch(c1), dom.NewPitch(d)) },
			expected: "{ c' d }",
		},
		{
			name:     "empty sequential music",
			node:     func() dom.Node { return dom.NewSeq() },
			expected: "{ }",
		},
		{
			name:     "seqr drops braces around one identifier",
			node:     func() dom.Node { return dom.NewSeqr(dom.NewIdentifier("global")) },
			expected: `\global`,
		},
		{
			name:     "seqr keeps braces around two children",
			node:     func() dom.Node { return dom.NewSeqr(dom.NewIdentifier("a"), dom.NewIdentifier("b")) },
			expected: `{ \a \b }`,
		},
		{
			name:     "simr keeps brackets around text with spaces",
			node:     func() dom.Node { return dom.NewSimr(dom.NewText("c d")) },
			expected: "<< c d >>",
		},
		{
			name: "polyphony",
			node: func() dom.Node {
				return dom.NewSimPoly(dom.NewSeq(dom.NewPitch(c1)), dom.NewSeq(dom.NewPitch(e)))
			},
			expected: `<< { c' } \\ { e } >>`,
		},
		{
			name: "relative",
			node: func() dom.Node {
				return dom.NewRelative(dom.NewPitch(c1), dom.NewSeq(dom.NewPitch(e)))
			},
			expected: `\relative c' { e }`,
		},
		{
			name:     "named context",
			node:     func() dom.Node { return dom.NewContext("Staff", "right", dom.NewSeq(dom.NewText("c"))) },
			expected: `\new Staff = "right" { c }`,
		},
		{
			name: "context with block",
			node: func() dom.Node {
				st := dom.Staff(dom.NewSeq(dom.NewText("c")))
				st.With().SetString("instrumentName", "Violin")
				return st
			},
			expected: "\\new Staff \\with {\ninstrumentName = \"Violin\"\n} { c }",
		},
		{
			name: "markup",
			node: func() dom.Node {
				return dom.NewMarkup(dom.NewMarkupCmd("bold", dom.NewQuotedString("Hi")))
			},
			expected: `\markup \bold "Hi"`,
		},
		{
			name: "enclosed markup",
			node: func() dom.Node {
				return dom.NewMarkupEncl("column", dom.NewQuotedString("a"), dom.NewQuotedString("b"))
			},
			expected: `\column { "a" "b" }`,
		},
		{
			name:     "tempo",
			node:     func() dom.Node { return dom.NewTempo("Allegro", duration.New(2, 0), "120") },
			expected: `\tempo "Allegro" 4 = 120`,
		},
		{
			name:     "partial",
			node:     func() dom.Node { return dom.NewPartial(duration.New(3, 1)) },
			expected: `\partial 8.`,
		},
		{
			name:     "key signature ignores the octave",
			node:     func() dom.Node { return dom.NewKeySignature(pitch.Pitch{Octave: 1, Step: 4}, "major") },
			expected: `\key g \major`,
		},
		{
			name:     "time signature",
			node:     func() dom.Node { return dom.NewTimeSignature(6, 8) },
			expected: `\time 6/8`,
		},
		{
			name:     "plain clef",
			node:     func() dom.Node { return dom.NewClef("bass") },
			expected: `\clef bass`,
		},
		{
			name:     "quoted clef",
			node:     func() dom.Node { return dom.NewClef("treble_8") },
			expected: `\clef "treble_8"`,
		},
		{
			name:     "scheme",
			node:     func() dom.Node { return dom.NewAssignment("tagline", dom.NewScheme("#f")) },
			expected: "tagline = ##f",
		},
		{
			name:     "comment",
			node:     func() dom.Node { return dom.NewComment("two\nlines") },
			expected: "% two\n% lines",
		},
		{
			name:     "block comment",
			node:     func() dom.Node { return dom.NewBlockComment(" x ") },
			expected: "%{ x %}",
		},
		{
			name:     "transposition",
			node:     func() dom.Node { return dom.NewTransposition(dom.NewPitch(bes)) },
			expected: `\transposition bes`,
		},
		{
			name:     "input mode",
			node:     func() dom.Node { return dom.NewInputMode("chordmode", dom.NewSeq(dom.NewText("c1:m"))) },
			expected: `\chordmode { c1:m }`,
		},
		{
			name:     "lyrics to a voice",
			node:     func() dom.Node { return dom.NewLyricsTo("soprano", dom.NewIdentifier("verse")) },
			expected: `\lyricsto "soprano" \verse`,
		},
		{
			name: "lines force newlines",
			node: func() dom.Node {
				return dom.NewSeq(dom.NewLine(`\dynamicUp`), dom.NewText("c"), dom.NewNewline(), dom.NewText("d"))
			},
			expected: "{\n\\dynamicUp\nc\nd\n}",
		},
		{
			name: "blank line",
			node: func() dom.Node {
				return dom.NewBody(dom.NewText("a"), dom.NewBlankLine(), dom.NewText("b"))
			},
			expected: "a\n\nb",
		},
		{
			name: "requested newline after a node",
			node: func() dom.Node {
				id := dom.NewIdentifier("global")
				id.After = 1
				return dom.NewSeq(id, dom.NewPitch(c1))
			},
			expected: "{\n\\global\nc'\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &dom.Printer{}
			got := p.Print(tt.node())
			assert.Equal(t, tt.expected, got, diff.DiffText(tt.expected, got))
			require.NoError(t, p.Err())
		})
	}
}

func TestQuotes(t *testing.T) {
	text := `He said "hi" and 'bye', don't`

	p := &dom.Printer{TypographicalQuotes: true}
	assert.Equal(t, `"He said “hi” and ‘bye’, don’t"`, p.Print(dom.NewQuotedString(text)))

	p = &dom.Printer{}
	assert.Equal(t, `"He said \"hi\" and 'bye', don't"`, p.Print(dom.NewQuotedString(text)))
}

func TestPitchLanguage(t *testing.T) {
	fis := pitch.Pitch{Step: 3, Alter: rational.New(1, 2)}
	p := &dom.Printer{Language: pitch.MustLookup("english")}
	assert.Equal(t, "fs", p.Print(dom.NewPitch(fis)))

	quarter := pitch.Pitch{Alter: rational.New(1, 4)}
	p = &dom.Printer{Language: pitch.MustLookup("espanol")}
	assert.Equal(t, "cih", p.Print(dom.NewPitch(quarter)))
	assert.True(t, errors.Is(p.Err(), lyerr.ErrQuarterToneAlterationNotAvailable))
}

func TestDocument(t *testing.T) {
	doc := dom.NewDocument()
	header := dom.NewHeader()
	header.SetString("title", "Title")
	header.SetString("composer", "Me")

	doc.Append(
		dom.NewVersion("2.24.0"),
		dom.NewBlankLine(),
		header,
		dom.NewBlankLine(),
		dom.NewAssignment("global", dom.NewSeq(
			dom.NewKeySignature(g, "major"),
			dom.NewTimeSignature(3, 4),
		)),
		dom.NewBlankLine(),
		dom.NewScore(
			dom.NewSimr(dom.Staff(dom.NewSeqr(dom.NewIdentifier("music")))),
			dom.NewLayout(),
			dom.NewMidi(),
		),
	)

	expected := `\version "2.24.0"

\header {
  title = "Title"
  composer = "Me"
}

global = {
  \key g \major
  \time 3/4
}

\score {
  \new Staff \music
  \layout { }
  \midi { }
}
`
	got, err := doc.Render(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected, got, diff.DiffText(expected, got))
	assert.Equal(t, expected, doc.String())
}

func TestSectionVariables(t *testing.T) {
	h := dom.NewHeader()
	first := h.SetString("title", "A")
	second := h.SetString("title", "B")

	assert.Same(t, first, second)
	assert.Equal(t, 1, h.Len())

	v, ok := h.Get("title")
	require.True(t, ok)
	assert.Equal(t, "B", v.(*dom.QuotedString).Text)

	_, ok = h.Get("composer")
	assert.False(t, ok)

	assert.True(t, h.Unset("title"))
	assert.Equal(t, 0, h.Len())
}

func TestReparent(t *testing.T) {
	p := dom.NewPitch(c1)
	a := dom.NewSeq(p)
	b := dom.NewSeq()

	b.Append(p)
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 1, b.Len())
	assert.Equal(t, dom.Container(b), p.Parent())

	q := dom.NewPitch(d)
	b.Insert(0, q)
	assert.Equal(t, []dom.Node{q, p}, b.Children())

	// moving inside the same parent
	b.Insert(2, q)
	assert.Equal(t, []dom.Node{p, q}, b.Children())

	r := dom.NewPitch(e)
	assert.True(t, b.Replace(p, r))
	assert.Nil(t, p.Parent())
	assert.Equal(t, []dom.Node{r, q}, b.Children())

	assert.True(t, b.Remove(q))
	assert.False(t, b.Remove(q))
	assert.Nil(t, q.Parent())
}

func TestAppendCycle(t *testing.T) {
	outer := dom.NewSeq()
	inner := dom.NewSeq()
	outer.Append(inner)

	assert.Panics(t, func() { inner.Append(outer) })
	assert.Panics(t, func() { inner.Append(inner) })
}

func TestCopy(t *testing.T) {
	staff := dom.Staff(dom.NewSeq(dom.NewPitch(c1), dom.NewPitch(e)))
	staff.With().SetString("instrumentName", "Flute")
	score := dom.NewScore(staff)

	cp := dom.Copy(staff).(*dom.Context)
	assert.Nil(t, cp.Parent())
	assert.Equal(t, dom.Container(score), staff.Parent())

	p := &dom.Printer{}
	assert.Equal(t, p.Print(staff), p.Print(cp))

	// the copy shares no nodes with the original
	orig := staff.Children()
	copied := cp.Children()
	require.Len(t, copied, len(orig))
	for i := range orig {
		assert.NotSame(t, orig[i], copied[i])
		assert.Equal(t, dom.Container(cp), copied[i].Parent())
	}

	cp.With().SetString("instrumentName", "Piccolo")
	assert.Contains(t, p.Print(staff), "Flute")
	assert.Contains(t, p.Print(cp), "Piccolo")
}

func TestAncestors(t *testing.T) {
	p := dom.NewPitch(c1)
	seq := dom.NewSeq(p)
	staff := dom.Staff(seq)
	score := dom.NewScore(staff)

	var got []dom.Container
	for a := range dom.Ancestors(p) {
		got = append(got, a)
	}
	assert.Equal(t, []dom.Container{seq, staff, score}, got)

	s, ok := dom.Ancestor[*dom.Score](p)
	require.True(t, ok)
	assert.Same(t, score, s)

	_, ok = dom.Ancestor[*dom.Book](p)
	assert.False(t, ok)

	var n int
	for range dom.Walk(score) {
		n++
	}
	assert.Equal(t, 4, n)
}
