package score_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
	"go.uber.org/multierr"

	"github.com/walteh/golily/pkg/diff"
	"github.com/walteh/golily/pkg/score"
)

func ptr[T any](v T) *T { return &v }

func render(t *testing.T, def *score.Definition) string {
	t.Helper()
	doc, err := score.Build(context.Background(), def)
	require.NoError(t, err)
	text, err := doc.Render(context.Background())
	require.NoError(t, err)
	return text
}

func TestBuild(t *testing.T) {
	def := &score.Definition{
		Title:     ptr("Sonata"),
		Tagline:   ptr(""),
		Language:  "english",
		Key:       "g major",
		Time:      "3/4",
		Partial:   "8",
		Tempo:     "Allegro",
		Metronome: "4=120",
		Midi:      true,
		Parts: []*score.Part{
			{Kind: score.StaffPart, Instrument: "Violin", MidiInstrument: "violin", Octave: ptr(2)},
			{Kind: score.StaffPart, Instrument: "Clarinet", Transposition: "bf"},
			{Kind: score.PianoPart},
		},
	}

	expected := `\version "2.24.0"
\language "english"

\header {
  title = "Sonata"
  tagline = ##f
}

global = {
  \key g \major
  \time 3/4
  \partial 8
  \tempo "Allegro" 4 = 120
}

violin = \relative c'' {
  \global
  % Music follows here.

}

clarinet = \relative c' {
  \global
  \transposition bf
  % Music follows here.

}

right = \relative c'' {
  \global
  % Music follows here.

}

left = \relative c {
  \global
  % Music follows here.

}

\score {
  <<
    \new Staff \with {
      instrumentName = "Violin"
      midiInstrument = "violin"
    } \violin
    \new Staff \with {
      instrumentName = "Clarinet"
    } \clarinet
    \new PianoStaff \with {
      instrumentName = "Piano"
    } <<
      \new Staff = "right" \right
      \new Staff = "left" { \clef bass \left }
    >>
  >>
  \layout { }
  \midi { }
}
`
	got := render(t, def)
	assert.Equal(t, expected, got, diff.DiffText(expected, got))
}

func TestBuildChoir(t *testing.T) {
	got := render(t, &score.Definition{
		Parts: []*score.Part{{Kind: score.ChoirPart, Voices: "ST", Stanzas: 2}},
	})

	assert.Contains(t, got, "global = { }\n")
	assert.NotContains(t, got, `\header`)
	for _, want := range []string{
		"soprano = \\relative c'' {\n",
		"sopranoVerseI = \\lyricmode {\n  % Lyrics follow here.\n\n}\n",
		"sopranoVerseII = \\lyricmode {",
		"tenor = \\relative c' {\n",
		"  \\new ChoirStaff <<\n",
		"    } \\new Voice = \"soprano\" \\soprano\n",
		"    \\new Lyrics \\lyricsto \"soprano\" \\sopranoVerseI\n",
		"    \\new Lyrics \\lyricsto \"soprano\" \\sopranoVerseII\n",
		"    } \\new Voice = \"tenor\" { \\clef \"treble_8\" \\tenor }\n",
		"      instrumentName = \"Tenor\"\n",
	} {
		assert.Contains(t, got, want)
	}
	assert.NotContains(t, got, "alto")
	assert.NotContains(t, got, `\midi`)
}

func TestBuildModes(t *testing.T) {
	got := render(t, &score.Definition{
		Parts: []*score.Part{
			{Kind: score.ChordsPart},
			{Kind: score.StaffPart, Clef: "bass", Octave: ptr(-1)},
			{Kind: score.LyricsPart},
			{Kind: score.DrumsPart, Instrument: "Drums"},
		},
	})

	for _, want := range []string{
		"chordNames = \\chordmode {\n  \\global\n  % Chords follow here.\n\n}\n",
		"melody = \\relative c, {\n",
		"verse = \\lyricmode {\n",
		"drum = \\drummode {\n  \\global\n",
		"    \\new ChordNames \\chordNames\n",
		"    \\new Staff { \\clef bass \\melody }\n",
		"    \\new Lyrics \\verse\n",
		"    \\new DrumStaff \\with {\n      instrumentName = \"Drums\"\n    } \\drum\n",
	} {
		assert.Contains(t, got, want)
	}
}

func TestBuildNames(t *testing.T) {
	got := render(t, &score.Definition{
		Parts: []*score.Part{
			{Kind: score.StaffPart, Instrument: "Violin"},
			{Kind: score.StaffPart, Instrument: "Violin"},
			{Kind: score.StaffPart, Instrument: "Viola da gamba"},
			{Kind: score.StaffPart, Name: "cello"},
			{Kind: score.PianoPart, Instrument: "Organ"},
			{Kind: score.DrumsPart, Name: "percussion", Instrument: "Drum kit"},
		},
	})
	for _, want := range []string{
		"violin = ", "violinII = ", "violaDaGamba = ", "cello = ",
		"organRight = ", "organLeft = ",
		`\new Staff = "organRight" \organRight`,
		"percussion = \\drummode {",
	} {
		assert.Contains(t, got, want)
	}
}

func TestSingleStaffHasNoBrackets(t *testing.T) {
	got := render(t, &score.Definition{Parts: []*score.Part{{Kind: score.StaffPart}}})
	assert.Contains(t, got, "\\score {\n  \\new Staff \\melody\n  \\layout { }\n}\n")
}

func TestValidate(t *testing.T) {
	def := &score.Definition{
		Language:  "klingon",
		Key:       "h dur",
		Time:      "3/0",
		Partial:   "7",
		Metronome: "fast",
		Parts: []*score.Part{
			{Kind: "banjo"},
			{Kind: score.StaffPart, Name: "violin1"},
			{Kind: score.ChoirPart, Voices: "SX"},
		},
	}
	err := def.Validate()
	require.Error(t, err)
	errs := multierr.Errors(err)
	assert.Len(t, errs, 8)
	for _, e := range errs {
		assert.True(t, errors.Is(e, score.ErrInvalidDefinition), "%v", e)
	}

	_, err = score.Build(context.Background(), &score.Definition{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, score.ErrInvalidDefinition))
}

func TestLoadDefinition(t *testing.T) {
	expected := &score.Definition{
		Title:    ptr("Duet"),
		Tagline:  ptr(""),
		Key:      "d minor",
		Time:     "6/8",
		Language: "deutsch",
		Parts: []*score.Part{
			{Kind: score.StaffPart, Instrument: "Flute", Octave: ptr(2)},
			{Kind: score.StaffPart, Instrument: "Cello", Clef: "bass", Octave: ptr(0), MidiInstrument: "cello"},
		},
	}

	tests := []struct {
		name    string
		path    string
		content string
	}{
		{
			name: "hcl",
			path: "/duet.hcl",
			content: `
title    = "Duet"
tagline  = ""
key      = "d minor"
time     = "6/8"
language = "deutsch"

part "staff" {
  instrument = "Flute"
  octave     = 2
}

part "staff" {
  instrument      = "Cello"
  clef            = "bass"
  octave          = 0
  midi_instrument = "cello"
}
`,
		},
		{
			name: "yaml",
			path: "/duet.yaml",
			content: `
title: Duet
tagline: ""
key: d minor
time: 6/8
language: deutsch
parts:
  - kind: staff
    instrument: Flute
    octave: 2
  - kind: staff
    instrument: Cello
    clef: bass
    octave: 0
    midi_instrument: cello
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, tt.path, []byte(tt.content), 0o644))
			def, err := score.LoadDefinition(context.Background(), fs, tt.path)
			require.NoError(t, err)
			if d := cmp.Diff(expected, def); d != "" {
				t.Errorf("definition mismatch (-want +got):\n%s", d)
			}
			require.NoError(t, def.Validate())
		})
	}
}

func TestLoadDefinitionErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/bad.yaml", []byte("parts: []\ncolour: red\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/bad.hcl", []byte("part {}\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/unknown.hcl", []byte("part \"staff\" {\n  colour = \"red\"\n}\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/toplevel.hcl", []byte("colour = \"red\"\n"), 0o644))

	for _, p := range []string{"/bad.yaml", "/bad.hcl", "/unknown.hcl", "/toplevel.hcl", "/missing.hcl"} {
		_, err := score.LoadDefinition(context.Background(), fs, p)
		assert.Error(t, err, p)
	}
}
