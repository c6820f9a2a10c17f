// Package rhythm edits the durations of LilyPond music: doubling, dotting,
// making them implicit or explicit, and copying a rhythm onto other notes.
package rhythm

import (
	"strings"

	"github.com/walteh/golily/pkg/tokenize"
)

type Option func(*options)

type options struct {
	start, end int
}

// WithSelection limits the edits to the notes that start in text[start:end].
func WithSelection(start, end int) Option {
	return func(o *options) {
		o.start, o.end = start, end
	}
}

func newOptions(text string, opts []Option) options {
	o := options{end: len(text)}
	for _, opt := range opts {
		opt(&o)
	}
	if o.end > len(text) || o.end < o.start {
		o.end = len(text)
	}
	return o
}

func (o options) contains(t tokenize.Token) bool {
	return t.Offset >= o.start && t.Offset < o.end
}

// note is something that takes a duration: a pitch, chord, rest, skip,
// \skip command, lyric syllable, chord root, drum note or figure group.
type note struct {
	tok tokenize.Token
	dur *tokenize.Token
}

// at returns the offset a duration is written at.
func (n note) at() int {
	return n.tok.End()
}

// command reports whether the note is a command such as \skip whose
// duration is mandatory.
func (n note) command() bool {
	return n.tok.Kind == tokenize.Command
}

type music struct {
	notes []*note
	// args holds the durations of \partial.
	args []tokenize.Token
}

func scan(text string) music {
	var (
		m     music
		chord int
		last  *note
		prev  tokenize.Token
	)
	for _, t := range tokenize.Default().Lex(text).Collect() {
		if t.Kind.IsSpaceOrComment() {
			continue
		}
		switch {
		case t.Kind == tokenize.ChordStart:
			chord++
		case t.Kind == tokenize.ChordEnd:
			chord--
			last = &note{tok: t}
			m.notes = append(m.notes, last)
		case chord > 0:
		case t.Kind == tokenize.ChordRoot && prev.Kind == tokenize.ChordModifier && strings.HasPrefix(prev.Text, "/"):
			// inversion of the previous chord
		case t.Kind == tokenize.Duration && t.Arg:
			if !prev.Is(tokenize.Command, `\tempo`) {
				m.args = append(m.args, t)
			}
		case t.Kind == tokenize.Duration:
			if last != nil && last.dur == nil {
				d := t
				last.dur = &d
			}
		case takesDuration(t), t.Is(tokenize.Command, `\skip`):
			last = &note{tok: t}
			m.notes = append(m.notes, last)
		default:
			last = nil
		}
		prev = t
	}
	return m
}

func takesDuration(t tokenize.Token) bool {
	switch t.Kind {
	case tokenize.Pitch:
		return !t.Arg
	case tokenize.Rest, tokenize.Skip, tokenize.ChordRepeat, tokenize.LyricWord,
		tokenize.ChordRoot, tokenize.DrumNote, tokenize.FigureEnd:
		return true
	}
	return false
}
