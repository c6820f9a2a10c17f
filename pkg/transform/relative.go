package transform

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/golily/pkg/changes"
	"github.com/walteh/golily/pkg/lyerr"
	"github.com/walteh/golily/pkg/pitch"
	"github.com/walteh/golily/pkg/tokenize"
)

// RelativeToAbsolute rewrites every \relative expression with absolute
// pitches and removes the \relative command and its pitch.
//
// Pitches in a chord are relative to the previous pitch of the chord, and the
// pitch after a chord is relative to its first pitch. Music in \fixed and
// \absolute is left alone and does not move the reference pitch.
func RelativeToAbsolute(ctx context.Context, text string, opts ...Option) (*changes.List, error) {
	w := &relToAbs{
		source:   newSource(text, newOptions(text, opts)),
		recorder: &recorder{l: changes.New(text)},
		ctx:      ctx,
	}
	w.skipToSelection()
	for {
		if _, ok := w.next(); !ok {
			break
		}
	}
	if w.err != nil {
		return nil, errors.Errorf("relative to absolute: %w", w.err)
	}
	zerolog.Ctx(ctx).Debug().Int("expressions", w.count).Int("changes", w.l.Len()).Msg("converted relative music to absolute")
	return w.l, nil
}

type relToAbs struct {
	*source
	*recorder
	ctx   context.Context
	count int
}

func (w *relToAbs) next() (tokenize.Token, bool) {
	for {
		t, ok := w.source.next()
		switch {
		case !ok:
			return t, false
		case t.Is(tokenize.Command, `\relative`):
			w.relative(t)
		case t.Is(tokenize.MarkupCommand, `\score`):
			if open, ok := w.next(); ok && open.Kind.IsOpen() {
				for range w.consume(w.next) {
				}
			}
		default:
			return t, true
		}
	}
}

func (w *relToAbs) relative(cmd tokenize.Token) {
	w.count++
	t, ok := w.next()
	if !ok {
		return
	}
	last := pitch.C1()
	if n, isPitch := w.note(t); t.Kind == tokenize.Pitch && isPitch {
		last = n.Pitch
		if t, ok = w.next(); !ok {
			return
		}
	} else {
		zerolog.Ctx(w.ctx).Warn().Int("line", cmd.Line).Msg(`\relative without a pitch, assuming c'`)
	}
	w.remove(cmd.Offset, t.Offset)

	if t, ok = w.skipPrefixes(t, w.next, `\chordmode`, `\chords`, `\notemode`); !ok {
		return
	}
	switch {
	case t.Kind.IsOpen():
		for t := range w.consume(w.next) {
			switch {
			case t.Is(tokenize.Command, `\octaveCheck`):
				arg, ok := w.next()
				if !ok || arg.Kind != tokenize.Pitch {
					continue
				}
				if n, ok := w.note(arg); ok {
					last = n.Pitch
					w.remove(t.Offset, arg.End())
				}
			case t.Is(tokenize.Command, `\fixed`, `\absolute`):
				w.unrelative(t, w.next, func(tokenize.Token) {})
			case t.Kind == tokenize.ChordStart:
				last = w.chord(last)
			case t.Kind == tokenize.Pitch && !t.Arg:
				last = w.absolute(t, last)
			}
		}
	case t.Kind == tokenize.ChordStart:
		w.chord(last)
	case t.Kind == tokenize.Pitch:
		w.absolute(t, last)
	}
}

// chord converts the pitches up to the end of a chord and returns the first.
func (w *relToAbs) chord(last pitch.Pitch) pitch.Pitch {
	prev, first, seen := last, last, false
	for {
		t, ok := w.next()
		if !ok || t.Kind == tokenize.ChordEnd {
			return first
		}
		if t.Kind != tokenize.Pitch {
			continue
		}
		prev = w.absolute(t, prev)
		if !seen {
			first, seen = prev, true
		}
	}
}

// absolute writes the pitch of t as an absolute pitch and returns it. An
// octave check fixes the octave of the result and is dropped.
func (w *relToAbs) absolute(t tokenize.Token, last pitch.Pitch) pitch.Pitch {
	n, ok := w.note(t)
	if !ok {
		return last
	}
	p := n.Pitch.Absolute(last)
	if n.Text.HasOctaveCheck() {
		p.Octave = n.Text.CheckOctave()
	}
	w.replace(t, written(n.Text, p.Octave))
	return p
}

// AbsoluteToRelative wraps every music expression outside \relative in a
// \relative command whose pitch is near the first pitch of the expression,
// and rewrites the pitches with relative octave marks. It fails with
// lyerr.ErrNoMusicExpressionFound when there is no expression to convert.
func AbsoluteToRelative(ctx context.Context, text string, opts ...Option) (*changes.List, error) {
	w := &absToRel{
		source:   newSource(text, newOptions(text, opts)),
		recorder: &recorder{l: changes.New(text)},
	}
	w.skipToSelection()
	found := 0
	container := false
	for {
		t, ok := w.next()
		if !ok {
			break
		}
		switch {
		case t.Is(tokenize.Command, `\score`, `\book`, `\bookpart`):
			container = true
		case t.Kind.IsOpen() && container:
			// the music inside is toplevel
			container = false
		case t.Kind.IsOpen():
			found++
			w.expression(t)
		}
	}
	if found == 0 {
		return nil, errors.WithStack(lyerr.ErrNoMusicExpressionFound)
	}
	if w.err != nil {
		return nil, errors.Errorf("absolute to relative: %w", w.err)
	}
	zerolog.Ctx(ctx).Debug().Int("expressions", found).Int("changes", w.l.Len()).Msg("converted absolute music to relative")
	return w.l, nil
}

type absToRel struct {
	*source
	*recorder
}

// next leaves music that is not absolute alone: \relative and \fixed
// expressions, chord mode, sections and \score inside markup.
func (w *absToRel) next() (tokenize.Token, bool) {
	for {
		t, ok := w.source.next()
		switch {
		case !ok:
			return t, false
		case t.Is(tokenize.Command, `\relative`, `\fixed`):
			w.skip(true)
		case t.Is(tokenize.Command, `\chordmode`, `\chords`, `\header`, `\paper`, `\layout`, `\midi`, `\with`),
			t.Is(tokenize.MarkupCommand, `\score`):
			w.skip(false)
		default:
			return t, true
		}
	}
}

// skip passes over the argument of a command, optionally preceded by a pitch.
func (w *absToRel) skip(withPitch bool) {
	t, ok := w.source.next()
	if ok && withPitch && t.Kind == tokenize.Pitch {
		t, ok = w.source.next()
	}
	if !ok {
		return
	}
	t, ok = w.skipPrefixes(t, w.source.next)
	switch {
	case !ok:
	case t.Kind.IsOpen():
		for range w.consume(w.source.next) {
		}
	case t.Kind == tokenize.ChordStart:
		for ok && t.Kind != tokenize.ChordEnd {
			t, ok = w.source.next()
		}
	}
}

func (w *absToRel) expression(open tokenize.Token) {
	var (
		last    pitch.Pitch
		started bool
		chord   bool
		first   *pitch.Pitch
	)
	for t := range w.consume(w.next) {
		switch {
		case t.Kind == tokenize.ChordStart:
			chord, first = true, nil
		case t.Kind == tokenize.ChordEnd:
			if first != nil {
				last = *first
			}
			chord = false
		case t.Kind == tokenize.Pitch && !t.Arg:
			n, ok := w.note(t)
			if !ok {
				continue
			}
			p := n.Pitch
			if !started {
				started = true
				last = pitch.C1()
				last.Octave = p.Octave
				if p.Step > 3 {
					last.Octave++
				}
				ref, err := w.language().Format(last)
				if err != nil {
					w.keep(err)
					continue
				}
				w.insert(open.Offset, `\relative `+ref+" ")
			}
			w.replace(t, written(n.Text, p.Relative(last).Octave))
			last = p
			if chord && first == nil {
				first = &p
			}
		}
	}
}
