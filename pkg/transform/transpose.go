package transform

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/golily/pkg/changes"
	"github.com/walteh/golily/pkg/pitch"
	"github.com/walteh/golily/pkg/tokenize"
)

// Transpose moves every pitch in the selection by the interval from -> to.
//
// Absolute pitches, chord-mode roots, \key pitches and both pitches of
// \transpose are transposed. \transposition is left alone. In \relative
// music the \relative pitch is transposed as an absolute pitch, so the
// written octave marks of the notes stay the same. Music in \fixed and
// \absolute is absolute, also inside \relative.
//
// A pitch that the current language cannot spell fails the whole
// transformation with lyerr.ErrQuarterToneAlterationNotAvailable.
func Transpose(ctx context.Context, text string, from, to pitch.Pitch, opts ...Option) (*changes.List, error) {
	w := &transposer{
		source:   newSource(text, newOptions(text, opts)),
		recorder: &recorder{l: changes.New(text)},
		t:        pitch.NewTransposer(from, to),
	}
	for {
		t, ok := w.next()
		if !ok {
			break
		}
		w.absolute(t)
		if w.err != nil {
			break
		}
	}
	if w.err != nil {
		return nil, errors.Errorf("transpose: %w", w.err)
	}
	zerolog.Ctx(ctx).Debug().
		Int("steps", w.t.Steps).
		Str("alter", w.t.Alter.String()).
		Int("changes", w.l.Len()).
		Msg("transposed music")
	return w.l, nil
}

type transposer struct {
	*source
	*recorder
	t pitch.Transposer
}

// next handles what is the same in absolute and relative music and returns
// the other tokens.
func (w *transposer) next() (tokenize.Token, bool) {
	for {
		t, ok := w.source.next()
		switch {
		case !ok:
			return t, false
		case t.Is(tokenize.Command, `\relative`):
			w.relative()
		case t.Is(tokenize.Command, `\fixed`, `\absolute`):
			w.unrelative(t, w.next, w.absolute)
		case t.Is(tokenize.Command, `\transposition`):
			w.argument()
		case t.Is(tokenize.Command, `\transpose`):
			for range 2 {
				if arg, ok := w.argument(); ok && w.selected(arg) {
					w.transpose(arg, nil)
				}
			}
		case t.Is(tokenize.Command, `\key`):
			if arg, ok := w.argument(); ok && w.selected(arg) {
				zero := 0
				w.transpose(arg, &zero)
			}
		default:
			return t, true
		}
	}
}

// absolute transposes a token of absolute music.
func (w *transposer) absolute(t tokenize.Token) {
	if !w.selected(t) {
		return
	}
	switch t.Kind {
	case tokenize.Pitch:
		if !t.Arg {
			w.transpose(t, nil)
		}
	case tokenize.ChordRoot:
		if n, ok := w.note(t); ok {
			w.transpose(t, &n.Pitch.Octave)
		}
	}
}

// argument returns the pitch argument following a command.
func (w *transposer) argument() (tokenize.Token, bool) {
	t, ok := w.source.next()
	return t, ok && t.Kind == tokenize.Pitch
}

// transpose rewrites the absolute pitch of t, optionally with a fixed octave.
func (w *transposer) transpose(t tokenize.Token, octave *int) {
	n, ok := w.note(t)
	if !ok {
		return
	}
	p := w.t.Transpose(n.Pitch)
	if octave != nil {
		p.Octave = *octave
	}
	w.write(t, n.Text, p, nil)
}

func (w *transposer) write(t tokenize.Token, nt pitch.NoteText, p pitch.Pitch, check *int) {
	text, err := w.language().WriteNote(nt, p, check)
	if err != nil {
		w.keep(errors.Errorf("%w: %q at line %d", err, t.Text, t.Line+1))
		return
	}
	w.replace(t, text)
}

// relPitch is an absolute pitch of relative music with its transposed copy,
// when it was transposed.
type relPitch struct {
	pitch.Pitch
	transposed *pitch.Pitch
}

func (w *transposer) relative() {
	t, ok := w.next()
	if !ok {
		return
	}
	last := relPitch{Pitch: pitch.C1()}
	if n, isPitch := w.note(t); t.Kind == tokenize.Pitch && isPitch {
		last.Pitch = n.Pitch
		if w.selected(t) {
			cp := w.t.Transpose(n.Pitch)
			last.transposed = &cp
			w.write(t, n.Text, cp, nil)
		}
		if t, ok = w.next(); !ok {
			return
		}
	}
	if t, ok = w.skipPrefixes(t, w.next, `\notemode`); !ok {
		return
	}
	switch {
	case t.Kind.IsOpen():
		for t := range w.consume(w.next) {
			switch {
			case t.Is(tokenize.Command, `\octaveCheck`):
				arg, ok := w.source.next()
				if !ok || arg.Kind != tokenize.Pitch {
					continue
				}
				n, ok := w.note(arg)
				if !ok {
					continue
				}
				last = relPitch{Pitch: n.Pitch}
				if w.selected(arg) {
					cp := w.t.Transpose(n.Pitch)
					last.transposed = &cp
					w.write(arg, n.Text, cp, nil)
				}
			case t.Kind == tokenize.ChordStart:
				last = w.relativeChord(last)
			case t.Kind == tokenize.Pitch && !t.Arg:
				last = w.relativePitch(t, last)
			}
		}
	case t.Kind == tokenize.ChordStart:
		w.relativeChord(last)
	case t.Kind == tokenize.Pitch:
		w.relativePitch(t, last)
	}
}

func (w *transposer) relativeChord(last relPitch) relPitch {
	prev, first, seen := last, last, false
	for {
		t, ok := w.next()
		if !ok || t.Kind == tokenize.ChordEnd {
			return first
		}
		if t.Kind != tokenize.Pitch {
			continue
		}
		prev = w.relativePitch(t, prev)
		if !seen {
			first, seen = prev, true
		}
	}
}

// relativePitch makes the pitch of t absolute against the untransposed last
// pitch, transposes it and writes it relative to the transposed last pitch.
func (w *transposer) relativePitch(t tokenize.Token, last relPitch) relPitch {
	n, ok := w.note(t)
	if !ok {
		return last
	}
	p := relPitch{Pitch: n.Pitch.Absolute(last.Pitch)}
	if n.Text.HasOctaveCheck() {
		p.Octave = n.Text.CheckOctave()
	}
	if !w.selected(t) {
		return p
	}
	before := last.Pitch
	if last.transposed != nil {
		before = *last.transposed
	}
	cp := w.t.Transpose(p.Pitch)
	p.transposed = &cp
	var check *int
	if n.Text.HasOctaveCheck() {
		check = &cp.Octave
	}
	w.write(t, n.Text, cp.Relative(before), check)
	return p
}
