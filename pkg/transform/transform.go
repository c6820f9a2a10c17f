// Package transform rewrites LilyPond source through the tokenizer. Every
// transformation reads the whole document and returns a change list that
// addresses it, so a selection never shifts line or column arithmetic.
package transform

import (
	"iter"

	"github.com/walteh/golily/pkg/changes"
	"github.com/walteh/golily/pkg/pitch"
	"github.com/walteh/golily/pkg/tokenize"
)

type Option func(*options)

type options struct {
	start, end int
	selection  bool
	language   *pitch.Language
	mode       *tokenize.Mode
}

// WithSelection limits a transformation to the tokens that start in
// text[start:end]. The text before start is still lexed to track the state.
func WithSelection(start, end int) Option {
	return func(o *options) {
		o.start, o.end = start, end
		o.selection = true
	}
}

// WithLanguage reads pitches in the named language instead of the one the
// document selects. Unknown names are ignored.
func WithLanguage(name string) Option {
	return func(o *options) {
		if l, ok := pitch.Lookup(name); ok {
			o.language = l
		}
	}
}

// WithInputMode overrides the input mode detected from the document.
func WithInputMode(m tokenize.Mode) Option {
	return func(o *options) {
		o.mode = &m
	}
}

func newOptions(text string, opts []Option) *options {
	o := &options{end: len(text)}
	for _, opt := range opts {
		opt(o)
	}
	if o.end > len(text) || o.end < o.start {
		o.end = len(text)
	}
	return o
}

// source hands out the music tokens of a document, skipping whitespace and
// comments. Tokens that start at or after the end of the selection are never
// returned.
type source struct {
	lx  *tokenize.Lexer
	opt *options
}

func newSource(text string, opt *options) *source {
	return &source{lx: tokenize.Default().Lex(text), opt: opt}
}

func (s *source) next() (tokenize.Token, bool) {
	for {
		t, ok := s.lx.Next()
		if !ok || t.Offset >= s.opt.end {
			return tokenize.Token{}, false
		}
		if t.Kind.IsSpaceOrComment() {
			continue
		}
		return t, true
	}
}

// skipToSelection drops the tokens before the selection, keeping the lexer
// state they produce.
func (s *source) skipToSelection() {
	for s.lx.Offset() < s.opt.start {
		if _, ok := s.lx.Next(); !ok {
			return
		}
	}
}

func (s *source) selected(t tokenize.Token) bool {
	return t.Offset >= s.opt.start
}

func (s *source) depth() int {
	return s.lx.Depth().Bracket
}

// language is the pitch language in effect at the current token.
func (s *source) language() *pitch.Language {
	if s.opt.language != nil {
		return s.opt.language
	}
	if l := s.lx.Language(); l != nil {
		return l
	}
	return pitch.Default()
}

func (s *source) note(t tokenize.Token) (pitch.Note, bool) {
	return s.language().ReadNote(t.Text)
}

// consume yields the tokens next returns until the bracket depth drops below
// the depth at the time of the call.
func (s *source) consume(next func() (tokenize.Token, bool)) iter.Seq[tokenize.Token] {
	return func(yield func(tokenize.Token) bool) {
		d := s.depth()
		for {
			t, ok := next()
			if !ok || !yield(t) {
				return
			}
			if s.depth() < d {
				return
			}
		}
	}
}

// skipArgument skips one argument token, or a whole quoted string.
func skipArgument(next func() (tokenize.Token, bool)) {
	t, ok := next()
	if !ok || t.Kind != tokenize.StringStart {
		return
	}
	for ok && t.Kind != tokenize.StringEnd {
		t, ok = next()
	}
}

// skipPrefixes passes over \new Staff = "name" \with { } and mode commands
// in front of a music expression and returns the first token after them.
func (s *source) skipPrefixes(t tokenize.Token, next func() (tokenize.Token, bool), modes ...string) (tokenize.Token, bool) {
	ok := true
	for ok {
		switch {
		case t.Is(tokenize.Command, `\new`, `\context`):
			skipArgument(next)
			t, ok = next()
			if ok && t.Kind == tokenize.Equals {
				skipArgument(next)
				t, ok = next()
			}
		case t.Is(tokenize.Command, `\with`):
			if open, more := next(); more && open.Kind.IsOpen() {
				for range s.consume(next) {
				}
			}
			t, ok = next()
		case len(modes) > 0 && t.Is(tokenize.Command, modes...):
			t, ok = next()
		default:
			return t, true
		}
	}
	return t, false
}

// unrelative passes over the music of \fixed or \absolute, handing each of
// its tokens to f. The pitch of \fixed is skipped.
func (s *source) unrelative(cmd tokenize.Token, next func() (tokenize.Token, bool), f func(tokenize.Token)) {
	t, ok := next()
	if ok && cmd.Is(tokenize.Command, `\fixed`) && t.Kind == tokenize.Pitch {
		t, ok = next()
	}
	if !ok {
		return
	}
	if t, ok = s.skipPrefixes(t, next, `\notemode`); !ok {
		return
	}
	switch {
	case t.Kind.IsOpen():
		for t := range s.consume(next) {
			f(t)
		}
	case t.Kind == tokenize.ChordStart:
		for ok && t.Kind != tokenize.ChordEnd {
			f(t)
			t, ok = next()
		}
	default:
		f(t)
	}
}

// written renders a note with its name and cautionary mark kept and its
// octave marks replaced.
func written(nt pitch.NoteText, octave int) string {
	return pitch.NoteText{Name: nt.Name, Cautionary: nt.Cautionary, Octave: pitch.OctaveString(octave)}.String()
}

// recorder keeps the first error of a walk over a change list.
type recorder struct {
	l   *changes.List
	err error
}

func (r *recorder) keep(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *recorder) replace(t tokenize.Token, text string) {
	r.keep(r.l.ReplaceToken(t, text))
}

func (r *recorder) remove(start, end int) {
	r.keep(r.l.Remove(start, end))
}

func (r *recorder) insert(offset int, text string) {
	r.keep(r.l.Insert(offset, text))
}
