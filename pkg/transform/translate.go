package transform

import (
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/golily/pkg/changes"
	"github.com/walteh/golily/pkg/pitch"
	"github.com/walteh/golily/pkg/tokenize"
)

// Translate writes every pitch in the selection in the pitch language lang.
//
// An \include of a language file or a \language statement is changed to
// name the new language. When neither was found and there is no selection, an
// \include line is added below \version, or at the top of the document.
func Translate(ctx context.Context, text string, lang string, opts ...Option) (*changes.List, error) {
	target, ok := pitch.Lookup(lang)
	if !ok {
		return nil, errors.Errorf("unknown pitch language %q", lang)
	}
	opt := newOptions(text, opts)
	w := &translator{
		source:   newSource(text, opt),
		recorder: &recorder{l: changes.New(text)},
		target:   target,
	}
	for {
		t, ok := w.next()
		if !ok || w.err != nil {
			break
		}
		if !w.selected(t) {
			continue
		}
		switch t.Kind {
		case tokenize.Pitch, tokenize.ChordRoot:
			w.translate(t)
		case tokenize.Command:
			w.statement(t)
		}
	}
	if w.err != nil {
		return nil, errors.Errorf("translate to %s: %w", target.Name, w.err)
	}
	if !w.changed && !opt.selection {
		w.addInclude(text)
		if w.err != nil {
			return nil, errors.Errorf("translate to %s: %w", target.Name, w.err)
		}
	}
	zerolog.Ctx(ctx).Debug().
		Str("language", target.Name).
		Bool("statement_changed", w.changed).
		Int("changes", w.l.Len()).
		Msg("translated pitch names")
	return w.l, nil
}

type translator struct {
	*source
	*recorder
	target  *pitch.Language
	changed bool
	version int
}

func (w *translator) translate(t tokenize.Token) {
	n, ok := w.note(t)
	if !ok {
		return
	}
	name, err := w.target.Write(n.Step, n.Alter)
	if err != nil {
		w.keep(errors.Errorf("%w: %q at line %d", err, t.Text, t.Line+1))
		return
	}
	nt := n.Text
	nt.Name = name
	w.replace(t, nt.String())
}

// statement rewrites the string argument of \include "lang.ly" and
// \language "lang" and remembers where \version ends.
func (w *translator) statement(cmd tokenize.Token) {
	name := strings.TrimPrefix(cmd.Text, `\`)
	switch name {
	case "include", "language", "version":
	default:
		return
	}
	open, ok := w.source.next()
	if !ok || open.Kind != tokenize.StringStart {
		return
	}
	var sb strings.Builder
	t := open
	for ok && t.Kind != tokenize.StringEnd {
		if t, ok = w.source.next(); ok && t.Kind != tokenize.StringEnd {
			sb.WriteString(t.Text)
		}
	}
	if !ok {
		return
	}
	content := sb.String()
	switch name {
	case "version":
		if w.version == 0 {
			w.version = t.End()
		}
	case "include":
		if lang, found := strings.CutSuffix(content, ".ly"); found {
			if _, known := pitch.Lookup(lang); known {
				w.replaceRange(open.Offset, t.End(), strconv.Quote(w.target.Name+".ly"))
			}
		}
	case "language":
		if _, known := pitch.Lookup(content); known {
			w.replaceRange(open.Offset, t.End(), strconv.Quote(w.target.Name))
		}
	}
}

func (w *translator) replaceRange(start, end int, text string) {
	w.changed = true
	w.keep(w.l.Add(start, end, text))
}

// addInclude puts an \include line on the line after \version.
func (w *translator) addInclude(text string) {
	line := `\include ` + strconv.Quote(w.target.Name+".ly") + "\n"
	if w.version == 0 {
		w.insert(0, line)
		return
	}
	nl := strings.IndexByte(text[w.version:], '\n')
	if nl < 0 {
		w.insert(len(text), "\n"+line)
		return
	}
	w.insert(w.version+nl+1, line)
}
