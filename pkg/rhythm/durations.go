package rhythm

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/golily/pkg/changes"
	"github.com/walteh/golily/pkg/duration"
	"github.com/walteh/golily/pkg/tokenize"
)

// rewrite replaces every selected duration, including the argument of
// \partial, with edit applied to it.
func rewrite(ctx context.Context, op, text string, edit func(duration.Duration) duration.Duration, opts []Option) (*changes.List, error) {
	o := newOptions(text, opts)
	m := scan(text)
	var toks []tokenize.Token
	for _, n := range m.notes {
		if n.dur != nil {
			toks = append(toks, *n.dur)
		}
	}
	toks = append(toks, m.args...)

	l := changes.New(text)
	for _, t := range toks {
		if !o.contains(t) {
			continue
		}
		d, err := duration.Parse(t.Text)
		if err != nil {
			return nil, errors.Errorf("%s: line %d: %w", op, t.Line+1, err)
		}
		if err := l.ReplaceToken(t, edit(d).String()); err != nil {
			return nil, errors.Errorf("%s: %w", op, err)
		}
	}
	zerolog.Ctx(ctx).Debug().Str("op", op).Int("changes", l.Len()).Msg("rewrote durations")
	return l, nil
}

// Double doubles every duration. See duration.Duration.Double for the
// longest and shortest values.
func Double(ctx context.Context, text string, opts ...Option) (*changes.List, error) {
	return rewrite(ctx, "double", text, duration.Duration.Double, opts)
}

func Halve(ctx context.Context, text string, opts ...Option) (*changes.List, error) {
	return rewrite(ctx, "halve", text, duration.Duration.Halve, opts)
}

func Dot(ctx context.Context, text string, opts ...Option) (*changes.List, error) {
	return rewrite(ctx, "dot", text, duration.Duration.Dot, opts)
}

// Undot removes one dot from every dotted duration.
func Undot(ctx context.Context, text string, opts ...Option) (*changes.List, error) {
	return rewrite(ctx, "undot", text, duration.Duration.Undot, opts)
}

// RemoveScaling drops the *n/m factors.
func RemoveScaling(ctx context.Context, text string, opts ...Option) (*changes.List, error) {
	return rewrite(ctx, "remove scaling", text, duration.Duration.RemoveScaling, opts)
}

// RemoveDurations deletes the durations written after notes.
func RemoveDurations(ctx context.Context, text string, opts ...Option) (*changes.List, error) {
	o := newOptions(text, opts)
	l := changes.New(text)
	for _, n := range scan(text).notes {
		if n.dur == nil || n.command() || !o.contains(n.tok) {
			continue
		}
		if err := l.Remove(n.at(), n.dur.End()); err != nil {
			return nil, errors.Errorf("remove durations: %w", err)
		}
	}
	zerolog.Ctx(ctx).Debug().Int("changes", l.Len()).Msg("removed durations")
	return l, nil
}

// MakeImplicit deletes each duration that equals the duration in effect.
func MakeImplicit(ctx context.Context, text string, opts ...Option) (*changes.List, error) {
	return implicit(ctx, text, false, opts)
}

// MakeImplicitPerLine is MakeImplicit that keeps the first duration of
// every line.
func MakeImplicitPerLine(ctx context.Context, text string, opts ...Option) (*changes.List, error) {
	return implicit(ctx, text, true, opts)
}

func implicit(ctx context.Context, text string, perLine bool, opts []Option) (*changes.List, error) {
	o := newOptions(text, opts)
	l := changes.New(text)
	var (
		current *duration.Duration
		line    = -1
	)
	for _, n := range scan(text).notes {
		if n.dur == nil || n.command() {
			continue
		}
		d, err := duration.Parse(n.dur.Text)
		if err != nil {
			return nil, errors.Errorf("make implicit: line %d: %w", n.dur.Line+1, err)
		}
		newLine := n.tok.Line != line
		line = n.tok.Line
		same := current != nil && current.String() == d.String()
		current = &d
		if !same || !o.contains(n.tok) || (perLine && newLine) {
			continue
		}
		if err := l.Remove(n.at(), n.dur.End()); err != nil {
			return nil, errors.Errorf("make implicit: %w", err)
		}
	}
	zerolog.Ctx(ctx).Debug().Bool("per_line", perLine).Int("changes", l.Len()).Msg("made durations implicit")
	return l, nil
}

// MakeExplicit writes the duration in effect after every note that has none.
// Notes before the first written duration are left alone.
func MakeExplicit(ctx context.Context, text string, opts ...Option) (*changes.List, error) {
	o := newOptions(text, opts)
	l := changes.New(text)
	current := ""
	for _, n := range scan(text).notes {
		if n.command() {
			continue
		}
		if n.dur != nil {
			current = strings.TrimSpace(n.dur.Text)
			continue
		}
		if current == "" || !o.contains(n.tok) {
			continue
		}
		if err := l.Insert(n.at(), current); err != nil {
			return nil, errors.Errorf("make explicit: %w", err)
		}
	}
	zerolog.Ctx(ctx).Debug().Int("changes", l.Len()).Msg("made durations explicit")
	return l, nil
}
