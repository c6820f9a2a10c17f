package rhythm

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/golily/pkg/changes"
	"github.com/walteh/golily/pkg/duration"
)

var ErrEmptyRhythm = errors.Base("empty rhythm")

// ParseRhythm splits a rhythm such as "8. 16 8" into durations.
func ParseRhythm(s string) ([]string, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, errors.WithStack(ErrEmptyRhythm)
	}
	for _, f := range fields {
		if _, err := duration.Parse(f); err != nil {
			return nil, errors.Errorf("rhythm %q: %w", s, err)
		}
	}
	return fields, nil
}

// Extract returns the durations written after the selected notes, in order.
func Extract(text string, opts ...Option) []string {
	o := newOptions(text, opts)
	var out []string
	for _, n := range scan(text).notes {
		if n.dur != nil && o.contains(n.tok) {
			out = append(out, n.dur.Text)
		}
	}
	return out
}

// Apply gives the i-th selected note the duration rhythm[i % len(rhythm)].
// Notes without a duration get one written after them.
func Apply(ctx context.Context, text string, rhythm []string, opts ...Option) (*changes.List, error) {
	if len(rhythm) == 0 {
		return nil, errors.WithStack(ErrEmptyRhythm)
	}
	for _, r := range rhythm {
		if _, err := duration.Parse(r); err != nil {
			return nil, errors.Errorf("apply rhythm: %w", err)
		}
	}
	o := newOptions(text, opts)
	l := changes.New(text)
	i := 0
	for _, n := range scan(text).notes {
		if !o.contains(n.tok) {
			continue
		}
		r := rhythm[i%len(rhythm)]
		i++
		end := n.at()
		if n.dur != nil {
			end = n.dur.End()
		}
		if text[n.at():end] == r {
			continue
		}
		if err := l.Add(n.at(), end, r); err != nil {
			return nil, errors.Errorf("apply rhythm: %w", err)
		}
	}
	zerolog.Ctx(ctx).Debug().Int("notes", i).Strs("rhythm", rhythm).Msg("applied rhythm")
	return l, nil
}
