// Package completion suggests words for the place a cursor is at in a
// LilyPond document.
package completion

import (
	"context"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// Kind says what a completion item is.
type Kind string

const (
	KindKeyword       Kind = "keyword"
	KindCommand       Kind = "command"
	KindMarkupCommand Kind = "markup"
	KindContext       Kind = "context"
	KindVariable      Kind = "variable"
	KindPitch         Kind = "pitch"
	KindMode          Kind = "mode"
	KindClef          Kind = "clef"
	KindUserVariable  Kind = "user-variable"
	KindRepeat        Kind = "repeat"
	KindDrum          Kind = "drum"
)

// Item is a single completion suggestion.
type Item struct {
	Label  string `json:"label"`
	Kind   Kind   `json:"kind"`
	Detail string `json:"detail,omitempty"`
}

// Result holds the items that may replace Text[Start:offset].
type Result struct {
	Start int    `json:"start"`
	Items []Item `json:"items"`
}

// Complete returns the suggestions for the word ending at offset.
func Complete(ctx context.Context, text string, offset int) Result {
	c := NewContext(text, offset)
	res := Result{Start: c.Start}
	if c.Silent() {
		return res
	}

	seen := map[string]bool{}
	for _, p := range providers {
		for _, it := range p(c) {
			if seen[it.Label] || !strings.HasPrefix(it.Label, c.Prefix) || it.Label == c.Prefix {
				continue
			}
			seen[it.Label] = true
			res.Items = append(res.Items, it)
		}
	}
	slices.SortFunc(res.Items, func(a, b Item) int {
		return strings.Compare(a.Label, b.Label)
	})

	zerolog.Ctx(ctx).Debug().
		Str("prefix", c.Prefix).
		Stringer("parser", c.Top()).
		Int("items", len(res.Items)).
		Msg("completion")
	return res
}
