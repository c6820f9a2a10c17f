// Package changes collects edits to a source text and applies them in one go.
package changes

import (
	"sort"
	"strings"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/golily/pkg/position"
	"github.com/walteh/golily/pkg/tokenize"
)

var ErrOverlappingChange = errors.Base("overlapping change")

// Change replaces the bytes Start..End of the source with Text.
type Change struct {
	Start int
	End   int
	Range position.Range
	Text  string
}

// Editor is what ApplyTo needs from a text buffer.
type Editor interface {
	Replace(r position.Range, text string) error
	EditBegin()
	EditEnd()
}

// List is an ordered set of disjoint changes to one source text.
type List struct {
	source  string
	index   *position.Index
	changes []Change
}

func New(source string) *List {
	return &List{source: source, index: position.NewIndex(source)}
}

// Source returns the text the changes address.
func (l *List) Source() string {
	return l.source
}

func overlaps(a, b Change) bool {
	if max(a.Start, b.Start) < min(a.End, b.End) {
		return true
	}
	// an insertion strictly inside a replaced range
	if a.Start == a.End && b.Start < a.Start && a.Start < b.End {
		return true
	}
	return b.Start == b.End && a.Start < b.Start && b.Start < a.End
}

// Add replaces source[start:end] with text. Insertions at the same offset
// keep the order they were added in.
func (l *List) Add(start, end int, text string) error {
	if start > end {
		start, end = end, start
	}
	if start < 0 || end > len(l.source) {
		return errors.Errorf("change %d-%d outside of text of length %d", start, end, len(l.source))
	}
	c := Change{
		Start: start,
		End:   end,
		Range: position.Range{Start: l.index.CursorAt(start), End: l.index.CursorAt(end)},
		Text:  text,
	}
	for _, o := range l.changes {
		if overlaps(c, o) {
			return errors.Errorf("%w: %d-%d and %d-%d", ErrOverlappingChange, start, end, o.Start, o.End)
		}
	}
	i := sort.Search(len(l.changes), func(i int) bool {
		o := l.changes[i]
		return o.Start > c.Start || (o.Start == c.Start && o.End > c.End)
	})
	l.changes = append(l.changes, Change{})
	copy(l.changes[i+1:], l.changes[i:])
	l.changes[i] = c
	return nil
}

// AddRange is Add for a cursor range of the source.
func (l *List) AddRange(r position.Range, text string) error {
	return l.Add(l.index.Offset(r.Start), l.index.Offset(r.End), text)
}

func (l *List) Insert(offset int, text string) error {
	return l.Add(offset, offset, text)
}

func (l *List) Remove(start, end int) error {
	return l.Add(start, end, "")
}

func (l *List) ReplaceToken(t tokenize.Token, text string) error {
	if t.Text == text {
		return nil
	}
	return l.Add(t.Offset, t.End(), text)
}

func (l *List) RemoveToken(t tokenize.Token) error {
	return l.Add(t.Offset, t.End(), "")
}

func (l *List) Len() int {
	return len(l.changes)
}

func (l *List) Empty() bool {
	return len(l.changes) == 0
}

// Changes returns the changes in document order.
func (l *List) Changes() []Change {
	return append([]Change{}, l.changes...)
}

// Apply returns the source with all changes made.
func (l *List) Apply() string {
	s, _ := l.ApplyToString(l.source)
	return s
}

// ApplyToString applies the changes to s, which must be at least as long as
// the furthest change.
func (l *List) ApplyToString(s string) (string, error) {
	if n := len(l.changes); n > 0 && l.changes[n-1].End > len(s) {
		return "", errors.Errorf("change ends at %d beyond text of length %d", l.changes[n-1].End, len(s))
	}
	var sb strings.Builder
	pos := 0
	for _, c := range l.changes {
		sb.WriteString(s[pos:c.Start])
		sb.WriteString(c.Text)
		pos = c.End
	}
	sb.WriteString(s[pos:])
	return sb.String(), nil
}

// ApplyTo makes the changes in ed as one edit group, last change first so
// that the ranges of earlier changes stay valid. An empty list does not touch
// the editor.
func (l *List) ApplyTo(ed Editor) error {
	if l.Empty() {
		return nil
	}
	ed.EditBegin()
	defer ed.EditEnd()
	for i := len(l.changes) - 1; i >= 0; i-- {
		c := l.changes[i]
		if err := ed.Replace(c.Range, c.Text); err != nil {
			return errors.Errorf("applying change at %s: %w", c.Range, err)
		}
	}
	return nil
}
