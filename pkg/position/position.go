// Package position converts between byte offsets, line/column cursors and the
// virtual columns reported by the LilyPond compiler.
package position

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"
)

// Cursor is a zero-based line and column. Column counts characters, not bytes
// and not display cells.
type Cursor struct {
	Line   int
	Column int
}

// Walk advances the cursor past text.
func (c *Cursor) Walk(text string) {
	if n := strings.Count(text, "\n"); n > 0 {
		c.Line += n
		c.Column = utf8.RuneCountInString(text[strings.LastIndexByte(text, '\n')+1:])
		return
	}
	c.Column += utf8.RuneCountInString(text)
}

// Compare orders cursors lexicographically by line then column.
func (c Cursor) Compare(o Cursor) int {
	switch {
	case c.Line < o.Line:
		return -1
	case c.Line > o.Line:
		return 1
	case c.Column < o.Column:
		return -1
	case c.Column > o.Column:
		return 1
	}
	return 0
}

func (c Cursor) Before(o Cursor) bool {
	return c.Compare(o) < 0
}

func (c Cursor) String() string {
	return fmt.Sprintf("%d:%d", c.Line, c.Column)
}

// ParseCursor reads the line:column form String writes. A bare line number
// means column 0.
func ParseCursor(s string) (Cursor, error) {
	line, col, found := strings.Cut(strings.TrimSpace(s), ":")
	var c Cursor
	var err error
	if c.Line, err = strconv.Atoi(line); err != nil || c.Line < 0 {
		return Cursor{}, errors.Errorf("invalid cursor %q", s)
	}
	if found {
		if c.Column, err = strconv.Atoi(col); err != nil || c.Column < 0 {
			return Cursor{}, errors.Errorf("invalid cursor %q", s)
		}
	}
	return c, nil
}

// Range is a span between two cursors with Start <= End.
type Range struct {
	Start Cursor
	End   Cursor
}

// NewRange orders a and b.
func NewRange(a, b Cursor) Range {
	if b.Before(a) {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

func (r Range) Empty() bool {
	return r.Start == r.End
}

// Contains reports whether c lies in [Start, End).
func (r Range) Contains(c Cursor) bool {
	return !c.Before(r.Start) && c.Before(r.End)
}

func (r Range) String() string {
	return r.Start.String() + "-" + r.End.String()
}

// RawPosition represents a position in the source text
type RawPosition struct {
	// Offset is the byte offset in the source text
	Offset int
	// Text is the actual text at this position
	Text string
}

func NewBasicPosition(text string, offset int) RawPosition {
	return RawPosition{Text: text, Offset: offset}
}

// ID returns a unique identifier for this position based on offset and text
func (p RawPosition) ID() string {
	return fmt.Sprintf("%s@%d", p.Text, p.Offset)
}

func (p RawPosition) Length() int {
	return len(p.Text)
}

// End returns the byte offset just after the text.
func (p RawPosition) End() int {
	return p.Offset + len(p.Text)
}

func (p RawPosition) HasRangeOverlapWith(start RawPosition) bool {
	startOffset := start.Offset
	endOffset := start.End()

	posOffset := p.Offset
	posEndOffset := p.End()

	// A zero-length position overlaps if it falls within the other range
	if p.Length() == 0 {
		return posOffset >= startOffset && posOffset <= endOffset
	}
	if start.Length() == 0 {
		return startOffset >= posOffset && startOffset <= posEndOffset
	}

	return startOffset < posEndOffset && endOffset > posOffset
}

// Range returns the cursor range the position covers in the indexed text.
func (p RawPosition) Range(ix *Index) Range {
	return Range{Start: ix.CursorAt(p.Offset), End: ix.CursorAt(p.End())}
}

func (p RawPosition) String() string {
	return p.ID()
}

// Index maps between byte offsets and cursors of one text.
type Index struct {
	text   string
	starts []int
}

func NewIndex(text string) *Index {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Index{text: text, starts: starts}
}

func (ix *Index) Text() string {
	return ix.text
}

func (ix *Index) LineCount() int {
	return len(ix.starts)
}

// LineStart returns the byte offset of line i.
func (ix *Index) LineStart(i int) int {
	return ix.starts[i]
}

// Line returns line i without its newline.
func (ix *Index) Line(i int) string {
	if i < 0 || i >= len(ix.starts) {
		return ""
	}
	end := len(ix.text)
	if i+1 < len(ix.starts) {
		end = ix.starts[i+1] - 1
	}
	return ix.text[ix.starts[i]:end]
}

// CursorAt converts a byte offset, clamped to the text.
func (ix *Index) CursorAt(offset int) Cursor {
	offset = max(0, min(offset, len(ix.text)))
	line := sort.Search(len(ix.starts), func(i int) bool { return ix.starts[i] > offset }) - 1
	return Cursor{Line: line, Column: utf8.RuneCountInString(ix.text[ix.starts[line]:offset])}
}

// Clamp moves c onto the nearest existing position.
func (ix *Index) Clamp(c Cursor) Cursor {
	if c.Line < 0 {
		return Cursor{}
	}
	if c.Line >= len(ix.starts) {
		last := len(ix.starts) - 1
		return Cursor{Line: last, Column: utf8.RuneCountInString(ix.Line(last))}
	}
	c.Column = max(0, min(c.Column, utf8.RuneCountInString(ix.Line(c.Line))))
	return c
}

// Offset converts a cursor to a byte offset. Cursors outside the text are
// clamped first.
func (ix *Index) Offset(c Cursor) int {
	c = ix.Clamp(c)
	line := ix.Line(c.Line)
	off := ix.starts[c.Line]
	col := 0
	for i := range line {
		if col == c.Column {
			return off + i
		}
		col++
	}
	return off + len(line)
}
