package editor

import (
	"github.com/google/uuid"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/golily/pkg/position"
)

type edit struct {
	start    position.Cursor
	end      position.Cursor
	inserted position.Cursor
}

// move maps c from before the edit to after it. Cursors inside the replaced
// text move to its start.
func (e edit) move(c position.Cursor) position.Cursor {
	switch {
	case c.Before(e.start):
		return c
	case c.Before(e.end):
		return e.start
	case c.Line == e.end.Line:
		return position.Cursor{Line: e.inserted.Line, Column: e.inserted.Column + c.Column - e.end.Column}
	}
	c.Line += e.inserted.Line - e.end.Line
	return c
}

// Buffer is an in-memory Editor that also implements Revisions. It is not
// safe for concurrent use.
type Buffer struct {
	Settings Settings

	index     *position.Index
	cursor    position.Cursor
	selection *position.Range

	history   []edit
	revisions map[Revision]int

	group int
	steps int
}

var (
	_ Editor    = (*Buffer)(nil)
	_ Revisions = (*Buffer)(nil)
)

func NewBuffer(text string) *Buffer {
	return &Buffer{
		Settings:  DefaultSettings(),
		index:     position.NewIndex(text),
		revisions: map[Revision]int{},
	}
}

func (b *Buffer) LineCount() int {
	return b.index.LineCount()
}

func (b *Buffer) Line(i int) string {
	return b.index.Line(i)
}

func (b *Buffer) Text() string {
	return b.index.Text()
}

func (b *Buffer) Insert(c position.Cursor, text string) error {
	return b.Replace(position.Range{Start: c, End: c}, text)
}

func (b *Buffer) Remove(r position.Range) error {
	return b.Replace(r, "")
}

func (b *Buffer) Replace(r position.Range, text string) error {
	if r.End.Before(r.Start) {
		return errors.Errorf("invalid range %s", r)
	}
	if b.index.Clamp(r.Start) != r.Start || b.index.Clamp(r.End) != r.End {
		return errors.Errorf("range %s outside of buffer", r)
	}
	src := b.index.Text()
	start, end := b.index.Offset(r.Start), b.index.Offset(r.End)

	inserted := r.Start
	inserted.Walk(text)
	e := edit{start: r.Start, end: r.End, inserted: inserted}
	b.history = append(b.history, e)

	b.index = position.NewIndex(src[:start] + text + src[end:])
	b.cursor = e.move(b.cursor)
	if b.selection != nil {
		sel := position.NewRange(e.move(b.selection.Start), e.move(b.selection.End))
		b.selection = &sel
	}
	if b.group == 0 {
		b.steps++
	}
	return nil
}

func (b *Buffer) EditBegin() {
	b.group++
}

func (b *Buffer) EditEnd() {
	if b.group == 0 {
		return
	}
	b.group--
	if b.group == 0 {
		b.steps++
	}
}

// UndoSteps counts the completed edit groups and ungrouped edits.
func (b *Buffer) UndoSteps() int {
	return b.steps
}

func (b *Buffer) CursorPosition() position.Cursor {
	return b.cursor
}

func (b *Buffer) SetCursor(c position.Cursor) {
	b.cursor = b.index.Clamp(c)
}

func (b *Buffer) Selection() (position.Range, bool) {
	if b.selection == nil {
		return position.Range{}, false
	}
	return *b.selection, true
}

func (b *Buffer) SetSelection(r position.Range) {
	r = position.NewRange(b.index.Clamp(r.Start), b.index.Clamp(r.End))
	b.selection = &r
	b.cursor = r.End
}

// ClearSelection drops the selection.
func (b *Buffer) ClearSelection() {
	b.selection = nil
}

func (b *Buffer) CurrentRevision() Revision {
	r := Revision(uuid.New())
	b.revisions[r] = len(b.history)
	return r
}

func (b *Buffer) ReleaseRevision(r Revision) {
	delete(b.revisions, r)
}

func (b *Buffer) Translate(r Revision, c position.Cursor) (position.Cursor, bool) {
	at, ok := b.revisions[r]
	if !ok {
		return c, false
	}
	for _, e := range b.history[at:] {
		c = e.move(c)
	}
	return c, true
}

// OpenRevisions returns the number of unreleased revisions.
func (b *Buffer) OpenRevisions() int {
	return len(b.revisions)
}
