// Package editor defines the text editor surface the transformations work
// against, an in-memory implementation of it, and the cursor translator used
// to follow compiler diagnostics across edits.
package editor

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/walteh/golily/pkg/changes"
	"github.com/walteh/golily/pkg/position"
)

// Editor is a line-oriented text buffer with a cursor and a selection.
type Editor interface {
	LineCount() int
	Line(i int) string
	Text() string

	Insert(c position.Cursor, text string) error
	Remove(r position.Range) error
	Replace(r position.Range, text string) error

	// EditBegin and EditEnd group the edits between them into one undo step.
	EditBegin()
	EditEnd()

	CursorPosition() position.Cursor
	SetCursor(c position.Cursor)
	Selection() (position.Range, bool)
	SetSelection(r position.Range)
}

// Revision identifies a state of a buffer.
type Revision uuid.UUID

func (r Revision) String() string {
	return uuid.UUID(r).String()
}

// Revisions is implemented by editors that can map cursors from an earlier
// state of the buffer to the current one.
type Revisions interface {
	CurrentRevision() Revision
	ReleaseRevision(r Revision)
	// Translate reports false when the revision is unknown or released.
	Translate(r Revision, c position.Cursor) (position.Cursor, bool)
}

// Settings are the per-document editing preferences.
type Settings struct {
	TabWidth    int
	IndentWidth int
	UseTabs     bool
	// InputModeOverride forces the input mode used by cut-and-assign.
	InputModeOverride string
}

func DefaultSettings() Settings {
	return Settings{TabWidth: 8, IndentWidth: 2}
}

// ApplyChanges makes the changes in ed as a single undo step.
func ApplyChanges(ctx context.Context, ed Editor, l *changes.List) error {
	if l.Empty() {
		zerolog.Ctx(ctx).Debug().Msg("no changes to apply")
		return nil
	}
	zerolog.Ctx(ctx).Debug().Int("changes", l.Len()).Msg("applying changes")
	return l.ApplyTo(ed)
}
