package editor

import (
	"sync"

	"github.com/walteh/golily/pkg/position"
)

// Translator maps compiler positions, taken against a snapshot of a document,
// to cursors in the document as it is now.
//
//	snapshot            now
//	line 5, vcol 3 -->  revision edits --> clamp --> cursor
//	                \-> tab stops of line 5 -------/
//
// When the editor implements Revisions the snapshot holds a revision handle
// that Cancel releases. Otherwise only the TAB positions of each line are
// kept and the resolved cursor is returned as is.
type Translator struct {
	ed       Editor
	tabWidth int
	tabs     [][]int

	revs     Revisions
	revision Revision

	mu       sync.Mutex
	released bool
	once     sync.Once
}

func NewTranslator(ed Editor, tabWidth int) *Translator {
	t := &Translator{ed: ed, tabWidth: tabWidth}
	n := ed.LineCount()
	t.tabs = make([][]int, n)
	for i := 0; i < n; i++ {
		t.tabs[i] = position.TabStops(ed.Line(i))
	}
	if revs, ok := ed.(Revisions); ok {
		t.revs = revs
		t.revision = revs.CurrentRevision()
	}
	return t
}

// Cursor returns the current cursor for a zero-based line and virtual column
// of the snapshot. The result always lies inside the document.
func (t *Translator) Cursor(line, vcol int) position.Cursor {
	c := position.Cursor{Line: line}
	if line >= 0 && line < len(t.tabs) {
		c.Column = position.ResolveWithTabs(t.tabs[line], vcol, t.tabWidth)
	} else {
		c.Column = max(0, vcol)
	}

	t.mu.Lock()
	if t.revs != nil && !t.released {
		if moved, ok := t.revs.Translate(t.revision, c); ok {
			c = moved
		}
	}
	t.mu.Unlock()

	return clamp(t.ed, c)
}

// Cancel releases the revision handle. Calling it more than once is harmless.
func (t *Translator) Cancel() {
	t.once.Do(func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		t.released = true
		if t.revs != nil {
			t.revs.ReleaseRevision(t.revision)
		}
	})
}

func clamp(ed Editor, c position.Cursor) position.Cursor {
	n := ed.LineCount()
	switch {
	case n == 0 || c.Line < 0:
		return position.Cursor{}
	case c.Line >= n:
		c.Line = n - 1
		c.Column = len([]rune(ed.Line(c.Line)))
		return c
	}
	c.Column = max(0, min(c.Column, len([]rune(ed.Line(c.Line)))))
	return c
}
