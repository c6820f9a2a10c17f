package editor_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/golily/pkg/changes"
	"github.com/walteh/golily/pkg/editor"
	"github.com/walteh/golily/pkg/position"
)

// plain hides the Revisions methods of a Buffer.
type plain struct {
	editor.Editor
}

func sixLines() string {
	return strings.Repeat("abcdefgh\n", 6)
}

func TestTranslatorFollowsEdits(t *testing.T) {
	tests := []struct {
		name     string
		revs     bool
		expected position.Cursor
	}{
		{name: "with revisions", revs: true, expected: position.Cursor{Line: 6, Column: 3}},
		{name: "without revisions", revs: false, expected: position.Cursor{Line: 5, Column: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := editor.NewBuffer(sixLines())
			var ed editor.Editor = buf
			if !tt.revs {
				ed = plain{buf}
			}
			tr := editor.NewTranslator(ed, 8)
			defer tr.Cancel()

			require.NoError(t, ed.Insert(position.Cursor{}, "\"hello\"\n"))
			assert.Equal(t, tt.expected, tr.Cursor(5, 3))
		})
	}
}

func TestTranslatorNeverLeavesDocument(t *testing.T) {
	buf := editor.NewBuffer("a\tb\nc")
	tr := editor.NewTranslator(buf, 8)
	defer tr.Cancel()

	require.NoError(t, buf.Remove(position.Range{Start: position.Cursor{Line: 0, Column: 1}, End: position.Cursor{Line: 1, Column: 0}}))

	for line := -1; line < 4; line++ {
		for vcol := 0; vcol < 12; vcol++ {
			c := tr.Cursor(line, vcol)
			assert.Equal(t, position.NewIndex(buf.Text()).Clamp(c), c, "line %d vcol %d", line, vcol)
		}
	}
}

func TestTranslatorTabs(t *testing.T) {
	buf := editor.NewBuffer("\tc d")
	tr := editor.NewTranslator(plain{buf}, 8)
	assert.Equal(t, position.Cursor{Line: 0, Column: 1}, tr.Cursor(0, 8))
	assert.Equal(t, position.Cursor{Line: 0, Column: 3}, tr.Cursor(0, 10))
}

func TestCancelReleasesOnce(t *testing.T) {
	buf := editor.NewBuffer("c d e")
	tr := editor.NewTranslator(buf, 8)
	assert.Equal(t, 1, buf.OpenRevisions())
	tr.Cancel()
	tr.Cancel()
	assert.Equal(t, 0, buf.OpenRevisions())

	require.NoError(t, buf.Insert(position.Cursor{}, "x\n"))
	assert.Equal(t, position.Cursor{Line: 0, Column: 1}, tr.Cursor(0, 1))
}

func TestApplyChangesIsOneUndoStep(t *testing.T) {
	src := "{ c d e }"
	buf := editor.NewBuffer(src)
	l := changes.New(src)
	require.NoError(t, l.Add(2, 3, "cis"))
	require.NoError(t, l.Add(6, 7, "eis"))

	require.NoError(t, editor.ApplyChanges(context.Background(), buf, l))
	assert.Equal(t, "{ cis d eis }", buf.Text())
	assert.Equal(t, 1, buf.UndoSteps())

	require.NoError(t, editor.ApplyChanges(context.Background(), buf, changes.New(buf.Text())))
	assert.Equal(t, 1, buf.UndoSteps())
}

func TestBufferCursorAndSelection(t *testing.T) {
	buf := editor.NewBuffer("c d\ne f")
	buf.SetSelection(position.Range{Start: position.Cursor{Line: 1, Column: 3}, End: position.Cursor{Line: 1, Column: 0}})
	sel, ok := buf.Selection()
	require.True(t, ok)
	assert.Equal(t, position.Cursor{Line: 1, Column: 0}, sel.Start)

	require.NoError(t, buf.Insert(position.Cursor{}, "% x\n"))
	sel, _ = buf.Selection()
	assert.Equal(t, position.Range{Start: position.Cursor{Line: 2, Column: 0}, End: position.Cursor{Line: 2, Column: 3}}, sel)
	assert.Equal(t, position.Cursor{Line: 2, Column: 3}, buf.CursorPosition())

	assert.Error(t, buf.Insert(position.Cursor{Line: 9}, "x"))
}
