package diagnostic_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/golily/pkg/diagnostic"
	"github.com/walteh/golily/pkg/position"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    diagnostic.Diagnostic
		wantErr bool
	}{
		{
			name: "error with column",
			line: "song.ly:12:5: error: syntax error, unexpected '}'",
			want: diagnostic.Diagnostic{Path: "song.ly", Line: 12, Column: 5, Severity: diagnostic.Error, Message: "syntax error, unexpected '}'"},
		},
		{
			name: "warning",
			line: "parts/violin.ily:3:0: warning: barcheck failed at: 1/4",
			want: diagnostic.Diagnostic{Path: "parts/violin.ily", Line: 3, Column: 0, Severity: diagnostic.Warning, Message: "barcheck failed at: 1/4"},
		},
		{
			name: "programming error",
			line: "a.ly:1:2: programming error: no spring",
			want: diagnostic.Diagnostic{Path: "a.ly", Line: 1, Column: 2, Severity: diagnostic.ProgrammingError, Message: "no spring"},
		},
		{
			name: "no column",
			line: "a.ly:7: warning: no \\version statement found",
			want: diagnostic.Diagnostic{Path: "a.ly", Line: 7, Severity: diagnostic.Warning, Message: "no \\version statement found"},
		},
		{
			name: "no severity",
			line: "a.ly:7:3: skipping zero-duration score",
			want: diagnostic.Diagnostic{Path: "a.ly", Line: 7, Column: 3, Message: "skipping zero-duration score"},
		},
		{
			name: "windows path",
			line: `C:\scores\a.ly:2:1: fatal error: failed files: "a.ly"`,
			want: diagnostic.Diagnostic{Path: `C:\scores\a.ly`, Line: 2, Column: 1, Severity: diagnostic.FatalError, Message: `failed files: "a.ly"`},
		},
		{
			name:    "plain output",
			line:    "Processing `a.ly'",
			wantErr: true,
		},
		{
			name:    "version banner",
			line:    "GNU LilyPond 2.24.0 (running Guile 2.2)",
			wantErr: true,
		},
		{
			name:    "empty",
			line:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := diagnostic.Parse(tt.line)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAll(t *testing.T) {
	output := `GNU LilyPond 2.24.0
Processing ` + "`a.ly'" + `
Parsing...
a.ly:4:10: warning: barcheck failed at: 1/2
a.ly:9:2: error: unknown escaped string: ` + "`\\foo'" + `
Success: compilation successfully completed
`
	ds := diagnostic.ParseAll(output)
	require.Len(t, ds, 2)
	assert.Equal(t, 4, ds[0].Line)
	assert.Equal(t, diagnostic.Warning, ds[0].Severity)
	assert.Equal(t, diagnostic.Error, ds[1].Severity)

	g := diagnostic.Group(ds)
	assert.Len(t, g.Errors, 1)
	assert.Len(t, g.Warnings, 1)
	assert.Empty(t, g.Other)
}

func TestCursor(t *testing.T) {
	tests := []struct {
		name     string
		line     int
		column   int
		text     string
		tabWidth int
		want     position.Cursor
	}{
		{name: "spaces", line: 3, column: 4, text: "    c d e", tabWidth: 8, want: position.Cursor{Line: 2, Column: 4}},
		{name: "after tab", line: 1, column: 8, text: "\tc d e", tabWidth: 8, want: position.Cursor{Line: 0, Column: 1}},
		{name: "two tabs", line: 2, column: 10, text: "\t\tc", tabWidth: 4, want: position.Cursor{Line: 1, Column: 3}},
		{name: "past end", line: 1, column: 40, text: "c d", tabWidth: 8, want: position.Cursor{Line: 0, Column: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := diagnostic.Diagnostic{Line: tt.line, Column: tt.column}
			assert.Equal(t, tt.want, d.Cursor(tt.text, tt.tabWidth))
		})
	}
}

func TestJSONFormatter(t *testing.T) {
	ds := diagnostic.ParseAll("a.ly:2:8: error: bad\na.ly:1:0: warning: meh\n")
	f := &diagnostic.JSONFormatter{
		TabWidth: 8,
		Source: func(path string, line int) (string, bool) {
			lines := []string{"{", "\tc d"}
			if path != "a.ly" || line > len(lines) {
				return "", false
			}
			return lines[line-1], true
		},
	}
	data, err := f.Format(diagnostic.Group(ds))
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got, 2)
	assert.Equal(t, float64(1), got[0]["severity"])
	assert.Equal(t, map[string]any{"line": float64(1), "character": float64(1)}, got[0]["start"])
	assert.Equal(t, float64(2), got[1]["severity"])

	_, err = f.Format(nil)
	assert.Error(t, err)
}
