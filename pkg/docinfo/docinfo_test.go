package docinfo_test

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/golily/pkg/docinfo"
)

func TestVariables(t *testing.T) {
	text := "%%tab-width: 4\n%%mode:lilypond  \n%% not-a-var: x\n%%Upper: no\n%%tab-width: 8\n"
	assert.Equal(t, map[string]string{
		"tab-width": "8",
		"mode":      "lilypond",
	}, docinfo.Variables(text))

	assert.Empty(t, docinfo.Variables("{ c d e }"))
}

func TestVersion(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{name: "full", input: "\\version \"2.24.1\"\n{ c }", want: "2.24.1", ok: true},
		{name: "no space", input: `\version"2.18"`, want: "2.18", ok: true},
		{name: "first wins", input: "\\version \"2.18.2\"\n\\version \"2.24.0\"", want: "2.18.2", ok: true},
		{name: "unterminated", input: `\version "2.24`, want: "2.24", ok: true},
		{name: "missing", input: "{ c }", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := docinfo.Version(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVersionTuple(t *testing.T) {
	v, err := docinfo.ParseVersion("2.18")
	require.NoError(t, err)
	assert.Equal(t, docinfo.VersionTuple{2, 18, 0}, v)
	assert.Equal(t, "2.18.0", v.String())

	w, err := docinfo.ParseVersion("2.24.3")
	require.NoError(t, err)
	assert.True(t, v.Less(w))
	assert.Equal(t, 1, w.Compare(v))
	assert.Equal(t, 0, v.Compare(docinfo.VersionTuple{2, 18}))

	_, err = docinfo.ParseVersion("2.x")
	require.Error(t, err)
	_, err = docinfo.ParseVersion("1.2.3.4")
	require.Error(t, err)

	dv, ok := docinfo.DocumentVersion(`\version "2.22.1"`)
	require.True(t, ok)
	assert.Equal(t, docinfo.VersionTuple{2, 22, 1}, dv)
}

func TestInsertVersion(t *testing.T) {
	l, err := docinfo.InsertVersion("{ c }", docinfo.VersionTuple{2, 24, 0})
	require.NoError(t, err)
	assert.Equal(t, "\\version \"2.24.0\"\n{ c }", l.Apply())

	_, err = docinfo.InsertVersion(`\version "2.24.0"`, docinfo.VersionTuple{2, 24, 0})
	assert.True(t, errors.Is(err, docinfo.ErrVersionExists))
}

func TestIncludes(t *testing.T) {
	text := `\include "a.ly"
% \include "comment.ly"
\include "sub/b.ily"
x = "\include \"string.ly\""
#(ly:parser-include-string "\include \"scheme.ly\"")
`
	assert.Equal(t, []string{"a.ly", "sub/b.ily"}, docinfo.Includes(text))
}

func TestIncludeFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	files := map[string]string{
		"/score/main.ly":          "\\include \"parts/violin.ily\"\n\\include \"missing.ly\"\n",
		"/score/parts/violin.ily": "\\include \"notes.ily\"\n\\include \"parts/violin.ily\"\n",
		"/score/parts/notes.ily":  "{ c d e }\n",
	}
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}

	got := docinfo.IncludeFiles(context.Background(), fs, "/score/main.ly")
	assert.Equal(t, []string{
		"/score/main.ly",
		"/score/parts/violin.ily",
		"/score/parts/notes.ily",
	}, got)
}
