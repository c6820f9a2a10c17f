package finder

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	files := map[string]string{
		"/scores/sonata.ly":         "\\version \"2.24.0\"",
		"/scores/parts/violin.ily":  "violin = { c }",
		"/scores/parts/notes.txt":   "not lilypond",
		"/scores/init.lyi":          "%",
		"/scores/.git/hooks/pre.ly": "{ }",
		"/scores/old/etude.ly":      "{ d }",
		"/elsewhere/unrelated.ly":   "{ e }",
	}
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}
	return fs
}

func TestDefaultFinder_Find(t *testing.T) {
	tests := []struct {
		name     string
		dir      string
		patterns []string
		want     []string
		wantErr  bool
	}{
		{
			name: "default patterns",
			dir:  "/scores",
			want: []string{"/scores/init.lyi", "/scores/old/etude.ly", "/scores/parts/violin.ily", "/scores/sonata.ly"},
		},
		{
			name:     "only ily",
			dir:      "/scores",
			patterns: []string{"**/*.ily"},
			want:     []string{"/scores/parts/violin.ily"},
		},
		{
			name:     "top directory only",
			dir:      "/scores",
			patterns: []string{"*.ly"},
			want:     []string{"/scores/sonata.ly"},
		},
		{
			name:     "several patterns",
			dir:      "/scores",
			patterns: []string{"old/*.ly", "**/*.txt"},
			want:     []string{"/scores/old/etude.ly", "/scores/parts/notes.txt"},
		},
		{
			name:    "missing directory",
			dir:     "/nowhere",
			wantErr: true,
		},
		{
			name:     "bad pattern",
			dir:      "/scores",
			patterns: []string{"[a"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewDefaultFinder(testFs(t))
			got, err := f.Find(context.Background(), tt.dir, tt.patterns...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			paths := make([]string, len(got))
			for i, file := range got {
				paths[i] = file.Path
				assert.NotEmpty(t, file.Content)
				assert.NotEmpty(t, file.FileType)
			}
			assert.Equal(t, tt.want, paths)
		})
	}
}

func TestDefaultFinder_Find_Context(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := NewDefaultFinder(testFs(t))
	_, err := f.Find(ctx, "/scores")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDefaultFinder_Expand(t *testing.T) {
	f := NewDefaultFinder(testFs(t))

	got, err := f.Expand(context.Background(), "/scores/sonata.ly", "/scores/parts", "/scores/**/*.ly", "/elsewhere/unrelated.ly")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"/scores/sonata.ly",
		"/scores/parts/violin.ily",
		"/scores/old/etude.ly",
		"/elsewhere/unrelated.ly",
	}, got)

	_, err = f.Expand(context.Background(), "/scores/missing.ly")
	assert.Error(t, err)
}
