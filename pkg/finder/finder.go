// Package finder locates LilyPond sources on a filesystem.
package finder

import (
	"context"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// DefaultPatterns match LilyPond sources and include files.
var DefaultPatterns = []string{"**/*.{ly,ily,lyi}"}

// Finder finds LilyPond files.
type Finder interface {
	// Find returns the files below dir that match any of the patterns.
	Find(ctx context.Context, dir string, patterns ...string) ([]FileInfo, error)
}

// FileInfo is a found file.
type FileInfo struct {
	Path    string
	Content []byte
	// FileType is the extension without the dot.
	FileType string
}

// DefaultFinder walks an afero filesystem. Hidden directories are skipped.
type DefaultFinder struct {
	fs afero.Fs
}

func NewDefaultFinder(fs afero.Fs) *DefaultFinder {
	return &DefaultFinder{fs: fs}
}

// Find implements Finder. Patterns are doublestar globs relative to dir;
// without patterns DefaultPatterns are used. Files are returned sorted by
// path.
func (f *DefaultFinder) Find(ctx context.Context, dir string, patterns ...string) ([]FileInfo, error) {
	paths, err := f.Paths(ctx, dir, patterns...)
	if err != nil {
		return nil, err
	}
	files := make([]FileInfo, 0, len(paths))
	for _, p := range paths {
		content, err := afero.ReadFile(f.fs, p)
		if err != nil {
			return nil, errors.Errorf("reading %s: %w", p, err)
		}
		files = append(files, FileInfo{
			Path:     p,
			Content:  content,
			FileType: strings.TrimPrefix(filepath.Ext(p), "."),
		})
	}
	return files, nil
}

// Paths is Find without reading the files.
func (f *DefaultFinder) Paths(ctx context.Context, dir string, patterns ...string) ([]string, error) {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, errors.Errorf("invalid pattern %q", p)
		}
	}

	var out []string
	err := afero.Walk(f.fs, dir, func(p string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if info.IsDir() {
			if p != dir && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		for _, pattern := range patterns {
			if ok, _ := doublestar.Match(pattern, rel); ok {
				out = append(out, p)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("finding files in %s: %w", dir, err)
	}
	slices.Sort(out)
	zerolog.Ctx(ctx).Debug().Str("dir", dir).Strs("patterns", patterns).Int("files", len(out)).Msg("found files")
	return out, nil
}

// Expand turns command line arguments into file paths. A directory is
// searched with DefaultPatterns, a glob is matched from its literal base, and
// anything else is taken as a file that must exist.
func (f *DefaultFinder) Expand(ctx context.Context, args ...string) ([]string, error) {
	var out []string
	seen := map[string]bool{}
	add := func(ps ...string) {
		for _, p := range ps {
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}

	for _, arg := range args {
		slashed := filepath.ToSlash(arg)
		if strings.ContainsAny(slashed, "*?[{") {
			base, pattern := doublestar.SplitPattern(slashed)
			ps, err := f.Paths(ctx, filepath.FromSlash(base), pattern)
			if err != nil {
				return nil, err
			}
			add(ps...)
			continue
		}

		info, err := f.fs.Stat(arg)
		if err != nil {
			return nil, errors.Errorf("reading %s: %w", arg, err)
		}
		if info.IsDir() {
			ps, err := f.Paths(ctx, arg)
			if err != nil {
				return nil, err
			}
			add(ps...)
			continue
		}
		add(filepath.Clean(arg))
	}
	return out, nil
}
