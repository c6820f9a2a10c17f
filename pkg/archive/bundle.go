// Package archive packs a LilyPond document together with the files it
// includes into a gzipped tarball, and unpacks such bundles.
package archive

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/golily/pkg/docinfo"
)

var ErrUnsafePath = errors.Base("archive entry leaves the target directory")

// externalDir holds included files that live outside the directory of the
// packed document.
const externalDir = "external"

// Pack writes file and everything it includes to w. Entries are named
// relative to the directory of file. It returns the entry names in the order
// written.
func Pack(ctx context.Context, fs afero.Fs, w io.Writer, file string) ([]string, error) {
	files := docinfo.IncludeFiles(ctx, fs, file)
	if len(files) == 0 {
		return nil, errors.Errorf("reading %s: %w", file, os.ErrNotExist)
	}
	base := filepath.Dir(file)

	gzw := gzip.NewWriter(w)
	tw := tar.NewWriter(gzw)

	names := make([]string, 0, len(files))
	for _, f := range files {
		data, err := afero.ReadFile(fs, f)
		if err != nil {
			return nil, errors.Errorf("reading %s: %w", f, err)
		}
		name := entryName(base, f)
		hdr := &tar.Header{
			Name:     name,
			Mode:     0o644,
			Size:     int64(len(data)),
			Typeflag: tar.TypeReg,
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return nil, errors.Errorf("writing header for %s: %w", name, err)
		}
		if _, err := tw.Write(data); err != nil {
			return nil, errors.Errorf("writing %s: %w", name, err)
		}
		names = append(names, name)
	}

	if err := tw.Close(); err != nil {
		return nil, errors.Errorf("closing tar: %w", err)
	}
	if err := gzw.Close(); err != nil {
		return nil, errors.Errorf("closing gzip: %w", err)
	}
	zerolog.Ctx(ctx).Debug().Str("file", file).Strs("entries", names).Msg("packed bundle")
	return names, nil
}

func entryName(base, file string) string {
	rel, err := filepath.Rel(base, file)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		rel = filepath.Join(externalDir, strings.TrimLeft(filepath.ToSlash(file), "/"))
	}
	return filepath.ToSlash(rel)
}

// ExtractOptions configure Unpack.
type ExtractOptions struct {
	// StripComponents removes leading path components, like tar's
	// --strip-components.
	StripComponents int

	// FileMode is the mode of created files (default 0644).
	FileMode os.FileMode

	// DirMode is the mode of created directories (default 0755).
	DirMode os.FileMode

	// Filter returns false for entries to skip.
	Filter func(header *tar.Header) bool
}

// Unpack extracts a bundle into targetDir and returns the paths written.
func Unpack(ctx context.Context, fs afero.Fs, r io.Reader, targetDir string, opts ExtractOptions) ([]string, error) {
	if opts.FileMode == 0 {
		opts.FileMode = 0o644
	}
	if opts.DirMode == 0 {
		opts.DirMode = 0o755
	}

	gzr, err := gzip.NewReader(r)
	if err != nil {
		return nil, errors.Errorf("creating gzip reader: %w", err)
	}
	defer gzr.Close()

	tr := tar.NewReader(gzr)
	var written []string
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Errorf("reading tar: %w", err)
		}

		components := splitPath(header.Name)
		if len(components) <= opts.StripComponents {
			continue
		}
		if opts.Filter != nil && !opts.Filter(header) {
			continue
		}
		stripped := filepath.Join(components[opts.StripComponents:]...)
		if stripped == ".." || strings.HasPrefix(stripped, ".."+string(filepath.Separator)) {
			return nil, errors.Errorf("%w: %s", ErrUnsafePath, header.Name)
		}
		target := filepath.Join(targetDir, stripped)

		switch header.Typeflag {
		case tar.TypeDir:
			if err := fs.MkdirAll(target, opts.DirMode); err != nil {
				return nil, errors.Errorf("creating directory %s: %w", target, err)
			}
		case tar.TypeReg:
			if err := fs.MkdirAll(filepath.Dir(target), opts.DirMode); err != nil {
				return nil, errors.Errorf("creating directory %s: %w", filepath.Dir(target), err)
			}
			f, err := fs.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, opts.FileMode)
			if err != nil {
				return nil, errors.Errorf("creating file %s: %w", target, err)
			}
			if _, err := io.Copy(f, tr); err != nil {
				f.Close()
				return nil, errors.Errorf("writing file %s: %w", target, err)
			}
			f.Close()
			written = append(written, target)
		}
	}
	zerolog.Ctx(ctx).Debug().Str("dir", targetDir).Int("files", len(written)).Msg("unpacked bundle")
	return written, nil
}

// splitPath splits a slash separated entry name into its components.
func splitPath(path string) []string {
	path = strings.TrimRight(path, "/")
	if path == "" {
		return nil
	}

	var components []string
	dir := path
	for dir != "." && dir != "/" && dir != "" {
		components = append([]string{filepath.Base(dir)}, components...)
		dir = filepath.Dir(dir)
	}
	return components
}
