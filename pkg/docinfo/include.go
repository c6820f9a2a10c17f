package docinfo

import (
	"context"
	"path"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// IncludeFiles returns file and every file it includes, recursively.
//
// An include is looked up relative to the directory of file, and, for files
// in other directories, relative to the including file as well. Files that
// cannot be read are left out.
func IncludeFiles(ctx context.Context, fs afero.Fs, file string) []string {
	w := &includeWalker{
		ctx:     ctx,
		fs:      fs,
		basedir: path.Dir(file),
		seen:    map[string]bool{},
	}
	w.walk(path.Clean(file))
	zerolog.Ctx(ctx).Debug().Str("file", file).Int("files", len(w.files)).Msg("found include files")
	return w.files
}

type includeWalker struct {
	ctx     context.Context
	fs      afero.Fs
	basedir string
	seen    map[string]bool
	files   []string
}

func (w *includeWalker) walk(file string) {
	if w.seen[file] {
		return
	}
	w.seen[file] = true
	data, err := afero.ReadFile(w.fs, file)
	if err != nil {
		zerolog.Ctx(w.ctx).Debug().Err(err).Str("file", file).Msg("skipping unreadable include")
		return
	}
	w.files = append(w.files, file)
	dir := path.Dir(file)
	for _, inc := range Includes(string(data)) {
		if path.IsAbs(inc) {
			w.walk(path.Clean(inc))
			continue
		}
		w.walk(path.Join(w.basedir, inc))
		if dir != w.basedir {
			w.walk(path.Join(dir, inc))
		}
	}
}
