// Package common holds what the golily sub-commands share: file arguments,
// settings resolution and batch execution.
package common

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"

	"github.com/walteh/golily/pkg/config"
	"github.com/walteh/golily/pkg/finder"
)

type fsKey struct{}

// WithFs makes the commands run against fs instead of the OS filesystem.
func WithFs(ctx context.Context, fs afero.Fs) context.Context {
	return context.WithValue(ctx, fsKey{}, fs)
}

func Fs(ctx context.Context) afero.Fs {
	if fs, ok := ctx.Value(fsKey{}).(afero.Fs); ok {
		return fs
	}
	return afero.NewOsFs()
}

// Stdin is the path that stands for standard input.
const Stdin = "-"

// File is one input handed to a command.
type File struct {
	Path   string
	Text   string
	Config *config.Config
}

// Func turns an input into the output to print or write back.
type Func func(ctx context.Context, f *File) (string, error)

// Files binds the file arguments of a command.
type Files struct {
	Write bool
	Jobs  int

	writable bool
}

// Bind adds the flags. Commands that rewrite their input pass writable so
// that --write is offered.
func (f *Files) Bind(cmd *cobra.Command, writable bool) {
	f.writable = writable
	if writable {
		cmd.Flags().BoolVarP(&f.Write, "write", "w", false, "write the result back to the files instead of printing it")
	}
	cmd.Flags().IntVarP(&f.Jobs, "jobs", "j", runtime.GOMAXPROCS(0), "files processed at the same time")
}

// Config resolves the settings for path: the --config file if one was given,
// otherwise the nearest project file and .editorconfig.
func Config(cmd *cobra.Command, path string) (*config.Config, error) {
	ctx := cmd.Context()
	fs := Fs(ctx)
	var (
		cfg *config.Config
		err error
	)
	if fl := cmd.Flag("config"); fl != nil && fl.Value.String() != "" {
		cfg, err = config.Load(ctx, fs, fl.Value.String())
	} else if path == Stdin {
		cfg = config.Default()
	} else {
		cfg, err = config.ForFile(ctx, fs, path)
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

type result struct {
	in, out string
	done    bool
}

// Run applies fn to every file the arguments name, or to standard input when
// there are none. Files run concurrently; output is printed in argument
// order. A failing file does not stop the others; all failures are returned
// together.
func (f *Files) Run(cmd *cobra.Command, args []string, fn Func) error {
	ctx := cmd.Context()
	fs := Fs(ctx)

	if len(args) == 0 || (len(args) == 1 && args[0] == Stdin) {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return errors.Errorf("reading standard input: %w", err)
		}
		cfg, err := Config(cmd, Stdin)
		if err != nil {
			return err
		}
		out, err := fn(ctx, &File{Path: Stdin, Text: string(data), Config: cfg})
		if err != nil {
			return err
		}
		_, err = io.WriteString(cmd.OutOrStdout(), out)
		return err
	}

	paths, err := finder.NewDefaultFinder(fs).Expand(ctx, args...)
	if err != nil {
		return err
	}

	var (
		results = make([]result, len(paths))
		mu      sync.Mutex
		merr    *multierror.Error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(f.Jobs, 1))
	for i, p := range paths {
		g.Go(func() error {
			in, out, err := f.one(gctx, cmd, p, fn)
			if err != nil {
				mu.Lock()
				merr = multierror.Append(merr, errors.Errorf("%s: %w", p, err))
				mu.Unlock()
				return nil
			}
			results[i] = result{in: in, out: out, done: true}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for i, p := range paths {
		r := results[i]
		if !r.done {
			continue
		}
		if f.writable && f.Write {
			if r.out == r.in {
				continue
			}
			if err := afero.WriteFile(fs, p, []byte(r.out), 0o644); err != nil {
				merr = multierror.Append(merr, errors.Errorf("writing %s: %w", p, err))
				continue
			}
			zerolog.Ctx(ctx).Info().Str("file", p).Msg("rewrote")
			continue
		}
		if len(paths) > 1 {
			fmt.Fprintf(w, "==> %s <==\n", p)
		}
		io.WriteString(w, r.out)
	}
	return merr.ErrorOrNil()
}

func (f *Files) one(ctx context.Context, cmd *cobra.Command, path string, fn Func) (string, string, error) {
	data, err := afero.ReadFile(Fs(ctx), path)
	if err != nil {
		return "", "", errors.Errorf("reading: %w", err)
	}
	cfg, err := Config(cmd, path)
	if err != nil {
		return "", "", err
	}
	in := string(data)
	out, err := fn(ctx, &File{Path: path, Text: in, Config: cfg})
	if err != nil {
		return "", "", err
	}
	return in, out, nil
}
