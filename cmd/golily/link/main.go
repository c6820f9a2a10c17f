package link

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/walteh/golily/cmd/golily/common"
	"github.com/walteh/golily/pkg/diagnostic"
)

type Handler struct {
	files common.Files
	json  bool
	dir   string
}

func NewLinkCommand() *cobra.Command {
	me := &Handler{}

	cmd := &cobra.Command{
		Use:   "link [compiler output files...]",
		Short: "point LilyPond compiler messages at source positions",
		Long: `Read the output of the lilypond compiler, from files or standard input,
and print each error and warning with the line and character it refers to.
Columns in compiler output count a tab as a jump to the next tab stop; the
printed character positions count a tab as one character.`,
	}

	me.files.Bind(cmd, false)
	cmd.Flags().BoolVar(&me.json, "json", false, "print editor diagnostics as JSON")
	cmd.Flags().StringVar(&me.dir, "dir", "", "directory the compiler ran in (default the current one)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return me.files.Run(cmd, args, me.Run)
	}

	return cmd
}

// sources reads and caches the lines of the files diagnostics point at.
type sources struct {
	fs  afero.Fs
	dir string

	mu    sync.Mutex
	lines map[string][]string
}

func (s *sources) line(path string, line int) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines, ok := s.lines[path]
	if !ok {
		p := path
		if !filepath.IsAbs(p) && s.dir != "" {
			p = filepath.Join(s.dir, p)
		}
		if data, err := afero.ReadFile(s.fs, p); err == nil {
			lines = strings.Split(string(data), "\n")
		}
		s.lines[path] = lines
	}
	if line < 1 || line > len(lines) {
		return "", false
	}
	return lines[line-1], true
}

var severityColors = map[string]*color.Color{
	"error":   color.New(color.FgRed, color.Bold),
	"warning": color.New(color.FgYellow, color.Bold),
	"other":   color.New(color.Faint),
}

func (me *Handler) Run(ctx context.Context, f *common.File) (string, error) {
	src := &sources{fs: common.Fs(ctx), dir: me.dir, lines: map[string][]string{}}
	g := diagnostic.Group(diagnostic.ParseAll(f.Text))

	if me.json {
		out, err := (&diagnostic.JSONFormatter{TabWidth: f.Config.TabWidth, Source: src.line}).Format(g)
		if err != nil {
			return "", err
		}
		return string(out) + "\n", nil
	}

	var b strings.Builder
	write := func(ds []diagnostic.Diagnostic, class string) {
		for _, d := range ds {
			c := d.Cursor("", f.Config.TabWidth)
			c.Column = d.Column
			if text, ok := src.line(d.Path, d.Line); ok {
				c = d.Cursor(text, f.Config.TabWidth)
			}
			sev := string(d.Severity)
			if sev == "" {
				sev = "note"
			}
			fmt.Fprintf(&b, "%s:%d:%d: %s: %s\n", d.Path, c.Line+1, c.Column+1, severityColors[class].Sprint(sev), d.Message)
		}
	}
	write(g.Errors, "error")
	write(g.Warnings, "warning")
	write(g.Other, "other")
	return b.String(), nil
}
