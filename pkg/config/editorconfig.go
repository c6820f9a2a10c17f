package config

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/editorconfig/editorconfig-core-go/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

const editorConfigName = ".editorconfig"

// FromEditorConfig applies indent_style, indent_size and tab_width from the
// .editorconfig files that govern file. Files nearer to file win; the search
// stops at a file with root = true.
func (c *Config) FromEditorConfig(ctx context.Context, fs afero.Fs, file string) error {
	type found struct {
		dir string
		ec  *editorconfig.Editorconfig
	}
	var chain []found
	for dir := filepath.Dir(file); ; {
		p := filepath.Join(dir, editorConfigName)
		if ok, _ := afero.Exists(fs, p); ok {
			f, err := fs.Open(p)
			if err != nil {
				return errors.Errorf("opening %s: %w", p, err)
			}
			ec, err := editorconfig.Parse(f)
			f.Close()
			if err != nil {
				return errors.Errorf("parsing %s: %w", p, err)
			}
			chain = append(chain, found{dir: dir, ec: ec})
			if ec.Root {
				break
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	for i := len(chain) - 1; i >= 0; i-- {
		rel, err := filepath.Rel(chain[i].dir, file)
		if err != nil {
			rel = filepath.Base(file)
		}
		def, err := chain[i].ec.GetDefinitionForFilename(filepath.ToSlash(rel))
		if err != nil {
			return errors.Errorf("matching %s: %w", file, err)
		}
		c.applyEditorConfig(def.Raw)
		zerolog.Ctx(ctx).Debug().Str("dir", chain[i].dir).Str("file", file).Msg("applied editorconfig")
	}
	return nil
}

func (c *Config) applyEditorConfig(raw map[string]string) {
	tabWidth, hasTabWidth := positive(raw["tab_width"])
	if hasTabWidth {
		c.TabWidth = tabWidth
	}
	switch size := strings.ToLower(raw["indent_size"]); size {
	case "":
	case "tab":
		c.IndentWidth = c.TabWidth
	default:
		if n, ok := positive(size); ok {
			c.IndentWidth = n
			if !hasTabWidth {
				c.TabWidth = n
			}
		}
	}
	switch strings.ToLower(raw["indent_style"]) {
	case editorconfig.IndentStyleTab:
		useTabs := true
		c.UseTabs = &useTabs
	case editorconfig.IndentStyleSpaces:
		useTabs := false
		c.UseTabs = &useTabs
	}
}

func positive(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return n, err == nil && n > 0
}
