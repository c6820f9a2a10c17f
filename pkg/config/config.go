// Package config holds the editing settings of a project: indentation, pitch
// language, input mode and printing options. Settings come from defaults, a
// .golily.hcl or .golily.yaml file, .editorconfig and command line flags, in
// that order.
package config

import (
	"gitlab.com/tozd/go/errors"
	"go.uber.org/multierr"

	"github.com/walteh/golily/pkg/docinfo"
	"github.com/walteh/golily/pkg/indent"
	"github.com/walteh/golily/pkg/pitch"
	"github.com/walteh/golily/pkg/tokenize"
	"github.com/walteh/golily/pkg/transform"
)

var ErrInvalid = errors.Base("invalid configuration")

type Config struct {
	IndentWidth int `json:"indent_width" hcl:"indent_width,optional" yaml:"indent_width,omitempty"`
	TabWidth    int `json:"tab_width" hcl:"tab_width,optional" yaml:"tab_width,omitempty"`
	// UseTabs nil follows the whitespace already in the document.
	UseTabs *bool `json:"use_tabs,omitempty" hcl:"use_tabs,optional" yaml:"use_tabs,omitempty"`
	// Language empty reads the language from the document, nederlands when
	// it names none.
	Language string `json:"language,omitempty" hcl:"language,optional" yaml:"language,omitempty"`
	// InputModeOverride is one of music, chord, lyric, figure and drum.
	InputModeOverride   string `json:"input_mode,omitempty" hcl:"input_mode,optional" yaml:"input_mode,omitempty"`
	TypographicalQuotes bool   `json:"typographical_quotes" hcl:"typographical_quotes,optional" yaml:"typographical_quotes"`
	// Version is written by new-score and raw-version.
	Version string `json:"version,omitempty" hcl:"version,optional" yaml:"version,omitempty"`
}

const DefaultVersion = "2.24.0"

func Default() *Config {
	return &Config{
		IndentWidth:         2,
		TabWidth:            8,
		TypographicalQuotes: true,
		Version:             DefaultVersion,
	}
}

// Validate reports every invalid field.
func (c *Config) Validate() error {
	var err error
	if c.IndentWidth < 1 || c.IndentWidth > 16 {
		err = multierr.Append(err, errors.Errorf("%w: indent_width %d is not between 1 and 16", ErrInvalid, c.IndentWidth))
	}
	if c.TabWidth < 1 || c.TabWidth > 16 {
		err = multierr.Append(err, errors.Errorf("%w: tab_width %d is not between 1 and 16", ErrInvalid, c.TabWidth))
	}
	if c.Language != "" {
		if _, ok := pitch.Lookup(c.Language); !ok {
			err = multierr.Append(err, errors.Errorf("%w: unknown language %q", ErrInvalid, c.Language))
		}
	}
	if c.InputModeOverride != "" {
		if _, ok := tokenize.ParseMode(c.InputModeOverride); !ok {
			err = multierr.Append(err, errors.Errorf("%w: unknown input mode %q", ErrInvalid, c.InputModeOverride))
		}
	}
	if c.Version != "" {
		if _, verr := docinfo.ParseVersion(c.Version); verr != nil {
			err = multierr.Append(err, errors.Errorf("%w: %s", ErrInvalid, verr.Error()))
		}
	}
	return err
}

func (c *Config) IndentOptions() indent.Options {
	return indent.Options{IndentWidth: c.IndentWidth, TabWidth: c.TabWidth, UseTabs: c.UseTabs}
}

// Mode returns the input mode override, if any.
func (c *Config) Mode() (tokenize.Mode, bool) {
	if c.InputModeOverride == "" {
		return tokenize.MusicMode, false
	}
	return tokenize.ParseMode(c.InputModeOverride)
}

// TransformOptions carries the language and input mode into a
// transformation.
func (c *Config) TransformOptions() []transform.Option {
	var opts []transform.Option
	if c.Language != "" {
		opts = append(opts, transform.WithLanguage(c.Language))
	}
	if m, ok := c.Mode(); ok {
		opts = append(opts, transform.WithInputMode(m))
	}
	return opts
}

// VersionTuple returns Version parsed, or DefaultVersion when it is invalid.
func (c *Config) VersionTuple() docinfo.VersionTuple {
	if v, err := docinfo.ParseVersion(c.Version); err == nil && c.Version != "" {
		return v
	}
	v, _ := docinfo.ParseVersion(DefaultVersion)
	return v
}
