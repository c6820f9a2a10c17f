package config

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// FileNames are the project config files looked for, in order of preference.
var FileNames = []string{".golily.hcl", ".golily.yaml", ".golily.yml"}

// Load reads a config file (YAML or HCL) on top of the defaults.
func Load(ctx context.Context, fs afero.Fs, path string) (*Config, error) {
	cfg := Default()
	if err := cfg.Decode(fs, path); err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("loaded config")
	return cfg, nil
}

// Decode reads a config file over the values already in c. Settings the
// file does not mention are kept.
func (c *Config) Decode(fs afero.Fs, path string) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return errors.Errorf("reading config file: %w", err)
	}

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(c); err != nil {
			return errors.Errorf("parsing YAML %s: %w", path, err)
		}
		return nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return errors.Errorf("parsing HCL: %s", diags.Error())
	}
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}
	if diags := gohcl.DecodeBody(file.Body, evalCtx, c); diags.HasErrors() {
		return errors.Errorf("decoding HCL: %s", diags.Error())
	}
	return nil
}

// Find looks for a project config file in dir and its parents.
func Find(fs afero.Fs, dir string) (string, bool) {
	for {
		for _, name := range FileNames {
			p := filepath.Join(dir, name)
			if ok, _ := afero.Exists(fs, p); ok {
				return p, true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// ForFile resolves the settings for a LilyPond file: defaults, then the
// nearest project config file, then .editorconfig.
func ForFile(ctx context.Context, fs afero.Fs, file string) (*Config, error) {
	cfg := Default()
	if p, ok := Find(fs, filepath.Dir(file)); ok {
		if err := cfg.Decode(fs, p); err != nil {
			return nil, err
		}
		zerolog.Ctx(ctx).Debug().Str("file", file).Str("config", p).Msg("using project config")
	}
	if err := cfg.FromEditorConfig(ctx, fs, file); err != nil {
		return nil, err
	}
	return cfg, nil
}
