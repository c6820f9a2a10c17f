package info

import (
	"context"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"

	"github.com/walteh/golily/cmd/golily/common"
	"github.com/walteh/golily/pkg/completion"
	"github.com/walteh/golily/pkg/docinfo"
	"github.com/walteh/golily/pkg/pitch"
	"github.com/walteh/golily/pkg/tokenize"
	"github.com/walteh/golily/pkg/transform"
)

type Handler struct {
	files    common.Files
	includes bool
}

func NewInfoCommand() *cobra.Command {
	me := &Handler{}

	cmd := &cobra.Command{
		Use:   "info [files...]",
		Short: "describe LilyPond files: version, language, key, variables and includes",
	}

	me.files.Bind(cmd, false)
	cmd.Flags().BoolVar(&me.includes, "includes", false, "follow \\include statements and list every file reached")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return me.files.Run(cmd, args, me.Run)
	}

	return cmd
}

// Info is what the info command prints, as YAML.
type Info struct {
	Path         string            `yaml:"path"`
	Version      string            `yaml:"version,omitempty"`
	Language     string            `yaml:"language"`
	Key          string            `yaml:"key"`
	Variables    map[string]string `yaml:"variables,omitempty"`
	Definitions  []string          `yaml:"definitions,omitempty"`
	Includes     []string          `yaml:"includes,omitempty"`
	IncludeFiles []string          `yaml:"include_files,omitempty"`
	Problems     []string          `yaml:"problems,omitempty"`
}

func (me *Handler) Run(ctx context.Context, f *common.File) (string, error) {
	lang, key := transform.LanguageAndKey(f.Text)
	keyName, err := lang.Format(key)
	if err != nil {
		keyName, _ = pitch.Default().Format(key)
	}

	inf := Info{
		Path:        f.Path,
		Language:    lang.Name,
		Key:         keyName,
		Variables:   docinfo.Variables(f.Text),
		Definitions: completion.Definitions(f.Text),
		Includes:    docinfo.Includes(f.Text),
	}
	if v, ok := docinfo.Version(f.Text); ok {
		inf.Version = v
	}
	if me.includes && f.Path != common.Stdin {
		if files := docinfo.IncludeFiles(ctx, common.Fs(ctx), f.Path); len(files) > 1 {
			inf.IncludeFiles = files[1:]
		}
	}
	for _, p := range tokenize.Problems(tokenize.Default().Lex(f.Text).Collect()) {
		inf.Problems = append(inf.Problems, p.Error())
	}

	out, err := yaml.Marshal(&inf)
	if err != nil {
		return "", errors.Errorf("encoding info: %w", err)
	}
	return string(out), nil
}
