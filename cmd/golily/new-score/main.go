package newscore

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/golily/cmd/golily/common"
	"github.com/walteh/golily/pkg/score"
)

type Handler struct {
	output string
}

func NewNewScoreCommand() *cobra.Command {
	me := &Handler{}

	cmd := &cobra.Command{
		Use:   "new-score <definition>",
		Short: "write a score skeleton from an HCL or YAML definition",
		Long: `Write a score skeleton from an HCL (.hcl) or YAML (.yaml, .yml) definition
listing the title, key, time and parts. Example:

  title = "Duet"
  key   = "d minor"
  part "staff" { instrument = "Flute" }
  part "piano" {}`,
		Args: cobra.ExactArgs(1),
	}

	cmd.Flags().StringVarP(&me.output, "output", "o", "", "file to write instead of standard output")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return me.Run(cmd, args[0])
	}

	return cmd
}

func (me *Handler) Run(cmd *cobra.Command, path string) error {
	ctx := cmd.Context()
	fs := common.Fs(ctx)

	def, err := score.LoadDefinition(ctx, fs, path)
	if err != nil {
		return err
	}
	cfg, err := common.Config(cmd, path)
	if err != nil {
		return err
	}
	if def.Version == "" {
		def.Version = cfg.Version
	}

	doc, err := score.Build(ctx, def)
	if err != nil {
		return err
	}
	doc.Indent = cfg.IndentOptions()
	doc.TypographicalQuotes = cfg.TypographicalQuotes
	text, err := doc.Render(ctx)
	if err != nil {
		return errors.Errorf("rendering score: %w", err)
	}

	if me.output == "" {
		_, err = io.WriteString(cmd.OutOrStdout(), text)
		return err
	}
	if err := afero.WriteFile(fs, me.output, []byte(text), 0o644); err != nil {
		return errors.Errorf("writing %s: %w", me.output, err)
	}
	zerolog.Ctx(ctx).Info().Str("file", me.output).Int("parts", len(def.Parts)).Msg("wrote score")
	return nil
}
