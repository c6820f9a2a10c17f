package bundle

import (
	"bytes"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/golily/cmd/golily/common"
	"github.com/walteh/golily/pkg/archive"
)

func NewBundleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bundle",
		Short: "pack a document with its includes into a .tar.gz, or unpack one",
	}

	cmd.AddCommand(newCreateCommand(), newExtractCommand())

	return cmd
}

type createHandler struct {
	output string
}

func newCreateCommand() *cobra.Command {
	me := &createHandler{}

	cmd := &cobra.Command{
		Use:   "create <file>",
		Short: "pack a LilyPond file and every file it includes",
		Args:  cobra.ExactArgs(1),
	}

	cmd.Flags().StringVarP(&me.output, "output", "o", "", "archive to write (default <file>.tar.gz)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return me.Run(cmd, args[0])
	}

	return cmd
}

func (me *createHandler) Run(cmd *cobra.Command, file string) error {
	ctx := cmd.Context()
	fs := common.Fs(ctx)

	output := me.output
	if output == "" {
		output = file + ".tar.gz"
	}

	var buf bytes.Buffer
	names, err := archive.Pack(ctx, fs, &buf, file)
	if err != nil {
		return err
	}
	if err := afero.WriteFile(fs, output, buf.Bytes(), 0o644); err != nil {
		return errors.Errorf("writing %s: %w", output, err)
	}
	for _, n := range names {
		fmt.Fprintln(cmd.OutOrStdout(), n)
	}
	zerolog.Ctx(ctx).Info().Str("archive", output).Int("files", len(names)).Msg("bundled")
	return nil
}

type extractHandler struct {
	dir   string
	strip int
}

func newExtractCommand() *cobra.Command {
	me := &extractHandler{}

	cmd := &cobra.Command{
		Use:   "extract <archive>",
		Short: "unpack a bundle",
		Args:  cobra.ExactArgs(1),
	}

	cmd.Flags().StringVarP(&me.dir, "dir", "C", ".", "directory to unpack into")
	cmd.Flags().IntVar(&me.strip, "strip-components", 0, "leading path components to remove")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return me.Run(cmd, args[0])
	}

	return cmd
}

func (me *extractHandler) Run(cmd *cobra.Command, path string) error {
	ctx := cmd.Context()
	fs := common.Fs(ctx)

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return errors.Errorf("reading %s: %w", path, err)
	}
	written, err := archive.Unpack(ctx, fs, bytes.NewReader(data), me.dir, archive.ExtractOptions{StripComponents: me.strip})
	if err != nil {
		return err
	}
	for _, w := range written {
		fmt.Fprintln(cmd.OutOrStdout(), w)
	}
	return nil
}
