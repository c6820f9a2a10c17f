package absolute

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/walteh/golily/cmd/golily/common"
	"github.com/walteh/golily/pkg/transform"
)

type Handler struct {
	files     common.Files
	selection common.Selection
}

func NewAbsoluteCommand() *cobra.Command {
	me := &Handler{}

	cmd := &cobra.Command{
		Use:   "absolute [files...]",
		Short: `convert \relative music to absolute pitches`,
	}

	me.files.Bind(cmd, true)
	me.selection.Bind(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return me.files.Run(cmd, args, me.Run)
	}

	return cmd
}

func (me *Handler) Run(ctx context.Context, f *common.File) (string, error) {
	opts, err := me.selection.TransformOptions(f)
	if err != nil {
		return "", err
	}
	return common.Apply(transform.RelativeToAbsolute(ctx, f.Text, opts...))
}
