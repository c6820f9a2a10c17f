package translate

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/walteh/golily/cmd/golily/common"
	"github.com/walteh/golily/pkg/transform"
)

type Handler struct {
	files     common.Files
	selection common.Selection
	language  string
}

func NewTranslateCommand() *cobra.Command {
	me := &Handler{}

	cmd := &cobra.Command{
		Use:   "translate <language> [files...]",
		Short: "rewrite note names in another pitch name language",
		Args:  cobra.MinimumNArgs(1),
	}

	me.files.Bind(cmd, true)
	me.selection.Bind(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		me.language = args[0]
		return me.files.Run(cmd, args[1:], me.Run)
	}

	return cmd
}

func (me *Handler) Run(ctx context.Context, f *common.File) (string, error) {
	opts, err := me.selection.TransformOptions(f)
	if err != nil {
		return "", err
	}
	return common.Apply(transform.Translate(ctx, f.Text, me.language, opts...))
}
