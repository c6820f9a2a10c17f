package assign

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/golily/cmd/golily/common"
	"github.com/walteh/golily/pkg/transform"
)

type Handler struct {
	files     common.Files
	selection common.Selection
	name      string
}

func NewAssignCommand() *cobra.Command {
	me := &Handler{}

	cmd := &cobra.Command{
		Use:   "assign [files...]",
		Short: "move the selected music into a new variable and refer to it",
	}

	me.files.Bind(cmd, true)
	me.selection.Bind(cmd)
	cmd.Flags().StringVar(&me.name, "name", "", "name of the new variable (default chosen from the input mode)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return me.files.Run(cmd, args, me.Run)
	}

	return cmd
}

func (me *Handler) Run(ctx context.Context, f *common.File) (string, error) {
	start, end, ok, err := me.selection.Offsets(f.Text)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errors.Errorf("assign needs a selection, use --from and --to")
	}
	var opts []transform.Option
	if m, ok := f.Config.Mode(); ok {
		opts = append(opts, transform.WithInputMode(m))
	}
	l, name, err := transform.CutAndAssign(ctx, f.Text, start, end, me.name, opts...)
	if err != nil {
		return "", err
	}
	zerolog.Ctx(ctx).Info().Str("file", f.Path).Str("name", name).Msg("assigned")
	return l.Apply(), nil
}
