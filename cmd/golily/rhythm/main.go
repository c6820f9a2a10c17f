package rhythm

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/walteh/golily/cmd/golily/common"
	lyrhythm "github.com/walteh/golily/pkg/rhythm"
)

func NewRhythmCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rhythm",
		Short: "copy rhythms between pieces of music",
	}

	cmd.AddCommand(newExtractCommand(), newApplyCommand())

	return cmd
}

type extractHandler struct {
	files     common.Files
	selection common.Selection
}

func newExtractCommand() *cobra.Command {
	me := &extractHandler{}

	cmd := &cobra.Command{
		Use:   "extract [files...]",
		Short: "print the durations written after the notes",
	}

	me.files.Bind(cmd, false)
	me.selection.Bind(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return me.files.Run(cmd, args, me.Run)
	}

	return cmd
}

func (me *extractHandler) Run(ctx context.Context, f *common.File) (string, error) {
	opts, err := me.selection.RhythmOptions(f)
	if err != nil {
		return "", err
	}
	return strings.Join(lyrhythm.Extract(f.Text, opts...), " ") + "\n", nil
}

type applyHandler struct {
	files     common.Files
	selection common.Selection
	rhythm    []string
}

func newApplyCommand() *cobra.Command {
	me := &applyHandler{}

	cmd := &cobra.Command{
		Use:   "apply <rhythm> [files...]",
		Short: `give the notes the durations of a rhythm such as "8. 16 8", repeating it`,
		Args:  cobra.MinimumNArgs(1),
	}

	me.files.Bind(cmd, true)
	me.selection.Bind(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		r, err := lyrhythm.ParseRhythm(args[0])
		if err != nil {
			return err
		}
		me.rhythm = r
		return me.files.Run(cmd, args[1:], me.Run)
	}

	return cmd
}

func (me *applyHandler) Run(ctx context.Context, f *common.File) (string, error) {
	opts, err := me.selection.RhythmOptions(f)
	if err != nil {
		return "", err
	}
	return common.Apply(lyrhythm.Apply(ctx, f.Text, me.rhythm, opts...))
}
