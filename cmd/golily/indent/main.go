package indent

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/walteh/golily/cmd/golily/common"
	lyindent "github.com/walteh/golily/pkg/indent"
)

type Handler struct {
	files common.Files
	width int
	tabs  bool
}

func NewIndentCommand() *cobra.Command {
	me := &Handler{}

	cmd := &cobra.Command{
		Use:   "indent [files...]",
		Short: "re-indent LilyPond files",
	}

	me.files.Bind(cmd, true)
	cmd.Flags().IntVar(&me.width, "width", 0, "indent width (default from config)")
	cmd.Flags().BoolVar(&me.tabs, "tabs", false, "indent with tabs")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return me.files.Run(cmd, args, me.Run)
	}

	return cmd
}

func (me *Handler) Run(ctx context.Context, f *common.File) (string, error) {
	opts := f.Config.IndentOptions()
	if me.width > 0 {
		opts.IndentWidth = me.width
	}
	if me.tabs {
		useTabs := true
		opts.UseTabs = &useTabs
	}
	return lyindent.Indent(ctx, f.Text, opts), nil
}
