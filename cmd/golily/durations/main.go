package durations

import (
	"context"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/golily/cmd/golily/common"
	"github.com/walteh/golily/pkg/changes"
	"github.com/walteh/golily/pkg/rhythm"
)

type edit func(ctx context.Context, text string, opts ...rhythm.Option) (*changes.List, error)

var edits = map[string]edit{
	"double":            rhythm.Double,
	"halve":             rhythm.Halve,
	"dot":               rhythm.Dot,
	"undot":             rhythm.Undot,
	"remove-scaling":    rhythm.RemoveScaling,
	"remove":            rhythm.RemoveDurations,
	"implicit":          rhythm.MakeImplicit,
	"implicit-per-line": rhythm.MakeImplicitPerLine,
	"explicit":          rhythm.MakeExplicit,
}

func names() []string {
	out := make([]string, 0, len(edits))
	for k := range edits {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

type Handler struct {
	files     common.Files
	selection common.Selection
	edit      edit
}

func NewDurationsCommand() *cobra.Command {
	me := &Handler{}

	cmd := &cobra.Command{
		Use:       "durations <" + strings.Join(names(), "|") + "> [files...]",
		Short:     "rewrite the durations of notes, rests and chords",
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: names(),
	}

	me.files.Bind(cmd, true)
	me.selection.Bind(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		e, ok := edits[args[0]]
		if !ok {
			return errors.Errorf("unknown duration edit %q, want one of %s", args[0], strings.Join(names(), ", "))
		}
		me.edit = e
		return me.files.Run(cmd, args[1:], me.Run)
	}

	return cmd
}

func (me *Handler) Run(ctx context.Context, f *common.File) (string, error) {
	opts, err := me.selection.RhythmOptions(f)
	if err != nil {
		return "", err
	}
	return common.Apply(me.edit(ctx, f.Text, opts...))
}
