package transpose

import (
	"context"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/golily/cmd/golily/common"
	"github.com/walteh/golily/pkg/pitch"
	"github.com/walteh/golily/pkg/transform"
)

type Handler struct {
	files     common.Files
	selection common.Selection
	from, to  string
}

func NewTransposeCommand() *cobra.Command {
	me := &Handler{}

	cmd := &cobra.Command{
		Use:   "transpose <from> <to> [files...]",
		Short: "transpose music by the interval between two pitches",
		Long: `Transpose music by the interval between two pitches, written like the
arguments of \transpose in the language of each file: "c d" moves up a
major second, "c bes," down a major second.`,
		Args: cobra.MinimumNArgs(2),
	}

	me.files.Bind(cmd, true)
	me.selection.Bind(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		me.from, me.to = args[0], args[1]
		return me.files.Run(cmd, args[2:], me.Run)
	}

	return cmd
}

// language is the one the pitch arguments are read in: the configured one,
// else the one the document selects.
func language(f *common.File) *pitch.Language {
	if l, ok := pitch.Lookup(f.Config.Language); ok {
		return l
	}
	l, _ := transform.LanguageAndKey(f.Text)
	return l
}

func (me *Handler) Run(ctx context.Context, f *common.File) (string, error) {
	lang := language(f)
	from, ok := lang.ReadNote(me.from)
	if !ok {
		return "", errors.Errorf("%q is not a pitch in %s", me.from, lang.Name)
	}
	to, ok := lang.ReadNote(me.to)
	if !ok {
		return "", errors.Errorf("%q is not a pitch in %s", me.to, lang.Name)
	}
	opts, err := me.selection.TransformOptions(f)
	if err != nil {
		return "", err
	}
	return common.Apply(transform.Transpose(ctx, f.Text, from.Pitch, to.Pitch, opts...))
}
