package complete

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/golily/cmd/golily/common"
	"github.com/walteh/golily/pkg/completion"
	"github.com/walteh/golily/pkg/position"
)

type Handler struct {
	json bool
}

func NewCompleteCommand() *cobra.Command {
	me := &Handler{}

	cmd := &cobra.Command{
		Use:   "complete <file|-> <line:column>",
		Short: "list completions for the word at a position",
		Args:  cobra.ExactArgs(2),
	}

	cmd.Flags().BoolVar(&me.json, "json", false, "print the result as JSON")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return me.Run(cmd, args[0], args[1])
	}

	return cmd
}

func (me *Handler) Run(cmd *cobra.Command, path, at string) error {
	ctx := cmd.Context()

	var (
		data []byte
		err  error
	)
	if path == common.Stdin {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = afero.ReadFile(common.Fs(ctx), path)
	}
	if err != nil {
		return errors.Errorf("reading %s: %w", path, err)
	}
	c, err := position.ParseCursor(at)
	if err != nil {
		return err
	}

	text := string(data)
	res := completion.Complete(ctx, text, position.NewIndex(text).Offset(c))

	w := cmd.OutOrStdout()
	if me.json {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	for _, it := range res.Items {
		fmt.Fprintf(w, "%s\t%s\n", it.Label, it.Kind)
	}
	return nil
}
