package common

import (
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/golily/pkg/position"
)

// Selection limits a command to part of its input. Lines and columns are
// zero-based, like editor cursors.
type Selection struct {
	From string
	To   string
}

func (s *Selection) Bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.From, "from", "", "start of the selection, as line:column")
	cmd.Flags().StringVar(&s.To, "to", "", "end of the selection, as line:column (default end of input)")
}

// Offsets returns the byte range of the selection in text, or false when
// no selection was given.
func (s *Selection) Offsets(text string) (int, int, bool, error) {
	if s.From == "" && s.To == "" {
		return 0, 0, false, nil
	}
	ix := position.NewIndex(text)
	start, end := 0, len(text)
	if s.From != "" {
		c, err := position.ParseCursor(s.From)
		if err != nil {
			return 0, 0, false, errors.Errorf("--from: %w", err)
		}
		start = ix.Offset(c)
	}
	if s.To != "" {
		c, err := position.ParseCursor(s.To)
		if err != nil {
			return 0, 0, false, errors.Errorf("--to: %w", err)
		}
		end = ix.Offset(c)
	}
	if end < start {
		return 0, 0, false, errors.Errorf("selection ends before it starts")
	}
	return start, end, true, nil
}
