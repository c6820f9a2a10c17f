package tokens

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/walteh/golily/cmd/golily/common"
	"github.com/walteh/golily/pkg/semtok"
	"github.com/walteh/golily/pkg/tokenize"
)

type Handler struct {
	files    common.Files
	semantic bool
	spaces   bool
}

func NewTokensCommand() *cobra.Command {
	me := &Handler{}

	cmd := &cobra.Command{
		Use:   "tokens [files...]",
		Short: "print the tokens of LilyPond files",
	}

	me.files.Bind(cmd, false)
	cmd.Flags().BoolVar(&me.semantic, "semantic", false, "print highlighting categories instead of tokenizer kinds")
	cmd.Flags().BoolVar(&me.spaces, "spaces", false, "include whitespace tokens")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return me.files.Run(cmd, args, me.Run)
	}

	return cmd
}

var typeColors = map[semtok.TokenType]*color.Color{
	semtok.TokenKeyword:   color.New(color.FgMagenta, color.Bold),
	semtok.TokenFunction:  color.New(color.FgBlue),
	semtok.TokenVariable:  color.New(color.FgCyan),
	semtok.TokenString:    color.New(color.FgGreen),
	semtok.TokenComment:   color.New(color.Faint),
	semtok.TokenNumber:    color.New(color.FgYellow),
	semtok.TokenNote:      color.New(color.FgHiWhite, color.Bold),
	semtok.TokenDecorator: color.New(color.FgRed),
	semtok.TokenMacro:     color.New(color.FgHiMagenta),
	semtok.TokenContext:   color.New(color.FgHiBlue),
}

func (me *Handler) Run(ctx context.Context, f *common.File) (string, error) {
	var b strings.Builder
	if me.semantic {
		for _, t := range semtok.Tokens(f.Text) {
			c, ok := typeColors[t.Type]
			if !ok {
				c = color.New(color.Reset)
			}
			mods := ""
			if t.Modifier != semtok.ModifierNone {
				mods = " " + t.Modifier.String()
			}
			fmt.Fprintf(&b, "%-8s %s%s %q\n", t.Range.Start, c.Sprint(t.Type), mods, t.Position.Text)
		}
		return b.String(), nil
	}

	toks := tokenize.Default().Lex(f.Text).Collect()
	for _, t := range toks {
		if t.Kind == tokenize.Space && !me.spaces {
			continue
		}
		kind := color.New(color.Faint).Sprint(t.Kind)
		if t.Kind == tokenize.Error {
			kind = color.New(color.FgRed, color.Bold).Sprint(t.Kind)
		}
		fmt.Fprintf(&b, "%-8s %-14s %-22s %q\n", t.Start(), t.Parser, kind, t.Text)
	}
	for _, err := range tokenize.Problems(toks) {
		zerolog.Ctx(ctx).Warn().Str("file", f.Path).Err(err).Msg("tokenizer problem")
	}
	return b.String(), nil
}
