package main

import (
	"context"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/golily/cmd/golily/absolute"
	"github.com/walteh/golily/cmd/golily/assign"
	"github.com/walteh/golily/cmd/golily/bundle"
	"github.com/walteh/golily/cmd/golily/complete"
	"github.com/walteh/golily/cmd/golily/durations"
	indentcmd "github.com/walteh/golily/cmd/golily/indent"
	"github.com/walteh/golily/cmd/golily/info"
	"github.com/walteh/golily/cmd/golily/link"
	newscore "github.com/walteh/golily/cmd/golily/new-score"
	"github.com/walteh/golily/cmd/golily/relative"
	"github.com/walteh/golily/cmd/golily/rhythm"
	"github.com/walteh/golily/cmd/golily/tokens"
	"github.com/walteh/golily/cmd/golily/translate"
	"github.com/walteh/golily/cmd/golily/transpose"
	lydebug "github.com/walteh/golily/pkg/debug"
)

func main() {
	if err := run(); err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "golily",
		Short:         "Read, reformat and rewrite LilyPond source",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&verbose, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("config", "", "config file to use instead of the nearest .golily.hcl or .golily.yaml")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logger := lydebug.NewLogger(cmd.ErrOrStderr(), verbose)
		cmd.SetContext(logger.WithContext(cmd.Context()))
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		rootCmd.Version = "unknown"
	} else {
		rootCmd.Version = bi.Main.Version
	}

	cmdVersion := &cobra.Command{
		Use: "raw-version",
		Run: func(cmdz *cobra.Command, args []string) {
			cmdz.Println(rootCmd.Version)
		},
		Hidden: true,
	}

	rootCmd.AddCommand(cmdVersion)

	rootCmd.AddCommand(
		tokens.NewTokensCommand(),
		indentcmd.NewIndentCommand(),
		translate.NewTranslateCommand(),
		transpose.NewTransposeCommand(),
		relative.NewRelativeCommand(),
		absolute.NewAbsoluteCommand(),
		durations.NewDurationsCommand(),
		rhythm.NewRhythmCommand(),
		assign.NewAssignCommand(),
		bundle.NewBundleCommand(),
		info.NewInfoCommand(),
		link.NewLinkCommand(),
		newscore.NewNewScoreCommand(),
		complete.NewCompleteCommand(),
	)

	return rootCmd
}

func run() error {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		return errors.Errorf("failed to execute command: %w", err)
	}

	return nil
}
