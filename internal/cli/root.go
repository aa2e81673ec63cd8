package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotclaude/dotclaude/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "dotclaude",
	Short: "dotclaude: personal Claude Code configuration manager",
	Long: `dotclaude manages a versioned Claude Code configuration repository.

It installs the repository's agents, commands, skills, hooks, output styles
and settings into ~/.claude as symlinks, keeps them removable in one step,
and provides the statusline and workflow hook executables the installed
configuration points at.`,
	Version: version.GetVersion(),
}

var (
	flagVerbose bool
	flagNoColor bool
)

// Execute initializes dependencies and runs the root command.
func Execute() error {
	InitDependencies()
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("dotclaude %s\n", version.GetVersion()))

	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			slog.SetLogLoggerLevel(slog.LevelDebug)
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		}
		if flagNoColor {
			DisableColor()
		}
	}
}
