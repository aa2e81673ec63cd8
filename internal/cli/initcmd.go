package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotclaude/dotclaude/internal/scaffold"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Scaffold a new configuration repository",
	Long: `Init writes the claude/ subtree skeleton into the given directory
(default: the current one): a starter settings.json wired to the dotclaude
statusline and hook commands, a CLAUDE.md stub, and the agents, commands,
skills, hooks and output-styles directories.

Existing files are never overwritten, so init is safe to run inside a
populated checkout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	result, err := scaffold.New(scaffold.DefaultFS()).Scaffold(cmd.Context(), dir)
	if err != nil {
		return fmt.Errorf("scaffold %s: %w", dir, err)
	}

	pairs := make([]kvPair, 0, len(result.Written)+len(result.Skipped))
	for _, path := range result.Written {
		pairs = append(pairs, kvPair{path, "written"})
	}
	for _, path := range result.Skipped {
		pairs = append(pairs, kvPair{path, "kept existing"})
	}

	title := fmt.Sprintf("Scaffolded %d files (%d kept)", len(result.Written), len(result.Skipped))
	fmt.Fprintln(cmd.OutOrStdout(), renderSuccessCard(title, renderKeyValueLines(pairs)))
	return nil
}
