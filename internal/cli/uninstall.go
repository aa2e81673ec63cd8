package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotclaude/dotclaude/internal/linker"
	"github.com/dotclaude/dotclaude/internal/ui"
)

var (
	flagUninstallYes      bool
	flagUninstallManifest string
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the installed symlinks from ~/.claude",
	Long: `Uninstall deletes every manifest target from ~/.claude. Only the
symlink entries are removed; the repository's files are untouched.

Every target is attempted regardless of earlier failures, and targets that
are already absent are skipped, so uninstall is safe to re-run.`,
	RunE: runUninstall,
}

func init() {
	rootCmd.AddCommand(uninstallCmd)

	uninstallCmd.Flags().BoolVarP(&flagUninstallYes, "yes", "y", false, "skip the confirmation prompt")
	uninstallCmd.Flags().StringVarP(&flagUninstallManifest, "manifest", "m", "", "YAML manifest overriding the built-in link set")
}

func runUninstall(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	claudeHome, err := linker.ResolveClaudeHome()
	if err != nil {
		return err
	}
	paths := linker.Paths{ClaudeHome: claudeHome}

	var specs linker.Manifest
	if flagUninstallManifest != "" {
		specs, err = linker.LoadManifest(flagUninstallManifest, paths)
		if err != nil {
			return fmt.Errorf("load manifest %s: %w", flagUninstallManifest, err)
		}
	} else {
		specs = linker.DefaultManifest(paths)
	}

	if !flagUninstallYes {
		confirmed, err := deps.Confirmer.Confirm(
			fmt.Sprintf("Remove %d links from %s?", len(specs), claudeHome),
			"The repository's files stay intact; only the symlinks go away.",
			false,
		)
		if err != nil {
			if errors.Is(err, ui.ErrCancelled) {
				fmt.Fprintln(out, renderInfoCard("Uninstall cancelled", "Nothing was removed."))
				return nil
			}
			return err
		}
		if !confirmed {
			fmt.Fprintln(out, renderInfoCard("Uninstall cancelled", "Nothing was removed."))
			return nil
		}
	}

	results := linker.RemoveAll(cmd.Context(), specs)
	removed, skipped, failed := linker.CountOutcomes(results)

	pairs := make([]kvPair, 0, len(results))
	for _, r := range results {
		value := string(r.Outcome)
		if r.Err != nil {
			value += ": " + r.Err.Error()
		}
		pairs = append(pairs, kvPair{r.Target, value})
	}
	summary := fmt.Sprintf("%d removed, %d skipped, %d failed", removed, skipped, failed)

	if failed > 0 {
		fmt.Fprintln(out, renderErrorCard("Uninstall finished with failures", renderKeyValueLines(pairs)))
		return fmt.Errorf("uninstall incomplete: %s", summary)
	}

	fmt.Fprintln(out, renderSuccessCard("Uninstall complete: "+summary, renderKeyValueLines(pairs)))
	return nil
}
