package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotclaude/dotclaude/internal/linker"
)

var flagStatusSource string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of every manifest link",
	Long: `Status inspects each manifest target under ~/.claude without
changing anything: linked, conflict (something else occupies the target),
missing-source (the repository side is gone) or absent.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().StringVarP(&flagStatusSource, "source", "s", ".", "repository checkout containing the claude/ subtree")
}

func runStatus(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	paths, err := linker.ResolvePaths(flagStatusSource)
	if err != nil {
		// Without a source tree the targets can still be inspected; every
		// spec's source side will just read as missing.
		claudeHome, homeErr := linker.ResolveClaudeHome()
		if homeErr != nil {
			return homeErr
		}
		paths = linker.Paths{ClaudeHome: claudeHome}
	}

	statuses := linker.Inspect(linker.DefaultManifest(paths))

	linked := 0
	pairs := make([]kvPair, 0, len(statuses))
	for _, s := range statuses {
		pairs = append(pairs, kvPair{s.Spec.Name, statusGlyph(s.State) + " " + string(s.State)})
		if s.State == linker.StateLinked {
			linked++
		}
	}

	title := fmt.Sprintf("Link status: %d/%d linked", linked, len(statuses))
	if linked == len(statuses) {
		fmt.Fprintln(out, renderSuccessCard(title, renderKeyValueLines(pairs)))
	} else {
		fmt.Fprintln(out, renderCard(title, renderKeyValueLines(pairs)))
	}
	return nil
}

func statusGlyph(state linker.LinkState) string {
	switch state {
	case linker.StateLinked:
		return "✓"
	case linker.StateConflict:
		return "✗"
	case linker.StateMissingSource:
		return "!"
	default:
		return "·"
	}
}
