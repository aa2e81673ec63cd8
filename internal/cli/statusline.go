package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotclaude/dotclaude/internal/statusline"
)

var flagStatuslineMinimal bool

var statuslineCmd = &cobra.Command{
	Use:   "statusline",
	Short: "Render the Claude Code status line",
	Long: `Statusline reads the host's statusline JSON from stdin and writes a
single formatted line to stdout. The installed statusline.sh points Claude
Code at this command; it must never fail, so malformed input degrades to a
plain fallback line.`,
	RunE: runStatusline,
}

func init() {
	rootCmd.AddCommand(statuslineCmd)

	statuslineCmd.Flags().BoolVar(&flagStatuslineMinimal, "minimal", false, "render only the model and context segments")
}

func runStatusline(cmd *cobra.Command, _ []string) error {
	mode := statusline.ModeDefault
	if flagStatuslineMinimal {
		mode = statusline.ModeMinimal
	}

	builder := statusline.New(statusline.Options{
		Mode:          mode,
		NoColor:       flagNoColor || deps.Config.Statusline.NoColor,
		SegmentConfig: deps.Config.Statusline.Segments,
	})

	line, err := builder.Build(cmd.Context(), os.Stdin)
	if err != nil {
		// Degrade rather than break the host's status bar.
		line = "dotclaude"
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)
	return nil
}
