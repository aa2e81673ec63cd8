package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/dotclaude/dotclaude/internal/defs"
	"github.com/dotclaude/dotclaude/internal/linker"
)

var previewCmd = &cobra.Command{
	Use:   "preview <name|path>",
	Short: "Render an installed agent, command or skill document",
	Long: `Preview renders a markdown document from the linked configuration
in the terminal. The argument is either a file path or a bare name that is
looked up under the agents, commands, skills and output-styles directories
of ~/.claude.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	path, err := resolveDocument(args[0])
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	if flagNoColor {
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	rendered, err := renderer.Render(string(data))
	if err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}

// resolveDocument maps a bare name to an installed markdown document. An
// argument naming an existing file wins; otherwise the linked directories
// are searched in a fixed order.
func resolveDocument(arg string) (string, error) {
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		return arg, nil
	}

	claudeHome, err := linker.ResolveClaudeHome()
	if err != nil {
		return "", err
	}

	candidates := []string{
		filepath.Join(claudeHome, defs.AgentsDir, arg+".md"),
		filepath.Join(claudeHome, defs.CommandsDir, arg+".md"),
		filepath.Join(claudeHome, defs.SkillsDir, arg, "SKILL.md"),
		filepath.Join(claudeHome, defs.OutputStylesDir, arg+".md"),
	}
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no document named %q under %s", arg, claudeHome)
}
