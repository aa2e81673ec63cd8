package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotclaude/dotclaude/internal/hook"
)

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Execute hook event handlers",
	Long: `Execute Claude Code hook event handlers. The installed
settings.json invokes these subcommands; they read the event payload from
stdin and answer on stdout. A hook must never break the session, so every
failure path degrades to the empty pass-through output.`,
}

func init() {
	rootCmd.AddCommand(hookCmd)

	hookCmd.AddCommand(&cobra.Command{
		Use:   "post-tool",
		Short: "Handle the post-tool-use event",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHookEvent(cmd, hook.EventPostToolUse)
		},
	})

	hookCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List registered hook handlers",
		RunE:  runHookList,
	})
}

// runHookEvent dispatches a hook event by reading JSON from stdin and
// writing the decision to stdout. It always exits 0: a malformed payload
// or a handler failure answers with {} so Claude Code carries on.
func runHookEvent(cmd *cobra.Command, event hook.EventType) error {
	if deps == nil || deps.HookProtocol == nil || deps.HookRegistry == nil {
		return fmt.Errorf("hook system not initialized")
	}

	input, err := deps.HookProtocol.ReadInput(os.Stdin)
	if err != nil {
		if errors.Is(err, hook.ErrInvalidInput) {
			return deps.HookProtocol.WriteOutput(os.Stdout, nil)
		}
		return fmt.Errorf("read hook input: %w", err)
	}

	output, err := deps.HookRegistry.Dispatch(cmd.Context(), event, input)
	if err != nil {
		deps.Logger.Warn("hook dispatch failed", "event", string(event), "error", err)
		return deps.HookProtocol.WriteOutput(os.Stdout, nil)
	}

	if writeErr := deps.HookProtocol.WriteOutput(os.Stdout, output); writeErr != nil {
		return fmt.Errorf("write hook output: %w", writeErr)
	}
	return nil
}

// runHookList displays all registered hook handlers.
func runHookList(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if deps == nil || deps.HookRegistry == nil {
		fmt.Fprintln(out, renderInfoCard("Registered Hook Handlers", "Hook system not initialized."))
		return nil
	}

	handlers := deps.HookRegistry.Handlers(hook.EventPostToolUse)
	if len(handlers) == 0 {
		fmt.Fprintln(out, renderInfoCard("Registered Hook Handlers", "No handlers registered."))
		return nil
	}

	label := "handler"
	if len(handlers) > 1 {
		label = "handlers"
	}
	pairs := []kvPair{{string(hook.EventPostToolUse), fmt.Sprintf("%d %s", len(handlers), label)}}
	fmt.Fprintln(out, renderCard("Registered Hook Handlers", renderKeyValueLines(pairs)))
	return nil
}
