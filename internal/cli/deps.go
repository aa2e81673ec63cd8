// Package cli provides the Cobra command tree and dependency wiring for
// the dotclaude CLI. This file defines the Dependencies struct: the only
// place where concrete types are instantiated and wired together.
package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/dotclaude/dotclaude/internal/config"
	"github.com/dotclaude/dotclaude/internal/hook"
	"github.com/dotclaude/dotclaude/internal/linker"
	"github.com/dotclaude/dotclaude/internal/ui"
)

// Dependencies holds all domain-level services used by CLI commands.
type Dependencies struct {
	Config       *config.Config
	HookRegistry hook.Registry
	HookProtocol hook.Protocol
	Headless     *ui.HeadlessManager
	Progress     ui.Progress
	Confirmer    ui.Confirmer
	Logger       *slog.Logger
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// InitDependencies creates and wires all domain dependencies. It should be
// called once during application startup. Config loading tolerates a
// missing Claude home: commands that need it resolve it themselves.
func InitDependencies() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := config.NewDefaultConfig()
	if home, err := linker.ResolveClaudeHome(); err == nil {
		loaded, err := config.NewLoader().Load(linker.Paths{ClaudeHome: home}.ConfigDir())
		if err == nil {
			cfg = loaded
		} else {
			logger.Warn("config load failed, using defaults", "error", err)
		}
	}

	headless := ui.NewHeadlessManager()

	deps = &Dependencies{
		Config:       cfg,
		HookRegistry: hook.NewPipeline(cfg),
		HookProtocol: hook.NewProtocol(),
		Headless:     headless,
		Progress:     ui.NewProgress(ui.DefaultTheme(noColorRequested()), headless),
		Confirmer:    ui.NewConfirmer(headless),
		Logger:       logger,
	}
}

// GetDeps returns the current Dependencies instance, or nil before
// InitDependencies has run.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// noColorRequested honors the NO_COLOR convention at wiring time; the
// --no-color flag is applied later per command.
func noColorRequested() bool {
	_, set := os.LookupEnv("NO_COLOR")
	return set
}
