package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dotclaude/dotclaude/internal/linker"
	"github.com/dotclaude/dotclaude/internal/ui"
)

var (
	flagInstallSource   string
	flagInstallManifest string
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Symlink the repository's configuration into ~/.claude",
	Long: `Install creates one symlink per manifest entry inside ~/.claude,
pointing back into this repository's claude/ subtree.

Nothing is copied: editing a linked file edits the repository checkout.
Install refuses to overwrite anything that already exists and rolls back
the links it created when a later one fails, so the config home is never
left half-installed.`,
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)

	installCmd.Flags().StringVarP(&flagInstallSource, "source", "s", ".", "repository checkout containing the claude/ subtree")
	installCmd.Flags().StringVarP(&flagInstallManifest, "manifest", "m", "", "YAML manifest overriding the built-in link set")
}

// barReporter adapts a ui.ProgressBar to the installer's Reporter.
type barReporter struct {
	bar ui.ProgressBar
}

func (r barReporter) LinkCreated(spec linker.LinkSpec) {
	r.bar.SetTitle("linked " + spec.Name)
	r.bar.Increment(1)
}

func runInstall(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	paths, err := linker.ResolvePaths(flagInstallSource)
	if err != nil {
		if errors.Is(err, linker.ErrSourceRootNotFound) {
			return fmt.Errorf("no claude/ subtree under %s (run from the repository root or pass --source)", flagInstallSource)
		}
		return err
	}

	specs, err := resolveManifest(paths)
	if err != nil {
		return err
	}

	bar := deps.Progress.Start("linking", len(specs))
	installer := linker.NewInstaller(barReporter{bar: bar})

	err = installer.Install(cmd.Context(), paths.ClaudeHome, specs)
	bar.Done()

	if err != nil {
		return reportInstallFailure(cmd, err)
	}

	pairs := make([]kvPair, 0, len(specs))
	for _, spec := range specs {
		pairs = append(pairs, kvPair{spec.Name, spec.Target + " → " + spec.Source})
	}
	fmt.Fprintln(out, renderSuccessCard(
		fmt.Sprintf("Installed %d links into %s", len(specs), paths.ClaudeHome),
		renderKeyValueLines(pairs),
	))
	return nil
}

// resolveManifest returns the override manifest when --manifest is set,
// otherwise the compiled-in default.
func resolveManifest(paths linker.Paths) (linker.Manifest, error) {
	if flagInstallManifest == "" {
		return linker.DefaultManifest(paths), nil
	}
	specs, err := linker.LoadManifest(flagInstallManifest, paths)
	if err != nil {
		return nil, fmt.Errorf("load manifest %s: %w", flagInstallManifest, err)
	}
	return specs, nil
}

// reportInstallFailure renders the precondition and rollback detail before
// surfacing the error to cobra.
func reportInstallFailure(cmd *cobra.Command, err error) error {
	out := cmd.OutOrStdout()

	var conflict *linker.ConflictError
	if errors.As(err, &conflict) {
		fmt.Fprintln(out, renderErrorCard(
			"Install refused: targets already exist",
			strings.Join(conflict.Targets, "\n")+
				"\n\nMove or delete these paths, then run install again. Nothing was changed.",
		))
		return err
	}

	var missing *linker.MissingSourceError
	if errors.As(err, &missing) {
		fmt.Fprintln(out, renderErrorCard(
			"Install refused: sources missing or wrong kind",
			strings.Join(missing.Sources, "\n")+
				"\n\nThe repository checkout looks incomplete. Nothing was changed.",
		))
		return err
	}

	var linkErr *linker.LinkError
	if errors.As(err, &linkErr) {
		body := fmt.Sprintf("Failed at %s: %v\n\nLinks created in this run were rolled back.", linkErr.Spec.Target, linkErr.Err)
		fmt.Fprintln(out, renderErrorCard("Install failed", body))
		for _, target := range linkErr.RollbackWarnings {
			fmt.Fprintln(out, cliWarn("rollback could not remove "+target))
		}
		return err
	}

	return err
}
