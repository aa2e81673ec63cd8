package statusline

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"

	"github.com/dotclaude/dotclaude/internal/linker"
	"github.com/dotclaude/dotclaude/pkg/version"
)

// Builder produces the statusline string from the host's stdin payload.
type Builder interface {
	Build(ctx context.Context, r io.Reader) (string, error)
}

// Options configures a new Builder.
type Options struct {
	// LinkProvider reports symlink health. When nil the default manifest
	// under the resolved Claude home is inspected; when that cannot be
	// resolved the segment is skipped.
	LinkProvider LinkHealthProvider

	// Mode sets the display mode; empty means ModeDefault.
	Mode Mode

	// NoColor disables all ANSI color output.
	NoColor bool

	// SegmentConfig maps segment keys to enabled state. Nil shows all.
	SegmentConfig map[string]bool
}

type defaultBuilder struct {
	linkProvider LinkHealthProvider
	renderer     *Renderer
	mode         Mode
	mu           sync.RWMutex
}

// New creates a Builder with the given options.
func New(opts Options) Builder {
	mode := opts.Mode
	if mode == "" {
		mode = ModeDefault
	}

	linkProvider := opts.LinkProvider
	if linkProvider == nil {
		if home, err := linker.ResolveClaudeHome(); err == nil {
			linkProvider = NewLinkCollector(linker.DefaultManifest(linker.Paths{ClaudeHome: home}))
		} else {
			slog.Debug("claude home not resolvable, skipping link segment", "error", err)
		}
	}

	return &defaultBuilder{
		linkProvider: linkProvider,
		renderer:     NewRenderer(opts.NoColor, opts.SegmentConfig),
		mode:         mode,
	}
}

// Build reads the statusline JSON from r and returns the rendered line.
// Malformed or empty input degrades to the fallback output; the returned
// string never contains a newline.
func (b *defaultBuilder) Build(ctx context.Context, r io.Reader) (string, error) {
	input := parseStdin(r)
	if input == nil {
		return fallbackLine, nil
	}
	data := b.collectAll(ctx, input)
	return b.renderer.Render(data, b.getMode()), nil
}

func (b *defaultBuilder) getMode() Mode {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.mode
}

// SetMode switches the display mode.
func (b *defaultBuilder) SetMode(mode Mode) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.mode = mode
}

// parseStdin returns nil on any decode error so a broken host payload
// degrades to the fallback line instead of failing the script.
func parseStdin(r io.Reader) *StdinData {
	if r == nil {
		return nil
	}
	var input StdinData
	if err := json.NewDecoder(r).Decode(&input); err != nil {
		slog.Debug("statusline stdin parse failed", "error", err)
		return nil
	}
	return &input
}

// collectAll gathers all segments. The instant collectors run inline; the
// link inspection involves filesystem I/O and runs concurrently. Collector
// failures are non-fatal and leave their segment empty.
func (b *defaultBuilder) collectAll(ctx context.Context, input *StdinData) *StatusData {
	data := &StatusData{ToolVersion: version.GetVersion()}

	if mem := CollectMemory(input); mem != nil {
		data.Memory = *mem
	}
	if met := CollectMetrics(input); met != nil {
		data.Metrics = *met
	}
	data.Directory = extractDirectory(input)
	if input != nil && input.OutputStyle != nil {
		data.OutputStyle = input.OutputStyle.Name
	}
	if input != nil {
		data.ClaudeCodeVersion = input.Version
	}

	if b.linkProvider != nil {
		var wg sync.WaitGroup
		var linkResult *LinkHealthData
		wg.Go(func() {
			result, err := b.linkProvider.CollectLinkHealth(ctx)
			if err != nil {
				slog.Debug("link health collection failed", "error", err)
				return
			}
			linkResult = result
		})
		wg.Wait()
		if linkResult != nil {
			data.Links = *linkResult
		}
	}

	return data
}
