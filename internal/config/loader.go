package config

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/dotclaude/dotclaude/internal/defs"
)

// Loader reads configuration from YAML section files.
// It is thread-safe via sync.RWMutex.
type Loader struct {
	mu             sync.RWMutex
	loadedSections map[string]bool
}

// NewLoader creates a new Loader instance.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the section files from the given dotclaude config directory
// and returns a merged Config with defaults for everything not declared.
// Missing files keep defaults. Invalid YAML files are skipped with a
// warning; a broken statusline.yaml must never take the hook pipeline down
// with it.
func (l *Loader) Load(configDir string) (*Config, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.loadedSections = make(map[string]bool)
	cfg := NewDefaultConfig()

	dir := filepath.Clean(configDir)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		slog.Debug("config directory not found, using defaults", "path", dir)
		return cfg, nil
	}

	l.loadStatuslineSection(dir, cfg)
	l.loadHooksSection(dir, cfg)

	return cfg, nil
}

// LoadedSections returns a copy of the map indicating which sections were
// successfully loaded from YAML files.
func (l *Loader) LoadedSections() map[string]bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make(map[string]bool, len(l.loadedSections))
	maps.Copy(result, l.loadedSections)
	return result
}

// loadStatuslineSection loads statusline.yaml.
func (l *Loader) loadStatuslineSection(dir string, cfg *Config) {
	wrapper := &statuslineFileWrapper{Statusline: cfg.Statusline}
	loaded, err := loadYAMLFile(dir, defs.StatuslineYAML, wrapper)
	if err != nil {
		slog.Warn("failed to load statusline config, using defaults", "error", err)
		return
	}
	if loaded {
		cfg.Statusline = wrapper.Statusline
		l.loadedSections["statusline"] = true
	}
}

// loadHooksSection loads hooks.yaml.
func (l *Loader) loadHooksSection(dir string, cfg *Config) {
	wrapper := &hooksFileWrapper{Hooks: cfg.Hooks}
	loaded, err := loadYAMLFile(dir, defs.HooksYAML, wrapper)
	if err != nil {
		slog.Warn("failed to load hooks config, using defaults", "error", err)
		return
	}
	if loaded {
		cfg.Hooks = wrapper.Hooks
		l.loadedSections["hooks"] = true
	}
}

type statuslineFileWrapper struct {
	Statusline StatuslineConfig `yaml:"statusline"`
}

type hooksFileWrapper struct {
	Hooks HooksConfig `yaml:"hooks"`
}

// loadYAMLFile reads a YAML file from the given directory and unmarshals
// it into the target struct. Returns (true, nil) if the file was found and
// parsed, (false, nil) if the file does not exist, or (false, error) on
// failure.
func loadYAMLFile(dir, filename string, target any) (bool, error) {
	path := filepath.Join(dir, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return false, fmt.Errorf("parse %s: %w", filename, ErrInvalidYAML)
	}

	return true, nil
}
