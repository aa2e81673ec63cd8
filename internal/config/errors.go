package config

import "errors"

// ErrInvalidYAML indicates a section file exists but could not be parsed.
// The loader reports it as a warning and keeps the section's defaults.
var ErrInvalidYAML = errors.New("invalid YAML in config section")
