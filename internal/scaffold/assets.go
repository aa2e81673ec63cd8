package scaffold

import (
	"embed"
	"io/fs"
)

//go:embed all:templates
var templateFS embed.FS

// DefaultFS returns the embedded repository skeleton, rooted so that its
// top level is the repository root (the claude/ subtree sits directly
// inside it).
func DefaultFS() fs.FS {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(err)
	}
	return sub
}
