package template

import (
	"embed"
	"io/fs"
)

// The all: prefix is required: expo-router layout files are
// underscore-prefixed and would otherwise be excluded from the embed.
//
//go:embed all:templates
var embeddedFS embed.FS

// EmbeddedTemplates returns the embedded template filesystem rooted at
// the templates directory, so template names are plain relative paths
// like "app/_layout.tsx.tmpl".
func EmbeddedTemplates() (fs.FS, error) {
	return fs.Sub(embeddedFS, "templates")
}
