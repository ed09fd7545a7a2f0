package html

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

const (
	linkTemplate  = "templates/link.tmpl"
	styleTemplate = "templates/style.tmpl"
	iconTemplate  = "templates/icon.tmpl"
)

// TemplatesFS exposes the embedded template bundle so callers can copy or
// extend it. Custom bundles must provide the same three template paths.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
