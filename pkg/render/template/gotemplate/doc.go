// Package gotemplate implements template.TemplateRenderer on top of a pongo2
// template set. Templates load from an fs.FS (typically embedded) or a base
// directory and are compiled once per path.
package gotemplate
