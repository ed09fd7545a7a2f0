// Package orchestrator is the single entry point hosts use to turn icon
// requests into markup. It fills unset request fields from the active theme's
// tokens (via go-theme) and configured defaults, runs the stylesheet resolver
// or glyph renderer, and hands the result to a named renderer from the
// registry.
package orchestrator
