package materialicons

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-material-icons/pkg/glyph"
	"github.com/goliatone/go-material-icons/pkg/model"
	"github.com/goliatone/go-material-icons/pkg/orchestrator"
	"github.com/goliatone/go-material-icons/pkg/stylesheet"
)

// Aliases for the core vocabulary so most callers only import this package.
type (
	FontVariant        = model.FontVariant
	IconColor          = model.IconColor
	IconSize           = model.IconSize
	IconDescriptor     = model.IconDescriptor
	ResourceDescriptor = model.ResourceDescriptor
	RenderOutput       = model.RenderOutput
)

// Font variants.
var (
	Regular  = model.Regular
	Outlined = model.Outlined
	Round    = model.Round
	Sharp    = model.Sharp
	TwoTone  = model.TwoTone
)

// Colour tokens.
var (
	Inherit       = model.Inherit
	Dark          = model.Dark
	DarkInactive  = model.DarkInactive
	Light         = model.Light
	LightInactive = model.LightInactive
)

// ErrEmptyName is returned by Render for a blank icon name.
var ErrEmptyName = glyph.ErrEmptyName

// SelfHosted returns the variant serving all faces from source.
func SelfHosted(source string) FontVariant {
	return model.SelfHosted(source)
}

// Custom returns a colour rendered verbatim. The value is not sanitised.
func Custom(css string) IconColor {
	return model.Custom(css)
}

// Px returns an explicit pixel size.
func Px(n uint32) IconSize {
	return model.Px(n)
}

// Resolve maps a font variant to the stylesheet resource the page needs.
func Resolve(variant FontVariant) ResourceDescriptor {
	return stylesheet.Resolve(variant)
}

// Render turns an icon descriptor into class list, style and text.
func Render(desc IconDescriptor) (RenderOutput, error) {
	return glyph.Render(desc)
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// StylesheetHTML renders the stylesheet element for variant with the default
// HTML renderer.
func StylesheetHTML(ctx context.Context, variant FontVariant, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Stylesheet(ctx, orchestrator.StylesheetRequest{Variant: &variant})
}

// IconHTML renders the icon element for desc with the default HTML renderer.
func IconHTML(ctx context.Context, desc IconDescriptor, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Icon(ctx, orchestrator.IconRequest{
		Name:  desc.Name,
		Size:  &desc.Size,
		Color: &desc.Color,
	})
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// icon defaults can come from theme tokens.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeProvider constructs a go-theme selector from a ThemeProvider and
// registers it with the orchestrator so icon defaults come from the selected
// theme's tokens.
func WithThemeProvider(provider theme.ThemeProvider, defaultTheme, defaultVariant string) orchestrator.Option {
	return orchestrator.WithThemeProvider(provider, defaultTheme, defaultVariant)
}
