package orchestrator

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-material-icons/pkg/glyph"
	"github.com/goliatone/go-material-icons/pkg/model"
	"github.com/goliatone/go-material-icons/pkg/render"
	"github.com/goliatone/go-material-icons/pkg/renderers/component"
	"github.com/goliatone/go-material-icons/pkg/renderers/html"
	"github.com/goliatone/go-material-icons/pkg/stylesheet"
)

const defaultRendererName = html.Name

// Defaults are the fallbacks used when neither the request nor the theme sets
// a value. The zero value resolves to Regular, Inherit and an inherited size.
type Defaults struct {
	Variant model.FontVariant
	Color   model.IconColor
	Size    model.IconSize
}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithThemeSelector resolves icon defaults from go-theme selections.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.selector = selector
	}
}

// WithThemeProvider builds a go-theme selector over provider. The defaults are
// used when a request or WithTheme leaves the theme name or variant empty.
func WithThemeProvider(provider theme.ThemeProvider, defaultTheme, defaultVariant string) Option {
	return func(o *Orchestrator) {
		if provider == nil {
			return
		}
		o.selector = &theme.Selector{
			Registry:       provider,
			DefaultTheme:   defaultTheme,
			DefaultVariant: defaultVariant,
		}
	}
}

// WithTheme sets the theme name and variant passed to the selector when a
// request does not name one.
func WithTheme(name, variant string) Option {
	return func(o *Orchestrator) {
		o.themeName = name
		o.themeVariant = variant
	}
}

// WithDefaults sets the fallback variant, colour and size.
func WithDefaults(defaults Defaults) Option {
	return func(o *Orchestrator) {
		o.defaults = defaults
	}
}

// Orchestrator coordinates theme defaults, resolution and rendering. The zero
// configuration renders HTML with the html renderer and also registers the
// templ component renderer.
type Orchestrator struct {
	registry        *render.Registry
	defaultRenderer string
	selector        theme.ThemeSelector
	themeName       string
	themeVariant    string
	defaults        Defaults
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Selection names the renderer and theme for one request. Empty fields fall
// back to the orchestrator configuration.
type Selection struct {
	Renderer     string
	ThemeName    string
	ThemeVariant string
}

// StylesheetRequest asks for the font stylesheet. A nil Variant is filled
// from the theme, then from Defaults.
type StylesheetRequest struct {
	Selection
	Variant *model.FontVariant
}

// IconRequest asks for one icon. Nil Size or Color are filled from the theme,
// then from Defaults.
type IconRequest struct {
	Selection
	Name  string
	Size  *model.IconSize
	Color *model.IconColor
}

// ResolveStylesheet returns the resource descriptor for the request.
func (o *Orchestrator) ResolveStylesheet(ctx context.Context, req StylesheetRequest) (model.ResourceDescriptor, error) {
	if err := o.ready(ctx); err != nil {
		return model.ResourceDescriptor{}, err
	}

	variant := o.defaults.Variant
	if req.Variant != nil {
		variant = *req.Variant
	} else {
		themed, err := o.themeDefaults(req.Selection)
		if err != nil {
			return model.ResourceDescriptor{}, err
		}
		if themed.variant != nil {
			variant = *themed.variant
		}
	}
	return stylesheet.Resolve(variant), nil
}

// Stylesheet renders the stylesheet markup for the request.
func (o *Orchestrator) Stylesheet(ctx context.Context, req StylesheetRequest) ([]byte, error) {
	resource, err := o.ResolveStylesheet(ctx, req)
	if err != nil {
		return nil, err
	}
	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}
	output, err := renderer.RenderStylesheet(ctx, resource)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render stylesheet: %w", err)
	}
	return output, nil
}

// ResolveIcon returns the render output for the request. A blank name fails
// with glyph.ErrEmptyName.
func (o *Orchestrator) ResolveIcon(ctx context.Context, req IconRequest) (model.RenderOutput, error) {
	if err := o.ready(ctx); err != nil {
		return model.RenderOutput{}, err
	}

	desc := model.IconDescriptor{
		Name:  req.Name,
		Size:  o.defaults.Size,
		Color: o.defaults.Color,
	}
	if req.Size == nil || req.Color == nil {
		themed, err := o.themeDefaults(req.Selection)
		if err != nil {
			return model.RenderOutput{}, err
		}
		if themed.size != nil {
			desc.Size = *themed.size
		}
		if themed.color != nil {
			desc.Color = *themed.color
		}
	}
	if req.Size != nil {
		desc.Size = *req.Size
	}
	if req.Color != nil {
		desc.Color = *req.Color
	}

	output, err := glyph.Render(desc)
	if err != nil {
		return model.RenderOutput{}, fmt.Errorf("orchestrator: %w", err)
	}
	return output, nil
}

// Icon renders the icon markup for the request.
func (o *Orchestrator) Icon(ctx context.Context, req IconRequest) ([]byte, error) {
	out, err := o.ResolveIcon(ctx, req)
	if err != nil {
		return nil, err
	}
	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}
	output, err := renderer.RenderIcon(ctx, out)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render icon: %w", err)
	}
	return output, nil
}

func (o *Orchestrator) ready(ctx context.Context) error {
	if ctx == nil {
		return errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return o.initialiseErr
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}
	return o.registry.Get(names[0])
}

func (o *Orchestrator) applyDefaults() {
	if o.registry != nil {
		return
	}

	htmlRenderer, err := html.New()
	if err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		return
	}
	registry, err := render.NewRegistry(htmlRenderer, component.New())
	if err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: default registry: %w", err)
		return
	}
	o.registry = registry
}
