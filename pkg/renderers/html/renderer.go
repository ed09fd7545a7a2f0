package html

import (
	"context"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-material-icons/pkg/model"
	"github.com/goliatone/go-material-icons/pkg/render"
	rendertemplate "github.com/goliatone/go-material-icons/pkg/render/template"
	"github.com/goliatone/go-material-icons/pkg/render/template/gotemplate"
)

// Name is the registry name of this renderer.
const Name = "html"

// Option customises the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templatesDir     string
	templateRenderer rendertemplate.TemplateRenderer
	globalData       map[string]any
	filters          []filter
	sanitize         bool
}

type filter struct {
	name string
	fn   func(input any, param any) (any, error)
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplatesDir loads templates from a directory on disk. The directory
// must hold templates/link.tmpl, templates/style.tmpl and templates/icon.tmpl.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		cfg.templatesDir = strings.TrimSpace(path)
	}
}

// WithGlobalData exposes values to every template of the default engine, for
// custom bundles that need more than the descriptor fields.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		if len(data) == 0 {
			return
		}
		if cfg.globalData == nil {
			cfg.globalData = make(map[string]any, len(data))
		}
		for key, value := range data {
			cfg.globalData[key] = value
		}
	}
}

// WithFilter registers a template filter on the template renderer. pongo2
// filters are process-global, so a name can only be registered once.
func WithFilter(name string, fn func(input any, param any) (any, error)) Option {
	return func(cfg *config) {
		cfg.filters = append(cfg.filters, filter{name: name, fn: fn})
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithSanitizer passes icon markup through a bluemonday policy before it is
// returned. Use it when custom colours come from untrusted input. bluemonday
// rewrites the style attribute, so sanitized output has no trailing ";" after
// the last declaration.
func WithSanitizer() Option {
	return func(cfg *config) {
		cfg.sanitize = true
	}
}

// Renderer produces HTML fragments.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	sanitize  bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engineOpts := []gotemplate.Option{
			gotemplate.WithExtension(".tmpl"),
			gotemplate.WithGlobalData(cfg.globalData),
		}
		if cfg.templatesDir != "" {
			engineOpts = append(engineOpts, gotemplate.WithBaseDir(cfg.templatesDir))
		} else {
			engineOpts = append(engineOpts, gotemplate.WithFS(cfg.templateFS))
		}
		engine, err := gotemplate.New(engineOpts...)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	for _, f := range cfg.filters {
		if err := renderer.RegisterFilter(f.name, f.fn); err != nil {
			return nil, fmt.Errorf("html renderer: register filter %q: %w", f.name, err)
		}
	}

	return &Renderer{templates: renderer, sanitize: cfg.sanitize}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// RenderStylesheet renders a <link> for hosted variants and a <style> block
// for self-hosted ones.
func (r *Renderer) RenderStylesheet(ctx context.Context, resource model.ResourceDescriptor) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch resource.Kind {
	case model.ResourceLink:
		return r.execute(linkTemplate, map[string]any{"href": resource.Href})
	case model.ResourceInline:
		return r.execute(styleTemplate, map[string]any{"css": resource.CSS})
	default:
		return nil, fmt.Errorf("html renderer: unsupported resource kind %s", resource.Kind)
	}
}

// RenderIcon renders the icon <span>.
func (r *Renderer) RenderIcon(ctx context.Context, output model.RenderOutput) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	markup, err := r.execute(iconTemplate, map[string]any{
		"class": output.ClassList,
		"style": output.Style,
		"text":  output.Text,
	})
	if err != nil {
		return nil, err
	}
	if r.sanitize {
		return []byte(sanitizeIconMarkup(string(markup))), nil
	}
	return markup, nil
}

func (r *Renderer) execute(name string, data map[string]any) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}
	result, err := r.templates.RenderTemplate(name, data)
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(strings.TrimSpace(result)), nil
}
