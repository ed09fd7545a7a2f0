// Package component exposes resolved descriptors as templ components so templ
// applications can drop icons straight into their views:
//
//	@component.Stylesheet(stylesheet.Resolve(model.Outlined))
//	@component.Icon(out)
//
// The markup matches the html renderer.
package component

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/goliatone/go-material-icons/pkg/model"
	"github.com/goliatone/go-material-icons/pkg/render"
)

// Name is the registry name of the component renderer.
const Name = "component"

// Stylesheet returns a component that writes the <link> or <style> element
// for a resolved resource.
func Stylesheet(resource model.ResourceDescriptor) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		switch resource.Kind {
		case model.ResourceLink:
			_, err := io.WriteString(w, `<link rel="stylesheet" href="`+templ.EscapeString(resource.Href)+`">`)
			return err
		case model.ResourceInline:
			_, err := io.WriteString(w, "<style>\n"+resource.CSS+"</style>")
			return err
		default:
			return fmt.Errorf("component: unsupported resource kind %s", resource.Kind)
		}
	})
}

// Icon returns a component that writes the icon <span>.
func Icon(output model.RenderOutput) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<span class="`+templ.EscapeString(output.ClassList)+
			`" style="`+templ.EscapeString(output.Style)+`">`+
			templ.EscapeString(output.Text)+`</span>`)
		return err
	})
}

// Renderer adapts the components to render.Renderer.
type Renderer struct{}

var _ render.Renderer = Renderer{}

// New returns the component renderer.
func New() Renderer {
	return Renderer{}
}

func (Renderer) Name() string {
	return Name
}

func (Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (Renderer) RenderStylesheet(ctx context.Context, resource model.ResourceDescriptor) ([]byte, error) {
	return renderComponent(ctx, Stylesheet(resource))
}

func (Renderer) RenderIcon(ctx context.Context, output model.RenderOutput) ([]byte, error) {
	return renderComponent(ctx, Icon(output))
}

func renderComponent(ctx context.Context, c templ.Component) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
