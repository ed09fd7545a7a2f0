package template

import (
	"io"
)

// TemplateRenderer renders named templates. Output is returned and, when
// writers are supplied, also written to each of them.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
