package render

import (
	"context"

	"github.com/goliatone/go-material-icons/pkg/model"
)

// Renderer converts resolved descriptors into markup a host can embed.
type Renderer interface {
	Name() string
	ContentType() string
	RenderStylesheet(ctx context.Context, resource model.ResourceDescriptor) ([]byte, error)
	RenderIcon(ctx context.Context, output model.RenderOutput) ([]byte, error)
}
