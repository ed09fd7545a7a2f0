package stylesheet

import (
	"github.com/goliatone/go-material-icons/pkg/model"
)

// BaseURL is the hosted stylesheet for the regular variant. Other hosted
// variants append their face suffix.
const BaseURL = "https://fonts.googleapis.com/icon?family=Material+Icons"

// Resolve maps a variant to its resource descriptor. Hosted variants yield a
// link, self-hosted variants an inline font-face block. The same input always
// yields the same bytes.
func Resolve(variant model.FontVariant) model.ResourceDescriptor {
	if source, ok := variant.Source(); ok {
		return model.InlineResource(FontFaceCSS(source))
	}
	return model.LinkResource(HostedURL(variant))
}

// HostedURL returns the hosted stylesheet URL for a variant. Self-hosted
// variants fall back to the regular URL.
func HostedURL(variant model.FontVariant) string {
	face, ok := variant.Face()
	if !ok {
		return BaseURL
	}
	return BaseURL + face.Suffix
}
