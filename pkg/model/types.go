package model

import "strconv"

// IconSize is an optional pixel size. The zero value is absent, which renders
// as `inherit` so the glyph follows the surrounding font size.
type IconSize struct {
	px  uint32
	set bool
}

// InheritSize is the absent size.
var InheritSize = IconSize{}

// Px returns a size of n pixels.
func Px(n uint32) IconSize {
	return IconSize{px: n, set: true}
}

// Pixels reports the pixel value and whether one was set.
func (s IconSize) Pixels() (uint32, bool) {
	return s.px, s.set
}

// CSS returns the font-size value, either `<n>px` or `inherit`.
func (s IconSize) CSS() string {
	if !s.set {
		return "inherit"
	}
	return strconv.FormatUint(uint64(s.px), 10) + "px"
}

// IconDescriptor holds the inputs for a single icon render. Name is the
// ligature understood by the icon font (e.g. "home", "settings").
type IconDescriptor struct {
	Name  string
	Size  IconSize
	Color IconColor
}

// ResourceKind distinguishes how a stylesheet resource should be applied.
type ResourceKind uint8

const (
	// ResourceLink is a remote stylesheet the host loads via <link>.
	ResourceLink ResourceKind = iota + 1
	// ResourceInline is a style block the host injects as-is.
	ResourceInline
)

func (k ResourceKind) String() string {
	switch k {
	case ResourceLink:
		return "link"
	case ResourceInline:
		return "inline"
	default:
		return "unknown"
	}
}

// ResourceDescriptor is the result of resolving a font variant. Exactly one of
// Href (Kind == ResourceLink) or CSS (Kind == ResourceInline) is populated.
type ResourceDescriptor struct {
	Kind ResourceKind
	Href string
	CSS  string
}

// LinkResource returns a descriptor pointing at a remote stylesheet.
func LinkResource(href string) ResourceDescriptor {
	return ResourceDescriptor{Kind: ResourceLink, Href: href}
}

// InlineResource returns a descriptor carrying an inline style block.
func InlineResource(css string) ResourceDescriptor {
	return ResourceDescriptor{Kind: ResourceInline, CSS: css}
}

// IsLink reports whether the descriptor is a remote link.
func (d ResourceDescriptor) IsLink() bool {
	return d.Kind == ResourceLink
}

// IsInline reports whether the descriptor is an inline style block.
func (d ResourceDescriptor) IsInline() bool {
	return d.Kind == ResourceInline
}

// RenderOutput is what a host needs to emit one icon element: the class
// attribute, the style attribute and the text content.
type RenderOutput struct {
	ClassList string
	Style     string
	Text      string
}
