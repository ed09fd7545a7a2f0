package model

// VariantKind enumerates the font variants.
type VariantKind uint8

const (
	VariantRegular VariantKind = iota
	VariantOutlined
	VariantRound
	VariantSharp
	VariantTwoTone
	VariantSelfHosted
)

// FontVariant selects which Material Icons font the stylesheet loads. Use the
// package values (Regular, Outlined, ...) or SelfHosted for a local file. The
// zero value is Regular.
type FontVariant struct {
	kind   VariantKind
	source string
}

var (
	Regular  = FontVariant{kind: VariantRegular}
	Outlined = FontVariant{kind: VariantOutlined}
	Round    = FontVariant{kind: VariantRound}
	Sharp    = FontVariant{kind: VariantSharp}
	TwoTone  = FontVariant{kind: VariantTwoTone}
)

// SelfHosted returns a variant backed by a ttf/otf/woff2 file at source (a
// path or URL). The source is not checked for existence or format.
func SelfHosted(source string) FontVariant {
	return FontVariant{kind: VariantSelfHosted, source: source}
}

// Kind returns the variant tag.
func (v FontVariant) Kind() VariantKind {
	return v.kind
}

// IsSelfHosted reports whether the variant references a local font file.
func (v FontVariant) IsSelfHosted() bool {
	return v.kind == VariantSelfHosted
}

// Source returns the font file location for self-hosted variants.
func (v FontVariant) Source() (string, bool) {
	if v.kind != VariantSelfHosted {
		return "", false
	}
	return v.source, true
}

// Face returns the face table entry for hosted variants. Self-hosted variants
// have no single face.
func (v FontVariant) Face() (Face, bool) {
	for _, face := range faces {
		if face.Variant == v.kind {
			return face, true
		}
	}
	return Face{}, false
}

func (v FontVariant) String() string {
	switch v.kind {
	case VariantRegular:
		return "regular"
	case VariantOutlined:
		return "outlined"
	case VariantRound:
		return "round"
	case VariantSharp:
		return "sharp"
	case VariantTwoTone:
		return "two-tone"
	case VariantSelfHosted:
		return "self-hosted"
	default:
		return "unknown"
	}
}

// Face describes one visual sub-style of the icon font: the CSS class glyph
// markup carries, the font family bound to it, and the family suffix used by
// the hosted stylesheet URL.
type Face struct {
	Variant VariantKind
	Class   string
	Family  string
	Suffix  string
}

var faces = [...]Face{
	{Variant: VariantRegular, Class: "material-icons", Family: "Material Icons", Suffix: ""},
	{Variant: VariantOutlined, Class: "material-icons-outlined", Family: "Material Icons Outlined", Suffix: "+Outlined"},
	{Variant: VariantRound, Class: "material-icons-round", Family: "Material Icons Round", Suffix: "+Round"},
	{Variant: VariantSharp, Class: "material-icons-sharp", Family: "Material Icons Sharp", Suffix: "+Sharp"},
	{Variant: VariantTwoTone, Class: "material-icons-two-tone", Family: "Material Icons Two Tone", Suffix: "+Two+Tone"},
}

// Faces returns a copy of the face table in declaration order.
func Faces() []Face {
	result := make([]Face, len(faces))
	copy(result, faces[:])
	return result
}

// HostedVariants returns the five variants served by the hosted font API.
func HostedVariants() []FontVariant {
	return []FontVariant{Regular, Outlined, Round, Sharp, TwoTone}
}
