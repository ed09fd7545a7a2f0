package model

import "strings"

// ColorToken enumerates the named icon colours.
type ColorToken uint8

const (
	ColorInherit ColorToken = iota
	ColorDark
	ColorDarkInactive
	ColorLight
	ColorLightInactive
	ColorCustom
)

// IconColor is either a named token or an arbitrary CSS colour. The zero value
// is Inherit.
type IconColor struct {
	token ColorToken
	value string
}

var (
	Inherit       = IconColor{token: ColorInherit}
	Dark          = IconColor{token: ColorDark}
	DarkInactive  = IconColor{token: ColorDarkInactive}
	Light         = IconColor{token: ColorLight}
	LightInactive = IconColor{token: ColorLightInactive}
)

// Custom wraps a CSS colour string. The value is emitted verbatim into the
// style attribute with no escaping or validation: callers passing untrusted
// input must sanitise it themselves (see html.WithSanitizer).
func Custom(css string) IconColor {
	return IconColor{token: ColorCustom, value: css}
}

// Token returns the colour tag.
func (c IconColor) Token() ColorToken {
	return c.token
}

// CSS returns the colour value used in the style attribute. A blank custom
// value falls back to inherit.
func (c IconColor) CSS() string {
	switch c.token {
	case ColorDark:
		return "rgba(0, 0, 0, 0.54)"
	case ColorDarkInactive:
		return "rgba(0, 0, 0, 0.26)"
	case ColorLight:
		return "rgba(255, 255, 255, 1)"
	case ColorLightInactive:
		return "rgba(255, 255, 255, 0.3)"
	case ColorCustom:
		if strings.TrimSpace(c.value) == "" {
			return "inherit"
		}
		return c.value
	default:
		return "inherit"
	}
}

func (c IconColor) String() string {
	switch c.token {
	case ColorInherit:
		return "inherit"
	case ColorDark:
		return "dark"
	case ColorDarkInactive:
		return "dark-inactive"
	case ColorLight:
		return "light"
	case ColorLightInactive:
		return "light-inactive"
	default:
		return c.value
	}
}
