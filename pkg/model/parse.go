package model

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

var (
	// ErrUnknownVariant is returned when a variant name is not recognised.
	ErrUnknownVariant = errors.New("model: unknown font variant")
	// ErrMissingSource is returned when a self-hosted variant has no source.
	ErrMissingSource = errors.New("model: self-hosted variant requires a source")
)

var folder = cases.Fold()

// ParseVariant maps a case-insensitive variant name onto a FontVariant. An
// empty name selects Regular. Source is only consulted for self-hosted.
func ParseVariant(name, source string) (FontVariant, error) {
	switch normaliseName(name) {
	case "", "regular", "filled":
		return Regular, nil
	case "outlined":
		return Outlined, nil
	case "round", "rounded":
		return Round, nil
	case "sharp":
		return Sharp, nil
	case "two-tone", "twotone":
		return TwoTone, nil
	case "self-hosted", "selfhosted":
		src := strings.TrimSpace(source)
		if src == "" {
			return FontVariant{}, ErrMissingSource
		}
		return SelfHosted(src), nil
	default:
		return FontVariant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
}

// ParseColor maps token names onto named colours and treats anything else as
// a custom CSS colour. An empty value selects Inherit.
func ParseColor(value string) IconColor {
	switch normaliseName(value) {
	case "", "inherit":
		return Inherit
	case "dark":
		return Dark
	case "dark-inactive", "darkinactive":
		return DarkInactive
	case "light":
		return Light
	case "light-inactive", "lightinactive":
		return LightInactive
	default:
		return Custom(strings.TrimSpace(value))
	}
}

func normaliseName(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	folded := folder.String(trimmed)
	replacer := strings.NewReplacer("_", "-", " ", "-")
	return replacer.Replace(folded)
}
