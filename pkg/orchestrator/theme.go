package orchestrator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-material-icons/pkg/model"
)

// Theme token keys read from the selected manifest. Variant tokens override
// manifest tokens.
const (
	TokenVariant = "icons.variant"
	TokenSource  = "icons.source"
	TokenColor   = "icons.color"
	TokenSize    = "icons.size"
)

type themedDefaults struct {
	variant *model.FontVariant
	color   *model.IconColor
	size    *model.IconSize
}

func (o *Orchestrator) themeDefaults(sel Selection) (themedDefaults, error) {
	if o.selector == nil {
		return themedDefaults{}, nil
	}

	name := firstNonEmpty(sel.ThemeName, o.themeName)
	variant := firstNonEmpty(sel.ThemeVariant, o.themeVariant)

	selection, err := o.selector.Select(name, variant)
	if err != nil {
		return themedDefaults{}, fmt.Errorf("orchestrator: select theme %q: %w", name, err)
	}
	if selection == nil {
		return themedDefaults{}, nil
	}
	return defaultsFromTokens(selection.Tokens())
}

func defaultsFromTokens(tokens map[string]string) (themedDefaults, error) {
	var out themedDefaults
	if len(tokens) == 0 {
		return out, nil
	}

	rawVariant := strings.TrimSpace(tokens[TokenVariant])
	rawSource := strings.TrimSpace(tokens[TokenSource])
	if rawVariant == "" && rawSource != "" {
		rawVariant = "self-hosted"
	}
	if rawVariant != "" {
		variant, err := model.ParseVariant(rawVariant, rawSource)
		if err != nil {
			return out, fmt.Errorf("orchestrator: theme token %s: %w", TokenVariant, err)
		}
		out.variant = &variant
	}

	if raw, ok := tokens[TokenColor]; ok && strings.TrimSpace(raw) != "" {
		color := model.ParseColor(raw)
		out.color = &color
	}

	if raw := strings.TrimSpace(tokens[TokenSize]); raw != "" {
		px, err := strconv.ParseUint(strings.TrimSuffix(raw, "px"), 10, 32)
		if err != nil {
			return out, fmt.Errorf("orchestrator: theme token %s: %w", TokenSize, err)
		}
		size := model.Px(uint32(px))
		out.size = &size
	}

	return out, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
