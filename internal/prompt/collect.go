package prompt

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-material-icons/pkg/config"
	"github.com/goliatone/go-material-icons/pkg/model"
)

// VariantOptions lists the variant names offered by Collect, in display order.
var VariantOptions = []string{"regular", "outlined", "round", "sharp", "two-tone", "self-hosted"}

// Answers is the result of an interactive session.
type Answers struct {
	Config config.Config
	Name   string
}

// Collect walks the user through variant, source, colour, size and icon name,
// starting from cfg and name as defaults.
func Collect(ctx context.Context, driver Driver, cfg config.Config, name string) (Answers, error) {
	if driver == nil {
		return Answers{}, errors.New("prompt: driver is required")
	}
	out := Answers{Config: cfg, Name: name}

	current, err := cfg.FontVariant()
	if err != nil {
		current = model.Regular
	}
	idx, err := driver.Select(ctx, SelectConfig{
		Message:      "Font variant",
		Options:      VariantOptions,
		DefaultIndex: indexOf(VariantOptions, current.String()),
	})
	if err != nil {
		return Answers{}, fmt.Errorf("prompt: variant: %w", err)
	}
	if idx < 0 || idx >= len(VariantOptions) {
		return Answers{}, fmt.Errorf("prompt: variant: invalid choice %d", idx)
	}
	out.Config.Variant = VariantOptions[idx]

	if out.Config.Variant == "self-hosted" {
		source, err := driver.Input(ctx, InputConfig{
			Message:   "Font source URL",
			Default:   cfg.Source,
			Validator: required("source"),
		})
		if err != nil {
			return Answers{}, fmt.Errorf("prompt: source: %w", err)
		}
		out.Config.Source = strings.TrimSpace(source)
	} else {
		out.Config.Source = ""
	}

	color, err := driver.Input(ctx, InputConfig{
		Message: "Colour",
		Default: cfg.Color,
		Help:    "inherit, dark, dark-inactive, light, light-inactive or any CSS colour",
	})
	if err != nil {
		return Answers{}, fmt.Errorf("prompt: colour: %w", err)
	}
	out.Config.Color = strings.TrimSpace(color)

	size, err := driver.Input(ctx, InputConfig{
		Message:   "Size in pixels (0 inherits)",
		Default:   strconv.FormatUint(uint64(cfg.Size), 10),
		Validator: validSize,
	})
	if err != nil {
		return Answers{}, fmt.Errorf("prompt: size: %w", err)
	}
	px, err := parseSize(size)
	if err != nil {
		return Answers{}, fmt.Errorf("prompt: size: %w", err)
	}
	out.Config.Size = px

	iconName, err := driver.Input(ctx, InputConfig{
		Message:   "Icon name",
		Default:   name,
		Validator: required("icon name"),
	})
	if err != nil {
		return Answers{}, fmt.Errorf("prompt: icon name: %w", err)
	}
	out.Name = strings.TrimSpace(iconName)

	return out, nil
}

func required(field string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validSize(value string) error {
	_, err := parseSize(value)
	return err
}

func parseSize(value string) (uint32, error) {
	value = strings.TrimSuffix(strings.TrimSpace(value), "px")
	if value == "" {
		return 0, nil
	}
	px, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q", value)
	}
	return uint32(px), nil
}
