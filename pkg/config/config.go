// Package config loads operator defaults for the CLI and hosts that prefer a
// config file over code: a YAML file overlaid by MATERIAL_ICONS_* environment
// variables. The resolver and renderer packages never read configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-material-icons/pkg/model"
)

// Config holds the defaults applied to stylesheet and icon requests.
type Config struct {
	// Variant names the font variant (regular, outlined, round, sharp,
	// two-tone, self-hosted).
	Variant string `yaml:"variant" env:"MATERIAL_ICONS_VARIANT"`
	// Source is the font file for the self-hosted variant. Setting it without
	// a variant implies self-hosted.
	Source string `yaml:"source" env:"MATERIAL_ICONS_SOURCE"`
	// Color is a token name (dark, light, ...) or any CSS colour.
	Color string `yaml:"color" env:"MATERIAL_ICONS_COLOR"`
	// Size in pixels; zero inherits.
	Size     uint32 `yaml:"size" env:"MATERIAL_ICONS_SIZE"`
	Renderer string `yaml:"renderer" env:"MATERIAL_ICONS_RENDERER"`
	Sanitize bool   `yaml:"sanitize" env:"MATERIAL_ICONS_SANITIZE"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Variant:  "regular",
		Color:    "inherit",
		Renderer: "html",
	}
}

// Load builds a configuration from defaults, the optional file at path and
// the environment, in that order of precedence.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) != "" {
		fileCfg, err := LoadFile(path, cfg)
		if err != nil {
			return Config{}, err
		}
		cfg = fileCfg
	}
	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile decodes the YAML file at path over base. Keys absent from the file
// keep their base values.
func LoadFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overwrites fields whose environment variables are set.
func ApplyEnv(cfg *Config) error {
	if cfg == nil {
		return errors.New("config: target is nil")
	}
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}

// FontVariant parses the configured variant.
func (c Config) FontVariant() (model.FontVariant, error) {
	name := c.Variant
	if strings.TrimSpace(name) == "" && strings.TrimSpace(c.Source) != "" {
		name = "self-hosted"
	}
	variant, err := model.ParseVariant(name, c.Source)
	if err != nil {
		return model.FontVariant{}, fmt.Errorf("config: variant: %w", err)
	}
	return variant, nil
}

// IconColor parses the configured colour.
func (c Config) IconColor() model.IconColor {
	return model.ParseColor(c.Color)
}

// IconSize returns the configured size, inheriting when zero.
func (c Config) IconSize() model.IconSize {
	if c.Size == 0 {
		return model.InheritSize
	}
	return model.Px(c.Size)
}
