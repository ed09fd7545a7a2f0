package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-material-icons/internal/prompt"
	"github.com/goliatone/go-material-icons/pkg/config"
	"github.com/goliatone/go-material-icons/pkg/fontcheck"
	"github.com/goliatone/go-material-icons/pkg/model"
	"github.com/goliatone/go-material-icons/pkg/orchestrator"
	"github.com/goliatone/go-material-icons/pkg/render"
	"github.com/goliatone/go-material-icons/pkg/renderers/component"
	"github.com/goliatone/go-material-icons/pkg/renderers/html"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, prompt.NewSurveyDriver()); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("materialicons: %v", err)
	}
}

type options struct {
	configPath  string
	name        string
	output      string
	interactive bool
	checkFont   bool
}

func run(ctx context.Context, args []string, stdout io.Writer, driver prompt.Driver) error {
	fs := flag.NewFlagSet("materialicons", flag.ContinueOnError)
	var (
		opts     options
		variant  = fs.String("variant", "", "font variant: regular, outlined, round, sharp, two-tone, self-hosted")
		source   = fs.String("source", "", "font URL for the self-hosted variant")
		color    = fs.String("color", "", "colour token or CSS colour")
		size     = fs.Uint("size", 0, "icon size in pixels (0 inherits)")
		renderer = fs.String("renderer", "", "renderer to use (html, component)")
		sanitize = fs.Bool("sanitize", false, "sanitize icon markup with bluemonday")
	)
	fs.StringVar(&opts.configPath, "config", "", "YAML config file")
	fs.StringVar(&opts.name, "name", "", "icon name; only the stylesheet is written when empty")
	fs.StringVar(&opts.output, "output", "", "output file (stdout if empty)")
	fs.BoolVar(&opts.interactive, "interactive", false, "prompt for settings")
	fs.BoolVar(&opts.checkFont, "check-font", false, "inspect the self-hosted font file before rendering")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["variant"] {
		cfg.Variant = *variant
	}
	if set["source"] {
		cfg.Source = *source
		if !set["variant"] {
			// A bare -source selects the self-hosted variant.
			cfg.Variant = ""
		}
	}
	if set["color"] {
		cfg.Color = *color
	}
	if set["size"] {
		cfg.Size = uint32(*size)
	}
	if set["renderer"] {
		cfg.Renderer = *renderer
	}
	if set["sanitize"] {
		cfg.Sanitize = *sanitize
	}

	name := opts.name
	if opts.interactive {
		answers, err := prompt.Collect(ctx, driver, cfg, name)
		if err != nil {
			return err
		}
		cfg, name = answers.Config, answers.Name
	}

	variantValue, err := cfg.FontVariant()
	if err != nil {
		return err
	}
	if opts.checkFont {
		src, ok := variantValue.Source()
		if !ok {
			return errors.New("-check-font requires the self-hosted variant")
		}
		report, err := fontcheck.InspectFile(src)
		if err != nil {
			return err
		}
		log.Printf("font %s: format=%s family=%q glyphs=%d", src, report.Format, report.Family, report.Glyphs)
	}

	orch, err := newOrchestrator(cfg, variantValue)
	if err != nil {
		return err
	}

	selection := orchestrator.Selection{Renderer: cfg.Renderer}
	out, err := orch.Stylesheet(ctx, orchestrator.StylesheetRequest{Selection: selection})
	if err != nil {
		return err
	}
	if strings.TrimSpace(name) != "" {
		icon, err := orch.Icon(ctx, orchestrator.IconRequest{Selection: selection, Name: name})
		if err != nil {
			return err
		}
		out = append(append(out, '\n'), icon...)
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, out, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Fprintf(stdout, "Markup written to %s\n", opts.output)
		return nil
	}
	_, err = fmt.Fprintln(stdout, string(out))
	return err
}

func newOrchestrator(cfg config.Config, variant model.FontVariant) (*orchestrator.Orchestrator, error) {
	var htmlOpts []html.Option
	if cfg.Sanitize {
		htmlOpts = append(htmlOpts, html.WithSanitizer())
	}
	htmlRenderer, err := html.New(htmlOpts...)
	if err != nil {
		return nil, err
	}
	registry, err := render.NewRegistry(htmlRenderer, component.New())
	if err != nil {
		return nil, err
	}
	return orchestrator.New(
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaults(orchestrator.Defaults{
			Variant: variant,
			Color:   cfg.IconColor(),
			Size:    cfg.IconSize(),
		}),
	), nil
}
