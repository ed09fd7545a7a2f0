package html_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-material-icons/pkg/glyph"
	"github.com/goliatone/go-material-icons/pkg/model"
	"github.com/goliatone/go-material-icons/pkg/renderers/html"
	"github.com/goliatone/go-material-icons/pkg/stylesheet"
	"github.com/goliatone/go-material-icons/pkg/testsupport"
)

func TestRenderer_RenderStylesheetLink(t *testing.T) {
	renderer := newRenderer(t)

	output, err := renderer.RenderStylesheet(testsupport.Context(), stylesheet.Resolve(model.TwoTone))
	if err != nil {
		t.Fatalf("render stylesheet: %v", err)
	}

	assertGolden(t, filepath.Join("testdata", "link_two_tone.golden.html"), output)
}

func TestRenderer_RenderStylesheetInline(t *testing.T) {
	renderer := newRenderer(t)
	resource := stylesheet.Resolve(model.SelfHosted("/static/MaterialIcons-Regular.ttf"))

	output, err := renderer.RenderStylesheet(testsupport.Context(), resource)
	if err != nil {
		t.Fatalf("render stylesheet: %v", err)
	}

	want := "<style>\n" + resource.CSS + "</style>"
	if diff := testsupport.CompareGolden(want, string(output)); diff != "" {
		t.Fatalf("inline stylesheet mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_RenderStylesheetUnknownKind(t *testing.T) {
	renderer := newRenderer(t)
	if _, err := renderer.RenderStylesheet(testsupport.Context(), model.ResourceDescriptor{}); err == nil {
		t.Fatalf("expected error for zero descriptor")
	}
}

func TestRenderer_RenderIcon(t *testing.T) {
	renderer := newRenderer(t)
	out, err := glyph.Render(model.IconDescriptor{Name: "home", Size: model.Px(48), Color: model.Custom("blue")})
	if err != nil {
		t.Fatalf("glyph render: %v", err)
	}

	output, err := renderer.RenderIcon(testsupport.Context(), out)
	if err != nil {
		t.Fatalf("render icon: %v", err)
	}

	assertGolden(t, filepath.Join("testdata", "icon_home.golden.html"), output)
}

func TestRenderer_RenderIconEscapesAttributes(t *testing.T) {
	renderer := newRenderer(t)
	out, err := glyph.Render(model.IconDescriptor{Name: "<b>home</b>", Color: model.Custom(`red" onclick="alert(1)`)})
	if err != nil {
		t.Fatalf("glyph render: %v", err)
	}

	output, err := renderer.RenderIcon(testsupport.Context(), out)
	if err != nil {
		t.Fatalf("render icon: %v", err)
	}
	got := string(output)
	if strings.Contains(got, ` onclick="`) {
		t.Fatalf("attribute injection not escaped: %s", got)
	}
	if strings.Contains(got, "<b>") {
		t.Fatalf("icon text not escaped: %s", got)
	}
}

func TestRenderer_SanitizerDropsInjectedDeclarations(t *testing.T) {
	renderer, err := html.New(html.WithSanitizer())
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := glyph.Render(model.IconDescriptor{
		Name:  "home",
		Size:  model.Px(48),
		Color: model.Custom("blue; background-image: url(https://attacker.example/x.png)"),
	})
	if err != nil {
		t.Fatalf("glyph render: %v", err)
	}

	output, err := renderer.RenderIcon(testsupport.Context(), out)
	if err != nil {
		t.Fatalf("render icon: %v", err)
	}

	// bluemonday rebuilds the style attribute without the trailing semicolon.
	want := `<span class="` + glyph.ClassList + `" style="font-size: 48px; color: blue; user-select: none">home</span>`
	if diff := testsupport.CompareGolden(want, string(output)); diff != "" {
		t.Fatalf("sanitized icon mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_TemplatesDirWithGlobalsAndFilter(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "link.tmpl", `<link rel="stylesheet" href="{{ href }}" data-app="{{ app }}">`)
	writeTemplate(t, dir, "style.tmpl", `<style>{{ css|safe }}</style>`)
	writeTemplate(t, dir, "icon.tmpl", `<i class="{{ class }}" data-app="{{ app }}">{{ text|icon_spaced }}</i>`)

	renderer, err := html.New(
		html.WithTemplatesDir(dir),
		html.WithGlobalData(map[string]any{"app": "docs"}),
		html.WithFilter("icon_spaced", func(input any, _ any) (any, error) {
			return strings.ReplaceAll(fmt.Sprint(input), "_", " "), nil
		}),
	)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	link, err := renderer.RenderStylesheet(testsupport.Context(), stylesheet.Resolve(model.Round))
	if err != nil {
		t.Fatalf("render stylesheet: %v", err)
	}
	wantLink := `<link rel="stylesheet" href="https://fonts.googleapis.com/icon?family=Material+Icons+Round" data-app="docs">`
	if string(link) != wantLink {
		t.Fatalf("link mismatch\nwant: %s\n got: %s", wantLink, link)
	}

	out, err := glyph.Render(model.IconDescriptor{Name: "arrow_back"})
	if err != nil {
		t.Fatalf("glyph render: %v", err)
	}
	icon, err := renderer.RenderIcon(testsupport.Context(), out)
	if err != nil {
		t.Fatalf("render icon: %v", err)
	}
	wantIcon := `<i class="` + glyph.ClassList + `" data-app="docs">arrow back</i>`
	if string(icon) != wantIcon {
		t.Fatalf("icon mismatch\nwant: %s\n got: %s", wantIcon, icon)
	}

	if _, err := html.New(html.WithFilter("icon_spaced", func(input any, _ any) (any, error) { return input, nil })); err == nil {
		t.Fatalf("expected duplicate filter registration to fail")
	}
}

func TestRenderer_TemplatesDirMissing(t *testing.T) {
	if _, err := html.New(html.WithTemplatesDir(filepath.Join(t.TempDir(), "missing"))); err == nil {
		t.Fatalf("expected error for missing templates dir")
	}
}

func TestRenderer_CancelledContext(t *testing.T) {
	renderer := newRenderer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := renderer.RenderIcon(ctx, model.RenderOutput{Text: "home"}); err == nil {
		t.Fatalf("expected cancelled context error")
	}
	if _, err := renderer.RenderStylesheet(ctx, stylesheet.Resolve(model.Regular)); err == nil {
		t.Fatalf("expected cancelled context error")
	}
}

func TestRenderer_Metadata(t *testing.T) {
	renderer := newRenderer(t)
	if renderer.Name() != html.Name {
		t.Fatalf("unexpected name %q", renderer.Name())
	}
	if !strings.HasPrefix(renderer.ContentType(), "text/html") {
		t.Fatalf("unexpected content type %q", renderer.ContentType())
	}
}

func newRenderer(t *testing.T) *html.Renderer {
	t.Helper()
	renderer, err := html.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return renderer
}

func assertGolden(t *testing.T, path string, output []byte) {
	t.Helper()
	if testsupport.WriteMaybeGolden(t, path, output) {
		return
	}
	want := testsupport.MustReadGolden(t, path)
	if diff := testsupport.CompareGolden(string(want), string(output)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func writeTemplate(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, "templates", name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir templates: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write template %s: %v", name, err)
	}
}
