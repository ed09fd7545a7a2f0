package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/goliatone/go-material-icons/internal/prompt"
	"github.com/goliatone/go-material-icons/pkg/fontcheck"
	"github.com/goliatone/go-material-icons/pkg/render"
)

const hostedLink = `<link rel="stylesheet" href="https://fonts.googleapis.com/icon?family=Material+Icons">`

func TestRun_StylesheetOnly(t *testing.T) {
	var stdout bytes.Buffer
	if err := run(context.Background(), nil, &stdout, nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := stdout.String(); got != hostedLink+"\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRun_FlagsOverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icons.yaml")
	if err := os.WriteFile(path, []byte("variant: sharp\ncolor: dark\nsize: 18\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var stdout bytes.Buffer
	args := []string{"-config", path, "-variant", "two-tone", "-size", "24", "-name", "home"}
	if err := run(context.Background(), args, &stdout, nil); err != nil {
		t.Fatalf("run: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected stylesheet and icon lines, got %q", stdout.String())
	}
	if !strings.Contains(lines[0], "family=Material+Icons+Two+Tone") {
		t.Fatalf("expected two-tone stylesheet, got %s", lines[0])
	}
	if !strings.Contains(lines[1], `style="font-size: 24px; color: rgba(0, 0, 0, 0.54); user-select: none;"`) {
		t.Fatalf("expected flag size with file colour, got %s", lines[1])
	}
	if !strings.HasSuffix(lines[1], ">home</span>") {
		t.Fatalf("expected icon text, got %s", lines[1])
	}
}

func TestRun_SelfHostedWithFontCheck(t *testing.T) {
	fontPath := filepath.Join(t.TempDir(), "icons.ttf")
	if err := os.WriteFile(fontPath, goregular.TTF, 0o644); err != nil {
		t.Fatalf("write font: %v", err)
	}

	var stdout bytes.Buffer
	args := []string{"-source", fontPath, "-check-font"}
	if err := run(context.Background(), args, &stdout, nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := stdout.String()
	if !strings.HasPrefix(out, "<style>") {
		t.Fatalf("expected inline stylesheet, got %q", out)
	}
	if !strings.Contains(out, `format("truetype")`) {
		t.Fatalf("expected truetype hint, got %q", out)
	}
}

func TestRun_FontCheckErrors(t *testing.T) {
	if err := run(context.Background(), []string{"-check-font"}, &bytes.Buffer{}, nil); err == nil {
		t.Fatalf("expected error for hosted variant")
	}

	bogus := filepath.Join(t.TempDir(), "icons.ttf")
	if err := os.WriteFile(bogus, []byte("not a font"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	err := run(context.Background(), []string{"-source", bogus, "-check-font"}, &bytes.Buffer{}, nil)
	if !errors.Is(err, fontcheck.ErrUnknownFormat) {
		t.Fatalf("expected unknown format, got %v", err)
	}
}

func TestRun_ComponentRendererAndOutputFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "icon.html")

	var stdout bytes.Buffer
	args := []string{"-renderer", "component", "-name", "menu", "-output", target}
	if err := run(context.Background(), args, &stdout, nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(stdout.String(), target) {
		t.Fatalf("expected confirmation message, got %q", stdout.String())
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.HasSuffix(string(data), ">menu</span>") {
		t.Fatalf("unexpected file contents %q", data)
	}
}

func TestRun_UnknownRenderer(t *testing.T) {
	err := run(context.Background(), []string{"-renderer", "pdf"}, &bytes.Buffer{}, nil)
	if !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected renderer not found, got %v", err)
	}
}

func TestRun_Interactive(t *testing.T) {
	driver := &scriptedDriver{
		choice: 1,
		inputs: []string{"light", "32", "search"},
	}

	var stdout bytes.Buffer
	if err := run(context.Background(), []string{"-interactive"}, &stdout, driver); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := stdout.String()
	if !strings.Contains(out, "family=Material+Icons+Outlined") {
		t.Fatalf("expected outlined stylesheet, got %q", out)
	}
	if !strings.Contains(out, "font-size: 32px; color: rgba(255, 255, 255, 1);") {
		t.Fatalf("expected prompted style, got %q", out)
	}
	if !strings.Contains(out, ">search</span>") {
		t.Fatalf("expected prompted name, got %q", out)
	}

	aborted := &scriptedDriver{err: prompt.ErrAborted}
	if err := run(context.Background(), []string{"-interactive"}, &bytes.Buffer{}, aborted); !errors.Is(err, prompt.ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

type scriptedDriver struct {
	choice int
	inputs []string
	err    error
}

func (d *scriptedDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	if len(d.inputs) == 0 {
		return cfg.Default, nil
	}
	value := d.inputs[0]
	d.inputs = d.inputs[1:]
	return value, nil
}

func (d *scriptedDriver) Select(_ context.Context, _ prompt.SelectConfig) (int, error) {
	if d.err != nil {
		return 0, d.err
	}
	return d.choice, nil
}
