package glyph

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-material-icons/pkg/model"
)

const wantClassList = "material-icons material-icons-outlined material-icons-round material-icons-sharp material-icons-two-tone"

func TestRender_DefaultsInherit(t *testing.T) {
	got, err := Render(model.IconDescriptor{Name: "home"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := model.RenderOutput{
		ClassList: wantClassList,
		Style:     "font-size: inherit; color: inherit; user-select: none;",
		Text:      "home",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_SizeAndCustomColor(t *testing.T) {
	got, err := Render(model.IconDescriptor{
		Name:  "home",
		Size:  model.Px(48),
		Color: model.Custom("blue"),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(got.Style, "font-size: 48px;") {
		t.Fatalf("expected explicit size, got %q", got.Style)
	}
	if !strings.Contains(got.Style, "color: blue;") {
		t.Fatalf("expected custom colour, got %q", got.Style)
	}
	if !strings.HasSuffix(got.Style, "user-select: none;") {
		t.Fatalf("expected user-select suffix, got %q", got.Style)
	}
}

func TestRender_NamedColors(t *testing.T) {
	cases := map[string]model.IconColor{
		"color: rgba(0, 0, 0, 0.54);":      model.Dark,
		"color: rgba(0, 0, 0, 0.26);":      model.DarkInactive,
		"color: rgba(255, 255, 255, 1);":   model.Light,
		"color: rgba(255, 255, 255, 0.3);": model.LightInactive,
		"color: inherit;":                  model.Inherit,
		"color: #0000ff;":                  model.Custom("#0000ff"),
	}
	for want, color := range cases {
		got, err := Render(model.IconDescriptor{Name: "settings", Color: color})
		if err != nil {
			t.Fatalf("render %s: %v", color, err)
		}
		if !strings.Contains(got.Style, want) {
			t.Fatalf("colour %s: expected %q in %q", color, want, got.Style)
		}
	}
}

func TestRender_EmptyNameRejected(t *testing.T) {
	sizes := []model.IconSize{model.InheritSize, model.Px(0), model.Px(24), model.Px(48)}
	colors := []model.IconColor{
		model.Inherit, model.Dark, model.DarkInactive, model.Light, model.LightInactive, model.Custom("red"),
	}

	for _, name := range []string{"", "   "} {
		for _, size := range sizes {
			for _, color := range colors {
				out, err := Render(model.IconDescriptor{Name: name, Size: size, Color: color})
				if !errors.Is(err, ErrEmptyName) {
					t.Fatalf("name %q size %s colour %s: expected ErrEmptyName, got %v", name, size.CSS(), color, err)
				}
				if out != (model.RenderOutput{}) {
					t.Fatalf("expected zero output on error, got %+v", out)
				}
			}
		}
	}
}

func TestRender_Idempotent(t *testing.T) {
	desc := model.IconDescriptor{Name: "favorite", Size: model.Px(18), Color: model.Light}
	first, err := Render(desc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	second, err := Render(desc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if first != second {
		t.Fatalf("render not idempotent:\n%+v\n%+v", first, second)
	}
}

func TestRender_ClassListConstant(t *testing.T) {
	descs := []model.IconDescriptor{
		{Name: "home"},
		{Name: "home", Size: model.Px(12), Color: model.Dark},
		{Name: "not_a_real_icon", Size: model.Px(96), Color: model.Custom("hotpink")},
	}
	for _, desc := range descs {
		got, err := Render(desc)
		if err != nil {
			t.Fatalf("render %q: %v", desc.Name, err)
		}
		if got.ClassList != wantClassList {
			t.Fatalf("class list changed for %+v: %q", desc, got.ClassList)
		}
	}
}

func TestRender_TextUnchanged(t *testing.T) {
	got, err := Render(model.IconDescriptor{Name: " arrow_back "})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got.Text != " arrow_back " {
		t.Fatalf("text should be passed through, got %q", got.Text)
	}
}
