package glyph

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-material-icons/pkg/model"
)

// ErrEmptyName is returned when a descriptor has a blank icon name.
var ErrEmptyName = errors.New("icon name is required")

// ClassList is emitted on every icon regardless of input.
var ClassList = buildClassList()

// Render builds the render output for one icon. Only a blank name is
// rejected; the name is otherwise passed through untouched.
func Render(desc model.IconDescriptor) (model.RenderOutput, error) {
	if strings.TrimSpace(desc.Name) == "" {
		return model.RenderOutput{}, fmt.Errorf("glyph: render: %w", ErrEmptyName)
	}
	return model.RenderOutput{
		ClassList: ClassList,
		Style:     Style(desc.Size, desc.Color),
		Text:      desc.Name,
	}, nil
}

// Style returns the inline style for a size and colour. Custom colours are
// written verbatim.
func Style(size model.IconSize, color model.IconColor) string {
	var b strings.Builder
	b.WriteString("font-size: ")
	b.WriteString(size.CSS())
	b.WriteString("; color: ")
	b.WriteString(color.CSS())
	b.WriteString("; user-select: none;")
	return b.String()
}

func buildClassList() string {
	faces := model.Faces()
	classes := make([]string, 0, len(faces))
	for _, face := range faces {
		classes = append(classes, face.Class)
	}
	return strings.Join(classes, " ")
}
