package stylesheet

import (
	"fmt"
	"path"
	"strings"

	"github.com/goliatone/go-material-icons/pkg/model"
)

// glyphDeclarations are the ligature settings every face class needs so the
// icon name text is substituted by its glyph.
var glyphDeclarations = []string{
	"font-weight: normal;",
	"font-style: normal;",
	"line-height: 1;",
	"letter-spacing: normal;",
	"text-transform: none;",
	"display: inline-block;",
	"white-space: nowrap;",
	"word-wrap: normal;",
	"direction: ltr;",
	"-webkit-font-feature-settings: 'liga';",
	"-webkit-font-smoothing: antialiased;",
}

var formatHints = map[string]string{
	".ttf":   "truetype",
	".otf":   "opentype",
	".woff":  "woff",
	".woff2": "woff2",
}

// FontFaceCSS builds the inline style block for a self-hosted font. Every face
// gets an @font-face rule binding its family to source plus a class rule
// binding its class to that family, so one file satisfies all five classes
// emitted on glyph markup. Source is escaped as a CSS string and appears once
// per @font-face rule.
func FontFaceCSS(source string) string {
	src := sourceDeclaration(source)

	var b strings.Builder
	for i, face := range model.Faces() {
		if i > 0 {
			b.WriteString("\n")
		}
		writeFontFace(&b, face, src)
		b.WriteString("\n")
		writeClassRule(&b, face)
	}
	return b.String()
}

func writeFontFace(b *strings.Builder, face model.Face, src string) {
	b.WriteString("@font-face {\n")
	fmt.Fprintf(b, "  font-family: '%s';\n", face.Family)
	b.WriteString("  font-style: normal;\n")
	b.WriteString("  font-weight: 400;\n")
	b.WriteString("  font-display: block;\n")
	fmt.Fprintf(b, "  src: %s;\n", src)
	b.WriteString("}\n")
}

func writeClassRule(b *strings.Builder, face model.Face) {
	fmt.Fprintf(b, ".%s {\n", face.Class)
	fmt.Fprintf(b, "  font-family: '%s';\n", face.Family)
	for _, decl := range glyphDeclarations {
		b.WriteString("  ")
		b.WriteString(decl)
		b.WriteString("\n")
	}
	b.WriteString("}\n")
}

func sourceDeclaration(source string) string {
	decl := `url("` + escapeCSSString(source) + `")`
	if hint := formatHint(source); hint != "" {
		decl += ` format("` + hint + `")`
	}
	return decl
}

// formatHint guesses the font format from the file extension, ignoring any
// query string or fragment. Unknown extensions get no hint.
func formatHint(source string) string {
	clean := source
	if idx := strings.IndexAny(clean, "?#"); idx >= 0 {
		clean = clean[:idx]
	}
	return formatHints[strings.ToLower(path.Ext(clean))]
}

// escapeCSSString escapes s for use inside a double-quoted CSS string. Angle
// brackets are escaped too so the block cannot terminate a host <style>.
// Invalid UTF-8 bytes become U+FFFD and NUL becomes "\0 ", which CSS also
// reads as U+FFFD, so such sources are not preserved byte for byte.
func escapeCSSString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '"' || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '<' || r == '>' || r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, "\\%x ", r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
