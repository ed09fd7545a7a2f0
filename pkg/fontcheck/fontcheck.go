// Package fontcheck inspects a self-hosted icon font before it is wired into
// a stylesheet. It sniffs the container format and, for SFNT fonts, reads the
// family name and glyph count.
package fontcheck

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"golang.org/x/image/font/sfnt"
)

// Format identifies a font container.
type Format string

const (
	FormatTrueType   Format = "truetype"
	FormatOpenType   Format = "opentype"
	FormatWOFF       Format = "woff"
	FormatWOFF2      Format = "woff2"
	FormatCollection Format = "collection"
)

// ErrUnknownFormat is returned when the magic number matches no font format.
var ErrUnknownFormat = errors.New("fontcheck: unknown font format")

// Report describes an inspected font. Family and Glyphs are populated only
// when Parsed is true; WOFF containers are recognised but not decoded.
type Report struct {
	Format Format
	Family string
	Glyphs int
	Parsed bool
}

// Hint returns the CSS format() hint for the report's container.
func (r Report) Hint() string {
	switch r.Format {
	case FormatTrueType, FormatCollection:
		return "truetype"
	case FormatOpenType:
		return "opentype"
	default:
		return string(r.Format)
	}
}

// InspectFile reads and inspects the font at path.
func InspectFile(path string) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("fontcheck: read %s: %w", path, err)
	}
	report, err := Inspect(data)
	if err != nil {
		return Report{}, fmt.Errorf("%w (%s)", err, path)
	}
	return report, nil
}

// Inspect sniffs and parses font data.
func Inspect(data []byte) (Report, error) {
	format, err := sniff(data)
	if err != nil {
		return Report{}, err
	}
	report := Report{Format: format}

	var font *sfnt.Font
	switch format {
	case FormatTrueType, FormatOpenType:
		font, err = sfnt.Parse(data)
	case FormatCollection:
		var collection *sfnt.Collection
		collection, err = sfnt.ParseCollection(data)
		if err == nil {
			font, err = collection.Font(0)
		}
	default:
		return report, nil
	}
	if err != nil {
		return Report{}, fmt.Errorf("fontcheck: parse %s: %w", format, err)
	}

	var buf sfnt.Buffer
	family, err := font.Name(&buf, sfnt.NameIDFamily)
	if err != nil && !errors.Is(err, sfnt.ErrNotFound) {
		return Report{}, fmt.Errorf("fontcheck: family name: %w", err)
	}
	report.Family = family
	report.Glyphs = font.NumGlyphs()
	report.Parsed = true
	return report, nil
}

var magics = []struct {
	prefix []byte
	format Format
}{
	{[]byte{0x00, 0x01, 0x00, 0x00}, FormatTrueType},
	{[]byte("true"), FormatTrueType},
	{[]byte("OTTO"), FormatOpenType},
	{[]byte("wOFF"), FormatWOFF},
	{[]byte("wOF2"), FormatWOFF2},
	{[]byte("ttcf"), FormatCollection},
}

func sniff(data []byte) (Format, error) {
	if len(data) < 4 {
		return "", fmt.Errorf("%w: %d bytes", ErrUnknownFormat, len(data))
	}
	for _, m := range magics {
		if bytes.HasPrefix(data, m.prefix) {
			return m.format, nil
		}
	}
	return "", fmt.Errorf("%w: magic %q", ErrUnknownFormat, data[:4])
}
