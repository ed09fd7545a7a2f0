// Package model defines the shared vocabulary consumed by the stylesheet
// resolver and the glyph renderer: font variants, icon colours and sizes, the
// descriptors passed in by hosts, and the descriptors handed back for
// rendering. Variants and colours are closed tagged values; their zero values
// are Regular and Inherit respectively. None of the types carry identity or
// lifecycle, so values can be copied and compared freely.
package model
