// Package glyph turns an icon descriptor into the class list, inline style and
// text a host emits for one icon element. The class list names every variant
// class so the same markup works with whichever stylesheet the application
// loaded; the font performs the name-to-glyph substitution, so unknown names
// are not an error here.
package glyph
