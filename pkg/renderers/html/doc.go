// Package html renders resolved stylesheet and icon descriptors into HTML
// fragments using embedded pongo2 templates:
//
//	<link rel="stylesheet" href="...">
//	<style>...</style>
//	<span class="material-icons ..." style="...">home</span>
//
// Attribute values and icon text are escaped by the template engine. Custom
// colours still reach the style attribute as written, so hosts rendering
// untrusted colours should enable WithSanitizer.
package html
