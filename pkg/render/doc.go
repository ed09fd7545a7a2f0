// Package render defines the renderer contract shared by the markup adapters
// and a registry for looking renderers up by name.
package render
