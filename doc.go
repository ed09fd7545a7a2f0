// Package materialicons resolves Material Icons font variants into stylesheet
// resources and icon descriptors into class/style/text triples, with HTML and
// templ renderers layered on top.
//
//	sheet := materialicons.Resolve(materialicons.Outlined)
//	out, err := materialicons.Render(materialicons.IconDescriptor{Name: "home"})
package materialicons
