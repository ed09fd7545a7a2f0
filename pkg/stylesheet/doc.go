// Package stylesheet resolves a font variant into the resource a host must
// apply before any icon renders correctly: a link to the hosted Material Icons
// stylesheet, or an inline @font-face block for a self-hosted font file.
// Resolution is pure; nothing here touches the network or the filesystem, so
// an unreachable font only shows up later when the host loads it.
package stylesheet
