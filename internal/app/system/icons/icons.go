// Package icons maps the closed set of expertise icon identifiers to their
// inline SVG markup. Identifiers outside the table fall back to the default
// glyph rather than rendering arbitrary markup.
package icons

import "html/template"

// Default is the identifier used when a stored value is unknown.
const Default = "Code"

// svg wraps a path definition in the shared 24x24 outline frame.
func svg(paths string) template.HTML {
	return template.HTML(`<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true">` + paths + `</svg>`)
}

// table is the closed identifier set. Keys match the values the console's
// icon picker offers; anything else resolves to Default.
var table = map[string]template.HTML{
	"Zap":       svg(`<polygon points="13 2 3 14 12 14 11 22 21 10 12 10 13 2"/>`),
	"Layers":    svg(`<polygon points="12 2 2 7 12 12 22 7 12 2"/><polyline points="2 17 12 22 22 17"/><polyline points="2 12 12 17 22 12"/>`),
	"Target":    svg(`<circle cx="12" cy="12" r="10"/><circle cx="12" cy="12" r="6"/><circle cx="12" cy="12" r="2"/>`),
	"Heart":     svg(`<path d="M20.84 4.61a5.5 5.5 0 0 0-7.78 0L12 5.67l-1.06-1.06a5.5 5.5 0 0 0-7.78 7.78l1.06 1.06L12 21.23l7.78-7.78 1.06-1.06a5.5 5.5 0 0 0 0-7.78z"/>`),
	"Code":      svg(`<polyline points="16 18 22 12 16 6"/><polyline points="8 6 2 12 8 18"/>`),
	"Briefcase": svg(`<rect x="2" y="7" width="20" height="14" rx="2" ry="2"/><path d="M16 21V5a2 2 0 0 0-2-2h-4a2 2 0 0 0-2 2v16"/>`),
	"Award":     svg(`<circle cx="12" cy="8" r="7"/><polyline points="8.21 13.89 7 23 12 20 17 23 15.79 13.88"/>`),
}

// Resolve returns the SVG for an icon identifier, falling back to the
// default glyph for unknown names.
func Resolve(name string) template.HTML {
	if markup, ok := table[name]; ok {
		return markup
	}
	return table[Default]
}

// Known reports whether name is in the icon set.
func Known(name string) bool {
	_, ok := table[name]
	return ok
}

// Names returns the identifiers offered by the console's icon picker.
func Names() []string {
	return []string{"Zap", "Layers", "Target", "Heart", "Code", "Briefcase", "Award"}
}
