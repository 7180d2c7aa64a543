// internal/app/features/blogadmin/templates.go
package blogadmin

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "blogadmin",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
