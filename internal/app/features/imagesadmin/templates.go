// internal/app/features/imagesadmin/templates.go
package imagesadmin

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "imagesadmin",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
