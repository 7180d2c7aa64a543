// internal/app/store/experience/experiencestore.go
package experience

import (
	"strings"

	"github.com/kapilraj10/portfolio-web/internal/app/system/api"
	"github.com/kapilraj10/portfolio-web/internal/app/system/resource"
	"github.com/kapilraj10/portfolio-web/internal/domain/models"
)

// Store manages the work-history collection through the backend.
type Store struct {
	*resource.Manager[models.Experience]
}

// New creates the experience store.
func New(client *api.Client) *Store {
	return &Store{
		Manager: resource.NewManager(client, resource.Config[models.Experience]{
			BasePath: "/api/experiences",
			ListKey:  "experiences",
			ItemKey:  "experience",
			Validate: validate,
		}),
	}
}

func validate(in models.Experience) error {
	required := []struct {
		value, label string
	}{
		{in.Role, "Role"},
		{in.Company, "Company"},
		{in.Location, "Location"},
		{in.Period, "Period"},
		{in.Duration, "Duration"},
		{in.Description, "Description"},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return resource.Invalid(f.label + " is required.")
		}
	}
	if len(compact(in.Achievements)) == 0 {
		return resource.Invalid("At least one achievement is required.")
	}
	if len(compact(in.Technologies)) == 0 {
		return resource.Invalid("At least one technology is required.")
	}
	return nil
}

// compact drops blank entries so a textarea of empty lines doesn't pass.
func compact(items []string) []string {
	var out []string
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			out = append(out, item)
		}
	}
	return out
}
