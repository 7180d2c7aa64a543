package models

import (
	"sort"
	"time"
)

// About is the aggregate behind the public about section: the owner's
// profile, headline stats, expertise cards, and the technology marquee.
type About struct {
	ID           string           `json:"_id,omitempty"`
	Profile      Profile          `json:"profile"`
	Stats        AboutStats       `json:"stats"`
	Expertise    []ExpertiseItem  `json:"expertise"`
	Technologies []TechnologyItem `json:"technologies"`
	UpdatedAt    time.Time        `json:"updatedAt,omitempty"`
}

// Profile holds the hero/about identity block.
type Profile struct {
	Name     string        `json:"name"`
	ImageURL string        `json:"imageUrl,omitempty"`
	Bio      []string      `json:"bio,omitempty"`
	Badge    string        `json:"badge,omitempty"`
	Status   ProfileStatus `json:"status"`
}

// ProfileStatus is the availability pill shown next to the profile.
type ProfileStatus struct {
	Text        string `json:"text"`
	IsAvailable bool   `json:"isAvailable"`
}

// StatValue is one headline number with its label (e.g. 50 / "Projects").
type StatValue struct {
	Value int    `json:"value"`
	Label string `json:"label,omitempty"`
}

// AboutStats are the three headline numbers in the hero section.
type AboutStats struct {
	Projects     StatValue `json:"projects"`
	Experience   StatValue `json:"experience"`
	Satisfaction StatValue `json:"satisfaction"`
}

// ExpertiseItem is one card in the expertise grid.
type ExpertiseItem struct {
	ID          string `json:"_id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color,omitempty"`
	Order       *int   `json:"order,omitempty"`
}

// TechnologyItem is one entry in the technology marquee.
type TechnologyItem struct {
	ID      string `json:"_id,omitempty"`
	Name    string `json:"name"`
	Icon    string `json:"icon,omitempty"`
	IconURL string `json:"iconUrl,omitempty"`
	Color   string `json:"color,omitempty"`
	Active  bool   `json:"isActive"`
	Order   *int   `json:"order,omitempty"`
}

// SortedExpertise returns the expertise items ordered ascending by their
// order field. Items without an order value sort after all ordered items.
func (a *About) SortedExpertise() []ExpertiseItem {
	items := make([]ExpertiseItem, len(a.Expertise))
	copy(items, a.Expertise)
	sort.SliceStable(items, func(i, j int) bool {
		return lessByOrder(items[i].Order, items[j].Order)
	})
	return items
}

// ActiveTechnologies returns the active technologies ordered ascending by
// their order field, with unordered items last.
func (a *About) ActiveTechnologies() []TechnologyItem {
	items := make([]TechnologyItem, 0, len(a.Technologies))
	for _, t := range a.Technologies {
		if t.Active {
			items = append(items, t)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return lessByOrder(items[i].Order, items[j].Order)
	})
	return items
}

func lessByOrder(a, b *int) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return *a < *b
}
