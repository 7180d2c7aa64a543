package models

import "time"

// Experience is one entry in the work history timeline.
type Experience struct {
	ID           string    `json:"_id,omitempty"`
	Role         string    `json:"role"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	Period       string    `json:"period"`
	Duration     string    `json:"duration"`
	Type         string    `json:"type,omitempty"`
	Description  string    `json:"description"`
	Achievements []string  `json:"achievements"`
	Technologies []string  `json:"technologies"`
	Icon         string    `json:"icon,omitempty"`
	Gradient     string    `json:"gradient,omitempty"`
	Order        *int      `json:"order,omitempty"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty"`
}
