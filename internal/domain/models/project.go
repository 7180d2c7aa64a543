package models

import "time"

// Project is one portfolio project card.
type Project struct {
	ID              string    `json:"_id,omitempty"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	FullDescription string    `json:"fullDescription,omitempty"`
	Image           string    `json:"image,omitempty"`
	Technologies    []string  `json:"technologies"`
	LiveURL         string    `json:"liveUrl,omitempty"`
	GithubURL       string    `json:"githubUrl,omitempty"`
	Gradient        string    `json:"gradient,omitempty"`
	Featured        bool      `json:"featured"`
	Order           *int      `json:"order,omitempty"`
	CreatedAt       time.Time `json:"createdAt,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt,omitempty"`
}
