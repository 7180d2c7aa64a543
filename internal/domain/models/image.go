package models

import "time"

// ImageAsset is one entry in the media library.
type ImageAsset struct {
	ID          string        `json:"_id,omitempty"`
	URL         string        `json:"url"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Category    string        `json:"category"`
	Tags        []string      `json:"tags,omitempty"`
	AltText     string        `json:"altText,omitempty"`
	Caption     string        `json:"caption,omitempty"`
	Credit      string        `json:"credit,omitempty"`
	Active      bool          `json:"isActive"`
	Metadata    ImageMetadata `json:"metadata,omitempty"`
	CreatedAt   time.Time     `json:"createdAt,omitempty"`
}

// ImageMetadata describes the stored file.
type ImageMetadata struct {
	Size   int64  `json:"size,omitempty"`
	Format string `json:"format,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// ImageStats summarizes the media library.
type ImageStats struct {
	Total      int            `json:"total"`
	Active     int            `json:"active"`
	ByCategory map[string]int `json:"byCategory,omitempty"`
}

// ImageCategories is the closed set of library categories.
var ImageCategories = []string{"portfolio", "blog", "profile", "project", "general"}

// ImagePageSize is how many assets the library lists per page.
const ImagePageSize = 20
