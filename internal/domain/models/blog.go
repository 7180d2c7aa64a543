package models

import "time"

// BlogPost is a case-study style article. The backend returns the related
// project populated as an object; on writes the store sends just its ID.
type BlogPost struct {
	ID               string          `json:"_id,omitempty"`
	Title            string          `json:"title"`
	Slug             string          `json:"slug"`
	Excerpt          string          `json:"excerpt"`
	CoverImage       string          `json:"coverImage,omitempty"`
	ProblemStatement string          `json:"problemStatement"`
	TechStack        []string        `json:"techStack"`
	Architecture     string          `json:"architecture,omitempty"`
	Implementation   string          `json:"implementation,omitempty"`
	Challenges       string          `json:"challenges,omitempty"`
	Learnings        string          `json:"learnings,omitempty"`
	GithubURL        string          `json:"githubUrl,omitempty"`
	LiveURL          string          `json:"liveUrl,omitempty"`
	Project          *BlogProjectRef `json:"project,omitempty"`
	Tags             []string        `json:"tags"`
	Author           string          `json:"author,omitempty"`
	ReadTime         int             `json:"readTime,omitempty"`
	Views            int             `json:"views,omitempty"`
	Featured         bool            `json:"featured"`
	Published        bool            `json:"isPublished"`
	PublishedAt      *time.Time      `json:"publishedAt,omitempty"`
	CreatedAt        time.Time       `json:"createdAt,omitempty"`
	UpdatedAt        time.Time       `json:"updatedAt,omitempty"`
}

// BlogProjectRef is the populated related-project reference on a post.
type BlogProjectRef struct {
	ID        string `json:"_id,omitempty"`
	Title     string `json:"title"`
	Image     string `json:"image,omitempty"`
	LiveURL   string `json:"liveUrl,omitempty"`
	GithubURL string `json:"githubUrl,omitempty"`
}

// BlogPageSize is how many posts the public listing requests per page.
const BlogPageSize = 12
