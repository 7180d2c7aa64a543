package models

import "time"

// Contact message lifecycle states. The backend owns the transitions; the
// console only requests them.
const (
	ContactStatusPending  = "pending"
	ContactStatusRead     = "read"
	ContactStatusReplied  = "replied"
	ContactStatusArchived = "archived"
)

// ContactMessage is one visitor submission in the inbox.
type ContactMessage struct {
	ID          string     `json:"_id,omitempty"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Message     string     `json:"message"`
	MeetingTime string     `json:"meetingTime,omitempty"`
	MeetingType string     `json:"meetingType,omitempty"`
	Status      string     `json:"status"`
	Reply       string     `json:"reply,omitempty"`
	RepliedAt   *time.Time `json:"repliedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt,omitempty"`
}

// ContactStats are the inbox counters by status.
type ContactStats struct {
	Total          int `json:"total"`
	Pending        int `json:"pending"`
	Read           int `json:"read"`
	Replied        int `json:"replied"`
	Archived       int `json:"archived"`
	RecentContacts int `json:"recentContacts,omitempty"`
}

// ContactInfo is the public contact details block.
type ContactInfo struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}
