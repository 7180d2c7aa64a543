// internal/app/store/contact/contactstore.go
package contact

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/kapilraj10/portfolio-web/internal/app/system/api"
	"github.com/kapilraj10/portfolio-web/internal/app/system/inputval"
	"github.com/kapilraj10/portfolio-web/internal/app/system/resource"
	"github.com/kapilraj10/portfolio-web/internal/domain/models"
)

const basePath = "/api/contacts"

// Store manages the contact inbox through the backend.
type Store struct {
	client *api.Client
}

// New creates the contact store.
func New(client *api.Client) *Store {
	return &Store{client: client}
}

// SubmitInput is a visitor's contact form submission. The meeting fields
// come from the schedule-a-call variant of the form and are optional.
type SubmitInput struct {
	Name        string `json:"name" validate:"required" label:"Name"`
	Email       string `json:"email" validate:"required,email" label:"Email"`
	Message     string `json:"message" validate:"required" label:"Message"`
	MeetingTime string `json:"meetingTime,omitempty"`
	MeetingType string `json:"meetingType,omitempty"`
}

// Submit sends a visitor message. Public, no token.
func (s *Store) Submit(ctx context.Context, in SubmitInput) error {
	if result := inputval.Validate(in); result.HasErrors() {
		return resource.Invalid(result.First())
	}
	if in.MeetingType != "" && in.MeetingType != "online" && in.MeetingType != "in-person" {
		return resource.Invalid("Meeting type must be online or in-person.")
	}
	return s.client.Send(ctx, http.MethodPost, basePath+"/submit", "", in, "", nil)
}

// List fetches inbox messages, optionally filtered by status.
func (s *Store) List(ctx context.Context, token, status string) ([]models.ContactMessage, error) {
	path := basePath
	if status = strings.TrimSpace(status); status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	var messages []models.ContactMessage
	err := s.client.Get(ctx, path, token, "contacts", &messages)
	return messages, err
}

// Stats fetches the inbox counters by status.
func (s *Store) Stats(ctx context.Context, token string) (models.ContactStats, error) {
	var stats models.ContactStats
	err := s.client.Get(ctx, basePath+"/stats", token, "stats", &stats)
	return stats, err
}

// Get fetches one message. The backend marks a pending message read when
// it is opened, so callers should refetch counters afterwards.
func (s *Store) Get(ctx context.Context, token, id string) (models.ContactMessage, error) {
	var msg models.ContactMessage
	err := s.client.Get(ctx, basePath+"/"+id, token, "contact", &msg)
	return msg, err
}

// Reply records a reply to a message and moves it to the replied status.
func (s *Store) Reply(ctx context.Context, token, id, reply string) (models.ContactMessage, error) {
	if strings.TrimSpace(reply) == "" {
		return models.ContactMessage{}, resource.Invalid("Reply message is required.")
	}
	var msg models.ContactMessage
	err := s.client.Send(ctx, http.MethodPost, basePath+"/"+id+"/reply", token,
		map[string]string{"reply": reply}, "contact", &msg)
	return msg, err
}

// UpdateStatus moves a message to the given lifecycle status.
func (s *Store) UpdateStatus(ctx context.Context, token, id, status string) (models.ContactMessage, error) {
	switch status {
	case models.ContactStatusPending, models.ContactStatusRead,
		models.ContactStatusReplied, models.ContactStatusArchived:
	default:
		return models.ContactMessage{}, resource.Invalid("Unknown status.")
	}
	var msg models.ContactMessage
	err := s.client.Send(ctx, http.MethodPatch, basePath+"/"+id+"/status", token,
		map[string]string{"status": status}, "contact", &msg)
	return msg, err
}

// Delete removes a message. Callers must have confirmed the action first.
func (s *Store) Delete(ctx context.Context, token, id string) error {
	return s.client.Send(ctx, http.MethodDelete, basePath+"/"+id, token, nil, "", nil)
}
