// Package formutil provides helpers for form re-rendering with validation errors.
//
// When a form submission fails validation, the form should be re-rendered with:
// - The user's previously entered values (echoed back)
// - An error message explaining what went wrong
// - All the context data needed for the form (dropdowns, etc.)
//
// This package provides a Base struct that can be embedded in form data structs
// to handle the common fields, and helper functions to populate them.
//
// Example usage:
//
//	type newProjectData struct {
//		formutil.Base
//		Title       string
//		Description string
//	}
//
//	// In your handler:
//	data := newProjectData{
//		Base:  formutil.NewBase(r, "Add Project", "/admin/projects"),
//		Title: title,
//	}
//	data.SetError("Title is required.")
//	templates.Render(w, r, "projectsadmin/new", data)
package formutil

import (
	"net/http"
	"strings"

	"github.com/kapilraj10/portfolio-web/internal/app/system/viewdata"
)

// Base contains common fields for form pages that can be embedded in form data structs.
// It embeds viewdata.BaseVM for site identity and user context, and adds Error for form validation.
// Error is a plain string so templates escape it; failure messages can carry
// backend-echoed input and must never reach the page as markup.
type Base struct {
	viewdata.BaseVM
	Error string
}

// NewBase creates a fully populated Base for a form page.
// This is the preferred way to create a Base for embedding in form view models.
func NewBase(r *http.Request, title, backDefault string) Base {
	return Base{
		BaseVM: viewdata.NewBaseVM(r, title, backDefault),
	}
}

// SetError sets the error message on a Base struct.
func (b *Base) SetError(msg string) {
	b.Error = msg
}

// Lines splits a textarea value into trimmed, non-empty lines. Admin forms
// use one-item-per-line textareas for lists like achievements and tech stacks.
func Lines(value string) []string {
	var out []string
	for _, line := range strings.Split(value, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// CommaList splits a comma-separated value into trimmed, non-empty items.
func CommaList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// JoinLines renders a string slice back into textarea form, one item per line.
func JoinLines(items []string) string {
	return strings.Join(items, "\n")
}
