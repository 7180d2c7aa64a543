package models

// Console roles permitted past the admin route guard.
const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
)

// AdminUser is the authenticated console user as returned by the backend
// after OTP verification.
type AdminUser struct {
	ID    string `json:"_id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// CanAccessConsole reports whether the user's role grants console access.
func (u AdminUser) CanAccessConsole() bool {
	return u.Role == RoleAdmin || u.Role == RoleModerator
}
