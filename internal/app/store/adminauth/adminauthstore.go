// internal/app/store/adminauth/adminauthstore.go
package adminauth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/kapilraj10/portfolio-web/internal/app/system/api"
	"github.com/kapilraj10/portfolio-web/internal/app/system/inputval"
	"github.com/kapilraj10/portfolio-web/internal/app/system/normalize"
	"github.com/kapilraj10/portfolio-web/internal/app/system/resource"
	"github.com/kapilraj10/portfolio-web/internal/domain/models"
)

// Store performs the two-phase console sign-in against the backend. The
// backend owns credentials and OTP issuance; this store never checks a
// password locally.
type Store struct {
	client *api.Client
}

// New creates the admin-auth store.
func New(client *api.Client) *Store {
	return &Store{client: client}
}

// Login submits credentials. On success the backend emails an OTP and the
// flow moves to verification.
func (s *Store) Login(ctx context.Context, email, password string) error {
	email = normalize.Email(email)
	if email == "" || !inputval.IsValidEmail(email) {
		return resource.Invalid("A valid email address is required.")
	}
	if password == "" {
		return resource.Invalid("Password is required.")
	}
	return s.client.Send(ctx, http.MethodPost, "/api/auth/login", "",
		map[string]string{"email": email, "password": password}, "", nil)
}

// VerifyOTP exchanges the emailed code for a bearer token and the signed-in
// user. The caller decides whether the user's role may enter the console.
func (s *Store) VerifyOTP(ctx context.Context, email, otp string) (string, models.AdminUser, error) {
	email = normalize.Email(email)
	otp = strings.TrimSpace(otp)
	if otp == "" {
		return "", models.AdminUser{}, resource.Invalid("Verification code is required.")
	}

	resp, err := s.client.SendRaw(ctx, http.MethodPost, "/api/auth/verify-login-otp", "",
		map[string]string{"email": email, "otp": otp})
	if err != nil {
		return "", models.AdminUser{}, err
	}

	var token string
	if err := resp.Decode("token", &token); err != nil {
		return "", models.AdminUser{}, fmt.Errorf("verify response: %w", err)
	}
	var user models.AdminUser
	if err := resp.Decode("user", &user); err != nil {
		return "", models.AdminUser{}, fmt.Errorf("verify response: %w", err)
	}
	if token == "" {
		return "", models.AdminUser{}, fmt.Errorf("verify response: empty token")
	}
	user.Role = normalize.Role(user.Role)
	return token, user, nil
}
