package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/carebook/carebook/internal/client/api"
	"github.com/carebook/carebook/internal/client/models"
	"github.com/carebook/carebook/internal/client/session"
	"github.com/carebook/carebook/internal/client/token"
	"github.com/carebook/carebook/internal/logging"
)

// AuthService drives the login, registration and password-reset chains.
//
// Contract:
//   - Login: obtain a token pair, resolve the profile (backend first, decoded
//     token claims as fallback), then hand both to the session manager. The
//     session is only updated when persistence succeeds.
//   - Register: create an account; field-level rejections come back as a
//     *ValidationError for inline form display.
//   - RequestPasswordReset: fire the reset email for the given address.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.User, error)
	Register(ctx context.Context, form models.RegistrationForm) error
	RequestPasswordReset(ctx context.Context, email string) error
}

type authService struct {
	api     API
	session *session.Manager
	log     logging.Logger
}

func NewAuthService(apiClient API, sess *session.Manager, log logging.Logger) AuthService {
	return &authService{api: apiClient, session: sess, log: log}
}

// profilePayload tolerates both numeric and string user_type values, since
// the profile endpoint reports the raw role code while stored profiles carry
// the name.
type profilePayload struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	UserType  any    `json:"user_type"`
	Phone     string `json:"phone"`
}

func normalizeRole(v any) models.Role {
	switch value := v.(type) {
	case float64:
		return models.RoleFromCode(int(value))
	case string:
		switch models.Role(value) {
		case models.RoleDoctor, models.RoleAdmin, models.RolePatient:
			return models.Role(value)
		}
	}
	return models.RolePatient
}

func (s *authService) Login(ctx context.Context, username, password string) (*models.User, error) {
	resp := s.api.Post(ctx, api.PathLogin, map[string]string{
		"username": username,
		"password": password,
	}, api.NoAuth())
	if !resp.OK() {
		return nil, apiErr(resp)
	}

	var pair models.TokenPair
	if err := resp.Unmarshal(&pair); err != nil || pair.Access == "" {
		return nil, errors.New("access token not found in response")
	}

	user := s.resolveProfile(ctx, username, pair.Access)

	if err := s.session.Login(ctx, user, pair.Access); err != nil {
		return nil, err
	}
	return user, nil
}

// resolveProfile fetches the account profile with the fresh token. When the
// fetch fails it falls back to the token's decoded claims, and past that to
// the form-entered username with the patient default.
func (s *authService) resolveProfile(ctx context.Context, username, access string) *models.User {
	resp := s.api.Get(ctx, api.PathProfile, api.WithToken(access))
	if resp.OK() {
		var p profilePayload
		if err := resp.Unmarshal(&p); err == nil {
			return &models.User{
				ID:        p.ID,
				Username:  p.Username,
				Email:     p.Email,
				FirstName: p.FirstName,
				LastName:  p.LastName,
				Role:      normalizeRole(p.UserType),
				Phone:     p.Phone,
			}
		}
	}

	s.log.Warn(ctx, "profile fetch failed, using token claims", "status", resp.Status)

	user := &models.User{Username: username, FirstName: username, Role: models.RolePatient}
	claims := token.Decode(access)
	if claims == nil {
		// no claims available: keep the form-entered values
		return user
	}

	user.ID = claims.UserID
	user.Email = claims.Email
	user.Phone = claims.Phone
	user.Role = claims.Role()
	if claims.Username != "" {
		user.Username = claims.Username
	}
	if claims.FirstName != "" {
		user.FirstName = claims.FirstName
	}
	user.LastName = claims.LastName
	return user
}

func (s *authService) Register(ctx context.Context, form models.RegistrationForm) error {
	resp := s.api.Post(ctx, api.PathRegister, form, api.NoAuth())
	if resp.OK() {
		return nil
	}

	if resp.Status == http.StatusBadRequest {
		if fields := resp.FieldErrors(); len(fields) > 0 {
			return &ValidationError{Fields: fields}
		}
	}
	return apiErr(resp)
}

func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	resp := s.api.Post(ctx, api.PathPasswordReset, map[string]string{"email": email}, api.NoAuth())
	if !resp.OK() {
		return apiErr(resp)
	}
	return nil
}
