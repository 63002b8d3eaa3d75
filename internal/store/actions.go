package store

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/zhiqi-health/wellness-client/internal/api"
	"github.com/zhiqi-health/wellness-client/internal/models"
)

// AuthAPI is the slice of the API client the Login action needs.
type AuthAPI interface {
	Login(ctx context.Context, creds models.Credentials) (*api.Response, error)
	Profile(ctx context.Context) (*api.Response, error)
}

// Login authenticates against the backend. On success it stores the
// returned token, flips the authenticated flag, fetches and stores the
// profile, and hydrates the persisted user data. The raw backend
// payload is returned in every case; failures are logged and re-signaled
// to the caller, never swallowed.
func (s *Store) Login(ctx context.Context, creds models.Credentials) (json.RawMessage, error) {
	if s.auth == nil {
		return nil, fmt.Errorf("store: no auth API bound")
	}

	resp, err := s.auth.Login(ctx, creds)
	if err != nil {
		s.log.Error("login failed", zap.String("username", creds.Username), zap.Error(err))
		return nil, err
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := resp.Decode(&payload); err != nil {
		s.log.Error("login response malformed", zap.Error(err))
		return resp.Data, err
	}

	s.SetToken(payload.AccessToken)
	s.SetAuthenticated(true)

	profile, err := s.auth.Profile(ctx)
	if err != nil {
		s.log.Error("profile fetch after login failed", zap.Error(err))
		return resp.Data, err
	}
	var profilePayload struct {
		User *models.UserProfile `json:"user"`
	}
	if err := profile.Decode(&profilePayload); err == nil && profilePayload.User != nil {
		s.SetUser(profilePayload.User)
	}

	s.LoadUserData()

	return resp.Data, nil
}

// Logout tears down the session: token, authenticated flag, user, cart
// and notifications are cleared. Search history and favorites are
// deliberately left intact so they survive across sessions.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearSessionLocked()
	s.clearCartLocked()
	s.clearNotificationsLocked()
}

// LoadUserData hydrates cart, favorites and search history from
// durable storage.
func (s *Store) LoadUserData() {
	s.LoadCart()
	s.LoadFavorites()
	s.LoadSearchHistory()
}
