// Package store holds the client's application state: session, cart,
// favorites, notifications and search history. A single Store is
// constructed at startup and injected into every consumer; there is no
// package-level state. Mutations are atomic under the store mutex and
// persisted entities are written through to durable storage on every
// change, so the store is the single authority and durable storage is
// its write-through cache.
package store

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/zhiqi-health/wellness-client/internal/localstore"
	"github.com/zhiqi-health/wellness-client/internal/models"
)

// DefaultNoticeTTL is how long a notification stays up before it
// expires on its own.
const DefaultNoticeTTL = 5 * time.Second

// Store is the process-wide state container. Safe for concurrent use;
// every mutation is a single atomic step under the mutex.
type Store struct {
	mu sync.Mutex

	authenticated bool
	token         string
	user          *models.UserProfile

	cart      models.Cart
	favorites []models.FavoriteItem
	loading   bool

	notifications []models.Notification
	timers        map[int64]*time.Timer
	noticeTTL     time.Duration

	searchHistory []string

	local *localstore.Store
	auth  AuthAPI
	log   *zap.Logger
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithNoticeTTL overrides the notification auto-expiry delay.
func WithNoticeTTL(d time.Duration) Option {
	return func(s *Store) { s.noticeTTL = d }
}

// New builds the Store over durable storage. The presence of a
// persisted token seeds the authenticated flag, and a persisted profile
// is loaded if one survives from the last run.
func New(local *localstore.Store, log *zap.Logger, opts ...Option) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{
		timers:    make(map[int64]*time.Timer),
		noticeTTL: DefaultNoticeTTL,
		local:     local,
		log:       log,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.token = local.GetString(localstore.KeyAccessToken)
	s.authenticated = s.token != ""

	var user models.UserProfile
	if local.GetJSON(localstore.KeyUser, &user) {
		s.user = &user
	}

	return s
}

// BindAuth attaches the auth endpoints used by the Login action. Kept
// separate from New because the API client needs the Store as its
// session source first.
func (s *Store) BindAuth(auth AuthAPI) {
	s.auth = auth
}

// Token returns the current bearer token, or "". Part of the API
// client's SessionStore contract.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// ClearSession drops the token, the authenticated flag and the user
// profile, in memory and in durable storage. Invoked by the API client
// when the backend answers 401.
func (s *Store) ClearSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearSessionLocked()
}

func (s *Store) clearSessionLocked() {
	s.token = ""
	s.authenticated = false
	s.user = nil
	if err := s.local.Delete(localstore.KeyAccessToken); err != nil {
		s.log.Error("failed to remove persisted token", zap.Error(err))
	}
	if err := s.local.Delete(localstore.KeyUser); err != nil {
		s.log.Error("failed to remove persisted user", zap.Error(err))
	}
}

// SetAuthenticated flips the in-memory authenticated flag.
func (s *Store) SetAuthenticated(status bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = status
}

// SetToken stores the bearer token and persists it; an empty token
// removes the persisted value.
func (s *Store) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	if token == "" {
		if err := s.local.Delete(localstore.KeyAccessToken); err != nil {
			s.log.Error("failed to remove persisted token", zap.Error(err))
		}
		return
	}
	if err := s.local.SetString(localstore.KeyAccessToken, token); err != nil {
		s.log.Error("failed to persist token", zap.Error(err))
	}
}

// SetUser stores the user profile and persists it; nil removes the
// persisted value.
func (s *Store) SetUser(user *models.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	if user == nil {
		if err := s.local.Delete(localstore.KeyUser); err != nil {
			s.log.Error("failed to remove persisted user", zap.Error(err))
		}
		return
	}
	if err := s.local.SetJSON(localstore.KeyUser, user); err != nil {
		s.log.Error("failed to persist user", zap.Error(err))
	}
}

// SetLoading flips the global loading flag.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}

// IsAuthenticated reports whether a session is active.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// CurrentUser returns the signed-in profile, or nil.
func (s *Store) CurrentUser() *models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// UserRole returns the current role, defaulting to "user" when no
// profile is present or the profile carries no role.
func (s *Store) UserRole() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil || s.user.Role == "" {
		return "user"
	}
	return s.user.Role
}

// Loading reports the global loading flag.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}
