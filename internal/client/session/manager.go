// Package session owns the in-memory "who is logged in" state. The Manager
// is constructed once and handed to every consumer; it derives its state from
// the credential store at startup and is the single source of truth for
// auth-gating.
package session

import (
	"context"
	"sync"

	"github.com/carebook/carebook/internal/client/models"
	"github.com/carebook/carebook/internal/logging"
)

// Store is the slice of the credential repository the Manager needs.
type Store interface {
	Token(ctx context.Context) (string, error)
	Profile(ctx context.Context) (*models.User, error)
	Save(ctx context.Context, token string, profile *models.User) error
	Clear(ctx context.Context) error
}

// Manager moves through three states: Bootstrapping (loading=true) until the
// first store read completes, then Unauthenticated or Authenticated. Login
// and Logout are the only transitions after that.
//
// Concurrent Login/Logout initiated from two in-flight flows still race at
// the store level (last write wins); the mutex here only keeps the in-memory
// reads safe.
type Manager struct {
	store Store
	log   logging.Logger

	// called after a completed logout so the UI can return to its
	// unauthenticated entry point
	onLogout func()

	mu      sync.RWMutex
	user    *models.User
	loading bool
}

func NewManager(store Store, log logging.Logger) *Manager {
	return &Manager{store: store, log: log, loading: true}
}

// SetLogoutHandler registers the navigation signal fired after Logout.
func (m *Manager) SetLogoutHandler(fn func()) {
	m.onLogout = fn
}

// Bootstrap performs the one startup read of the credential store. The
// session becomes Authenticated only when both a token and a profile were
// stored and loaded cleanly; any missing or corrupt data degrades to logged
// out. Bootstrap never fails visibly and always clears the loading flag.
func (m *Manager) Bootstrap(ctx context.Context) {
	defer func() {
		m.mu.Lock()
		m.loading = false
		m.mu.Unlock()
	}()

	tok, err := m.store.Token(ctx)
	if err != nil {
		m.log.Warn(ctx, "session bootstrap: token read failed", "error", err)
		return
	}
	profile, err := m.store.Profile(ctx)
	if err != nil {
		m.log.Warn(ctx, "session bootstrap: profile read failed", "error", err)
		return
	}
	if tok == "" || profile == nil {
		m.log.Debug(ctx, "session bootstrap: no stored credentials")
		return
	}

	m.mu.Lock()
	m.user = profile
	m.mu.Unlock()
	m.log.Info(ctx, "session restored", "username", profile.Username, "role", profile.Role)
}

// Login persists the credentials first and only then updates the in-memory
// session. A persistence failure leaves the session untouched, so an active
// session always survives a restart.
func (m *Manager) Login(ctx context.Context, profile *models.User, token string) error {
	if err := m.store.Save(ctx, token, profile); err != nil {
		m.log.Error(ctx, "login: credential save failed", "error", err)
		return err
	}

	m.mu.Lock()
	m.user = profile
	m.mu.Unlock()
	m.log.Info(ctx, "logged in", "username", profile.Username, "role", profile.Role)
	return nil
}

// Logout clears the persisted credentials and the in-memory session, then
// fires the navigation signal. The in-memory state is dropped even when the
// store clear fails: degrading to logged out is always safe.
func (m *Manager) Logout(ctx context.Context) error {
	err := m.store.Clear(ctx)
	if err != nil {
		m.log.Error(ctx, "logout: credential clear failed", "error", err)
	}

	m.mu.Lock()
	m.user = nil
	m.mu.Unlock()

	if m.onLogout != nil {
		m.onLogout()
	}
	return err
}

// CurrentUser returns the logged-in profile, or nil. Never blocks.
func (m *Manager) CurrentUser() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

// IsAuthenticated reports whether a user is logged in. Never blocks.
func (m *Manager) IsAuthenticated() bool {
	return m.CurrentUser() != nil
}

// Loading reports whether the startup bootstrap is still in progress.
func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}
