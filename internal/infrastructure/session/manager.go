// Package session tracks the storefront's single authenticated session:
// the bearer token, the signed-in user, and the auth-transition listeners.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/shop/storefront/internal/domain/identity"
)

// Listener is invoked after an auth transition with the new
// authenticated state.
type Listener func(authenticated bool)

// Manager holds the current session. The token is persisted to disk so a
// restart resumes an authenticated session; the signature is never
// checked locally because only the backend holds the secret.
type Manager struct {
	tokenPath string
	logger    *zap.Logger

	mu        sync.RWMutex
	token     string
	user      *identity.User
	listeners []Listener
}

// NewManager creates a manager, restoring any persisted token that has
// not yet expired.
func NewManager(tokenPath string, logger *zap.Logger) *Manager {
	m := &Manager{tokenPath: tokenPath, logger: logger}

	raw, err := os.ReadFile(tokenPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("failed to read session token", zap.String("path", tokenPath), zap.Error(err))
		}
		return m
	}

	token := strings.TrimSpace(string(raw))
	if token == "" {
		return m
	}
	if expired(token) {
		logger.Info("discarding expired session token")
		if err := os.Remove(tokenPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("failed to remove expired session token", zap.Error(err))
		}
		return m
	}

	m.token = token
	return m
}

// expired reports whether the token's exp claim has passed. Parsing is
// unverified on purpose: the backend rejects forged tokens, this check
// only avoids sending a token we know is dead.
func expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

// Token returns the current bearer token, empty when signed out
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// Authenticated reports whether a session is active
func (m *Manager) Authenticated() bool {
	return m.Token() != ""
}

// CurrentUser returns the signed-in user, nil when signed out or when
// the profile has not been fetched yet.
func (m *Manager) CurrentUser() *identity.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// SetUser records the signed-in user's profile without changing the
// token or firing listeners.
func (m *Manager) SetUser(user *identity.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = user
}

// Subscribe registers a listener for auth transitions
func (m *Manager) Subscribe(l Listener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, l)
}

// Begin starts an authenticated session, persists the token, and
// notifies listeners.
func (m *Manager) Begin(token string, user *identity.User) error {
	m.mu.Lock()
	m.token = token
	m.user = user
	listeners := append([]Listener(nil), m.listeners...)
	m.mu.Unlock()

	if err := m.persist(token); err != nil {
		m.logger.Warn("failed to persist session token", zap.Error(err))
	}
	for _, l := range listeners {
		l(true)
	}
	return nil
}

// End clears the session, removes the persisted token, and notifies
// listeners.
func (m *Manager) End() {
	m.mu.Lock()
	m.token = ""
	m.user = nil
	listeners := append([]Listener(nil), m.listeners...)
	m.mu.Unlock()

	if err := os.Remove(m.tokenPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		m.logger.Warn("failed to remove session token", zap.Error(err))
	}
	for _, l := range listeners {
		l(false)
	}
}

func (m *Manager) persist(token string) error {
	if err := os.MkdirAll(filepath.Dir(m.tokenPath), 0o755); err != nil {
		return fmt.Errorf("session: failed to create state directory: %w", err)
	}
	if err := os.WriteFile(m.tokenPath, []byte(token), 0o600); err != nil {
		return fmt.Errorf("session: failed to write token: %w", err)
	}
	return nil
}
