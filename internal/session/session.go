// Package session persists the signed-in user's state between runs,
// replacing the browser local storage the web storefront used.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrNotLoggedIn is returned by operations that need an authenticated
// session when none is present.
var ErrNotLoggedIn = errors.New("not logged in")

// Session holds the fields the storefront keeps client-side.
type Session struct {
	Token     string `json:"token"`
	UserID    string `json:"userId"`
	Role      string `json:"role"`
	CartCount int    `json:"cartCount"`
}

// Store reads and writes the session file. Safe for concurrent use.
type Store struct {
	path string

	mu      sync.RWMutex
	current Session
}

// NewStore creates a store backed by the given file and loads any
// existing session from it. A missing or unreadable file starts empty.
func NewStore(path string) *Store {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err == nil {
		var sess Session
		if json.Unmarshal(data, &sess) == nil {
			s.current = sess
		}
	}
	return s
}

// Current returns a copy of the session.
func (s *Store) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// LoggedIn reports whether a token and user ID are present.
func (s *Store) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Token != "" && s.current.UserID != ""
}

// IsAdmin reports whether the session user has the admin role.
func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Role == "admin"
}

// Token returns the bearer token, or empty when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Token
}

// UserID returns the session user ID, or empty when logged out.
func (s *Store) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.UserID
}

// Save replaces the session and persists it.
func (s *Store) Save(sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = sess
	return s.write()
}

// SetCartCount updates only the cached cart badge count.
func (s *Store) SetCartCount(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.CartCount = n
	return s.write()
}

// Clear wipes the session, both in memory and on disk. Used on logout and
// on detected token expiry.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = Session{}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session file: %w", err)
	}
	return nil
}

func (s *Store) write() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating session dir: %w", err)
	}
	data, err := json.MarshalIndent(s.current, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	return nil
}
