package client

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/sbilibin2017/gift-registry/pkg/models"
)

// SessionFileName is the fixed key the cached session is stored under.
const SessionFileName = "gift-registry-session.json"

// Session is the viewer state the page router dispatches on: either a
// guest or a logged-in user.
type Session struct {
	viewer *models.UserDB
}

// NewSession creates a Session. A nil viewer is a guest session.
func NewSession(viewer *models.UserDB) Session {
	return Session{viewer: viewer}
}

// Viewer returns the logged-in user, or nil for a guest.
func (s Session) Viewer() *models.UserDB {
	return s.viewer
}

// LoggedIn reports whether a user is logged in.
func (s Session) LoggedIn() bool {
	return s.viewer != nil
}

// SessionStore persists the session between runs under a fixed file name
// in an injected directory. It is handed to the UI root at startup rather
// than accessed as ambient global state.
type SessionStore struct {
	path string
}

// NewSessionStore creates a store rooted at dir.
func NewSessionStore(dir string) *SessionStore {
	return &SessionStore{path: filepath.Join(dir, SessionFileName)}
}

// Load reads the cached session. A missing or unreadable cache yields a
// guest session, not an error: the UI falls back to logged-out state.
func (st *SessionStore) Load() Session {
	data, err := os.ReadFile(st.path)
	if err != nil {
		return NewSession(nil)
	}

	var viewer models.UserDB
	if err := json.Unmarshal(data, &viewer); err != nil {
		return NewSession(nil)
	}
	return NewSession(&viewer)
}

// Save writes the session to the cache. Saving a guest session clears it.
func (st *SessionStore) Save(s Session) error {
	if !s.LoggedIn() {
		return st.Clear()
	}

	data, err := json.Marshal(s.Viewer())
	if err != nil {
		return err
	}
	return os.WriteFile(st.path, data, 0o600)
}

// Clear removes the cached session. This is the logout contract; a cache
// that is already absent is not an error.
func (st *SessionStore) Clear() error {
	err := os.Remove(st.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
