package session

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Store holds the single bearer token shared by every outgoing domain API
// request. It is written only by login/register/logout and read by everything
// else, and it persists under exactly one file path so that clearing the
// session removes the same token that was stored.
type Store struct {
	mu    sync.RWMutex
	path  string
	token string
}

// New builds a Store backed by path and loads any previously persisted token.
func New(path string) (*Store, error) {
	s := &Store{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, errors.Wrap(err, "session: read token")
	}
	s.token = strings.TrimSpace(string(data))
	return s, nil
}

func (s *Store) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "session: create dir")
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return errors.Wrap(err, "session: write token")
	}
	s.token = token
	return nil
}

// Token returns the stored token and whether one is present.
func (s *Store) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "session: remove token")
	}
	s.token = ""
	return nil
}
