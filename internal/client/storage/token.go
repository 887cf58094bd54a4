// Package storage persists the bearer token across runs, the way the web
// client kept it in browser local storage: a single opaque string under a
// fixed location.
package storage

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/azhukov/campus-navigator/internal/filex"
)

// ErrIntegrity is returned when a token read back from storage does not
// match the value just written. Callers treat it as fatal to the current
// operation rather than proceeding with a possibly corrupt credential.
var ErrIntegrity = errors.New("token storage integrity failure")

// TokenStore is the persisted-credential contract used by the session
// manager. Load returns an empty string when no token is stored.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileStore keeps the token in a mode-0600 file.
type FileStore struct {
	path string
}

// NewFileStore uses the given file path; parent directories are created on
// first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileStore) Save(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("refusing to store empty token")
	}
	if err := filex.EnsureParent(s.path); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}

// SaveVerified writes the token and reads it back, failing with
// ErrIntegrity when the stored value differs from what was written. The
// original client grew this check after silent storage truncation broke
// freshly registered sessions.
func SaveVerified(s TokenStore, token string) error {
	if err := s.Save(token); err != nil {
		return err
	}
	got, err := s.Load()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIntegrity, err)
	}
	if got != strings.TrimSpace(token) {
		return fmt.Errorf("%w: stored value does not match", ErrIntegrity)
	}
	return nil
}

var _ TokenStore = (*FileStore)(nil)
