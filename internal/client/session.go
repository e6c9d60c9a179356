package client

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Session is the locally persisted login state: one token in one file.
// Being logged in means the file holds a token; logging out removes it.
type Session struct {
	path string
}

func NewSession(path string) *Session {
	return &Session{path: path}
}

// DefaultSessionPath is ~/.taskboard/token.
func DefaultSessionPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".taskboard", "token"), nil
}

// Token returns the stored token, or "" when logged out.
func (s *Session) Token() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// SaveToken persists the token, creating the session directory if needed.
func (s *Session) SaveToken(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token+"\n"), 0o600)
}

// Clear logs out. Clearing an already cleared session is fine.
func (s *Session) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
