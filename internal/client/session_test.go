package client

import (
	"path/filepath"
	"testing"
)

func TestSessionRoundTrip(t *testing.T) {
	s := NewSession(filepath.Join(t.TempDir(), ".taskboard", "token"))

	token, err := s.Token()
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if token != "" {
		t.Fatalf("fresh session must be logged out, got %q", token)
	}

	if err := s.SaveToken("abc.def.ghi"); err != nil {
		t.Fatalf("save: %v", err)
	}

	token, err = s.Token()
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if token != "abc.def.ghi" {
		t.Fatalf("unexpected token %q", token)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	token, err = s.Token()
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if token != "" {
		t.Fatalf("cleared session still has token %q", token)
	}

	// Clearing twice is fine.
	if err := s.Clear(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}
