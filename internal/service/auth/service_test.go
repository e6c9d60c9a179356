package auth

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"taskboard/internal/repository"
	"taskboard/internal/store"
	"taskboard/internal/util"
)

func newService(t *testing.T) *Service {
	t.Helper()
	users := repository.NewUserRepository(store.NewFile(filepath.Join(t.TempDir(), "users.json")))
	return NewService(users, "test-secret")
}

func TestRegisterAndLogin(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	u, err := s.Register(ctx, "alice", "hunter2")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Username != "alice" {
		t.Fatalf("unexpected username: %s", u.Username)
	}
	if u.PasswordHash == "hunter2" || u.PasswordHash == "" {
		t.Fatal("password must be stored hashed")
	}

	token, err := s.Login(ctx, "alice", "hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	username, err := util.ParseJWT(token, "test-secret")
	if err != nil {
		t.Fatalf("token does not verify: %v", err)
	}
	if username != "alice" {
		t.Fatalf("token embeds %q, expected alice", username)
	}
}

func TestRegisterMissingFields(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	if _, err := s.Register(ctx, "", "pw"); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if _, err := s.Register(ctx, "alice", ""); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	if _, err := s.Register(ctx, "alice", "pw1"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := s.Register(ctx, "alice", "pw2"); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	if _, err := s.Register(ctx, "alice", "hunter2"); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, wrongPassword := s.Login(ctx, "alice", "wrong")
	_, unknownUser := s.Login(ctx, "nobody", "hunter2")

	if !errors.Is(wrongPassword, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassword)
	}
	if !errors.Is(unknownUser, ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", unknownUser)
	}
	if wrongPassword.Error() != unknownUser.Error() {
		t.Fatalf("messages differ: %q vs %q", wrongPassword, unknownUser)
	}
}
