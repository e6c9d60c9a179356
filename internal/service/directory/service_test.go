package directory

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"taskboard/internal/repository"
	"taskboard/internal/store"
)

func newService(t *testing.T) *Service {
	t.Helper()
	users := repository.NewUserRepository(store.NewFile(filepath.Join(t.TempDir(), "users.json")))
	return NewService(users)
}

func TestAddAndList(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	if err := s.Add(ctx, "alice", "pw"); err != nil {
		t.Fatalf("add alice: %v", err)
	}
	if err := s.Add(ctx, "bob", ""); err != nil {
		t.Fatalf("add bob without password: %v", err)
	}

	names, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(names) != 2 || names[0] != "alice" || names[1] != "bob" {
		t.Fatalf("unexpected directory: %v", names)
	}
}

func TestAddRequiresName(t *testing.T) {
	s := newService(t)
	if err := s.Add(context.Background(), "", ""); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
}

func TestAddDuplicateConflicts(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	if err := s.Add(ctx, "alice", ""); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.Add(ctx, "alice", ""); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	if err := s.Add(ctx, "alice", ""); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.Remove(ctx, "alice"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	names, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(names) != 0 {
		t.Fatalf("expected empty directory, got %v", names)
	}
}

func TestRemoveAbsentIsNotFound(t *testing.T) {
	s := newService(t)
	if err := s.Remove(context.Background(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
