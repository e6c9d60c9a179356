// Package directory exposes the assignee directory: the list of registered
// usernames that tasks may reference. The directory and the login accounts
// are the same collection.
package directory

import (
	"context"
	"errors"

	"taskboard/internal/model"
	"taskboard/internal/repository"
	"taskboard/internal/util"
)

var (
	ErrNameRequired  = errors.New("Assignee name is required.")
	ErrAlreadyExists = errors.New("Assignee already exists.")
	ErrNotFound      = errors.New("Assignee not found.")
)

type Service struct {
	users *repository.UserRepository
}

func NewService(users *repository.UserRepository) *Service {
	return &Service{users: users}
}

// List returns every registered username.
func (s *Service) List(ctx context.Context) ([]string, error) {
	users, err := s.users.All(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.Username)
	}
	return names, nil
}

// Add registers a new directory entry. The password is optional here: an
// assignee added without one appears in the directory and can be put on
// tasks, but cannot log in until registered with a password.
func (s *Service) Add(ctx context.Context, name, password string) error {
	if name == "" {
		return ErrNameRequired
	}

	hash := ""
	if password != "" {
		var err error
		hash, err = util.HashPassword(password)
		if err != nil {
			return err
		}
	}

	return s.users.Mutate(ctx, func(users []model.User) ([]model.User, error) {
		for i := range users {
			if users[i].Username == name {
				return nil, ErrAlreadyExists
			}
		}
		return append(users, model.User{Username: name, PasswordHash: hash}), nil
	})
}

// Remove hard-deletes a directory entry. Tasks already referencing the name
// keep their sub-records untouched.
func (s *Service) Remove(ctx context.Context, name string) error {
	return s.users.Mutate(ctx, func(users []model.User) ([]model.User, error) {
		kept := users[:0]
		for _, u := range users {
			if u.Username != name {
				kept = append(kept, u)
			}
		}
		if len(kept) == len(users) {
			return nil, ErrNotFound
		}
		return kept, nil
	})
}
