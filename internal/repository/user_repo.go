package repository

import (
	"context"
	"sync"

	"taskboard/internal/model"
	"taskboard/internal/store"
)

// UserRepository persists the user directory as one JSON document, with the
// same single-writer read-modify-write discipline as the task collection.
type UserRepository struct {
	mu   sync.Mutex
	file *store.File
}

func NewUserRepository(file *store.File) *UserRepository {
	return &UserRepository{file: file}
}

// All returns every registered user.
func (r *UserRepository) All(ctx context.Context) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// FindByUsername returns the user with that name, or nil if unregistered.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	users, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, nil
}

// Mutate runs fn against the full directory under the writer lock and
// persists the result. If fn returns an error nothing is written.
func (r *UserRepository) Mutate(ctx context.Context, fn func(users []model.User) ([]model.User, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return err
	}

	updated, err := fn(users)
	if err != nil {
		return err
	}

	return r.file.Write(updated)
}

func (r *UserRepository) load() ([]model.User, error) {
	users := []model.User{}
	if err := r.file.Read(&users); err != nil {
		return nil, err
	}
	return users, nil
}
