package repository

import (
	"context"
	"sync"

	"taskboard/internal/model"
	"taskboard/internal/store"
)

// TaskRepository persists tasks as one JSON document. Every mutation is a
// whole-collection read-modify-write guarded by a single-writer lock, so
// concurrent requests within the process cannot lose each other's updates.
type TaskRepository struct {
	mu   sync.Mutex
	file *store.File
}

func NewTaskRepository(file *store.File) *TaskRepository {
	return &TaskRepository{file: file}
}

// All returns the full task collection, deleted records included.
func (r *TaskRepository) All(ctx context.Context) ([]model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// Mutate runs fn against the full collection under the writer lock and
// persists the result. If fn returns an error nothing is written.
func (r *TaskRepository) Mutate(ctx context.Context, fn func(tasks []model.Task) ([]model.Task, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, err := r.load()
	if err != nil {
		return err
	}

	updated, err := fn(tasks)
	if err != nil {
		return err
	}

	return r.file.Write(updated)
}

func (r *TaskRepository) load() ([]model.Task, error) {
	tasks := []model.Task{}
	if err := r.file.Read(&tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}
