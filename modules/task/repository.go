package task

import (
	"fmt"

	domain "github.com/nadhirdhanu/task-tracker-cli/domain/task"
	"github.com/nadhirdhanu/task-tracker-cli/modules/storage"
)

const tasksFile = "tasks.json"

// Repository persists the task collection as one whole JSON document in
// insertion order. Every operation loads a fresh working copy and writes
// the full collection back; nothing is cached between invocations.
type Repository struct {
	store *storage.Store
}

// NewRepository creates a new task Repository.
func NewRepository(store *storage.Store) *Repository {
	return &Repository{store: store}
}

// LoadAll returns the persisted collection. A missing file yields an empty
// collection.
func (r *Repository) LoadAll() ([]domain.Task, error) {
	var tasks []domain.Task
	if err := r.store.Load(tasksFile, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// SaveAll rewrites the whole collection.
func (r *Repository) SaveAll(tasks []domain.Task) error {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	if err := r.store.Save(tasksFile, tasks); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	return nil
}
