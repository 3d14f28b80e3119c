package task

import (
	"time"

	log "github.com/sirupsen/logrus"

	domain "github.com/nadhirdhanu/task-tracker-cli/domain/task"
)

// Service implements the task lifecycle operations. The actor is resolved
// once per invocation by the caller and threaded into every call
// explicitly; with ownership checks disabled the actor is ignored.
type Service struct {
	repo        *Repository
	authEnabled bool
	now         func() time.Time
}

// NewService creates a new task Service. When authEnabled is true, tasks
// are tagged with their creating actor and every mutation checks ownership.
func NewService(repo *Repository, authEnabled bool) *Service {
	return &Service{
		repo:        repo,
		authEnabled: authEnabled,
		now:         time.Now,
	}
}

// Create adds a task in status todo. An empty description is permitted.
func (s *Service) Create(description, actor string) (*domain.Task, error) {
	tasks, err := s.repo.LoadAll()
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	t := domain.Task{
		ID:          s.nextID(tasks),
		Description: description,
		Status:      domain.StatusTodo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if s.authEnabled {
		t.Owner = actor
	}

	tasks = append(tasks, t)
	if err := s.repo.SaveAll(tasks); err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"op": "create", "id": t.ID, "actor": actor}).Debug("task created")
	return &t, nil
}

// Get returns a task without mutating it, with the same ownership gating
// as the write operations.
func (s *Service) Get(id int64, actor string) (*domain.Task, error) {
	tasks, err := s.repo.LoadAll()
	if err != nil {
		return nil, err
	}
	i, err := s.find(tasks, id, actor)
	if err != nil {
		return nil, err
	}
	t := tasks[i]
	return &t, nil
}

// Update replaces a task's description and refreshes its updatedAt.
func (s *Service) Update(id int64, description, actor string) (*domain.Task, error) {
	tasks, err := s.repo.LoadAll()
	if err != nil {
		return nil, err
	}
	i, err := s.find(tasks, id, actor)
	if err != nil {
		return nil, err
	}

	tasks[i].Description = description
	tasks[i].UpdatedAt = s.now().UTC()
	if err := s.repo.SaveAll(tasks); err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"op": "update", "id": id, "actor": actor}).Debug("task updated")
	t := tasks[i]
	return &t, nil
}

// Delete removes a task and returns the removed record. Its id is never
// handed out again within the same collection state.
func (s *Service) Delete(id int64, actor string) (*domain.Task, error) {
	tasks, err := s.repo.LoadAll()
	if err != nil {
		return nil, err
	}
	i, err := s.find(tasks, id, actor)
	if err != nil {
		return nil, err
	}

	removed := tasks[i]
	tasks = append(tasks[:i], tasks[i+1:]...)
	if err := s.repo.SaveAll(tasks); err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"op": "delete", "id": id, "actor": actor}).Debug("task deleted")
	return &removed, nil
}

// SetStatus moves a task to the given status. The value is validated before
// anything is loaded, so an invalid status never touches the collection.
// Any transition among the three valid values is permitted; there is no
// enforced linear ordering.
func (s *Service) SetStatus(id int64, status domain.Status, actor string) (*domain.Task, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	tasks, err := s.repo.LoadAll()
	if err != nil {
		return nil, err
	}
	i, err := s.find(tasks, id, actor)
	if err != nil {
		return nil, err
	}

	tasks[i].Status = status
	tasks[i].UpdatedAt = s.now().UTC()
	if err := s.repo.SaveAll(tasks); err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"op": "set-status", "id": id, "status": status, "actor": actor}).Debug("task status updated")
	t := tasks[i]
	return &t, nil
}

// MarkInProgress moves a task to in-progress.
func (s *Service) MarkInProgress(id int64, actor string) (*domain.Task, error) {
	return s.SetStatus(id, domain.StatusInProgress, actor)
}

// MarkDone moves a task to done.
func (s *Service) MarkDone(id int64, actor string) (*domain.Task, error) {
	return s.SetStatus(id, domain.StatusDone, actor)
}

// List returns the actor's tasks (all tasks when ownership checks are off),
// optionally narrowed to one status, in insertion order. An empty result is
// a normal outcome.
func (s *Service) List(actor string, filter domain.Status) ([]domain.Task, error) {
	if filter != "" && !filter.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	tasks, err := s.repo.LoadAll()
	if err != nil {
		return nil, err
	}

	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if s.authEnabled && t.Owner != actor {
			continue
		}
		if filter != "" && t.Status != filter {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// nextID assigns task ids. In single-user mode the id is max existing + 1,
// the scheme the flat file always used. With ownership checks on it is the
// current millisecond timestamp, bumped past the newest existing id when
// two creates land in the same millisecond.
func (s *Service) nextID(tasks []domain.Task) int64 {
	var max int64
	for i := range tasks {
		if tasks[i].ID > max {
			max = tasks[i].ID
		}
	}
	if !s.authEnabled {
		return max + 1
	}
	id := s.now().UTC().UnixMilli()
	if id <= max {
		id = max + 1
	}
	return id
}

// find locates the task with the given id and checks ownership. Unknown ids
// and tasks owned by someone else return distinct errors; the command layer
// renders both identically so task ids do not leak across users.
func (s *Service) find(tasks []domain.Task, id int64, actor string) (int, error) {
	for i := range tasks {
		if tasks[i].ID == id {
			if s.authEnabled && tasks[i].Owner != actor {
				return 0, domain.ErrNotOwner
			}
			return i, nil
		}
	}
	return 0, domain.ErrNotFound
}
