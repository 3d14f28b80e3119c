package identity

import (
	"errors"
	"fmt"

	domain "github.com/nadhirdhanu/task-tracker-cli/domain/user"
	"github.com/nadhirdhanu/task-tracker-cli/modules/storage"
)

const usersFile = "users.json"

// UserRepository persists the user collection as one whole document. Every
// call works on a fresh copy loaded from disk; nothing is cached between
// invocations.
type UserRepository struct {
	store *storage.Store
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(store *storage.Store) *UserRepository {
	return &UserRepository{store: store}
}

// FindByUsername finds a user by normalized username.
func (r *UserRepository) FindByUsername(username string) (*domain.User, error) {
	users, err := r.loadAll()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// UsernameExists checks if a user with the given normalized username exists.
func (r *UserRepository) UsernameExists(username string) (bool, error) {
	_, err := r.FindByUsername(username)
	if errors.Is(err, domain.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create appends a new user and persists the whole collection.
func (r *UserRepository) Create(u *domain.User) error {
	users, err := r.loadAll()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].Username == u.Username {
			return domain.ErrUserExists
		}
	}
	users = append(users, *u)
	if err := r.store.Save(usersFile, users); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}
	return nil
}

func (r *UserRepository) loadAll() ([]domain.User, error) {
	var users []domain.User
	if err := r.store.Load(usersFile, &users); err != nil {
		return nil, err
	}
	return users, nil
}
