package identity

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	domain "github.com/nadhirdhanu/task-tracker-cli/domain/user"
)

// Service handles registration and authentication.
type Service struct {
	repo   *UserRepository
	hasher *PasswordHasher
}

// NewService creates a new identity Service.
func NewService(repo *UserRepository, hasher *PasswordHasher) *Service {
	return &Service{repo: repo, hasher: hasher}
}

// Normalize trims surrounding whitespace and lowercases a username so that
// lookups and duplicate checks are case-insensitive.
func Normalize(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// Register creates a new account. The plaintext password is hashed before
// it reaches the repository and is never persisted.
func (s *Service) Register(username, password string) (*domain.User, error) {
	name := Normalize(username)
	if name == "" {
		return nil, domain.ErrEmptyUsername
	}
	if strings.TrimSpace(password) == "" {
		return nil, domain.ErrEmptyPassword
	}
	// bcrypt rejects inputs longer than 72 bytes
	if len(password) > 72 {
		return nil, domain.ErrPasswordTooLong
	}

	exists, err := s.repo.UsernameExists(name)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, domain.ErrUserExists
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &domain.User{
		ID:           uuid.New().String(),
		Username:     name,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(u); err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"user": u.Username}).Debug("registered user")
	return u, nil
}

// Authenticate verifies a username/password pair against the stored hash.
// Unknown users and wrong passwords produce the same ErrInvalidCredentials
// so callers cannot tell which accounts exist.
func (s *Service) Authenticate(username, password string) (*domain.User, error) {
	u, err := s.repo.FindByUsername(Normalize(username))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if !s.hasher.Verify(password, u.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return u, nil
}
