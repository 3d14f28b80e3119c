package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	domain "github.com/nadhirdhanu/task-tracker-cli/domain/user"
	"github.com/nadhirdhanu/task-tracker-cli/modules/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store := storage.New(t.TempDir())
	// MinCost keeps the tests fast
	return NewService(NewUserRepository(store), NewPasswordHasher(bcrypt.MinCost))
}

func TestRegister_Success(t *testing.T) {
	svc := newTestService(t)

	u, err := svc.Register("Alice", "secret")
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.NotEqual(t, "secret", u.PasswordHash)
	assert.False(t, u.CreatedAt.IsZero())
}

func TestRegister_NormalizesUsername(t *testing.T) {
	svc := newTestService(t)

	u, err := svc.Register("  Alice ", "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
}

func TestRegister_EmptyFields(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Register("", "secret")
	assert.ErrorIs(t, err, domain.ErrEmptyUsername)

	_, err = svc.Register("   ", "secret")
	assert.ErrorIs(t, err, domain.ErrEmptyUsername)

	_, err = svc.Register("alice", "")
	assert.ErrorIs(t, err, domain.ErrEmptyPassword)

	_, err = svc.Register("alice", "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyPassword)
}

func TestRegister_DuplicateIsCaseInsensitive(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Register("Alice", "x")
	require.NoError(t, err)

	_, err = svc.Register("alice", "y")
	assert.ErrorIs(t, err, domain.ErrUserExists)

	_, err = svc.Register("ALICE", "z")
	assert.ErrorIs(t, err, domain.ErrUserExists)
}

func TestAuthenticate_Success(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Register("alice", "secret")
	require.NoError(t, err)

	u, err := svc.Authenticate("alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)

	// Login with the form typed at registration, not the stored form
	u, err = svc.Authenticate("  Alice ", "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
}

// Wrong passwords and unknown users must be indistinguishable.
func TestAuthenticate_UniformFailure(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Register("alice", "secret")
	require.NoError(t, err)

	_, wrongPassword := svc.Authenticate("alice", "nope")
	_, unknownUser := svc.Authenticate("bob", "secret")

	assert.ErrorIs(t, wrongPassword, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, domain.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestRegister_PlaintextNeverPersisted(t *testing.T) {
	store := storage.New(t.TempDir())
	svc := NewService(NewUserRepository(store), NewPasswordHasher(bcrypt.MinCost))

	_, err := svc.Register("alice", "secret")
	require.NoError(t, err)

	var users []domain.User
	require.NoError(t, store.Load("users.json", &users))
	require.Len(t, users, 1)
	assert.NotContains(t, users[0].PasswordHash, "secret")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users[0].PasswordHash), []byte("secret")))
}
