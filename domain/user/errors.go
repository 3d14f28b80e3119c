package user

import "errors"

var (
	// ErrEmptyUsername is returned when the username is empty after trimming.
	ErrEmptyUsername = errors.New("username must not be empty")
	// ErrEmptyPassword is returned when the password is empty after trimming.
	ErrEmptyPassword = errors.New("password must not be empty")
	// ErrPasswordTooLong is returned when the password exceeds bcrypt's 72-byte limit.
	ErrPasswordTooLong = errors.New("password must be at most 72 characters")
	// ErrUserExists is returned when the normalized username is already taken.
	ErrUserExists = errors.New("user with this username already exists")
	// ErrInvalidCredentials is returned for both unknown users and wrong
	// passwords so callers cannot tell which accounts exist.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
)
