package task

import "errors"

var (
	// ErrNotFound indicates no task with the requested id exists.
	ErrNotFound = errors.New("task not found")
	// ErrNotOwner indicates the task belongs to a different user.
	ErrNotOwner = errors.New("task belongs to another user")
	// ErrInvalidStatus indicates a status value outside todo, in-progress and done.
	ErrInvalidStatus = errors.New("invalid status")
)
