package user

import "errors"

var (
	// ErrInvalidArgument is returned before any repository call when a user name is empty.
	ErrInvalidArgument = errors.New("user: username must not be empty")

	// ErrPersistence wraps every failure reported by a user repository.
	ErrPersistence = errors.New("user repository: persistence failed")
)
