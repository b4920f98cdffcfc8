package models

import "errors"

// Shared error vocabulary. Services and repositories wrap these sentinels
// so callers can classify failures with errors.Is.
var (
	// ErrNotFound indicates the requested workspace, user or record does not exist
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized indicates the caller is not allowed to act on the resource
	ErrUnauthorized = errors.New("unauthorized")

	// ErrMissingConfiguration indicates a workspace record lacks the fields
	// required to reach its sandbox
	ErrMissingConfiguration = errors.New("missing configuration")

	// ErrStartFailure indicates the sandbox could not be brought into the
	// running state
	ErrStartFailure = errors.New("sandbox start failure")

	// ErrAlreadyExists indicates a uniqueness conflict on create
	ErrAlreadyExists = errors.New("resource already exists")

	// ErrSweepInProgress indicates another reaper sweep holds the lock
	ErrSweepInProgress = errors.New("sweep already in progress")
)
