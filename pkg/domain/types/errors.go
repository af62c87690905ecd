package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption = goerr.New("invalid option")

	// ErrLockConflict is returned when a lease on the lock resource is held
	// by another token. It is an expected outcome, not a failure: overlapping
	// triggers are normal and the losing run exits as a no-op.
	ErrLockConflict = goerr.New("lock conflict")

	// ErrContentNotFound indicates the requested path does not exist in the
	// content repository.
	ErrContentNotFound = goerr.New("content not found")

	// ErrInvalidPath indicates a card path that is empty, escapes the posts
	// directory, or contains traversal sequences.
	ErrInvalidPath = goerr.New("invalid card path")

	ErrInvalidGitHubData = goerr.New("invalid github data")
)
