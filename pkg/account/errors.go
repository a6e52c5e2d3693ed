package account

import "errors"

var (
	// ErrTooManyRetries means the login retry budget was exhausted.
	ErrTooManyRetries = errors.New("too many retries")

	// ErrRequestTimeout means a single query exceeded its time budget.
	ErrRequestTimeout = errors.New("timeout getting data from service")

	// ErrNoResult means the service answered with an empty or unusable
	// payload; the scan point should be retried.
	ErrNoResult = errors.New("no result from service")

	// ErrPersistence wraps transaction failures from the store.
	ErrPersistence = errors.New("persistence failure")

	// ErrInvalidCredential means an account string did not match the
	// "user[:pass]@provider" form.
	ErrInvalidCredential = errors.New("invalid account credential")
)
