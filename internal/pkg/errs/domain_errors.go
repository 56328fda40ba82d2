package errs

import "errors"

// Usecase-level sentinel errors shared across command and query handlers.
// Floor plan rule violations live in the floorplan domain package.
var (
	// Persistence errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrLockUnavailable         = errors.New("plan lock unavailable")
	ErrRetriesExhausted        = errors.New("concurrent update retries exhausted")

	// Request errors
	ErrIdempotencyKeyInvalid = errors.New("idempotency key must be a UUID")
	ErrUnauthorized          = errors.New("authentication required")
	ErrInsufficientRole      = errors.New("insufficient role")
)
