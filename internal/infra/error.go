package infra

import (
	"errors"
	"log/slog"

	"floorplan-service/internal/pkg/errs"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr logs low-level failures and returns a kinded error. Expected
// outcomes (not found, version mismatch) are logged at debug level.
func WrapRepoErr(slogger *slog.Logger, kind RepositoryErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	switch kind {
	case KindNotFound, KindVersionMismatch:
		slogger.Debug("Repository outcome: "+msg, logArgs...)
	default:
		slogger.Error("Repository error: "+msg, logArgs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound        RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure       RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey    RepositoryErrorKind = "DUPLICATE_KEY"
	KindVersionMismatch RepositoryErrorKind = "VERSION_MISMATCH"
	KindLockTimeout     RepositoryErrorKind = "LOCK_TIMEOUT"
)
