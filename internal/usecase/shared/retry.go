package shared

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"log/slog"
	"time"

	"floorplan-service/internal/pkg/errs"
)

var ErrMaxRetriesExceeded = errs.New("operation failed after max retries")

type RetryPolicy struct {
	MaxRetries int
	Base       time.Duration
	// Retryable decides whether an attempt's error is worth another try.
	Retryable func(error) bool
	// OnRetry is called before each backoff wait.
	OnRetry func(attempt int, err error)
}

func RunWithRetry[T any](ctx context.Context, p RetryPolicy, fn func(attempt int) (T, error)) (T, error) {
	var zero T

	for attempt := 0; attempt <= p.MaxRetries; attempt++ {
		result, err := fn(attempt)
		if err == nil {
			return result, nil
		}

		if p.Retryable == nil || !p.Retryable(err) {
			return zero, err
		}

		if attempt == p.MaxRetries {
			slog.Error("operation failed after max retries",
				"attempts", attempt+1,
				"error", err.Error())
			return zero, errs.Mark(err, ErrMaxRetriesExceeded)
		}

		waitTime := calculateBackoff(attempt, p.Base)
		if p.OnRetry != nil {
			p.OnRetry(attempt, err)
		}
		slog.Warn("retrying operation due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return zero, ErrMaxRetriesExceeded
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}
