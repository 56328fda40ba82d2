package offline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"floorplan-service/internal/domain/floorplan"

	"github.com/google/uuid"
)

// SyncResult mirrors the server's sync response body.
type SyncResult struct {
	Message  string `json:"message"`
	Version  int    `json:"version"`
	Applied  int    `json:"applied"`
	Skipped  int    `json:"skipped"`
	Replayed bool   `json:"replayed"`
}

type SyncClient interface {
	Sync(ctx context.Context, planID uuid.UUID, changes []floorplan.Change, key uuid.UUID) (SyncResult, error)
}

// StatusError is a non-2xx answer from the server.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("sync rejected with status %d: %s", e.Code, e.Message)
}

// Permanent reports whether resending the same entry can never succeed.
// Auth failures are not permanent: the entry is fine, the credentials are not.
func (e *StatusError) Permanent() bool {
	switch e.Code {
	case http.StatusRequestTimeout, http.StatusConflict, http.StatusTooManyRequests,
		http.StatusUnauthorized, http.StatusForbidden:
		return false
	}
	return e.Code >= 400 && e.Code < 500
}

// IsPermanent reports whether err is a StatusError that should not be retried.
func IsPermanent(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Permanent()
}

// IsNetworkError reports whether err means the server could not be reached.
func IsNetworkError(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) || errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, context.DeadlineExceeded)
}

type HTTPSyncClient struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewHTTPSyncClient(baseURL, token string, timeout time.Duration) *HTTPSyncClient {
	return &HTTPSyncClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPSyncClient) Sync(ctx context.Context, planID uuid.UUID, changes []floorplan.Change, key uuid.UUID) (SyncResult, error) {
	body, err := json.Marshal(map[string]any{"changes": changes})
	if err != nil {
		return SyncResult{}, fmt.Errorf("failed to encode changes: %w", err)
	}

	url := fmt.Sprintf("%s/api/floorplans/%s/sync", c.baseURL, planID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return SyncResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", key.String())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return SyncResult{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return SyncResult{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return SyncResult{}, &StatusError{Code: resp.StatusCode, Message: errorMessage(raw)}
	}

	var res SyncResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return SyncResult{}, fmt.Errorf("failed to decode sync response: %w", err)
	}
	return res, nil
}

func errorMessage(raw []byte) string {
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Error.Message != "" {
		return body.Error.Message
	}
	return strings.TrimSpace(string(raw))
}
