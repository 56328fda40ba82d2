//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ErrorEnvelope mirrors the service error body with a typed detail.
type ErrorEnvelope[D any] struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Detail D `json:"detail"`
}

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equalf(t, expectedStatus, w.Code, "body: %s", w.Body.String()) {
		return
	}
	if target != nil && w.Code < 300 {
		assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), target), "decode body: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status and, when msg is non-empty, that the
// error message contains it.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, msg string) {
	t.Helper()

	assert.Equalf(t, expectedStatus, w.Code, "body: %s", w.Body.String())
	env := DecodeError[json.RawMessage](t, w)
	if msg != "" {
		assert.Contains(t, env.Error.Message, msg)
	}
}

func AssertErrorCode(t *testing.T, w *httptest.ResponseRecorder, code string) {
	t.Helper()
	assert.Equal(t, code, DecodeError[json.RawMessage](t, w).Error.Code)
}

func DecodeError[D any](t *testing.T, w *httptest.ResponseRecorder) ErrorEnvelope[D] {
	t.Helper()
	var env ErrorEnvelope[D]
	require.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), &env), "decode error body: %s", w.Body.String())
	return env
}

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equalf(t, v, w.Header().Get(k), "header %s", k)
	}
}
