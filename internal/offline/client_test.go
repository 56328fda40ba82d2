//go:build unit

package offline_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"floorplan-service/internal/domain/floorplan"
	"floorplan-service/internal/offline"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSyncClient_Sync(t *testing.T) {
	planID := uuid.New()
	key := uuid.New()

	t.Run("sends changes with key and token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/floorplans/"+planID.String()+"/sync", r.URL.Path)
			assert.Equal(t, key.String(), r.Header.Get("Idempotency-Key"))
			assert.Equal(t, "Bearer tkn", r.Header.Get("Authorization"))

			var body struct {
				Changes []floorplan.Change `json:"changes"`
			}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Len(t, body.Changes, 1)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"message":"Changes synced","version":4,"applied":1,"skipped":0,"replayed":false}`))
		}))
		defer srv.Close()

		c := offline.NewHTTPSyncClient(srv.URL+"/", "tkn", time.Second)
		res, err := c.Sync(context.Background(), planID, []floorplan.Change{seatChange(t, 1, true)}, key)

		require.NoError(t, err)
		assert.Equal(t, 4, res.Version)
		assert.Equal(t, 1, res.Applied)
	})

	statusCases := []struct {
		code      int
		permanent bool
	}{
		{code: http.StatusBadRequest, permanent: true},
		{code: http.StatusNotFound, permanent: true},
		{code: http.StatusUnprocessableEntity, permanent: true},
		{code: http.StatusUnauthorized, permanent: false},
		{code: http.StatusForbidden, permanent: false},
		{code: http.StatusConflict, permanent: false},
		{code: http.StatusTooManyRequests, permanent: false},
		{code: http.StatusServiceUnavailable, permanent: false},
		{code: http.StatusInternalServerError, permanent: false},
	}
	for _, tc := range statusCases {
		t.Run(http.StatusText(tc.code), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.code)
				_, _ = w.Write([]byte(`{"error":{"message":"nope"}}`))
			}))
			defer srv.Close()

			_, err := offline.NewHTTPSyncClient(srv.URL, "", time.Second).
				Sync(context.Background(), planID, []floorplan.Change{seatChange(t, 1, true)}, key)

			var se *offline.StatusError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tc.code, se.Code)
			assert.Equal(t, "nope", se.Message)
			assert.Equal(t, tc.permanent, offline.IsPermanent(err))
			assert.False(t, offline.IsNetworkError(err))
		})
	}

	t.Run("unreachable server is a network error", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		_, err := offline.NewHTTPSyncClient(url, "", time.Second).
			Sync(context.Background(), planID, []floorplan.Change{seatChange(t, 1, true)}, key)

		require.Error(t, err)
		assert.True(t, offline.IsNetworkError(err))
		assert.False(t, offline.IsPermanent(err))
	})
}
