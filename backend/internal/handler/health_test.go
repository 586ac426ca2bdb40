package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	t.Run("always returns 200 OK", func(t *testing.T) {
		handler := &Handler{health: &MockHealthChecker{}}

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rr := httptest.NewRecorder()

		handler.Health(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "ok", rr.Body.String())
	})
}

func TestReady(t *testing.T) {
	t.Run("returns 200 OK when database is available", func(t *testing.T) {
		handler := &Handler{health: &MockHealthChecker{}}

		rr := httptest.NewRecorder()
		handler.Ready(rr, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "ok", rr.Body.String())
	})

	t.Run("returns 503 Service Unavailable when database is down", func(t *testing.T) {
		var deadlineSet bool
		handler := &Handler{health: &MockHealthChecker{
			PingFunc: func(ctx context.Context) error {
				_, deadlineSet = ctx.Deadline()
				return errors.New("connection refused")
			},
		}}

		rr := httptest.NewRecorder()
		handler.Ready(rr, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.Equal(t, "database unavailable", rr.Body.String())
		assert.True(t, deadlineSet, "ping should run with a timeout")
	})
}

func TestDBTest(t *testing.T) {
	t.Run("reports time and database", func(t *testing.T) {
		now := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
		handler := &Handler{prober: &MockProber{
			ProbeFunc: func(ctx context.Context) (time.Time, string, error) {
				return now, "boardlog", nil
			},
		}}

		rr := httptest.NewRecorder()
		handler.DBTest(rr, httptest.NewRequest(http.MethodGet, "/db-test", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		var body struct {
			Ok       bool      `json:"ok"`
			Now      time.Time `json:"now"`
			Database string    `json:"database"`
		}
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
		assert.True(t, body.Ok)
		assert.True(t, now.Equal(body.Now))
		assert.Equal(t, "boardlog", body.Database)
	})

	t.Run("probe failure is a 500 with the message", func(t *testing.T) {
		handler := &Handler{prober: &MockProber{
			ProbeFunc: func(ctx context.Context) (time.Time, string, error) {
				return time.Time{}, "", errors.New("db probe failed: dial tcp: connection refused")
			},
		}}

		rr := httptest.NewRecorder()
		handler.DBTest(rr, httptest.NewRequest(http.MethodGet, "/db-test", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"error":"db probe failed: dial tcp: connection refused"}`, rr.Body.String())
	})
}
