package shopapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapZerologEmitsFields(t *testing.T) {
	var buf bytes.Buffer
	logger := WrapZerolog(zerolog.New(&buf))

	logger.Info("retrying request", "attempt", 2, "method", "GET")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "retrying request", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, float64(2), entry["attempt"])
	assert.Equal(t, "GET", entry["method"])
}

func TestNewLoggerLevels(t *testing.T) {
	assert.NotNil(t, NewLogger("debug", false))
	assert.NotNil(t, NewLogger("error", true))
	// Unparseable levels fall back to info instead of failing.
	assert.NotNil(t, NewLogger("extremely-verbose", false))
}

func TestClientLogsRetries(t *testing.T) {
	var calls atomic.Int64
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{}`))
	})

	var buf bytes.Buffer
	c := New(
		WithBaseURL(srv.URL),
		WithMaxRetries(1),
		WithRetryDelay(time.Millisecond),
		WithLogger(WrapZerolog(zerolog.New(&buf))),
	)

	_, err := c.Do(context.Background(), http.MethodGet, "/x", nil)
	require.NoError(t, err)

	logs := buf.String()
	assert.Contains(t, logs, "retrying request")
	assert.Contains(t, logs, "requestID")
}
