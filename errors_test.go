package shopapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessageFormat(t *testing.T) {
	err := &Error{
		Type:       ErrorTypeServer,
		Message:    "server error",
		StatusCode: 502,
		Attempt:    2,
		MaxRetries: 3,
		Cause:      errors.New("bad gateway"),
	}

	msg := err.Error()
	assert.Contains(t, msg, "shopapi: Server: server error")
	assert.Contains(t, msg, "status 502")
	assert.Contains(t, msg, "attempt 3/4")
	assert.Contains(t, msg, "bad gateway")
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := &Error{Type: ErrorTypeNetwork, Cause: cause}

	assert.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("fetching overview: %w", err)
	var apiErr *Error
	require.ErrorAs(t, wrapped, &apiErr)
	assert.Equal(t, ErrorTypeNetwork, apiErr.Type)
}

func TestErrorIsMatchesByType(t *testing.T) {
	err := &Error{Type: ErrorTypeTimeout, Message: "attempt exceeded its timeout"}

	assert.True(t, errors.Is(err, &Error{Type: ErrorTypeTimeout}))
	assert.False(t, errors.Is(err, &Error{Type: ErrorTypeNetwork}))
	assert.False(t, errors.Is(err, errors.New("timeout")))
}

func TestTransientClassification(t *testing.T) {
	cases := []struct {
		name string
		err  *Error
		want bool
	}{
		{"network", &Error{Type: ErrorTypeNetwork}, true},
		{"server", &Error{Type: ErrorTypeServer, StatusCode: 500}, true},
		{"rate limited", &Error{Type: ErrorTypeRateLimited, StatusCode: 429}, true},
		{"client 404", &Error{Type: ErrorTypeClient, StatusCode: 404}, false},
		{"client carrying 429", &Error{Type: ErrorTypeClient, StatusCode: 429}, true},
		{"timeout", &Error{Type: ErrorTypeTimeout}, false},
		{"canceled", &Error{Type: ErrorTypeCanceled}, false},
		{"encoding", &Error{Type: ErrorTypeEncoding}, false},
		{"decoding", &Error{Type: ErrorTypeDecoding}, false},
		{"validation", &Error{Type: ErrorTypeValidation}, false},
		{"nil", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.err.Transient())
		})
	}
}

func TestDecodeBody(t *testing.T) {
	err := &Error{
		Type:       ErrorTypeClient,
		StatusCode: http.StatusUnprocessableEntity,
		Body:       json.RawMessage(`{"detail":"price must be positive"}`),
	}

	var payload struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, err.DecodeBody(&payload))
	assert.Equal(t, "price must be positive", payload.Detail)

	empty := &Error{Type: ErrorTypeServer}
	assert.Error(t, empty.DecodeBody(&payload))
}

func TestHelperAccessors(t *testing.T) {
	timeout := &Error{Type: ErrorTypeTimeout}
	server := &Error{Type: ErrorTypeServer, StatusCode: 503}

	assert.True(t, IsTimeout(timeout))
	assert.False(t, IsTimeout(server))
	assert.True(t, IsTransient(fmt.Errorf("wrapped: %w", server)))
	assert.False(t, IsTransient(errors.New("plain")))
	assert.Equal(t, 503, StatusCode(server))
	assert.Equal(t, 0, StatusCode(errors.New("plain")))
}
