package common

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapError(t *testing.T) {
	tests := []struct {
		name            string
		originalError   error
		message         string
		expectedMessage string
	}{
		{
			name:            "wrap simple error",
			originalError:   errors.New("original error"),
			message:         "wrapper message",
			expectedMessage: "wrapper message: original error",
		},
		{
			name:            "empty wrapper message",
			originalError:   errors.New("original error"),
			message:         "",
			expectedMessage: ": original error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrappedError := WrapError(tt.originalError, tt.message)
			require.Error(t, wrappedError)
			assert.Equal(t, tt.expectedMessage, wrappedError.Error())
			assert.ErrorIs(t, wrappedError, tt.originalError)
		})
	}
}

func TestWrapError_Nil(t *testing.T) {
	assert.NoError(t, WrapError(nil, "ignored"))
	assert.NoError(t, WrapErrorf(nil, "ignored %d", 1))
}

func TestNetworkError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewNetworkError("http://example.com", "request failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "http://example.com")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestHTTPError_Message(t *testing.T) {
	err := NewHTTPErrorWithURL(http.StatusForbidden, "blocked", "http://example.com/api")
	assert.Equal(t, "HTTP 403 error for 'http://example.com/api': blocked", err.Error())

	var target *HTTPError
	wrapped := WrapError(err, "fetch")
	require.True(t, errors.As(wrapped, &target))
	assert.Equal(t, http.StatusForbidden, target.StatusCode)
}

func TestErrorCollector(t *testing.T) {
	var ec ErrorCollector
	assert.False(t, ec.HasErrors())
	assert.NoError(t, ec.Error())

	first := errors.New("first")
	ec.Add(first)
	ec.Add(nil)
	assert.Len(t, ec.Errors(), 1)
	assert.Equal(t, first, ec.Error())

	ec.AddWithContext(errors.New("second"), "sqlite")
	assert.True(t, ec.HasErrors())
	assert.Equal(t, "multiple errors occurred: [first; sqlite: second]", ec.Error().Error())
}
