package outbox

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyRetryableTransientErrors(t *testing.T) {
	tests := []string{
		"read tcp: connection reset by peer",
		"dial tcp: ECONNREFUSED",
		"Post \"https://slack.com/api/chat.postMessage\": context deadline exceeded (timeout)",
		"slack rate limited: too many requests",
		"upstream returned 502 Bad Gateway",
		"upstream returned 503 Service Unavailable",
		"gateway timeout",
	}
	for _, msg := range tests {
		assert.True(t, classifyRetryable(errors.New(msg)), "expected retryable: %s", msg)
	}
}

func TestClassifyRetryablePermanentErrors(t *testing.T) {
	tests := []string{
		"slack API error: invalid_auth",
		"slack API error: channel_not_found",
		"github: 404 Not Found",
		"request rejected: missing required field 'channel'",
		"malformed payload",
		"401 Unauthorized",
		"403 Forbidden",
	}
	for _, msg := range tests {
		assert.False(t, classifyRetryable(errors.New(msg)), "expected permanent: %s", msg)
	}
}

func TestClassifyRetryablePermanentWinsOverTransient(t *testing.T) {
	// A permanent marker overrides a transient one in the same message.
	err := fmt.Errorf("timeout while validating: invalid_auth")
	assert.False(t, classifyRetryable(err))
}

func TestClassifyRetryableDefaults(t *testing.T) {
	assert.False(t, classifyRetryable(nil))

	// Unrecognized errors default to retryable
	assert.True(t, classifyRetryable(errors.New("something odd happened")))
}
