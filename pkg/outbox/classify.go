package outbox

import "strings"

// retryableMarkers are error substrings that indicate a transient delivery
// failure worth retrying.
var retryableMarkers = []string{
	"econnreset",
	"econnrefused",
	"etimedout",
	"socket hang up",
	"connection reset",
	"fetch failed",
	"timeout",
	"temporarily unavailable",
	"too many requests",
	"429",
	"bad gateway",
	"service unavailable",
	"gateway timeout",
	"502",
	"503",
	"504",
}

// permanentMarkers override retryable ones: the payload itself is bad and
// no retry will fix it.
var permanentMarkers = []string{
	"invalid",
	"malformed",
	"missing required",
	"not_authed",
	"invalid_auth",
	"channel_not_found",
	"unauthorized",
	"forbidden",
	"404",
}

// classifyRetryable decides whether a delivery error is worth retrying.
// Unrecognized errors default to retryable: at-least-once delivery prefers
// a duplicate over a silent drop.
func classifyRetryable(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range permanentMarkers {
		if strings.Contains(msg, marker) {
			return false
		}
	}
	for _, marker := range retryableMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return true
}
