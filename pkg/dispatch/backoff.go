package dispatch

import (
	"math/rand/v2"
	"time"
)

// retryDelay computes the backoff before retry number attempt (1-based):
// base doubling per attempt, capped, with up to 50% random spread so
// retries from a burst of failures do not land together.
func retryDelay(attempt int, base, cap time.Duration) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	if base <= 0 {
		base = time.Second
	}
	if cap <= 0 {
		cap = 60 * time.Second
	}

	d := base
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= cap {
			d = cap
			break
		}
	}

	jitter := time.Duration(rand.Int64N(int64(d)/2 + 1))
	d += jitter
	if d > cap {
		d = cap
	}
	return d
}
