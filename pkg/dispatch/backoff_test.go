package dispatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetryDelayGrowsWithAttempts(t *testing.T) {
	base := 1 * time.Second
	cap := 60 * time.Second

	// Jitter adds up to 50%, so check against the deterministic floor.
	for attempt, floor := range map[int]time.Duration{
		1: 1 * time.Second,
		2: 2 * time.Second,
		3: 4 * time.Second,
		4: 8 * time.Second,
	} {
		d := retryDelay(attempt, base, cap)
		assert.GreaterOrEqual(t, d, floor, "attempt %d", attempt)
		assert.LessOrEqual(t, d, floor+floor/2, "attempt %d", attempt)
	}
}

func TestRetryDelayCapped(t *testing.T) {
	cap := 30 * time.Second
	for i := 0; i < 50; i++ {
		d := retryDelay(20, time.Second, cap)
		assert.LessOrEqual(t, d, cap)
		assert.GreaterOrEqual(t, d, cap*3/4)
	}
}

func TestRetryDelayDefendsBadInputs(t *testing.T) {
	// Zero/negative attempt treated as the first attempt
	d := retryDelay(0, time.Second, time.Minute)
	assert.GreaterOrEqual(t, d, time.Second)
	assert.LessOrEqual(t, d, time.Second+500*time.Millisecond)

	// Zero base and cap fall back to defaults without panicking
	d = retryDelay(1, 0, 0)
	assert.Greater(t, d, time.Duration(0))
	assert.LessOrEqual(t, d, 60*time.Second)
}
