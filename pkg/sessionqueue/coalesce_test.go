package sessionqueue

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCoalesceEmpty(t *testing.T) {
	text, rc := coalesce(nil)
	assert.Empty(t, text)
	assert.Nil(t, rc)
}

func TestCoalesceSingleMessagePassthrough(t *testing.T) {
	msgs := []Message{{
		Text:            "restart the deploy",
		SenderName:      "alice",
		ResponseContext: map[string]interface{}{"channel": "C1"},
		ArrivedAt:       time.Date(2026, 8, 26, 9, 30, 0, 0, time.UTC),
	}}

	text, rc := coalesce(msgs)
	assert.Equal(t, "restart the deploy", text)
	assert.Equal(t, map[string]interface{}{"channel": "C1"}, rc)
}

func TestCoalesceMultipleMessages(t *testing.T) {
	base := time.Date(2026, 8, 26, 9, 30, 0, 0, time.UTC)
	msgs := []Message{
		{Text: "first", SenderName: "alice", ArrivedAt: base,
			ResponseContext: map[string]interface{}{"thread_ts": "1"}},
		{Text: "second", SenderName: "bob", ArrivedAt: base.Add(5 * time.Second),
			ResponseContext: map[string]interface{}{"thread_ts": "2"}},
		{Text: "third", SenderName: "", ArrivedAt: base.Add(9 * time.Second),
			ResponseContext: map[string]interface{}{"thread_ts": "3"}},
	}

	text, rc := coalesce(msgs)

	expected := "[3 messages arrived while you were working]\n" +
		"[09:30:00 - alice] first\n" +
		"[09:30:05 - bob] second\n" +
		"[09:30:09 - unknown] third"
	assert.Equal(t, expected, text)

	// Response context follows the last included message
	assert.Equal(t, map[string]interface{}{"thread_ts": "3"}, rc)
}

func TestCoalescePreservesArrivalOrder(t *testing.T) {
	base := time.Now()
	var msgs []Message
	for i := 0; i < 5; i++ {
		msgs = append(msgs, Message{
			Text:       fmt.Sprintf("msg-%d", i),
			SenderName: "s",
			ArrivedAt:  base.Add(time.Duration(i) * time.Second),
		})
	}

	text, _ := coalesce(msgs)
	lastIdx := -1
	for i := 0; i < 5; i++ {
		idx := strings.Index(text, fmt.Sprintf("msg-%d", i))
		assert.Greater(t, idx, lastIdx, "messages must appear in arrival order")
		lastIdx = idx
	}
}
