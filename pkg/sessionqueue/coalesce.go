package sessionqueue

import (
	"fmt"
	"strings"
	"time"
)

// Message is one inbound message routed onto a lane.
type Message struct {
	WorkItemID      string
	Text            string
	SenderName      string
	ResponseContext map[string]interface{}
	ArrivedAt       time.Time
}

// coalesce folds buffered messages into one run input. A single message
// passes through verbatim; multiple get a header plus one timestamped line
// each, in arrival order. The run's response context is that of the last
// included message.
func coalesce(msgs []Message) (text string, responseContext map[string]interface{}) {
	if len(msgs) == 0 {
		return "", nil
	}
	responseContext = msgs[len(msgs)-1].ResponseContext
	if len(msgs) == 1 {
		return msgs[0].Text, responseContext
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%d messages arrived while you were working]\n", len(msgs))
	for i, m := range msgs {
		sender := m.SenderName
		if sender == "" {
			sender = "unknown"
		}
		fmt.Fprintf(&b, "[%s - %s] %s", m.ArrivedAt.Format("15:04:05"), sender, m.Text)
		if i < len(msgs)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String(), responseContext
}
