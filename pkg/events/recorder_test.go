package events

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooklinehq/hookline/ent/pluginevent"
	testdb "github.com/hooklinehq/hookline/test/database"
	"github.com/hooklinehq/hookline/test/util"
)

func TestRecordPersistsEvent(t *testing.T) {
	db := testdb.NewTestClient(t)
	r := NewRecorder(db.Client, db.DB())

	row, err := r.Record(context.Background(), Entry{
		PluginID:      "chatsvc",
		PluginVersion: "1.2.0",
		Kind:          string(pluginevent.KindWebhookIngress),
		Status:        IngressSkipped,
		WorkItemID:    "wi-1",
		Detail:        map[string]interface{}{"reason": SkipShouldProcessFalse},
	})
	require.NoError(t, err)

	got, err := db.Client.PluginEvent.Get(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Equal(t, "chatsvc", got.PluginID)
	assert.Equal(t, "1.2.0", got.PluginVersion)
	assert.Equal(t, pluginevent.KindWebhookIngress, got.Kind)
	assert.Equal(t, IngressSkipped, got.Status)
	assert.Equal(t, "wi-1", got.WorkItemID)
	assert.Equal(t, SkipShouldProcessFalse, got.Detail["reason"])
}

func TestRecordAsyncEventuallyPersists(t *testing.T) {
	db := testdb.NewTestClient(t)
	r := NewRecorder(db.Client, db.DB())

	r.RecordAsync(Entry{
		PluginID: "chatsvc",
		Kind:     string(pluginevent.KindHook),
		Status:   HookOK,
	})

	require.Eventually(t, func() bool {
		n, err := db.Client.PluginEvent.Query().
			Where(pluginevent.StatusEQ(HookOK)).
			Count(context.Background())
		return err == nil && n == 1
	}, 5*time.Second, 10*time.Millisecond)
}

func TestRecordBroadcastsOverNotify(t *testing.T) {
	db := testdb.NewTestClient(t)
	r := NewRecorder(db.Client, db.DB())
	ctx := context.Background()

	listener := NewNotifyListener(util.GetBaseConnectionString(t))
	require.NoError(t, listener.Start(ctx))
	t.Cleanup(func() { listener.Stop(ctx) })

	var mu sync.Mutex
	var payloads [][]byte
	unsubscribe := listener.Subscribe(func(payload []byte) {
		mu.Lock()
		payloads = append(payloads, append([]byte(nil), payload...))
		mu.Unlock()
	})
	defer unsubscribe()

	row, err := r.Record(ctx, Entry{
		PluginID: "repohook",
		Kind:     string(pluginevent.KindWebhookIngress),
		Status:   IngressAccepted,
	})
	require.NoError(t, err)

	// The channel is database-wide, so match on our event ID rather than
	// asserting we were the only publisher.
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		for _, p := range payloads {
			var msg map[string]interface{}
			if json.Unmarshal(p, &msg) != nil {
				continue
			}
			if msg["id"] == row.ID {
				return msg["plugin_id"] == "repohook" && msg["status"] == IngressAccepted
			}
		}
		return false
	}, 5*time.Second, 10*time.Millisecond, "notification for the recorded event")
}

func TestSubscribeUnsubscribe(t *testing.T) {
	l := NewNotifyListener("unused")

	var got [][]byte
	unsubscribe := l.Subscribe(func(p []byte) { got = append(got, p) })

	l.broadcast([]byte(`{"id":"e1"}`))
	require.Len(t, got, 1)

	unsubscribe()
	l.broadcast([]byte(`{"id":"e2"}`))
	assert.Len(t, got, 1, "unsubscribed callbacks receive nothing")
}
