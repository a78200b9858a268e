package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooklinehq/hookline/ent"
	"github.com/hooklinehq/hookline/ent/pluginevent"
	"github.com/hooklinehq/hookline/ent/workitem"
	testdb "github.com/hooklinehq/hookline/test/database"
)

func seedWorkItem(t *testing.T, client *ent.Client, sessionKey string, status workitem.Status) *ent.WorkItem {
	item, err := client.WorkItem.Create().
		SetID(uuid.New().String()).
		SetPluginInstanceID("inst-1").
		SetSessionKey(sessionKey).
		SetSource("chatsvc").
		SetStatus(status).
		Save(context.Background())
	require.NoError(t, err)
	return item
}

func TestWorkItemGetAndNotFound(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewWorkItemService(db.Client)
	ctx := context.Background()

	item := seedWorkItem(t, db.Client, "chatsvc:C1", workitem.StatusNew)

	got, err := svc.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "chatsvc:C1", got.SessionKey)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWorkItemListFilters(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewWorkItemService(db.Client)
	ctx := context.Background()

	seedWorkItem(t, db.Client, "chatsvc:C1", workitem.StatusNew)
	seedWorkItem(t, db.Client, "chatsvc:C1", workitem.StatusCompleted)
	seedWorkItem(t, db.Client, "chatsvc:C2", workitem.StatusNew)

	all, err := svc.List(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	news, err := svc.List(ctx, ListFilter{Status: "new"})
	require.NoError(t, err)
	assert.Len(t, news, 2)

	lane, err := svc.List(ctx, ListFilter{SessionKey: "chatsvc:C2"})
	require.NoError(t, err)
	assert.Len(t, lane, 1)

	capped, err := svc.List(ctx, ListFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, capped, 2)
}

func TestWorkItemSetStatus(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewWorkItemService(db.Client)
	ctx := context.Background()

	item := seedWorkItem(t, db.Client, "chatsvc:C1", workitem.StatusNew)

	require.NoError(t, svc.SetStatus(ctx, item.ID, workitem.StatusInProgress))
	got, err := svc.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, workitem.StatusInProgress, got.Status)

	assert.ErrorIs(t, svc.SetStatus(ctx, "missing", workitem.StatusCompleted), ErrNotFound)
}

func TestWorkItemEventsOrderedOldestFirst(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewWorkItemService(db.Client)
	ctx := context.Background()

	item := seedWorkItem(t, db.Client, "chatsvc:C1", workitem.StatusNew)
	for i := 0; i < 3; i++ {
		err := db.Client.PluginEvent.Create().
			SetID(uuid.New().String()).
			SetPluginID("inst-1").
			SetKind(pluginevent.KindWebhookIngress).
			SetStatus(fmt.Sprintf("step-%d", i)).
			SetWorkItemID(item.ID).
			Exec(ctx)
		require.NoError(t, err)
	}

	rows, err := svc.Events(ctx, item.ID)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "step-0", rows[0].Status)
	assert.Equal(t, "step-2", rows[2].Status)
}
