package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooklinehq/hookline/pkg/config"
	"github.com/hooklinehq/hookline/pkg/plugin"
	testdb "github.com/hooklinehq/hookline/test/database"
)

type tokenHandler struct {
	plugin.Base
	typ string
}

func (h tokenHandler) Type() string { return h.typ }
func (h tokenHandler) ParseWebhook(_ context.Context, _ *plugin.WebhookRequest, _ *plugin.Instance) (*plugin.ParseResult, error) {
	return nil, nil
}
func (h tokenHandler) ValidateConfig(cfg map[string]interface{}) error {
	if tok, _ := cfg["token"].(string); tok == "" {
		return assert.AnError
	}
	return nil
}

func newInstanceService(t *testing.T) *PluginInstanceService {
	db := testdb.NewTestClient(t)
	registry := plugin.NewRegistry(config.TrustSelfHostOpen)
	require.NoError(t, registry.Register(tokenHandler{typ: "tokensvc"}))
	return NewPluginInstanceService(db.Client, registry, nil)
}

func TestInstanceCreateAndGet(t *testing.T) {
	svc := newInstanceService(t)
	ctx := context.Background()

	inst, err := svc.Create(ctx, CreateInstanceInput{
		Type:   "tokensvc",
		Name:   "main",
		Config: map[string]interface{}{"token": "t-1"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, inst.ID)
	assert.True(t, inst.Enabled)

	got, err := svc.Get(ctx, inst.ID)
	require.NoError(t, err)
	assert.Equal(t, "main", got.Name)
	assert.Equal(t, "t-1", got.Config["token"])
}

func TestInstanceCreateValidations(t *testing.T) {
	svc := newInstanceService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInstanceInput{Name: "x"})
	assert.True(t, IsValidationError(err), "missing type")

	_, err = svc.Create(ctx, CreateInstanceInput{Type: "tokensvc"})
	assert.True(t, IsValidationError(err), "missing name")

	_, err = svc.Create(ctx, CreateInstanceInput{Type: "nope", Name: "x"})
	assert.True(t, IsValidationError(err), "unknown type")

	_, err = svc.Create(ctx, CreateInstanceInput{Type: "tokensvc", Name: "x", Config: map[string]interface{}{}})
	assert.True(t, IsValidationError(err), "handler rejected config")
}

func TestInstanceGetNotFound(t *testing.T) {
	svc := newInstanceService(t)
	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInstanceListFiltersByType(t *testing.T) {
	db := testdb.NewTestClient(t)
	registry := plugin.NewRegistry(config.TrustSelfHostOpen)
	require.NoError(t, registry.Register(tokenHandler{typ: "alpha"}))
	require.NoError(t, registry.Register(tokenHandler{typ: "beta"}))
	svc := NewPluginInstanceService(db.Client, registry, nil)
	ctx := context.Background()

	for _, typ := range []string{"alpha", "alpha", "beta"} {
		_, err := svc.Create(ctx, CreateInstanceInput{
			Type: typ, Name: typ, Config: map[string]interface{}{"token": "t"},
		})
		require.NoError(t, err)
	}

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	alphas, err := svc.List(ctx, "alpha")
	require.NoError(t, err)
	assert.Len(t, alphas, 2)
}

func TestInstanceSetEnabled(t *testing.T) {
	svc := newInstanceService(t)
	ctx := context.Background()

	inst, err := svc.Create(ctx, CreateInstanceInput{
		Type: "tokensvc", Name: "main", Config: map[string]interface{}{"token": "t"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.SetEnabled(ctx, inst.ID, false))
	got, err := svc.Get(ctx, inst.ID)
	require.NoError(t, err)
	assert.False(t, got.Enabled)

	assert.ErrorIs(t, svc.SetEnabled(ctx, "missing", true), ErrNotFound)
}
