package plugin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooklinehq/hookline/pkg/config"
	"github.com/hooklinehq/hookline/pkg/hooks"
)

type stubHandler struct {
	Base
	typ     string
	builtin bool
}

func (h stubHandler) Type() string  { return h.typ }
func (h stubHandler) Builtin() bool { return h.builtin }
func (h stubHandler) ParseWebhook(_ context.Context, _ *WebhookRequest, _ *Instance) (*ParseResult, error) {
	return nil, nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry(config.TrustSelfHostOpen)
	require.NoError(t, r.Register(stubHandler{typ: "chatsvc", builtin: true}))

	h, err := r.Get("chatsvc")
	require.NoError(t, err)
	assert.Equal(t, "chatsvc", h.Type())
}

func TestRegistryUnknownType(t *testing.T) {
	r := NewRegistry(config.TrustSelfHostOpen)
	_, err := r.Get("nope")
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestRegistryRejectsDuplicateType(t *testing.T) {
	r := NewRegistry(config.TrustSelfHostOpen)
	require.NoError(t, r.Register(stubHandler{typ: "chatsvc"}))
	assert.Error(t, r.Register(stubHandler{typ: "chatsvc"}))
}

func TestRegistryRejectsNilAndEmptyType(t *testing.T) {
	r := NewRegistry(config.TrustSelfHostOpen)
	assert.Error(t, r.Register(nil))
	assert.Error(t, r.Register(stubHandler{typ: ""}))
}

func TestRegistrySaaSLockedRefusesThirdParty(t *testing.T) {
	r := NewRegistry(config.TrustSaaSLocked)

	assert.Error(t, r.Register(stubHandler{typ: "thirdparty", builtin: false}))
	assert.NoError(t, r.Register(stubHandler{typ: "chatsvc", builtin: true}))
}

func TestRegistrySelfHostOpenAllowsThirdParty(t *testing.T) {
	r := NewRegistry(config.TrustSelfHostOpen)
	assert.NoError(t, r.Register(stubHandler{typ: "thirdparty", builtin: false}))
}

type hookedHandler struct {
	stubHandler
}

func (h hookedHandler) Hooks() []hooks.Registration {
	return []hooks.Registration{{
		PluginID: h.typ,
		Hook:     hooks.ResponsePreDeliver,
		Handler: func(context.Context, *hooks.Invocation) (*hooks.Result, error) {
			return nil, nil
		},
	}}
}

func TestHookProviderRegistrationsLoad(t *testing.T) {
	h := hookedHandler{stubHandler{typ: "hooked"}}

	hp, ok := Handler(h).(HookProvider)
	require.True(t, ok, "handlers declaring Hooks() expose them through HookProvider")

	hookReg := hooks.NewRegistry()
	for _, reg := range hp.Hooks() {
		require.NoError(t, hookReg.Register(reg))
	}
	assert.Len(t, hookReg.Handlers(hooks.ResponsePreDeliver), 1)
}

func TestRegistryTypesSorted(t *testing.T) {
	r := NewRegistry(config.TrustSelfHostOpen)
	require.NoError(t, r.Register(stubHandler{typ: "repohook"}))
	require.NoError(t, r.Register(stubHandler{typ: "chatsvc"}))

	assert.Equal(t, []string{"chatsvc", "repohook"}, r.Types())
}
