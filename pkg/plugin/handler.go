// Package plugin defines the handler contract external-system integrations
// implement, the registry they load into, and just-in-time secret decoding
// for instance configs.
package plugin

import (
	"context"
	"net/http"
	"net/url"

	"github.com/hooklinehq/hookline/pkg/hooks"
)

// Category classifies a handler's external system.
type Category string

// Handler categories.
const (
	CategoryMessaging    Category = "messaging"
	CategoryCode         Category = "code"
	CategoryProductivity Category = "productivity"
)

// WebhookRequest is the transport-agnostic view of an inbound webhook.
type WebhookRequest struct {
	Method  string
	Headers http.Header
	Query   url.Values
	Body    []byte
}

// Actor identifies who caused the inbound event.
type Actor struct {
	Kind   string // "user", "bot", "system"
	Handle string
}

// WorkItemDraft is the handler's proposal for the work item to persist.
type WorkItemDraft struct {
	SessionKey string
	Source     string
	SourceRef  string
	Title      string
	AgentID    string
	Text       string // message text routed to the session queue
	SenderName string
	Payload    map[string]interface{}
}

// InlineResponse preempts the standard webhook response. Used by platforms
// that demand a synchronous acknowledgment body (URL verification etc).
type InlineResponse struct {
	Status int
	Body   map[string]interface{}
}

// ParseResult is what a handler extracted from one webhook delivery.
type ParseResult struct {
	// ShouldProcess is false when the delivery is valid but not actionable
	// (bot echo, unsupported event type, ...). SkipReason explains why.
	ShouldProcess bool
	SkipReason    string

	WorkItem *WorkItemDraft

	// IdempotencyKeys are dedup aliases in decreasing specificity.
	// The first is the primary ingress event id.
	IdempotencyKeys []string
	IngressEventID  string

	// ResponseContext is carried to the run and back to PostResponse so the
	// reply lands on the right thread/channel.
	ResponseContext map[string]interface{}

	WebhookResponse *InlineResponse
	Actor           *Actor
}

// PostResult is the outcome of delivering one effect.
type PostResult struct {
	// ProviderRef is the provider-side id of the created artifact
	// (message ts, comment id, ...). Required on success.
	ProviderRef string
	Status      string
}

// Instance is the decrypted runtime view of a configured plugin instance.
type Instance struct {
	ID      string
	Type    string
	Name    string
	Enabled bool
	Config  map[string]interface{}
}

// Handler is the contract a plugin type implements. Optional capabilities
// (hooks, sensitive fields) live on separate interfaces; embed Base to get
// explicit no-ops for everything not implemented.
type Handler interface {
	// Type returns the registry key, e.g. "chatsvc".
	Type() string

	Category() Category

	// ValidateConfig rejects malformed instance configuration.
	ValidateConfig(config map[string]interface{}) error

	// ParseWebhook turns one delivery into a ParseResult. Returning an
	// error yields a 500 parse_error ingress outcome.
	ParseWebhook(ctx context.Context, req *WebhookRequest, inst *Instance) (*ParseResult, error)

	// PostResponse delivers one effect payload on a channel.
	PostResponse(ctx context.Context, inst *Instance, channel string, payload map[string]interface{}) (*PostResult, error)
}

// HookProvider is implemented by handlers that attach handlers to the hook
// pipeline. Registrations are collected when the handler is registered and
// removed again on unload.
type HookProvider interface {
	Hooks() []hooks.Registration
}

// SensitiveFielder is implemented by handlers whose instance config carries
// encrypted values. Named fields are decoded just-in-time and never logged.
type SensitiveFielder interface {
	SensitiveFields() []string
}

// Builtin marks handlers shipped with the binary; they load under every
// trust mode.
type Builtin interface {
	Builtin() bool
}

// Base provides explicit no-op defaults for optional Handler behavior.
// Handlers embed it so absent capabilities are deliberate, not missing
// methods.
type Base struct{}

// Category returns the productivity category; override per handler.
func (Base) Category() Category { return CategoryProductivity }

// ValidateConfig accepts any config.
func (Base) ValidateConfig(map[string]interface{}) error { return nil }

// PostResponse reports that the handler produces no effects.
func (Base) PostResponse(context.Context, *Instance, string, map[string]interface{}) (*PostResult, error) {
	return nil, ErrNoEffects
}
