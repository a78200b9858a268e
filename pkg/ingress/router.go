// Package ingress turns inbound webhooks into work items under the
// idempotency contract: parse via the plugin handler, dedup against
// stored keys, persist transactionally, then hand off to the session
// queue and the routine event inbox.
package ingress

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/hooklinehq/hookline/ent"
	"github.com/hooklinehq/hookline/ent/idempotencykey"
	"github.com/hooklinehq/hookline/pkg/events"
	"github.com/hooklinehq/hookline/pkg/hooks"
	"github.com/hooklinehq/hookline/pkg/plugin"
	"github.com/hooklinehq/hookline/pkg/routine"
	"github.com/hooklinehq/hookline/pkg/sessionqueue"
)

// Result is the HTTP-shaped outcome of one webhook delivery.
type Result struct {
	Status     int
	Body       map[string]interface{}
	WorkItemID string
}

// Router routes one webhook delivery end to end.
type Router struct {
	client   *ent.Client
	registry *plugin.Registry
	decoder  plugin.SecretDecoder
	hooks    *hooks.Dispatcher
	recorder *events.Recorder
	queue    *sessionqueue.Manager
	routines *routine.Service
	logger   *slog.Logger
}

// NewRouter creates an ingress Router. routines may be nil in tests that
// do not exercise the evaluator.
func NewRouter(client *ent.Client, registry *plugin.Registry, decoder plugin.SecretDecoder,
	dispatcher *hooks.Dispatcher, recorder *events.Recorder, queue *sessionqueue.Manager,
	routines *routine.Service) *Router {
	return &Router{
		client:   client,
		registry: registry,
		decoder:  decoder,
		hooks:    dispatcher,
		recorder: recorder,
		queue:    queue,
		routines: routines,
		logger:   slog.With("component", "ingress"),
	}
}

// RouteWebhook implements the ingress contract: exactly one
// webhook_ingress event per delivery, closed reason vocabulary, and the
// status-code mapping 201 created / 200 duplicate-or-ignored / 400 / 500.
func (r *Router) RouteWebhook(ctx context.Context, pluginType, instanceID string, req *plugin.WebhookRequest) *Result {
	log := r.logger.With("plugin_type", pluginType, "plugin_instance_id", instanceID)

	handler, err := r.registry.Get(pluginType)
	if err != nil {
		r.ingressEvent(instanceID, events.IngressRejected, events.RejectUnknownPluginType, "")
		return errorResult(http.StatusBadRequest, events.RejectUnknownPluginType)
	}

	row, err := r.client.PluginInstance.Get(ctx, instanceID)
	if err != nil {
		if ent.IsNotFound(err) {
			r.ingressEvent(instanceID, events.IngressRejected, events.RejectUnknownPluginType, "")
			return errorResult(http.StatusNotFound, "unknown plugin instance")
		}
		log.Error("Failed to load plugin instance", "error", err)
		return errorResult(http.StatusInternalServerError, "internal error")
	}
	if row.Type != pluginType {
		r.ingressEvent(instanceID, events.IngressRejected, events.RejectPluginTypeMismatch, "")
		return errorResult(http.StatusBadRequest, events.RejectPluginTypeMismatch)
	}
	if !row.Enabled {
		r.ingressEvent(instanceID, events.IngressSkipped, events.SkipInboundPolicyFiltered, "")
		return &Result{Status: http.StatusOK, Body: map[string]interface{}{"ignored": true}}
	}

	inst, err := plugin.DecodeInstance(row.ID, row.Type, row.Name, row.Enabled, row.Config, handler, r.decoder)
	if err != nil {
		log.Error("Failed to decode instance config", "error", err)
		r.ingressEvent(instanceID, events.IngressRejected, events.RejectParseError, "")
		return errorResult(http.StatusInternalServerError, events.RejectParseError)
	}

	parsed, err := r.parse(ctx, handler, req, inst)
	if err != nil {
		log.Error("Webhook parse failed", "error", err)
		r.ingressEvent(instanceID, events.IngressRejected, events.RejectParseError, "")
		return errorResult(http.StatusInternalServerError, events.RejectParseError)
	}

	res := r.route(ctx, inst, parsed, log)

	// Platforms like chat URL verification demand an exact synchronous body.
	if parsed.WebhookResponse != nil {
		res.Status = parsed.WebhookResponse.Status
		res.Body = parsed.WebhookResponse.Body
	}
	return res
}

// parse invokes the handler with a panic guard: a panicking parser is a
// parse error, not a crashed router.
func (r *Router) parse(ctx context.Context, handler plugin.Handler, req *plugin.WebhookRequest, inst *plugin.Instance) (result *plugin.ParseResult, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			result = nil
			err = fmt.Errorf("webhook parser panicked: %v", rec)
		}
	}()
	result, err = handler.ParseWebhook(ctx, req, inst)
	if err == nil && result == nil {
		err = fmt.Errorf("webhook parser returned no result")
	}
	return result, err
}

// route applies the idempotency algorithm to a successfully parsed
// delivery.
func (r *Router) route(ctx context.Context, inst *plugin.Instance, parsed *plugin.ParseResult, log *slog.Logger) *Result {
	if !parsed.ShouldProcess {
		reason := parsed.SkipReason
		if reason == "" {
			reason = events.SkipShouldProcessFalse
		}
		r.ingressEvent(inst.ID, events.IngressSkipped, reason, "")
		return &Result{Status: http.StatusOK, Body: map[string]interface{}{"ignored": true, "reason": reason}}
	}
	if parsed.WorkItem == nil {
		r.ingressEvent(inst.ID, events.IngressSkipped, events.SkipNoWorkItem, "")
		return &Result{Status: http.StatusOK, Body: map[string]interface{}{"ignored": true, "reason": events.SkipNoWorkItem}}
	}

	keys := normalizeKeys(parsed.IdempotencyKeys)

	if len(keys) > 0 {
		existing, err := r.client.IdempotencyKey.Query().
			Where(idempotencykey.KeyIn(keys...)).
			First(ctx)
		if err != nil && !ent.IsNotFound(err) {
			log.Error("Idempotency lookup failed", "error", err)
			return errorResult(http.StatusInternalServerError, "internal error")
		}
		if existing != nil {
			r.recorder.RecordAsync(events.Entry{
				PluginID:   inst.ID,
				Kind:       "webhook_ingress",
				Status:     events.IngressDuplicate,
				WorkItemID: existing.WorkItemID,
				Detail:     map[string]interface{}{"matchedKey": existing.Key},
			})
			return &Result{
				Status:     http.StatusOK,
				Body:       map[string]interface{}{"duplicate": true, "workItemId": existing.WorkItemID},
				WorkItemID: existing.WorkItemID,
			}
		}
	}

	draft := parsed.WorkItem
	payload := draft.Payload

	if r.hooks != nil {
		outcome := r.hooks.Dispatch(ctx, &hooks.Invocation{
			Hook:    hooks.WorkItemPreCreate,
			AgentID: draft.AgentID,
			Data:    payload,
		})
		if outcome.Blocked {
			r.ingressEvent(inst.ID, events.IngressSkipped, events.SkipBlockedByPluginHook, "")
			return &Result{Status: http.StatusOK, Body: map[string]interface{}{"ignored": true, "reason": events.SkipBlockedByPluginHook}}
		}
		if outcome.Data != nil {
			payload = outcome.Data
		}
	}

	workItemID, err := r.persist(ctx, inst.ID, draft, payload, keys)
	if err != nil {
		log.Error("Failed to persist work item", "error", err)
		return errorResult(http.StatusInternalServerError, "internal error")
	}
	log.Info("Work item created",
		"work_item_id", workItemID, "session_key", draft.SessionKey, "source", draft.Source)

	r.ingressEvent(inst.ID, events.IngressAccepted, "", workItemID)

	if r.hooks != nil {
		go func() {
			hctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			r.hooks.Dispatch(hctx, &hooks.Invocation{
				Hook:       hooks.WorkItemPostCreate,
				WorkItemID: workItemID,
				AgentID:    draft.AgentID,
				Data:       payload,
			})
		}()
	}

	r.handoff(ctx, inst, parsed, workItemID, log)

	return &Result{
		Status:     http.StatusCreated,
		Body:       map[string]interface{}{"created": true, "workItemId": workItemID},
		WorkItemID: workItemID,
	}
}

// persist inserts the work item and its idempotency keys in one
// transaction. Key conflicts are ignored: the racing delivery that lost
// still points at an authoritative row.
func (r *Router) persist(ctx context.Context, instanceID string, draft *plugin.WorkItemDraft, payload map[string]interface{}, keys []string) (string, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to start ingress transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	workItemID := uuid.New().String()
	builder := tx.WorkItem.Create().
		SetID(workItemID).
		SetPluginInstanceID(instanceID).
		SetSource(draft.Source)
	if draft.SessionKey != "" {
		builder.SetSessionKey(draft.SessionKey)
	}
	if draft.SourceRef != "" {
		builder.SetSourceRef(draft.SourceRef)
	}
	if draft.Title != "" {
		builder.SetTitle(draft.Title)
	}
	if payload != nil {
		builder.SetPayload(payload)
	}
	if err := builder.Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to create work item: %w", err)
	}

	for _, key := range keys {
		err := tx.IdempotencyKey.Create().
			SetID(uuid.New().String()).
			SetKey(key).
			SetWorkItemID(workItemID).
			OnConflict(sql.ConflictColumns(idempotencykey.FieldKey)).
			Ignore().
			Exec(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to insert idempotency key: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit ingress transaction: %w", err)
	}
	return workItemID, nil
}

// handoff feeds the accepted work item to the routine event inbox and
// the session queue. Both are post-commit and best-effort: the work item
// is durable either way.
func (r *Router) handoff(ctx context.Context, inst *plugin.Instance, parsed *plugin.ParseResult, workItemID string, log *slog.Logger) {
	draft := parsed.WorkItem

	if r.routines != nil {
		env := buildEnvelope(inst, parsed, workItemID)
		if err := r.routines.EnqueueEvent(ctx, env, workItemID); err != nil {
			log.Warn("Failed to enqueue routine event", "work_item_id", workItemID, "error", err)
		}
	}

	if r.queue != nil && draft.SessionKey != "" && draft.Text != "" {
		agentID := draft.AgentID
		if agentID == "" {
			agentID = "default"
		}
		err := r.queue.Enqueue(ctx, draft.SessionKey, agentID, sessionqueue.Message{
			WorkItemID:      workItemID,
			Text:            draft.Text,
			SenderName:      draft.SenderName,
			ResponseContext: parsed.ResponseContext,
			ArrivedAt:       time.Now(),
		})
		if err != nil {
			log.Error("Failed to enqueue session message", "work_item_id", workItemID, "error", err)
		}
	}
}

// buildEnvelope projects an accepted delivery into the flat view routine
// rules evaluate against.
func buildEnvelope(inst *plugin.Instance, parsed *plugin.ParseResult, workItemID string) *routine.Envelope {
	draft := parsed.WorkItem
	env := &routine.Envelope{
		EventID:          parsed.IngressEventID,
		Source:           draft.Source,
		SourceRef:        draft.SourceRef,
		SessionKey:       draft.SessionKey,
		PluginInstanceID: inst.ID,
		Status:           "new",
		Title:            draft.Title,
		CreatedAt:        time.Now().UTC().Format(time.RFC3339),
	}
	if env.EventID == "" {
		env.EventID = workItemID
	}
	if et, ok := draft.Payload["event_type"].(string); ok {
		env.EventType = et
	}
	if parsed.Actor != nil {
		env.ActorKind = parsed.Actor.Kind
		env.ActorHandle = parsed.Actor.Handle
	}
	return env
}

// normalizeKeys trims, drops empties and dedups preserving order.
func normalizeKeys(keys []string) []string {
	seen := make(map[string]bool, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// ingressEvent records the single webhook_ingress receipt for one
// delivery outcome.
func (r *Router) ingressEvent(instanceID, status, reason, workItemID string) {
	entry := events.Entry{
		PluginID:   instanceID,
		Kind:       "webhook_ingress",
		Status:     status,
		WorkItemID: workItemID,
	}
	if reason != "" {
		entry.Detail = map[string]interface{}{"reason": reason}
	}
	r.recorder.RecordAsync(entry)
}

func errorResult(status int, message string) *Result {
	return &Result{Status: status, Body: map[string]interface{}{"error": message}}
}
