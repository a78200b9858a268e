// Package chatsvc is the builtin chat-workspace plugin: it parses
// Events API webhooks into work items and posts agent replies back as
// (threaded) channel messages.
package chatsvc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	goslack "github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"

	"github.com/hooklinehq/hookline/pkg/plugin"
)

// PluginType is the registry key.
const PluginType = "chatsvc"

// Handler implements the chat plugin.
type Handler struct {
	plugin.Base

	// apiURL overrides the chat API endpoint in tests.
	apiURL string
}

// New creates the chatsvc handler.
func New() *Handler { return &Handler{} }

// NewWithAPIURL creates a handler targeting a mock API server.
func NewWithAPIURL(apiURL string) *Handler { return &Handler{apiURL: apiURL} }

// Type returns the registry key.
func (h *Handler) Type() string { return PluginType }

// Category classifies the plugin.
func (h *Handler) Category() plugin.Category { return plugin.CategoryMessaging }

// Builtin marks the handler as shipped with the binary.
func (h *Handler) Builtin() bool { return true }

// SensitiveFields names the encrypted config values.
func (h *Handler) SensitiveFields() []string { return []string{"bot_token"} }

// ValidateConfig requires a bot token.
func (h *Handler) ValidateConfig(config map[string]interface{}) error {
	token, _ := config["bot_token"].(string)
	if token == "" {
		return fmt.Errorf("config field 'bot_token' is required")
	}
	return nil
}

// ParseWebhook handles Events API deliveries: URL verification gets its
// synchronous challenge echo, message events become work items, and bot
// echoes are skipped so the agent never talks to itself.
func (h *Handler) ParseWebhook(ctx context.Context, req *plugin.WebhookRequest, inst *plugin.Instance) (*plugin.ParseResult, error) {
	event, err := slackevents.ParseEvent(json.RawMessage(req.Body), slackevents.OptionNoVerifyToken())
	if err != nil {
		return nil, fmt.Errorf("failed to parse events payload: %w", err)
	}

	switch event.Type {
	case slackevents.URLVerification:
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(req.Body, &challenge); err != nil {
			return nil, fmt.Errorf("failed to parse url_verification challenge: %w", err)
		}
		return &plugin.ParseResult{
			ShouldProcess: false,
			SkipReason:    "url_verification",
			WebhookResponse: &plugin.InlineResponse{
				Status: http.StatusOK,
				Body:   map[string]interface{}{"challenge": challenge.Challenge},
			},
		}, nil

	case slackevents.CallbackEvent:
		return h.parseCallback(&event, req.Body, inst)
	}

	return &plugin.ParseResult{ShouldProcess: false, SkipReason: "unsupported_event_type"}, nil
}

func (h *Handler) parseCallback(event *slackevents.EventsAPIEvent, body []byte, inst *plugin.Instance) (*plugin.ParseResult, error) {
	msg, ok := event.InnerEvent.Data.(*slackevents.MessageEvent)
	if !ok {
		return &plugin.ParseResult{ShouldProcess: false, SkipReason: "unsupported_event_type"}, nil
	}

	// Echoes of our own postings and edits come back through the same
	// subscription.
	if msg.BotID != "" || msg.SubType != "" {
		return &plugin.ParseResult{ShouldProcess: false, SkipReason: "bot_echo"}, nil
	}
	if msg.Text == "" {
		return &plugin.ParseResult{ShouldProcess: false, SkipReason: "empty_message"}, nil
	}

	// Outer envelope event_id is the platform's own delivery id.
	var outer struct {
		EventID string `json:"event_id"`
	}
	_ = json.Unmarshal(body, &outer)

	threadTS := msg.ThreadTimeStamp
	if threadTS == "" {
		threadTS = msg.TimeStamp
	}
	sessionKey := fmt.Sprintf("%s:%s", PluginType, msg.Channel)

	keys := []string{
		fmt.Sprintf("%s:%s:%s:%s", PluginType, inst.ID, msg.Channel, msg.TimeStamp),
	}
	if outer.EventID != "" {
		keys = append(keys, fmt.Sprintf("%s:event:%s", PluginType, outer.EventID))
	}

	return &plugin.ParseResult{
		ShouldProcess: true,
		WorkItem: &plugin.WorkItemDraft{
			SessionKey: sessionKey,
			Source:     PluginType,
			SourceRef:  msg.TimeStamp,
			Title:      truncate(msg.Text, 120),
			Text:       msg.Text,
			SenderName: msg.User,
			Payload: map[string]interface{}{
				"event_type": "message",
				"channel":    msg.Channel,
				"ts":         msg.TimeStamp,
				"thread_ts":  threadTS,
				"user":       msg.User,
			},
		},
		IdempotencyKeys: keys,
		IngressEventID:  keys[0],
		ResponseContext: map[string]interface{}{
			"channel":   msg.Channel,
			"thread_ts": threadTS,
		},
		Actor: &plugin.Actor{Kind: "user", Handle: msg.User},
	}, nil
}

// PostResponse posts the effect text as a channel message, threaded when
// the response context carries a thread_ts. The returned ts is the
// provider reference.
func (h *Handler) PostResponse(ctx context.Context, inst *plugin.Instance, channel string, payload map[string]interface{}) (*plugin.PostResult, error) {
	text, _ := payload["text"].(string)
	if text == "" {
		return nil, fmt.Errorf("effect payload has no text")
	}

	channelID, threadTS := destination(payload)
	if channelID == "" {
		return nil, fmt.Errorf("effect payload has no channel")
	}

	opts := []goslack.MsgOption{goslack.MsgOptionText(text, false)}
	if threadTS != "" {
		opts = append(opts, goslack.MsgOptionTS(threadTS))
	}

	_, ts, err := h.api(inst).PostMessageContext(ctx, channelID, opts...)
	if err != nil {
		return nil, fmt.Errorf("chat.postMessage failed: %w", err)
	}
	return &plugin.PostResult{ProviderRef: ts, Status: "posted"}, nil
}

// ReconcileEffect settles an unknown-state send by scanning recent
// channel history for the exact text. A hit means the original send went
// through and its ts becomes the provider reference.
func (h *Handler) ReconcileEffect(ctx context.Context, inst *plugin.Instance, channel string, payload map[string]interface{}) (string, bool, error) {
	text, _ := payload["text"].(string)
	channelID, _ := destination(payload)
	if text == "" || channelID == "" {
		return "", false, nil
	}

	history, err := h.api(inst).GetConversationHistoryContext(ctx, &goslack.GetConversationHistoryParameters{
		ChannelID: channelID,
		Oldest:    fmt.Sprintf("%d", time.Now().Add(-24*time.Hour).Unix()),
		Limit:     50,
	})
	if err != nil {
		return "", false, fmt.Errorf("conversations.history failed: %w", err)
	}

	for _, msg := range history.Messages {
		if strings.TrimSpace(msg.Text) == strings.TrimSpace(text) {
			return msg.Timestamp, true, nil
		}
	}
	return "", false, nil
}

func (h *Handler) api(inst *plugin.Instance) *goslack.Client {
	token, _ := inst.Config["bot_token"].(string)
	if h.apiURL != "" {
		return goslack.New(token, goslack.OptionAPIURL(h.apiURL))
	}
	return goslack.New(token)
}

// destination resolves the channel and thread from the effect payload,
// falling back to the run's response context.
func destination(payload map[string]interface{}) (channelID, threadTS string) {
	channelID, _ = payload["channel"].(string)
	threadTS, _ = payload["thread_ts"].(string)
	if rc, ok := payload["response_context"].(map[string]interface{}); ok {
		if channelID == "" {
			channelID, _ = rc["channel"].(string)
		}
		if threadTS == "" {
			threadTS, _ = rc["thread_ts"].(string)
		}
	}
	return channelID, threadTS
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
