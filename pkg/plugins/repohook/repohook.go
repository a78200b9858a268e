// Package repohook is the builtin code-hosting plugin: it parses issue
// and pull-request webhooks into work items and posts agent replies back
// as comments.
package repohook

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/go-github/v68/github"

	"github.com/hooklinehq/hookline/pkg/plugin"
)

// PluginType is the registry key.
const PluginType = "repohook"

// Handler implements the code-hosting plugin.
type Handler struct {
	plugin.Base

	// baseURL overrides the API endpoint for enterprise installs and tests.
	baseURL string
}

// New creates the repohook handler.
func New() *Handler { return &Handler{} }

// NewWithBaseURL creates a handler targeting a non-default API endpoint.
func NewWithBaseURL(baseURL string) *Handler { return &Handler{baseURL: baseURL} }

// Type returns the registry key.
func (h *Handler) Type() string { return PluginType }

// Category classifies the plugin.
func (h *Handler) Category() plugin.Category { return plugin.CategoryCode }

// Builtin marks the handler as shipped with the binary.
func (h *Handler) Builtin() bool { return true }

// SensitiveFields names the encrypted config values.
func (h *Handler) SensitiveFields() []string { return []string{"api_token"} }

// ValidateConfig requires an API token.
func (h *Handler) ValidateConfig(config map[string]interface{}) error {
	token, _ := config["api_token"].(string)
	if token == "" {
		return fmt.Errorf("config field 'api_token' is required")
	}
	return nil
}

// ParseWebhook handles issue_comment, issues and pull_request deliveries.
// The X-GitHub-Delivery id is the primary idempotency key: the provider
// re-sends with the same id on retries.
func (h *Handler) ParseWebhook(ctx context.Context, req *plugin.WebhookRequest, inst *plugin.Instance) (*plugin.ParseResult, error) {
	eventType := req.Headers.Get("X-GitHub-Event")
	if eventType == "" {
		return nil, fmt.Errorf("missing X-GitHub-Event header")
	}
	deliveryID := req.Headers.Get("X-GitHub-Delivery")

	event, err := github.ParseWebHook(eventType, req.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s payload: %w", eventType, err)
	}

	switch ev := event.(type) {
	case *github.IssueCommentEvent:
		return h.parseIssueComment(ev, deliveryID, inst)
	case *github.IssuesEvent:
		return h.parseIssue(ev, deliveryID, inst)
	case *github.PullRequestEvent:
		return h.parsePullRequest(ev, deliveryID, inst)
	}
	return &plugin.ParseResult{ShouldProcess: false, SkipReason: "unsupported_event_type"}, nil
}

func (h *Handler) parseIssueComment(ev *github.IssueCommentEvent, deliveryID string, inst *plugin.Instance) (*plugin.ParseResult, error) {
	if ev.GetAction() != "created" {
		return &plugin.ParseResult{ShouldProcess: false, SkipReason: "unsupported_event_type"}, nil
	}
	sender := ev.GetSender()
	if sender.GetType() == "Bot" {
		return &plugin.ParseResult{ShouldProcess: false, SkipReason: "bot_echo"}, nil
	}

	repo := ev.GetRepo().GetFullName()
	number := ev.GetIssue().GetNumber()
	commentID := ev.GetComment().GetID()

	return h.result(
		repo, number, deliveryID, inst,
		fmt.Sprintf("%s:%s:comment:%d", PluginType, inst.ID, commentID),
		ev.GetComment().GetBody(),
		fmt.Sprintf("Comment on %s#%d", repo, number),
		sender.GetLogin(),
		map[string]interface{}{
			"event_type": "issue_comment",
			"repo":       repo,
			"number":     number,
			"comment_id": commentID,
		},
	), nil
}

func (h *Handler) parseIssue(ev *github.IssuesEvent, deliveryID string, inst *plugin.Instance) (*plugin.ParseResult, error) {
	if ev.GetAction() != "opened" {
		return &plugin.ParseResult{ShouldProcess: false, SkipReason: "unsupported_event_type"}, nil
	}

	repo := ev.GetRepo().GetFullName()
	number := ev.GetIssue().GetNumber()
	text := ev.GetIssue().GetTitle()
	if body := ev.GetIssue().GetBody(); body != "" {
		text += "\n\n" + body
	}

	return h.result(
		repo, number, deliveryID, inst,
		fmt.Sprintf("%s:%s:issue:%d", PluginType, inst.ID, ev.GetIssue().GetID()),
		text,
		ev.GetIssue().GetTitle(),
		ev.GetSender().GetLogin(),
		map[string]interface{}{
			"event_type": "issues",
			"repo":       repo,
			"number":     number,
		},
	), nil
}

func (h *Handler) parsePullRequest(ev *github.PullRequestEvent, deliveryID string, inst *plugin.Instance) (*plugin.ParseResult, error) {
	if ev.GetAction() != "opened" {
		return &plugin.ParseResult{ShouldProcess: false, SkipReason: "unsupported_event_type"}, nil
	}

	repo := ev.GetRepo().GetFullName()
	number := ev.GetPullRequest().GetNumber()
	text := ev.GetPullRequest().GetTitle()
	if body := ev.GetPullRequest().GetBody(); body != "" {
		text += "\n\n" + body
	}

	return h.result(
		repo, number, deliveryID, inst,
		fmt.Sprintf("%s:%s:pr:%d", PluginType, inst.ID, ev.GetPullRequest().GetID()),
		text,
		ev.GetPullRequest().GetTitle(),
		ev.GetSender().GetLogin(),
		map[string]interface{}{
			"event_type": "pull_request",
			"repo":       repo,
			"number":     number,
		},
	), nil
}

func (h *Handler) result(repo string, number int, deliveryID string, inst *plugin.Instance,
	primaryKey, text, title, sender string, payload map[string]interface{}) *plugin.ParseResult {

	keys := []string{primaryKey}
	if deliveryID != "" {
		keys = append(keys, fmt.Sprintf("%s:delivery:%s", PluginType, deliveryID))
	}

	return &plugin.ParseResult{
		ShouldProcess: true,
		WorkItem: &plugin.WorkItemDraft{
			SessionKey: fmt.Sprintf("repo:%s#%d", repo, number),
			Source:     PluginType,
			SourceRef:  deliveryID,
			Title:      title,
			Text:       text,
			SenderName: sender,
			Payload:    payload,
		},
		IdempotencyKeys: keys,
		IngressEventID:  primaryKey,
		ResponseContext: map[string]interface{}{
			"repo":   repo,
			"number": number,
		},
		Actor: &plugin.Actor{Kind: "user", Handle: sender},
	}
}

// PostResponse posts the effect text as an issue or pull-request comment.
// The created comment id is the provider reference.
func (h *Handler) PostResponse(ctx context.Context, inst *plugin.Instance, channel string, payload map[string]interface{}) (*plugin.PostResult, error) {
	text, _ := payload["text"].(string)
	if text == "" {
		return nil, fmt.Errorf("effect payload has no text")
	}

	repo, number, err := target(payload)
	if err != nil {
		return nil, err
	}
	owner, name, err := splitRepo(repo)
	if err != nil {
		return nil, err
	}

	comment, _, err := h.api(inst).Issues.CreateComment(ctx, owner, name, number,
		&github.IssueComment{Body: github.Ptr(text)})
	if err != nil {
		return nil, fmt.Errorf("failed to create comment on %s#%d: %w", repo, number, err)
	}
	return &plugin.PostResult{
		ProviderRef: strconv.FormatInt(comment.GetID(), 10),
		Status:      "posted",
	}, nil
}

func (h *Handler) api(inst *plugin.Instance) *github.Client {
	token, _ := inst.Config["api_token"].(string)
	client := github.NewClient(nil).WithAuthToken(token)
	if h.baseURL != "" {
		if c, err := client.WithEnterpriseURLs(h.baseURL, h.baseURL); err == nil {
			return c
		}
	}
	return client
}

// target resolves the repo and issue number from the effect payload,
// falling back to the run's response context.
func target(payload map[string]interface{}) (string, int, error) {
	repo, _ := payload["repo"].(string)
	number := intValue(payload["number"])
	if rc, ok := payload["response_context"].(map[string]interface{}); ok {
		if repo == "" {
			repo, _ = rc["repo"].(string)
		}
		if number == 0 {
			number = intValue(rc["number"])
		}
	}
	if repo == "" || number == 0 {
		return "", 0, fmt.Errorf("effect payload has no repo/number target")
	}
	return repo, number, nil
}

func splitRepo(full string) (string, string, error) {
	owner, name, ok := strings.Cut(full, "/")
	if !ok || owner == "" || name == "" {
		return "", "", fmt.Errorf("repo %q is not owner/name", full)
	}
	return owner, name, nil
}

func intValue(v interface{}) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}
