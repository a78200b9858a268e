package routine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnvelope() *Envelope {
	return &Envelope{
		EventID:          "evt-1",
		Source:           "chatsvc",
		EventType:        "message",
		SourceRef:        "C123/1700000000.0001",
		SessionKey:       "chatsvc:C123",
		PluginInstanceID: "inst-1",
		ActorKind:        "user",
		ActorHandle:      "U42",
		Status:           "new",
		Title:            "deploy failed on prod",
		CreatedAt:        "2026-08-26T10:00:00Z",
	}
}

func TestParseRuleLeafOps(t *testing.T) {
	env := testEnvelope()

	tests := []struct {
		name    string
		rule    string
		matches bool
	}{
		{"eq match", `{"field":"eventType","op":"eq","value":"message"}`, true},
		{"eq mismatch", `{"field":"eventType","op":"eq","value":"reaction"}`, false},
		{"neq", `{"field":"source","op":"neq","value":"repohook"}`, true},
		{"contains", `{"field":"title","op":"contains","value":"deploy"}`, true},
		{"contains mismatch", `{"field":"title","op":"contains","value":"rollback"}`, false},
		{"in", `{"field":"actorKind","op":"in","value":"user,bot"}`, true},
		{"in mismatch", `{"field":"actorKind","op":"in","value":"bot,system"}`, false},
		{"exists", `{"field":"sessionKey","op":"exists"}`, true},
		{"matches", `{"field":"title","op":"matches","value":"^deploy .* prod$"}`, true},
		{"matches mismatch", `{"field":"title","op":"matches","value":"^rollback"}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := ParseRule(tt.rule)
			require.NoError(t, err)
			assert.Equal(t, tt.matches, rule.Eval(env))
		})
	}
}

func TestParseRuleExistsOnEmptyField(t *testing.T) {
	env := testEnvelope()
	env.Title = ""

	rule, err := ParseRule(`{"field":"title","op":"exists"}`)
	require.NoError(t, err)
	assert.False(t, rule.Eval(env), "exists should be false for an empty field")
}

func TestParseRuleComposites(t *testing.T) {
	env := testEnvelope()

	all, err := ParseRule(`{"all":[
		{"field":"source","op":"eq","value":"chatsvc"},
		{"field":"actorKind","op":"eq","value":"user"}
	]}`)
	require.NoError(t, err)
	assert.True(t, all.Eval(env))

	// One failing conjunct fails the whole tree
	allFail, err := ParseRule(`{"all":[
		{"field":"source","op":"eq","value":"chatsvc"},
		{"field":"actorKind","op":"eq","value":"bot"}
	]}`)
	require.NoError(t, err)
	assert.False(t, allFail.Eval(env))

	anyRule, err := ParseRule(`{"any":[
		{"field":"source","op":"eq","value":"repohook"},
		{"field":"eventType","op":"eq","value":"message"}
	]}`)
	require.NoError(t, err)
	assert.True(t, anyRule.Eval(env))

	not, err := ParseRule(`{"not":{"field":"actorKind","op":"eq","value":"bot"}}`)
	require.NoError(t, err)
	assert.True(t, not.Eval(env))
}

func TestParseRuleNested(t *testing.T) {
	env := testEnvelope()

	rule, err := ParseRule(`{"all":[
		{"field":"source","op":"eq","value":"chatsvc"},
		{"any":[
			{"field":"title","op":"contains","value":"deploy"},
			{"field":"title","op":"contains","value":"incident"}
		]},
		{"not":{"field":"actorKind","op":"eq","value":"bot"}}
	]}`)
	require.NoError(t, err)
	assert.True(t, rule.Eval(env))

	env.ActorKind = "bot"
	assert.False(t, rule.Eval(env))
}

func TestParseRuleNumericValueCoercion(t *testing.T) {
	env := testEnvelope()
	env.SourceRef = "42"

	rule, err := ParseRule(`{"field":"sourceRef","op":"eq","value":42}`)
	require.NoError(t, err)
	assert.True(t, rule.Eval(env))
}

func TestParseRuleValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		rule string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"not json", "{nope"},
		{"unknown field", `{"field":"severity","op":"eq","value":"high"}`},
		{"unknown op", `{"field":"source","op":"like","value":"chat%"}`},
		{"unknown key rejected", `{"field":"source","op":"eq","value":"x","extra":true}`},
		{"eq without value", `{"field":"source","op":"eq"}`},
		{"in without value", `{"field":"source","op":"in"}`},
		{"bad regex", `{"field":"title","op":"matches","value":"["}`},
		{"leaf and all mixed", `{"field":"source","op":"eq","value":"x","all":[{"field":"source","op":"exists"}]}`},
		{"empty object", `{}`},
		{"bad nested node", `{"all":[{"field":"source","op":"eq","value":"x"},{"field":"bogus","op":"eq","value":"y"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRule(tt.rule)
			assert.Error(t, err)
		})
	}
}

func TestParseRuleErrorNamesPath(t *testing.T) {
	_, err := ParseRule(`{"all":[{"field":"source","op":"eq","value":"x"},{"field":"bogus","op":"eq","value":"y"}]}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rule.all[1]")
}

func TestParseRuleInTrimsWhitespace(t *testing.T) {
	env := testEnvelope()

	rule, err := ParseRule(`{"field":"actorKind","op":"in","value":" bot , user "}`)
	require.NoError(t, err)
	assert.True(t, rule.Eval(env))
}

func TestEnvelopeRoundTrip(t *testing.T) {
	env := testEnvelope()

	m := env.ToMap()
	back := EnvelopeFromMap(m)
	assert.Equal(t, env, back)
}
