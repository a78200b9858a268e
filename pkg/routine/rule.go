// Package routine evaluates declarative triggers: time-based schedules,
// condition probes, and rule trees matched against ingress envelopes.
package routine

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Envelope is the event view rules are evaluated against.
type Envelope struct {
	EventID          string `json:"eventId"`
	Source           string `json:"source"`
	EventType        string `json:"eventType"`
	SourceRef        string `json:"sourceRef"`
	SessionKey       string `json:"sessionKey"`
	PluginInstanceID string `json:"pluginInstanceId"`
	ActorKind        string `json:"actorKind"`
	ActorHandle      string `json:"actorHandle"`
	Status           string `json:"status"`
	Title            string `json:"title"`
	CreatedAt        string `json:"createdAt"`
}

// field returns the named envelope field and whether the name is known.
func (e *Envelope) field(name string) (string, bool) {
	switch name {
	case "eventId":
		return e.EventID, true
	case "source":
		return e.Source, true
	case "eventType":
		return e.EventType, true
	case "sourceRef":
		return e.SourceRef, true
	case "sessionKey":
		return e.SessionKey, true
	case "pluginInstanceId":
		return e.PluginInstanceID, true
	case "actorKind":
		return e.ActorKind, true
	case "actorHandle":
		return e.ActorHandle, true
	case "status":
		return e.Status, true
	case "title":
		return e.Title, true
	case "createdAt":
		return e.CreatedAt, true
	}
	return "", false
}

// ToMap renders the envelope for receipts and the event inbox.
func (e *Envelope) ToMap() map[string]interface{} {
	raw, _ := json.Marshal(e)
	out := map[string]interface{}{}
	_ = json.Unmarshal(raw, &out)
	return out
}

// EnvelopeFromMap rebuilds an Envelope from its stored form.
func EnvelopeFromMap(m map[string]interface{}) *Envelope {
	raw, _ := json.Marshal(m)
	var e Envelope
	_ = json.Unmarshal(raw, &e)
	return &e
}

// Rule is a compiled predicate over an envelope.
type Rule interface {
	Eval(env *Envelope) bool
}

type leafRule struct {
	field string
	op    string
	value string
	re    *regexp.Regexp // compiled for op=matches
	set   []string       // split for op=in
}

func (r *leafRule) Eval(env *Envelope) bool {
	v, present := env.field(r.field)
	switch r.op {
	case "exists":
		return present && v != ""
	case "eq":
		return v == r.value
	case "neq":
		return v != r.value
	case "contains":
		return strings.Contains(v, r.value)
	case "in":
		for _, s := range r.set {
			if v == s {
				return true
			}
		}
		return false
	case "matches":
		return r.re.MatchString(v)
	}
	return false
}

type allRule []Rule

func (r allRule) Eval(env *Envelope) bool {
	for _, sub := range r {
		if !sub.Eval(env) {
			return false
		}
	}
	return true
}

type anyRule []Rule

func (r anyRule) Eval(env *Envelope) bool {
	for _, sub := range r {
		if sub.Eval(env) {
			return true
		}
	}
	return false
}

type notRule struct{ inner Rule }

func (r notRule) Eval(env *Envelope) bool { return !r.inner.Eval(env) }

var knownFields = map[string]bool{
	"eventId": true, "source": true, "eventType": true, "sourceRef": true,
	"sessionKey": true, "pluginInstanceId": true, "actorKind": true,
	"actorHandle": true, "status": true, "title": true, "createdAt": true,
}

var knownOps = map[string]bool{
	"eq": true, "neq": true, "contains": true, "in": true,
	"exists": true, "matches": true,
}

// ruleNode is the raw JSON shape of one rule tree node.
type ruleNode struct {
	Field string          `json:"field,omitempty"`
	Op    string          `json:"op,omitempty"`
	Value json.RawMessage `json:"value,omitempty"`
	All   []ruleNode      `json:"all,omitempty"`
	Any   []ruleNode      `json:"any,omitempty"`
	Not   *ruleNode       `json:"not,omitempty"`
}

// ParseRule compiles a rule tree from its JSON form, with explicit
// validation errors naming the offending node.
func ParseRule(ruleJSON string) (Rule, error) {
	if strings.TrimSpace(ruleJSON) == "" {
		return nil, fmt.Errorf("rule is empty")
	}
	var node ruleNode
	dec := json.NewDecoder(strings.NewReader(ruleJSON))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&node); err != nil {
		return nil, fmt.Errorf("rule is not valid JSON: %w", err)
	}
	return compileNode(&node, "rule")
}

func compileNode(n *ruleNode, path string) (Rule, error) {
	kinds := 0
	if n.Field != "" || n.Op != "" {
		kinds++
	}
	if len(n.All) > 0 {
		kinds++
	}
	if len(n.Any) > 0 {
		kinds++
	}
	if n.Not != nil {
		kinds++
	}
	if kinds != 1 {
		return nil, fmt.Errorf("%s: node must be exactly one of leaf, all, any, not", path)
	}

	switch {
	case len(n.All) > 0:
		rules := make(allRule, 0, len(n.All))
		for i := range n.All {
			sub, err := compileNode(&n.All[i], fmt.Sprintf("%s.all[%d]", path, i))
			if err != nil {
				return nil, err
			}
			rules = append(rules, sub)
		}
		return rules, nil

	case len(n.Any) > 0:
		rules := make(anyRule, 0, len(n.Any))
		for i := range n.Any {
			sub, err := compileNode(&n.Any[i], fmt.Sprintf("%s.any[%d]", path, i))
			if err != nil {
				return nil, err
			}
			rules = append(rules, sub)
		}
		return rules, nil

	case n.Not != nil:
		inner, err := compileNode(n.Not, path+".not")
		if err != nil {
			return nil, err
		}
		return notRule{inner: inner}, nil

	default:
		return compileLeaf(n, path)
	}
}

func compileLeaf(n *ruleNode, path string) (Rule, error) {
	if !knownFields[n.Field] {
		return nil, fmt.Errorf("%s: unknown field %q", path, n.Field)
	}
	if !knownOps[n.Op] {
		return nil, fmt.Errorf("%s: unknown op %q", path, n.Op)
	}

	leaf := &leafRule{field: n.Field, op: n.Op, value: coerceString(n.Value)}

	switch n.Op {
	case "in":
		if leaf.value == "" {
			return nil, fmt.Errorf("%s: op 'in' requires a comma-separated value", path)
		}
		for _, s := range strings.Split(leaf.value, ",") {
			leaf.set = append(leaf.set, strings.TrimSpace(s))
		}
	case "matches":
		re, err := regexp.Compile(leaf.value)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid regular expression: %w", path, err)
		}
		leaf.re = re
	case "exists":
		// value ignored
	default:
		if len(n.Value) == 0 {
			return nil, fmt.Errorf("%s: op %q requires a value", path, n.Op)
		}
	}
	return leaf, nil
}

// coerceString renders a JSON scalar value as the string rules compare
// against.
func coerceString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err == nil {
		return fmt.Sprintf("%v", v)
	}
	return string(raw)
}
