// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hooklinehq/hookline/ent/routine"
)

// Routine is the model entity for the Routine schema.
type Routine struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// TriggerKind holds the value of the "trigger_kind" field.
	TriggerKind routine.TriggerKind `json:"trigger_kind,omitempty"`
	// CronExpr holds the value of the "cron_expr" field.
	CronExpr string `json:"cron_expr,omitempty"`
	// Timezone holds the value of the "timezone" field.
	Timezone string `json:"timezone,omitempty"`
	// Predicate tree for event triggers; validated at save time
	RuleJSON string `json:"rule_json,omitempty"`
	// ConditionProbe holds the value of the "condition_probe" field.
	ConditionProbe string `json:"condition_probe,omitempty"`
	// ConditionConfig holds the value of the "condition_config" field.
	ConditionConfig map[string]interface{} `json:"condition_config,omitempty"`
	// TargetPluginInstanceID holds the value of the "target_plugin_instance_id" field.
	TargetPluginInstanceID string `json:"target_plugin_instance_id,omitempty"`
	// TargetSessionKey holds the value of the "target_session_key" field.
	TargetSessionKey string `json:"target_session_key,omitempty"`
	// ActionPrompt holds the value of the "action_prompt" field.
	ActionPrompt string `json:"action_prompt,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// Minimum gap between fires for event triggers; 0 = no throttle
	MinIntervalMs int64 `json:"min_interval_ms,omitempty"`
	// NextRunAt holds the value of the "next_run_at" field.
	NextRunAt *time.Time `json:"next_run_at,omitempty"`
	// LastFiredAt holds the value of the "last_fired_at" field.
	LastFiredAt *time.Time `json:"last_fired_at,omitempty"`
	// LastStatus holds the value of the "last_status" field.
	LastStatus string `json:"last_status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Routine) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case routine.FieldConditionConfig:
			values[i] = new([]byte)
		case routine.FieldEnabled:
			values[i] = new(sql.NullBool)
		case routine.FieldMinIntervalMs:
			values[i] = new(sql.NullInt64)
		case routine.FieldID, routine.FieldAgentID, routine.FieldName, routine.FieldTriggerKind, routine.FieldCronExpr, routine.FieldTimezone, routine.FieldRuleJSON, routine.FieldConditionProbe, routine.FieldTargetPluginInstanceID, routine.FieldTargetSessionKey, routine.FieldActionPrompt, routine.FieldLastStatus:
			values[i] = new(sql.NullString)
		case routine.FieldNextRunAt, routine.FieldLastFiredAt, routine.FieldCreatedAt, routine.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Routine fields.
func (_m *Routine) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case routine.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case routine.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case routine.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case routine.FieldTriggerKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_kind", values[i])
			} else if value.Valid {
				_m.TriggerKind = routine.TriggerKind(value.String)
			}
		case routine.FieldCronExpr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cron_expr", values[i])
			} else if value.Valid {
				_m.CronExpr = value.String
			}
		case routine.FieldTimezone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timezone", values[i])
			} else if value.Valid {
				_m.Timezone = value.String
			}
		case routine.FieldRuleJSON:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rule_json", values[i])
			} else if value.Valid {
				_m.RuleJSON = value.String
			}
		case routine.FieldConditionProbe:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field condition_probe", values[i])
			} else if value.Valid {
				_m.ConditionProbe = value.String
			}
		case routine.FieldConditionConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field condition_config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ConditionConfig); err != nil {
					return fmt.Errorf("unmarshal field condition_config: %w", err)
				}
			}
		case routine.FieldTargetPluginInstanceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_plugin_instance_id", values[i])
			} else if value.Valid {
				_m.TargetPluginInstanceID = value.String
			}
		case routine.FieldTargetSessionKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_session_key", values[i])
			} else if value.Valid {
				_m.TargetSessionKey = value.String
			}
		case routine.FieldActionPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action_prompt", values[i])
			} else if value.Valid {
				_m.ActionPrompt = value.String
			}
		case routine.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case routine.FieldMinIntervalMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field min_interval_ms", values[i])
			} else if value.Valid {
				_m.MinIntervalMs = value.Int64
			}
		case routine.FieldNextRunAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_run_at", values[i])
			} else if value.Valid {
				_m.NextRunAt = new(time.Time)
				*_m.NextRunAt = value.Time
			}
		case routine.FieldLastFiredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_fired_at", values[i])
			} else if value.Valid {
				_m.LastFiredAt = new(time.Time)
				*_m.LastFiredAt = value.Time
			}
		case routine.FieldLastStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_status", values[i])
			} else if value.Valid {
				_m.LastStatus = value.String
			}
		case routine.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case routine.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Routine.
// This includes values selected through modifiers, order, etc.
func (_m *Routine) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Routine.
// Note that you need to call Routine.Unwrap() before calling this method if this Routine
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Routine) Update() *RoutineUpdateOne {
	return NewRoutineClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Routine entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Routine) Unwrap() *Routine {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Routine is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Routine) String() string {
	var builder strings.Builder
	builder.WriteString("Routine(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("trigger_kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.TriggerKind))
	builder.WriteString(", ")
	builder.WriteString("cron_expr=")
	builder.WriteString(_m.CronExpr)
	builder.WriteString(", ")
	builder.WriteString("timezone=")
	builder.WriteString(_m.Timezone)
	builder.WriteString(", ")
	builder.WriteString("rule_json=")
	builder.WriteString(_m.RuleJSON)
	builder.WriteString(", ")
	builder.WriteString("condition_probe=")
	builder.WriteString(_m.ConditionProbe)
	builder.WriteString(", ")
	builder.WriteString("condition_config=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConditionConfig))
	builder.WriteString(", ")
	builder.WriteString("target_plugin_instance_id=")
	builder.WriteString(_m.TargetPluginInstanceID)
	builder.WriteString(", ")
	builder.WriteString("target_session_key=")
	builder.WriteString(_m.TargetSessionKey)
	builder.WriteString(", ")
	builder.WriteString("action_prompt=")
	builder.WriteString(_m.ActionPrompt)
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	builder.WriteString("min_interval_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.MinIntervalMs))
	builder.WriteString(", ")
	if v := _m.NextRunAt; v != nil {
		builder.WriteString("next_run_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastFiredAt; v != nil {
		builder.WriteString("last_fired_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("last_status=")
	builder.WriteString(_m.LastStatus)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Routines is a parsable slice of Routine.
type Routines []*Routine
