package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formrules/pkg/rules"
)

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	var nilPtr *string
	blank := "  "

	for _, v := range []any{nil, "", "   ", []any{}, []string{}, map[string]any{}, []int{}, nilPtr, &blank} {
		assert.True(t, rules.IsEmpty(v), "%#v", v)
	}
	for _, v := range []any{false, 0, 0.0, "a", []any{nil}, map[string]any{"a": 1}, rules.File{}} {
		assert.False(t, rules.IsEmpty(v), "%#v", v)
	}
}

func TestPresenceRules(t *testing.T) {
	t.Parallel()

	runRuleCases(t, []ruleCase{
		{name: "required nil", spec: "required", value: nil, want: false},
		{name: "required blank", spec: "required", value: "   ", want: false},
		{name: "required empty list", spec: "required", value: []any{}, want: false},
		{name: "required false", spec: "required", value: false, want: true},
		{name: "required zero", spec: "required", value: 0, want: true},
		{name: "required text", spec: "required", value: "a", want: true},

		{name: "filled absent", spec: "filled", value: nil, want: true},
		{name: "filled present empty", spec: "filled", value: "", data: map[string]any{"field": ""}, want: false},
		{name: "filled present value", spec: "filled", value: "x", data: map[string]any{"field": "x"}, want: true},

		{name: "present missing", spec: "present", value: nil, want: false},
		{name: "present empty", spec: "present", value: "", data: map[string]any{"field": ""}, want: true},

		{name: "accepted yes", spec: "accepted", value: "yes", want: true},
		{name: "accepted true", spec: "accepted", value: true, want: true},
		{name: "accepted one", spec: "accepted", value: 1, want: true},
		{name: "accepted no", spec: "accepted", value: "no", want: false},
		{name: "accepted empty", spec: "accepted", value: "", want: false},
		{name: "declined off", spec: "declined", value: "off", want: true},
		{name: "declined false", spec: "declined", value: false, want: true},
		{name: "declined yes", spec: "declined", value: "yes", want: false},

		{name: "accepted_if matching", spec: "accepted_if:role,admin", value: "no", data: map[string]any{"role": "admin"}, want: false},
		{name: "accepted_if other", spec: "accepted_if:role,admin", value: "no", data: map[string]any{"role": "user"}, want: true},
		{name: "declined_if matching", spec: "declined_if:role,admin", value: "yes", data: map[string]any{"role": "admin"}, want: false},

		{name: "required_if matching", spec: "required_if:country,US", value: "", data: map[string]any{"country": "US"}, want: false},
		{name: "required_if not matching", spec: "required_if:country,US", value: "", data: map[string]any{"country": "CA"}, want: true},
		{name: "required_if number", spec: "required_if:count,1", value: "", data: map[string]any{"count": 1}, want: false},
		{name: "required_unless other", spec: "required_unless:country,US", value: "", data: map[string]any{"country": "CA"}, want: false},
		{name: "required_unless matching", spec: "required_unless:country,US", value: "", data: map[string]any{"country": "US"}, want: true},

		{name: "required_with filled", spec: "required_with:a,b", value: "", data: map[string]any{"a": "x"}, want: false},
		{name: "required_with none", spec: "required_with:a,b", value: "", data: map[string]any{"a": ""}, want: true},
		{name: "required_with_all partial", spec: "required_with_all:a,b", value: "", data: map[string]any{"a": "x"}, want: true},
		{name: "required_with_all full", spec: "required_with_all:a,b", value: "", data: map[string]any{"a": "x", "b": "y"}, want: false},
		{name: "required_without missing", spec: "required_without:a", value: "", data: map[string]any{}, want: false},
		{name: "required_without present", spec: "required_without:a", value: "", data: map[string]any{"a": "x"}, want: true},
		{name: "required_without_all one present", spec: "required_without_all:a,b", value: "", data: map[string]any{"a": "x"}, want: true},
		{name: "required_without_all none", spec: "required_without_all:a,b", value: "", data: map[string]any{}, want: false},

		{name: "prohibited value", spec: "prohibited", value: "x", want: false},
		{name: "prohibited empty", spec: "prohibited", value: "", want: true},
		{name: "prohibited_if matching", spec: "prohibited_if:a,1", value: "x", data: map[string]any{"a": "1"}, want: false},
		{name: "prohibited_if other", spec: "prohibited_if:a,1", value: "x", data: map[string]any{"a": "2"}, want: true},
		{name: "prohibited_unless other", spec: "prohibited_unless:a,1", value: "x", data: map[string]any{"a": "2"}, want: false},
		{name: "prohibited_unless matching", spec: "prohibited_unless:a,1", value: "x", data: map[string]any{"a": "1"}, want: true},

		{name: "nullable marker", spec: "nullable", value: nil, want: true},
		{name: "bail marker", spec: "bail", value: "x", want: true},
		{name: "sometimes marker", spec: "sometimes", value: "x", want: true},
	})
}

func TestEmptyValuesPassNonPresenceRules(t *testing.T) {
	t.Parallel()

	specs := []string{
		"email", "url", "min:3", "max:1", "numeric", "integer", "regex:/^a$/", "not_regex:/.*/",
		"date", "after:today", "uuid", "ulid", "in:a,b", "alpha", "digits:4", "size:2",
		"same:other", "confirmed", "json", "ip", "timezone", "hex_color", "lowercase",
		"starts_with:x", "decimal:2", "multiple_of:3", "boolean", "string", "distinct",
	}
	cases := make([]ruleCase, 0, len(specs)*2)
	for _, spec := range specs {
		cases = append(cases,
			ruleCase{name: spec + " nil", spec: spec, value: nil, want: true},
			ruleCase{name: spec + " blank", spec: spec, value: "  ", want: true},
		)
	}
	runRuleCases(t, cases)
}
