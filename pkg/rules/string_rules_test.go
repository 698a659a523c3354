package rules_test

import "testing"

func TestStringRules(t *testing.T) {
	t.Parallel()

	runRuleCases(t, []ruleCase{
		{name: "string text", spec: "string", value: "a", want: true},
		{name: "string number", spec: "string", value: 5, want: false},

		{name: "alpha letters", spec: "alpha", value: "abc", want: true},
		{name: "alpha unicode", spec: "alpha", value: "héllo", want: true},
		{name: "alpha digit", spec: "alpha", value: "ab1", want: false},
		{name: "alpha ascii only", spec: "alpha:ascii", value: "héllo", want: false},
		{name: "alpha list", spec: "alpha", value: []any{"a"}, want: false},
		{name: "alpha_num mixed", spec: "alpha_num", value: "ab12", want: true},
		{name: "alpha_num number", spec: "alpha_num", value: 42, want: true},
		{name: "alpha_num dash", spec: "alpha_num", value: "a-b", want: false},
		{name: "alpha_dash", spec: "alpha_dash", value: "a-b_c1", want: true},
		{name: "alpha_dash space", spec: "alpha_dash", value: "a b", want: false},

		{name: "ascii plain", spec: "ascii", value: "abc!~", want: true},
		{name: "ascii accent", spec: "ascii", value: "héllo", want: false},

		{name: "lowercase ok", spec: "lowercase", value: "abc", want: true},
		{name: "lowercase mixed", spec: "lowercase", value: "aBc", want: false},
		{name: "uppercase ok", spec: "uppercase", value: "ABC", want: true},
		{name: "uppercase mixed", spec: "uppercase", value: "ABc", want: false},

		{name: "starts_with any", spec: "starts_with:foo,bar", value: "barbaz", want: true},
		{name: "starts_with none", spec: "starts_with:foo,bar", value: "baz", want: false},
		{name: "ends_with", spec: "ends_with:.com,.org", value: "example.org", want: true},
		{name: "ends_with none", spec: "ends_with:.com", value: "example.net", want: false},
		{name: "doesnt_start_with hit", spec: "doesnt_start_with:foo", value: "foobar", want: false},
		{name: "doesnt_start_with miss", spec: "doesnt_start_with:foo", value: "barfoo", want: true},
		{name: "doesnt_end_with hit", spec: "doesnt_end_with:foo", value: "barfoo", want: false},
		{name: "doesnt_end_with miss", spec: "doesnt_end_with:foo", value: "foobar", want: true},
	})
}
