package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formrules/pkg/rules"
)

func TestFormatter_Resolution(t *testing.T) {
	t.Parallel()

	f := rules.NewFormatter(rules.NewRegistry(), map[string]string{
		"email.required": "A",
		"required":       "B",
	}, nil)

	assert.Equal(t, "A", f.Format("email", "required", nil))
	assert.Equal(t, "B", f.Format("name", "required", nil))
	assert.Equal(t, "The name must be at least 3.", f.Format("name", "min", []string{"3"}))
	assert.Equal(t, "The name is invalid.", f.Format("name", "no_such_rule", nil))
}

func TestFormatter_NilRegistry(t *testing.T) {
	t.Parallel()

	f := rules.NewFormatter(nil, nil, nil)
	assert.Equal(t, "The user name is invalid.", f.Format("user_name", "required", nil))
}

func TestFormatter_Labels(t *testing.T) {
	t.Parallel()

	f := rules.NewFormatter(rules.NewRegistry(), nil, map[string]string{
		"first_name": "First Name",
	})

	assert.Equal(t, "First Name", f.Label("first_name"))
	assert.Equal(t, "last name", f.Label("last_name"))
	assert.Equal(t, "The First Name field is required.", f.Format("first_name", "required", nil))
	assert.Equal(t, "The last name field is required.", f.Format("last_name", "required", nil))
}

func TestFormatter_Interpolate(t *testing.T) {
	t.Parallel()

	f := rules.NewFormatter(rules.NewRegistry(), nil, map[string]string{"password": "password"})

	tests := []struct {
		name     string
		template string
		field    string
		rule     string
		params   []string
		want     string
	}{
		{"between bounds", "Between :min and :max", "age", "between", []string{"18", "65"}, "Between 18 and 65"},
		{"size", ":attribute is :size", "code", "size", []string{"6"}, "code is 6"},
		{"other uses label", ":attribute must match :other", "password_confirm", "same", []string{"password"}, "password confirm must match password"},
		{"date", "after :date", "starts_at", "after", []string{"today"}, "after today"},
		{"values", "one of :values", "color", "in", []string{"red", "green"}, "one of red, green"},
		{"required_if", ":other is :value", "state", "required_if", []string{"country", "US"}, "country is US"},
		{"capitalized attribute", ":Attribute is bad", "email", "email", nil, "Email is bad"},
		{"upper attribute", ":ATTRIBUTE is bad", "email", "email", nil, "EMAIL is bad"},
		{"field alias", ":field is bad", "email", "email", nil, "email is bad"},
		{"unknown placeholder kept", ":attribute has :foo", "name", "required", nil, "name has :foo"},
		{"missing parameter kept", "at least :min", "name", "min", nil, "at least :min"},
		{"custom rule first param", "multiple of :value", "qty", "custom", []string{"5"}, "multiple of 5"},
		{"time-like text untouched", "opens 10:30", "name", "required", nil, "opens 10:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, f.Interpolate(tt.template, tt.field, tt.rule, tt.params))
		})
	}
}

func TestFormatter_DefaultTemplates(t *testing.T) {
	t.Parallel()

	f := rules.NewFormatter(rules.NewRegistry(), nil, nil)

	assert.Equal(t, "The age must be between 18 and 65.", f.Format("age", "between", []string{"18", "65"}))
	assert.Equal(t, "The title may not be greater than 10.", f.Format("title", "max", []string{"10"}))
	assert.Equal(t, "The state field is required when country is US.", f.Format("state", "required_if", []string{"country", "US"}))
	assert.Equal(t, "The selected color is invalid.", f.Format("color", "in", []string{"red"}))
	assert.Equal(t, "The addr must be a valid IPv4 address.", f.Format("addr", "ipv4", nil))
	assert.Equal(t, "The addr must be a valid IPv6 address.", f.Format("addr", "ipv6", nil))
}

func TestFormatter_ClonesInputs(t *testing.T) {
	t.Parallel()

	messages := map[string]string{"required": "before"}
	f := rules.NewFormatter(nil, messages, nil)
	messages["required"] = "after"

	assert.Equal(t, "before", f.Template("x", "required"))
}
