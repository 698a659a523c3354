package rules_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/pkg/rules"
)

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

// ruleCase evaluates the last rule of spec; earlier rules only shape the context.
type ruleCase struct {
	name  string
	spec  string
	value any
	data  map[string]any
	field string
	want  bool
}

func runRuleCases(t *testing.T, cases []ruleCase) {
	t.Helper()

	reg := rules.NewRegistry()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			set := rules.Parse(tc.spec)
			require.NotEmpty(t, set)
			inv := set[len(set)-1]

			eval, ok := reg.Get(inv.Name)
			require.True(t, ok, "no evaluator for %s", inv.Name)

			field := tc.field
			if field == "" {
				field = "field"
			}
			ctx := rules.Context{
				Data:  tc.data,
				Rules: set,
				Now:   func() time.Time { return fixedNow },
			}
			assert.Equal(t, tc.want, eval(tc.value, inv.Params, field, ctx), "%s with %#v", tc.spec, tc.value)
		})
	}
}
