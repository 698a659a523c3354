package rules_test

import (
	"testing"
	"time"
)

// Reference clock for every case: 2024-06-15 12:00 UTC.
func TestDateRules(t *testing.T) {
	t.Parallel()

	runRuleCases(t, []ruleCase{
		{name: "date iso", spec: "date", value: "2024-01-01", want: true},
		{name: "date rfc3339", spec: "date", value: "2024-01-01T10:00:00Z", want: true},
		{name: "date time value", spec: "date", value: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), want: true},
		{name: "date zero time", spec: "date", value: time.Time{}, want: false},
		{name: "date garbage", spec: "date", value: "not a date", want: false},
		{name: "date number", spec: "date", value: 20240101, want: false},

		{name: "date_format ymd", spec: "date_format:Y-m-d", value: "2024-01-31", want: true},
		{name: "date_format ymd rejects dmy", spec: "date_format:Y-m-d", value: "31/01/2024", want: false},
		{name: "date_format dmy", spec: "date_format:d/m/Y", value: "31/01/2024", want: true},
		{name: "date_format time", spec: "date_format:H:i", value: "14:30", want: true},
		{name: "date_format any of", spec: "date_format:Y-m-d,d.m.Y", value: "31.01.2024", want: true},
		{name: "date_format invalid day", spec: "date_format:Y-m-d", value: "2024-02-30", want: false},

		{name: "after today later day", spec: "after:today", value: "2024-06-16", want: true},
		{name: "after today same day later time", spec: "after:today", value: "2024-06-15 10:00", want: true},
		{name: "after today earlier day", spec: "after:today", value: "2024-06-14", want: false},
		{name: "after literal", spec: "after:2024-01-01", value: "2024-01-02", want: true},
		{name: "after now", spec: "after:now", value: "2024-06-15 12:00:01", want: true},
		{name: "after now earlier", spec: "after:now", value: "2024-06-15 11:59:59", want: false},
		{name: "after garbage reference", spec: "after:garbage", value: "2024-06-16", want: false},
		{name: "after unparsable value", spec: "after:today", value: "soon", want: false},
		{name: "after other field", spec: "after:start_date", value: "2024-06-02", data: map[string]any{"start_date": "2024-06-01"}, want: true},
		{name: "after other field empty", spec: "after:start_date", value: "2024-06-02", data: map[string]any{"start_date": ""}, want: false},

		{name: "before tomorrow", spec: "before:tomorrow", value: "2024-06-15", want: true},
		{name: "before tomorrow same", spec: "before:tomorrow", value: "2024-06-16", want: false},
		{name: "before other field", spec: "before:end_date", value: "2024-06-30", data: map[string]any{"end_date": "2024-06-01"}, want: false},

		{name: "after_or_equal ignores time", spec: "after_or_equal:today", value: "2024-06-15 00:00", want: true},
		{name: "after_or_equal day before", spec: "after_or_equal:today", value: "2024-06-14 23:59", want: false},
		{name: "before_or_equal yesterday", spec: "before_or_equal:yesterday", value: "2024-06-14 23:00", want: true},
		{name: "before_or_equal today later", spec: "before_or_equal:today", value: "2024-06-16 00:01", want: false},

		{name: "date_equals same day", spec: "date_equals:today", value: "2024-06-15 18:00", want: true},
		{name: "date_equals next day", spec: "date_equals:today", value: "2024-06-16", want: false},
		{name: "date_equals literal", spec: "date_equals:2024-06-15", value: time.Date(2024, 6, 15, 23, 0, 0, 0, time.UTC), want: true},
	})
}
