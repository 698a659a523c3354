package rules_test

import "testing"

func TestFormatRules(t *testing.T) {
	t.Parallel()

	runRuleCases(t, []ruleCase{
		{name: "email valid", spec: "email", value: "test@example.com", want: true},
		{name: "email plus tag", spec: "email", value: "user+tag@example.org", want: true},
		{name: "email plain", spec: "email", value: "plainaddress", want: false},
		{name: "email display name", spec: "email", value: "John <john@example.com>", want: false},
		{name: "email no tld", spec: "email", value: "missing@domain", want: false},
		{name: "email leading dot domain", spec: "email", value: "missing@.com", want: false},
		{name: "email number", spec: "email", value: 42, want: false},

		{name: "url https", spec: "url", value: "https://example.com/path?q=1", want: true},
		{name: "url no scheme", spec: "url", value: "example.com", want: false},
		{name: "url scheme allowed", spec: "url:https", value: "https://example.com", want: true},
		{name: "url scheme rejected", spec: "url:https", value: "http://example.com", want: false},

		{name: "ip v4", spec: "ip", value: "192.168.0.1", want: true},
		{name: "ip v6", spec: "ip", value: "2001:db8::1", want: true},
		{name: "ip invalid", spec: "ip", value: "999.1.1.1", want: false},
		{name: "ipv4 rejects v6", spec: "ipv4", value: "::1", want: false},
		{name: "ipv4 ok", spec: "ipv4", value: "10.0.0.1", want: true},
		{name: "ipv6 ok", spec: "ipv6", value: "::1", want: true},
		{name: "ipv6 rejects v4", spec: "ipv6", value: "10.0.0.1", want: false},

		{name: "mac colon", spec: "mac_address", value: "00:1A:2B:3C:4D:5E", want: true},
		{name: "mac dash", spec: "mac_address", value: "00-1A-2B-3C-4D-5E", want: true},
		{name: "mac short", spec: "mac_address", value: "00:1A", want: false},

		{name: "json object", spec: "json", value: `{"a":1}`, want: true},
		{name: "json broken", spec: "json", value: "{a}", want: false},
		{name: "json non string", spec: "json", value: 1, want: false},

		{name: "uuid valid", spec: "uuid", value: "550e8400-e29b-41d4-a716-446655440000", want: true},
		{name: "uuid invalid", spec: "uuid", value: "not-a-uuid", want: false},
		{name: "uuid wrong hyphens", spec: "uuid", value: "550e8400e-29b-41d4-a716-446655440000", want: false},

		{name: "ulid valid", spec: "ulid", value: "01ARZ3NDEKTSV4RRFFQ69G5FAV", want: true},
		{name: "ulid lowercase", spec: "ulid", value: "01arz3ndektsv4rrffq69g5fav", want: true},
		{name: "ulid forbidden letter", spec: "ulid", value: "01ARZ3NDEKTSV4RRFFQ69G5FAL", want: false},
		{name: "ulid overflow", spec: "ulid", value: "81ARZ3NDEKTSV4RRFFQ69G5FAV", want: false},

		{name: "hex short", spec: "hex_color", value: "#fff", want: true},
		{name: "hex long", spec: "hex_color", value: "#ABCDEF", want: true},
		{name: "hex no hash", spec: "hex_color", value: "fff", want: false},
		{name: "hex bad digit", spec: "hex_color", value: "#ggg", want: false},

		{name: "timezone iana", spec: "timezone", value: "Europe/Berlin", want: true},
		{name: "timezone utc", spec: "timezone", value: "UTC", want: true},
		{name: "timezone unknown", spec: "timezone", value: "Mars/Olympus", want: false},
		{name: "timezone local", spec: "timezone", value: "Local", want: false},

		{name: "regex comma class", spec: "regex:/^[a-z,]+$/", value: "abc,def", want: true},
		{name: "regex mismatch", spec: "regex:/^[a-z,]+$/", value: "ABC", want: false},
		{name: "regex case flag", spec: "regex:/^abc$/i", value: "ABC", want: true},
		{name: "regex ignored global flag", spec: "regex:/^abc$/g", value: "abc", want: true},
		{name: "regex alternation", spec: "regex:/^(a|b)$/", value: "b", want: true},
		{name: "regex undelimited", spec: "regex:^a,b$", value: "a,b", want: true},
		{name: "regex invalid fails closed", spec: "regex:/[/", value: "[", want: false},
		{name: "regex number value", spec: "regex:/^\\d+$/", value: 123, want: true},
		{name: "not_regex miss", spec: "not_regex:/\\d/", value: "abc", want: true},
		{name: "not_regex hit", spec: "not_regex:/\\d/", value: "a1", want: false},
		{name: "not_regex invalid fails closed", spec: "not_regex:/[/", value: "abc", want: false},
	})
}
