// Package rules holds the rule language of formrules: the parser for
// pipe-delimited rule strings, the Registry of named evaluators, the
// catalog of built-in rules and the Formatter that turns a failed rule into
// a human-readable message.
//
// # Rule syntax
//
// A field's rules are written as "name:param1,param2|name2|...". Parsing
// never fails: blank segments are skipped and segments without a name are
// dropped (and logged when the Parser has a logger). Two forms are special:
//
//   - regex and not_regex keep a delimited pattern ("/^[a-z,|]+$/i") as a
//     single parameter, even when it contains commas or pipes;
//   - an "ajax:" prefix forces the rule to be decided by the remote authority
//     regardless of how the registry classifies it.
//
//	set := rules.Parse("required|between:3,20|regex:/^[a-z,]+$/")
//	set[1].Params // []string{"3", "20"}
//	set[2].Params // []string{"/^[a-z,]+$/"}
//
// # Evaluators
//
// Every rule is an Evaluator: a pure func(value, params, field, ctx) bool.
// Context exposes the whole record and the field's full rule list, so
// cross-field rules (same, confirmed, required_if, gt:other_field) and
// numeric-context size rules can be expressed without extra state.
//
// Apart from the presence family (required, present, filled, accepted,
// declined, the required_* and prohibited_* rules) every built-in passes
// vacuously on an empty value; use required to demand a value.
//
// Size rules (min, max, size, between, gt, gte, lt, lte) compare strings by
// character count, collections by element count, files by kilobytes and
// numbers by magnitude. Numeric strings are treated as numbers only when the
// field also carries numeric or integer.
//
// # Registry
//
// NewRegistry returns a registry preloaded with the built-in catalog and the
// remote set (unique, exists, password, current_password). A Registry is an
// explicit object: validators that share one see each other's Extend calls,
// validators built from separate registries do not.
//
//	reg := rules.NewRegistry()
//	_ = reg.Extend("even", func(v any, _ []string, _ string, _ rules.Context) bool {
//	    n, ok := v.(int)
//	    return ok && n%2 == 0
//	}, "The :attribute must be even.")
//
// # Messages
//
// Formatter resolves a template in this order: a "field.rule" override, a
// "rule" override, the registry default, then DefaultMessage. Placeholders
// such as :attribute, :min, :max, :other, :date and :values are filled from
// the invocation; unknown placeholders are left in the text untouched.
package rules
