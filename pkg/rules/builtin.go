package rules

// builtinEvaluators lists every rule the registry can decide locally.
func builtinEvaluators() map[string]Evaluator {
	return map[string]Evaluator{
		// presence
		"required":             Required,
		"nullable":             Nullable,
		"bail":                 Marker,
		"sometimes":            Marker,
		"filled":               Filled,
		"present":              Present,
		"accepted":             Accepted,
		"accepted_if":          AcceptedIf,
		"declined":             Declined,
		"declined_if":          DeclinedIf,
		"required_if":          RequiredIf,
		"required_unless":      RequiredUnless,
		"required_with":        RequiredWith,
		"required_with_all":    RequiredWithAll,
		"required_without":     RequiredWithout,
		"required_without_all": RequiredWithoutAll,
		"prohibited":           Prohibited,
		"prohibited_if":        ProhibitedIf,
		"prohibited_unless":    ProhibitedUnless,

		// strings
		"string":            String,
		"alpha":             Alpha,
		"alpha_num":         AlphaNum,
		"alpha_dash":        AlphaDash,
		"ascii":             ASCII,
		"lowercase":         Lowercase,
		"uppercase":         Uppercase,
		"starts_with":       StartsWith,
		"ends_with":         EndsWith,
		"doesnt_start_with": DoesntStartWith,
		"doesnt_end_with":   DoesntEndWith,

		// numbers
		"numeric":        Numeric,
		"integer":        Integer,
		"decimal":        Decimal,
		"digits":         Digits,
		"digits_between": DigitsBetween,
		"min_digits":     MinDigits,
		"max_digits":     MaxDigits,
		"multiple_of":    MultipleOf,

		// sizes
		"min":     Min,
		"max":     Max,
		"size":    Size,
		"between": Between,
		"gt":      Gt,
		"gte":     Gte,
		"lt":      Lt,
		"lte":     Lte,

		// choices and collections
		"in":       In,
		"not_in":   NotIn,
		"boolean":  Boolean,
		"array":    Array,
		"distinct": Distinct,

		// cross-field
		"confirmed": Confirmed,
		"same":      Same,
		"different": Different,

		// formats
		"email":       Email,
		"url":         URL,
		"ip":          IP,
		"ipv4":        IPv4,
		"ipv6":        IPv6,
		"mac_address": MACAddress,
		"json":        JSON,
		"uuid":        UUID,
		"ulid":        ULID,
		"hex_color":   HexColor,
		"timezone":    Timezone,
		"regex":       Regex,
		"not_regex":   NotRegex,

		// dates
		"date":            Date,
		"date_format":     DateFormat,
		"after":           After,
		"after_or_equal":  AfterOrEqual,
		"before":          Before,
		"before_or_equal": BeforeOrEqual,
		"date_equals":     DateEquals,
	}
}
