package rules

// defaultMessages holds the English templates registered by NewRegistry.
var defaultMessages = map[string]string{
	"accepted":             "The :attribute must be accepted.",
	"accepted_if":          "The :attribute must be accepted when :other is :value.",
	"after":                "The :attribute must be a date after :date.",
	"after_or_equal":       "The :attribute must be a date after or equal to :date.",
	"alpha":                "The :attribute may only contain letters.",
	"alpha_dash":           "The :attribute may only contain letters, numbers, dashes and underscores.",
	"alpha_num":            "The :attribute may only contain letters and numbers.",
	"array":                "The :attribute must be an array.",
	"ascii":                "The :attribute must only contain single-byte alphanumeric characters and symbols.",
	"before":               "The :attribute must be a date before :date.",
	"before_or_equal":      "The :attribute must be a date before or equal to :date.",
	"between":              "The :attribute must be between :min and :max.",
	"boolean":              "The :attribute field must be true or false.",
	"confirmed":            "The :attribute confirmation does not match.",
	"current_password":     "The password is incorrect.",
	"date":                 "The :attribute is not a valid date.",
	"date_equals":          "The :attribute must be a date equal to :date.",
	"date_format":          "The :attribute does not match the format :format.",
	"decimal":              "The :attribute must have :decimal decimal places.",
	"declined":             "The :attribute must be declined.",
	"declined_if":          "The :attribute must be declined when :other is :value.",
	"different":            "The :attribute and :other must be different.",
	"digits":               "The :attribute must be :digits digits.",
	"digits_between":       "The :attribute must be between :min and :max digits.",
	"distinct":             "The :attribute field has a duplicate value.",
	"doesnt_end_with":      "The :attribute may not end with one of the following: :values.",
	"doesnt_start_with":    "The :attribute may not start with one of the following: :values.",
	"email":                "The :attribute must be a valid email address.",
	"ends_with":            "The :attribute must end with one of the following: :values.",
	"exists":               "The selected :attribute is invalid.",
	"filled":               "The :attribute field must have a value.",
	"gt":                   "The :attribute must be greater than :value.",
	"gte":                  "The :attribute must be greater than or equal to :value.",
	"hex_color":            "The :attribute must be a valid hexadecimal color.",
	"in":                   "The selected :attribute is invalid.",
	"integer":              "The :attribute must be an integer.",
	"ip":                   "The :attribute must be a valid IP address.",
	"ipv4":                 "The :attribute must be a valid IPv4 address.",
	"ipv6":                 "The :attribute must be a valid IPv6 address.",
	"json":                 "The :attribute must be a valid JSON string.",
	"lowercase":            "The :attribute must be lowercase.",
	"lt":                   "The :attribute must be less than :value.",
	"lte":                  "The :attribute must be less than or equal to :value.",
	"mac_address":          "The :attribute must be a valid MAC address.",
	"max":                  "The :attribute may not be greater than :max.",
	"max_digits":           "The :attribute must not have more than :max digits.",
	"min":                  "The :attribute must be at least :min.",
	"min_digits":           "The :attribute must have at least :min digits.",
	"multiple_of":          "The :attribute must be a multiple of :value.",
	"not_in":               "The selected :attribute is invalid.",
	"not_regex":            "The :attribute format is invalid.",
	"numeric":              "The :attribute must be a number.",
	"password":             "The password is incorrect.",
	"present":              "The :attribute field must be present.",
	"prohibited":           "The :attribute field is prohibited.",
	"prohibited_if":        "The :attribute field is prohibited when :other is :value.",
	"prohibited_unless":    "The :attribute field is prohibited unless :other is in :values.",
	"regex":                "The :attribute format is invalid.",
	"required":             "The :attribute field is required.",
	"required_if":          "The :attribute field is required when :other is :value.",
	"required_unless":      "The :attribute field is required unless :other is in :values.",
	"required_with":        "The :attribute field is required when :values is present.",
	"required_with_all":    "The :attribute field is required when :values are present.",
	"required_without":     "The :attribute field is required when :values is not present.",
	"required_without_all": "The :attribute field is required when none of :values are present.",
	"same":                 "The :attribute and :other must match.",
	"size":                 "The :attribute must be :size.",
	"starts_with":          "The :attribute must start with one of the following: :values.",
	"string":               "The :attribute must be a string.",
	"timezone":             "The :attribute must be a valid timezone.",
	"ulid":                 "The :attribute must be a valid ULID.",
	"unique":               "The :attribute has already been taken.",
	"uppercase":            "The :attribute must be uppercase.",
	"url":                  "The :attribute format is invalid.",
	"uuid":                 "The :attribute must be a valid UUID.",
}
