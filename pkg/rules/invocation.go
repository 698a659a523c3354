package rules

import "strings"

// Invocation is one parsed rule segment, e.g. "min:8" becomes
// {Name: "min", Params: ["8"]}. Remote marks segments written with the
// "ajax:" prefix, which are always sent to the remote authority.
type Invocation struct {
	Name   string
	Params []string
	Remote bool
}

// String returns the canonical rule text. Parsing the result yields an equal Invocation.
func (i Invocation) String() string {
	var b strings.Builder
	if i.Remote {
		b.WriteString(ajaxPrefix)
	}
	b.WriteString(i.Name)
	if len(i.Params) > 0 {
		b.WriteByte(':')
		b.WriteString(strings.Join(i.Params, ","))
	}
	return b.String()
}

// Param returns the i-th parameter or an empty string.
func (i Invocation) Param(n int) string {
	p, _ := param(i.Params, n)
	return p
}

// Set is the ordered rule list of one field.
type Set []Invocation

// Has reports whether any invocation is named one of names.
func (s Set) Has(names ...string) bool {
	for _, inv := range s {
		for _, name := range names {
			if inv.Name == name {
				return true
			}
		}
	}
	return false
}

// Find returns the first invocation with the given name.
func (s Set) Find(name string) (Invocation, bool) {
	for _, inv := range s {
		if inv.Name == name {
			return inv, true
		}
	}
	return Invocation{}, false
}

// String joins the set back into pipe form.
func (s Set) String() string {
	parts := make([]string, len(s))
	for i, inv := range s {
		parts[i] = inv.String()
	}
	return strings.Join(parts, "|")
}
