package rules

import (
	"encoding/json"
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"
	_ "time/tzdata" // timezone rule must not depend on the host zoneinfo

	"github.com/google/uuid"
)

var (
	ulidRegex     = regexp.MustCompile(`^[0-7][0-9A-HJKMNP-TVW-Za-hjkmnp-tvw-z]{25}$`)
	hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

	// Compiled patterns keyed by their delimited source.
	patternCache sync.Map
)

// Email validates an address with net/mail and rejects display-name forms
// and domains without a dot.
func Email(value any, _ []string, _ string, _ Context) bool {
	if IsEmpty(value) {
		return true
	}
	s, ok := value.(string)
	if !ok {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}

	local, domain, found := strings.Cut(addr.Address, "@")
	if !found || local == "" {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// URL requires an absolute URL with scheme and host. Params restrict the allowed schemes.
func URL(value any, params []string, _ string, _ Context) bool {
	if IsEmpty(value) {
		return true
	}
	s, ok := value.(string)
	if !ok {
		return false
	}
	u, err := url.ParseRequestURI(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}
	if len(params) > 0 {
		return slices.Contains(params, strings.ToLower(u.Scheme))
	}
	return true
}

// IP accepts IPv4 or IPv6 addresses.
func IP(value any, _ []string, _ string, _ Context) bool {
	if IsEmpty(value) {
		return true
	}
	return net.ParseIP(toString(value)) != nil
}

// IPv4 accepts dotted-quad IPv4 addresses.
func IPv4(value any, _ []string, _ string, _ Context) bool {
	if IsEmpty(value) {
		return true
	}
	s := toString(value)
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() != nil && !strings.Contains(s, ":")
}

// IPv6 accepts IPv6 addresses, including IPv4-mapped forms.
func IPv6(value any, _ []string, _ string, _ Context) bool {
	if IsEmpty(value) {
		return true
	}
	s := toString(value)
	return net.ParseIP(s) != nil && strings.Contains(s, ":")
}

// MACAddress accepts colon, dash or dot separated hardware addresses.
func MACAddress(value any, _ []string, _ string, _ Context) bool {
	if IsEmpty(value) {
		return true
	}
	_, err := net.ParseMAC(toString(value))
	return err == nil
}

// JSON requires a string holding a valid JSON document.
func JSON(value any, _ []string, _ string, _ Context) bool {
	if IsEmpty(value) {
		return true
	}
	s, ok := value.(string)
	return ok && json.Valid([]byte(s))
}

// UUID validates the canonical 36-character form.
func UUID(value any, _ []string, _ string, _ Context) bool {
	if IsEmpty(value) {
		return true
	}
	s, ok := value.(string)
	if !ok || len(s) != 36 {
		return false
	}
	// Fast rejection before parsing
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// ULID validates a 26-character Crockford base32 identifier.
func ULID(value any, _ []string, _ string, _ Context) bool {
	if IsEmpty(value) {
		return true
	}
	s, ok := value.(string)
	return ok && ulidRegex.MatchString(s)
}

// HexColor accepts #rgb, #rgba, #rrggbb and #rrggbbaa.
func HexColor(value any, _ []string, _ string, _ Context) bool {
	if IsEmpty(value) {
		return true
	}
	s, ok := value.(string)
	return ok && hexColorRegex.MatchString(s)
}

// Timezone requires an IANA zone name such as "Europe/Berlin" or "UTC".
func Timezone(value any, _ []string, _ string, _ Context) bool {
	if IsEmpty(value) {
		return true
	}
	s, ok := value.(string)
	if !ok || s == "Local" {
		return false
	}
	_, err := time.LoadLocation(s)
	return err == nil
}

// Regex requires a match of the delimited pattern in params, e.g. /^[a-z]+$/i.
// Patterns that fail to compile never match.
func Regex(value any, params []string, _ string, _ Context) bool {
	if IsEmpty(value) {
		return true
	}
	re, ok := compilePattern(params)
	if !ok {
		return false
	}
	return re.MatchString(toString(value))
}

// NotRegex requires the value not to match the delimited pattern in params.
// Patterns that fail to compile fail the rule.
func NotRegex(value any, params []string, _ string, _ Context) bool {
	if IsEmpty(value) {
		return true
	}
	re, ok := compilePattern(params)
	if !ok {
		return false
	}
	return !re.MatchString(toString(value))
}

// compilePattern converts "/body/flags" into a Go regexp. Undelimited patterns
// that were split on commas are joined back. Flags i, m and s map to Go flags;
// g, u and y have no Go meaning and are ignored.
func compilePattern(params []string) (*regexp.Regexp, bool) {
	if len(params) == 0 {
		return nil, false
	}
	src := strings.Join(params, ",")
	if cached, ok := patternCache.Load(src); ok {
		re, _ := cached.(*regexp.Regexp)
		return re, re != nil
	}

	re := buildPattern(src)
	patternCache.Store(src, re)
	return re, re != nil
}

func buildPattern(src string) *regexp.Regexp {
	body, flags := src, ""
	if strings.HasPrefix(src, "/") {
		end := strings.LastIndex(src, "/")
		if end <= 0 {
			return nil
		}
		body, flags = src[1:end], src[end+1:]
	}

	var goFlags strings.Builder
	for _, f := range flags {
		switch f {
		case 'i', 'm', 's':
			if !strings.ContainsRune(goFlags.String(), f) {
				goFlags.WriteRune(f)
			}
		case 'g', 'u', 'y':
		default:
			return nil
		}
	}
	if goFlags.Len() > 0 {
		body = "(?" + goFlags.String() + ")" + body
	}

	re, err := regexp.Compile(body)
	if err != nil {
		return nil
	}
	return re
}
