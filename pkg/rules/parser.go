package rules

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/dmitrymomot/formrules/pkg/logger"
)

const ajaxPrefix = "ajax:"

// Delimited pattern with optional trailing flags, e.g. /^[a-z,]+$/i.
var delimitedPatternRegex = regexp.MustCompile(`(?s)^/.*/[a-zA-Z]*$`)

// regexRules take a single delimited pattern parameter that must never be split.
var regexRules = map[string]bool{
	"regex":     true,
	"not_regex": true,
}

// Parser turns rule specifications into Invocations.
// Malformed segments are dropped and reported to the logger; parsing never fails.
type Parser struct {
	logger *slog.Logger
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithParserLogger sets the logger that receives dropped-segment warnings.
func WithParserLogger(l *slog.Logger) ParserOption {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewParser creates a Parser. Without options anomalies are discarded silently.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{logger: logger.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = NewParser()

// Parse parses a pipe-delimited rule string with a silent parser.
func Parse(spec string) Set {
	return defaultParser.Parse(spec)
}

// ParseList parses a list of rules with a silent parser. See Parser.ParseList.
func ParseList(items ...any) Set {
	return defaultParser.ParseList(items...)
}

// Parse splits spec on "|" and parses each segment in order.
// Empty segments are skipped. A segment holding a delimited regex pattern is
// kept whole even if the pattern contains "|".
func (p *Parser) Parse(spec string) Set {
	segments := splitSegments(spec)
	set := make(Set, 0, len(segments))
	for _, seg := range segments {
		if inv, ok := p.ParseSegment(seg); ok {
			set = append(set, inv)
		}
	}
	return set
}

// ParseList parses an already split rule list. Items may be strings (one rule each),
// Invocations, or any fmt.Stringer whose String method yields the rule text.
// Nil items are skipped; items of other types are dropped with a warning.
func (p *Parser) ParseList(items ...any) Set {
	set := make(Set, 0, len(items))
	for _, item := range items {
		switch x := item.(type) {
		case nil:
			continue
		case Invocation:
			if x.Name != "" {
				set = append(set, x)
			}
		case *Invocation:
			if x != nil && x.Name != "" {
				set = append(set, *x)
			}
		case string:
			if inv, ok := p.ParseSegment(x); ok {
				set = append(set, inv)
			}
		case fmt.Stringer:
			if inv, ok := p.ParseSegment(x.String()); ok {
				set = append(set, inv)
			}
		default:
			p.logger.Warn("rule item dropped",
				logger.Component("rules.parser"),
				slog.String("type", fmt.Sprintf("%T", item)),
			)
		}
	}
	return set
}

// ParseAny accepts every supported specification shape: a pipe-delimited string,
// a []string, a []any, a Set or []Invocation, or a single fmt.Stringer.
func (p *Parser) ParseAny(spec any) (Set, error) {
	switch x := spec.(type) {
	case nil:
		return Set{}, nil
	case string:
		return p.Parse(x), nil
	case Set:
		return p.ParseList(toAnySlice(x)...), nil
	case []Invocation:
		return p.ParseList(toAnySlice(x)...), nil
	case []string:
		return p.ParseList(toAnySlice(x)...), nil
	case []any:
		return p.ParseList(x...), nil
	case Invocation, *Invocation:
		return p.ParseList(x), nil
	case fmt.Stringer:
		return p.Parse(x.String()), nil
	}
	return nil, fmt.Errorf("%w: unsupported rule specification type %T", ErrInvalidSpec, spec)
}

// ParseSegment parses a single rule such as "between:1,10", "regex:/^a,b$/"
// or "ajax:unique:users,email". It reports false for blank or nameless segments.
func (p *Parser) ParseSegment(segment string) (Invocation, bool) {
	raw := segment
	seg := strings.TrimSpace(segment)
	if seg == "" {
		return Invocation{}, false
	}

	forced := false
	if strings.HasPrefix(seg, ajaxPrefix) {
		forced = true
		seg = strings.TrimSpace(strings.TrimPrefix(seg, ajaxPrefix))
	}

	name, rawParams, hasParams := strings.Cut(seg, ":")
	name = strings.TrimSpace(name)
	if name == "" {
		p.logger.Warn("malformed rule segment dropped",
			logger.Component("rules.parser"),
			logger.Segment(raw),
		)
		return Invocation{}, false
	}

	inv := Invocation{Name: name, Remote: forced}
	switch {
	case !hasParams || rawParams == "":
		inv.Params = []string{}
	case regexRules[name] && delimitedPatternRegex.MatchString(rawParams):
		inv.Params = []string{rawParams}
	default:
		inv.Params = strings.Split(rawParams, ",")
	}

	return inv, true
}

// splitSegments splits on "|" except inside a delimited regex parameter.
func splitSegments(spec string) []string {
	var segments []string
	start, i := 0, 0
	for i <= len(spec) {
		if i == start {
			if end, ok := regexSegmentEnd(spec[start:]); ok {
				segments = append(segments, spec[start:start+end])
				start += end + 1
				i = start
				continue
			}
		}
		if i == len(spec) {
			segments = append(segments, spec[start:])
			break
		}
		if spec[i] == '|' {
			segments = append(segments, spec[start:i])
			start = i + 1
		}
		i++
	}
	return segments
}

// regexSegmentEnd detects a segment that starts with a delimited regex rule
// and returns the offset just past its closing delimiter and flags, provided
// that offset is the end of the input or a "|".
func regexSegmentEnd(s string) (int, bool) {
	body := strings.TrimLeft(s, " ")
	offset := len(s) - len(body)
	if strings.HasPrefix(body, ajaxPrefix) {
		body = body[len(ajaxPrefix):]
		offset += len(ajaxPrefix)
	}

	name, rest, ok := strings.Cut(body, ":")
	if !ok || !regexRules[strings.TrimSpace(name)] || !strings.HasPrefix(rest, "/") {
		return 0, false
	}
	offset += len(name) + 1

	for i := 1; i < len(rest); i++ {
		switch rest[i] {
		case '\\':
			i++
		case '/':
			j := i + 1
			for j < len(rest) && isFlag(rest[j]) {
				j++
			}
			if j == len(rest) || rest[j] == '|' {
				return offset + j, true
			}
		}
	}
	return 0, false
}

func isFlag(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func toAnySlice[T any](items []T) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
