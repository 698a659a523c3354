package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"sort"
	"strings"
)

const (
	sectionMessages   = "messages"
	sectionAttributes = "attributes"
)

// Catalog holds message overrides and attribute labels.
//
// Message keys are either a rule name ("required") or a field-scoped
// rule ("email.required"). Nested sections are flattened with dots, so
//
//	messages:
//	  email:
//	    required: "We need your email."
//
// yields the key "email.required".
type Catalog struct {
	Messages   map[string]string
	Attributes map[string]string
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{
		Messages:   make(map[string]string),
		Attributes: make(map[string]string),
	}
}

// Load reads a catalog file; the format follows the extension.
func Load(ctx context.Context, filename string) (*Catalog, error) {
	return LoadFS(ctx, os.DirFS("."), filename)
}

// LoadFS reads a catalog file from fsys.
func LoadFS(ctx context.Context, fsys fs.FS, filename string) (*Catalog, error) {
	p := NewParserForFile(filename)
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
	content, err := fs.ReadFile(fsys, strings.TrimPrefix(filename, "./"))
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return Parse(ctx, p, content)
}

// Parse decodes content with p into a catalog. Top-level keys other than
// messages and attributes are ignored.
func Parse(ctx context.Context, p Parser, content []byte) (*Catalog, error) {
	tree, err := p.Parse(ctx, content)
	if err != nil {
		return nil, err
	}

	c := New()
	if raw, ok := tree[sectionMessages]; ok {
		if err := flatten(sectionMessages, "", raw, c.Messages); err != nil {
			return nil, err
		}
	}
	if raw, ok := tree[sectionAttributes]; ok {
		if err := flatten(sectionAttributes, "", raw, c.Attributes); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Merge copies other into c; other wins on conflicts.
func (c *Catalog) Merge(other *Catalog) {
	if other == nil {
		return
	}
	maps.Copy(c.Messages, other.Messages)
	maps.Copy(c.Attributes, other.Attributes)
}

// Keys returns the message keys in sorted order.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.Messages))
	for k := range c.Messages {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func flatten(section, prefix string, raw any, out map[string]string) error {
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		if prefix == "" {
			return fmt.Errorf("%w: %s must be a map", ErrInvalidStructure, section)
		}
		out[prefix] = v
	case map[string]any:
		for k, child := range v {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			if err := flatten(section, key, child, out); err != nil {
				return err
			}
		}
	default:
		if prefix == "" {
			return fmt.Errorf("%w: %s must be a map, got %T", ErrInvalidStructure, section, raw)
		}
		out[prefix] = fmt.Sprint(v)
	}
	return nil
}
