// Copyright 2026 The Postal Authors
// SPDX-License-Identifier: Apache-2.0

// Package format converts postal addresses between named representations.
//
// A format is a declarative Schema: an ordered list of field descriptors with
// per-field predicates, aliases and rendering separators. Parsing, validation
// and rendering are generic functions parameterized by schema, so new formats
// are added by registering data, not by writing code.
package format

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind distinguishes single-line renderings from field mappings.
type Kind string

const (
	// KindFreeform formats render to (and parse from) a single line of text.
	KindFreeform Kind = "freeform"
	// KindStructured formats render to (and parse from) a field mapping.
	KindStructured Kind = "structured"
)

// Address is a structured address: field name to value. Absent optional
// fields are absent keys, never empty strings. All ordered behavior (issue
// order, render order) follows schema field order, never map iteration.
type Address map[string]string

// Field describes one address component within a schema.
type Field struct {
	// Name is the canonical field name within this format.
	Name string
	// Required fields must be present for the address to validate.
	Required bool
	// Pattern, when set, must match the field value.
	Pattern *regexp.Regexp
	// MaxLen, when positive, bounds the value length in bytes.
	MaxLen int
	// Aliases are alternate names accepted on input and consulted when
	// mapping from another format's vocabulary (e.g. state for region).
	Aliases []string
	// Sep is the separator preceding this field in a free-text rendering.
	// Ignored for the first rendered field. Defaults to a single space.
	Sep string
	// Default fills the field during conversion when the source format has
	// no value for it and none of the aliases match.
	Default string
}

// Schema is a named, immutable address format description.
type Schema struct {
	ID     string
	Kind   Kind
	Fields []Field
}

// Field returns the descriptor for name, if declared.
func (s *Schema) Field(name string) (*Field, bool) {
	for i := range s.Fields {
		if s.Fields[i].Name == name {
			return &s.Fields[i], true
		}
	}

	return nil, false
}

// FieldNames returns the declared field names in schema order.
func (s *Schema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}

	return names
}

// canonicalKey resolves an input key to a declared field name, matching
// names and aliases case- and accent-insensitively.
func (s *Schema) canonicalKey(key string) (string, bool) {
	key = Fold(key)
	for _, f := range s.Fields {
		if Fold(f.Name) == key {
			return f.Name, true
		}

		for _, a := range f.Aliases {
			if Fold(a) == key {
				return f.Name, true
			}
		}
	}

	return "", false
}

// check reports schema misconfiguration. A malformed schema is a programmer
// error, caught at registry construction rather than per call.
func (s *Schema) check() error {
	if s.ID == "" {
		return fmt.Errorf("schema without id")
	}

	if s.Kind != KindFreeform && s.Kind != KindStructured {
		return fmt.Errorf("schema %q: unknown kind %q", s.ID, s.Kind)
	}

	if len(s.Fields) == 0 {
		return fmt.Errorf("schema %q: no fields", s.ID)
	}

	seen := map[string]string{}

	for _, f := range s.Fields {
		if f.Name == "" {
			return fmt.Errorf("schema %q: field without name", s.ID)
		}

		for _, key := range append([]string{f.Name}, f.Aliases...) {
			folded := Fold(key)
			if prev, dup := seen[folded]; dup && prev != f.Name {
				return fmt.Errorf("schema %q: %q claimed by both %q and %q", s.ID, key, prev, f.Name)
			}

			seen[folded] = f.Name
		}
	}

	if s.Kind == KindFreeform {
		if _, err := splitGroups(s); err != nil {
			return err
		}
	}

	return nil
}

// Registry owns the set of known format schemas. It is immutable after
// construction and safe for concurrent readers.
type Registry struct {
	ids     []string
	schemas map[string]*Schema
}

// NewRegistry builds a registry from the given schemas. Registration order
// is preserved by List and Detect. It panics on a malformed or duplicate
// schema: that is a misconfiguration, not an input error.
func NewRegistry(schemas ...*Schema) *Registry {
	r := &Registry{schemas: make(map[string]*Schema, len(schemas))}

	for _, s := range schemas {
		if err := s.check(); err != nil {
			panic(err)
		}

		if _, dup := r.schemas[s.ID]; dup {
			panic(fmt.Errorf("duplicate schema %q", s.ID))
		}

		r.ids = append(r.ids, s.ID)
		r.schemas[s.ID] = s
	}

	return r
}

// Get returns the schema registered under id.
func (r *Registry) Get(id string) (*Schema, error) {
	s, ok := r.schemas[strings.TrimSpace(id)]
	if !ok {
		return nil, &UnknownFormatError{ID: id}
	}

	return s, nil
}

// List returns the registered format identifiers in registration order.
func (r *Registry) List() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)

	return out
}
