// Copyright 2026 The Postal Authors
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"fmt"
	"sort"
	"strings"
)

// Parser turns raw input into a structured Address for a source schema.
//
// The zero value is the permissive parser: unrecognized keys in mapping
// input are silently dropped. With Strict set they are reported as a
// ParseError instead.
type Parser struct {
	Strict bool
}

// Parse dissects free-text input against a freeform source schema using the
// zero-value (permissive) Parser.
func Parse(raw string, s *Schema) (Address, error) {
	return Parser{}.Text(raw, s)
}

// ParseFields builds an Address from a loosely-typed mapping using the
// zero-value (permissive) Parser.
func ParseFields(in map[string]string, s *Schema) (Address, error) {
	return Parser{}.Fields(in, s)
}

// Text dissects a free-text line against the schema's declared separators.
func (p Parser) Text(raw string, s *Schema) (Address, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, &ParseError{Offset: -1, Reason: "empty input"}
	}

	if s.Kind != KindFreeform {
		return nil, &ParseError{
			Fragment: trimmed,
			Offset:   0,
			Reason:   fmt.Sprintf("format %q takes field input, not free text", s.ID),
		}
	}

	layout, err := splitGroups(s)
	if err != nil {
		return nil, err
	}

	chunks := layout.split(trimmed)

	if len(chunks) > len(layout.groups) {
		extra := chunks[len(layout.groups)]

		return nil, &ParseError{
			Fragment: extra,
			Offset:   strings.Index(raw, extra),
			Reason:   "unexpected trailing content",
		}
	}

	addr := Address{}

	for i, g := range layout.groups {
		if i >= len(chunks) || chunks[i] == "" {
			if name, req := g.firstRequired(); req {
				return nil, &ParseError{
					Fragment: trimmed,
					Offset:   0,
					Reason:   fmt.Sprintf("required field %q not found", name),
				}
			}

			continue
		}

		if err := g.assign(addr, chunks[i], raw); err != nil {
			return nil, err
		}
	}

	return addr, nil
}

// Fields copies the keys declared by the schema (canonical names or aliases,
// matched case- and accent-insensitively) into an Address, trimming values.
// Unknown keys are dropped, or rejected when the parser is strict.
func (p Parser) Fields(in map[string]string, s *Schema) (Address, error) {
	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	addr := Address{}

	var unknown []string

	for _, k := range keys {
		name, ok := s.canonicalKey(k)
		if !ok {
			unknown = append(unknown, k)

			continue
		}

		if v := collapse(in[k]); v != "" {
			addr[name] = v
		}
	}

	if p.Strict && len(unknown) > 0 {
		return nil, &ParseError{
			Fragment: strings.Join(unknown, ", "),
			Offset:   -1,
			Reason:   fmt.Sprintf("fields not declared by format %q", s.ID),
		}
	}

	return addr, nil
}

// fieldGroup is a run of fields joined by whitespace inside one chunk of a
// free-text rendering. Groups are separated by the schema's delimiter.
type fieldGroup struct {
	fields []Field
}

func (g fieldGroup) firstRequired() (string, bool) {
	for _, f := range g.fields {
		if f.Required {
			return f.Name, true
		}
	}

	return "", false
}

// assign distributes the whitespace-separated tokens of chunk over the
// group's fields: every field after the first takes one token from the
// right, the first keeps the remainder, so interior spaces survive in
// values like "123 Main St". Optional fields are dropped from the right
// when the chunk is short.
func (g fieldGroup) assign(addr Address, chunk, raw string) error {
	fields := make([]Field, len(g.fields))
	copy(fields, g.fields)

	tokens := strings.Fields(chunk)

	for len(fields) > len(tokens) {
		dropped := false

		for j := len(fields) - 1; j >= 0; j-- {
			if !fields[j].Required {
				fields = append(fields[:j], fields[j+1:]...)
				dropped = true

				break
			}
		}

		if !dropped {
			return &ParseError{
				Fragment: chunk,
				Offset:   strings.Index(raw, chunk),
				Reason:   fmt.Sprintf("required field %q not found", fields[len(tokens)].Name),
			}
		}
	}

	for j := len(fields) - 1; j >= 1; j-- {
		addr[fields[j].Name] = tokens[len(tokens)-1]
		tokens = tokens[:len(tokens)-1]
	}

	addr[fields[0].Name] = strings.Join(tokens, " ")

	return nil
}

// textLayout is the parsing view of a freeform schema: its field groups and
// the (single) delimiter separating them.
type textLayout struct {
	groups []fieldGroup
	delim  string
}

// split breaks a trimmed raw line into per-group chunks.
func (l *textLayout) split(trimmed string) []string {
	if l.delim == "" {
		return []string{trimmed}
	}

	chunks := strings.Split(trimmed, l.delim)
	for i := range chunks {
		chunks[i] = strings.TrimSpace(chunks[i])
	}

	return chunks
}

// splitGroups derives the text layout from the schema's separators: a field
// whose Sep is blank joins the previous group; one with a visible separator
// starts a new group. Mixed visible separators are a schema misconfiguration.
func splitGroups(s *Schema) (*textLayout, error) {
	layout := &textLayout{}

	for i, f := range s.Fields {
		delim := strings.TrimSpace(f.Sep)

		if i == 0 || (delim == "" && len(layout.groups) > 0) {
			if i == 0 {
				layout.groups = append(layout.groups, fieldGroup{})
			}

			g := &layout.groups[len(layout.groups)-1]
			g.fields = append(g.fields, f)

			continue
		}

		if layout.delim == "" {
			layout.delim = delim
		} else if layout.delim != delim {
			return nil, fmt.Errorf("schema %q: mixed field delimiters %q and %q", s.ID, layout.delim, delim)
		}

		layout.groups = append(layout.groups, fieldGroup{fields: []Field{f}})
	}

	return layout, nil
}
