// Copyright 2026 The Postal Authors
// SPDX-License-Identifier: Apache-2.0

package format

import "strings"

// Rendered is a conversion output in the target format's representation:
// Text for freeform targets, Fields for structured ones.
type Rendered struct {
	Format string
	Text   string
	Fields Address
}

// IsText reports whether the rendering is a free-text line.
func (r Rendered) IsText() bool {
	return r.Fields == nil
}

// Render turns a structured Address into the target schema's representation.
//
// It assumes the address already passed Validate for the target schema; a
// missing required field is still caught and reported as an
// IncompleteAddressError rather than silently emitting a malformed result.
// Freeform output joins present fields in schema order, each prefixed by its
// own separator, so absent optional fields never leave a doubled or
// trailing separator behind.
func Render(a Address, s *Schema) (Rendered, error) {
	var missing []string

	for _, f := range s.Fields {
		if _, ok := a[f.Name]; !ok && f.Required {
			missing = append(missing, f.Name)
		}
	}

	if len(missing) > 0 {
		return Rendered{}, &IncompleteAddressError{Missing: missing}
	}

	if s.Kind == KindStructured {
		out := Address{}

		for _, f := range s.Fields {
			if v, ok := a[f.Name]; ok {
				out[f.Name] = v
			}
		}

		return Rendered{Format: s.ID, Fields: out}, nil
	}

	var b strings.Builder

	first := true

	for _, f := range s.Fields {
		v, ok := a[f.Name]
		if !ok {
			continue
		}

		if !first {
			if f.Sep == "" {
				b.WriteString(" ")
			} else {
				b.WriteString(f.Sep)
			}
		}

		b.WriteString(v)

		first = false
	}

	return Rendered{Format: s.ID, Text: b.String()}, nil
}
