// Copyright 2026 The Postal Authors
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"fmt"
	"sort"
)

// ValidationResult is the outcome of checking an Address against a schema:
// valid, or an ordered list of per-field issues.
type ValidationResult struct {
	Issues []Issue
}

// Valid reports whether no issue was found.
func (r ValidationResult) Valid() bool {
	return len(r.Issues) == 0
}

// Err converts the result to a *ValidationError, or nil when valid.
func (r ValidationResult) Err() error {
	if r.Valid() {
		return nil
	}

	return &ValidationError{Issues: r.Issues}
}

// Validate checks an Address against a schema's field rules. Expected
// failures never surface as an error: they are collected in the result, in
// schema field order so assertions are deterministic. Keys outside the
// schema's field set are reported last, in lexical order.
func Validate(a Address, s *Schema) ValidationResult {
	var issues []Issue

	for _, f := range s.Fields {
		v, ok := a[f.Name]
		if !ok {
			if f.Required {
				issues = append(issues, Issue{
					Field:  f.Name,
					Code:   CodeRequired,
					Reason: "required field missing",
				})
			}

			continue
		}

		if f.MaxLen > 0 && len(v) > f.MaxLen {
			issues = append(issues, Issue{
				Field:  f.Name,
				Code:   CodeTooLong,
				Reason: fmt.Sprintf("value exceeds %d characters", f.MaxLen),
			})

			continue
		}

		if f.Pattern != nil && !f.Pattern.MatchString(v) {
			issues = append(issues, Issue{
				Field:  f.Name,
				Code:   CodePattern,
				Reason: fmt.Sprintf("malformed value %q", v),
			})
		}
	}

	var stray []string

	for k := range a {
		if _, ok := s.Field(k); !ok {
			stray = append(stray, k)
		}
	}

	sort.Strings(stray)

	for _, k := range stray {
		issues = append(issues, Issue{
			Field:  k,
			Code:   CodeUnknownField,
			Reason: fmt.Sprintf("field not declared by format %q", s.ID),
		})
	}

	return ValidationResult{Issues: issues}
}

// ValidateIn checks an Address against the format registered under formatID.
func (r *Registry) ValidateIn(a Address, formatID string) (ValidationResult, error) {
	s, err := r.Get(formatID)
	if err != nil {
		return ValidationResult{}, err
	}

	return Validate(a, s), nil
}
