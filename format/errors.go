// Copyright 2026 The Postal Authors
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes.
const (
	CodeRequired     = "required"
	CodePattern      = "pattern"
	CodeTooLong      = "too_long"
	CodeUnknownField = "unknown_field"
)

// Issue is a single validation failure for one field.
type Issue struct {
	Field  string `json:"field"`
	Code   string `json:"code"`
	Reason string `json:"reason"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Field, i.Reason)
}

// UnknownFormatError reports a format identifier that is not registered.
type UnknownFormatError struct {
	ID string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown format %q", e.ID)
}

// ParseError reports raw input structurally incompatible with the source
// schema. Fragment is the offending piece of input; Offset is its byte
// offset within the raw input, -1 when unknown.
type ParseError struct {
	Fragment string
	Offset   int
	Reason   string
}

func (e *ParseError) Error() string {
	if e.Fragment == "" {
		return e.Reason
	}

	if e.Offset >= 0 {
		return fmt.Sprintf("%s: %q at offset %d", e.Reason, e.Fragment, e.Offset)
	}

	return fmt.Sprintf("%s: %q", e.Reason, e.Fragment)
}

// ValidationError carries every failing field in schema order, not just the
// first, so callers can assert on the full list at once.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, iss := range e.Issues {
		parts[i] = iss.String()
	}

	return "invalid address: " + strings.Join(parts, "; ")
}

// Fields returns the failing field names in issue order.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.Issues))
	for i, iss := range e.Issues {
		out[i] = iss.Field
	}

	return out
}

// IncompleteAddressError reports required target fields with no value after
// mapping. Distinct from ValidationError: the source address was valid, the
// target format simply wants more than it can provide.
type IncompleteAddressError struct {
	Missing []string
}

func (e *IncompleteAddressError) Error() string {
	return fmt.Sprintf("address incomplete for target format: missing %s", strings.Join(e.Missing, ", "))
}

// IsUnknownFormatError verifies whether err is an UnknownFormatError.
func IsUnknownFormatError(err error) bool {
	var e *UnknownFormatError

	return errors.As(err, &e)
}

// IsParseError verifies whether err is a ParseError.
func IsParseError(err error) bool {
	var e *ParseError

	return errors.As(err, &e)
}

// IsValidationError verifies whether err is a ValidationError.
func IsValidationError(err error) bool {
	var e *ValidationError

	return errors.As(err, &e)
}

// IsIncompleteAddressError verifies whether err is an IncompleteAddressError.
func IsIncompleteAddressError(err error) bool {
	var e *IncompleteAddressError

	return errors.As(err, &e)
}
