// Copyright 2026 The Postal Authors
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRenderText(t *testing.T) {
	reg := Builtin()

	tests := []struct {
		name   string
		format string
		addr   Address
		want   string
	}{
		{
			name:   "us full",
			format: "us_freeform",
			addr: Address{
				"street":      "123 Main St",
				"city":        "Springfield",
				"region":      "IL",
				"postal_code": "62704",
			},
			want: "123 Main St, Springfield, IL 62704",
		},
		{
			name:   "us with country",
			format: "us_freeform",
			addr: Address{
				"street":      "123 Main St",
				"city":        "Springfield",
				"region":      "IL",
				"postal_code": "62704",
				"country":     "USA",
			},
			want: "123 Main St, Springfield, IL 62704, USA",
		},
		{
			name:   "uk without optional country",
			format: "uk_freeform",
			addr: Address{
				"street":   "10 Downing St",
				"city":     "London",
				"postcode": "SW1A 2AA",
			},
			want: "10 Downing St, London, SW1A 2AA",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.addr, mustSchema(t, reg, tt.format))
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}

			if !got.IsText() {
				t.Fatal("Render() returned fields, want text")
			}

			if got.Text != tt.want {
				t.Errorf("Render() = %q, want %q", got.Text, tt.want)
			}
		})
	}
}

// TestRenderSeparatorHygiene renders every subset of the optional fields and
// asserts no doubled or trailing separator ever shows up.
func TestRenderSeparatorHygiene(t *testing.T) {
	schema := &Schema{
		ID:   "lines",
		Kind: KindFreeform,
		Fields: []Field{
			{Name: "street", Required: true},
			{Name: "unit", Sep: ", "},
			{Name: "city", Required: true, Sep: ", "},
			{Name: "region", Sep: ", "},
			{Name: "postal_code", Sep: " "},
			{Name: "country", Sep: ", "},
		},
	}
	NewRegistry(schema)

	optional := []string{"unit", "region", "postal_code", "country"}
	values := Address{
		"street":      "123 Main St",
		"unit":        "Apt 4",
		"city":        "Springfield",
		"region":      "IL",
		"postal_code": "62704",
		"country":     "USA",
	}

	for mask := 0; mask < 1<<len(optional); mask++ {
		addr := Address{"street": values["street"], "city": values["city"]}

		for i, name := range optional {
			if mask&(1<<i) != 0 {
				addr[name] = values[name]
			}
		}

		got, err := Render(addr, schema)
		if err != nil {
			t.Fatalf("mask %b: Render() error = %v", mask, err)
		}

		text := got.Text

		if strings.Contains(text, ",,") || strings.Contains(text, ", ,") || strings.Contains(text, "  ") {
			t.Errorf("mask %b: doubled separator in %q", mask, text)
		}

		if strings.HasSuffix(text, ",") || strings.HasSuffix(text, " ") {
			t.Errorf("mask %b: trailing separator in %q", mask, text)
		}

		if strings.HasPrefix(text, ",") || strings.HasPrefix(text, " ") {
			t.Errorf("mask %b: leading separator in %q", mask, text)
		}
	}
}

func TestRenderStructured(t *testing.T) {
	reg := Builtin()

	addr := Address{
		"street":      "123 Main St",
		"city":        "Springfield",
		"region":      "IL",
		"postal_code": "62704",
		"stray":       "dropped",
	}

	got, err := Render(addr, mustSchema(t, reg, "structured_us"))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := Address{
		"street":      "123 Main St",
		"city":        "Springfield",
		"region":      "IL",
		"postal_code": "62704",
	}

	if diff := cmp.Diff(want, got.Fields); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderIncomplete(t *testing.T) {
	reg := Builtin()

	_, err := Render(Address{"street": "123 Main St"}, mustSchema(t, reg, "us_freeform"))

	var incomplete *IncompleteAddressError
	if !errors.As(err, &incomplete) {
		t.Fatalf("Render() error = %v, want *IncompleteAddressError", err)
	}

	want := []string{"city", "region", "postal_code"}
	if diff := cmp.Diff(want, incomplete.Missing); diff != "" {
		t.Errorf("Missing mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderPatternUnused(t *testing.T) {
	// Render trusts prior validation for everything except presence.
	schema := &Schema{
		ID:   "zip_only",
		Kind: KindFreeform,
		Fields: []Field{
			{Name: "postal_code", Required: true, Pattern: regexp.MustCompile(`^\d{5}$`)},
		},
	}

	got, err := Render(Address{"postal_code": "not-a-zip"}, schema)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if got.Text != "not-a-zip" {
		t.Errorf("Render() = %q", got.Text)
	}
}
