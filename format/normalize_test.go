// Copyright 2026 The Postal Authors
// SPDX-License-Identifier: Apache-2.0

package format

import "testing"

func TestFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Región", "region"},
		{"  Straße  ", "straße"},
		{"POSTAL_CODE", "postal_code"},
		{"São Paulo", "sao paulo"},
		{"city", "city"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Fold(tt.in); got != tt.want {
				t.Errorf("Fold(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCollapse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  123   Main St ", "123 Main St"},
		{"\tSpringfield\n", "Springfield"},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := collapse(tt.in); got != tt.want {
				t.Errorf("collapse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
