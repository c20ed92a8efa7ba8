// Copyright 2026 The Postal Authors
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold normalizes a string by removing accents, lowercasing, and trimming
// spaces. Key and alias matching goes through it, so "Región" finds "region".
func Fold(s string) string {
	s, _, _ = transform.String(
		transform.Chain(
			norm.NFD,
			runes.Remove(runes.In(unicode.Mn)),
			norm.NFC,
		),
		strings.TrimSpace(strings.ToLower(s)),
	)

	return s
}

// collapse trims a field value and squeezes interior whitespace runs to a
// single space.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
