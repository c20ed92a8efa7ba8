// Copyright 2026 The Postal Authors
// SPDX-License-Identifier: Apache-2.0

package format

import "regexp"

var (
	usRegionPattern   = regexp.MustCompile(`^[A-Za-z]{2}$`)
	usZipPattern      = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	ukPostcodePattern = regexp.MustCompile(`^[A-Za-z]{1,2}\d[A-Za-z\d]? ?\d[A-Za-z]{2}$`)
	frPostalPattern   = regexp.MustCompile(`^\d{5}$`)
)

// BuiltinSchemas returns a fresh copy of the built-in format definitions.
// Freeform formats come first so Detect prefers the specific ones; the
// generic "freeform" catch-all is registered after them.
func BuiltinSchemas() []*Schema {
	return []*Schema{
		{
			ID:   "us_freeform",
			Kind: KindFreeform,
			Fields: []Field{
				{Name: "street", Required: true, MaxLen: 200},
				{Name: "city", Required: true, Sep: ", ", MaxLen: 100, Aliases: []string{"town"}},
				{Name: "region", Required: true, Sep: ", ", Pattern: usRegionPattern, Aliases: []string{"state", "province"}},
				{Name: "postal_code", Required: true, Sep: " ", Pattern: usZipPattern, Aliases: []string{"zip", "postcode"}},
				{Name: "country", Sep: ", ", MaxLen: 100},
			},
		},
		{
			ID:   "uk_freeform",
			Kind: KindFreeform,
			Fields: []Field{
				{Name: "street", Required: true, MaxLen: 200},
				{Name: "city", Required: true, Sep: ", ", MaxLen: 100, Aliases: []string{"town"}},
				{Name: "postcode", Required: true, Sep: ", ", Pattern: ukPostcodePattern, Aliases: []string{"postal_code", "zip"}},
				{Name: "country", Sep: ", ", MaxLen: 100},
			},
		},
		{
			ID:   "freeform",
			Kind: KindFreeform,
			Fields: []Field{
				{Name: "street", Required: true, MaxLen: 200},
				{Name: "city", Required: true, Sep: ", ", MaxLen: 100, Aliases: []string{"town"}},
				{Name: "country", Required: true, Sep: ", ", MaxLen: 100},
			},
		},
		{
			ID:   "structured_us",
			Kind: KindStructured,
			Fields: []Field{
				{Name: "street", Required: true, MaxLen: 200},
				{Name: "unit", MaxLen: 50, Aliases: []string{"apt", "suite"}},
				{Name: "city", Required: true, MaxLen: 100, Aliases: []string{"town"}},
				{Name: "region", Required: true, Pattern: usRegionPattern, Aliases: []string{"state", "province"}},
				{Name: "postal_code", Required: true, Pattern: usZipPattern, Aliases: []string{"zip", "postcode"}},
				{Name: "country", MaxLen: 100},
			},
		},
		{
			ID:   "structured_uk",
			Kind: KindStructured,
			Fields: []Field{
				{Name: "street", Required: true, MaxLen: 200},
				{Name: "city", Required: true, MaxLen: 100, Aliases: []string{"town"}},
				{Name: "postcode", Required: true, Pattern: ukPostcodePattern, Aliases: []string{"postal_code", "zip"}},
				{Name: "country", MaxLen: 100},
			},
		},
		{
			ID:   "structured_fr_strict",
			Kind: KindStructured,
			Fields: []Field{
				{Name: "street", MaxLen: 200},
				{Name: "postal_code", Required: true, Pattern: frPostalPattern, Aliases: []string{"postcode", "zip"}},
				{Name: "city", Required: true, MaxLen: 100, Aliases: []string{"town"}},
				{Name: "country", MaxLen: 100},
			},
		},
		{
			ID:   "international",
			Kind: KindStructured,
			Fields: []Field{
				{Name: "street", Required: true, MaxLen: 200},
				{Name: "city", Required: true, MaxLen: 100, Aliases: []string{"town"}},
				{Name: "region", Aliases: []string{"state", "province"}},
				{Name: "postal_code", Aliases: []string{"zip", "postcode"}},
				{Name: "country", Required: true, MaxLen: 100},
			},
		},
	}
}

// Builtin returns a registry holding the built-in formats. Each call builds
// its own registry, so callers can extend it without sharing state.
func Builtin() *Registry {
	return NewRegistry(BuiltinSchemas()...)
}
