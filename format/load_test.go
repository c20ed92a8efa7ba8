// Copyright 2026 The Postal Authors
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const defsYAML = `
formats:
  - id: structured_de
    kind: structured
    fields:
      - name: street
        required: true
      - name: postal_code
        required: true
        pattern: '^\d{5}$'
        aliases: [plz, zip]
      - name: city
        required: true
      - name: country
        default: Deutschland
`

func TestParseDefs(t *testing.T) {
	schemas, err := ParseDefs(strings.NewReader(defsYAML))
	if err != nil {
		t.Fatalf("ParseDefs() error = %v", err)
	}

	if len(schemas) != 1 {
		t.Fatalf("ParseDefs() = %d schemas, want 1", len(schemas))
	}

	reg := NewRegistry(append(BuiltinSchemas(), schemas...)...)

	addr, err := ParseFields(map[string]string{
		"street": "Unter den Linden 77",
		"plz":    "10117",
		"city":   "Berlin",
	}, schemas[0])
	if err != nil {
		t.Fatalf("ParseFields() error = %v", err)
	}

	if addr["postal_code"] != "10117" {
		t.Errorf(`postal_code = %q, want "10117"`, addr["postal_code"])
	}

	res, err := reg.ValidateIn(addr, "structured_de")
	if err != nil {
		t.Fatalf("ValidateIn() error = %v", err)
	}

	if !res.Valid() {
		t.Errorf("ValidateIn() issues = %v", res.Issues)
	}
}

func TestParseDefsErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "bad pattern",
			yaml: "formats:\n  - id: x\n    kind: structured\n    fields:\n      - name: a\n        pattern: '['\n",
		},
		{
			name: "bad kind",
			yaml: "formats:\n  - id: x\n    kind: tabular\n    fields:\n      - name: a\n",
		},
		{
			name: "unknown yaml key",
			yaml: "formats:\n  - id: x\n    kind: structured\n    columns: []\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseDefs(strings.NewReader(tt.yaml)); err == nil {
				t.Error("ParseDefs() expected error, got nil")
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "formats.yaml")
	if err := os.WriteFile(path, []byte(defsYAML), 0o600); err != nil {
		t.Fatal(err)
	}

	schemas, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if len(schemas) != 1 || schemas[0].ID != "structured_de" {
		t.Errorf("LoadFile() = %+v", schemas)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadFile(missing) expected error, got nil")
	}
}
