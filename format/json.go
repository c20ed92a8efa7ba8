// Copyright 2026 The Postal Authors
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// EncodeAddress marshals an Address as a JSON object with keys in schema
// field order. Keys outside the schema are ignored.
func EncodeAddress(a Address, s *Schema) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	first := true

	for _, f := range s.Fields {
		v, ok := a[f.Name]
		if !ok {
			continue
		}

		if !first {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, fmt.Errorf("encoding field name %q: %w", f.Name, err)
		}

		val, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encoding field %q: %w", f.Name, err)
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)

		first = false
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// DecodeFields unmarshals a JSON object into a loosely-typed field mapping,
// ready for ParseFields.
func DecodeFields(data []byte) (map[string]string, error) {
	var m map[string]string

	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding address fields: %w", err)
	}

	return m, nil
}
