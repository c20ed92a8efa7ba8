// Copyright 2026 The Postal Authors
// SPDX-License-Identifier: Apache-2.0

package format

// Detect guesses the format of a free-text address: the first registered
// freeform format the input parses and validates against. Registration
// order is the tie-break, so more specific formats should be registered
// before catch-alls.
func (r *Registry) Detect(raw string) (string, bool) {
	for _, id := range r.ids {
		s := r.schemas[id]
		if s.Kind != KindFreeform {
			continue
		}

		addr, err := Parse(raw, s)
		if err != nil {
			continue
		}

		if Validate(addr, s).Valid() {
			return id, true
		}
	}

	return "", false
}

// DetectFields guesses the format of a field mapping: the first registered
// structured format whose required fields are all covered and valid.
func (r *Registry) DetectFields(in map[string]string) (string, bool) {
	for _, id := range r.ids {
		s := r.schemas[id]
		if s.Kind != KindStructured {
			continue
		}

		addr, err := ParseFields(in, s)
		if err != nil {
			continue
		}

		if Validate(addr, s).Valid() {
			return id, true
		}
	}

	return "", false
}
