// Copyright 2026 The Postal Authors
// SPDX-License-Identifier: Apache-2.0

package format

// Input is a raw address handed to Convert: either a free-text line (Text)
// or a loosely-typed field mapping (Fields).
type Input interface {
	isInput()
}

// Text is free-text address input.
type Text string

func (Text) isInput() {}

// Fields is mapping address input.
type Fields map[string]string

func (Fields) isInput() {}

// Convert transforms raw input from the source format into the target
// format's representation using the zero-value (permissive) Parser.
//
// Pipeline: resolve both schemas, parse against the source, validate the
// parsed address (conversion refuses to proceed from an invalid source),
// map fields into the target vocabulary, validate against the target, and
// render. Conversion is a pure function of its inputs and the registry:
// identical calls yield identical results or identical ordered failures.
func (r *Registry) Convert(in Input, sourceID, targetID string) (Rendered, error) {
	return r.ConvertWith(Parser{}, in, sourceID, targetID)
}

// ConvertWith is Convert with an explicit Parser, for strict input handling.
func (r *Registry) ConvertWith(p Parser, in Input, sourceID, targetID string) (Rendered, error) {
	src, err := r.Get(sourceID)
	if err != nil {
		return Rendered{}, err
	}

	tgt, err := r.Get(targetID)
	if err != nil {
		return Rendered{}, err
	}

	var addr Address

	switch v := in.(type) {
	case Text:
		addr, err = p.Text(string(v), src)
	case Fields:
		addr, err = p.Fields(map[string]string(v), src)
	default:
		addr, err = nil, &ParseError{Offset: -1, Reason: "unsupported input kind"}
	}

	if err != nil {
		return Rendered{}, err
	}

	if res := Validate(addr, src); !res.Valid() {
		return Rendered{}, res.Err()
	}

	mapped := mapFields(addr, tgt)

	if res := Validate(mapped, tgt); !res.Valid() {
		if missing := requiredMissing(res); len(missing) > 0 {
			return Rendered{}, &IncompleteAddressError{Missing: missing}
		}

		return Rendered{}, res.Err()
	}

	return Render(mapped, tgt)
}

// mapFields translates an address into the target schema's vocabulary:
// identity where names coincide, declared aliases otherwise, schema defaults
// as a last resort. Source fields with no place in the target are dropped.
func mapFields(a Address, tgt *Schema) Address {
	out := Address{}

	for _, f := range tgt.Fields {
		if v, ok := a[f.Name]; ok {
			out[f.Name] = v

			continue
		}

		mapped := false

		for _, alias := range f.Aliases {
			if v, ok := a[alias]; ok {
				out[f.Name] = v
				mapped = true

				break
			}
		}

		if !mapped && f.Default != "" {
			out[f.Name] = f.Default
		}
	}

	return out
}

// requiredMissing extracts the required-field-missing issues, in order.
func requiredMissing(res ValidationResult) []string {
	var missing []string

	for _, iss := range res.Issues {
		if iss.Code == CodeRequired {
			missing = append(missing, iss.Field)
		}
	}

	return missing
}
