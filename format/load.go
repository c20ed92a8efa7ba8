// Copyright 2026 The Postal Authors
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// schemaDef is the YAML shape of a format definition file:
//
//	formats:
//	  - id: structured_de
//	    kind: structured
//	    fields:
//	      - name: street
//	        required: true
//	      - name: postal_code
//	        required: true
//	        pattern: '^\d{5}$'
//	        aliases: [plz, zip]
//	      - name: city
//	        required: true
type schemaDef struct {
	ID     string     `yaml:"id"`
	Kind   string     `yaml:"kind"`
	Fields []fieldDef `yaml:"fields"`
}

type fieldDef struct {
	Name     string   `yaml:"name"`
	Required bool     `yaml:"required"`
	Pattern  string   `yaml:"pattern"`
	MaxLen   int      `yaml:"max_len"`
	Aliases  []string `yaml:"aliases"`
	Sep      string   `yaml:"sep"`
	Default  string   `yaml:"default"`
}

type defsFile struct {
	Formats []schemaDef `yaml:"formats"`
}

// LoadFile reads format definitions from a YAML file. The definitions are
// handed to NewRegistry by the caller, typically appended to the builtins.
func LoadFile(path string) ([]*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening format definitions: %w", err)
	}
	defer f.Close()

	defs, err := ParseDefs(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return defs, nil
}

// ParseDefs decodes YAML format definitions into schemas.
func ParseDefs(r io.Reader) ([]*Schema, error) {
	var file defsFile

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decoding format definitions: %w", err)
	}

	schemas := make([]*Schema, 0, len(file.Formats))

	for _, def := range file.Formats {
		s := &Schema{ID: def.ID, Kind: Kind(def.Kind)}

		for _, fd := range def.Fields {
			field := Field{
				Name:     fd.Name,
				Required: fd.Required,
				MaxLen:   fd.MaxLen,
				Aliases:  fd.Aliases,
				Sep:      fd.Sep,
				Default:  fd.Default,
			}

			if fd.Pattern != "" {
				p, err := regexp.Compile(fd.Pattern)
				if err != nil {
					return nil, fmt.Errorf("format %q, field %q: %w", def.ID, fd.Name, err)
				}

				field.Pattern = p
			}

			s.Fields = append(s.Fields, field)
		}

		if err := s.check(); err != nil {
			return nil, err
		}

		schemas = append(schemas, s)
	}

	return schemas, nil
}
