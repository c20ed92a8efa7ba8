// Copyright 2026 The Postal Authors
// SPDX-License-Identifier: Apache-2.0

package batch

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jcodagnone/postal/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memRepository feeds rows from memory, keeping runner tests off the
// database.
type memRepository struct {
	rows []map[string]string
}

func (r *memRepository) Count() (int, error) {
	return len(r.rows), nil
}

func (r *memRepository) Each(fn func(row map[string]string) error) error {
	for _, row := range r.rows {
		if err := fn(row); err != nil {
			return err
		}
	}

	return nil
}

func TestRunnerRun(t *testing.T) {
	repo := &memRepository{rows: []map[string]string{
		{"street": "123 Main St", "city": "Springfield", "region": "IL", "postal_code": "62704"},
		{"street": "742 Evergreen Terrace", "city": "Springfield", "region": "IL", "postal_code": "62701"},
		{"street": "10 Downing St", "city": "London"}, // no region: fails
	}}

	var out bytes.Buffer

	runner := &Runner{
		Registry: format.Builtin(),
		Source:   "structured_us",
		Target:   "us_freeform",
	}

	metrics, err := runner.Run(repo, &out)
	require.NoError(t, err)

	assert.Equal(t, 3, metrics.Rows)
	assert.Equal(t, 2, metrics.Converted)
	assert.Equal(t, 1, metrics.Failed)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "123 Main St, Springfield, IL 62704", lines[0])
	assert.Equal(t, "742 Evergreen Terrace, Springfield, IL 62701", lines[1])
}

func TestRunnerFreeformSingleColumn(t *testing.T) {
	repo := &memRepository{rows: []map[string]string{
		{"address": "123 Main St, Springfield, IL 62704"},
	}}

	var out bytes.Buffer

	runner := &Runner{
		Registry: format.Builtin(),
		Source:   "us_freeform",
		Target:   "structured_us",
	}

	metrics, err := runner.Run(repo, &out)
	require.NoError(t, err)
	assert.Equal(t, 1, metrics.Converted)

	assert.JSONEq(t,
		`{"street":"123 Main St","city":"Springfield","region":"IL","postal_code":"62704"}`,
		strings.TrimSpace(out.String()))
}

func TestRunnerUnknownFormat(t *testing.T) {
	runner := &Runner{
		Registry: format.Builtin(),
		Source:   "martian",
		Target:   "us_freeform",
	}

	_, err := runner.Run(&memRepository{}, &bytes.Buffer{})
	assert.True(t, format.IsUnknownFormatError(err))
}
