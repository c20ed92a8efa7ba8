// Copyright 2026 The Postal Authors
// SPDX-License-Identifier: Apache-2.0

// Package batch bulk-converts address files through an embedded database.
package batch

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
)

// Repository supplies the input rows of a bulk conversion as loosely-typed
// field mappings keyed by column name.
type Repository interface {
	// Count returns the number of input rows.
	Count() (int, error)
	// Each invokes fn for every input row, in file order.
	Each(fn func(row map[string]string) error) error
}

type csvRepository struct {
	db   *sql.DB
	path string
}

// NewCSVRepository reads rows from a CSV file through duckdb's CSV reader.
// Headers become field names; every value is read as text.
func NewCSVRepository(db *sql.DB, path string) (Repository, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("input file: %w", err)
	}

	return &csvRepository{db: db, path: path}, nil
}

// source is the duckdb table function for the input file. The path is
// embedded in the query because table functions do not take placeholders.
func (r *csvRepository) source() string {
	return fmt.Sprintf("read_csv_auto('%s', all_varchar=true)", strings.ReplaceAll(r.path, "'", "''"))
}

func (r *csvRepository) Count() (int, error) {
	var n int

	if err := r.db.QueryRow("SELECT count(*) FROM " + r.source()).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting rows of %s: %w", r.path, err)
	}

	return n, nil
}

func (r *csvRepository) Each(fn func(row map[string]string) error) error {
	rows, err := r.db.Query("SELECT * FROM " + r.source())
	if err != nil {
		return fmt.Errorf("reading %s: %w", r.path, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("reading columns of %s: %w", r.path, err)
	}

	values := make([]sql.NullString, len(cols))
	ptrs := make([]any, len(cols))

	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return fmt.Errorf("scanning row of %s: %w", r.path, err)
		}

		row := make(map[string]string, len(cols))

		for i, col := range cols {
			if values[i].Valid && values[i].String != "" {
				row[col] = values[i].String
			}
		}

		if err := fn(row); err != nil {
			return err
		}
	}

	return rows.Err()
}
