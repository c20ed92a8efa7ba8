// Copyright 2026 The Postal Authors
// SPDX-License-Identifier: Apache-2.0

package batch

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jcodagnone/postal/format"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// Runner converts every row of a Repository from Source to Target, writing
// one rendering per line. A row that fails to convert is logged and counted;
// the run keeps going.
type Runner struct {
	Registry *format.Registry
	Source   string
	Target   string
	Strict   bool
}

// Metrics accumulates the outcome of a run.
type Metrics struct {
	Rows      int
	Converted int
	Failed    int
}

// Run processes every row. The returned error covers the run itself (bad
// format ids, unreadable input, unwritable output); per-row conversion
// failures only show up in the metrics.
func (r *Runner) Run(repo Repository, out io.Writer) (*Metrics, error) {
	src, err := r.Registry.Get(r.Source)
	if err != nil {
		return nil, err
	}

	tgt, err := r.Registry.Get(r.Target)
	if err != nil {
		return nil, err
	}

	n, err := repo.Count()
	if err != nil {
		return nil, err
	}

	var bar *progressbar.ProgressBar
	if isatty.IsTerminal(os.Stderr.Fd()) {
		bar = progressbar.NewOptions(n,
			progressbar.OptionSetDescription("Converting "+r.Source+" to "+r.Target),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	parser := format.Parser{Strict: r.Strict}
	metrics := &Metrics{}

	err = repo.Each(func(row map[string]string) error {
		metrics.Rows++

		rendered, convErr := r.Registry.ConvertWith(parser, inputFor(row, src), r.Source, r.Target)

		if bar != nil {
			if err := bar.Add(1); err != nil {
				return fmt.Errorf("updating progress bar: %w", err)
			}
		}

		if convErr != nil {
			metrics.Failed++
			log.Printf("row %d: %v", metrics.Rows, convErr)

			return nil
		}

		metrics.Converted++

		return writeRendering(out, rendered, tgt)
	})
	if err != nil {
		return metrics, err
	}

	return metrics, nil
}

// inputFor decides how a CSV row enters the converter: a single-column file
// against a freeform source is treated as free-text lines, anything else as
// a field mapping.
func inputFor(row map[string]string, src *format.Schema) format.Input {
	if src.Kind == format.KindFreeform && len(row) == 1 {
		for _, v := range row {
			return format.Text(v)
		}
	}

	return format.Fields(row)
}

func writeRendering(out io.Writer, rendered format.Rendered, tgt *format.Schema) error {
	if rendered.IsText() {
		if _, err := fmt.Fprintln(out, rendered.Text); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}

		return nil
	}

	data, err := format.EncodeAddress(rendered.Fields, tgt)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(out, string(data)); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}
