// Copyright 2026 The Postal Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/duckdb/duckdb-go/v2" // register duckdb driver
	"github.com/jcodagnone/postal/batch"
	"github.com/spf13/cobra"
)

var (
	batchFrom   string
	batchTo     string
	batchOutput string
)

var batchCmd = &cobra.Command{
	Use:   "batch <input.csv>",
	Short: "Convert every address in a CSV file",
	Long: `
Bulk-convert a CSV file of addresses. Column headers are matched against the
source format's field names and aliases; when the source format is freeform
and the file has a single column, each row is parsed as a free-text line.

Rows that fail to convert are logged and counted, the rest keep flowing.
`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		reg, err := buildRegistry()
		if err != nil {
			return err
		}

		db, err := sql.Open("duckdb", "")
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer db.Close()

		repo, err := batch.NewCSVRepository(db, args[0])
		if err != nil {
			return err
		}

		out := os.Stdout

		if batchOutput != "-" {
			f, err := os.Create(batchOutput)
			if err != nil {
				return fmt.Errorf("creating output file: %w", err)
			}
			defer f.Close()

			out = f
		}

		runner := &batch.Runner{
			Registry: reg,
			Source:   batchFrom,
			Target:   batchTo,
			Strict:   strictInput,
		}

		metrics, err := runner.Run(repo, out)
		if err != nil {
			return err
		}

		log.Printf("%d rows: %d converted, %d failed", metrics.Rows, metrics.Converted, metrics.Failed)

		if metrics.Failed > 0 {
			return fmt.Errorf("%d of %d rows failed to convert", metrics.Failed, metrics.Rows)
		}

		return nil
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchFrom, "from", "", "source format identifier")
	batchCmd.Flags().StringVar(&batchTo, "to", "", "target format identifier")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "-", "output file, - for stdout")

	for _, flag := range []string{"from", "to"} {
		if err := batchCmd.MarkFlagRequired(flag); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(batchCmd)
}
