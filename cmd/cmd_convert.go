// Copyright 2026 The Postal Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/jcodagnone/postal/format"
	"github.com/spf13/cobra"
)

var (
	convertFrom string
	convertTo   string
	convertJSON bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [address]",
	Short: "Convert an address from one format to another",
	Long: `
Convert an address between registered formats. The address is taken from the
positional argument, or from stdin when absent. With --json the input is a
JSON object of address fields; otherwise it is a free-text line.

With --from auto the source format is detected among the registered formats.
`,
	Example: `  postal convert --from us_freeform --to structured_us "123 Main St, Springfield, IL 62704"
  echo '{"street":"10 Downing St","city":"London","postcode":"SW1A 2AA"}' | postal convert --json --from structured_uk --to uk_freeform`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		reg, err := buildRegistry()
		if err != nil {
			return err
		}

		raw, err := readInput(args)
		if err != nil {
			return err
		}

		var in format.Input

		from := convertFrom

		if convertJSON {
			fields, err := format.DecodeFields([]byte(raw))
			if err != nil {
				return err
			}

			in = format.Fields(fields)

			if from == "auto" {
				id, ok := reg.DetectFields(fields)
				if !ok {
					return fmt.Errorf("cannot detect the format of the input fields")
				}

				from = id
			}
		} else {
			line := strings.TrimSpace(raw)
			in = format.Text(line)

			if from == "auto" {
				id, ok := reg.Detect(line)
				if !ok {
					return fmt.Errorf("cannot detect the format of %q", line)
				}

				from = id
			}
		}

		out, err := reg.ConvertWith(format.Parser{Strict: strictInput}, in, from, convertTo)
		if err != nil {
			return err
		}

		if out.IsText() {
			fmt.Println(out.Text)

			return nil
		}

		schema, err := reg.Get(out.Format)
		if err != nil {
			return err
		}

		data, err := format.EncodeAddress(out.Fields, schema)
		if err != nil {
			return err
		}

		fmt.Println(string(data))

		return nil
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertFrom, "from", "auto", "source format identifier, or auto")
	convertCmd.Flags().StringVar(&convertTo, "to", "", "target format identifier")
	convertCmd.Flags().BoolVar(&convertJSON, "json", false, "read the input as a JSON object of fields")

	if err := convertCmd.MarkFlagRequired("to"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(convertCmd)
}
