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
	validateFormat string
	validateJSON   bool
)

var validateCmd = &cobra.Command{
	Use:   "validate [address]",
	Short: "Check an address against a format's declared shape",
	Long: `
Validate an address against one registered format. Prints "ok" when the
address conforms; otherwise every failing field is reported, in the format's
declared field order.
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		reg, err := buildRegistry()
		if err != nil {
			return err
		}

		schema, err := reg.Get(validateFormat)
		if err != nil {
			return err
		}

		raw, err := readInput(args)
		if err != nil {
			return err
		}

		parser := format.Parser{Strict: strictInput}

		var addr format.Address

		if validateJSON {
			fields, err := format.DecodeFields([]byte(raw))
			if err != nil {
				return err
			}

			addr, err = parser.Fields(fields, schema)
			if err != nil {
				return err
			}
		} else {
			addr, err = parser.Text(strings.TrimSpace(raw), schema)
			if err != nil {
				return err
			}
		}

		res := format.Validate(addr, schema)
		if !res.Valid() {
			return res.Err()
		}

		fmt.Println("ok")

		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateFormat, "format", "", "format identifier to validate against")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "read the input as a JSON object of fields")

	if err := validateCmd.MarkFlagRequired("format"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(validateCmd)
}
