// Copyright 2026 The Postal Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the registered address formats",
	RunE: func(_ *cobra.Command, _ []string) error {
		reg, err := buildRegistry()
		if err != nil {
			return err
		}

		a, b, c := strings.Repeat("─", 20), strings.Repeat("─", 10), strings.Repeat("─", 56)
		fmt.Println("Registered formats:")
		fmt.Printf("╭─%-20s─┬─%-10s─┬─%-56s╮\n", a, b, c)
		fmt.Printf("│ %-20s │ %-10s │ %-56s│\n", "Id", "Kind", "Fields")
		fmt.Printf("├─%-20s─┼─%-10s─┼─%-56s┤\n", a, b, c)

		for _, id := range reg.List() {
			s, err := reg.Get(id)
			if err != nil {
				return err
			}

			names := make([]string, len(s.Fields))
			for i, f := range s.Fields {
				names[i] = f.Name
				if f.Required {
					names[i] += "*"
				}
			}

			fmt.Printf("│ %-20s │ %-10s │ %-56s│\n", s.ID, s.Kind, strings.Join(names, ", "))
		}

		fmt.Printf("╰─%-20s─┴─%-10s─┴─%-56s╯\n", a, b, c)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
