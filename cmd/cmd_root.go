// Copyright 2026 The Postal Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/jcodagnone/postal/format"
	"github.com/spf13/cobra"
)

type logWriter struct {
	writer io.Writer
}

func (w *logWriter) Write(bytes []byte) (int, error) {
	return fmt.Fprintf(w.writer, "%s %s", time.Now().Format("2006-01-02 15:04:05"), string(bytes))
}

func init() {
	log.SetFlags(0)
	log.SetOutput(&logWriter{writer: os.Stderr})

	rootCmd.PersistentFlags().StringVar(&formatsFile, "formats", "", "YAML file with additional format definitions")
	rootCmd.PersistentFlags().BoolVar(&strictInput, "strict", false, "reject unrecognized input fields instead of dropping them")
}

var (
	formatsFile string
	strictInput bool
)

var rootCmd = &cobra.Command{
	Use:   "postal",
	Short: "convert and validate postal addresses between formats",
	Long: `
postal converts mailing addresses between named representations (a single
free-text line or a structured field mapping) and validates them against a
format's declared shape. It performs syntactic transformation only: nothing
is checked against a postal authority's registry.
`,
	SilenceUsage: true,
}

var Version = "dev"

// Execute runs the CLI and maps the library's error kinds to distinct exit
// codes so shell scripts can tell failures apart.
func Execute(version string) {
	Version = version

	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case format.IsUnknownFormatError(err):
		return 2
	case format.IsParseError(err):
		return 3
	case format.IsValidationError(err):
		return 4
	case format.IsIncompleteAddressError(err):
		return 5
	}

	return 1
}

// buildRegistry assembles the built-in formats plus any user-supplied
// definitions file.
func buildRegistry() (*format.Registry, error) {
	schemas := format.BuiltinSchemas()

	if formatsFile != "" {
		extra, err := format.LoadFile(formatsFile)
		if err != nil {
			return nil, err
		}

		known := make(map[string]bool, len(schemas))
		for _, s := range schemas {
			known[s.ID] = true
		}

		for _, s := range extra {
			if known[s.ID] {
				return nil, fmt.Errorf("format %q is already defined", s.ID)
			}

			known[s.ID] = true
		}

		schemas = append(schemas, extra...)
	}

	return format.NewRegistry(schemas...), nil
}

// readInput returns the positional argument, or stdin when absent.
func readInput(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}

	return string(data), nil
}
