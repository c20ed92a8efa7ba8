// Copyright 2026 The Postal Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"log"

	"github.com/jcodagnone/postal/server"
	"github.com/spf13/cobra"
)

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the converter over HTTP",
	RunE: func(_ *cobra.Command, _ []string) error {
		reg, err := buildRegistry()
		if err != nil {
			return err
		}

		log.Printf("listening on %s", serveListen)

		return server.New(reg).Run(serveListen)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", ":8080", "address to listen on")

	rootCmd.AddCommand(serveCmd)
}
