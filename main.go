// Copyright 2026 The Postal Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/jcodagnone/postal/cmd"
)

var Version = "development"

func main() {
	cmd.Execute(Version)
}
