// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The MEP Bracket Tool Authors

// Command bracketctl drives the bracket tool API from a terminal: account
// login, library imports, project checks and Golden Thread PDF exports.
package main

import (
	"os"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newRootCmd(newCLI(os.Stdin, os.Stdout)).Execute(); err != nil {
		// cobra has already printed the error
		os.Exit(1)
	}
}
