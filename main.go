// Copyright (c) 2026 Leetlist Team
// Leetlist - personal wordlist generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Leetlist.
//
// Usage:
//
//	go run . [flags]
//	./leetlist generate alice --seed pet=rex -o wordlist.txt
//
// Without a subcommand the interactive TUI starts. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/leetlist/internal/logging"
	"github.com/toeirei/leetlist/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
