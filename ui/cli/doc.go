// Copyright (c) 2026 Leetlist Team
// Leetlist - personal wordlist generator
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the leetlist command line using Cobra. It loads the
// configuration, wires the generator, history store and logger, and hands
// the actual work to the core facade. Running without a subcommand starts
// the TUI.
package cli
