// Copyright (c) 2026 Leetlist Team
// Leetlist - personal wordlist generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package leet holds the substitution table used to derive "leetspeak"
// variants of seed words. A Table maps a lowercase letter to the characters
// that may stand in for it (a -> @, 4). Tables are values: once built they
// are never mutated, so one table can be shared by any number of goroutines.
//
// The reference table is returned by Default. Custom tables can be read from
// YAML documents of the form
//
//	a: ["@", "4"]
//	e: ["3"]
//
// via Parse or Load.
package leet
