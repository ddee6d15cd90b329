// Copyright (c) 2026 Leetlist Team
// Leetlist - personal wordlist generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package mutate expands one seed word into password guesses.
//
// Variants applies at most one leetspeak substitution per result; it never
// combines substitutions at several positions. ExpandWithYears appends every
// year of a YearRange. Mutate combines the two: each variant on its own plus
// each variant followed by each year.
//
// For "cat" and the default table with years [2020, 2022):
//
//	cat  c@t  c4t  ca7
//	cat2020  c@t2020  c4t2020  ca72020
//	cat2021  c@t2021  c4t2021  ca72021
//
// All functions are pure; the only input besides their arguments is the
// immutable leet.Table the Engine was built with.
package mutate
