// Copyright (c) 2026 Leetlist Team
// Leetlist - personal wordlist generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package strength wraps the external password strength estimator.
//
// The rest of the application only depends on the Scorer interface and the
// Result shape: a 0-4 score, a warning, suggestions, and human readable crack
// time estimates for four attacker scenarios. Zxcvbn is the production
// implementation.
package strength
