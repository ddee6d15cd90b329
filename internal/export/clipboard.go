// Copyright (c) 2026 Leetlist Team
// Leetlist - personal wordlist generator
// This source code is licensed under the MIT license found in the LICENSE file.

package export

import (
	"strings"

	"github.com/atotto/clipboard"
)

// clipboardWriteAll is swapped out by tests; CI runners have no clipboard.
var clipboardWriteAll = clipboard.WriteAll

// CopyToClipboard places the wordlist on the system clipboard, one word per
// line.
func CopyToClipboard(words []string) error {
	var b strings.Builder
	if err := WriteLines(&b, words); err != nil {
		return err
	}
	return clipboardWriteAll(b.String())
}

// ClipboardAvailable reports whether a clipboard backend was found.
func ClipboardAvailable() bool {
	return !clipboard.Unsupported
}
