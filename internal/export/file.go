// Copyright (c) 2026 Leetlist Team
// Leetlist - personal wordlist generator
// This source code is licensed under the MIT license found in the LICENSE file.

package export

import (
	"os"
	"path/filepath"
	"runtime"
)

// filePerm is 0600 on Unix-like systems. On Windows, where POSIX permissions
// are not meaningful, it falls back to 0644.
func filePerm() os.FileMode {
	if runtime.GOOS == "windows" {
		return 0o644
	}
	return 0o600
}

// writeFile writes words to path via a temp file in the same directory and
// renames it into place, so readers never see a partial wordlist.
func writeFile(path string, words []string, c Compression) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	f, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	// Removing after a successful rename fails harmlessly.
	defer func() { _ = os.Remove(tmp) }()

	if err := WriteEncoded(f, words, c); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(filePerm()); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
