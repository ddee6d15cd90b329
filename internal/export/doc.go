// Copyright (c) 2026 Leetlist Team
// Leetlist - personal wordlist generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package export writes finished wordlists to their destinations: local
// files (optionally gzip or zstd compressed), stdout, the system clipboard,
// or a remote host over SFTP.
//
// Local and remote writes go through a temporary file that is renamed into
// place, and the result is readable by the owner only.
package export
