// Copyright (c) 2026 Leetlist Team
// Leetlist - personal wordlist generator
// This source code is licensed under the MIT license found in the LICENSE file.

package export

import (
	"fmt"
	"net"
	"net/url"
	"path/filepath"
	"strings"
)

// DefaultPath is where wordlists are saved when nothing else is configured.
const DefaultPath = "wordlist.txt"

// Kind identifies where a wordlist is written.
type Kind int

const (
	KindNone Kind = iota
	KindFile
	KindStdout
	KindClipboard
	KindSFTP
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindStdout:
		return "stdout"
	case KindClipboard:
		return "clipboard"
	case KindSFTP:
		return "sftp"
	default:
		return "none"
	}
}

// Compression applied to file and remote destinations, chosen by suffix.
type Compression int

const (
	CompressNone Compression = iota
	CompressGzip
	CompressZstd
)

// Destination is a parsed output target.
type Destination struct {
	Kind        Kind
	Path        string // local or remote path
	User        string // sftp only
	Host        string // sftp only, always host:port
	Compression Compression
	raw         string
}

// String returns the destination as the user wrote it.
func (d Destination) String() string {
	if d.raw != "" {
		return d.raw
	}
	return d.Path
}

// ParseDestination interprets s:
//
//	""                          no-op
//	"-"                         stdout
//	"clipboard:"                system clipboard
//	"sftp://user@host:22/path"  remote file over SFTP
//	anything else               local file path
//
// File and remote paths ending in .gz or .zst are compressed.
func ParseDestination(s string) (Destination, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return Destination{Kind: KindNone}, nil
	case s == "-":
		return Destination{Kind: KindStdout, raw: s}, nil
	case s == "clipboard:" || s == "clipboard":
		return Destination{Kind: KindClipboard, raw: s}, nil
	case strings.HasPrefix(s, "sftp://"):
		return parseSFTP(s)
	}
	return Destination{
		Kind:        KindFile,
		Path:        filepath.Clean(s),
		Compression: compressionFor(s),
		raw:         s,
	}, nil
}

func parseSFTP(s string) (Destination, error) {
	u, err := url.Parse(s)
	if err != nil {
		return Destination{}, fmt.Errorf("invalid sftp destination %q: %w", s, err)
	}
	if u.Host == "" || u.Path == "" || u.Path == "/" {
		return Destination{}, fmt.Errorf("invalid sftp destination %q: host and path are required", s)
	}
	user := u.User.Username()
	if user == "" {
		return Destination{}, fmt.Errorf("invalid sftp destination %q: user is required", s)
	}
	host := u.Host
	if u.Port() == "" {
		host = net.JoinHostPort(u.Hostname(), "22")
	}
	return Destination{
		Kind:        KindSFTP,
		Path:        u.Path,
		User:        user,
		Host:        host,
		Compression: compressionFor(u.Path),
		raw:         s,
	}, nil
}

func compressionFor(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return CompressGzip
	case ".zst":
		return CompressZstd
	default:
		return CompressNone
	}
}
