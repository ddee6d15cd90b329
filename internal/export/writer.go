// Copyright (c) 2026 Leetlist Team
// Leetlist - personal wordlist generator
// This source code is licensed under the MIT license found in the LICENSE file.

package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// WriteLines writes each word followed by a newline.
func WriteLines(w io.Writer, words []string) error {
	bw := bufio.NewWriter(w)
	for _, word := range words {
		if _, err := bw.WriteString(word); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteEncoded writes words to w, compressing them according to c.
func WriteEncoded(w io.Writer, words []string, c Compression) error {
	switch c {
	case CompressGzip:
		zw, err := gzip.NewWriterLevel(w, gzip.BestCompression)
		if err != nil {
			return fmt.Errorf("create gzip writer: %w", err)
		}
		if err := WriteLines(zw, words); err != nil {
			_ = zw.Close()
			return err
		}
		return zw.Close()
	case CompressZstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return fmt.Errorf("create zstd writer: %w", err)
		}
		if err := WriteLines(zw, words); err != nil {
			_ = zw.Close()
			return err
		}
		return zw.Close()
	default:
		return WriteLines(w, words)
	}
}
