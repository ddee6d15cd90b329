// Copyright (c) 2026 Leetlist Team
// Leetlist - personal wordlist generator
// This source code is licensed under the MIT license found in the LICENSE file.

package export

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"
)

// SaveError reports a failed write to one destination.
type SaveError struct {
	Destination string
	Err         error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save wordlist to %s: %v", e.Destination, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

type saveConfig struct {
	stdout io.Writer
}

// Option configures a save.
type Option func(*saveConfig)

// WithStdout sends the "-" destination to w instead of os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(c *saveConfig) {
		if w != nil {
			c.stdout = w
		}
	}
}

func newSaveConfig(opts []Option) saveConfig {
	c := saveConfig{stdout: os.Stdout}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// Save writes words to the destination named by dest. An empty dest is a
// no-op. Every failure is returned as a *SaveError.
func Save(ctx context.Context, dest string, words []string, opts ...Option) error {
	d, err := ParseDestination(dest)
	if err != nil {
		return &SaveError{Destination: dest, Err: err}
	}
	if err := SaveTo(ctx, d, words, opts...); err != nil {
		return &SaveError{Destination: d.String(), Err: err}
	}
	return nil
}

// SaveTo writes words to an already parsed destination.
func SaveTo(ctx context.Context, d Destination, words []string, opts ...Option) error {
	return newSaveConfig(opts).save(ctx, d, words)
}

func (c saveConfig) save(ctx context.Context, d Destination, words []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	switch d.Kind {
	case KindNone:
		return nil
	case KindStdout:
		return WriteLines(c.stdout, words)
	case KindClipboard:
		return CopyToClipboard(words)
	case KindFile:
		return writeFile(d.Path, words, d.Compression)
	case KindSFTP:
		return uploadSFTP(ctx, d, words)
	default:
		return fmt.Errorf("unsupported destination kind %v", d.Kind)
	}
}

// key identifies the place a destination writes to.
func (d Destination) key() string {
	switch d.Kind {
	case KindStdout, KindClipboard:
		return d.Kind.String()
	case KindSFTP:
		return "sftp://" + d.User + "@" + d.Host + d.Path
	default:
		return d.Kind.String() + ":" + d.Path
	}
}

// Unique parses dests and returns them without empty entries and without
// repeats, in their original order.
func Unique(dests []string) ([]Destination, error) {
	out := make([]Destination, 0, len(dests))
	seen := make(map[string]struct{}, len(dests))
	for _, dest := range dests {
		d, err := ParseDestination(dest)
		if err != nil {
			return nil, &SaveError{Destination: dest, Err: err}
		}
		if d.Kind == KindNone {
			continue
		}
		key := d.key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, d)
	}
	return out, nil
}

// SaveAll writes words to every distinct destination and returns the first
// error. Destinations are parsed up front so a typo fails before any file is
// touched. Files and remotes are written concurrently; stdout and the
// clipboard are written one after another by the caller's goroutine.
func SaveAll(ctx context.Context, dests []string, words []string, opts ...Option) error {
	parsed, err := Unique(dests)
	if err != nil {
		return err
	}
	c := newSaveConfig(opts)

	g, gctx := errgroup.WithContext(ctx)
	var local []Destination
	for _, d := range parsed {
		if d.Kind == KindStdout || d.Kind == KindClipboard {
			local = append(local, d)
			continue
		}
		g.Go(func() error {
			if err := c.save(gctx, d, words); err != nil {
				return &SaveError{Destination: d.String(), Err: err}
			}
			return nil
		})
	}

	var localErr error
	for _, d := range local {
		if err := c.save(gctx, d, words); err != nil {
			localErr = &SaveError{Destination: d.String(), Err: err}
			break
		}
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return localErr
}
