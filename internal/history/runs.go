// Copyright (c) 2026 Leetlist Team
// Leetlist - personal wordlist generator
// This source code is licensed under the MIT license found in the LICENSE file.

package history

import (
	"context"
	"encoding/hex"
	"fmt"
	"os/user"
	"slices"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"golang.org/x/crypto/blake2b"
)

// Run describes one wordlist generation.
type Run struct {
	ID          int64
	CreatedAt   time.Time
	Username    string
	Seeds       int // number of non-empty seed words
	YearStart   int
	YearEnd     int
	Candidates  int
	Destination string
	Digest      string
}

// RunModel maps the runs table for bun queries.
type RunModel struct {
	bun.BaseModel `bun:"table:runs"`
	ID            int64     `bun:"id,pk,autoincrement"`
	CreatedAt     time.Time `bun:"created_at,notnull"`
	Username      string    `bun:"username"`
	Seeds         int       `bun:"seeds"`
	YearStart     int       `bun:"year_start"`
	YearEnd       int       `bun:"year_end"`
	Candidates    int       `bun:"candidates"`
	Destination   string    `bun:"destination"`
	Digest        string    `bun:"digest"`
}

func runModelToRun(m RunModel) Run {
	return Run{
		ID:          m.ID,
		CreatedAt:   m.CreatedAt,
		Username:    m.Username,
		Seeds:       m.Seeds,
		YearStart:   m.YearStart,
		YearEnd:     m.YearEnd,
		Candidates:  m.Candidates,
		Destination: m.Destination,
		Digest:      m.Digest,
	}
}

// Record inserts r and returns it with ID filled in. A zero CreatedAt becomes
// now, and an empty Username becomes the current OS user.
func (s *Store) Record(ctx context.Context, r Run) (Run, error) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	r.CreatedAt = r.CreatedAt.UTC().Truncate(time.Microsecond)
	if r.Username == "" {
		r.Username = currentUsername()
	}

	m := RunModel{
		CreatedAt:   r.CreatedAt,
		Username:    r.Username,
		Seeds:       r.Seeds,
		YearStart:   r.YearStart,
		YearEnd:     r.YearEnd,
		Candidates:  r.Candidates,
		Destination: r.Destination,
		Digest:      r.Digest,
	}
	if _, err := s.bun.NewInsert().Model(&m).Exec(ctx); err != nil {
		return Run{}, MapDBError(err)
	}
	r.ID = m.ID
	return r, nil
}

// List returns up to limit runs, newest first. limit <= 0 returns all.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	var models []RunModel
	q := s.bun.NewSelect().Model(&models).OrderExpr("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, err
	}
	out := make([]Run, 0, len(models))
	for _, m := range models {
		out = append(out, runModelToRun(m))
	}
	return out, nil
}

// Prune deletes all but the newest keep runs and returns how many were
// removed.
func (s *Store) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		return 0, fmt.Errorf("keep must not be negative, got %d", keep)
	}
	var ids []int64
	if err := s.bun.NewSelect().
		Model((*RunModel)(nil)).
		Column("id").
		OrderExpr("created_at DESC, id DESC").
		Scan(ctx, &ids); err != nil {
		return 0, err
	}
	if len(ids) <= keep {
		return 0, nil
	}

	var removed int64
	err := s.bun.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewDelete().
			Model((*RunModel)(nil)).
			Where("id IN (?)", bun.In(ids[keep:])).
			Exec(ctx)
		if err != nil {
			return err
		}
		removed, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, err
	}
	dbLogf("history: pruned %d runs, kept %d", removed, keep)
	return removed, nil
}

// Digest returns the hex BLAKE2b-256 of the newline-joined, sorted words, so
// identical wordlists share a digest regardless of input order.
func Digest(words []string) string {
	sorted := slices.Clone(words)
	slices.Sort(sorted)
	sum := blake2b.Sum256([]byte(strings.Join(sorted, "\n")))
	return hex.EncodeToString(sum[:])
}

func currentUsername() string {
	u, err := user.Current()
	if err != nil {
		return "unknown"
	}
	if parts := strings.Split(u.Username, `\`); len(parts) > 1 {
		return parts[1]
	}
	return u.Username
}
