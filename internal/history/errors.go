// Copyright (c) 2026 Leetlist Team
// Leetlist - personal wordlist generator
// This source code is licensed under the MIT license found in the LICENSE file.

package history

import (
	"errors"
	"strings"

	"github.com/toeirei/leetlist/internal/logging"
)

var (
	// ErrDuplicate is returned when attempting to insert a record that already exists.
	ErrDuplicate = errors.New("duplicate record")
	// ErrUnsupportedDB is returned for database types other than sqlite,
	// postgres and mysql.
	ErrUnsupportedDB = errors.New("unsupported database type")
)

// MapDBError maps driver-specific unique constraint violations to
// ErrDuplicate. The match is string based so this file needs no driver
// imports.
func MapDBError(err error) error {
	if err == nil {
		return nil
	}
	le := strings.ToLower(err.Error())
	// MySQL duplicate entry, Postgres unique violation (23505), SQLite unique constraint
	if strings.Contains(le, "duplicate") || strings.Contains(le, "unique") || strings.Contains(le, "23505") || strings.Contains(le, "1062") {
		return ErrDuplicate
	}
	return err
}

func dbLogf(format string, v ...any) {
	logging.Debugf(format, v...)
}
