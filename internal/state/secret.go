// Copyright (c) 2026 Leetlist Team
// Leetlist - personal wordlist generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package state holds transient secrets shared between the CLI and the TUI,
// such as the password currently being analysed.
package state

import "sync"

// Password carries the password under analysis from where it is read
// (prompt, flag or TUI field) to the scorer.
var Password = NewSecretMailbox()

// SecretMailbox is a concurrency-safe slot for one secret. It holds bytes
// rather than a string so the value can be zeroed once used.
type SecretMailbox struct {
	mu    sync.RWMutex
	value []byte
}

// NewSecretMailbox returns an empty mailbox.
func NewSecretMailbox() *SecretMailbox {
	return &SecretMailbox{}
}

// Set stores a copy of secret, wiping whatever was stored before.
func (m *SecretMailbox) Set(secret []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	Zero(m.value)
	if secret == nil {
		m.value = nil
		return
	}
	m.value = make([]byte, len(secret))
	copy(m.value, secret)
}

// Get returns a copy of the secret, or nil when empty. The caller should
// Zero the copy after use.
func (m *SecretMailbox) Get() []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.value == nil {
		return nil
	}
	out := make([]byte, len(m.value))
	copy(out, m.value)
	return out
}

// Take returns the secret and empties the mailbox in one step.
func (m *SecretMailbox) Take() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()

	v := m.value
	m.value = nil
	return v
}

// Has reports whether a secret is stored.
func (m *SecretMailbox) Has() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.value) > 0
}

// Clear zeroes and drops the stored secret.
func (m *SecretMailbox) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	Zero(m.value)
	m.value = nil
}

// Zero overwrites b with zero bytes.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
