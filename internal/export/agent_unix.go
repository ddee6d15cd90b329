//go:build !windows
// +build !windows

// Copyright (c) 2026 Leetlist Team
// Leetlist - personal wordlist generator
// This source code is licensed under the MIT license found in the LICENSE file.

package export

import (
	"io"
	"net"
	"os"

	"golang.org/x/crypto/ssh/agent"
)

// getSSHAgent connects to the agent behind SSH_AUTH_SOCK, or returns nil.
// The closer releases the socket.
func getSSHAgent() (agent.Agent, io.Closer) {
	if sock := os.Getenv("SSH_AUTH_SOCK"); sock != "" {
		if conn, err := net.Dial("unix", sock); err == nil {
			return agent.NewClient(conn), conn
		}
	}
	return nil, nil
}
