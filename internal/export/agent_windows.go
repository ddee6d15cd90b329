//go:build windows
// +build windows

// Copyright (c) 2026 Leetlist Team
// Leetlist - personal wordlist generator
// This source code is licensed under the MIT license found in the LICENSE file.

package export

import (
	"io"
	"os"

	"github.com/Microsoft/go-winio"
	"github.com/davidmz/go-pageant"
	"golang.org/x/crypto/ssh/agent"
)

const openSSHAgentPipe = `\\.\pipe\openssh-ssh-agent`

// getSSHAgent tries Pageant first, then the OpenSSH agent named pipe
// (SSH_AUTH_SOCK if set). Returns nil when neither answers. The closer is
// nil for Pageant, which holds no connection.
func getSSHAgent() (agent.Agent, io.Closer) {
	if pageant.Available() {
		return pageant.New(), nil
	}

	pipe := os.Getenv("SSH_AUTH_SOCK")
	if pipe == "" {
		pipe = openSSHAgentPipe
	}
	conn, err := winio.DialPipe(pipe, nil)
	if err == nil && conn != nil {
		return agent.NewClient(conn), conn
	}
	return nil, nil
}
