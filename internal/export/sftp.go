// Copyright (c) 2026 Leetlist Team
// Leetlist - personal wordlist generator
// This source code is licensed under the MIT license found in the LICENSE file.

package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

// ErrNoAgent is returned when an SFTP destination is used but no SSH agent is
// reachable.
var ErrNoAgent = errors.New("no ssh agent available")

// remoteFS is the subset of an SFTP session the uploader needs.
type remoteFS interface {
	Create(path string) (io.WriteCloser, error)
	MkdirAll(dir string) error
	Chmod(path string, mode os.FileMode) error
	Rename(oldpath, newpath string) error
	Remove(path string) error
	Close() error
}

// dialRemote opens an SFTP session for d. Tests replace it.
var dialRemote = dialSFTP

// sshAgent finds the running SSH agent. Tests replace it.
var sshAgent = getSSHAgent

// knownHostsFile returns the OpenSSH known_hosts file used to verify servers.
var knownHostsFile = func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".ssh", "known_hosts"), nil
}

type sftpFS struct {
	ssh   *ssh.Client
	sftp  *sftp.Client
	agent io.Closer // nil when the agent holds no connection
}

func (s *sftpFS) Create(p string) (io.WriteCloser, error) { return s.sftp.Create(p) }
func (s *sftpFS) MkdirAll(dir string) error              { return s.sftp.MkdirAll(dir) }
func (s *sftpFS) Chmod(p string, m os.FileMode) error    { return s.sftp.Chmod(p, m) }
func (s *sftpFS) Remove(p string) error                  { return s.sftp.Remove(p) }

// Rename prefers the posix-rename extension, which replaces an existing
// target. Servers without it get remove-then-rename.
func (s *sftpFS) Rename(oldpath, newpath string) error {
	if err := s.sftp.PosixRename(oldpath, newpath); err == nil {
		return nil
	}
	_ = s.sftp.Remove(newpath)
	return s.sftp.Rename(oldpath, newpath)
}

func (s *sftpFS) Close() error {
	err := s.sftp.Close()
	if cerr := s.ssh.Close(); err == nil {
		err = cerr
	}
	closeAgent(s.agent)
	return err
}

func closeAgent(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}

func dialSFTP(ctx context.Context, d Destination) (remoteFS, error) {
	khPath, err := knownHostsFile()
	if err != nil {
		return nil, fmt.Errorf("locate known_hosts: %w", err)
	}
	hostKeyCallback, err := knownhosts.New(khPath)
	if err != nil {
		return nil, fmt.Errorf("load known_hosts %s: %w", khPath, err)
	}

	agentClient, agentConn := sshAgent()
	if agentClient == nil {
		closeAgent(agentConn)
		return nil, ErrNoAgent
	}

	config := &ssh.ClientConfig{
		User:            d.User,
		Auth:            []ssh.AuthMethod{ssh.PublicKeysCallback(agentClient.Signers)},
		HostKeyCallback: hostKeyCallback,
		Timeout:         10 * time.Second,
	}

	type dialResult struct {
		client *ssh.Client
		err    error
	}
	done := make(chan dialResult, 1)
	go func() {
		c, err := ssh.Dial("tcp", d.Host, config)
		done <- dialResult{c, err}
	}()

	var client *ssh.Client
	select {
	case <-ctx.Done():
		go func() {
			if r := <-done; r.client != nil {
				_ = r.client.Close()
			}
			closeAgent(agentConn)
		}()
		return nil, ctx.Err()
	case r := <-done:
		if r.err != nil {
			closeAgent(agentConn)
			return nil, fmt.Errorf("connect to %s: %w", d.Host, r.err)
		}
		client = r.client
	}

	sftpClient, err := sftp.NewClient(client)
	if err != nil {
		_ = client.Close()
		closeAgent(agentConn)
		return nil, fmt.Errorf("failed to create sftp client: %w", err)
	}
	return &sftpFS{ssh: client, sftp: sftpClient, agent: agentConn}, nil
}

// uploadSFTP uploads to a temporary file next to the target and renames it
// into place once the upload and chmod succeeded.
func uploadSFTP(ctx context.Context, d Destination, words []string) error {
	fs, err := dialRemote(ctx, d)
	if err != nil {
		return err
	}
	defer func() { _ = fs.Close() }()

	dir := path.Dir(d.Path)
	if dir != "." && dir != "/" {
		if err := fs.MkdirAll(dir); err != nil {
			return fmt.Errorf("failed to create remote directory %s: %w", dir, err)
		}
	}

	tmpPath := path.Join(dir, fmt.Sprintf(".%s.leetlist.%d", path.Base(d.Path), time.Now().UnixNano()))
	f, err := fs.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create temporary file on remote: %w", err)
	}
	if err := WriteEncoded(f, words, d.Compression); err != nil {
		_ = f.Close()
		_ = fs.Remove(tmpPath)
		return fmt.Errorf("failed to write to temporary file on remote: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = fs.Remove(tmpPath)
		return fmt.Errorf("failed to finish remote upload: %w", err)
	}
	if err := fs.Chmod(tmpPath, 0o600); err != nil {
		_ = fs.Remove(tmpPath)
		return fmt.Errorf("failed to chmod temporary file: %w", err)
	}
	if err := fs.Rename(tmpPath, d.Path); err != nil {
		_ = fs.Remove(tmpPath)
		return fmt.Errorf("failed to rename %s into place: %w", d.Path, err)
	}
	return nil
}
