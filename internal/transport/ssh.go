package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"time"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
	"golang.org/x/crypto/ssh/knownhosts"
)

// SSHOpts configures SSH connection behavior.
type SSHOpts struct {
	KeyFile        string // override key file path; empty = try defaults
	KnownHostsFile string // empty = ~/.ssh/known_hosts
	Port           int    // 0 = default (22)
	// InsecureHostKey skips host key verification when no known_hosts file
	// can be loaded.
	InsecureHostKey bool
}

// ErrNoAuthMethods is returned when neither an agent nor a key is available.
var ErrNoAuthMethods = errors.New("no SSH auth methods available (set SSH_AUTH_SOCK or provide a key)")

// DialSSH establishes an SSH connection to host as user.
//
// Auth methods are tried in order:
//  1. SSH agent (if SSH_AUTH_SOCK is set)
//  2. Key files (~/.ssh/id_ed25519, id_ecdsa, id_rsa) or SSHOpts.KeyFile
func DialSSH(ctx context.Context, host, userName string, opts SSHOpts) (*ssh.Client, error) {
	if userName == "" {
		u, err := user.Current()
		if err != nil {
			return nil, fmt.Errorf("determine current user: %w", err)
		}
		userName = u.Username
	}

	port := opts.Port
	if port == 0 {
		port = 22
	}

	authMethods := buildAuthMethods(opts)
	if len(authMethods) == 0 {
		return nil, ErrNoAuthMethods
	}

	hostKeyCallback, err := hostKeyCallback(opts)
	if err != nil {
		return nil, err
	}

	config := &ssh.ClientConfig{
		User:            userName,
		Auth:            authMethods,
		HostKeyCallback: hostKeyCallback,
		Timeout:         30 * time.Second,
	}

	addr := net.JoinHostPort(host, strconv.Itoa(port))
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("ssh dial %s: %w", addr, err)
	}
	c, chans, reqs, err := ssh.NewClientConn(conn, addr, config)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("ssh handshake %s: %w", addr, err)
	}
	return ssh.NewClient(c, chans, reqs), nil
}

func buildAuthMethods(opts SSHOpts) []ssh.AuthMethod {
	var methods []ssh.AuthMethod

	if sock := os.Getenv("SSH_AUTH_SOCK"); sock != "" {
		conn, err := net.Dial("unix", sock)
		if err == nil {
			agentClient := agent.NewClient(conn)
			methods = append(methods, ssh.PublicKeysCallback(agentClient.Signers))
		}
	}

	if opts.KeyFile != "" {
		if m := keyFileAuth(expandHome(opts.KeyFile)); m != nil {
			methods = append(methods, m)
		}
		return methods
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return methods
	}
	for _, name := range []string{"id_ed25519", "id_ecdsa", "id_rsa"} {
		if m := keyFileAuth(filepath.Join(home, ".ssh", name)); m != nil {
			methods = append(methods, m)
		}
	}
	return methods
}

func keyFileAuth(path string) ssh.AuthMethod {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	signer, err := ssh.ParsePrivateKey(data)
	if err != nil {
		return nil
	}
	return ssh.PublicKeys(signer)
}

func hostKeyCallback(opts SSHOpts) (ssh.HostKeyCallback, error) {
	path := opts.KnownHostsFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("locate known_hosts: %w", err)
		}
		path = filepath.Join(home, ".ssh", "known_hosts")
	}

	cb, err := knownhosts.New(expandHome(path))
	if err != nil {
		if opts.InsecureHostKey {
			//nolint:gosec // explicitly requested by the user
			return ssh.InsecureIgnoreHostKey(), nil
		}
		return nil, fmt.Errorf("load known hosts %s: %w", path, err)
	}
	return cb, nil
}

func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// sshStream is the stdin/stdout of a remote command run over SSH.
type sshStream struct {
	io.Reader
	stdin   io.WriteCloser
	session *ssh.Session
	client  *ssh.Client
}

// startSSHCommand runs cmd on client and returns its stdio as a duplex
// stream. Closing the stream waits for the command and closes client.
func startSSHCommand(client *ssh.Client, cmd string, stderr io.Writer) (*sshStream, error) {
	session, err := client.NewSession()
	if err != nil {
		return nil, fmt.Errorf("ssh session: %w", err)
	}
	stdin, err := session.StdinPipe()
	if err != nil {
		session.Close()
		return nil, fmt.Errorf("ssh stdin: %w", err)
	}
	stdout, err := session.StdoutPipe()
	if err != nil {
		session.Close()
		return nil, fmt.Errorf("ssh stdout: %w", err)
	}
	session.Stderr = stderr

	if err := session.Start(cmd); err != nil {
		session.Close()
		return nil, fmt.Errorf("ssh start %q: %w", cmd, err)
	}
	return &sshStream{Reader: stdout, stdin: stdin, session: session, client: client}, nil
}

func (s *sshStream) Write(p []byte) (int, error) {
	return s.stdin.Write(p)
}

func (s *sshStream) Close() error {
	s.stdin.Close()
	err := s.session.Wait()
	s.client.Close()
	var missing *ssh.ExitMissingError
	if errors.As(err, &missing) {
		return nil
	}
	return err
}
