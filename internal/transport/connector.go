package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/exec"
	"strings"

	"github.com/google/shlex"

	"github.com/bamsammich/snap/internal/transport/proto"
)

// ConnectOpts configures how a remote repository is reached.
type ConnectOpts struct {
	// Stderr receives the remote responder's log output. Defaults to
	// os.Stderr.
	Stderr io.Writer
	// RSH replaces the built-in SSH client with an external remote shell
	// command, e.g. "ssh -p 2222". The host and the serve command are
	// appended to it.
	RSH string
	// RemoteCommand is the snap binary on the remote host. Defaults to
	// "snap".
	RemoteCommand string
	SSH           SSHOpts
	// Compress wraps the stream in zstd. The remote end is started with
	// --compress; a daemon must have been started with it.
	Compress bool
}

// Connect opens a duplex stream to the responder for loc: a TCP connection
// for snap:// locations, otherwise `snap serve --stdio` started over SSH or
// the RSH command.
func Connect(ctx context.Context, loc Location, opts ConnectOpts) (io.ReadWriteCloser, error) {
	if !loc.IsRemote() {
		return nil, fmt.Errorf("connect: %s is not a remote location", loc)
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	var (
		rwc io.ReadWriteCloser
		err error
	)
	switch {
	case loc.IsDaemon():
		var d net.Dialer
		rwc, err = d.DialContext(ctx, "tcp", loc.Addr())
		if err != nil {
			return nil, fmt.Errorf("dial %s: %w", loc, err)
		}
	case opts.RSH != "":
		rwc, err = startRSH(ctx, opts.RSH, userHost(loc), serveCommand(loc.Path, opts), opts.Stderr)
		if err != nil {
			return nil, err
		}
	default:
		client, err := DialSSH(ctx, loc.Host, loc.User, opts.SSH)
		if err != nil {
			return nil, err
		}
		rwc, err = startSSHCommand(client, serveCommand(loc.Path, opts), opts.Stderr)
		if err != nil {
			client.Close()
			return nil, err
		}
	}

	if !opts.Compress {
		return rwc, nil
	}
	cs, err := proto.NewCompressedStream(rwc)
	if err != nil {
		rwc.Close()
		return nil, err
	}
	return cs, nil
}

func userHost(loc Location) string {
	if loc.User != "" {
		return loc.User + "@" + loc.Host
	}
	return loc.Host
}

// serveCommand is the remote shell command that starts a stdio responder
// for repo.
func serveCommand(repo string, opts ConnectOpts) string {
	bin := opts.RemoteCommand
	if bin == "" {
		bin = "snap"
	}
	parts := []string{bin, "serve", "--stdio"}
	if opts.Compress {
		parts = append(parts, "--compress")
	}
	parts = append(parts, shellQuote(repo))
	return strings.Join(parts, " ")
}

// shellQuote single-quotes s for a POSIX shell.
func shellQuote(s string) string {
	if s != "" && strings.IndexFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || strings.ContainsRune("/._-+:@,=", r))
	}) < 0 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// cmdStream is the stdin/stdout of a local child process.
type cmdStream struct {
	io.Reader
	stdin io.WriteCloser
	cmd   *exec.Cmd
}

func startRSH(ctx context.Context, rsh, host, remote string, stderr io.Writer) (*cmdStream, error) {
	args, err := shlex.Split(rsh)
	if err != nil {
		return nil, fmt.Errorf("parse --rsh %q: %w", rsh, err)
	}
	if len(args) == 0 {
		return nil, errors.New("empty --rsh command")
	}
	args = append(args, host, remote)

	cmd := exec.CommandContext(ctx, args[0], args[1:]...) //nolint:gosec // user-supplied remote shell
	cmd.Stderr = stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("rsh stdin: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("rsh stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", args[0], err)
	}
	return &cmdStream{Reader: stdout, stdin: stdin, cmd: cmd}, nil
}

func (c *cmdStream) Write(p []byte) (int, error) {
	return c.stdin.Write(p)
}

// Close closes the child's stdin and waits for it to exit.
func (c *cmdStream) Close() error {
	c.stdin.Close()
	return c.cmd.Wait()
}
