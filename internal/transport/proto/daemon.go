package proto

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/bamsammich/snap/internal/stats"
)

// shutdownGrace is how long open sessions may run after the daemon stops
// accepting connections.
const shutdownGrace = 30 * time.Second

// Temporary accept failures (EMFILE, ENFILE) are retried after a delay that
// doubles from minAcceptDelay up to maxAcceptDelay.
const (
	minAcceptDelay = 5 * time.Millisecond
	maxAcceptDelay = time.Second
)

func nextAcceptDelay(prev time.Duration) time.Duration {
	if prev == 0 {
		return minAcceptDelay
	}
	return min(prev*2, maxAcceptDelay)
}

// DaemonConfig configures a snap responder daemon.
type DaemonConfig struct {
	ListenAddr string
	Repo       string
	BlockSize  int
	// Compress wraps every connection in zstd. Drivers must dial with
	// compression enabled too.
	Compress bool
}

// Daemon accepts TCP connections and runs one responder session on each.
type Daemon struct {
	listener net.Listener
	cfg      DaemonConfig
}

// NewDaemon listens on cfg.ListenAddr. Call Serve to start accepting
// connections.
func NewDaemon(cfg DaemonConfig) (*Daemon, error) {
	listener, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", cfg.ListenAddr, err)
	}
	return &Daemon{cfg: cfg, listener: listener}, nil
}

// Addr returns the listener's address (useful when listening on :0).
func (d *Daemon) Addr() net.Addr {
	return d.listener.Addr()
}

// Serve accepts connections until ctx is cancelled. Blocks until every
// session has ended.
func (d *Daemon) Serve(ctx context.Context) error {
	slog.Info("snap daemon listening", "addr", d.listener.Addr(), "repo", d.cfg.Repo)

	var wg sync.WaitGroup

	// Sessions keep a context of their own so a shutdown lets them finish
	// within the grace period instead of cutting them off mid-snapshot.
	sessCtx, cancelSessions := context.WithCancel(context.WithoutCancel(ctx))
	defer cancelSessions()

	go func() {
		<-ctx.Done()
		d.listener.Close()
		time.AfterFunc(shutdownGrace, cancelSessions)
	}()

	var delay time.Duration
	for {
		conn, err := d.listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			delay = nextAcceptDelay(delay)
			slog.Error("accept error", "error", err, "retry_in", delay)
			select {
			case <-ctx.Done():
			case <-time.After(delay):
			}
			continue
		}
		delay = 0

		wg.Go(func() {
			d.handleConn(sessCtx, conn)
		})
	}

	wg.Wait()
	return nil
}

func (d *Daemon) handleConn(ctx context.Context, conn net.Conn) {
	remote := conn.RemoteAddr().String()
	logger := slog.Default().With("remote", remote)
	logger.Info("new connection")

	var rwc io.ReadWriteCloser = conn
	if d.cfg.Compress {
		cs, err := NewCompressedStream(conn)
		if err != nil {
			logger.Error("compression setup failed", "error", err)
			conn.Close()
			return
		}
		rwc = cs
	}

	err := Serve(ctx, rwc, ResponderConfig{
		Stats:     stats.NewCollector(),
		Logger:    logger,
		Repo:      d.cfg.Repo,
		BlockSize: d.cfg.BlockSize,
	})
	if err != nil {
		logger.Warn("session ended with error", "error", err)
		return
	}
	logger.Info("connection closed")
}
