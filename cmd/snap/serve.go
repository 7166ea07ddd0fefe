package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bamsammich/snap/internal/config"
	"github.com/bamsammich/snap/internal/stats"
	"github.com/bamsammich/snap/internal/transport/proto"
)

var serveCmd = &cobra.Command{
	Use:   "serve [flags] <repository>",
	Short: "Serve a repository to remote snap clients",
	Long: `Run the receiving side of the snap protocol for one repository.

With --stdio a single session is served on stdin/stdout. This is the mode the
SSH and --rsh connectors start on the remote host; logs go to stderr only.

With --listen the repository is served over TCP to clients connecting with
snap://host[:port], one session per connection. The daemon has no
authentication of its own; expose it only on trusted networks or behind a
tunnel.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	serveCmd.Flags().Bool("stdio", false, "serve one session on stdin/stdout")
	serveCmd.Flags().String("listen", "", "serve sessions on a TCP address (e.g. :9876)")
	serveCmd.Flags().Bool("compress", false, "expect zstd-compressed streams")
	serveCmd.Flags().Int("block-size", 0, "read size for digesting and comparing (default 32KiB)")
	serveCmd.Flags().BoolP("verbose", "v", false, "verbose output")
}

func runServe(cmd *cobra.Command, args []string) error {
	stdioMode, _ := cmd.Flags().GetBool("stdio")    //nolint:errcheck // flag name is hardcoded
	listenAddr, _ := cmd.Flags().GetString("listen") //nolint:errcheck // flag name is hardcoded
	compress, _ := cmd.Flags().GetBool("compress")   //nolint:errcheck // flag name is hardcoded
	blockSize, _ := cmd.Flags().GetInt("block-size") //nolint:errcheck // flag name is hardcoded
	verbose, _ := cmd.Flags().GetBool("verbose")     //nolint:errcheck // flag name is hardcoded

	if stdioMode == (listenAddr != "") {
		return errors.New("exactly one of --stdio or --listen is required")
	}

	repo := args[0]
	if !cmd.Flags().Changed("block-size") {
		if cfg, err := config.Load(); err == nil && cfg.Defaults.BlockSize != nil {
			blockSize = *cfg.Defaults.BlockSize
		}
	}

	// stdout carries the protocol in stdio mode; logs always go to stderr.
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	} else if stdioMode {
		level = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if listenAddr != "" {
		daemon, err := proto.NewDaemon(proto.DaemonConfig{
			ListenAddr: listenAddr,
			Repo:       repo,
			BlockSize:  blockSize,
			Compress:   compress,
		})
		if err != nil {
			return err
		}
		return daemon.Serve(ctx)
	}

	var rwc io.ReadWriteCloser = stdio{Reader: os.Stdin, Writer: os.Stdout}
	if compress {
		cs, err := proto.NewCompressedStream(rwc)
		if err != nil {
			return fmt.Errorf("compression setup: %w", err)
		}
		rwc = cs
	}

	err := proto.Serve(ctx, rwc, proto.ResponderConfig{
		Stats:     stats.NewCollector(),
		Logger:    logger,
		Repo:      repo,
		BlockSize: blockSize,
	})
	if err != nil {
		slog.Error("session failed", "repo", repo, "error", err)
		return &exitError{code: 1}
	}
	return nil
}

// stdio joins the process's stdin and stdout into one duplex stream.
type stdio struct {
	io.Reader
	io.Writer
}

func (stdio) Close() error {
	return os.Stdout.Close()
}
