package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/time/rate"

	"github.com/bamsammich/snap/internal/config"
	"github.com/bamsammich/snap/internal/engine"
	"github.com/bamsammich/snap/internal/event"
	"github.com/bamsammich/snap/internal/stats"
	"github.com/bamsammich/snap/internal/transport"
	"github.com/bamsammich/snap/internal/transport/proto"
	"github.com/bamsammich/snap/internal/ui"
)

var version = "dev"

func main() {
	os.Exit(run())
}

// options holds the root command's flag values.
type options struct {
	extraSources []string
	workers      int
	blockSize    int
	digest       string
	compress     bool
	bwLimitStr   string
	sshPort      int
	sshKeyFile   string
	insecureHost bool
	rsh          string
	remoteCmd    string
	logFile      string
	scan         bool
	copy         bool
	link         bool
	verbose      bool
	quiet        bool
	progress     bool
	showVersion  bool
}

func run() int {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "snap [flags] <source> <repository> [label]",
		Short: "Content-addressed directory snapshots built from hardlinks",
		Long: `Snapshot a directory tree into a repository. Every regular file is stored
once under hash/ by its content digest, and each snapshot label is a tree of
directories and hardlinks into that store. Unchanged files cost one inode
reference per snapshot.

The repository may be local, reached over SSH (host:path, user@host:path),
through a remote shell command (--rsh), or served by a snap daemon
(snap://host[:port]).`,
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.showVersion {
				return nil
			}
			return cobra.RangeArgs(2, 3)(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.showVersion {
				fmt.Fprintf(os.Stdout, "snap %s\n", version)
				return nil
			}
			return runSnapshot(cmd, args, &opts)
		},
	}

	rootCmd.Flags().BoolVar(&opts.showVersion, "version", false, "print version and exit")
	rootCmd.Flags().
		StringArrayVar(&opts.extraSources, "source", nil, "additional source directory (repeatable); each source is stored under its base name")
	rootCmd.Flags().
		IntVarP(&opts.workers, "workers", "n", 0, "number of walker workers (default: min(NumCPU*2, 32))")
	rootCmd.Flags().
		IntVar(&opts.blockSize, "block-size", 0, "read size for digesting and comparing (default 32KiB)")
	rootCmd.Flags().
		StringVar(&opts.digest, "digest", "", "content digest for a new repository (sha1 or blake3)")
	rootCmd.Flags().BoolVar(&opts.compress, "compress", false, "zstd-compress the remote protocol stream")
	rootCmd.Flags().
		StringVar(&opts.bwLimitStr, "bwlimit", "", "bandwidth limit for remote copies (e.g. 100M, 1G)")
	rootCmd.Flags().IntVar(&opts.sshPort, "ssh-port", 22, "SSH port")
	rootCmd.Flags().
		StringVar(&opts.sshKeyFile, "ssh-key", "", "SSH private key file (default: auto-detect)")
	rootCmd.Flags().
		BoolVar(&opts.insecureHost, "insecure-host-key", false, "accept any host key when known_hosts cannot be read")
	rootCmd.Flags().
		StringVarP(&opts.rsh, "rsh", "e", "", "remote shell command used instead of the built-in SSH client")
	rootCmd.Flags().
		StringVar(&opts.remoteCmd, "remote-snap", "", "path to snap on the remote host (default: snap)")
	rootCmd.Flags().StringVar(&opts.logFile, "log", "", "write structured JSON log to FILE")
	rootCmd.Flags().BoolVar(&opts.scan, "scan", false, "log scanned directories")
	rootCmd.Flags().BoolVar(&opts.copy, "copy", false, "log blobs written and bodies sent")
	rootCmd.Flags().BoolVar(&opts.link, "link", false, "log hardlinks created")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	rootCmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress all output except errors")
	rootCmd.Flags().BoolVar(&opts.progress, "progress", false, "print a periodic throughput line")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(docsCmd)

	if err := rootCmd.Execute(); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	return 0
}

//nolint:gocyclo,revive // cyclomatic: CLI entry point wires config, logging, transport and engine
func runSnapshot(cmd *cobra.Command, args []string, opts *options) error {
	sources := append([]string{args[0]}, opts.extraSources...)
	rawRepo := args[1]
	label := ""
	if len(args) == 3 {
		label = args[2]
	}
	if label == "" {
		label = engine.DefaultLabel(time.Now())
	}
	if err := engine.ValidateLabel(label); err != nil {
		return err
	}

	loc, err := transport.ParseLocation(rawRepo)
	if err != nil {
		return err
	}

	// Load optional config file.
	cfg, err := config.Load()
	if err != nil {
		slog.Warn("failed to load config", "error", err)
	}
	applyConfigDefaults(cmd, cfg.Defaults, opts)

	var limiter *rate.Limiter
	if opts.bwLimitStr != "" {
		bw, err := engine.ParseBWLimit(opts.bwLimitStr)
		if err != nil {
			return fmt.Errorf("invalid --bwlimit: %w", err)
		}
		limiter = engine.NewBWLimiter(bw)
	}

	logger, closeLog, err := setupLogging(opts.verbose, opts.quiet, opts.logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	categories := opts.categories(cfg.Defaults.Verbosity)
	eventLog, err := ui.NewEventLogger(logger, categories)
	if err != nil {
		return err
	}

	if opts.workers <= 0 {
		opts.workers = min(runtime.NumCPU()*2, 32)
	}

	// Set up context with signal handling.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	collector := stats.NewCollector()
	events := make(chan event.Event, 256)

	var presenterWg sync.WaitGroup
	presenterWg.Go(func() {
		eventLog.Run(events)
	})

	var progress *ui.Progress
	if opts.progress && !opts.quiet {
		progress = ui.NewProgress(os.Stderr, collector, ui.IsTTY(os.Stderr.Fd()))
		progress.Start()
	}

	engineCfg := engine.Config{
		Stats:     collector,
		Events:    events,
		Repo:      loc.Path,
		Label:     label,
		Digest:    opts.digest,
		Sources:   sources,
		BlockSize: opts.blockSize,
		Workers:   opts.workers,
	}

	logger.Debug("starting snapshot",
		"sources", sources,
		"repository", loc.String(),
		"label", label,
		"workers", opts.workers,
	)

	var result engine.Result
	if loc.IsRemote() {
		result = runRemote(ctx, loc, engineCfg, opts, limiter, logger)
	} else {
		result = engine.Run(ctx, engineCfg)
	}

	stop()
	if progress != nil {
		progress.Stop()
	}
	close(events)
	presenterWg.Wait()

	if len(result.Failures) > 0 {
		fmt.Fprintf(os.Stderr, "%d entries failed:\n", len(result.Failures))
		for _, f := range result.Failures {
			fmt.Fprintf(os.Stderr, "  %s: %v\n", f.Path, f.Err)
		}
	}

	if result.Err != nil {
		slog.Error("snapshot failed", "label", result.Label, "error", result.Err)
		return &exitError{code: 1}
	}

	if !opts.quiet {
		fmt.Fprintln(os.Stderr, ui.CompletionSummary(result.Label, result.Stats))
	}
	return nil
}

// runRemote drives a snapshot into a remote repository. The responder's
// summary is folded into the local counters.
func runRemote(
	ctx context.Context,
	loc transport.Location,
	engineCfg engine.Config,
	opts *options,
	limiter *rate.Limiter,
	logger *slog.Logger,
) engine.Result {
	res := engine.Result{Label: engineCfg.Label}

	rwc, err := transport.Connect(ctx, loc, transport.ConnectOpts{
		RSH:           opts.rsh,
		RemoteCommand: opts.remoteCmd,
		Compress:      opts.compress,
		SSH: transport.SSHOpts{
			Port:            opts.sshPort,
			KeyFile:         opts.sshKeyFile,
			InsecureHostKey: opts.insecureHost,
		},
	})
	if err != nil {
		res.Err = fmt.Errorf("connect %s: %w", loc, err)
		return res
	}

	d, err := proto.Dial(ctx, rwc, proto.DriverConfig{
		Stats:     engineCfg.Stats,
		Logger:    logger.With("remote", loc.String()),
		Limiter:   limiter,
		Label:     engineCfg.Label,
		Digest:    engineCfg.Digest,
		BlockSize: engineCfg.BlockSize,
	})
	if err != nil {
		res.Err = err
		return res
	}

	engineCfg.Sink = d
	res = engine.Run(ctx, engineCfg)

	closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Minute)
	defer cancel()
	sum, err := d.Close(closeCtx)
	if err != nil && res.Err == nil {
		res.Err = err
	}
	if err == nil {
		engineCfg.Stats.AddBlobsCreated(sum.BlobsCreated)
		res.Stats = engineCfg.Stats.Snapshot()
		logger.Debug("remote summary",
			"links", sum.Links,
			"blobs_created", sum.BlobsCreated,
			"bytes_received", sum.BytesReceived,
			"failures", sum.Failures,
		)
	}
	return res
}

// setupLogging installs the default slog logger: text on stderr, plus a
// JSON tee at Debug when logFile is set. The returned func closes the file.
func setupLogging(verbose, quiet bool, logFile string) (*slog.Logger, func(), error) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	} else if quiet {
		logLevel = slog.LevelWarn
	}
	textHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	var logHandler slog.Handler = textHandler
	closeFn := func() {}
	if logFile != "" {
		lf, err := os.Create(logFile)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		closeFn = func() { lf.Close() }
		jsonHandler := slog.NewJSONHandler(lf, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
		logHandler = ui.NewMultiHandler(textHandler, jsonHandler)
	}
	logger := slog.New(logHandler)
	slog.SetDefault(logger)
	return logger, closeFn, nil
}

// categories returns the selected event categories. Flags win over the
// config file's verbosity list.
func (o *options) categories(fromConfig []string) []string {
	var sel []string
	if o.scan {
		sel = append(sel, string(event.CategoryScan))
	}
	if o.copy {
		sel = append(sel, string(event.CategoryCopy))
	}
	if o.link {
		sel = append(sel, string(event.CategoryLink))
	}
	if len(sel) == 0 {
		return fromConfig
	}
	return sel
}

// applyConfigDefaults applies config file defaults for flags not explicitly set on the CLI.
func applyConfigDefaults(cmd *cobra.Command, defaults config.DefaultsConfig, opts *options) {
	set := make(map[string]bool)
	cmd.Flags().Visit(func(f *pflag.Flag) { set[f.Name] = true })
	changed := func(name string) bool { return set[name] }
	if !changed("workers") && defaults.Workers != nil {
		opts.workers = *defaults.Workers
	}
	if !changed("block-size") && defaults.BlockSize != nil {
		opts.blockSize = *defaults.BlockSize
	}
	if !changed("digest") && defaults.Digest != nil {
		opts.digest = *defaults.Digest
	}
	if !changed("compress") && defaults.Compress != nil {
		opts.compress = *defaults.Compress
	}
	if !changed("bwlimit") && defaults.BWLimit != nil {
		opts.bwLimitStr = *defaults.BWLimit
	}
	if !changed("ssh-port") && defaults.SSHPort != nil {
		opts.sshPort = *defaults.SSHPort
	}
	if !changed("ssh-key") && defaults.SSHKey != nil {
		opts.sshKeyFile = *defaults.SSHKey
	}
	if !changed("rsh") && defaults.RSH != nil {
		opts.rsh = *defaults.RSH
	}
}

type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}
