package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bamsammich/snap/internal/engine"
	"github.com/bamsammich/snap/internal/event"
	"github.com/bamsammich/snap/internal/ui"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [flags] <repository>",
	Short: "Check every blob in a repository against its address",
	Long: `Re-digest every blob under <repository>/hash and report blobs whose content
no longer matches the address in their file name. Exits 1 when any blob fails.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runVerify,
}

func init() {
	verifyCmd.Flags().IntP("workers", "n", 0, "number of digest workers (default: NumCPU)")
}

func runVerify(cmd *cobra.Command, args []string) error {
	workers, _ := cmd.Flags().GetInt("workers") //nolint:errcheck // flag name is hardcoded
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	eventLog, err := ui.NewEventLogger(logger, nil)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	events := make(chan event.Event, 256)
	var presenterWg sync.WaitGroup
	presenterWg.Go(func() {
		eventLog.Run(events)
	})

	res, err := engine.Verify(ctx, engine.VerifyConfig{
		Events:  events,
		Repo:    args[0],
		Workers: workers,
	})
	close(events)
	presenterWg.Wait()

	if err != nil {
		slog.Error("verify failed", "repo", args[0], "error", err)
		return &exitError{code: 1}
	}

	fmt.Fprintf(os.Stderr, "verified %s blobs, %s failed\n",
		ui.FormatCount(res.Verified), ui.FormatCount(res.Failed))
	if res.Failed > 0 {
		return &exitError{code: 1}
	}
	return nil
}
