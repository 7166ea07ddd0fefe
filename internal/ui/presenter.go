package ui

import (
	"fmt"
	"log/slog"

	"github.com/bamsammich/snap/internal/event"
)

// EventLogger turns engine events into log records. Events in the selected
// categories are logged at Info; skips and failures are always logged.
type EventLogger struct {
	log        *slog.Logger
	categories map[event.Category]bool
}

// NewEventLogger selects categories by name: "scan", "copy" or "link".
func NewEventLogger(log *slog.Logger, categories []string) (*EventLogger, error) {
	sel := make(map[event.Category]bool, len(categories))
	for _, name := range categories {
		c := event.Category(name)
		switch c {
		case event.CategoryScan, event.CategoryCopy, event.CategoryLink:
			sel[c] = true
		default:
			return nil, fmt.Errorf("unknown verbosity category %q (want scan, copy or link)", name)
		}
	}
	return &EventLogger{log: log, categories: sel}, nil
}

// Run consumes events until the channel closes. Blocks until done.
func (e *EventLogger) Run(events <-chan event.Event) {
	for ev := range events {
		e.handle(ev)
	}
}

func (e *EventLogger) handle(ev event.Event) {
	switch ev.Type {
	case event.EntrySkipped:
		e.log.Info("skipped", "path", ev.Path, "reason", ev.Error)
		return
	case event.EntryFailed:
		e.log.Warn("failed", "path", ev.Path, "error", ev.Error)
		return
	}
	if !e.categories[ev.Type.Category()] {
		return
	}

	attrs := []any{"path", ev.Path}
	if ev.Blob != "" {
		attrs = append(attrs, "blob", ev.Blob)
	}
	if ev.Size > 0 || ev.Type == event.FileHashed {
		attrs = append(attrs, "size", ev.Size)
	}
	e.log.Info(ev.Type.String(), attrs...)
}
