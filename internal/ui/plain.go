package ui

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/bamsammich/snap/internal/stats"
)

// Progress periodically writes a one-line transfer report while a snapshot
// runs. On a terminal the line is redrawn in place every second; otherwise
// a new line is written every five seconds.
type Progress struct {
	w     io.Writer
	stats *stats.Collector
	done  chan struct{}
	wg    sync.WaitGroup
	tty   bool
}

// NewProgress reports on c to w.
func NewProgress(w io.Writer, c *stats.Collector, tty bool) *Progress {
	return &Progress{w: w, stats: c, tty: tty, done: make(chan struct{})}
}

// Start begins reporting in the background.
func (p *Progress) Start() {
	every := 5
	if p.tty {
		every = 1
	}
	p.wg.Go(func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for n := 1; ; n++ {
			select {
			case <-p.done:
				return
			case <-ticker.C:
				p.stats.Tick()
				if n%every == 0 {
					p.print()
				}
			}
		}
	})
}

// Stop ends reporting and waits for the reporter to exit.
func (p *Progress) Stop() {
	close(p.done)
	p.wg.Wait()
	if p.tty {
		fmt.Fprintln(p.w)
	}
}

func (p *Progress) print() {
	if p.tty {
		fmt.Fprintf(p.w, "\r\033[K%s", p.Line())
		return
	}
	fmt.Fprintln(p.w, p.Line())
}

// Line renders the current report.
func (p *Progress) Line() string {
	snap := p.stats.Snapshot()
	copied := snap.BytesStored + snap.BytesSent + snap.BytesReceived
	return fmt.Sprintf("copied %s (%s)  digested %s (%s)  files %s",
		FormatBytes(copied), FormatRate(p.stats.CopyRate(5)),
		FormatBytes(snap.BytesHashed), FormatRate(p.stats.HashRate(5)),
		FormatCount(snap.FilesLinked),
	)
}
