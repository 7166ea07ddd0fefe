package engine

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/bamsammich/snap/internal/event"
	"github.com/bamsammich/snap/internal/stats"
)

// WalkerConfig controls a SnapshotWalker.
type WalkerConfig struct {
	Sink    Sink
	Stats   *stats.Collector
	Events  chan<- event.Event
	Exclude []string // absolute source directories that are never descended into
	Workers int
}

// WalkResult is the outcome of one Snapshot call.
type WalkResult struct {
	Err      error // first fatal error, or the context error
	Failures []EntryFailure
	Skipped  []Skip
}

// Walker mirrors source trees into a Sink using a bounded worker pool.
type Walker struct {
	cfg WalkerConfig

	// observe, if set, is called with the pending count after every
	// mutation, while the coordinating lock is held.
	observe func(pending int)
}

// NewWalker creates a walker. Workers defaults to the number of CPUs.
func NewWalker(cfg WalkerConfig) *Walker {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Stats == nil {
		cfg.Stats = stats.NewCollector()
	}
	return &Walker{cfg: cfg}
}

// walk holds the state of a single Snapshot call. The pending counter and
// the queue are guarded by mu; work wakes idle workers and idle wakes the
// initiator once pending drops to zero.
type walk struct {
	w      *Walker
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	work    *sync.Cond
	idle    *sync.Cond
	queue   []task
	pending int
	closed  bool

	resMu    sync.Mutex
	fatal    error
	failures []EntryFailure
	skipped  []Skip
}

// Snapshot mirrors the tree rooted at src to rel under the sink's label
// root and blocks until every scheduled task has finished. The sink's
// entry for rel's parent must already exist.
func (w *Walker) Snapshot(ctx context.Context, src, rel string) WalkResult {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	wk := &walk{w: w, ctx: ctx, cancel: cancel}
	wk.work = sync.NewCond(&wk.mu)
	wk.idle = sync.NewCond(&wk.mu)

	var wg sync.WaitGroup
	for range w.cfg.Workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			wk.runWorker()
		}()
	}

	wk.schedule(task{src: filepath.Clean(src), rel: rel})

	wk.mu.Lock()
	for wk.pending > 0 {
		wk.idle.Wait()
	}
	wk.closed = true
	wk.work.Broadcast()
	wk.mu.Unlock()
	wg.Wait()

	res := WalkResult{Err: wk.fatal, Failures: wk.failures, Skipped: wk.skipped}
	if res.Err == nil {
		res.Err = ctx.Err()
	}
	return res
}

// schedule counts t as pending before making it visible to workers.
func (wk *walk) schedule(t task) {
	wk.mu.Lock()
	wk.pending++
	wk.notePending()
	wk.queue = append(wk.queue, t)
	wk.work.Signal()
	wk.mu.Unlock()
}

// finish marks one task done, waking the initiator under the same lock when
// the last one completes.
func (wk *walk) finish() {
	wk.mu.Lock()
	wk.pending--
	if wk.pending < 0 {
		wk.mu.Unlock()
		panic("snap: pending work counter went negative")
	}
	wk.notePending()
	if wk.pending == 0 {
		wk.idle.Broadcast()
	}
	wk.mu.Unlock()
}

func (wk *walk) notePending() {
	if wk.w.observe != nil {
		wk.w.observe(wk.pending)
	}
}

func (wk *walk) runWorker() {
	for {
		wk.mu.Lock()
		for len(wk.queue) == 0 && !wk.closed {
			wk.work.Wait()
		}
		if len(wk.queue) == 0 {
			wk.mu.Unlock()
			return
		}
		n := len(wk.queue) - 1
		t := wk.queue[n]
		wk.queue[n] = task{}
		wk.queue = wk.queue[:n]
		wk.mu.Unlock()

		wk.visit(t)
		wk.finish()
	}
}

func (wk *walk) visit(t task) {
	if wk.ctx.Err() != nil {
		return
	}
	cfg := wk.w.cfg

	typ, err := Classify(t.src)
	if err != nil {
		wk.fail(t.src, err)
		return
	}

	switch typ {
	case Directory:
		if wk.excluded(t.src) {
			wk.skip(t.src, "repository inside source tree")
			return
		}
		if err := cfg.Sink.Mkdir(wk.ctx, t.rel); err != nil {
			wk.fail(t.src, err)
			return
		}
		cfg.Stats.AddDirsCreated(1)

		entries, err := os.ReadDir(t.src)
		if err != nil {
			wk.fail(t.src, &SourceReadError{Path: t.src, Err: err})
			return
		}
		event.Emit(cfg.Events, event.Event{Type: event.DirScanned, Path: t.src, Size: int64(len(entries))})

		for _, e := range entries {
			wk.schedule(task{
				src: filepath.Join(t.src, e.Name()),
				rel: filepath.Join(t.rel, e.Name()),
			})
		}

	case RegularFile:
		cfg.Stats.AddFilesScanned(1)
		res, err := cfg.Sink.Put(wk.ctx, t.src, t.rel)
		if res.Address != "" {
			event.Emit(cfg.Events, event.Event{Type: event.FileHashed, Path: t.src, Blob: string(res.Address), Size: res.Size})
		}
		if err != nil {
			wk.fail(t.src, err)
			return
		}

		blob := res.Blob
		if blob == "" {
			blob = string(res.Address)
		}
		if res.Copied {
			event.Emit(cfg.Events, event.Event{Type: event.BlobRequested, Path: t.src, Blob: blob, Size: res.Size})
		}
		if res.Created {
			event.Emit(cfg.Events, event.Event{Type: event.BlobStored, Path: t.src, Blob: blob, Size: res.Size})
		} else {
			event.Emit(cfg.Events, event.Event{Type: event.BlobReused, Path: t.src, Blob: blob, Size: res.Size})
		}
		event.Emit(cfg.Events, event.Event{Type: event.LinkCreated, Path: t.rel, Blob: blob, Size: res.Size})
		cfg.Stats.AddFilesLinked(1)

	case SymbolicLink:
		wk.skip(t.src, "symbolic link")

	default:
		wk.skip(t.src, "not a regular file or directory")
	}
}

func (wk *walk) excluded(path string) bool {
	for _, ex := range wk.w.cfg.Exclude {
		if path == ex {
			return true
		}
	}
	return false
}

func (wk *walk) skip(path, reason string) {
	wk.resMu.Lock()
	wk.skipped = append(wk.skipped, Skip{Path: path, Reason: reason})
	wk.resMu.Unlock()
	wk.w.cfg.Stats.AddFilesSkipped(1)
	event.Emit(wk.w.cfg.Events, event.Event{Type: event.EntrySkipped, Path: path, Error: skipReason(reason)})
}

// fail records a per-entry failure, or stops the walk on a fatal one.
func (wk *walk) fail(path string, err error) {
	if wk.ctx.Err() != nil {
		return
	}
	if IsFatal(err) {
		wk.resMu.Lock()
		if wk.fatal == nil {
			wk.fatal = err
		}
		wk.resMu.Unlock()
		wk.cancel()
		return
	}

	wk.resMu.Lock()
	wk.failures = append(wk.failures, EntryFailure{Path: path, Err: err})
	wk.resMu.Unlock()
	wk.w.cfg.Stats.AddFilesFailed(1)
	event.Emit(wk.w.cfg.Events, event.Event{Type: event.EntryFailed, Path: path, Error: err})
}

type skipReason string

func (r skipReason) Error() string { return string(r) }
