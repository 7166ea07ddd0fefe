package engine

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/bamsammich/snap/internal/config"
	"github.com/bamsammich/snap/internal/event"
	"github.com/bamsammich/snap/internal/stats"
	"github.com/bamsammich/snap/internal/store"
)

// Config describes a snapshot run.
type Config struct {
	// Sink receives the mirrored tree. When nil, Run opens the local
	// repository at Repo, checks its preconditions and writes into it.
	Sink      Sink
	Stats     *stats.Collector
	Events    chan<- event.Event
	Repo      string
	Label     string
	Digest    string // empty: the repository's digest, or sha1 for a new one
	Sources   []string
	BlockSize int
	Workers   int
}

// Result is the outcome of a snapshot run.
type Result struct {
	Err      error // fatal error; nil if the run completed
	Label    string
	Failures []EntryFailure
	Skipped  []Skip
	Stats    stats.Snapshot
}

// source is a validated source root and the label-relative directory it is
// mirrored into.
type source struct {
	path string
	rel  string
}

// Run snapshots every source into one label, blocking until complete. With
// a single source the tree is mirrored directly into the label root; with
// several, each goes under a directory named after its base name.
func Run(ctx context.Context, cfg Config) Result {
	collector := cfg.Stats
	if collector == nil {
		collector = stats.NewCollector()
	}

	label := cfg.Label
	if label == "" {
		label = DefaultLabel(time.Now())
	}
	res := Result{Label: label}

	if err := ValidateLabel(label); err != nil {
		res.Err = &PreconditionError{Path: label, Reason: err.Error()}
		return res
	}

	sources, err := resolveSources(cfg.Sources)
	if err != nil {
		res.Err = err
		return res
	}

	sink := cfg.Sink
	var exclude []string
	if sink == nil {
		repo, err := filepath.Abs(cfg.Repo)
		if err != nil {
			res.Err = fmt.Errorf("repository %s: %w", cfg.Repo, err)
			return res
		}
		local, err := OpenLocal(repo, label, cfg.Digest,
			store.WithBlockSize(cfg.BlockSize),
			store.WithStats(collector),
		)
		if err != nil {
			res.Err = err
			return res
		}
		sink = local
		exclude = excludePaths(repo)
	}

	w := NewWalker(WalkerConfig{
		Sink:    sink,
		Stats:   collector,
		Events:  cfg.Events,
		Exclude: exclude,
		Workers: cfg.Workers,
	})

	for _, src := range sources {
		wr := w.Snapshot(ctx, src.path, src.rel)
		res.Failures = append(res.Failures, wr.Failures...)
		res.Skipped = append(res.Skipped, wr.Skipped...)
		if wr.Err != nil {
			res.Err = wr.Err
			break
		}
	}

	res.Stats = collector.Snapshot()
	return res
}

func resolveSources(paths []string) ([]source, error) {
	if len(paths) == 0 {
		return nil, errors.New("no source directories given")
	}

	seen := make(map[string]string, len(paths))
	sources := make([]source, 0, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", p, err)
		}
		typ, err := Classify(abs)
		if err != nil {
			return nil, &PreconditionError{Path: p, Reason: err.Error()}
		}
		if typ != Directory {
			return nil, &PreconditionError{Path: p, Reason: "source is not a directory"}
		}

		src := source{path: abs}
		if len(paths) > 1 {
			src.rel = filepath.Base(abs)
			if prev, ok := seen[src.rel]; ok {
				return nil, &PreconditionError{
					Path:   p,
					Reason: fmt.Sprintf("base name %q already used by %s", src.rel, prev),
				}
			}
			seen[src.rel] = p
		}
		sources = append(sources, src)
	}
	return sources, nil
}

// OpenLocal prepares the local repository at repo for a new snapshot
// labelled label. The label precondition is checked before anything under
// repo is touched; then the repository is initialized, the blob store opened
// and the label root created. An empty digest follows the repository, or
// sha1 for a new one.
func OpenLocal(repo, label, digest string, opts ...store.Option) (*LocalSink, error) {
	if err := ValidateLabel(label); err != nil {
		return nil, &PreconditionError{Path: label, Reason: err.Error()}
	}
	root := filepath.Join(repo, label)

	if _, err := os.Lstat(root); err == nil {
		return nil, &PreconditionError{Path: root, Reason: "snapshot label already exists"}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, &PreconditionError{Path: root, Reason: err.Error()}
	}

	if digest == "" {
		digest = store.DigestSHA1
		if r, err := config.LoadRepo(repo); err == nil {
			digest = r.Digest
		}
	}
	if _, err := store.HashFunc(digest); err != nil {
		return nil, &PreconditionError{Path: repo, Reason: err.Error()}
	}

	meta, err := config.InitRepo(repo, digest)
	if errors.Is(err, config.ErrDigestMismatch) {
		return nil, &PreconditionError{Path: repo, Reason: err.Error()}
	}
	if err != nil {
		return nil, &StoreWriteError{Path: repo, Err: err}
	}

	st, err := store.New(filepath.Join(repo, HashDirName), meta.Digest, opts...)
	if err != nil {
		return nil, err
	}

	if err := os.Mkdir(root, 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, &PreconditionError{Path: root, Reason: "snapshot label already exists"}
		}
		return nil, &StoreWriteError{Path: root, Err: err}
	}
	return NewLocalSink(st, root), nil
}

// excludePaths returns the spellings of repo that the walker must not
// descend into when the repository lives inside a source tree.
func excludePaths(repo string) []string {
	exclude := []string{repo}
	if resolved, err := filepath.EvalSymlinks(repo); err == nil && resolved != repo {
		exclude = append(exclude, resolved)
	}
	return exclude
}
