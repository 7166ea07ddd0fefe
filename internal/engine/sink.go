package engine

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bamsammich/snap/internal/store"
)

// PutResult describes how a regular file was materialized.
type PutResult struct {
	Address store.Address
	Blob    string // local blob path; empty for remote sinks
	Size    int64
	Created bool // a new blob was written
	Copied  bool // file bytes crossed the wire
}

// Sink materializes snapshot entries. rel is relative to the label root;
// "" is the root itself. Implementations must be safe for concurrent use.
//
// Mkdir is called for a directory before any of its children.
type Sink interface {
	Mkdir(ctx context.Context, rel string) error
	Put(ctx context.Context, src, rel string) (PutResult, error)
}

// LocalSink writes into a repository on a local filesystem.
type LocalSink struct {
	store *store.Store
	root  string
}

// NewLocalSink materializes entries under root, storing blobs in s.
func NewLocalSink(s *store.Store, root string) *LocalSink {
	return &LocalSink{store: s, root: root}
}

// Store returns the blob store entries are written to.
func (l *LocalSink) Store() *store.Store { return l.store }

// Root returns the label root directory.
func (l *LocalSink) Root() string { return l.root }

// Mkdir creates the mirrored directory if it does not already exist.
func (l *LocalSink) Mkdir(_ context.Context, rel string) error {
	dir := filepath.Join(l.root, rel)
	err := os.Mkdir(dir, 0o755)
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrExist) {
		if info, serr := os.Lstat(dir); serr == nil && info.IsDir() {
			return nil
		}
	}
	return err
}

// Put stores src (or finds an identical blob) and hardlinks it at rel.
func (l *LocalSink) Put(_ context.Context, src, rel string) (PutResult, error) {
	b, err := l.store.StoreOrFind(src)
	if err != nil {
		return PutResult{}, err
	}
	res := PutResult{Address: b.Address, Blob: b.Path, Size: b.Size, Created: b.Created}
	if err := Link(b.Path, filepath.Join(l.root, rel)); err != nil {
		return res, err
	}
	return res, nil
}
