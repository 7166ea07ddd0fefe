package store

import (
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"path/filepath"

	"github.com/google/renameio"
)

// stager owns at most one staging file inside the blob directory. A staged
// file only becomes visible under its address via an exclusive link(2); the
// staging name itself is always removed by cleanup.
type stager struct {
	store   *Store
	src     *os.File
	pending *renameio.PendingFile
	srcPath string
	addr    Address // expected address of a local source; empty for Ingest
	sum     Address
	size    int64
}

func (st *stager) open() error {
	pending, err := renameio.TempFile(st.store.dir, filepath.Join(st.store.dir, "staging"))
	if err != nil {
		return &StoreWriteError{Path: st.store.dir, Err: err}
	}
	st.pending = pending
	return nil
}

// path returns the staging file, copying the source into it on first use.
// The staged bytes are digested again and must still hash to st.addr, so a
// file rewritten after it was addressed is never published.
func (st *stager) path() (string, error) {
	if st.pending != nil {
		return st.pending.Name(), nil
	}
	if err := st.stageFrom(io.NewSectionReader(st.src, 0, st.size), true); err != nil {
		return "", err
	}
	if st.sum != st.addr {
		return "", &SourceReadError{
			Path: st.srcName(),
			Err:  fmt.Errorf("%w: addressed as %s, staged %s", ErrSourceChanged, st.addr, st.sum),
		}
	}
	return st.pending.Name(), nil
}

// stageFrom copies exactly st.size bytes from r into a new staging file.
// When digest is set the bytes are hashed on the way through into st.sum.
// Short input is a source error.
func (st *stager) stageFrom(r io.Reader, digest bool) error {
	if err := st.open(); err != nil {
		return err
	}

	var h hash.Hash
	dst := &trackingWriter{w: st.pending}
	w := io.Writer(dst)
	if digest {
		h = st.store.newHash()
		w = io.MultiWriter(dst, h)
	}

	buf := make([]byte, st.store.blockSize)
	n, err := io.CopyBuffer(w, readerOnly{r}, buf)
	if err != nil {
		if dst.err != nil {
			return &StoreWriteError{Path: st.pending.Name(), Err: err}
		}
		return &SourceReadError{Path: st.srcName(), Err: err}
	}
	if n != st.size {
		return &SourceReadError{
			Path: st.srcName(),
			Err:  fmt.Errorf("short read: got %d of %d bytes", n, st.size),
		}
	}
	if digest {
		st.sum = Address(hex.EncodeToString(h.Sum(nil)))
		if st.addr == "" {
			// Local sources were already counted when addressed.
			st.store.stats.AddBytesHashed(n)
		}
	}
	st.store.stats.AddBytesStored(n)

	if err := st.pending.Chmod(blobMode); err != nil {
		return &StoreWriteError{Path: st.pending.Name(), Err: err}
	}
	return nil
}

func (st *stager) srcName() string {
	if st.srcPath != "" {
		return st.srcPath
	}
	return "stream"
}

// cleanup closes and removes the staging name. Published blobs keep their
// own directory entry.
func (st *stager) cleanup() error {
	if st.pending == nil {
		return nil
	}
	err := st.pending.Cleanup()
	st.pending = nil
	return err
}

// readerOnly hides WriterTo so io.CopyBuffer always uses the block-sized
// buffer.
type readerOnly struct{ io.Reader }

// trackingWriter remembers write failures so they can be told apart from
// read failures after io.CopyBuffer returns.
type trackingWriter struct {
	w   io.Writer
	err error
}

func (t *trackingWriter) Write(p []byte) (int, error) {
	n, err := t.w.Write(p)
	if err != nil {
		t.err = err
	}
	return n, err
}
