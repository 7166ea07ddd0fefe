package store

import (
	"errors"
	"fmt"
	"hash"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	lru "github.com/hashicorp/golang-lru"

	"github.com/bamsammich/snap/internal/stats"
)

// maxSlots bounds the collision slot search so a corrupted directory cannot spin
// forever.
const maxSlots = 1 << 16

// blobMode is applied to every published blob. Blobs are immutable.
const blobMode = 0o444

const defaultCacheSize = 64 * 1024

// Blob describes a stored blob resolved for a source.
type Blob struct {
	Path    string
	Address Address
	Size    int64
	// Created is true when this call wrote the blob, false when an existing
	// byte-identical blob was reused.
	Created bool
}

// Store is a content-addressed blob directory. Every blob lives at
// <dir>/<address> or, after an address collision with different content,
// <dir>/<address>.0, <dir>/<address>.1, and so on. Published blobs are never
// modified or removed.
//
// Store is safe for concurrent use. Publication uses an exclusive link(2) of
// a fully written staging file, so two callers racing on identical content
// converge on one blob instead of producing divergent slots.
type Store struct {
	stats     *stats.Collector
	found     *lru.Cache // lookupKey -> blob path
	newHash   func() hash.Hash
	dir       string
	digestFn  string
	blockSize int
	addrLen   int
}

// Option configures a Store.
type Option func(*Store)

// WithBlockSize overrides DefaultBlockSize.
func WithBlockSize(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.blockSize = n
		}
	}
}

// WithStats records hashing and storage counters into c.
func WithStats(c *stats.Collector) Option {
	return func(s *Store) {
		if c != nil {
			s.stats = c
		}
	}
}

// WithHash replaces the digest constructor. Intended for tests that need to
// force address collisions.
func WithHash(fn func() hash.Hash) Option {
	return func(s *Store) { s.newHash = fn }
}

// New opens the blob directory dir using the named digest, creating the
// directory if needed. It fails with a StoreWriteError if dir is not writable.
func New(dir, digest string, opts ...Option) (*Store, error) {
	newHash, err := HashFunc(digest)
	if err != nil {
		return nil, err
	}
	if digest == "" {
		digest = DigestSHA1
	}

	s := &Store{
		dir:       dir,
		digestFn:  digest,
		newHash:   newHash,
		blockSize: DefaultBlockSize,
		stats:     stats.NewCollector(),
	}
	for _, o := range opts {
		o(s)
	}
	s.addrLen = s.newHash().Size() * 2

	s.found, err = lru.New(defaultCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create lookup cache: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &StoreWriteError{Path: dir, Err: err}
	}
	if err := s.checkWritable(); err != nil {
		return nil, err
	}
	return s, nil
}

// Dir returns the blob directory.
func (s *Store) Dir() string { return s.dir }

// Digest returns the digest algorithm name.
func (s *Store) Digest() string { return s.digestFn }

// BlockSize returns the I/O block size.
func (s *Store) BlockSize() int { return s.blockSize }

// slotPath returns the n-th candidate path for addr: n == 0 is the bare
// address, n >= 1 is <address>.<n-1>.
func (s *Store) slotPath(addr Address, n int) string {
	if n == 0 {
		return filepath.Join(s.dir, string(addr))
	}
	return filepath.Join(s.dir, string(addr)+"."+strconv.Itoa(n-1))
}

// StoreOrFind returns a blob holding exactly the bytes of the file at path,
// reusing an existing blob when one matches byte for byte and writing a new
// one otherwise.
func (s *Store) StoreOrFind(path string) (Blob, error) {
	f, err := os.Open(path)
	if err != nil {
		return Blob{}, &SourceReadError{Path: path, Err: err}
	}
	defer f.Close()

	addr, size, err := s.digest(f)
	if err != nil {
		return Blob{}, &SourceReadError{Path: path, Err: err}
	}

	st := &stager{store: s, src: f, srcPath: path, addr: addr, size: size}
	defer st.cleanup()

	return s.place(addr, f, path, size, st)
}

// Ingest stores exactly size bytes read from r under addr. The bytes are
// staged and digested first; ErrDigestMismatch is returned if they do not
// hash to addr. Ingest consumes at most size bytes from r; on error the
// caller is responsible for draining whatever remains of the payload.
func (s *Store) Ingest(addr Address, r io.Reader, size int64) (Blob, error) {
	if !s.ValidAddress(addr) {
		return Blob{}, fmt.Errorf("%w: %q", ErrInvalidAddress, addr)
	}

	st := &stager{store: s, size: size}
	defer st.cleanup()

	if err := st.stageFrom(io.LimitReader(r, size), true); err != nil {
		return Blob{}, err
	}
	if st.sum != addr {
		return Blob{}, fmt.Errorf("%w: expected %s, got %s", ErrDigestMismatch, addr, st.sum)
	}

	return s.place(addr, st.pending.File, st.pending.Name(), size, st)
}

// place finds or creates the slot for addr whose content equals the size
// bytes readable from src.
func (s *Store) place(addr Address, src io.ReaderAt, srcPath string, size int64, st *stager) (Blob, error) {
	for n := 0; n < maxSlots; {
		slot := s.slotPath(addr, n)

		same, err := s.sameContent(slot, src, srcPath, size)
		switch {
		case err == nil && same:
			s.stats.AddBlobsReused(1)
			s.remember(addr, size, slot)
			return Blob{Path: slot, Address: addr, Size: size}, nil
		case err == nil:
			// Collision: occupied by different content.
			n++
			continue
		case !errors.Is(err, fs.ErrNotExist):
			return Blob{}, err
		}

		staged, err := st.path()
		if err != nil {
			return Blob{}, err
		}

		err = os.Link(staged, slot)
		if err == nil {
			s.stats.AddBlobsCreated(1)
			s.remember(addr, size, slot)
			return Blob{Path: slot, Address: addr, Size: size, Created: true}, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return Blob{}, &StoreWriteError{Path: slot, Err: err}
		}
		// Lost the race for this slot; compare against the winner.
	}
	return Blob{}, &StoreWriteError{
		Path: s.slotPath(addr, 0),
		Err:  fmt.Errorf("more than %d colliding blobs", maxSlots),
	}
}

// Lookup returns the first existing blob for addr whose size is size. It
// does not compare content; it serves peers that already hashed the bytes.
func (s *Store) Lookup(addr Address, size int64) (string, bool, error) {
	if !s.ValidAddress(addr) {
		return "", false, fmt.Errorf("%w: %q", ErrInvalidAddress, addr)
	}
	if p, ok := s.found.Get(lookupKey(addr, size)); ok {
		return p.(string), true, nil //nolint:forcetypeassert // cache holds only strings
	}

	for n := range maxSlots {
		slot := s.slotPath(addr, n)
		info, err := os.Lstat(slot)
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		if err != nil {
			return "", false, &StoreWriteError{Path: slot, Err: err}
		}
		if info.Mode().IsRegular() && info.Size() == size {
			s.remember(addr, size, slot)
			return slot, true, nil
		}
	}
	return "", false, nil
}

// remember caches a resolved slot. Blobs are immutable and never collected,
// so a cached path can never go stale.
func (s *Store) remember(addr Address, size int64, slot string) {
	s.found.Add(lookupKey(addr, size), slot)
}

func lookupKey(addr Address, size int64) string {
	return string(addr) + "/" + strconv.FormatInt(size, 10)
}

// checkWritable creates and removes a staging file so an unwritable store
// fails before any snapshot entry is created.
func (s *Store) checkWritable() error {
	st := &stager{store: s}
	if err := st.open(); err != nil {
		return err
	}
	return st.cleanup()
}
