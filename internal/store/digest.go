package store

import (
	"crypto/sha1" //nolint:gosec // G505: content addressing, collisions are detected and resolved
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"

	"github.com/zeebo/blake3"

	"github.com/bamsammich/snap/internal/stats"
)

// Digest algorithm names accepted by New and recorded in repository metadata.
const (
	DigestSHA1   = "sha1"
	DigestBLAKE3 = "blake3"
)

// DefaultBlockSize is the read size used for digesting, comparing and
// copying. It should be a multiple of the filesystem block size.
const DefaultBlockSize = 32 * 1024

// Address is the hex digest of a file's full byte stream.
type Address string

// HashFunc returns the constructor for the named digest algorithm.
func HashFunc(name string) (func() hash.Hash, error) {
	switch name {
	case DigestSHA1, "":
		return sha1.New, nil
	case DigestBLAKE3:
		return func() hash.Hash { return blake3.New() }, nil
	default:
		return nil, fmt.Errorf("unknown digest %q (use %s or %s)", name, DigestSHA1, DigestBLAKE3)
	}
}

// Hasher computes content addresses for files that are not stored locally,
// such as on the sending side of a remote sync.
type Hasher struct {
	stats     *stats.Collector
	newHash   func() hash.Hash
	blockSize int
}

// NewHasher returns a Hasher for the named digest. c may be nil.
func NewHasher(digest string, blockSize int, c *stats.Collector) (*Hasher, error) {
	newHash, err := HashFunc(digest)
	if err != nil {
		return nil, err
	}
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	if c == nil {
		c = stats.NewCollector()
	}
	return &Hasher{newHash: newHash, blockSize: blockSize, stats: c}, nil
}

// AddressOf returns the address and size of the file at path.
func (h *Hasher) AddressOf(path string) (Address, int64, error) {
	return addressOf(path, h.newHash, h.blockSize, h.stats)
}

// AddressOf streams the file at path through the store's digest and returns
// its content address.
func (s *Store) AddressOf(path string) (Address, error) {
	addr, _, err := addressOf(path, s.newHash, s.blockSize, s.stats)
	return addr, err
}

func addressOf(path string, newHash func() hash.Hash, blockSize int, c *stats.Collector) (Address, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, &SourceReadError{Path: path, Err: err}
	}
	defer f.Close()

	addr, size, err := digest(f, newHash, blockSize, c)
	if err != nil {
		return "", 0, &SourceReadError{Path: path, Err: err}
	}
	return addr, size, nil
}

func (s *Store) digest(r io.Reader) (Address, int64, error) {
	return digest(r, s.newHash, s.blockSize, s.stats)
}

// digest reads r to EOF in blockSize reads, returning the address and the
// number of bytes consumed.
func digest(r io.Reader, newHash func() hash.Hash, blockSize int, c *stats.Collector) (Address, int64, error) {
	h := newHash()
	buf := make([]byte, blockSize)
	var total int64
	for {
		n, err := r.Read(buf)
		if n > 0 {
			h.Write(buf[:n]) //nolint:errcheck // hash.Hash.Write never fails
			total += int64(n)
			c.AddBytesHashed(int64(n))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", total, err
		}
	}
	return Address(hex.EncodeToString(h.Sum(nil))), total, nil
}

// ValidAddress reports whether a is a well-formed address for this store's
// digest. Addresses received from a peer are checked before they are joined
// into a path.
func (s *Store) ValidAddress(a Address) bool {
	if len(a) != s.addrLen {
		return false
	}
	for _, c := range []byte(a) {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
