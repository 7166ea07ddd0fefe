package store

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// VerifyResult holds the outcome of a store consistency pass.
type VerifyResult struct {
	Errors   []VerifyError
	Verified int64
	Failed   int64
}

// VerifyError records a blob whose content no longer hashes to its name, or
// whose name is not a valid slot.
type VerifyError struct {
	Err  error
	Path string
	Want Address
	Got  Address
}

// Verify re-digests every blob in the store and checks it against the
// address encoded in its file name. It fans out to workers goroutines.
// Staging leftovers (dot files) are ignored.
func (s *Store) Verify(ctx context.Context, workers int) (VerifyResult, error) {
	if workers <= 0 {
		workers = 4
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return VerifyResult{}, &StoreWriteError{Path: s.dir, Err: err}
	}

	taskCh := make(chan string, workers*2)
	var mu sync.Mutex
	var result VerifyResult
	var wg sync.WaitGroup

	fail := func(ve VerifyError) {
		mu.Lock()
		result.Failed++
		result.Errors = append(result.Errors, ve)
		mu.Unlock()
	}

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range taskCh {
				if ctx.Err() != nil {
					continue
				}

				path := filepath.Join(s.dir, name)
				want, ok := s.slotAddress(name)
				if !ok {
					fail(VerifyError{Path: path, Err: ErrInvalidAddress})
					continue
				}

				got, err := s.AddressOf(path)
				if err != nil {
					fail(VerifyError{Path: path, Want: want, Err: err})
					continue
				}
				if got != want {
					fail(VerifyError{Path: path, Want: want, Got: got, Err: ErrDigestMismatch})
					continue
				}

				mu.Lock()
				result.Verified++
				mu.Unlock()
			}
		}()
	}

loop:
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") || !e.Type().IsRegular() {
			continue
		}
		select {
		case <-ctx.Done():
			break loop
		case taskCh <- e.Name():
		}
	}
	close(taskCh)
	wg.Wait()

	return result, ctx.Err()
}

// slotAddress parses a blob file name of the form <address> or
// <address>.<n>.
func (s *Store) slotAddress(name string) (Address, bool) {
	addr, suffix, hasSuffix := strings.Cut(name, ".")
	if hasSuffix {
		if n, err := strconv.Atoi(suffix); err != nil || n < 0 || strconv.Itoa(n) != suffix {
			return "", false
		}
	}
	if !s.ValidAddress(Address(addr)) {
		return "", false
	}
	return Address(addr), true
}
