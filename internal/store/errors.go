package store

import (
	"errors"
	"fmt"
)

// ErrDigestMismatch is returned by Ingest when the received bytes do not
// hash to the declared address.
var ErrDigestMismatch = errors.New("content does not match address")

// ErrSourceChanged is returned when a file's content changes between
// computing its address and copying it into the store.
var ErrSourceChanged = errors.New("file changed during snapshot")

// ErrInvalidAddress is returned for malformed addresses.
var ErrInvalidAddress = errors.New("invalid content address")

// SourceReadError reports a file that could not be read for hashing,
// comparison or copying. It is a per-entry failure.
type SourceReadError struct {
	Err  error
	Path string
}

func (e *SourceReadError) Error() string {
	return fmt.Sprintf("read source %s: %v", e.Path, e.Err)
}

func (e *SourceReadError) Unwrap() error { return e.Err }

// StoreWriteError reports a blob directory that cannot be written. The store
// is foundational, so this aborts the whole run.
type StoreWriteError struct {
	Err  error
	Path string
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("write blob store %s: %v", e.Path, e.Err)
}

func (e *StoreWriteError) Unwrap() error { return e.Err }

// Fatal marks StoreWriteError as run-aborting.
func (*StoreWriteError) Fatal() bool { return true }
