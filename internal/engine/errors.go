package engine

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/bamsammich/snap/internal/store"
)

// Store-level errors, re-exported so callers can match the whole taxonomy
// through this package.
type (
	SourceReadError = store.SourceReadError
	StoreWriteError = store.StoreWriteError
)

// ClassificationError reports a failed lstat. It is a per-entry failure.
type ClassificationError struct {
	Path  string
	Errno unix.Errno
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("lstat %s: %v", e.Path, e.Errno)
}

func (e *ClassificationError) Unwrap() error { return e.Errno }

// LinkError reports a failed hardlink. It is a per-entry failure.
type LinkError struct {
	Blob  string
	Dest  string
	Errno unix.Errno
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("link %s -> %s: %v", e.Dest, e.Blob, e.Errno)
}

func (e *LinkError) Unwrap() error { return e.Errno }

// PreconditionError reports a condition that makes the run impossible
// before anything under the repository has been touched.
type PreconditionError struct {
	Path   string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// Fatal marks PreconditionError as run-aborting.
func (*PreconditionError) Fatal() bool { return true }

// fatal is implemented by errors that abort the run rather than a single
// entry.
type fatal interface {
	Fatal() bool
}

// IsFatal reports whether err must abort the whole run.
func IsFatal(err error) bool {
	var f fatal
	return errors.As(err, &f) && f.Fatal()
}
