package store

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/stevegt/readercomp"
)

// sameContent reports whether the blob at slot holds exactly the size bytes
// readable from src. A missing slot returns an error matching fs.ErrNotExist.
//
// Lengths are compared first and the final block next, since appended or
// truncated files usually differ there. A full streaming comparison always
// follows before equality is trusted.
func (s *Store) sameContent(slot string, src io.ReaderAt, srcPath string, size int64) (bool, error) {
	blob, err := os.Open(slot)
	if errors.Is(err, fs.ErrNotExist) {
		return false, err
	}
	if err != nil {
		return false, &StoreWriteError{Path: slot, Err: err}
	}
	defer blob.Close()

	info, err := blob.Stat()
	if err != nil {
		return false, &StoreWriteError{Path: slot, Err: err}
	}
	if !info.Mode().IsRegular() || info.Size() != size {
		return false, nil
	}
	if size == 0 {
		return true, nil
	}

	srcR := &taggedReaderAt{r: src}

	last := int64(s.blockSize)
	if last > size {
		last = size
	}
	a := make([]byte, last)
	b := make([]byte, last)
	if _, err := srcR.ReadAt(a, size-last); err != nil && !errors.Is(err, io.EOF) {
		return false, &SourceReadError{Path: srcPath, Err: err}
	}
	if _, err := blob.ReadAt(b, size-last); err != nil && !errors.Is(err, io.EOF) {
		return false, &StoreWriteError{Path: slot, Err: err}
	}
	if !bytes.Equal(a, b) {
		return false, nil
	}
	if last == size {
		return true, nil
	}

	ok, err := readercomp.Equal(io.NewSectionReader(srcR, 0, size), blob, s.blockSize)
	if err != nil {
		if srcR.err != nil {
			return false, &SourceReadError{Path: srcPath, Err: srcR.err}
		}
		return false, &StoreWriteError{Path: slot, Err: err}
	}
	return ok, nil
}

// taggedReaderAt records non-EOF read failures so the caller can attribute
// a comparison error to the source rather than the blob.
type taggedReaderAt struct {
	r   io.ReaderAt
	err error
}

func (t *taggedReaderAt) ReadAt(p []byte, off int64) (int, error) {
	n, err := t.r.ReadAt(p, off)
	if err != nil && !errors.Is(err, io.EOF) {
		t.err = err
	}
	return n, err
}
