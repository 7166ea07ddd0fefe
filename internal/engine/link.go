package engine

import "golang.org/x/sys/unix"

// Link creates dest as a hardlink to the blob at blob. dest's parent must
// already exist.
func Link(blob, dest string) error {
	if err := unix.Link(blob, dest); err != nil {
		return &LinkError{Blob: blob, Dest: dest, Errno: errnoOf(err)}
	}
	return nil
}
