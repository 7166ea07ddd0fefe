package engine

import (
	"errors"

	"golang.org/x/sys/unix"
)

// Classify reports the kind of the entry at path without following
// symbolic links.
func Classify(path string) (FileType, error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return Other, &ClassificationError{Path: path, Errno: errnoOf(err)}
	}
	return fileTypeOf(uint32(st.Mode)), nil //nolint:unconvert // uint16 on darwin
}

func fileTypeOf(mode uint32) FileType {
	switch mode & unix.S_IFMT {
	case unix.S_IFDIR:
		return Directory
	case unix.S_IFREG:
		return RegularFile
	case unix.S_IFLNK:
		return SymbolicLink
	default:
		return Other
	}
}

func errnoOf(err error) unix.Errno {
	var errno unix.Errno
	if errors.As(err, &errno) {
		return errno
	}
	return unix.EIO
}
