package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/bamsammich/snap/internal/config"
)

// HashDirName is the blob directory under the repository root. No snapshot
// label may use it.
const HashDirName = "hash"

// LabelLayout formats default snapshot labels (YYYY.MM.DD.HH.MM.SS).
const LabelLayout = "2006.01.02.15.04.05"

// DefaultLabel returns the timestamp label for t.
func DefaultLabel(t time.Time) string {
	return t.Format(LabelLayout)
}

// ValidateLabel checks that label names a single directory directly under
// the repository root.
func ValidateLabel(label string) error {
	switch {
	case label == "":
		return fmt.Errorf("empty snapshot label")
	case strings.ContainsRune(label, '/') || strings.ContainsRune(label, 0):
		return fmt.Errorf("snapshot label %q must be a single path component", label)
	case label == HashDirName:
		return fmt.Errorf("snapshot label %q is reserved for the blob store", label)
	case strings.HasPrefix(label, "."):
		return fmt.Errorf("snapshot label %q must not start with a dot", label)
	case label == config.RepoFileName:
		return fmt.Errorf("snapshot label %q is reserved for repository metadata", label)
	}
	return nil
}
