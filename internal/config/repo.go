package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/renameio"
)

// RepoFileName is the metadata file at the root of every repository.
const RepoFileName = "snap.toml"

// RepoVersion is the repository layout version this build writes and reads.
const RepoVersion = 1

// ErrDigestMismatch is returned when a repository was created with a
// different digest than the one requested.
var ErrDigestMismatch = errors.New("repository digest mismatch")

// Repo is the repository metadata recorded in snap.toml.
type Repo struct {
	Created time.Time `toml:"created"`
	Digest  string    `toml:"digest"`
	Version int       `toml:"version"`
}

// RepoPath returns the metadata path for the repository at root.
func RepoPath(root string) string {
	return filepath.Join(root, RepoFileName)
}

// LoadRepo reads the metadata of the repository at root. It returns an error
// matching os.ErrNotExist if root has never been initialized.
func LoadRepo(root string) (Repo, error) {
	var r Repo
	if _, err := toml.DecodeFile(RepoPath(root), &r); err != nil {
		return Repo{}, err
	}
	if r.Version > RepoVersion {
		return Repo{}, fmt.Errorf("%s: repository version %d is newer than supported version %d",
			RepoPath(root), r.Version, RepoVersion)
	}
	return r, nil
}

// InitRepo returns the metadata of the repository at root, creating the
// directory and snap.toml on first use. An empty digest accepts whatever the
// repository already uses; a non-empty one must match it.
func InitRepo(root, digest string) (Repo, error) {
	r, err := LoadRepo(root)
	switch {
	case err == nil:
		if digest != "" && digest != r.Digest {
			return Repo{}, fmt.Errorf("%w: repository uses %s, requested %s", ErrDigestMismatch, r.Digest, digest)
		}
		return r, nil
	case !errors.Is(err, os.ErrNotExist):
		return Repo{}, err
	}

	if digest == "" {
		return Repo{}, fmt.Errorf("%s: new repository needs a digest", root)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return Repo{}, fmt.Errorf("create repository: %w", err)
	}

	r = Repo{
		Created: time.Now().UTC().Truncate(time.Second),
		Digest:  digest,
		Version: RepoVersion,
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(r); err != nil {
		return Repo{}, fmt.Errorf("encode %s: %w", RepoPath(root), err)
	}

	// Stage the file and publish it with link(2) so readers never observe a
	// partially written metadata file and an existing one is never replaced.
	pending, err := renameio.TempFile(root, RepoPath(root))
	if err != nil {
		return Repo{}, fmt.Errorf("stage %s: %w", RepoPath(root), err)
	}
	defer pending.Cleanup() //nolint:errcheck // staging name only

	if _, err := pending.Write(buf.Bytes()); err != nil {
		return Repo{}, fmt.Errorf("write %s: %w", pending.Name(), err)
	}
	if err := pending.Chmod(0o644); err != nil {
		return Repo{}, fmt.Errorf("chmod %s: %w", pending.Name(), err)
	}
	if err := pending.Sync(); err != nil {
		return Repo{}, fmt.Errorf("sync %s: %w", pending.Name(), err)
	}
	if err := os.Link(pending.Name(), RepoPath(root)); err != nil {
		if errors.Is(err, os.ErrExist) {
			return InitRepo(root, digest)
		}
		return Repo{}, fmt.Errorf("publish %s: %w", RepoPath(root), err)
	}
	return r, nil
}
