package engine

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/bamsammich/snap/internal/config"
	"github.com/bamsammich/snap/internal/event"
	"github.com/bamsammich/snap/internal/store"
)

// VerifyConfig controls a repository integrity pass.
type VerifyConfig struct {
	Events  chan<- event.Event
	Repo    string
	Workers int
}

// Verify re-digests every blob in the repository and reports those whose
// content no longer matches their address.
func Verify(ctx context.Context, cfg VerifyConfig) (store.VerifyResult, error) {
	meta, err := config.LoadRepo(cfg.Repo)
	if err != nil {
		return store.VerifyResult{}, fmt.Errorf("open repository %s: %w", cfg.Repo, err)
	}

	st, err := store.New(filepath.Join(cfg.Repo, HashDirName), meta.Digest)
	if err != nil {
		return store.VerifyResult{}, err
	}

	res, err := st.Verify(ctx, cfg.Workers)
	for _, ve := range res.Errors {
		event.Emit(cfg.Events, event.Event{
			Type:  event.EntryFailed,
			Path:  ve.Path,
			Blob:  string(ve.Got),
			Error: ve.Err,
		})
	}
	return res, err
}
