package watcher

import (
	"context"

	"github.com/rs/zerolog"
)

// WatchCoordinator routes debounced file-change batches from a FileWatcher
// into reindex calls against a Reindexer, for a single codebase path.
type WatchCoordinator struct {
	files        FileWatcher
	reindexer    Reindexer
	codebasePath string
	logger       zerolog.Logger
}

// NewWatchCoordinator creates a new watch coordinator for codebasePath.
func NewWatchCoordinator(files FileWatcher, reindexer Reindexer, codebasePath string, logger zerolog.Logger) *WatchCoordinator {
	return &WatchCoordinator{
		files:        files,
		reindexer:    reindexer,
		codebasePath: codebasePath,
		logger:       logger,
	}
}

// Start begins watching and reindexing on change. Blocks until ctx is cancelled.
func (c *WatchCoordinator) Start(ctx context.Context) error {
	startErr := make(chan error, 1)

	go func() {
		if err := c.files.Start(ctx, c.handleFileChange); err != nil {
			startErr <- err
		}
	}()

	select {
	case err := <-startErr:
		c.cleanup()
		return err
	case <-ctx.Done():
		c.cleanup()
		return ctx.Err()
	}
}

func (c *WatchCoordinator) cleanup() {
	if err := c.files.Stop(); err != nil {
		c.logger.Warn().Err(err).Msg("file watcher stop failed")
	}
}

// handleFileChange reindexes the whole codebase on any debounced batch of
// changes. The batch itself is just a wake-up signal: Index's own change
// detection determines exactly what changed.
func (c *WatchCoordinator) handleFileChange(files []string) {
	if len(files) == 0 {
		return
	}

	c.logger.Info().Int("changed_files", len(files)).Msg("file change detected, reindexing")

	if err := c.reindexer.Index(context.Background(), c.codebasePath, false); err != nil {
		c.logger.Error().Err(err).Msg("reindex failed")
		return
	}

	c.logger.Info().Msg("reindex complete")
}
