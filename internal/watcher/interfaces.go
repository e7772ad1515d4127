package watcher

import "context"

// FileWatcher monitors source files for changes with debouncing and pause/resume support.
type FileWatcher interface {
	// Start begins watching source directories, calling callback with debounced file changes.
	Start(ctx context.Context, callback func(files []string)) error

	// Stop stops the file watcher and cleans up resources.
	Stop() error

	// Pause stops firing callbacks but continues accumulating events.
	Pause()

	// Resume resumes firing callbacks. If events accumulated during pause, fires immediately.
	Resume()
}

// Reindexer is the minimal interface the coordinator needs to trigger a
// reindex. internal/indexing.Orchestrator.Index satisfies this directly;
// the watcher never needs the file-level hint since Index always runs its
// own change detection over the whole codebase.
type Reindexer interface {
	Index(ctx context.Context, codebasePath string, forceReindex bool) error
}
