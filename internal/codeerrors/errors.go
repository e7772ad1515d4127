// Package codeerrors defines the error taxonomy the core distinguishes
// between (spec §7): which conditions are surfaced to the caller and
// which are absorbed internally.
package codeerrors

import "errors"

// Sentinel kinds. Wrap one of these with fmt.Errorf("...: %w", Kind) so
// callers can still errors.Is against the specific kind while getting a
// contextual message.
var (
	// ErrValidation covers an empty query, out-of-range top_k/threshold,
	// or max_graph_hops < 1.
	ErrValidation = errors.New("validation error")

	// ErrPathNotFound means the codebase path does not exist.
	ErrPathNotFound = errors.New("path not found")

	// ErrNotIndexed means the collection is missing at search time.
	ErrNotIndexed = errors.New("codebase not indexed")

	// ErrTransientRemote covers rate-limited embedding/explainer calls
	// that have exhausted their retry budget.
	ErrTransientRemote = errors.New("transient remote error")

	// ErrFileRead covers a single file failing to read or hash; the
	// caller absorbs this and skips the file rather than propagating it,
	// but the sentinel lets logging code classify it.
	ErrFileRead = errors.New("file read error")

	// ErrGraph covers a failure during search-time graph expansion; the
	// caller degrades to seed-only results rather than failing.
	ErrGraph = errors.New("graph error")

	// ErrVectorDB is surfaced: on a vector-DB failure the snapshot must
	// NOT be committed, so the next index run reconverges.
	ErrVectorDB = errors.New("vector db error")

	// ErrSnapshotIO is surfaced when the snapshot fails to save; the
	// caller treats the index operation as failed.
	ErrSnapshotIO = errors.New("snapshot io error")
)

// Is reports whether err wraps kind, the thin wrapper existing only so
// call sites read as codeerrors.Is(err, codeerrors.ErrValidation) instead
// of importing the stdlib errors package solely for this.
func Is(err, kind error) bool {
	return errors.Is(err, kind)
}
