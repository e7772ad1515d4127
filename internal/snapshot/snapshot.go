// Package snapshot implements the per-codebase file-state snapshot
// (spec §3, §6): the persisted map the change detector diffs against,
// stored as one JSON file per codebase under a snapshots directory and
// replaced atomically after every successful detect-and-commit cycle.
package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/bojanb98/code-context/internal/hashing"
)

// SchemaVersion is the only snapshot schema version this module
// understands. Per spec §6, a snapshot whose version differs is treated
// as empty rather than rejected.
const SchemaVersion = 1

// FileRecord is one tracked file's state (spec §3). Inode is nullable
// on filesystems without stable inodes.
type FileRecord struct {
	Size  int64   `json:"size"`
	Mtime float64 `json:"mtime"`
	Inode *int64  `json:"inode"`
	Hash  string  `json:"hash"`
}

// Snapshot is the full per-codebase file-state map.
type Snapshot struct {
	Version int                   `json:"version"`
	Files   map[string]FileRecord `json:"files"`
}

// Empty returns a fresh, empty snapshot at the current schema version.
func Empty() *Snapshot {
	return &Snapshot{Version: SchemaVersion, Files: map[string]FileRecord{}}
}

// Repository persists and loads snapshots keyed by codebase absolute
// path, one JSON file per codebase under dir.
type Repository struct {
	dir string
}

// NewRepository creates a Repository rooted at dir (created on demand).
func NewRepository(dir string) *Repository {
	return &Repository{dir: dir}
}

// pathFor returns the snapshot file path for a codebase's absolute path,
// named by the first 16 hex characters of XXH3-64(absolute path) per
// spec §6.
func (r *Repository) pathFor(absCodebasePath string) string {
	return filepath.Join(r.dir, hashing.PathHash64Hex(absCodebasePath)+".json")
}

// Load reads the snapshot for absCodebasePath. If no snapshot file
// exists, or its version doesn't match SchemaVersion, it returns an
// empty snapshot rather than an error (spec §6: "If version ≠ 1, treat
// as empty").
func (r *Repository) Load(absCodebasePath string) (*Snapshot, error) {
	data, err := os.ReadFile(r.pathFor(absCodebasePath))
	if err != nil {
		if os.IsNotExist(err) {
			return Empty(), nil
		}
		return nil, err
	}

	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		// A corrupt snapshot is treated the same as a version mismatch:
		// start over rather than surface a hard failure, since the
		// change detector will simply re-detect everything as added.
		return Empty(), nil
	}
	if s.Version != SchemaVersion {
		return Empty(), nil
	}
	if s.Files == nil {
		s.Files = map[string]FileRecord{}
	}
	return &s, nil
}

// Save atomically replaces the snapshot file for absCodebasePath: it
// writes to a temp file in the same directory, then renames over the
// destination (spec §6: "Atomic replace on save").
func (r *Repository) Save(absCodebasePath string, s *Snapshot) error {
	if s.Version == 0 {
		s.Version = SchemaVersion
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return err
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	dest := r.pathFor(absCodebasePath)
	tmp, err := os.CreateTemp(r.dir, ".snapshot-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, dest); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

// Delete removes the snapshot file for absCodebasePath, if present.
func (r *Repository) Delete(absCodebasePath string) error {
	err := os.Remove(r.pathFor(absCodebasePath))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
