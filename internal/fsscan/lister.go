// Package fsscan implements the depth-first file lister described in
// spec §4.2: it walks a codebase root, parses .gitignore files as it
// descends, and emits (relative-path, size, mtime, inode) tuples for
// every file the ignore evaluator admits.
package fsscan

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bojanb98/code-context/internal/ignore"
)

// Metadata is the cheap-proxy tuple recorded per listed file (spec §3's
// FileRecord minus the content hash, which the change detector fills in
// only when needed).
type Metadata struct {
	Size  int64
	Mtime float64 // unix seconds, fractional
	Inode *int64  // nil on filesystems without stable inodes
}

// Lister walks a codebase root applying layered ignore rules.
type Lister struct {
	rootDir string
	eval    *ignore.Evaluator
}

// New creates a Lister rooted at rootDir using globalPatterns as the
// evaluator's construction-time ignore patterns.
func New(rootDir string, globalPatterns []string) *Lister {
	return &Lister{
		rootDir: rootDir,
		eval:    ignore.NewEvaluator(globalPatterns),
	}
}

// List performs the depth-first walk and returns a map from
// root-relative forward-slash path to Metadata. Errors reading
// individual entries are swallowed (the entry is skipped) and never
// abort the walk, per spec §4.2.
func (l *Lister) List() (map[string]Metadata, error) {
	out := make(map[string]Metadata)
	_, err := l.walk("", out)
	return out, err
}

// walk recursively visits dir (root-relative, "" for the codebase
// root), returning whether dir itself should be treated as ignored by
// the caller (always false at present; reserved for future pruning).
func (l *Lister) walk(relDir string, out map[string]Metadata) (bool, error) {
	absDir := filepath.Join(l.rootDir, relDir)

	if err := l.eval.LoadGitignoreFile(relDir, filepath.Join(absDir, ".gitignore")); err != nil {
		// A .gitignore read failure is not fatal; proceed without it.
		_ = err
	}

	entries, err := os.ReadDir(absDir)
	if err != nil {
		if relDir == "" {
			return false, err
		}
		// Can't read a subdirectory: skip it, don't abort the walk.
		return false, nil
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		name := entry.Name()
		relPath := name
		if relDir != "" {
			relPath = relDir + "/" + name
		}

		info, infoErr := entry.Info()
		if infoErr != nil {
			// Swallow per-entry errors; skip this entry.
			continue
		}

		if info.Mode()&os.ModeSymlink != 0 {
			// Never follow symlinks.
			continue
		}

		isDir := entry.IsDir()
		if l.eval.IsIgnored(relPath, isDir) {
			continue
		}

		if isDir {
			if _, err := l.walk(relPath, out); err != nil {
				// Propagate only root-level discovery failures; nested
				// failures are already absorbed in walk().
				return false, err
			}
			continue
		}

		out[relPath] = Metadata{
			Size:  info.Size(),
			Mtime: float64(info.ModTime().UnixNano()) / 1e9,
			Inode: inodeOf(info),
		}
	}

	return false, nil
}
