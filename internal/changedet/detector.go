// Package changedet implements the incremental change detector (spec
// §4.4): it diffs a snapshot against a fresh metadata listing, resolving
// renames first by inode then by content hash, and returns the three
// disjoint ordered sets the rest of the pipeline consumes.
package changedet

import (
	"sort"

	"github.com/bojanb98/code-context/internal/fsscan"
	"github.com/bojanb98/code-context/internal/hashing"
	"github.com/bojanb98/code-context/internal/snapshot"
)

// ChangeSet holds the three disjoint ordered sets of relative paths the
// detector reports (spec §3's DetectedChanges).
type ChangeSet struct {
	Added    []string
	Modified []string
	Removed  []string
}

// ToAdd is added ∪ modified: the files that must be (re-)split and
// (re-)embedded.
func (c *ChangeSet) ToAdd() []string {
	return sortedUnion(c.Added, c.Modified)
}

// ToRemove is modified ∪ removed: the files whose old chunks must be
// deleted from the vector DB before any new points are upserted.
func (c *ChangeSet) ToRemove() []string {
	return sortedUnion(c.Modified, c.Removed)
}

func sortedUnion(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, s := range [][]string{a, b} {
		for _, p := range s {
			if _, ok := seen[p]; !ok {
				seen[p] = struct{}{}
				out = append(out, p)
			}
		}
	}
	sort.Strings(out)
	return out
}

// HashFunc resolves the content hash of a file; normally hashing.FileHash,
// parameterized so tests can avoid touching disk.
type HashFunc func(relPath string) (string, error)

// Detect runs the spec §4.4 algorithm given the old snapshot and the
// current metadata listing. hashOf resolves a relative path's content
// hash on demand (only called when a cheap-proxy comparison can't
// decide unchanged-ness).
func Detect(old *snapshot.Snapshot, current map[string]fsscan.Metadata, hashOf HashFunc) (*ChangeSet, error) {
	oldFiles := old.Files

	added := setDiff(keysOf(current), keysOf(oldFiles))
	removed := setDiff(keysOf(oldFiles), keysOf(current))
	common := setIntersect(keysOf(current), keysOf(oldFiles))

	addedSet := toSet(added)
	removedSet := toSet(removed)

	var modified []string

	// Step 2: cheap-proxy comparison over the common set, hashing only
	// on mismatch.
	for _, p := range common {
		rec := oldFiles[p]
		meta := current[p]
		if metaMatches(rec, meta) {
			continue
		}
		h, err := hashOf(p)
		if err != nil {
			return nil, err
		}
		if h != rec.Hash {
			modified = append(modified, p)
		}
	}

	// Step 3: inode/hash indexes over the OLD snapshot.
	oldByInode := make(map[int64]string)
	oldByHash := make(map[string]string)
	for p, rec := range oldFiles {
		if rec.Inode != nil {
			oldByInode[*rec.Inode] = p
		}
		oldByHash[rec.Hash] = p
	}

	// Step 4: rename detection by inode.
	for _, newP := range append([]string(nil), added...) {
		meta, ok := current[newP]
		if !ok || meta.Inode == nil {
			continue
		}
		oldP, ok := oldByInode[*meta.Inode]
		if !ok {
			continue
		}
		if _, stillRemoved := removedSet[oldP]; !stillRemoved {
			continue
		}

		h, err := hashOf(newP)
		if err != nil {
			return nil, err
		}

		if h == oldFiles[oldP].Hash {
			// Pure rename: drop both from added/removed.
			delete(addedSet, newP)
			delete(removedSet, oldP)
		} else {
			// Same inode, different content: delete-then-insert, per
			// spec §4.4 step 4 / §9 Open Questions — new path becomes
			// modified, old path stays removed.
			modified = append(modified, newP)
			delete(addedSet, newP)
		}
	}

	// Step 5: rename detection by content hash, over whatever remains
	// in added/removed.
	remainingAdded := setFromMap(addedSet)
	sort.Strings(remainingAdded)
	for _, newP := range remainingAdded {
		h, err := hashOf(newP)
		if err != nil {
			return nil, err
		}
		oldP, ok := oldByHash[h]
		if !ok {
			continue
		}
		if _, stillRemoved := removedSet[oldP]; !stillRemoved {
			continue
		}
		delete(addedSet, newP)
		delete(removedSet, oldP)
	}

	result := &ChangeSet{
		Added:    dedupSorted(setFromMap(addedSet)),
		Modified: dedupSorted(modified),
		Removed:  dedupSorted(setFromMap(removedSet)),
	}
	return result, nil
}

// DefaultHashFunc builds a HashFunc that reads relPath under root and
// hashes its content with hashing.FileHash.
func DefaultHashFunc(root string) HashFunc {
	return func(relPath string) (string, error) {
		return hashing.FileHash(joinRoot(root, relPath))
	}
}

func joinRoot(root, relPath string) string {
	if root == "" {
		return relPath
	}
	return root + string('/') + relPath
}

func metaMatches(rec snapshot.FileRecord, meta fsscan.Metadata) bool {
	if rec.Size != meta.Size || rec.Mtime != meta.Mtime {
		return false
	}
	if (rec.Inode == nil) != (meta.Inode == nil) {
		return false
	}
	if rec.Inode != nil && meta.Inode != nil && *rec.Inode != *meta.Inode {
		return false
	}
	return true
}

func keysOf[M ~map[string]V, V any](m M) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func toSet(xs []string) map[string]struct{} {
	m := make(map[string]struct{}, len(xs))
	for _, x := range xs {
		m[x] = struct{}{}
	}
	return m
}

func setFromMap(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func setDiff(a, b []string) []string {
	bs := toSet(b)
	var out []string
	for _, x := range a {
		if _, ok := bs[x]; !ok {
			out = append(out, x)
		}
	}
	sort.Strings(out)
	return out
}

func setIntersect(a, b []string) []string {
	bs := toSet(b)
	var out []string
	for _, x := range a {
		if _, ok := bs[x]; ok {
			out = append(out, x)
		}
	}
	sort.Strings(out)
	return out
}

func dedupSorted(xs []string) []string {
	sort.Strings(xs)
	out := xs[:0:0]
	var last string
	first := true
	for _, x := range xs {
		if first || x != last {
			out = append(out, x)
			last = x
			first = false
		}
	}
	return out
}
