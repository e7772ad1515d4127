package changedet

import (
	"testing"

	"github.com/bojanb98/code-context/internal/fsscan"
	"github.com/bojanb98/code-context/internal/snapshot"
)

func ptr(i int64) *int64 { return &i }

func TestDetect_AddedModifiedRemoved(t *testing.T) {
	old := snapshot.Empty()
	old.Files["a.go"] = snapshot.FileRecord{Size: 10, Mtime: 1, Inode: ptr(1), Hash: "hA"}
	old.Files["b.go"] = snapshot.FileRecord{Size: 20, Mtime: 2, Inode: ptr(2), Hash: "hB"}

	current := map[string]fsscan.Metadata{
		"a.go": {Size: 10, Mtime: 1, Inode: ptr(1)}, // unchanged
		"b.go": {Size: 99, Mtime: 3, Inode: ptr(2)}, // modified
		"c.go": {Size: 5, Mtime: 4, Inode: ptr(3)},  // added
	}

	hashOf := func(p string) (string, error) {
		switch p {
		case "b.go":
			return "hB2", nil
		case "c.go":
			return "hC", nil
		}
		return "", nil
	}

	cs, err := Detect(old, current, hashOf)
	if err != nil {
		t.Fatal(err)
	}
	if len(cs.Added) != 1 || cs.Added[0] != "c.go" {
		t.Fatalf("added = %v", cs.Added)
	}
	if len(cs.Modified) != 1 || cs.Modified[0] != "b.go" {
		t.Fatalf("modified = %v", cs.Modified)
	}
	if len(cs.Removed) != 0 {
		t.Fatalf("removed = %v", cs.Removed)
	}
}

func TestDetect_PureRenameByInode(t *testing.T) {
	old := snapshot.Empty()
	old.Files["a.py"] = snapshot.FileRecord{Size: 10, Mtime: 1, Inode: ptr(7), Hash: "hSame"}

	current := map[string]fsscan.Metadata{
		"b.py": {Size: 10, Mtime: 5, Inode: ptr(7)},
	}

	hashOf := func(p string) (string, error) { return "hSame", nil }

	cs, err := Detect(old, current, hashOf)
	if err != nil {
		t.Fatal(err)
	}
	if len(cs.Added) != 0 || len(cs.Modified) != 0 || len(cs.Removed) != 0 {
		t.Fatalf("expected empty change set for a pure rename, got %+v", cs)
	}
}

func TestDetect_InodeReusedDifferentContent(t *testing.T) {
	old := snapshot.Empty()
	old.Files["old.py"] = snapshot.FileRecord{Size: 10, Mtime: 1, Inode: ptr(9), Hash: "hOld"}

	current := map[string]fsscan.Metadata{
		"new.py": {Size: 20, Mtime: 5, Inode: ptr(9)},
	}

	hashOf := func(p string) (string, error) { return "hNew", nil }

	cs, err := Detect(old, current, hashOf)
	if err != nil {
		t.Fatal(err)
	}
	if len(cs.Modified) != 1 || cs.Modified[0] != "new.py" {
		t.Fatalf("expected new.py in modified (delete-then-insert), got %+v", cs)
	}
	if len(cs.Removed) != 1 || cs.Removed[0] != "old.py" {
		t.Fatalf("expected old.py to remain removed, got %+v", cs)
	}
	if len(cs.Added) != 0 {
		t.Fatalf("new.py must not also appear in added, got %+v", cs)
	}
}

func TestDetect_RenameByContentHashNoInode(t *testing.T) {
	old := snapshot.Empty()
	old.Files["old.rb"] = snapshot.FileRecord{Size: 10, Mtime: 1, Inode: nil, Hash: "hShared"}

	current := map[string]fsscan.Metadata{
		"new.rb": {Size: 10, Mtime: 5, Inode: nil},
	}

	hashOf := func(p string) (string, error) { return "hShared", nil }

	cs, err := Detect(old, current, hashOf)
	if err != nil {
		t.Fatal(err)
	}
	if len(cs.Added) != 0 || len(cs.Removed) != 0 || len(cs.Modified) != 0 {
		t.Fatalf("expected rename-by-hash to produce an empty change set, got %+v", cs)
	}
}

func TestDetect_MtimeDriftWithSameHashIsUnchanged(t *testing.T) {
	old := snapshot.Empty()
	old.Files["a.go"] = snapshot.FileRecord{Size: 10, Mtime: 1, Inode: ptr(1), Hash: "hA"}

	current := map[string]fsscan.Metadata{
		"a.go": {Size: 10, Mtime: 2, Inode: ptr(1)}, // mtime drifted
	}

	hashOf := func(p string) (string, error) { return "hA", nil }

	cs, err := Detect(old, current, hashOf)
	if err != nil {
		t.Fatal(err)
	}
	if len(cs.Modified) != 0 {
		t.Fatalf("expected mtime drift with unchanged hash to not be modified, got %+v", cs)
	}
}

func TestChangeSet_ToAddToRemove(t *testing.T) {
	cs := &ChangeSet{Added: []string{"a"}, Modified: []string{"b"}, Removed: []string{"c"}}
	toAdd := cs.ToAdd()
	toRemove := cs.ToRemove()
	if len(toAdd) != 2 || toAdd[0] != "a" || toAdd[1] != "b" {
		t.Fatalf("ToAdd() = %v", toAdd)
	}
	if len(toRemove) != 2 || toRemove[0] != "b" || toRemove[1] != "c" {
		t.Fatalf("ToRemove() = %v", toRemove)
	}
}
