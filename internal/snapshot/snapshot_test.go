package snapshot

import "testing"

func TestRepository_SaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	repo := NewRepository(dir)

	inode := int64(42)
	s := Empty()
	s.Files["a.go"] = FileRecord{Size: 10, Mtime: 123.456, Inode: &inode, Hash: "abc123"}

	if err := repo.Save("/codebase/path", s); err != nil {
		t.Fatal(err)
	}

	loaded, err := repo.Load("/codebase/path")
	if err != nil {
		t.Fatal(err)
	}

	rec, ok := loaded.Files["a.go"]
	if !ok {
		t.Fatal("expected a.go to round-trip")
	}
	if rec.Size != 10 || rec.Hash != "abc123" || rec.Inode == nil || *rec.Inode != 42 {
		t.Fatalf("unexpected record after round trip: %+v", rec)
	}
}

func TestRepository_Load_MissingReturnsEmpty(t *testing.T) {
	repo := NewRepository(t.TempDir())
	s, err := repo.Load("/does/not/exist")
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Files) != 0 || s.Version != SchemaVersion {
		t.Fatalf("expected empty snapshot, got %+v", s)
	}
}

func TestRepository_DeleteThenLoadIsEmpty(t *testing.T) {
	repo := NewRepository(t.TempDir())
	s := Empty()
	s.Files["x.go"] = FileRecord{Size: 1, Hash: "h"}
	if err := repo.Save("/codebase", s); err != nil {
		t.Fatal(err)
	}
	if err := repo.Delete("/codebase"); err != nil {
		t.Fatal(err)
	}
	loaded, err := repo.Load("/codebase")
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded.Files) != 0 {
		t.Fatal("expected snapshot to be gone after delete")
	}
}
