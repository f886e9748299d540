package position

import (
	"path/filepath"
	"testing"
)

func TestStore_LoadMissing(t *testing.T) {
	store, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer store.Close()

	if slide, ok := store.Load("unknown.md"); ok || slide != 0 {
		t.Errorf("Load(unknown) = (%d, %v), want (0, false)", slide, ok)
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer store.Close()

	if err := store.Save("talk.md", 4); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if slide, ok := store.Load("talk.md"); !ok || slide != 4 {
		t.Errorf("Load = (%d, %v), want (4, true)", slide, ok)
	}

	// Overwrite keeps one row per deck.
	if err := store.Save("talk.md", 2); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if slide, ok := store.Load("talk.md"); !ok || slide != 2 {
		t.Errorf("Load after overwrite = (%d, %v), want (2, true)", slide, ok)
	}
}

func TestStore_DecksAreIndependent(t *testing.T) {
	store, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer store.Close()

	if err := store.Save("a.md", 3); err != nil {
		t.Fatal(err)
	}
	if err := store.Save("b.md", 7); err != nil {
		t.Fatal(err)
	}
	if slide, _ := store.Load("a.md"); slide != 3 {
		t.Errorf("Load(a) = %d, want 3", slide)
	}
	if slide, _ := store.Load("b.md"); slide != 7 {
		t.Errorf("Load(b) = %d, want 7", slide)
	}
}

func TestOpen_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "positions.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := store.Save("talk.md", 5); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	if slide, ok := reopened.Load("talk.md"); !ok || slide != 5 {
		t.Errorf("Load after reopen = (%d, %v), want (5, true)", slide, ok)
	}
}
