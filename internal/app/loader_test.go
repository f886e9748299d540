package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/kyaoi/slidedeck/internal/config"
)

const testDeck = `---
title: Demo
---

# One

---

# Two

---

# Three
`

func writeDeck(t *testing.T) (string, config.Config) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.md")
	if err := os.WriteFile(path, []byte(testDeck), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.PositionsPath = filepath.Join(dir, "positions.db")
	return path, cfg
}

func TestLoadInitialState(t *testing.T) {
	path, cfg := writeDeck(t)

	state, store, err := LoadInitialState(path, cfg, Options{}, zerolog.Nop())
	if err != nil {
		t.Fatalf("LoadInitialState: %v", err)
	}
	defer store.Close()

	if state.Meta.Title != "Demo" {
		t.Errorf("Title = %q, want Demo", state.Meta.Title)
	}
	if state.Navigator.Total() != 3 {
		t.Errorf("Total() = %d, want 3", state.Navigator.Total())
	}
	if state.Navigator.Current() != 1 {
		t.Errorf("Current() = %d, want 1 on first run", state.Navigator.Current())
	}
	if !filepath.IsAbs(state.DeckPath) {
		t.Errorf("DeckPath %q is not absolute", state.DeckPath)
	}
}

func TestLoadInitialState_RestoresPersistedPosition(t *testing.T) {
	path, cfg := writeDeck(t)

	state, store, err := LoadInitialState(path, cfg, Options{}, zerolog.Nop())
	if err != nil {
		t.Fatalf("LoadInitialState: %v", err)
	}
	state.Navigator.GoTo(3)
	state.Navigator.Activate()
	state.Navigator.Settle()
	store.Close()

	reopened, store2, err := LoadInitialState(path, cfg, Options{}, zerolog.Nop())
	if err != nil {
		t.Fatalf("second LoadInitialState: %v", err)
	}
	defer store2.Close()
	if reopened.Navigator.Current() != 3 {
		t.Errorf("restored Current() = %d, want 3", reopened.Navigator.Current())
	}
}

func TestLoadInitialState_StartSlideOverride(t *testing.T) {
	path, cfg := writeDeck(t)

	state, store, err := LoadInitialState(path, cfg, Options{StartSlide: 2}, zerolog.Nop())
	if err != nil {
		t.Fatalf("LoadInitialState: %v", err)
	}
	defer store.Close()
	if state.Navigator.Current() != 2 {
		t.Errorf("Current() = %d, want 2 from -slide flag", state.Navigator.Current())
	}
}

func TestLoadInitialState_Errors(t *testing.T) {
	cfg := config.Default()
	cfg.PositionsPath = filepath.Join(t.TempDir(), "positions.db")

	if _, _, err := LoadInitialState(filepath.Join(t.TempDir(), "missing.md"), cfg, Options{}, zerolog.Nop()); err == nil {
		t.Error("missing deck accepted")
	}
	if _, _, err := LoadInitialState(t.TempDir(), cfg, Options{}, zerolog.Nop()); err == nil {
		t.Error("directory accepted as a deck")
	}
}
