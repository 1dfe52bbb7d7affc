package settings

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadMissingFileWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(loaded, Default()) {
		t.Errorf("missing file should yield defaults, got %+v", loaded)
	}

	// The defaults were written back for the user to edit.
	if _, err := os.Stat(path); err != nil {
		t.Errorf("defaults not written: %v", err)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	custom := Default()
	custom.MineChar = "X"
	custom.CountColors[2] = "201"
	if err := Save(path, custom); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.MineChar != "X" {
		t.Errorf("MineChar = %q, want X", loaded.MineChar)
	}
	if loaded.CountColors[2] != "201" {
		t.Errorf("CountColors[2] = %q, want 201", loaded.CountColors[2])
	}
	if loaded.FlagChar != custom.FlagChar {
		t.Errorf("untouched field changed: %q", loaded.FlagChar)
	}
}

func TestLoadCorruptFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(":::"), 0o644); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err == nil {
		t.Error("expected an error for a corrupt file")
	}
	if loaded.MineChar != Default().MineChar {
		t.Errorf("corrupt file should fall back to defaults, got %+v", loaded)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("mine_char: \"@\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.MineChar != "@" {
		t.Errorf("MineChar = %q, want @", loaded.MineChar)
	}
	if loaded.TileChar != Default().TileChar {
		t.Errorf("unset field lost its default: %q", loaded.TileChar)
	}
	if len(loaded.CountColors) != 8 {
		t.Errorf("unset count colors lost their defaults: %v", loaded.CountColors)
	}
}
