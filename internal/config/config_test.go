package config_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mdhenderson/gnusto/cerrs"
	"github.com/mdhenderson/gnusto/internal/config"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load("non-existent-file.json", false)
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.SaveDB != "gnusto.db" {
		t.Fatalf("SaveDB = %q, want default", cfg.SaveDB)
	}
}

func TestLoadDirectoryIsAnError(t *testing.T) {
	tmpDir := t.TempDir()
	if _, err := config.Load(tmpDir, false); !errors.Is(err, cerrs.ErrNotAFile) {
		t.Fatalf("got %v, want ErrNotAFile", err)
	}
}

func TestLoadEmptyFileReturnsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "gnusto.json")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.Load(path, false)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SaveDB != "gnusto.db" || cfg.DataDir != "." {
		t.Fatalf("cfg = %+v, want unchanged defaults", cfg)
	}
}

func TestLoadOverlaysNonZeroFields(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "gnusto.json")
	testConfig := config.Config{
		SaveDB:        "custom.db",
		BlueprintPath: "house.json",
		DebugFlags:    config.DebugFlags_t{LogTurns: true},
	}
	data, err := json.Marshal(testConfig)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.Load(path, false)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SaveDB != "custom.db" {
		t.Fatalf("SaveDB = %q, want custom.db", cfg.SaveDB)
	}
	if cfg.BlueprintPath != "house.json" {
		t.Fatalf("BlueprintPath = %q, want house.json", cfg.BlueprintPath)
	}
	if cfg.DataDir != "." {
		t.Fatalf("DataDir = %q, want unchanged default", cfg.DataDir)
	}
	if !cfg.DebugFlags.LogTurns {
		t.Fatalf("expected LogTurns to be overlaid true")
	}
	if cfg.DebugFlags.TraceScope {
		t.Fatalf("expected TraceScope to remain false (default)")
	}
}

func TestLoadInvalidJSONIsAnError(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "gnusto.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.Load(path, true); err == nil {
		t.Fatalf("expected error for invalid JSON")
	}
}

func TestSaveDBPath(t *testing.T) {
	cfg := &config.Config{DataDir: "/srv/gnusto", SaveDB: "saves.db"}
	if got, want := cfg.SaveDBPath(), filepath.Join("/srv/gnusto", "saves.db"); got != want {
		t.Fatalf("SaveDBPath() = %q, want %q", got, want)
	}

	abs := &config.Config{DataDir: "/srv/gnusto", SaveDB: "/var/saves.db"}
	if got, want := abs.SaveDBPath(), "/var/saves.db"; got != want {
		t.Fatalf("SaveDBPath() = %q, want %q", got, want)
	}
}
