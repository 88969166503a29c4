package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mdhenderson/gnusto/cerrs"
	"github.com/mdhenderson/gnusto/internal/blueprint"
	"github.com/mdhenderson/gnusto/internal/ioh"
	sqlitestore "github.com/mdhenderson/gnusto/store/sqlite"
)

func TestCreateRejectsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saves.db")
	if err := sqlitestore.Create(path, context.Background()); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if err := sqlitestore.Create(path, context.Background()); !errors.Is(err, cerrs.ErrDatabaseExists) {
		t.Fatalf("second create: got %v, want ErrDatabaseExists", err)
	}
}

func TestOpenRejectsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.db")
	if _, err := sqlitestore.Open(path, context.Background()); !errors.Is(err, cerrs.ErrDatabaseNotFound) {
		t.Fatalf("open: got %v, want ErrDatabaseNotFound", err)
	}
}

func TestSaveRestoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saves.db")
	if err := sqlitestore.Create(path, context.Background()); err != nil {
		t.Fatalf("create: %v", err)
	}
	db, err := sqlitestore.Open(path, context.Background())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	bp := blueprint.Demo()
	var out strings.Builder
	eng := bp.Build(ioh.NewHandlerFor(strings.NewReader(""), &out))
	eng.RunTurn("take lamp")
	eng.RunTurn("light lamp")

	if err := db.Save("slot1", bp.Title, eng.State); err != nil {
		t.Fatalf("save: %v", err)
	}

	restored, err := db.Restore("slot1")
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored.Player.CurrentLocation != eng.State.Player.CurrentLocation {
		t.Fatalf("restored location = %q, want %q", restored.Player.CurrentLocation, eng.State.Player.CurrentLocation)
	}
	lamp, ok := restored.Item("lamp")
	if !ok {
		t.Fatalf("restored state missing lamp")
	}
	if !lamp.IsOn() {
		t.Fatalf("expected restored lamp to be lit")
	}

	// Re-saving the same slot overwrites it rather than erroring.
	eng.RunTurn("south")
	if err := db.Save("slot1", bp.Title, eng.State); err != nil {
		t.Fatalf("re-save: %v", err)
	}
	restored2, err := db.Restore("slot1")
	if err != nil {
		t.Fatalf("restore after re-save: %v", err)
	}
	if restored2.Player.CurrentLocation != "cellar" {
		t.Fatalf("restored location after re-save = %q, want cellar", restored2.Player.CurrentLocation)
	}
}

func TestRestoreUnknownSlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saves.db")
	if err := sqlitestore.Create(path, context.Background()); err != nil {
		t.Fatalf("create: %v", err)
	}
	db, err := sqlitestore.Open(path, context.Background())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	if _, err := db.Restore("ghost"); !errors.Is(err, cerrs.ErrSaveSlotNotFound) {
		t.Fatalf("restore: got %v, want ErrSaveSlotNotFound", err)
	}
}

func TestList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saves.db")
	if err := sqlitestore.Create(path, context.Background()); err != nil {
		t.Fatalf("create: %v", err)
	}
	db, err := sqlitestore.Open(path, context.Background())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	bp := blueprint.Demo()
	var out strings.Builder
	eng := bp.Build(ioh.NewHandlerFor(strings.NewReader(""), &out))

	if err := db.Save("alpha", bp.Title, eng.State); err != nil {
		t.Fatalf("save alpha: %v", err)
	}
	if err := db.Save("beta", bp.Title, eng.State); err != nil {
		t.Fatalf("save beta: %v", err)
	}

	slots, err := db.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("len(slots) = %d, want 2", len(slots))
	}

	if err := db.Delete("alpha"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	slots, err = db.List()
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(slots) != 1 || slots[0].Slot != "beta" {
		t.Fatalf("slots after delete = %+v, want only beta", slots)
	}
}
