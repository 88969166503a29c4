package world_test

import (
	"testing"

	"github.com/mdhenderson/gnusto/internal/values"
	"github.com/mdhenderson/gnusto/internal/world"
)

func TestIsDescendantOf(t *testing.T) {
	s := world.NewGameState()
	s.Items["chest"] = world.NewItem("chest", values.ParentOfLocation("cellar"))
	s.Items["key"] = world.NewItem("key", values.ParentOfItem("chest"))
	s.Items["lamp"] = world.NewItem("lamp", values.ParentOfLocation("foyer"))

	if !s.IsDescendantOf("key", "chest") {
		t.Fatalf("expected key to be a descendant of chest")
	}
	if !s.IsDescendantOf("chest", "chest") {
		t.Fatalf("expected an item to be its own descendant (identity case)")
	}
	if s.IsDescendantOf("lamp", "chest") {
		t.Fatalf("lamp does not live in chest")
	}
	if s.IsDescendantOf("key", "lamp") {
		t.Fatalf("key does not live in lamp")
	}
}

func TestCurrentLocationLooksUpPlayerLocation(t *testing.T) {
	s := world.NewGameState()
	s.Locations["foyer"] = world.NewLocation("foyer")
	s.Player.CurrentLocation = "foyer"

	loc, ok := s.CurrentLocation()
	if !ok || loc.ID != "foyer" {
		t.Fatalf("CurrentLocation() = %v, %v", loc, ok)
	}
}
