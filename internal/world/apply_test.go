package world_test

import (
	"errors"
	"testing"

	"github.com/mdhenderson/gnusto/cerrs"
	"github.com/mdhenderson/gnusto/internal/ids"
	"github.com/mdhenderson/gnusto/internal/values"
	"github.com/mdhenderson/gnusto/internal/world"
)

func newTestState() *world.GameState {
	s := world.NewGameState()
	s.Locations["foyer"] = world.NewLocation("foyer")
	s.Locations["cellar"] = world.NewLocation("cellar")
	s.Items["lamp"] = world.NewItem("lamp", values.ParentOfLocation("foyer"))
	s.Items["chest"] = world.NewItem("chest", values.ParentOfLocation("cellar"))
	s.Player.CurrentLocation = "foyer"
	return s
}

func TestApplyCommitsAllChanges(t *testing.T) {
	s := newTestState()
	changes := []world.StateChange{
		world.NewStateChange(values.ItemRef("lamp"), values.ItemAttribute(world.AttrIsOn), values.BoolValue(true)),
		world.NewStateChange(values.PlayerRef(), values.PlayerScore(), values.IntValue(10)),
	}
	if err := s.Apply(changes); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !s.Items["lamp"].IsOn() {
		t.Fatalf("expected lamp to be on")
	}
	if s.Player.Score != 10 {
		t.Fatalf("expected score 10, got %d", s.Player.Score)
	}
	if len(s.ChangeHistory) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(s.ChangeHistory))
	}
}

func TestApplyRejectsWholeBatchOnOldValueMismatch(t *testing.T) {
	s := newTestState()
	good := world.NewStateChange(values.ItemRef("lamp"), values.ItemAttribute(world.AttrIsOn), values.BoolValue(true))
	bad := world.NewStateChange(values.PlayerRef(), values.PlayerScore(), values.IntValue(10)).
		WithOldValue(values.IntValue(99)) // current score is 0, not 99

	err := s.Apply([]world.StateChange{good, bad})
	if err == nil {
		t.Fatalf("expected validation failure")
	}
	var sverr *world.StateValidationError
	if !errors.As(err, &sverr) {
		t.Fatalf("expected *StateValidationError, got %T: %v", err, err)
	}
	if !errors.Is(err, cerrs.ErrStateValidationFailed) {
		t.Fatalf("expected errors.Is to match ErrStateValidationFailed")
	}
	if s.Items["lamp"].IsOn() {
		t.Fatalf("expected no mutation: lamp must still be off")
	}
	if s.Player.Score != 0 {
		t.Fatalf("expected no mutation: score must still be 0")
	}
}

func TestApplyHonorsMatchingOldValue(t *testing.T) {
	s := newTestState()
	change := world.NewStateChange(values.ItemRef("lamp"), values.ItemAttribute(world.AttrIsOn), values.BoolValue(true)).
		WithOldValue(values.BoolValue(false))
	if err := s.Apply([]world.StateChange{change}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !s.Items["lamp"].IsOn() {
		t.Fatalf("expected lamp to be on")
	}
}

func TestApplyRejectsParentCycle(t *testing.T) {
	s := newTestState()
	// chest's parent becomes lamp, lamp's parent becomes chest: a cycle.
	if err := s.Apply([]world.StateChange{
		world.NewStateChange(values.ItemRef("chest"), values.ItemParent(), values.ParentEntityValue(values.ParentOfItem("lamp"))),
	}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	err := s.Apply([]world.StateChange{
		world.NewStateChange(values.ItemRef("lamp"), values.ItemParent(), values.ParentEntityValue(values.ParentOfItem("chest"))),
	})
	if err == nil {
		t.Fatalf("expected cycle rejection")
	}
	var cerr *world.CycleError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *CycleError, got %T: %v", err, err)
	}
	if !errors.Is(err, cerrs.ErrCycleDetected) {
		t.Fatalf("expected errors.Is to match ErrCycleDetected")
	}
}

func TestApplyRejectsItemBecomingOwnParent(t *testing.T) {
	s := newTestState()
	err := s.Apply([]world.StateChange{
		world.NewStateChange(values.ItemRef("lamp"), values.ItemParent(), values.ParentEntityValue(values.ParentOfItem("lamp"))),
	})
	if err == nil {
		t.Fatalf("expected an item to be rejected as its own parent")
	}
}

func TestApplyEncodesAndDecodesLocationExits(t *testing.T) {
	s := newTestState()
	exit := world.Exit{Destination: "cellar", IsDoor: true, IsLocked: true, LockKey: "key"}
	change := world.NewStateChange(values.LocationRef("foyer"), values.LocationExits(ids.Down), world.ExitValue(exit))
	if err := s.Apply([]world.StateChange{change}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	got, ok := s.Locations["foyer"].Exit(ids.Down)
	if !ok {
		t.Fatalf("expected exit to be set")
	}
	if got.Destination != "cellar" || !got.IsDoor || !got.IsLocked || got.LockKey != "key" {
		t.Fatalf("got %+v", got)
	}
}
