package verbs_test

import (
	"testing"

	"github.com/mdhenderson/gnusto/internal/action"
	"github.com/mdhenderson/gnusto/internal/ids"
	"github.com/mdhenderson/gnusto/internal/scope"
	"github.com/mdhenderson/gnusto/internal/values"
	"github.com/mdhenderson/gnusto/internal/verbs"
	"github.com/mdhenderson/gnusto/internal/vocab"
	"github.com/mdhenderson/gnusto/internal/world"
)

func takeTestState() *world.GameState {
	s := world.NewGameState()
	foyer := world.NewLocation("foyer")
	foyer.Attributes[world.AttrName] = values.StringValue("Foyer")
	foyer.Attributes[world.AttrInherentlyLit] = values.BoolValue(true)
	s.Locations["foyer"] = foyer
	s.Player.CurrentLocation = "foyer"
	s.Player.CarryingCapacity = 10

	lamp := world.NewItem("lamp", values.ParentOfLocation("foyer"))
	lamp.Attributes[world.AttrName] = values.StringValue("brass lamp")
	lamp.Attributes[world.AttrIsTakable] = values.BoolValue(true)
	lamp.Attributes[world.AttrSize] = values.IntValue(2)
	s.Items["lamp"] = lamp

	rock := world.NewItem("rock", values.ParentOfLocation("foyer"))
	rock.Attributes[world.AttrName] = values.StringValue("heavy rock")
	rock.Attributes[world.AttrIsTakable] = values.BoolValue(false)
	s.Items["rock"] = rock

	return s
}

func takeCtx(s *world.GameState, direct ids.ItemID) *action.Context {
	cmd := vocab.Command{
		Verb:          "take",
		DirectObjects: []values.EntityReference{values.ItemRef(direct)},
	}
	return action.NewContext(cmd, s, scope.NewResolver(), nil)
}

func TestTakeMovesItemToPlayer(t *testing.T) {
	s := takeTestState()
	ctx := takeCtx(s, "lamp")

	if resp := (verbs.Take{}).Validate(ctx); resp != nil {
		t.Fatalf("unexpected validation failure: %+v", resp)
	}
	result, resp := (verbs.Take{}).Process(ctx)
	if resp != nil {
		t.Fatalf("unexpected process failure: %+v", resp)
	}
	if result.Message != "Taken." {
		t.Fatalf("message = %q", result.Message)
	}
	if err := s.Apply(result.Changes); err != nil {
		t.Fatalf("apply: %v", err)
	}
	lamp, _ := s.Item("lamp")
	if lamp.Parent.Kind() != values.ParentPlayer {
		t.Fatalf("lamp parent = %v", lamp.Parent)
	}
	if !lamp.IsTouched() {
		t.Fatalf("expected lamp to be touched")
	}
}

func TestTakeRejectsNotTakable(t *testing.T) {
	s := takeTestState()
	ctx := takeCtx(s, "rock")

	resp := (verbs.Take{}).Validate(ctx)
	if resp == nil || resp.Kind != action.ItemNotTakable {
		t.Fatalf("expected itemNotTakable, got %+v", resp)
	}
}

func TestTakeRejectsOverCapacity(t *testing.T) {
	s := takeTestState()
	s.Player.CarryingCapacity = 1
	ctx := takeCtx(s, "lamp")

	resp := (verbs.Take{}).Validate(ctx)
	if resp == nil || resp.Kind != action.PlayerCannotCarryMore {
		t.Fatalf("expected playerCannotCarryMore, got %+v", resp)
	}
}

func TestTakeRejectsAlreadyHeld(t *testing.T) {
	s := takeTestState()
	lamp, _ := s.Item("lamp")
	lamp.Parent = values.ParentOfPlayer()
	ctx := takeCtx(s, "lamp")

	resp := (verbs.Take{}).Validate(ctx)
	if resp == nil || resp.Kind != action.Custom {
		t.Fatalf("expected custom already-have response, got %+v", resp)
	}
}
