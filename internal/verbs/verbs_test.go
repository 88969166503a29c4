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

// houseState builds a foyer with a closed chest (its key, item "key",
// in the player's inventory) and a table surface, used
// across several handler tests below.
func houseState() *world.GameState {
	s := world.NewGameState()
	foyer := world.NewLocation("foyer")
	foyer.Attributes[world.AttrName] = values.StringValue("Foyer")
	foyer.Attributes[world.AttrInherentlyLit] = values.BoolValue(true)
	foyer.Exits[vocab.North] = world.Exit{Destination: "cellar"}
	foyer.Exits[vocab.Down] = world.Exit{Destination: "cellar", IsDoor: true, IsOpen: false, BlockedMessage: "A trapdoor blocks the way."}
	s.Locations["foyer"] = foyer

	cellar := world.NewLocation("cellar")
	cellar.Attributes[world.AttrName] = values.StringValue("Cellar")
	s.Locations["cellar"] = cellar

	s.Player.CurrentLocation = "foyer"
	s.Player.CarryingCapacity = 20

	chest := world.NewItem("chest", values.ParentOfLocation("foyer"))
	chest.Attributes[world.AttrName] = values.StringValue("oak chest")
	chest.Attributes[world.AttrIsContainer] = values.BoolValue(true)
	chest.Attributes[world.AttrIsOpenable] = values.BoolValue(true)
	chest.Attributes[world.AttrIsLockable] = values.BoolValue(true)
	chest.Attributes[world.AttrIsLocked] = values.BoolValue(true)
	chest.Attributes[world.AttrCapacity] = values.IntValue(10)
	chest.Attributes[world.AttrLockKey] = values.ItemIDValue("key")
	s.Items["chest"] = chest

	key := world.NewItem("key", values.ParentOfPlayer())
	key.Attributes[world.AttrName] = values.StringValue("brass key")
	key.Attributes[world.AttrSize] = values.IntValue(1)
	s.Items["key"] = key

	table := world.NewItem("table", values.ParentOfLocation("foyer"))
	table.Attributes[world.AttrName] = values.StringValue("wooden table")
	table.Attributes[world.AttrIsSurface] = values.BoolValue(true)
	s.Items["table"] = table

	cloak := world.NewItem("cloak", values.ParentOfPlayer())
	cloak.Attributes[world.AttrName] = values.StringValue("velvet cloak")
	cloak.Attributes[world.AttrIsWearable] = values.BoolValue(true)
	cloak.Attributes[world.AttrSize] = values.IntValue(3)
	s.Items["cloak"] = cloak

	return s
}

func ctxFor(s *world.GameState, verb ids.VerbID, direct, indirect ids.ItemID) *action.Context {
	cmd := vocab.Command{Verb: verb}
	if direct != "" {
		cmd.DirectObjects = []values.EntityReference{values.ItemRef(direct)}
	}
	if indirect != "" {
		r := values.ItemRef(indirect)
		cmd.IndirectObject = &r
	}
	return action.NewContext(cmd, s, scope.NewResolver(), nil)
}

func TestUnlockThenOpenChest(t *testing.T) {
	s := houseState()
	ctx := ctxFor(s, "unlock", "chest", "key")

	if resp := (verbs.Unlock{}).Validate(ctx); resp != nil {
		t.Fatalf("unlock validate: %+v", resp)
	}
	result, resp := (verbs.Unlock{}).Process(ctx)
	if resp != nil {
		t.Fatalf("unlock process: %+v", resp)
	}
	if err := s.Apply(result.Changes); err != nil {
		t.Fatalf("apply: %v", err)
	}

	ctx = ctxFor(s, "open", "chest", "")
	if resp := (verbs.Open{}).Validate(ctx); resp != nil {
		t.Fatalf("open validate: %+v", resp)
	}
	result, resp = (verbs.Open{}).Process(ctx)
	if resp != nil {
		t.Fatalf("open process: %+v", resp)
	}
	if err := s.Apply(result.Changes); err != nil {
		t.Fatalf("apply: %v", err)
	}
	chest, _ := s.Item("chest")
	if !chest.IsOpen() || chest.IsLocked() {
		t.Fatalf("chest state = open:%v locked:%v", chest.IsOpen(), chest.IsLocked())
	}
}

func TestUnlockRejectsWrongKey(t *testing.T) {
	s := houseState()
	key2 := world.NewItem("key2", values.ParentOfPlayer())
	key2.Attributes[world.AttrName] = values.StringValue("iron key")
	s.Items["key2"] = key2

	ctx := ctxFor(s, "unlock", "chest", "key2")
	resp := (verbs.Unlock{}).Validate(ctx)
	if resp == nil || resp.Kind != action.WrongKey {
		t.Fatalf("expected wrongKey, got %+v", resp)
	}
}

func TestPutInRequiresOpenContainer(t *testing.T) {
	s := houseState()
	ctx := ctxFor(s, "put-in", "key", "chest")
	resp := (verbs.PutIn{}).Validate(ctx)
	if resp == nil || resp.Kind != action.ContainerIsClosed {
		t.Fatalf("expected containerIsClosed, got %+v", resp)
	}
}

func TestPutOnSurfaceMovesItem(t *testing.T) {
	s := houseState()
	ctx := ctxFor(s, "put-on", "key", "table")
	if resp := (verbs.PutOn{}).Validate(ctx); resp != nil {
		t.Fatalf("validate: %+v", resp)
	}
	result, resp := (verbs.PutOn{}).Process(ctx)
	if resp != nil {
		t.Fatalf("process: %+v", resp)
	}
	if err := s.Apply(result.Changes); err != nil {
		t.Fatalf("apply: %v", err)
	}
	key, _ := s.Item("key")
	if parent, ok := key.Parent.Item(); !ok || parent != "table" {
		t.Fatalf("key parent = %v", key.Parent)
	}
}

func TestGoBlockedByClosedDoor(t *testing.T) {
	s := houseState()
	ctx := ctxFor(s, "go", "", "")
	ctx.Command.Direction = vocab.Down
	resp := (verbs.Go{}).Validate(ctx)
	if resp == nil || resp.Kind != action.DirectionIsBlocked {
		t.Fatalf("expected directionIsBlocked, got %+v", resp)
	}
}

func TestGoMovesPlayer(t *testing.T) {
	s := houseState()
	ctx := ctxFor(s, "go", "", "")
	ctx.Command.Direction = vocab.North
	if resp := (verbs.Go{}).Validate(ctx); resp != nil {
		t.Fatalf("validate: %+v", resp)
	}
	result, resp := (verbs.Go{}).Process(ctx)
	if resp != nil {
		t.Fatalf("process: %+v", resp)
	}
	if err := s.Apply(result.Changes); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if s.Player.CurrentLocation != "cellar" {
		t.Fatalf("player location = %s", s.Player.CurrentLocation)
	}
}

func TestWearThenRemoveCloak(t *testing.T) {
	s := houseState()
	ctx := ctxFor(s, "wear", "cloak", "")
	result, resp := (verbs.Wear{}).Process(ctx)
	if resp != nil {
		t.Fatalf("wear process: %+v", resp)
	}
	if err := s.Apply(result.Changes); err != nil {
		t.Fatalf("apply: %v", err)
	}
	cloak, _ := s.Item("cloak")
	if !cloak.IsWorn() {
		t.Fatalf("expected cloak worn")
	}

	ctx = ctxFor(s, "wear", "cloak", "")
	if resp := (verbs.Wear{}).Validate(ctx); resp == nil || resp.Kind != action.ItemIsAlreadyWorn {
		t.Fatalf("expected itemIsAlreadyWorn, got %+v", resp)
	}

	ctx = ctxFor(s, "remove", "cloak", "")
	result, resp = (verbs.Remove{}).Process(ctx)
	if resp != nil {
		t.Fatalf("remove process: %+v", resp)
	}
	if err := s.Apply(result.Changes); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if cloak.IsWorn() {
		t.Fatalf("expected cloak removed")
	}
}
