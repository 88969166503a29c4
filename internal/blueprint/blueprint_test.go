package blueprint_test

import (
	"strings"
	"testing"

	"github.com/mdhenderson/gnusto/internal/blueprint"
	"github.com/mdhenderson/gnusto/internal/ids"
	"github.com/mdhenderson/gnusto/internal/ioh"
	"github.com/mdhenderson/gnusto/internal/values"
)

func TestDemoValidates(t *testing.T) {
	bp := blueprint.Demo()
	if err := bp.Validate(); err != nil {
		t.Fatalf("Demo() failed validation: %v", err)
	}
}

func TestBuildStartsInFoyer(t *testing.T) {
	bp := blueprint.Demo()
	var out strings.Builder
	eng := bp.Build(ioh.NewHandlerFor(strings.NewReader(""), &out))

	if eng.State.Player.CurrentLocation != "foyer" {
		t.Fatalf("start location = %q", eng.State.Player.CurrentLocation)
	}
	if _, ok := eng.Daemons["drip"]; !ok {
		t.Fatalf("expected drip daemon registered")
	}
	if _, ok := eng.Fuses["candle"]; !ok {
		t.Fatalf("expected candle fuse registered")
	}
	if _, ok := eng.State.ActiveDaemons["drip"]; !ok {
		t.Fatalf("expected drip daemon running from the start")
	}
}

func TestTurnOffLastLightSourceWarnsOfDarkness(t *testing.T) {
	bp := blueprint.Demo()
	var out strings.Builder
	eng := bp.Build(ioh.NewHandlerFor(strings.NewReader(""), &out))

	for _, turn := range []string{"take lamp", "light lamp", "south"} {
		flushed := eng.RunTurn(turn)
		if strings.Contains(flushed, "pitch dark") {
			t.Fatalf("turn %q unexpectedly blocked by darkness: %q", turn, flushed)
		}
	}

	flushed := eng.RunTurn("turn off lamp")
	if !strings.Contains(flushed, "pitch black") {
		t.Fatalf("expected grue darkness warning after turning off the cellar's only light, got %q", flushed)
	}

	flushed = eng.RunTurn("look")
	if !strings.Contains(flushed, "pitch dark") {
		t.Fatalf("expected subsequent requiresLight verbs to report darkness, got %q", flushed)
	}
}

func TestLightingCandleStartsFuse(t *testing.T) {
	bp := blueprint.Demo()
	var out strings.Builder
	eng := bp.Build(ioh.NewHandlerFor(strings.NewReader(""), &out))

	// Light the lamp, fetch the key from the dark cellar, unlock and
	// open the chest back in the study, take the candle, then light it.
	for _, turn := range []string{
		"take lamp",
		"light lamp",
		"south",
		"take key",
		"north",
		"east",
		"unlock chest with key",
		"open chest",
		"take candle",
		"light candle",
	} {
		flushed := eng.RunTurn(turn)
		if strings.Contains(flushed, "pitch dark") {
			t.Fatalf("turn %q unexpectedly blocked by darkness: %q", turn, flushed)
		}
	}
	if _, ok := eng.State.ActiveFuses["candle"]; !ok {
		t.Fatalf("expected candle fuse to be running after lighting it")
	}

	// Lighting the candle also schedules a one-off auto-ID'd event with
	// no registered FuseFunc; confirm it is tracked separately from the
	// candle's own fuse and fires on schedule with its payload message.
	found := false
	for id := range eng.State.ActiveFuses {
		if id != "candle" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an auto-scheduled event fuse alongside the candle fuse")
	}

	var flushed string
	for i := 0; i < 3; i++ {
		flushed = eng.RunTurn("wait")
	}
	if !strings.Contains(flushed, "Wax drips onto the chest.") {
		t.Fatalf("expected scheduled event message after 3 turns, got %q", flushed)
	}
}

func TestValidateRejectsUnknownStartLocation(t *testing.T) {
	bp := &blueprint.Blueprint{
		StartLocation: "nowhere",
		Locations:     []blueprint.LocationDef{{ID: "foyer", Name: "Foyer"}},
	}
	if err := bp.Validate(); err == nil {
		t.Fatalf("expected validation error for unknown start location")
	}
}

func TestValidateRejectsDanglingExit(t *testing.T) {
	bp := &blueprint.Blueprint{
		StartLocation: "foyer",
		Locations: []blueprint.LocationDef{
			{ID: "foyer", Name: "Foyer", Exits: []blueprint.ExitDef{
				{Direction: ids.North, Destination: "nowhere"},
			}},
		},
	}
	if err := bp.Validate(); err == nil {
		t.Fatalf("expected validation error for dangling exit")
	}
}

func TestValidateRejectsUnknownLockKey(t *testing.T) {
	bp := &blueprint.Blueprint{
		StartLocation: "foyer",
		Locations:     []blueprint.LocationDef{{ID: "foyer", Name: "Foyer"}},
		Items: []blueprint.ItemDef{
			{ID: "chest", Name: "chest", Parent: values.ParentOfLocation("foyer"), LockKey: "missing-key"},
		},
	}
	if err := bp.Validate(); err == nil {
		t.Fatalf("expected validation error for unknown lock key")
	}
}
