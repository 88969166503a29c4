package blueprint

import (
	"github.com/mdhenderson/gnusto/internal/action"
	"github.com/mdhenderson/gnusto/internal/engine"
	"github.com/mdhenderson/gnusto/internal/hooks"
	"github.com/mdhenderson/gnusto/internal/ids"
	"github.com/mdhenderson/gnusto/internal/values"
	"github.com/mdhenderson/gnusto/internal/world"
)

// candleFuseID is the fuse a lit candle starts; it burns down over a
// handful of turns and then gutters out on its own.
const candleFuseID ids.FuseID = "candle"

// dripDaemonID runs for the whole game once started, independent of
// whether the player is in the cellar to hear it.
const dripDaemonID ids.DaemonID = "drip"

// Demo builds the small bundled game (foyer, cellar, study) used to
// exercise every built-in verb, the light gate, hooks, a daemon, and
// a fuse without requiring external game content.
func Demo() *Blueprint {
	return &Blueprint{
		Title:            "The House",
		StartLocation:    "foyer",
		CarryingCapacity: 20,
		StartHealth:      100,
		Locations: []LocationDef{
			{
				ID:            "foyer",
				Name:          "Foyer",
				Description:   "A bare entrance hall. A doorway leads east to a study, and a staircase descends south into darkness.",
				InherentlyLit: true,
				Exits: []ExitDef{
					{Direction: ids.East, Destination: "study", IsDoor: true, IsOpen: true},
					{Direction: ids.South, Destination: "cellar"},
				},
			},
			{
				ID:          "cellar",
				Name:        "Cellar",
				Description: "A damp cellar. Water drips somewhere in the dark.",
				Exits: []ExitDef{
					{Direction: ids.North, Destination: "foyer"},
				},
			},
			{
				ID:            "study",
				Name:          "Study",
				Description:   "A small study dominated by a heavy oak chest.",
				InherentlyLit: true,
				Exits: []ExitDef{
					{Direction: ids.West, Destination: "foyer", IsDoor: true, IsOpen: true},
				},
			},
		},
		Items: []ItemDef{
			{
				ID:            "lamp",
				Name:          "brass lamp",
				Description:   "A sturdy brass lamp, the kind that outlasts its owner.",
				Parent:        values.ParentOfLocation("foyer"),
				Size:          2,
				IsTakable:     true,
				IsDevice:      true,
				IsLightSource: true,
			},
			{
				ID:          "key",
				Name:        "brass key",
				Description: "A small brass key.",
				Parent:      values.ParentOfLocation("cellar"),
				Size:        1,
				IsTakable:   true,
			},
			{
				ID:          "chest",
				Name:        "oak chest",
				Description: "An old oak chest, bound in iron.",
				Adjectives:  []string{"oak", "old"},
				Parent:      values.ParentOfLocation("study"),
				Capacity:    5,
				LockKey:     "key",
				IsContainer: true,
				IsOpenable:  true,
				IsLockable:  true,
				IsLocked:    true,
			},
			{
				ID:          "cloak",
				Name:        "velvet cloak",
				Description: "A handsome cloak of dark velvet.",
				Parent:      values.ParentOfPlayer(),
				Size:        1,
				IsTakable:   true,
				IsWearable:  true,
				IsWorn:      true,
			},
			{
				ID:            "candle",
				Name:          "candle",
				Description:   "A half-spent candle.",
				Parent:        values.ParentOfItem("chest"),
				Size:          1,
				IsTakable:     true,
				IsDevice:      true,
				IsLightSource: true,
			},
		},
		Behaviors: &Behaviors{
			Install: func(reg *hooks.Registry) {
				reg.Items["candle"] = candleHook
			},
			Daemons: map[ids.DaemonID]engine.DaemonFunc{
				dripDaemonID: dripDaemon,
			},
			Fuses: map[ids.FuseID]engine.FuseFunc{
				candleFuseID: candleBurnsOut,
			},
			InitialDaemons: map[ids.DaemonID]values.StateValue{
				dripDaemonID: values.StateValue{},
			},
		},
	}
}

// candleHook starts the candle's fuse when it is lit and stops it
// when the candle is turned off early.
func candleHook(ctx *action.Context, event hooks.ItemEvent) (*action.ActionResult, error) {
	if event.Kind != hooks.ItemAfterTurn {
		return nil, nil
	}
	switch event.Command.Verb {
	case "turn-on":
		_, dripOnChest := world.NewScheduleEventAuto(3, values.StringValue("Wax drips onto the chest."))
		return &action.ActionResult{
			Effects: []world.SideEffect{
				world.NewStopFuse(candleFuseID),
				world.NewStartFuse(candleFuseID, 5, values.StringValue("out")),
				dripOnChest,
			},
		}, nil
	case "turn-off":
		return &action.ActionResult{
			Effects: []world.SideEffect{world.NewStopFuse(candleFuseID)},
		}, nil
	}
	return nil, nil
}

// candleBurnsOut fires when the candle's fuse reaches zero: it goes
// dark and stops being a light source, so turning it back on gives no
// light.
func candleBurnsOut(ctx *action.Context, payload values.StateValue) action.ActionResult {
	return action.ActionResult{
		Message: "The candle gutters and dies.",
		Changes: []world.StateChange{
			world.NewStateChange(values.ItemRef("candle"), values.ItemAttribute(world.AttrIsOn), values.BoolValue(false)),
			world.NewStateChange(values.ItemRef("candle"), values.ItemAttribute(world.AttrIsLightSource), values.BoolValue(false)),
		},
	}
}

// dripDaemon runs every turn for the whole game; it only speaks up
// while the player is in the cellar to hear it.
func dripDaemon(ctx *action.Context, payload values.StateValue) action.ActionResult {
	if ctx.State.Player.CurrentLocation != "cellar" {
		return action.ActionResult{}
	}
	return action.ActionResult{Message: "Water drips somewhere in the dark."}
}
