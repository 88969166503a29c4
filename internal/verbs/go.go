package verbs

import (
	"fmt"

	"github.com/mdhenderson/gnusto/internal/action"
	"github.com/mdhenderson/gnusto/internal/ids"
	"github.com/mdhenderson/gnusto/internal/values"
	"github.com/mdhenderson/gnusto/internal/vocab"
	"github.com/mdhenderson/gnusto/internal/world"
)

// Go moves the player through an exit: the command's direction must
// name an exit of the current location, and that exit must not be a
// closed door or locked. A closed door's BlockedMessage, when set,
// replaces the default refusal; on any other exit it has no effect.
type Go struct{}

func (Go) Synonyms() []ids.VerbID  { return []ids.VerbID{"go", "walk"} }
func (Go) Syntax() []vocab.Frame_e { return []vocab.Frame_e{vocab.FrameIntransitive} }
func (Go) RequiresLight() bool     { return true }

func (Go) Validate(ctx *action.Context) *action.ActionResponse {
	if ctx.Command.Direction == vocab.Unknown {
		r := action.InvalidDirectionResponse()
		return &r
	}
	loc, ok := ctx.State.CurrentLocation()
	if !ok {
		return errResp("player has no current location")
	}
	exit, ok := loc.Exit(ctx.Command.Direction)
	if !ok {
		r := action.DirectionIsBlockedResponse("You can't go that way.")
		return &r
	}
	if exit.IsDoor && !exit.IsOpen {
		msg := exit.BlockedMessage
		if msg == "" {
			msg = "The way is closed."
		}
		r := action.DirectionIsBlockedResponse(msg)
		return &r
	}
	if exit.IsLocked {
		r := action.DirectionIsBlockedResponse("The way is locked.")
		return &r
	}
	return nil
}

func (Go) Process(ctx *action.Context) (action.ActionResult, *action.ActionResponse) {
	loc, ok := ctx.State.CurrentLocation()
	if !ok {
		return action.ActionResult{}, errResp("player has no current location")
	}
	exit, ok := loc.Exit(ctx.Command.Direction)
	if !ok {
		return action.ActionResult{}, errResp("exit vanished between validate and process")
	}
	return action.ActionResult{
		Changes: []world.StateChange{
			world.NewStateChange(values.PlayerRef(), values.PlayerLocation(), values.LocationIDValue(exit.Destination)),
		},
	}, nil
}

// PostProcess prints the new room's description once the move has
// been applied, instead of Process composing it against the
// pre-move state.
func (Go) PostProcess(ctx *action.Context, result action.ActionResult) {
	if ctx.IO == nil {
		return
	}
	loc, ok := ctx.State.CurrentLocation()
	if !ok {
		return
	}
	ctx.IO.Println(loc.Name())
	if ctx.Scope.IsLocationLit(ctx.State) {
		ctx.IO.Println(loc.Description())
		for _, id := range ctx.State.ItemsWithParent(values.ParentOfLocation(loc.ID)) {
			if it, ok := ctx.State.Item(id); ok && !it.IsScenery() {
				ctx.IO.Println(fmt.Sprintf("There is a %s here.", it.Name()))
			}
		}
	} else {
		ctx.IO.Println("It is pitch dark, and you are likely to be eaten by a grue.")
	}
}
