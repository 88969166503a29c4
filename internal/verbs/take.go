package verbs

import (
	"fmt"

	"github.com/mdhenderson/gnusto/internal/action"
	"github.com/mdhenderson/gnusto/internal/ids"
	"github.com/mdhenderson/gnusto/internal/values"
	"github.com/mdhenderson/gnusto/internal/vocab"
	"github.com/mdhenderson/gnusto/internal/world"
)

// Take implements the Take contract: the direct object must be
// present, reachable, not already held, takable, and within the
// player's remaining carrying capacity; if it sits inside a container,
// the container must be open.
type Take struct{}

func (Take) Synonyms() []ids.VerbID    { return []ids.VerbID{"take", "get", "pick-up"} }
func (Take) Syntax() []vocab.Frame_e    { return []vocab.Frame_e{vocab.FrameDirectOnly, vocab.FrameMultiObject} }
func (Take) RequiresLight() bool        { return true }

func (Take) Validate(ctx *action.Context) *action.ActionResponse {
	id, resp := directItem(ctx)
	if resp != nil {
		return resp
	}
	it, resp := requireItem(ctx, id)
	if resp != nil {
		return resp
	}
	if resp := requireReachable(ctx, id); resp != nil {
		return resp
	}
	if isHeld(it) {
		r := action.CustomResponse(fmt.Sprintf("You already have the %s.", it.Name()))
		return &r
	}
	if !it.IsTakable() {
		r := action.ItemNotTakableResponse(id)
		return &r
	}
	if parentItem, ok := it.Parent.Item(); ok {
		if container, ok2 := ctx.State.Item(parentItem); ok2 && container.IsContainer() && !container.IsOpen() {
			r := action.ContainerIsClosedResponse(parentItem)
			return &r
		}
	}
	if carried := carriedSize(ctx.State) + it.Size(); carried > ctx.State.Player.CarryingCapacity {
		r := action.PlayerCannotCarryMoreResponse(carried, ctx.State.Player.CarryingCapacity)
		return &r
	}
	return nil
}

func (Take) Process(ctx *action.Context) (action.ActionResult, *action.ActionResponse) {
	id, resp := directItem(ctx)
	if resp != nil {
		return action.ActionResult{}, resp
	}
	it, resp := requireItem(ctx, id)
	if resp != nil {
		return action.ActionResult{}, resp
	}

	changes := []world.StateChange{
		parentChange(id, values.ParentOfPlayer()),
		touchChange(id),
	}
	if it.IsWorn() {
		changes = append(changes, flagChange(id, world.AttrIsWorn, false))
	}
	return action.ActionResult{
		Message: "Taken.",
		Changes: changes,
	}, nil
}
