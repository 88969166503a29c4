package verbs

import (
	"github.com/mdhenderson/gnusto/internal/action"
	"github.com/mdhenderson/gnusto/internal/ids"
	"github.com/mdhenderson/gnusto/internal/values"
	"github.com/mdhenderson/gnusto/internal/vocab"
	"github.com/mdhenderson/gnusto/internal/world"
)

// Drop is Take's inverse: the direct object must be currently held,
// and moves to the player's location.
type Drop struct{}

func (Drop) Synonyms() []ids.VerbID { return []ids.VerbID{"drop", "put-down"} }
func (Drop) Syntax() []vocab.Frame_e {
	return []vocab.Frame_e{vocab.FrameDirectOnly, vocab.FrameMultiObject}
}
func (Drop) RequiresLight() bool { return false }

func (Drop) Validate(ctx *action.Context) *action.ActionResponse {
	id, resp := directItem(ctx)
	if resp != nil {
		return resp
	}
	it, resp := requireItem(ctx, id)
	if resp != nil {
		return resp
	}
	if !isHeld(it) {
		r := action.ItemNotHeldResponse(id)
		return &r
	}
	return nil
}

func (Drop) Process(ctx *action.Context) (action.ActionResult, *action.ActionResponse) {
	id, resp := directItem(ctx)
	if resp != nil {
		return action.ActionResult{}, resp
	}
	loc, ok := ctx.State.CurrentLocation()
	if !ok {
		return action.ActionResult{}, errResp("player has no current location")
	}
	changes := []world.StateChange{
		parentChange(id, values.ParentOfLocation(loc.ID)),
		touchChange(id),
	}
	return action.ActionResult{Message: "Dropped.", Changes: changes}, nil
}
