package verbs

import (
	"github.com/mdhenderson/gnusto/internal/action"
	"github.com/mdhenderson/gnusto/internal/ids"
	"github.com/mdhenderson/gnusto/internal/vocab"
	"github.com/mdhenderson/gnusto/internal/world"
)

// Wear requires the direct object to be held, wearable, and not
// already worn.
type Wear struct{}

func (Wear) Synonyms() []ids.VerbID  { return []ids.VerbID{"wear", "don", "put-on-self"} }
func (Wear) Syntax() []vocab.Frame_e { return []vocab.Frame_e{vocab.FrameDirectOnly} }
func (Wear) RequiresLight() bool     { return false }

func (Wear) Validate(ctx *action.Context) *action.ActionResponse {
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
	if !it.IsWearable() {
		r := action.ItemNotWearableResponse(id)
		return &r
	}
	if it.IsWorn() {
		r := action.ItemIsAlreadyWornResponse(id)
		return &r
	}
	return nil
}

func (Wear) Process(ctx *action.Context) (action.ActionResult, *action.ActionResponse) {
	id, resp := directItem(ctx)
	if resp != nil {
		return action.ActionResult{}, resp
	}
	return action.ActionResult{
		Message: "Worn.",
		Changes: []world.StateChange{
			flagChange(id, world.AttrIsWorn, true),
			touchChange(id),
		},
	}, nil
}

// Remove is Wear's inverse.
type Remove struct{}

func (Remove) Synonyms() []ids.VerbID  { return []ids.VerbID{"remove", "doff", "take-off"} }
func (Remove) Syntax() []vocab.Frame_e { return []vocab.Frame_e{vocab.FrameDirectOnly} }
func (Remove) RequiresLight() bool     { return false }

func (Remove) Validate(ctx *action.Context) *action.ActionResponse {
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
	if !it.IsWorn() {
		r := action.ItemIsNotWornResponse(id)
		return &r
	}
	return nil
}

func (Remove) Process(ctx *action.Context) (action.ActionResult, *action.ActionResponse) {
	id, resp := directItem(ctx)
	if resp != nil {
		return action.ActionResult{}, resp
	}
	return action.ActionResult{
		Message: "Removed.",
		Changes: []world.StateChange{
			flagChange(id, world.AttrIsWorn, false),
			touchChange(id),
		},
	}, nil
}
