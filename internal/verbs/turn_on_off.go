package verbs

import (
	"github.com/mdhenderson/gnusto/internal/action"
	"github.com/mdhenderson/gnusto/internal/ids"
	"github.com/mdhenderson/gnusto/internal/vocab"
	"github.com/mdhenderson/gnusto/internal/world"
)

// TurnOn requires the direct object to be reachable, a device, and
// currently off.
type TurnOn struct{}

func (TurnOn) Synonyms() []ids.VerbID  { return []ids.VerbID{"turn-on", "switch-on", "light"} }
func (TurnOn) Syntax() []vocab.Frame_e { return []vocab.Frame_e{vocab.FrameDirectOnly} }
func (TurnOn) RequiresLight() bool     { return false }

func (TurnOn) Validate(ctx *action.Context) *action.ActionResponse {
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
	if !it.IsDevice() {
		r := action.PrerequisiteNotMetResponse("That's not something you can turn on.")
		return &r
	}
	if it.IsOn() {
		r := action.CustomResponse("It's already on.")
		return &r
	}
	return nil
}

func (TurnOn) Process(ctx *action.Context) (action.ActionResult, *action.ActionResponse) {
	id, resp := directItem(ctx)
	if resp != nil {
		return action.ActionResult{}, resp
	}
	return action.ActionResult{
		Message: "Done.",
		Changes: []world.StateChange{
			flagChange(id, world.AttrIsOn, true),
			touchChange(id),
		},
	}, nil
}

// TurnOff is TurnOn's inverse.
type TurnOff struct{}

func (TurnOff) Synonyms() []ids.VerbID  { return []ids.VerbID{"turn-off", "switch-off", "extinguish"} }
func (TurnOff) Syntax() []vocab.Frame_e { return []vocab.Frame_e{vocab.FrameDirectOnly} }
func (TurnOff) RequiresLight() bool     { return false }

func (TurnOff) Validate(ctx *action.Context) *action.ActionResponse {
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
	if !it.IsDevice() {
		r := action.PrerequisiteNotMetResponse("That's not something you can turn off.")
		return &r
	}
	if !it.IsOn() {
		r := action.CustomResponse("It's already off.")
		return &r
	}
	return nil
}

func (TurnOff) Process(ctx *action.Context) (action.ActionResult, *action.ActionResponse) {
	id, resp := directItem(ctx)
	if resp != nil {
		return action.ActionResult{}, resp
	}
	return action.ActionResult{
		Message: "Done.",
		Changes: []world.StateChange{
			flagChange(id, world.AttrIsOn, false),
			touchChange(id),
		},
	}, nil
}

// PostProcess mirrors Go's light-transition check: turning off a
// light source can plunge the room into darkness (spec section 4.6),
// so the grue warning runs after the change is applied rather than
// being folded into Process's message.
func (TurnOff) PostProcess(ctx *action.Context, result action.ActionResult) {
	if ctx.IO == nil {
		return
	}
	if result.Message != "" {
		ctx.IO.Println(result.Message)
	}
	id, resp := directItem(ctx)
	if resp != nil {
		return
	}
	it, ok := ctx.State.Item(id)
	if !ok || !it.IsLightSource() {
		return
	}
	if !ctx.Scope.IsLocationLit(ctx.State) {
		ctx.IO.Println("It is now pitch black. You are likely to be eaten by a grue.")
	}
}
