package verbs

import (
	"github.com/mdhenderson/gnusto/internal/action"
	"github.com/mdhenderson/gnusto/internal/ids"
	"github.com/mdhenderson/gnusto/internal/values"
	"github.com/mdhenderson/gnusto/internal/vocab"
	"github.com/mdhenderson/gnusto/internal/world"
)

// Open requires the target to be reachable, openable, not locked, and
// not already open.
type Open struct{}

func (Open) Synonyms() []ids.VerbID    { return []ids.VerbID{"open"} }
func (Open) Syntax() []vocab.Frame_e   { return []vocab.Frame_e{vocab.FrameDirectOnly} }
func (Open) RequiresLight() bool       { return true }

func (Open) Validate(ctx *action.Context) *action.ActionResponse {
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
	if !it.IsOpenable() {
		r := action.ItemNotOpenableResponse(id)
		return &r
	}
	if it.IsLocked() {
		r := action.ItemIsLockedResponse(id)
		return &r
	}
	if it.IsOpen() {
		r := action.ItemAlreadyOpenResponse(id)
		return &r
	}
	return nil
}

func (Open) Process(ctx *action.Context) (action.ActionResult, *action.ActionResponse) {
	id, resp := directItem(ctx)
	if resp != nil {
		return action.ActionResult{}, resp
	}
	return action.ActionResult{
		Message: "Opened.",
		Changes: []world.StateChange{
			flagChange(id, world.AttrIsOpen, true),
			touchChange(id),
		},
	}, nil
}

// Close is Open's inverse: the target must be openable and currently
// open.
type Close struct{}

func (Close) Synonyms() []ids.VerbID  { return []ids.VerbID{"close", "shut"} }
func (Close) Syntax() []vocab.Frame_e { return []vocab.Frame_e{vocab.FrameDirectOnly} }
func (Close) RequiresLight() bool     { return true }

func (Close) Validate(ctx *action.Context) *action.ActionResponse {
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
	if !it.IsOpenable() {
		r := action.ItemNotClosableResponse(id)
		return &r
	}
	if !it.IsOpen() {
		r := action.ItemAlreadyClosedResponse(id)
		return &r
	}
	return nil
}

func (Close) Process(ctx *action.Context) (action.ActionResult, *action.ActionResponse) {
	id, resp := directItem(ctx)
	if resp != nil {
		return action.ActionResult{}, resp
	}
	return action.ActionResult{
		Message: "Closed.",
		Changes: []world.StateChange{
			flagChange(id, world.AttrIsOpen, false),
			touchChange(id),
		},
	}, nil
}
