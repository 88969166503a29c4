package verbs

import (
	"github.com/mdhenderson/gnusto/internal/action"
	"github.com/mdhenderson/gnusto/internal/ids"
	"github.com/mdhenderson/gnusto/internal/values"
	"github.com/mdhenderson/gnusto/internal/vocab"
	"github.com/mdhenderson/gnusto/internal/world"
)

// PutIn requires the direct object held, the indirect object reachable
// and an open container, the direct object not already inside it, and
// enough remaining capacity.
type PutIn struct{}

func (PutIn) Synonyms() []ids.VerbID  { return []ids.VerbID{"put-in", "insert"} }
func (PutIn) Syntax() []vocab.Frame_e { return []vocab.Frame_e{vocab.FrameDirectPrepIndirect} }
func (PutIn) RequiresLight() bool     { return true }

func (PutIn) Validate(ctx *action.Context) *action.ActionResponse {
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
	containerID, resp := indirectItem(ctx)
	if resp != nil {
		return resp
	}
	container, resp := requireItem(ctx, containerID)
	if resp != nil {
		return resp
	}
	if resp := requireReachable(ctx, containerID); resp != nil {
		return resp
	}
	if !container.IsContainer() {
		r := action.TargetIsNotAContainerResponse(containerID)
		return &r
	}
	if !container.IsOpen() {
		r := action.ContainerIsClosedResponse(containerID)
		return &r
	}
	if containerID == id || ctx.State.IsDescendantOf(containerID, id) {
		r := action.ItemTooLargeForContainerResponse(id, containerID)
		return &r
	}
	if carriedInItem(ctx.State, containerID)+it.Size() > container.Capacity() {
		r := action.ItemTooLargeForContainerResponse(id, containerID)
		return &r
	}
	return nil
}

func (PutIn) Process(ctx *action.Context) (action.ActionResult, *action.ActionResponse) {
	id, resp := directItem(ctx)
	if resp != nil {
		return action.ActionResult{}, resp
	}
	containerID, resp := indirectItem(ctx)
	if resp != nil {
		return action.ActionResult{}, resp
	}
	return action.ActionResult{
		Message: "Done.",
		Changes: []world.StateChange{
			parentChange(id, values.ParentOfItem(containerID)),
			touchChange(id),
		},
	}, nil
}

// PutOn requires the direct object held and the indirect object
// reachable and a surface. It does not check the surface's capacity.
type PutOn struct{}

func (PutOn) Synonyms() []ids.VerbID  { return []ids.VerbID{"put-on"} }
func (PutOn) Syntax() []vocab.Frame_e { return []vocab.Frame_e{vocab.FrameDirectPrepIndirect} }
func (PutOn) RequiresLight() bool     { return true }

func (PutOn) Validate(ctx *action.Context) *action.ActionResponse {
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
	surfaceID, resp := indirectItem(ctx)
	if resp != nil {
		return resp
	}
	surface, resp := requireItem(ctx, surfaceID)
	if resp != nil {
		return resp
	}
	if resp := requireReachable(ctx, surfaceID); resp != nil {
		return resp
	}
	if !surface.IsSurface() {
		r := action.TargetIsNotASurfaceResponse(surfaceID)
		return &r
	}
	if surfaceID == id || ctx.State.IsDescendantOf(surfaceID, id) {
		r := action.ItemTooLargeForContainerResponse(id, surfaceID)
		return &r
	}
	return nil
}

func (PutOn) Process(ctx *action.Context) (action.ActionResult, *action.ActionResponse) {
	id, resp := directItem(ctx)
	if resp != nil {
		return action.ActionResult{}, resp
	}
	surfaceID, resp := indirectItem(ctx)
	if resp != nil {
		return action.ActionResult{}, resp
	}
	return action.ActionResult{
		Message: "Done.",
		Changes: []world.StateChange{
			parentChange(id, values.ParentOfItem(surfaceID)),
			touchChange(id),
		},
	}, nil
}

func carriedInItem(s *world.GameState, container ids.ItemID) int {
	total := 0
	for _, id := range s.ItemsWithParent(values.ParentOfItem(container)) {
		if it, ok := s.Item(id); ok {
			total += it.Size()
		}
	}
	return total
}
