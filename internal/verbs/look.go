package verbs

import (
	"fmt"

	"github.com/mdhenderson/gnusto/internal/action"
	"github.com/mdhenderson/gnusto/internal/ids"
	"github.com/mdhenderson/gnusto/internal/values"
	"github.com/mdhenderson/gnusto/internal/vocab"
	"github.com/mdhenderson/gnusto/internal/world"
)

// Look prints the current location's name and, if lit, its
// description and contents; in the dark it prints the grue warning
// instead. It never touches state, so Validate always succeeds.
type Look struct{}

func (Look) Synonyms() []ids.VerbID  { return []ids.VerbID{"look", "l"} }
func (Look) Syntax() []vocab.Frame_e { return []vocab.Frame_e{vocab.FrameIntransitive} }
func (Look) RequiresLight() bool     { return false }

func (Look) Validate(ctx *action.Context) *action.ActionResponse { return nil }

func (Look) Process(ctx *action.Context) (action.ActionResult, *action.ActionResponse) {
	loc, ok := ctx.State.CurrentLocation()
	if !ok {
		return action.ActionResult{}, errResp("player has no current location")
	}
	if !ctx.Scope.IsLocationLit(ctx.State) {
		return action.ActionResult{Message: "It is pitch dark, and you are likely to be eaten by a grue."}, nil
	}
	msg := loc.Name() + "\n" + loc.Description()
	for _, id := range ctx.State.ItemsWithParent(values.ParentOfLocation(loc.ID)) {
		if it, ok := ctx.State.Item(id); ok && !it.IsScenery() {
			msg += fmt.Sprintf("\nThere is a %s here.", it.Name())
		}
	}
	return action.ActionResult{Message: msg}, nil
}

// Examine describes the direct object: its own description text, plus
// a note about open/closed state for containers (with their contents
// when open; a closed transparent container's contents are not
// listed), plus a note when a wearable is being worn.
type Examine struct{}

func (Examine) Synonyms() []ids.VerbID  { return []ids.VerbID{"examine", "x", "look-at"} }
func (Examine) Syntax() []vocab.Frame_e { return []vocab.Frame_e{vocab.FrameDirectOnly} }
func (Examine) RequiresLight() bool     { return true }

func (Examine) Validate(ctx *action.Context) *action.ActionResponse {
	id, resp := directItem(ctx)
	if resp != nil {
		return resp
	}
	if _, resp := requireItem(ctx, id); resp != nil {
		return resp
	}
	return requireReachable(ctx, id)
}

func (Examine) Process(ctx *action.Context) (action.ActionResult, *action.ActionResponse) {
	id, resp := directItem(ctx)
	if resp != nil {
		return action.ActionResult{}, resp
	}
	it, _ := requireItem(ctx, id)
	msg := it.Description()
	if it.IsContainer() {
		if it.IsOpen() {
			msg += " It is open."
			contents := ctx.State.ItemsWithParent(values.ParentOfItem(id))
			if len(contents) == 0 {
				msg += " It is empty."
			} else {
				for _, cid := range contents {
					if c, ok := ctx.State.Item(cid); ok {
						msg += fmt.Sprintf(" It contains the %s.", c.Name())
					}
				}
			}
		} else {
			msg += " It is closed."
		}
	}
	if it.IsWearable() {
		if it.IsWorn() {
			msg += " You are wearing it."
		}
	}
	return action.ActionResult{
		Message: msg,
		Changes: []world.StateChange{touchChange(id)},
	}, nil
}

// Inventory lists everything the player is directly carrying.
type Inventory struct{}

func (Inventory) Synonyms() []ids.VerbID  { return []ids.VerbID{"inventory", "i"} }
func (Inventory) Syntax() []vocab.Frame_e { return []vocab.Frame_e{vocab.FrameIntransitive} }
func (Inventory) RequiresLight() bool     { return false }

func (Inventory) Validate(ctx *action.Context) *action.ActionResponse { return nil }

func (Inventory) Process(ctx *action.Context) (action.ActionResult, *action.ActionResponse) {
	held := ctx.State.ItemsWithParent(values.ParentOfPlayer())
	if len(held) == 0 {
		return action.ActionResult{Message: "You are empty-handed."}, nil
	}
	msg := "You are carrying:"
	for _, id := range held {
		if it, ok := ctx.State.Item(id); ok {
			worn := ""
			if it.IsWorn() {
				worn = " (worn)"
			}
			msg += fmt.Sprintf("\n  A %s%s", it.Name(), worn)
		}
	}
	return action.ActionResult{Message: msg}, nil
}

// Score reports the player's current score and move count.
type Score struct{}

func (Score) Synonyms() []ids.VerbID  { return []ids.VerbID{"score"} }
func (Score) Syntax() []vocab.Frame_e { return []vocab.Frame_e{vocab.FrameIntransitive} }
func (Score) RequiresLight() bool     { return false }

func (Score) Validate(ctx *action.Context) *action.ActionResponse { return nil }

func (Score) Process(ctx *action.Context) (action.ActionResult, *action.ActionResponse) {
	p := ctx.State.Player
	msg := fmt.Sprintf("Your score is %d (total of %d points), in %d moves.", p.Score, p.Score, p.Moves)
	return action.ActionResult{Message: msg}, nil
}

// Wait passes one turn with no effect beyond what the engine's
// per-turn bookkeeping (move counter, daemons, fuses) already does.
type Wait struct{}

func (Wait) Synonyms() []ids.VerbID  { return []ids.VerbID{"wait", "z"} }
func (Wait) Syntax() []vocab.Frame_e { return []vocab.Frame_e{vocab.FrameIntransitive} }
func (Wait) RequiresLight() bool     { return false }

func (Wait) Validate(ctx *action.Context) *action.ActionResponse { return nil }

func (Wait) Process(ctx *action.Context) (action.ActionResult, *action.ActionResponse) {
	return action.ActionResult{Message: "Time passes."}, nil
}

// Touch requires the direct object to be reachable; it marks the item
// touched and has no other effect unless an event hook intervenes.
type Touch struct{}

func (Touch) Synonyms() []ids.VerbID  { return []ids.VerbID{"touch", "feel"} }
func (Touch) Syntax() []vocab.Frame_e { return []vocab.Frame_e{vocab.FrameDirectOnly} }
func (Touch) RequiresLight() bool     { return false }

func (Touch) Validate(ctx *action.Context) *action.ActionResponse {
	id, resp := directItem(ctx)
	if resp != nil {
		return resp
	}
	if _, resp := requireItem(ctx, id); resp != nil {
		return resp
	}
	return requireReachable(ctx, id)
}

func (Touch) Process(ctx *action.Context) (action.ActionResult, *action.ActionResponse) {
	id, resp := directItem(ctx)
	if resp != nil {
		return action.ActionResult{}, resp
	}
	return action.ActionResult{
		Message: "Nothing special happens.",
		Changes: []world.StateChange{touchChange(id)},
	}, nil
}

// Kick requires the direct object to be reachable; it's mostly a
// flavor verb, occasionally intercepted by an item's event hook.
type Kick struct{}

func (Kick) Synonyms() []ids.VerbID  { return []ids.VerbID{"kick"} }
func (Kick) Syntax() []vocab.Frame_e { return []vocab.Frame_e{vocab.FrameDirectOnly} }
func (Kick) RequiresLight() bool     { return true }

func (Kick) Validate(ctx *action.Context) *action.ActionResponse {
	id, resp := directItem(ctx)
	if resp != nil {
		return resp
	}
	if _, resp := requireItem(ctx, id); resp != nil {
		return resp
	}
	return requireReachable(ctx, id)
}

func (Kick) Process(ctx *action.Context) (action.ActionResult, *action.ActionResponse) {
	id, resp := directItem(ctx)
	if resp != nil {
		return action.ActionResult{}, resp
	}
	return action.ActionResult{
		Message: "Violence isn't the answer to this one.",
		Changes: []world.StateChange{touchChange(id)},
	}, nil
}

// Give requires the direct object held and the indirect object (an
// NPC item) reachable; the built-in handler only relocates the item,
// leaving any reaction to the recipient's event hooks.
type Give struct{}

func (Give) Synonyms() []ids.VerbID  { return []ids.VerbID{"give"} }
func (Give) Syntax() []vocab.Frame_e { return []vocab.Frame_e{vocab.FrameDirectPrepIndirect} }
func (Give) RequiresLight() bool     { return true }

func (Give) Validate(ctx *action.Context) *action.ActionResponse {
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
	recipientID, resp := indirectItem(ctx)
	if resp != nil {
		return resp
	}
	if _, resp := requireItem(ctx, recipientID); resp != nil {
		return resp
	}
	return requireReachable(ctx, recipientID)
}

func (Give) Process(ctx *action.Context) (action.ActionResult, *action.ActionResponse) {
	id, resp := directItem(ctx)
	if resp != nil {
		return action.ActionResult{}, resp
	}
	recipientID, resp := indirectItem(ctx)
	if resp != nil {
		return action.ActionResult{}, resp
	}
	recipient, _ := requireItem(ctx, recipientID)
	return action.ActionResult{
		Message: fmt.Sprintf("You give the %s to the %s.", mustName(ctx, id), recipient.Name()),
		Changes: []world.StateChange{
			parentChange(id, values.ParentOfItem(recipientID)),
			touchChange(id),
		},
	}, nil
}

func mustName(ctx *action.Context, id ids.ItemID) string {
	if it, ok := ctx.State.Item(id); ok {
		return it.Name()
	}
	return string(id)
}
