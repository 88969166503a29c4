package verbs

import (
	"github.com/mdhenderson/gnusto/internal/action"
	"github.com/mdhenderson/gnusto/internal/ids"
	"github.com/mdhenderson/gnusto/internal/values"
	"github.com/mdhenderson/gnusto/internal/world"
)

// directItem resolves ctx's sole direct object to an item, failing
// with internalEngineError if the command somehow carries something
// else — the engine only ever sends a handler commands whose syntax
// frame it declared, so this should be unreachable in practice.
func directItem(ctx *action.Context) (ids.ItemID, *action.ActionResponse) {
	ref, ok := ctx.Command.DirectObject()
	if !ok {
		return "", errResp("missing direct object")
	}
	id, ok := ref.Item()
	if !ok {
		return "", action.InternalEngineErrorResponse("direct object is not an item")
	}
	return id, nil
}

func indirectItem(ctx *action.Context) (ids.ItemID, *action.ActionResponse) {
	ref := ctx.Command.IndirectObject
	if ref == nil {
		return "", action.InvalidIndirectObjectResponse("")
	}
	id, ok := ref.Item()
	if !ok {
		return "", action.InternalEngineErrorResponse("indirect object is not an item")
	}
	return id, nil
}

func errResp(msg string) *action.ActionResponse {
	r := action.InternalEngineErrorResponse(msg)
	return &r
}

func requireItem(ctx *action.Context, id ids.ItemID) (*world.Item, *action.ActionResponse) {
	it, ok := ctx.State.Item(id)
	if !ok {
		return nil, errResp("item does not exist: " + string(id))
	}
	return it, nil
}

func requireReachable(ctx *action.Context, id ids.ItemID) *action.ActionResponse {
	if !ctx.Scope.CanTouch(ctx.State, id) {
		r := action.ItemNotAccessibleResponse(id)
		return &r
	}
	return nil
}

// isHeld reports whether it is directly in the player's inventory —
// as opposed to merely reachable (e.g. sitting on a surface in the
// same room).
func isHeld(it *world.Item) bool {
	return it.Parent.Kind() == values.ParentPlayer
}

func touchChange(id ids.ItemID) world.StateChange {
	return world.NewStateChange(values.ItemRef(id), values.ItemAttribute(world.AttrIsTouched), values.BoolValue(true))
}

func flagChange(id ids.ItemID, attr ids.AttributeID, v bool) world.StateChange {
	return world.NewStateChange(values.ItemRef(id), values.ItemAttribute(attr), values.BoolValue(v))
}

func parentChange(id ids.ItemID, parent values.ParentEntity) world.StateChange {
	return world.NewStateChange(values.ItemRef(id), values.ItemParent(), values.ParentEntityValue(parent))
}

// carriedSize sums the sizes of every item directly parented to the
// player (spec section 4.6 Take: "size + inventory ≤ capacity").
func carriedSize(s *world.GameState) int {
	total := 0
	for _, id := range s.ItemsWithParent(values.ParentOfPlayer()) {
		if it, ok := s.Item(id); ok {
			total += it.Size()
		}
	}
	return total
}
