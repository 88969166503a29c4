package verbs

import (
	"github.com/mdhenderson/gnusto/internal/action"
	"github.com/mdhenderson/gnusto/internal/ids"
	"github.com/mdhenderson/gnusto/internal/vocab"
	"github.com/mdhenderson/gnusto/internal/world"
)

// Lock requires a direct object (the lockable item) and an indirect
// object (the key): the key must be held, the target lockable,
// unlocked, and the key must match the target's lockKey.
type Lock struct{}

func (Lock) Synonyms() []ids.VerbID  { return []ids.VerbID{"lock"} }
func (Lock) Syntax() []vocab.Frame_e { return []vocab.Frame_e{vocab.FrameDirectPrepIndirect} }
func (Lock) RequiresLight() bool     { return true }

func (Lock) Validate(ctx *action.Context) *action.ActionResponse {
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
	keyID, resp := indirectItem(ctx)
	if resp != nil {
		return resp
	}
	key, resp := requireItem(ctx, keyID)
	if resp != nil {
		return resp
	}
	if !isHeld(key) {
		r := action.ToolMissingResponse(key.Name())
		return &r
	}
	if !it.IsLockable() {
		r := action.ItemNotLockableResponse(id)
		return &r
	}
	if it.IsLocked() {
		r := action.ItemIsLockedResponse(id)
		return &r
	}
	if want, ok := it.LockKey(); !ok || want != keyID {
		r := action.WrongKeyResponse(keyID, id)
		return &r
	}
	return nil
}

func (Lock) Process(ctx *action.Context) (action.ActionResult, *action.ActionResponse) {
	id, resp := directItem(ctx)
	if resp != nil {
		return action.ActionResult{}, resp
	}
	return action.ActionResult{
		Message: "Locked.",
		Changes: []world.StateChange{
			flagChange(id, world.AttrIsLocked, true),
			touchChange(id),
		},
	}, nil
}

// Unlock is Lock's inverse.
type Unlock struct{}

func (Unlock) Synonyms() []ids.VerbID  { return []ids.VerbID{"unlock"} }
func (Unlock) Syntax() []vocab.Frame_e { return []vocab.Frame_e{vocab.FrameDirectPrepIndirect} }
func (Unlock) RequiresLight() bool     { return true }

func (Unlock) Validate(ctx *action.Context) *action.ActionResponse {
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
	keyID, resp := indirectItem(ctx)
	if resp != nil {
		return resp
	}
	key, resp := requireItem(ctx, keyID)
	if resp != nil {
		return resp
	}
	if !isHeld(key) {
		r := action.ToolMissingResponse(key.Name())
		return &r
	}
	if !it.IsLockable() {
		r := action.ItemNotUnlockableResponse(id)
		return &r
	}
	if !it.IsLocked() {
		r := action.ItemIsUnlockedResponse(id)
		return &r
	}
	if want, ok := it.LockKey(); !ok || want != keyID {
		r := action.WrongKeyResponse(keyID, id)
		return &r
	}
	return nil
}

func (Unlock) Process(ctx *action.Context) (action.ActionResult, *action.ActionResponse) {
	id, resp := directItem(ctx)
	if resp != nil {
		return action.ActionResult{}, resp
	}
	return action.ActionResult{
		Message: "Unlocked.",
		Changes: []world.StateChange{
			flagChange(id, world.AttrIsLocked, false),
			touchChange(id),
		},
	}, nil
}
