package action

import "github.com/mdhenderson/gnusto/internal/world"

// ActionResult is the sole product of a verb handler's Process step
// (spec section 4.1): prose plus the ordered changes and side effects
// the engine applies atomically on the handler's behalf. Process
// itself never mutates GameState.
type ActionResult struct {
	Message             string
	Changes             []world.StateChange
	Effects             []world.SideEffect
	ShouldYieldToEngine bool
}

// Yield is the sentinel a before-turn hook returns to decline: no
// changes, no message, default processing proceeds.
var Yield = ActionResult{ShouldYieldToEngine: true}

func (r ActionResult) IsYield() bool {
	return r.ShouldYieldToEngine && r.Message == "" && len(r.Changes) == 0 && len(r.Effects) == 0
}
