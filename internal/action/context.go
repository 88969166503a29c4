package action

import (
	"github.com/mdhenderson/gnusto/internal/ioh"
	"github.com/mdhenderson/gnusto/internal/scope"
	"github.com/mdhenderson/gnusto/internal/vocab"
	"github.com/mdhenderson/gnusto/internal/world"
)

// Context bundles what a handler's Validate/Process steps need: the
// parsed command, a state snapshot, and the scope resolver for
// reachability/visibility queries (spec section 4.4). Handlers read
// State through it but only ever express mutation via the
// StateChanges they return on ActionResult; nothing in Context lets a
// handler write through to GameState directly.
//
// IO is only meaningful to a PostProcessor: by the time the engine
// calls PostProcess, State already reflects the handler's own
// changes, so a handler like Go can print the new room's description
// straight through IO instead of composing it ahead of the move.
type Context struct {
	Command vocab.Command
	State   *world.GameState
	Scope   *scope.Resolver
	IO      *ioh.Handler
}

func NewContext(cmd vocab.Command, state *world.GameState, resolver *scope.Resolver, io *ioh.Handler) *Context {
	return &Context{Command: cmd, State: state, Scope: resolver, IO: io}
}
