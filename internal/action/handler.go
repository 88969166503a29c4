package action

import (
	"github.com/mdhenderson/gnusto/internal/ids"
	"github.com/mdhenderson/gnusto/internal/vocab"
)

// Handler implements the ActionHandler protocol for one verb family
// (spec section 4.4). Validate rejects bad commands without touching
// state; Process reads state and describes the mutation as data.
type Handler interface {
	Synonyms() []ids.VerbID
	Syntax() []vocab.Frame_e
	RequiresLight() bool
	Validate(ctx *Context) *ActionResponse
	Process(ctx *Context) (ActionResult, *ActionResponse)
}

// PostProcessor is implemented by handlers that need a cosmetic
// follow-up beyond printing result.Message — e.g. Go prints the new
// room description after a successful move. Handlers that don't
// implement it get the engine's default: print result.Message.
type PostProcessor interface {
	PostProcess(ctx *Context, result ActionResult)
}

// SupportsFrame reports whether h accepts frame among its declared
// syntax.
func SupportsFrame(h Handler, frame vocab.Frame_e) bool {
	for _, f := range h.Syntax() {
		if f == frame {
			return true
		}
	}
	return false
}
