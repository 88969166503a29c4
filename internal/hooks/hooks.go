package hooks

import (
	"github.com/mdhenderson/gnusto/internal/action"
	"github.com/mdhenderson/gnusto/internal/ids"
	"github.com/mdhenderson/gnusto/internal/vocab"
)

// LocationEventKind_e enumerates the moments a LocationEventHandler
// can be invoked for (spec section 4.7).
type LocationEventKind_e int

const (
	LocationBeforeTurn LocationEventKind_e = iota
	LocationAfterTurn
	LocationOnEnter
)

// ItemEventKind_e enumerates the moments an ItemEventHandler can be
// invoked for. Items have no onEnter analogue.
type ItemEventKind_e int

const (
	ItemBeforeTurn ItemEventKind_e = iota
	ItemAfterTurn
)

type LocationEvent struct {
	Kind    LocationEventKind_e
	Command vocab.Command
}

type ItemEvent struct {
	Kind    ItemEventKind_e
	Command vocab.Command
}

// LocationEventHandler and ItemEventHandler are first-class functions
// that replace subclassing: a blueprint registers one per
// location/item it wants to customize, and the engine calls it with a
// read context plus which event fired. Returning (nil, nil) means
// "proceed with default processing"; returning (&action.Yield, nil)
// is the explicit form of the same thing. A non-nil error is caught
// and logged by the engine, and treated the same as (nil, nil), so a
// buggy hook can't wedge the game.
type LocationEventHandler func(ctx *action.Context, event LocationEvent) (*action.ActionResult, error)
type ItemEventHandler func(ctx *action.Context, event ItemEvent) (*action.ActionResult, error)

// Registry holds the blueprint's hook assignments, keyed by the
// entity they customize.
type Registry struct {
	Locations map[ids.LocationID]LocationEventHandler
	Items     map[ids.ItemID]ItemEventHandler
}

func NewRegistry() *Registry {
	return &Registry{
		Locations: map[ids.LocationID]LocationEventHandler{},
		Items:     map[ids.ItemID]ItemEventHandler{},
	}
}

func (r *Registry) Location(id ids.LocationID) (LocationEventHandler, bool) {
	h, ok := r.Locations[id]
	return h, ok
}

func (r *Registry) Item(id ids.ItemID) (ItemEventHandler, bool) {
	h, ok := r.Items[id]
	return h, ok
}
