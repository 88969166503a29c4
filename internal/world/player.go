package world

import (
	"github.com/mdhenderson/gnusto/internal/ids"
	"github.com/mdhenderson/gnusto/internal/values"
)

// Player holds the single player's state (spec section 3.6).
// CharacterSheet is an opaque, game-defined blob (stats, class, etc.)
// the framework never interprets directly.
type Player struct {
	CurrentLocation  ids.LocationID
	Score            int
	Moves            int
	CarryingCapacity int
	Health           int
	CharacterSheet   values.StateValue
}

func (p Player) Clone() Player { return p }
