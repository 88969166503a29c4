package world

import (
	"sort"

	"github.com/mdhenderson/gnusto/internal/ids"
	"github.com/mdhenderson/gnusto/internal/values"
)

// FuseState is a running countdown (spec section 3.7/GLOSSARY).
type FuseState struct {
	Remaining int
	Payload   values.StateValue
}

// DaemonState is a running side-effect process (spec section
// 3.7/GLOSSARY). The behavior a daemon runs each tick is looked up by
// its DaemonID in the engine's daemon registry, not stored here;
// GameState only records that it is active and its payload.
type DaemonState struct {
	Payload values.StateValue
}

// GameState is the sole owner of mutable world data (spec section
// 3.7). It is built once from a blueprint and thereafter mutated only
// through Apply.
type GameState struct {
	Items         map[ids.ItemID]*Item
	Locations     map[ids.LocationID]*Location
	Player        Player
	GlobalStates  map[ids.GlobalID]values.StateValue
	Flags         map[ids.GlobalID]struct{}
	Pronouns      map[string][]values.EntityReference
	ActiveFuses   map[ids.FuseID]FuseState
	ActiveDaemons map[ids.DaemonID]DaemonState
	ChangeHistory []StateChange

	// Version increments on every successful Apply; scope-resolution
	// caches use it to invalidate themselves without needing to know
	// which attributes a given change touched.
	Version int
}

func NewGameState() *GameState {
	return &GameState{
		Items:         map[ids.ItemID]*Item{},
		Locations:     map[ids.LocationID]*Location{},
		GlobalStates:  map[ids.GlobalID]values.StateValue{},
		Flags:         map[ids.GlobalID]struct{}{},
		Pronouns:      map[string][]values.EntityReference{},
		ActiveFuses:   map[ids.FuseID]FuseState{},
		ActiveDaemons: map[ids.DaemonID]DaemonState{},
	}
}

func (s *GameState) Item(id ids.ItemID) (*Item, bool) {
	it, ok := s.Items[id]
	return it, ok
}

func (s *GameState) Location(id ids.LocationID) (*Location, bool) {
	l, ok := s.Locations[id]
	return l, ok
}

func (s *GameState) HasFlag(id ids.GlobalID) bool {
	_, ok := s.Flags[id]
	return ok
}

// ItemsWithParent returns, in deterministic ID order, every item
// whose Parent equals p. Used throughout scope resolution and
// ALL-expansion.
func (s *GameState) ItemsWithParent(p values.ParentEntity) []ids.ItemID {
	var out []ids.ItemID
	for id, it := range s.Items {
		if it.Parent.Equal(p) {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// CurrentLocation returns the player's location.
func (s *GameState) CurrentLocation() (*Location, bool) {
	return s.Location(s.Player.CurrentLocation)
}

// IsDescendantOf reports whether candidate is the item itself or
// lives, transitively, inside ancestor (used by put-in/put-on cycle
// checks in addition to the parent-graph cycle check in Apply).
func (s *GameState) IsDescendantOf(candidate, ancestor ids.ItemID) bool {
	seen := map[ids.ItemID]bool{}
	cur := candidate
	for {
		if cur == ancestor {
			return true
		}
		if seen[cur] {
			return false // cycle already present; defensive stop
		}
		seen[cur] = true
		it, ok := s.Items[cur]
		if !ok {
			return false
		}
		next, isItem := it.Parent.Item()
		if !isItem {
			return false
		}
		cur = next
	}
}
