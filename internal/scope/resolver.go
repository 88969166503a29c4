package scope

import (
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/mdhenderson/gnusto/internal/ids"
	"github.com/mdhenderson/gnusto/internal/values"
	"github.com/mdhenderson/gnusto/internal/world"
)

// cacheKey identifies one memoized query against one GameState
// snapshot. GameState.Version changes on every Apply, so a key from a
// prior turn never collides with (or serves stale data to) the next.
type cacheKey struct {
	version int
	query   string
}

// Resolver answers the pure queries spec section 4.2 names:
// isLocationLit, reachable, visible, canSee, canTouch. It holds no
// GameState of its own; every call takes one explicitly. The cache is
// keyed by Version alone, so a Resolver serves a single game's state:
// two distinct states at the same Version would share cached results.
type Resolver struct {
	cache *lru.Cache[cacheKey, []ids.ItemID]
}

// NewResolver builds a Resolver whose reachable/visible results are
// memoized for the most recent few turns.
func NewResolver() *Resolver {
	c, err := lru.New[cacheKey, []ids.ItemID](8)
	if err != nil {
		panic(err) // only fails for a non-positive size, which 8 never is
	}
	return &Resolver{cache: c}
}

// IsLocationLit reports whether the player's current location has
// light: inherent lighting, a lit light source somewhere within it
// (through open or transparent containers, unconditionally through
// surfaces), or a lit light source the player is carrying.
func (r *Resolver) IsLocationLit(s *world.GameState) bool {
	loc, ok := s.CurrentLocation()
	if !ok {
		return false
	}
	if loc.InherentlyLit() {
		return true
	}
	for _, id := range r.itemsIn(s, values.ParentOfLocation(loc.ID)) {
		if it, ok := s.Item(id); ok && it.IsLightSource() && it.IsOn() {
			return true
		}
	}
	for _, id := range r.itemsIn(s, values.ParentOfPlayer()) {
		if it, ok := s.Item(id); ok && it.IsLightSource() && it.IsOn() {
			return true
		}
	}
	return false
}

// Reachable is the BFS over the player's location and inventory (spec
// section 4.2): containers are entered only when open or transparent,
// surfaces unconditionally, and worn items are always reachable
// because they're already children of the player.
func (r *Resolver) Reachable(s *world.GameState) []ids.ItemID {
	key := cacheKey{version: s.Version, query: "reachable"}
	if v, ok := r.cache.Get(key); ok {
		return v
	}
	set := map[ids.ItemID]bool{}
	var out []ids.ItemID
	loc, ok := s.CurrentLocation()
	if ok {
		for _, id := range r.itemsIn(s, values.ParentOfLocation(loc.ID)) {
			if !set[id] {
				set[id] = true
				out = append(out, id)
			}
		}
	}
	for _, id := range r.itemsIn(s, values.ParentOfPlayer()) {
		if !set[id] {
			set[id] = true
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	r.cache.Add(key, out)
	return out
}

// Visible equals Reachable when the location is lit. In the dark,
// only items the player is directly holding and light sources that
// are themselves lit are visible — a player fumbling in pitch
// blackness can find the lamp in their pocket by feel, and a glowing
// item announces itself, but nothing else can be made out (spec
// section 4.2, testable property 7).
func (r *Resolver) Visible(s *world.GameState) []ids.ItemID {
	reachable := r.Reachable(s)
	if r.IsLocationLit(s) {
		return reachable
	}
	key := cacheKey{version: s.Version, query: "visible"}
	if v, ok := r.cache.Get(key); ok {
		return v
	}
	var out []ids.ItemID
	for _, id := range reachable {
		if it, ok := s.Item(id); ok && (it.Parent.Equal(values.ParentOfPlayer()) || (it.IsLightSource() && it.IsOn())) {
			out = append(out, id)
		}
	}
	r.cache.Add(key, out)
	return out
}

func (r *Resolver) CanSee(s *world.GameState, id ids.ItemID) bool {
	return containsItem(r.Visible(s), id)
}

func (r *Resolver) CanTouch(s *world.GameState, id ids.ItemID) bool {
	return containsItem(r.Reachable(s), id)
}

func containsItem(set []ids.ItemID, id ids.ItemID) bool {
	for _, x := range set {
		if x == id {
			return true
		}
	}
	return false
}

// itemsIn walks the items directly and transitively parented under
// root, descending into a child only when that child is a surface
// (unconditionally) or an open/transparent container.
func (r *Resolver) itemsIn(s *world.GameState, root values.ParentEntity) []ids.ItemID {
	var out []ids.ItemID
	queue := s.ItemsWithParent(root)
	seen := map[ids.ItemID]bool{}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
		it, ok := s.Item(id)
		if !ok {
			continue
		}
		if it.IsSurface() || (it.IsContainer() && (it.IsOpen() || it.IsTransparent())) {
			queue = append(queue, s.ItemsWithParent(values.ParentOfItem(id))...)
		}
	}
	return out
}
