package engine

import (
	"sort"

	"github.com/mdhenderson/gnusto/internal/ids"
	"github.com/mdhenderson/gnusto/internal/values"
)

// expandAll resolves ALL against verb-specific scope (spec section
// 4.5 step 2): TAKE ALL means takable items in the room, DROP ALL
// means held non-worn items, everything else defaults to whatever is
// currently visible. The result is sorted alphabetically by item
// name, the stable order the pipeline then iterates in.
func (e *Engine) expandAll(verb ids.VerbID) ([]values.EntityReference, string) {
	var candidates []ids.ItemID

	switch verb {
	case "take", "get":
		loc, ok := e.State.CurrentLocation()
		if ok {
			for _, id := range e.Scope.Reachable(e.State) {
				if it, ok := e.State.Item(id); ok && it.IsTakable() && it.Parent.Kind() != values.ParentPlayer {
					if p, isLoc := it.Parent.Location(); !isLoc || p == loc.ID {
						candidates = append(candidates, id)
					}
				}
			}
		}
		if len(candidates) == 0 {
			return nil, "There is nothing here to take."
		}
	case "drop":
		for _, id := range e.State.ItemsWithParent(values.ParentOfPlayer()) {
			if it, ok := e.State.Item(id); ok && !it.IsWorn() {
				candidates = append(candidates, id)
			}
		}
		if len(candidates) == 0 {
			return nil, "You aren't carrying anything to drop."
		}
	default:
		candidates = append(candidates, e.Scope.Visible(e.State)...)
		if len(candidates) == 0 {
			return nil, "There is nothing here."
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, _ := e.State.Item(candidates[i])
		b, _ := e.State.Item(candidates[j])
		return a.Name() < b.Name()
	})

	refs := make([]values.EntityReference, len(candidates))
	for i, id := range candidates {
		refs[i] = values.ItemRef(id)
	}
	return refs, ""
}

// joinOxford renders names with an Oxford comma on 3+ entries, used by
// multi-object confirmation messages (spec section 4.5 step 2).
func joinOxford(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		out := names[0]
		for _, n := range names[1 : len(names)-1] {
			out += ", " + n
		}
		out += ", and " + names[len(names)-1]
		return out
	}
}
