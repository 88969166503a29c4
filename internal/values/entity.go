package values

import (
	"encoding/json"
	"fmt"

	"github.com/mdhenderson/gnusto/internal/ids"
)

// EntityKind_e distinguishes the variants of an EntityReference.
type EntityKind_e int

const (
	EntityUnknown EntityKind_e = iota
	EntityItem
	EntityLocation
	EntityPlayer
	EntityGlobal
	EntityNowhere
)

var (
	entityKindToString = map[EntityKind_e]string{
		EntityUnknown:  "?",
		EntityItem:     "item",
		EntityLocation: "location",
		EntityPlayer:   "player",
		EntityGlobal:   "global",
		EntityNowhere:  "nowhere",
	}
	stringToEntityKind = map[string]EntityKind_e{
		"?":        EntityUnknown,
		"item":     EntityItem,
		"location": EntityLocation,
		"player":   EntityPlayer,
		"global":   EntityGlobal,
		"nowhere":  EntityNowhere,
	}
)

func (k EntityKind_e) String() string {
	if s, ok := entityKindToString[k]; ok {
		return s
	}
	return fmt.Sprintf("EntityKind(%d)", int(k))
}

// EntityReference is `.item(ItemID) | .location(LocationID) | .player
// | .global | .nowhere` per spec section 3.2/9. It is what pronouns
// and entityReferenceSet StateValues hold.
type EntityReference struct {
	kind     EntityKind_e
	item     ids.ItemID
	location ids.LocationID
	global   ids.GlobalID
}

func ItemRef(id ids.ItemID) EntityReference {
	return EntityReference{kind: EntityItem, item: id}
}

func LocationRef(id ids.LocationID) EntityReference {
	return EntityReference{kind: EntityLocation, location: id}
}

func PlayerRef() EntityReference {
	return EntityReference{kind: EntityPlayer}
}

func GlobalRef(id ids.GlobalID) EntityReference {
	return EntityReference{kind: EntityGlobal, global: id}
}

func NowhereRef() EntityReference {
	return EntityReference{kind: EntityNowhere}
}

func (r EntityReference) Kind() EntityKind_e { return r.kind }

func (r EntityReference) Item() (ids.ItemID, bool) {
	return r.item, r.kind == EntityItem
}

func (r EntityReference) Location() (ids.LocationID, bool) {
	return r.location, r.kind == EntityLocation
}

func (r EntityReference) Global() (ids.GlobalID, bool) {
	return r.global, r.kind == EntityGlobal
}

func (r EntityReference) Equal(o EntityReference) bool {
	return r.kind == o.kind && r.item == o.item && r.location == o.location && r.global == o.global
}

func (r EntityReference) String() string {
	switch r.kind {
	case EntityItem:
		return "item:" + r.item.String()
	case EntityLocation:
		return "location:" + r.location.String()
	case EntityPlayer:
		return "player"
	case EntityGlobal:
		return "global:" + r.global.String()
	case EntityNowhere:
		return "nowhere"
	default:
		return "?"
	}
}

type entityReferenceWire struct {
	Kind     string       `json:"kind"`
	Item     ids.ItemID   `json:"item,omitempty"`
	Location ids.LocationID `json:"location,omitempty"`
	Global   ids.GlobalID `json:"global,omitempty"`
}

func (r EntityReference) MarshalJSON() ([]byte, error) {
	return json.Marshal(entityReferenceWire{
		Kind:     r.kind.String(),
		Item:     r.item,
		Location: r.location,
		Global:   r.global,
	})
}

func (r *EntityReference) UnmarshalJSON(data []byte) error {
	var w entityReferenceWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	kind, ok := stringToEntityKind[w.Kind]
	if !ok {
		return fmt.Errorf("invalid EntityReference kind %q", w.Kind)
	}
	*r = EntityReference{kind: kind, item: w.Item, location: w.Location, global: w.Global}
	return nil
}

// ParentKind_e distinguishes the variants of a ParentEntity.
type ParentKind_e int

const (
	ParentUnknown ParentKind_e = iota
	ParentItem
	ParentLocation
	ParentPlayer
	ParentNowhere
)

var (
	parentKindToString = map[ParentKind_e]string{
		ParentUnknown:  "?",
		ParentItem:     "item",
		ParentLocation: "location",
		ParentPlayer:   "player",
		ParentNowhere:  "nowhere",
	}
	stringToParentKind = map[string]ParentKind_e{
		"?":        ParentUnknown,
		"item":     ParentItem,
		"location": ParentLocation,
		"player":   ParentPlayer,
		"nowhere":  ParentNowhere,
	}
)

func (k ParentKind_e) String() string {
	if s, ok := parentKindToString[k]; ok {
		return s
	}
	return fmt.Sprintf("ParentKind(%d)", int(k))
}

// ParentEntity is where an item currently lives: another item
// (container/surface), a location, the player, or nowhere. Items form
// a tree rooted at one of these per spec section 3.4.
type ParentEntity struct {
	kind     ParentKind_e
	item     ids.ItemID
	location ids.LocationID
}

func ParentOfItem(id ids.ItemID) ParentEntity {
	return ParentEntity{kind: ParentItem, item: id}
}

func ParentOfLocation(id ids.LocationID) ParentEntity {
	return ParentEntity{kind: ParentLocation, location: id}
}

func ParentOfPlayer() ParentEntity {
	return ParentEntity{kind: ParentPlayer}
}

func ParentOfNowhere() ParentEntity {
	return ParentEntity{kind: ParentNowhere}
}

func (p ParentEntity) Kind() ParentKind_e { return p.kind }

func (p ParentEntity) Item() (ids.ItemID, bool) {
	return p.item, p.kind == ParentItem
}

func (p ParentEntity) Location() (ids.LocationID, bool) {
	return p.location, p.kind == ParentLocation
}

func (p ParentEntity) Equal(o ParentEntity) bool {
	return p.kind == o.kind && p.item == o.item && p.location == o.location
}

func (p ParentEntity) String() string {
	switch p.kind {
	case ParentItem:
		return "item:" + p.item.String()
	case ParentLocation:
		return "location:" + p.location.String()
	case ParentPlayer:
		return "player"
	case ParentNowhere:
		return "nowhere"
	default:
		return "?"
	}
}

// AsEntityReference converts a ParentEntity to the equivalent
// EntityReference, used when a hook or pronoun needs to refer to
// "wherever this item currently is" uniformly.
func (p ParentEntity) AsEntityReference() EntityReference {
	switch p.kind {
	case ParentItem:
		return ItemRef(p.item)
	case ParentLocation:
		return LocationRef(p.location)
	case ParentPlayer:
		return PlayerRef()
	default:
		return NowhereRef()
	}
}

type parentEntityWire struct {
	Kind     string       `json:"kind"`
	Item     ids.ItemID   `json:"item,omitempty"`
	Location ids.LocationID `json:"location,omitempty"`
}

func (p ParentEntity) MarshalJSON() ([]byte, error) {
	return json.Marshal(parentEntityWire{Kind: p.kind.String(), Item: p.item, Location: p.location})
}

func (p *ParentEntity) UnmarshalJSON(data []byte) error {
	var w parentEntityWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	kind, ok := stringToParentKind[w.Kind]
	if !ok {
		return fmt.Errorf("invalid ParentEntity kind %q", w.Kind)
	}
	*p = ParentEntity{kind: kind, item: w.Item, location: w.Location}
	return nil
}
