package world

import (
	"github.com/mdhenderson/gnusto/internal/ids"
	"github.com/mdhenderson/gnusto/internal/values"
)

// Item is a data holder keyed by an attribute map, per spec section
// 3.4. It carries no behavior of its own; every handler reads it
// through these typed convenience accessors and mutates it only via
// StateChanges applied through GameState.Apply.
type Item struct {
	ID         ids.ItemID
	Attributes map[ids.AttributeID]values.StateValue
	Parent     values.ParentEntity
}

func NewItem(id ids.ItemID, parent values.ParentEntity) *Item {
	return &Item{ID: id, Attributes: map[ids.AttributeID]values.StateValue{}, Parent: parent}
}

// Clone returns a deep copy, used by GameState snapshots so callers
// that only have read access can't reach back into live data.
func (it *Item) Clone() *Item {
	cp := &Item{ID: it.ID, Attributes: make(map[ids.AttributeID]values.StateValue, len(it.Attributes)), Parent: it.Parent}
	for k, v := range it.Attributes {
		cp.Attributes[k] = v
	}
	return cp
}

func (it *Item) attr(id ids.AttributeID) values.StateValue { return it.Attributes[id] }

func (it *Item) flag(id ids.AttributeID) bool {
	b, _ := it.attr(id).Bool()
	return b
}

func (it *Item) str(id ids.AttributeID) string {
	s, _ := it.attr(id).Str()
	return s
}

func (it *Item) integer(id ids.AttributeID) int {
	i, _ := it.attr(id).Int()
	return i
}

func (it *Item) Name() string        { return it.str(AttrName) }
func (it *Item) Description() string { return it.str(AttrDescription) }
func (it *Item) Size() int           { return it.integer(AttrSize) }
func (it *Item) Capacity() int       { return it.integer(AttrCapacity) }

func (it *Item) LockKey() (ids.ItemID, bool) {
	return it.attr(AttrLockKey).ItemID()
}

func (it *Item) Adjectives() []string {
	s, _ := it.attr(AttrAdjectives).StringSet()
	return s
}

func (it *Item) Synonyms() []string {
	s, _ := it.attr(AttrSynonyms).StringSet()
	return s
}

// HasFlag is the generic predicate used by the built-in verbs and by
// game-defined attributes alike: any boolean attribute is a flag.
func (it *Item) HasFlag(id ids.AttributeID) bool { return it.flag(id) }

func (it *Item) IsTakable() bool     { return it.flag(AttrIsTakable) }
func (it *Item) IsContainer() bool   { return it.flag(AttrIsContainer) }
func (it *Item) IsSurface() bool     { return it.flag(AttrIsSurface) }
func (it *Item) IsOpenable() bool    { return it.flag(AttrIsOpenable) }
func (it *Item) IsOpen() bool        { return it.flag(AttrIsOpen) }
func (it *Item) IsLockable() bool    { return it.flag(AttrIsLockable) }
func (it *Item) IsLocked() bool      { return it.flag(AttrIsLocked) }
func (it *Item) IsWearable() bool    { return it.flag(AttrIsWearable) }
func (it *Item) IsWorn() bool        { return it.flag(AttrIsWorn) }
func (it *Item) IsDevice() bool      { return it.flag(AttrIsDevice) }
func (it *Item) IsLightSource() bool { return it.flag(AttrIsLightSource) }
func (it *Item) IsOn() bool          { return it.flag(AttrIsOn) }
func (it *Item) IsTouched() bool     { return it.flag(AttrIsTouched) }
func (it *Item) IsScenery() bool     { return it.flag(AttrIsScenery) }
func (it *Item) IsEdible() bool      { return it.flag(AttrIsEdible) }
func (it *Item) IsReadable() bool    { return it.flag(AttrIsReadable) }
func (it *Item) IsTransparent() bool { return it.flag(AttrIsTransparent) }
