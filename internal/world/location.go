package world

import (
	"github.com/mdhenderson/gnusto/internal/ids"
	"github.com/mdhenderson/gnusto/internal/values"
	"github.com/mdhenderson/gnusto/internal/vocab"
)

// Exit describes one direction out of a Location (spec section 3.5).
type Exit struct {
	Destination     ids.LocationID
	IsDoor          bool
	IsOpen          bool
	IsLocked        bool
	BlockedMessage  string
	LockKey         ids.ItemID // item that unlocks this exit, if IsDoor && lockable
}

// Location is a data holder keyed by an attribute map, plus a
// per-direction exits map (spec section 3.5).
type Location struct {
	ID         ids.LocationID
	Attributes map[ids.AttributeID]values.StateValue
	Exits      map[vocab.Direction_e]Exit
}

func NewLocation(id ids.LocationID) *Location {
	return &Location{
		ID:         id,
		Attributes: map[ids.AttributeID]values.StateValue{},
		Exits:      map[vocab.Direction_e]Exit{},
	}
}

func (l *Location) Clone() *Location {
	cp := &Location{
		ID:         l.ID,
		Attributes: make(map[ids.AttributeID]values.StateValue, len(l.Attributes)),
		Exits:      make(map[vocab.Direction_e]Exit, len(l.Exits)),
	}
	for k, v := range l.Attributes {
		cp.Attributes[k] = v
	}
	for k, v := range l.Exits {
		cp.Exits[k] = v
	}
	return cp
}

func (l *Location) attr(id ids.AttributeID) values.StateValue { return l.Attributes[id] }

func (l *Location) Name() string        { s, _ := l.attr(AttrName).Str(); return s }
func (l *Location) Description() string { s, _ := l.attr(AttrDescription).Str(); return s }

func (l *Location) InherentlyLit() bool { b, _ := l.attr(AttrInherentlyLit).Bool(); return b }
func (l *Location) IsSacred() bool      { b, _ := l.attr(AttrIsSacred).Bool(); return b }

func (l *Location) Exit(dir vocab.Direction_e) (Exit, bool) {
	e, ok := l.Exits[dir]
	return e, ok
}
