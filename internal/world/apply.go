package world

import (
	"fmt"

	"github.com/mdhenderson/gnusto/cerrs"
	"github.com/mdhenderson/gnusto/internal/ids"
	"github.com/mdhenderson/gnusto/internal/values"
)

// StateValidationError reports that a StateChange's asserted OldValue
// did not match the current value (spec section 3.8/7).
type StateValidationError struct {
	Change   StateChange
	Actual   values.StateValue
	HasValue bool
}

func (e *StateValidationError) Error() string {
	if !e.HasValue {
		return fmt.Sprintf("state validation failed: %s has no current value", e.Change.AttributeKey)
	}
	return fmt.Sprintf("state validation failed: %s is %s, not %s", e.Change.AttributeKey, e.Actual, *e.Change.OldValue)
}

func (e *StateValidationError) Unwrap() error { return cerrs.ErrStateValidationFailed }

// CycleError reports that an itemParent change would make an item its
// own ancestor (spec section 4.1/7).
type CycleError struct {
	Item   ids.ItemID
	Parent values.ParentEntity
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("internal engine error: %s cannot become a descendant of itself via parent %s", e.Item, e.Parent)
}

func (e *CycleError) Unwrap() error { return cerrs.ErrCycleDetected }

// locationExitWire is the opaqueCodable payload an AttrLocationExits
// StateChange carries, since Exit is not itself one of StateValue's
// tagged variants.
type locationExitWire struct {
	Destination    ids.LocationID
	IsDoor         bool
	IsOpen         bool
	IsLocked       bool
	BlockedMessage string
	LockKey        ids.ItemID
}

const locationExitTypeName = "world.Exit"

// ExitValue wraps an Exit as an opaqueCodable StateValue so it can
// travel on a StateChange's NewValue/OldValue.
func ExitValue(e Exit) values.StateValue {
	w := locationExitWire{
		Destination:    e.Destination,
		IsDoor:         e.IsDoor,
		IsOpen:         e.IsOpen,
		IsLocked:       e.IsLocked,
		BlockedMessage: e.BlockedMessage,
		LockKey:        e.LockKey,
	}
	// EncodeOpaque only fails if w can't marshal to JSON, which a
	// plain struct of strings/bools/IDs never can't.
	v, err := values.EncodeOpaque(locationExitTypeName, w)
	if err != nil {
		panic(err)
	}
	return v
}

// DecodeExit unwraps a StateValue produced by ExitValue.
func DecodeExit(v values.StateValue) (Exit, error) {
	var w locationExitWire
	if err := v.DecodeOpaque(locationExitTypeName, &w); err != nil {
		return Exit{}, err
	}
	return Exit{
		Destination:    w.Destination,
		IsDoor:         w.IsDoor,
		IsOpen:         w.IsOpen,
		IsLocked:       w.IsLocked,
		BlockedMessage: w.BlockedMessage,
		LockKey:        w.LockKey,
	}, nil
}

// Apply commits changes to s atomically (spec section 4.1/7): every
// change's OldValue, if asserted, is checked against the current
// state and every itemParent change is checked for cycles before any
// mutation happens. If any check fails, s is left completely
// unchanged and the first failure is returned.
func (s *GameState) Apply(changes []StateChange) error {
	for i := range changes {
		if err := s.validateChange(changes[i]); err != nil {
			return err
		}
	}
	for i := range changes {
		s.commitChange(changes[i])
	}
	s.ChangeHistory = append(s.ChangeHistory, changes...)
	s.Version++
	return nil
}

func (s *GameState) validateChange(c StateChange) error {
	if c.OldValue != nil {
		current, ok := s.currentValue(c.EntityID, c.AttributeKey)
		if !ok || !current.Equal(*c.OldValue) {
			return &StateValidationError{Change: c, Actual: current, HasValue: ok}
		}
	}
	if c.AttributeKey.Kind() == values.AttrItemParent {
		item, ok := c.EntityID.Item()
		if !ok {
			return fmt.Errorf("%w: itemParent change on non-item entity %s", cerrs.ErrInternalEngineError, c.EntityID)
		}
		parent := mustParent(c.NewValue)
		if target, isItem := parent.Item(); isItem && (target == item || s.IsDescendantOf(target, item)) {
			return &CycleError{Item: item, Parent: parent}
		}
	}
	return nil
}

func mustParent(v values.StateValue) values.ParentEntity {
	p, _ := v.Parent()
	return p
}

// currentValue reads the value an AttributeKey currently addresses on
// an entity, reporting ok=false if the entity or key don't resolve to
// anything (a brand-new attribute has no "current" value).
func (s *GameState) currentValue(entity values.EntityReference, key values.AttributeKey) (values.StateValue, bool) {
	switch key.Kind() {
	case values.AttrItemAttribute:
		id, ok := entity.Item()
		if !ok {
			return values.StateValue{}, false
		}
		it, ok := s.Items[id]
		if !ok {
			return values.StateValue{}, false
		}
		v, ok := it.Attributes[key.Attribute()]
		return v, ok
	case values.AttrItemParent:
		id, ok := entity.Item()
		if !ok {
			return values.StateValue{}, false
		}
		it, ok := s.Items[id]
		if !ok {
			return values.StateValue{}, false
		}
		return values.ParentEntityValue(it.Parent), true
	case values.AttrLocationAttribute:
		id, ok := entity.Location()
		if !ok {
			return values.StateValue{}, false
		}
		l, ok := s.Locations[id]
		if !ok {
			return values.StateValue{}, false
		}
		v, ok := l.Attributes[key.Attribute()]
		return v, ok
	case values.AttrLocationExits:
		id, ok := entity.Location()
		if !ok {
			return values.StateValue{}, false
		}
		l, ok := s.Locations[id]
		if !ok {
			return values.StateValue{}, false
		}
		e, ok := l.Exits[key.Direction()]
		if !ok {
			return values.StateValue{}, false
		}
		return ExitValue(e), true
	case values.AttrPlayerScore:
		return values.IntValue(s.Player.Score), true
	case values.AttrPlayerMoves:
		return values.IntValue(s.Player.Moves), true
	case values.AttrPlayerLocation:
		return values.LocationIDValue(s.Player.CurrentLocation), true
	case values.AttrPlayerInventoryLimit:
		return values.IntValue(s.Player.CarryingCapacity), true
	case values.AttrPlayerHealth:
		return values.IntValue(s.Player.Health), true
	case values.AttrPronounReference:
		refs, ok := s.Pronouns[key.Pronoun()]
		if !ok {
			return values.StateValue{}, false
		}
		return values.EntityRefSetValue(refs), true
	case values.AttrSetFlag, values.AttrClearFlag:
		return values.BoolValue(s.HasFlag(key.Global())), true
	case values.AttrGlobalState:
		v, ok := s.GlobalStates[key.Global()]
		return v, ok
	default:
		return values.StateValue{}, false
	}
}

// commitChange applies a single already-validated change. It never
// fails: every branch it can reach was already checked in
// validateChange, and an entity that disappeared between validation
// and commit is impossible because Apply does not yield between the
// two passes.
func (s *GameState) commitChange(c StateChange) {
	key := c.AttributeKey
	switch key.Kind() {
	case values.AttrItemAttribute:
		id, _ := c.EntityID.Item()
		if it, ok := s.Items[id]; ok {
			it.Attributes[key.Attribute()] = c.NewValue
		}
	case values.AttrItemParent:
		id, _ := c.EntityID.Item()
		if it, ok := s.Items[id]; ok {
			it.Parent = mustParent(c.NewValue)
		}
	case values.AttrLocationAttribute:
		id, _ := c.EntityID.Location()
		if l, ok := s.Locations[id]; ok {
			l.Attributes[key.Attribute()] = c.NewValue
		}
	case values.AttrLocationExits:
		id, _ := c.EntityID.Location()
		if l, ok := s.Locations[id]; ok {
			if e, err := DecodeExit(c.NewValue); err == nil {
				l.Exits[key.Direction()] = e
			}
		}
	case values.AttrPlayerScore:
		i, _ := c.NewValue.Int()
		s.Player.Score = i
	case values.AttrPlayerMoves:
		i, _ := c.NewValue.Int()
		s.Player.Moves = i
	case values.AttrPlayerLocation:
		id, _ := c.NewValue.LocationID()
		s.Player.CurrentLocation = id
	case values.AttrPlayerInventoryLimit:
		i, _ := c.NewValue.Int()
		s.Player.CarryingCapacity = i
	case values.AttrPlayerHealth:
		i, _ := c.NewValue.Int()
		s.Player.Health = i
	case values.AttrPronounReference:
		refs, _ := c.NewValue.EntityRefSet()
		s.Pronouns[key.Pronoun()] = refs
	case values.AttrSetFlag:
		s.Flags[key.Global()] = struct{}{}
	case values.AttrClearFlag:
		delete(s.Flags, key.Global())
	case values.AttrGlobalState:
		s.GlobalStates[key.Global()] = c.NewValue
	}
}
