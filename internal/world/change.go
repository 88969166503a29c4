package world

import "github.com/mdhenderson/gnusto/internal/values"

// StateChange is an immutable record of one mutation (spec section
// 3.8): which entity, which attribute, what it must currently be (if
// asserted), and what it becomes. It is the only legal way
// GameState's sub-structures are ever written.
type StateChange struct {
	EntityID     values.EntityReference
	AttributeKey values.AttributeKey
	OldValue     *values.StateValue // optional; validated before applying if present
	NewValue     values.StateValue
}

// NewStateChange builds a StateChange with no asserted oldValue.
func NewStateChange(entity values.EntityReference, key values.AttributeKey, newValue values.StateValue) StateChange {
	return StateChange{EntityID: entity, AttributeKey: key, NewValue: newValue}
}

// WithOldValue returns a copy of the change asserting that the
// current value must equal old, validated atomically in Apply.
func (c StateChange) WithOldValue(old values.StateValue) StateChange {
	c.OldValue = &old
	return c
}

func (c StateChange) Equal(o StateChange) bool {
	if !c.EntityID.Equal(o.EntityID) || !c.AttributeKey.Equal(o.AttributeKey) {
		return false
	}
	if (c.OldValue == nil) != (o.OldValue == nil) {
		return false
	}
	if c.OldValue != nil && !c.OldValue.Equal(*o.OldValue) {
		return false
	}
	return c.NewValue.Equal(o.NewValue)
}
