package values

import (
	"encoding/json"
	"fmt"

	"github.com/mdhenderson/gnusto/internal/ids"
)

// AttrKind_e is the tag of an AttributeKey, per spec section 3.3.
type AttrKind_e int

const (
	AttrUnknown AttrKind_e = iota
	AttrItemAttribute
	AttrItemParent
	AttrLocationAttribute
	AttrLocationExits
	AttrPlayerScore
	AttrPlayerMoves
	AttrPlayerLocation
	AttrPlayerInventoryLimit
	AttrPlayerHealth
	AttrPronounReference
	AttrSetFlag
	AttrClearFlag
	AttrGlobalState
)

var attrKindToString = map[AttrKind_e]string{
	AttrUnknown:              "?",
	AttrItemAttribute:        "itemAttribute",
	AttrItemParent:           "itemParent",
	AttrLocationAttribute:    "locationAttribute",
	AttrLocationExits:        "locationExits",
	AttrPlayerScore:          "playerScore",
	AttrPlayerMoves:          "playerMoves",
	AttrPlayerLocation:       "playerLocation",
	AttrPlayerInventoryLimit: "playerInventoryLimit",
	AttrPlayerHealth:         "playerHealth",
	AttrPronounReference:     "pronounReference",
	AttrSetFlag:              "setFlag",
	AttrClearFlag:            "clearFlag",
	AttrGlobalState:          "globalState",
}

var stringToAttrKind = map[string]AttrKind_e{
	"?":                    AttrUnknown,
	"itemAttribute":        AttrItemAttribute,
	"itemParent":           AttrItemParent,
	"locationAttribute":    AttrLocationAttribute,
	"locationExits":        AttrLocationExits,
	"playerScore":          AttrPlayerScore,
	"playerMoves":          AttrPlayerMoves,
	"playerLocation":       AttrPlayerLocation,
	"playerInventoryLimit": AttrPlayerInventoryLimit,
	"playerHealth":         AttrPlayerHealth,
	"pronounReference":     AttrPronounReference,
	"setFlag":              AttrSetFlag,
	"clearFlag":            AttrClearFlag,
	"globalState":          AttrGlobalState,
}

func (k AttrKind_e) String() string {
	if s, ok := attrKindToString[k]; ok {
		return s
	}
	return fmt.Sprintf("AttrKind(%d)", int(k))
}

// AttributeKey names what a StateChange addresses (spec section 3.3).
// It always refers to a specific entity's (or the player's, or a
// global's) attribute; the entity being addressed is carried
// separately on the StateChange as its EntityID so that the same
// AttributeKey shape (e.g. itemAttribute("isOpen")) can be reused
// across many entities.
type AttributeKey struct {
	kind      AttrKind_e
	attr      ids.AttributeID
	pronoun   string
	global    ids.GlobalID
	direction ids.Direction_e
}

func ItemAttribute(a ids.AttributeID) AttributeKey {
	return AttributeKey{kind: AttrItemAttribute, attr: a}
}

func ItemParent() AttributeKey { return AttributeKey{kind: AttrItemParent} }

func LocationAttribute(a ids.AttributeID) AttributeKey {
	return AttributeKey{kind: AttrLocationAttribute, attr: a}
}

// LocationExits addresses the exit in direction dir; a location's
// exits are stored one AttributeKey per direction rather than as a
// single map-valued attribute so that StateChange's OldValue
// assertion can target a single exit.
func LocationExits(dir ids.Direction_e) AttributeKey {
	return AttributeKey{kind: AttrLocationExits, direction: dir}
}

func PlayerScore() AttributeKey          { return AttributeKey{kind: AttrPlayerScore} }
func PlayerMoves() AttributeKey          { return AttributeKey{kind: AttrPlayerMoves} }
func PlayerLocation() AttributeKey       { return AttributeKey{kind: AttrPlayerLocation} }
func PlayerInventoryLimit() AttributeKey { return AttributeKey{kind: AttrPlayerInventoryLimit} }
func PlayerHealth() AttributeKey         { return AttributeKey{kind: AttrPlayerHealth} }

func PronounReference(pronoun string) AttributeKey {
	return AttributeKey{kind: AttrPronounReference, pronoun: pronoun}
}

func SetFlag(g ids.GlobalID) AttributeKey   { return AttributeKey{kind: AttrSetFlag, global: g} }
func ClearFlag(g ids.GlobalID) AttributeKey { return AttributeKey{kind: AttrClearFlag, global: g} }
func GlobalState(g ids.GlobalID) AttributeKey {
	return AttributeKey{kind: AttrGlobalState, global: g}
}

func (k AttributeKey) Kind() AttrKind_e           { return k.kind }
func (k AttributeKey) Attribute() ids.AttributeID { return k.attr }
func (k AttributeKey) Pronoun() string            { return k.pronoun }
func (k AttributeKey) Global() ids.GlobalID       { return k.global }
func (k AttributeKey) Direction() ids.Direction_e { return k.direction }

func (k AttributeKey) Equal(o AttributeKey) bool {
	return k.kind == o.kind && k.attr == o.attr && k.pronoun == o.pronoun &&
		k.global == o.global && k.direction == o.direction
}

type attributeKeyWire struct {
	Kind      string          `json:"kind"`
	Attr      ids.AttributeID `json:"attr,omitempty"`
	Pronoun   string          `json:"pronoun,omitempty"`
	Global    ids.GlobalID    `json:"global,omitempty"`
	Direction ids.Direction_e `json:"direction,omitempty"`
}

// MarshalJSON gives AttributeKey the same tagged-union wire form as
// StateValue and ParentEntity (spec section 3.8's "stable JSON form"
// for save files).
func (k AttributeKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(attributeKeyWire{
		Kind:      k.kind.String(),
		Attr:      k.attr,
		Pronoun:   k.pronoun,
		Global:    k.global,
		Direction: k.direction,
	})
}

func (k *AttributeKey) UnmarshalJSON(data []byte) error {
	var w attributeKeyWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	kind, ok := stringToAttrKind[w.Kind]
	if !ok {
		return fmt.Errorf("invalid AttributeKey kind %q", w.Kind)
	}
	*k = AttributeKey{kind: kind, attr: w.Attr, pronoun: w.Pronoun, global: w.Global, direction: w.Direction}
	return nil
}

func (k AttributeKey) String() string {
	switch k.kind {
	case AttrItemAttribute, AttrLocationAttribute:
		return fmt.Sprintf("%s(%s)", k.kind, k.attr)
	case AttrLocationExits:
		return fmt.Sprintf("locationExits(%s)", k.direction)
	case AttrPronounReference:
		return fmt.Sprintf("pronounReference(%q)", k.pronoun)
	case AttrSetFlag, AttrClearFlag, AttrGlobalState:
		return fmt.Sprintf("%s(%s)", k.kind, k.global)
	default:
		return k.kind.String()
	}
}
