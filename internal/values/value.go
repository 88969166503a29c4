package values

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/mdhenderson/gnusto/internal/ids"
)

// Kind_e is the tag of a StateValue, per spec section 3.2.
type Kind_e int

const (
	KindUnknown Kind_e = iota
	KindBool
	KindInt
	KindString
	KindItemID
	KindLocationID
	KindItemIDSet
	KindStringSet
	KindEntityRefSet
	KindParentEntity
	KindOpaque
)

var (
	kindToString = map[Kind_e]string{
		KindUnknown:      "?",
		KindBool:         "bool",
		KindInt:          "int",
		KindString:       "string",
		KindItemID:       "itemID",
		KindLocationID:   "locationID",
		KindItemIDSet:    "itemIDSet",
		KindStringSet:    "stringSet",
		KindEntityRefSet: "entityReferenceSet",
		KindParentEntity: "parentEntity",
		KindOpaque:       "opaqueCodable",
	}
	stringToKind = map[string]Kind_e{
		"?":                  KindUnknown,
		"bool":               KindBool,
		"int":                KindInt,
		"string":             KindString,
		"itemID":             KindItemID,
		"locationID":         KindLocationID,
		"itemIDSet":          KindItemIDSet,
		"stringSet":          KindStringSet,
		"entityReferenceSet": KindEntityRefSet,
		"parentEntity":       KindParentEntity,
		"opaqueCodable":      KindOpaque,
	}
)

func (k Kind_e) String() string {
	if s, ok := kindToString[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// OpaqueValue is the `{typeName, bytes}` carrier for game-specific
// structured data that the engine never needs to interpret itself.
type OpaqueValue struct {
	TypeName string
	Bytes    []byte
}

// StateValue is the tagged sum every piece of world data reduces to
// (spec section 3.2). The zero value is KindUnknown and carries no
// payload; it is never a legal value to store.
type StateValue struct {
	kind     Kind_e
	b        bool
	i        int
	s        string
	itemID   ids.ItemID
	locID    ids.LocationID
	itemSet  []ids.ItemID
	strSet   []string
	refSet   []EntityReference
	parent   ParentEntity
	opaque   OpaqueValue
}

func BoolValue(b bool) StateValue             { return StateValue{kind: KindBool, b: b} }
func IntValue(i int) StateValue               { return StateValue{kind: KindInt, i: i} }
func StringValue(s string) StateValue         { return StateValue{kind: KindString, s: s} }
func ItemIDValue(id ids.ItemID) StateValue    { return StateValue{kind: KindItemID, itemID: id} }
func LocationIDValue(id ids.LocationID) StateValue {
	return StateValue{kind: KindLocationID, locID: id}
}

// ItemIDSetValue stores an unordered set of item identifiers. The
// slice is defensively copied and sorted so equality and
// serialization are deterministic regardless of insertion order.
func ItemIDSetValue(items []ids.ItemID) StateValue {
	cp := append([]ids.ItemID(nil), items...)
	sort.Slice(cp, func(i, j int) bool { return cp[i].Less(cp[j]) })
	return StateValue{kind: KindItemIDSet, itemSet: cp}
}

func StringSetValue(strs []string) StateValue {
	cp := append([]string(nil), strs...)
	sort.Strings(cp)
	return StateValue{kind: KindStringSet, strSet: cp}
}

// EntityRefSetValue stores an ordered set of EntityReferences (order
// is significant, e.g. for the `them` pronoun's "last object wins"
// and "whole set" semantics in spec section 4.5 step 8).
func EntityRefSetValue(refs []EntityReference) StateValue {
	cp := append([]EntityReference(nil), refs...)
	return StateValue{kind: KindEntityRefSet, refSet: cp}
}

func ParentEntityValue(p ParentEntity) StateValue {
	return StateValue{kind: KindParentEntity, parent: p}
}

func OpaqueValueOf(typeName string, bytes []byte) StateValue {
	return StateValue{kind: KindOpaque, opaque: OpaqueValue{TypeName: typeName, Bytes: append([]byte(nil), bytes...)}}
}

// EncodeOpaque marshals v as JSON and wraps it in an OpaqueValue
// StateValue tagged with typeName.
func EncodeOpaque(typeName string, v any) (StateValue, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return StateValue{}, err
	}
	return OpaqueValueOf(typeName, data), nil
}

func (v StateValue) Kind() Kind_e { return v.kind }

func (v StateValue) Bool() (bool, bool)                 { return v.b, v.kind == KindBool }
func (v StateValue) Int() (int, bool)                   { return v.i, v.kind == KindInt }
func (v StateValue) Str() (string, bool)                { return v.s, v.kind == KindString }
func (v StateValue) ItemID() (ids.ItemID, bool)         { return v.itemID, v.kind == KindItemID }
func (v StateValue) LocationID() (ids.LocationID, bool) { return v.locID, v.kind == KindLocationID }

func (v StateValue) ItemIDSet() ([]ids.ItemID, bool) {
	if v.kind != KindItemIDSet {
		return nil, false
	}
	return append([]ids.ItemID(nil), v.itemSet...), true
}

func (v StateValue) StringSet() ([]string, bool) {
	if v.kind != KindStringSet {
		return nil, false
	}
	return append([]string(nil), v.strSet...), true
}

func (v StateValue) EntityRefSet() ([]EntityReference, bool) {
	if v.kind != KindEntityRefSet {
		return nil, false
	}
	return append([]EntityReference(nil), v.refSet...), true
}

func (v StateValue) Parent() (ParentEntity, bool) {
	return v.parent, v.kind == KindParentEntity
}

// DecodeOpaque decodes the opaque payload into out, but only if v was
// tagged with typeName; otherwise it fails loudly rather than
// silently coercing unrelated game data (spec section 9).
func (v StateValue) DecodeOpaque(typeName string, out any) error {
	if v.kind != KindOpaque {
		return fmt.Errorf("value is not opaqueCodable: %s", v.kind)
	}
	if v.opaque.TypeName != typeName {
		return fmt.Errorf("opaque type mismatch: have %q, want %q", v.opaque.TypeName, typeName)
	}
	return json.Unmarshal(v.opaque.Bytes, out)
}

// Equal reports structural equality, used to validate a StateChange's
// oldValue against the current value before applying it.
func (v StateValue) Equal(o StateValue) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.i == o.i
	case KindString:
		return v.s == o.s
	case KindItemID:
		return v.itemID == o.itemID
	case KindLocationID:
		return v.locID == o.locID
	case KindItemIDSet:
		return equalItemIDSlices(v.itemSet, o.itemSet)
	case KindStringSet:
		return equalStringSlices(v.strSet, o.strSet)
	case KindEntityRefSet:
		if len(v.refSet) != len(o.refSet) {
			return false
		}
		for i := range v.refSet {
			if !v.refSet[i].Equal(o.refSet[i]) {
				return false
			}
		}
		return true
	case KindParentEntity:
		return v.parent.Equal(o.parent)
	case KindOpaque:
		return v.opaque.TypeName == o.opaque.TypeName && string(v.opaque.Bytes) == string(o.opaque.Bytes)
	default:
		return true // two KindUnknown values are vacuously equal
	}
}

func equalItemIDSlices(a, b []ids.ItemID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalStringSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (v StateValue) String() string {
	switch v.kind {
	case KindBool:
		return fmt.Sprintf("%t", v.b)
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindString:
		return v.s
	case KindItemID:
		return v.itemID.String()
	case KindLocationID:
		return v.locID.String()
	case KindItemIDSet:
		return fmt.Sprintf("%v", v.itemSet)
	case KindStringSet:
		return fmt.Sprintf("%v", v.strSet)
	case KindEntityRefSet:
		return fmt.Sprintf("%v", v.refSet)
	case KindParentEntity:
		return v.parent.String()
	case KindOpaque:
		return fmt.Sprintf("opaque(%s)", v.opaque.TypeName)
	default:
		return "?"
	}
}

// stateValueWire is the stable, self-describing JSON form used for
// save files and for comparing StateChanges in tests (spec 3.8/6.4):
// a tag field plus whichever payload field applies.
type stateValueWire struct {
	Kind     string            `json:"kind"`
	Bool     bool              `json:"bool,omitempty"`
	Int      int               `json:"int,omitempty"`
	Str      string            `json:"str,omitempty"`
	ItemID   ids.ItemID        `json:"itemID,omitempty"`
	LocID    ids.LocationID    `json:"locationID,omitempty"`
	ItemSet  []ids.ItemID      `json:"itemIDSet,omitempty"`
	StrSet   []string          `json:"stringSet,omitempty"`
	RefSet   []EntityReference `json:"entityReferenceSet,omitempty"`
	Parent   *ParentEntity     `json:"parentEntity,omitempty"`
	Opaque   *OpaqueValue      `json:"opaqueCodable,omitempty"`
}

func (v StateValue) MarshalJSON() ([]byte, error) {
	w := stateValueWire{Kind: v.kind.String()}
	switch v.kind {
	case KindBool:
		w.Bool = v.b
	case KindInt:
		w.Int = v.i
	case KindString:
		w.Str = v.s
	case KindItemID:
		w.ItemID = v.itemID
	case KindLocationID:
		w.LocID = v.locID
	case KindItemIDSet:
		w.ItemSet = v.itemSet
	case KindStringSet:
		w.StrSet = v.strSet
	case KindEntityRefSet:
		w.RefSet = v.refSet
	case KindParentEntity:
		p := v.parent
		w.Parent = &p
	case KindOpaque:
		o := v.opaque
		w.Opaque = &o
	}
	return json.Marshal(w)
}

func (v *StateValue) UnmarshalJSON(data []byte) error {
	var w stateValueWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	kind, ok := stringToKind[w.Kind]
	if !ok {
		return fmt.Errorf("invalid StateValue kind %q", w.Kind)
	}
	sv := StateValue{kind: kind}
	switch kind {
	case KindBool:
		sv.b = w.Bool
	case KindInt:
		sv.i = w.Int
	case KindString:
		sv.s = w.Str
	case KindItemID:
		sv.itemID = w.ItemID
	case KindLocationID:
		sv.locID = w.LocID
	case KindItemIDSet:
		sv.itemSet = w.ItemSet
	case KindStringSet:
		sv.strSet = w.StrSet
	case KindEntityRefSet:
		sv.refSet = w.RefSet
	case KindParentEntity:
		if w.Parent != nil {
			sv.parent = *w.Parent
		}
	case KindOpaque:
		if w.Opaque != nil {
			sv.opaque = *w.Opaque
		}
	}
	*v = sv
	return nil
}
