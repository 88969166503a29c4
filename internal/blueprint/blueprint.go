package blueprint

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mdhenderson/gnusto/cerrs"
	"github.com/mdhenderson/gnusto/internal/engine"
	"github.com/mdhenderson/gnusto/internal/hooks"
	"github.com/mdhenderson/gnusto/internal/ids"
	"github.com/mdhenderson/gnusto/internal/ioh"
	"github.com/mdhenderson/gnusto/internal/values"
	"github.com/mdhenderson/gnusto/internal/verbs"
	"github.com/mdhenderson/gnusto/internal/vocab"
	"github.com/mdhenderson/gnusto/internal/world"
)

// ExitDef is one direction out of a LocationDef.
type ExitDef struct {
	Direction      ids.Direction_e `json:"Direction"`
	Destination    ids.LocationID  `json:"Destination"`
	IsDoor         bool            `json:"IsDoor,omitempty"`
	IsOpen         bool            `json:"IsOpen,omitempty"`
	IsLocked       bool            `json:"IsLocked,omitempty"`
	BlockedMessage string          `json:"BlockedMessage,omitempty"`
	LockKey        ids.ItemID      `json:"LockKey,omitempty"`
}

// LocationDef is one room in a Blueprint.
type LocationDef struct {
	ID            ids.LocationID `json:"ID"`
	Name          string         `json:"Name"`
	Description   string         `json:"Description"`
	InherentlyLit bool           `json:"InherentlyLit,omitempty"`
	IsSacred      bool           `json:"IsSacred,omitempty"`
	Exits         []ExitDef      `json:"Exits,omitempty"`
}

// ItemDef is one item in a Blueprint. Parent reuses
// values.ParentEntity directly since it already round-trips through
// JSON (spec section 3.4's tagged-union wire form).
type ItemDef struct {
	ID          ids.ItemID          `json:"ID"`
	Name        string              `json:"Name"`
	Description string              `json:"Description"`
	Adjectives  []string            `json:"Adjectives,omitempty"`
	Synonyms    []string            `json:"Synonyms,omitempty"`
	Parent      values.ParentEntity `json:"Parent"`
	Size        int                 `json:"Size,omitempty"`
	Capacity    int                 `json:"Capacity,omitempty"`
	LockKey     ids.ItemID          `json:"LockKey,omitempty"`

	IsTakable     bool `json:"IsTakable,omitempty"`
	IsContainer   bool `json:"IsContainer,omitempty"`
	IsSurface     bool `json:"IsSurface,omitempty"`
	IsOpenable    bool `json:"IsOpenable,omitempty"`
	IsOpen        bool `json:"IsOpen,omitempty"`
	IsLockable    bool `json:"IsLockable,omitempty"`
	IsLocked      bool `json:"IsLocked,omitempty"`
	IsWearable    bool `json:"IsWearable,omitempty"`
	IsWorn        bool `json:"IsWorn,omitempty"`
	IsDevice      bool `json:"IsDevice,omitempty"`
	IsLightSource bool `json:"IsLightSource,omitempty"`
	IsOn          bool `json:"IsOn,omitempty"`
	IsScenery     bool `json:"IsScenery,omitempty"`
	IsEdible      bool `json:"IsEdible,omitempty"`
	IsReadable    bool `json:"IsReadable,omitempty"`
	IsTransparent bool `json:"IsTransparent,omitempty"`
}

// Behaviors is the Go-code half of a game that a JSON file can't
// express: event hooks and the daemon/fuse functions registered under
// the IDs a StartFuse/RunDaemon side effect names. Install, if set, is
// called with the freshly built registry so it can assign per-entity
// hooks (spec section 4.7). A blueprint loaded from disk via Load has
// a nil Behaviors; only a blueprint assembled in Go, like Demo, can
// carry one.
type Behaviors struct {
	Install        func(*hooks.Registry)
	Daemons        map[ids.DaemonID]engine.DaemonFunc
	Fuses          map[ids.FuseID]engine.FuseFunc
	InitialDaemons map[ids.DaemonID]values.StateValue
	InitialFuses   map[ids.FuseID]world.FuseState
}

// Blueprint is the static definition used to build a fresh GameState
// (spec section 2's "game definition loaded once at startup").
type Blueprint struct {
	Title            string        `json:"Title"`
	StartLocation    ids.LocationID `json:"StartLocation"`
	CarryingCapacity int           `json:"CarryingCapacity"`
	StartHealth      int           `json:"StartHealth,omitempty"`
	Locations        []LocationDef `json:"Locations"`
	Items            []ItemDef     `json:"Items"`

	Behaviors *Behaviors `json:"-"`
}

// Load reads and validates a Blueprint from a JSON file, following
// the teacher's config.Load(path, debug) shape generalized from
// player configuration to game definition.
func Load(path string) (*Blueprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var bp Blueprint
	if err := json.Unmarshal(data, &bp); err != nil {
		return nil, fmt.Errorf("%w: %v", cerrs.ErrBlueprintInvalid, err)
	}
	if err := bp.Validate(); err != nil {
		return nil, err
	}
	return &bp, nil
}

// Validate checks referential integrity: every exit destination, item
// parent location, and lock key must name something the blueprint
// actually defines.
func (bp *Blueprint) Validate() error {
	locs := map[ids.LocationID]bool{}
	for _, l := range bp.Locations {
		if locs[l.ID] {
			return fmt.Errorf("%w: duplicate location %q", cerrs.ErrBlueprintInvalid, l.ID)
		}
		locs[l.ID] = true
	}
	items := map[ids.ItemID]bool{}
	for _, it := range bp.Items {
		if items[it.ID] {
			return fmt.Errorf("%w: duplicate item %q", cerrs.ErrBlueprintInvalid, it.ID)
		}
		items[it.ID] = true
	}
	if bp.StartLocation == "" || !locs[bp.StartLocation] {
		return fmt.Errorf("%w: unknown start location %q", cerrs.ErrBlueprintInvalid, bp.StartLocation)
	}
	for _, l := range bp.Locations {
		for _, e := range l.Exits {
			if !locs[e.Destination] {
				return fmt.Errorf("%w: location %q exit to unknown destination %q", cerrs.ErrBlueprintInvalid, l.ID, e.Destination)
			}
			if e.LockKey != "" && !items[e.LockKey] {
				return fmt.Errorf("%w: location %q exit names unknown lock key %q", cerrs.ErrBlueprintInvalid, l.ID, e.LockKey)
			}
		}
	}
	for _, it := range bp.Items {
		if loc, ok := it.Parent.Location(); ok && !locs[loc] {
			return fmt.Errorf("%w: item %q has unknown parent location %q", cerrs.ErrBlueprintInvalid, it.ID, loc)
		}
		if parent, ok := it.Parent.Item(); ok && !items[parent] {
			return fmt.Errorf("%w: item %q has unknown parent item %q", cerrs.ErrBlueprintInvalid, it.ID, parent)
		}
		if it.LockKey != "" && !items[it.LockKey] {
			return fmt.Errorf("%w: item %q names unknown lock key %q", cerrs.ErrBlueprintInvalid, it.ID, it.LockKey)
		}
	}
	return nil
}

// Build materializes bp into a fresh Engine wired with the built-in
// verb handlers and, if present, bp.Behaviors.
func (bp *Blueprint) Build(io *ioh.Handler) *engine.Engine {
	state := world.NewGameState()

	for _, l := range bp.Locations {
		loc := world.NewLocation(l.ID)
		loc.Attributes[world.AttrName] = values.StringValue(l.Name)
		loc.Attributes[world.AttrDescription] = values.StringValue(l.Description)
		if l.InherentlyLit {
			loc.Attributes[world.AttrInherentlyLit] = values.BoolValue(true)
		}
		if l.IsSacred {
			loc.Attributes[world.AttrIsSacred] = values.BoolValue(true)
		}
		for _, e := range l.Exits {
			loc.Exits[e.Direction] = world.Exit{
				Destination:    e.Destination,
				IsDoor:         e.IsDoor,
				IsOpen:         e.IsOpen,
				IsLocked:       e.IsLocked,
				BlockedMessage: e.BlockedMessage,
				LockKey:        e.LockKey,
			}
		}
		state.Locations[l.ID] = loc
	}

	for _, d := range bp.Items {
		it := world.NewItem(d.ID, d.Parent)
		it.Attributes[world.AttrName] = values.StringValue(d.Name)
		it.Attributes[world.AttrDescription] = values.StringValue(d.Description)
		if len(d.Adjectives) > 0 {
			it.Attributes[world.AttrAdjectives] = values.StringSetValue(d.Adjectives)
		}
		if len(d.Synonyms) > 0 {
			it.Attributes[world.AttrSynonyms] = values.StringSetValue(d.Synonyms)
		}
		if d.Size != 0 {
			it.Attributes[world.AttrSize] = values.IntValue(d.Size)
		}
		if d.Capacity != 0 {
			it.Attributes[world.AttrCapacity] = values.IntValue(d.Capacity)
		}
		if d.LockKey != "" {
			it.Attributes[world.AttrLockKey] = values.ItemIDValue(d.LockKey)
		}
		for attrID, on := range map[ids.AttributeID]bool{
			world.AttrIsTakable:     d.IsTakable,
			world.AttrIsContainer:   d.IsContainer,
			world.AttrIsSurface:     d.IsSurface,
			world.AttrIsOpenable:    d.IsOpenable,
			world.AttrIsOpen:        d.IsOpen,
			world.AttrIsLockable:    d.IsLockable,
			world.AttrIsLocked:      d.IsLocked,
			world.AttrIsWearable:    d.IsWearable,
			world.AttrIsWorn:        d.IsWorn,
			world.AttrIsDevice:      d.IsDevice,
			world.AttrIsLightSource: d.IsLightSource,
			world.AttrIsOn:          d.IsOn,
			world.AttrIsScenery:     d.IsScenery,
			world.AttrIsEdible:      d.IsEdible,
			world.AttrIsReadable:    d.IsReadable,
			world.AttrIsTransparent: d.IsTransparent,
		} {
			if on {
				it.Attributes[attrID] = values.BoolValue(true)
			}
		}
		state.Items[d.ID] = it
	}

	state.Player.CurrentLocation = bp.StartLocation
	state.Player.CarryingCapacity = bp.CarryingCapacity
	state.Player.Health = bp.StartHealth

	vocabulary := vocab.NewVocabulary()
	handlers := verbs.Register(vocabulary, verbs.Builtins())
	eng := engine.New(state, vocabulary, handlers, io)

	if bp.Behaviors != nil {
		if bp.Behaviors.Install != nil {
			bp.Behaviors.Install(eng.Hooks)
		}
		for id, fn := range bp.Behaviors.Daemons {
			eng.Daemons[id] = fn
		}
		for id, fn := range bp.Behaviors.Fuses {
			eng.Fuses[id] = fn
		}
		for id, fs := range bp.Behaviors.InitialFuses {
			state.ActiveFuses[id] = fs
		}
		for id, payload := range bp.Behaviors.InitialDaemons {
			state.ActiveDaemons[id] = world.DaemonState{Payload: payload}
		}
	}

	return eng
}
