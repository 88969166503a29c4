package engine

import (
	"github.com/mdhenderson/gnusto/internal/action"
	"github.com/mdhenderson/gnusto/internal/enginelog"
	"github.com/mdhenderson/gnusto/internal/hooks"
	"github.com/mdhenderson/gnusto/internal/ids"
	"github.com/mdhenderson/gnusto/internal/ioh"
	"github.com/mdhenderson/gnusto/internal/parse"
	"github.com/mdhenderson/gnusto/internal/scope"
	"github.com/mdhenderson/gnusto/internal/values"
	"github.com/mdhenderson/gnusto/internal/vocab"
	"github.com/mdhenderson/gnusto/internal/world"
)

// DaemonFunc is one tick of a running daemon; FuseFunc is a fuse's
// payload when it reaches zero. Both are looked up by ID from the
// blueprint's registrations, matching the same first-class-function
// style as LocationEventHandler/ItemEventHandler (spec section 4.7,
// GLOSSARY "daemon"/"fuse").
type DaemonFunc func(ctx *action.Context, payload values.StateValue) action.ActionResult
type FuseFunc func(ctx *action.Context, payload values.StateValue) action.ActionResult

// Engine is the turn-pipeline driver (spec section 2's "GameEngine").
// It owns State exclusively: nothing outside RunTurn ever calls
// State.Apply.
type Engine struct {
	State      *world.GameState
	Vocabulary *vocab.Vocabulary
	Scope      *scope.Resolver
	Hooks      *hooks.Registry
	IO         *ioh.Handler
	Handlers   map[ids.VerbID]action.Handler

	Daemons map[ids.DaemonID]DaemonFunc
	Fuses   map[ids.FuseID]FuseFunc

	DebugParser bool
	Log         enginelog.Logger
}

func New(state *world.GameState, vocabulary *vocab.Vocabulary, handlers map[ids.VerbID]action.Handler, ioHandler *ioh.Handler) *Engine {
	return &Engine{
		State:      state,
		Vocabulary: vocabulary,
		Scope:      scope.NewResolver(),
		Hooks:      hooks.NewRegistry(),
		IO:         ioHandler,
		Handlers:   handlers,
		Daemons:    map[ids.DaemonID]DaemonFunc{},
		Fuses:      map[ids.FuseID]FuseFunc{},
	}
}

// Restore swaps in a GameState loaded from a save file. The scope
// resolver's cache is keyed by GameState.Version, which restarts from
// whatever value the save was at, so a stale resolver could otherwise
// serve another game's cached reachability for a coincidentally equal
// version; a fresh resolver avoids that.
func (e *Engine) Restore(state *world.GameState) {
	e.State = state
	e.Scope = scope.NewResolver()
}

// name resolves an item's display name for ActionResponse rendering,
// falling back to the raw ID for an entity that has since vanished —
// "internal engine error" territory, but rendering must never panic.
func (e *Engine) name(id ids.ItemID) string {
	if it, ok := e.State.Item(id); ok {
		return it.Name()
	}
	return string(id)
}

func (e *Engine) touched(id ids.ItemID) bool {
	it, ok := e.State.Item(id)
	return ok && it.IsTouched()
}

func (e *Engine) print(s string) {
	if e.IO != nil {
		e.IO.Println(s)
	}
}

func (e *Engine) renderResponse(r action.ActionResponse) {
	e.print(r.Render(e.name, r.ID != "" && e.touched(r.ID)))
}

// RunTurn executes the full pipeline (spec section 4.5) for one line
// of input, flushing I/O before returning.
func (e *Engine) RunTurn(input string) string {
	defer func() { e.State.Player.Moves++ }()

	cmd, perr := parse.Parse(input, e.Vocabulary, e.State, e.Scope, e.DebugParser)
	if perr != nil {
		e.print(perr.Render())
		return e.IO.Flush()
	}

	handler, ok := e.Handlers[cmd.Verb]
	if !ok {
		e.print(action.UnknownVerbResponse(string(cmd.Verb)).Render(e.name, false))
		return e.IO.Flush()
	}

	if cmd.IsAllCommand {
		expanded, emptyMsg := e.expandAll(cmd.Verb)
		if len(expanded) == 0 {
			e.print(emptyMsg)
			return e.IO.Flush()
		}
		cmd.DirectObjects = expanded
	}

	if handler.RequiresLight() && !e.Scope.IsLocationLit(e.State) {
		e.print("It is pitch dark, and you are likely to be eaten by a grue.")
		return e.IO.Flush()
	}

	snap := e.snapshotActive()

	if !e.runLocationHook(cmd, hooks.LocationBeforeTurn) {
		if len(cmd.DirectObjects) <= 1 && !cmd.IsAllCommand {
			e.runSingleObject(cmd, handler)
		} else {
			e.runMultiObject(cmd, handler)
		}
	}

	e.runLocationHook(cmd, hooks.LocationAfterTurn)
	e.advanceDaemonsAndFuses(snap)

	return e.IO.Flush()
}

// runLocationHook fires the player's current location's hook, if any,
// for kind. It reports whether the hook both ran and declined default
// processing (only meaningful for beforeTurn).
func (e *Engine) runLocationHook(cmd vocab.Command, kind hooks.LocationEventKind_e) bool {
	loc, ok := e.State.CurrentLocation()
	if !ok {
		return false
	}
	handler, ok := e.Hooks.Location(loc.ID)
	if !ok {
		return false
	}
	ctx := action.NewContext(cmd, e.State, e.Scope, e.IO)
	result, err := handler(ctx, hooks.LocationEvent{Kind: kind, Command: cmd})
	if err != nil {
		e.Log.Printf("location hook error at %s: %v", loc.ID, err)
		return false
	}
	if result == nil || result.IsYield() {
		return false
	}
	e.applyResult(*result)
	return kind == hooks.LocationBeforeTurn
}

// runItemHook fires id's hook, if any, for kind, with the same
// yield/override semantics as runLocationHook.
func (e *Engine) runItemHook(cmd vocab.Command, id ids.ItemID, kind hooks.ItemEventKind_e) bool {
	handler, ok := e.Hooks.Item(id)
	if !ok {
		return false
	}
	ctx := action.NewContext(cmd, e.State, e.Scope, e.IO)
	result, err := handler(ctx, hooks.ItemEvent{Kind: kind, Command: cmd})
	if err != nil {
		e.Log.Printf("item hook error on %s: %v", id, err)
		return false
	}
	if result == nil || result.IsYield() {
		return false
	}
	e.applyResult(*result)
	return kind == hooks.ItemBeforeTurn
}

func (e *Engine) itemHookTargets(cmd vocab.Command) []ids.ItemID {
	var out []ids.ItemID
	for _, ref := range cmd.DirectObjects {
		if id, ok := ref.Item(); ok {
			out = append(out, id)
		}
	}
	if cmd.IndirectObject != nil {
		if id, ok := cmd.IndirectObject.Item(); ok {
			out = append(out, id)
		}
	}
	return out
}

// runSingleObject handles the common case: zero or one direct object.
func (e *Engine) runSingleObject(cmd vocab.Command, handler action.Handler) {
	for _, id := range e.itemHookTargets(cmd) {
		if e.runItemHook(cmd, id, hooks.ItemBeforeTurn) {
			return
		}
	}

	ctx := action.NewContext(cmd, e.State, e.Scope, e.IO)
	if resp := handler.Validate(ctx); resp != nil {
		e.renderResponse(*resp)
		return
	}
	result, resp := handler.Process(ctx)
	if resp != nil {
		e.renderResponse(*resp)
		return
	}
	e.applyResult(result)
	e.updatePronouns(cmd)
	e.postProcess(ctx, handler, result)

	for _, id := range e.itemHookTargets(cmd) {
		e.runItemHook(cmd, id, hooks.ItemAfterTurn)
	}
}

// runMultiObject iterates direct objects in the stable order the
// parser already produced them in (spec section 4.5 step 2: ALL
// expansion sorts by name; explicit "X and Y" preserves input order),
// processing each as an independent single-object command so that one
// object's failure doesn't block the rest.
func (e *Engine) runMultiObject(cmd vocab.Command, handler action.Handler) {
	objects := cmd.DirectObjects

	names := make([]string, 0, len(objects))
	for _, ref := range objects {
		if id, ok := ref.Item(); ok {
			names = append(names, "the "+e.name(id))
		}
	}
	if len(names) > 1 {
		e.print(joinOxford(names) + ":")
	}

	var processed []values.EntityReference
	for _, ref := range objects {
		single := cmd
		single.DirectObjects = []values.EntityReference{ref}

		id, ok := ref.Item()
		if !ok {
			continue
		}
		if e.runItemHook(single, id, hooks.ItemBeforeTurn) {
			continue
		}

		ctx := action.NewContext(single, e.State, e.Scope, e.IO)
		if resp := handler.Validate(ctx); resp != nil {
			e.print(e.name(id) + ": " + resp.Render(e.name, e.touched(id)))
			continue
		}
		result, resp := handler.Process(ctx)
		if resp != nil {
			e.print(e.name(id) + ": " + resp.Render(e.name, e.touched(id)))
			continue
		}
		e.applyResult(result)
		if result.Message != "" {
			e.print(e.name(id) + ": " + result.Message)
		}
		e.runItemHook(single, id, hooks.ItemAfterTurn)
		processed = append(processed, ref)
	}
	if len(processed) > 0 {
		e.setPronoun("them", processed)
		e.setPronoun("it", processed[len(processed)-1:])
	}
}

func (e *Engine) postProcess(ctx *action.Context, handler action.Handler, result action.ActionResult) {
	if pp, ok := handler.(action.PostProcessor); ok {
		pp.PostProcess(ctx, result)
		return
	}
	if result.Message != "" {
		e.print(result.Message)
	}
}

// applyResult commits result's changes and runs its side effects; a
// failure here means a handler asserted an oldValue or parent that no
// longer held, which Validate should have already ruled out, so it is
// reported as internalEngineError rather than silently ignored.
func (e *Engine) applyResult(result action.ActionResult) {
	if len(result.Changes) > 0 {
		if err := e.State.Apply(result.Changes); err != nil {
			e.Log.Printf("apply failed after validate passed: %v", err)
			e.print("Something has gone wrong with the game. Your last action had no effect.")
			return
		}
	}
	for _, effect := range result.Effects {
		e.applySideEffect(effect)
	}
}

func (e *Engine) applySideEffect(effect world.SideEffect) {
	switch effect.Kind {
	case world.StartFuse:
		e.State.ActiveFuses[effect.FuseID] = world.FuseState{Remaining: effect.Turns, Payload: effect.Payload}
	case world.StopFuse:
		delete(e.State.ActiveFuses, effect.FuseID)
	case world.RunDaemon:
		e.State.ActiveDaemons[effect.DaemonID] = world.DaemonState{Payload: effect.Payload}
	case world.StopDaemon:
		delete(e.State.ActiveDaemons, effect.DaemonID)
	case world.ScheduleEvent:
		e.State.ActiveFuses[effect.FuseID] = world.FuseState{Remaining: effect.Turns, Payload: effect.Payload}
	}
}

// updatePronouns implements spec section 4.5 step 8: single-object
// verbs set "it" to the principal object; a verb with an indirect
// object (lock/unlock, put-in/put-on, give) additionally sets "them"
// to {direct, indirect}, per the Lock/Unlock contract in section 4.6.
func (e *Engine) updatePronouns(cmd vocab.Command) {
	direct, ok := cmd.DirectObject()
	if !ok {
		return
	}
	e.setPronoun("it", []values.EntityReference{direct})
	if cmd.IndirectObject != nil {
		e.setPronoun("them", []values.EntityReference{direct, *cmd.IndirectObject})
	}
}

func (e *Engine) setPronoun(word string, refs []values.EntityReference) {
	change := world.NewStateChange(values.PlayerRef(), values.PronounReference(word), values.EntityRefSetValue(refs))
	if err := e.State.Apply([]world.StateChange{change}); err != nil {
		e.Log.Printf("pronoun update failed: %v", err)
	}
}
