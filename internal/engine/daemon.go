package engine

import (
	"sort"

	"github.com/mdhenderson/gnusto/internal/action"
	"github.com/mdhenderson/gnusto/internal/ids"
	"github.com/mdhenderson/gnusto/internal/vocab"
)

// activeSnapshot records which fuses/daemons were already running at
// the start of a turn, before any hook or handler in that turn had a
// chance to start a new one via a side effect. advanceDaemonsAndFuses
// only ticks IDs present in the snapshot, so a fuse or daemon started
// mid-turn waits until the following turn for its first tick (DESIGN.md
// Open Question 3).
type activeSnapshot struct {
	fuses   map[ids.FuseID]bool
	daemons map[ids.DaemonID]bool
}

// snapshotActive must be called before any processing happens in a
// turn, so it sees only fuses/daemons that were already active when
// the turn began.
func (e *Engine) snapshotActive() activeSnapshot {
	snap := activeSnapshot{
		fuses:   make(map[ids.FuseID]bool, len(e.State.ActiveFuses)),
		daemons: make(map[ids.DaemonID]bool, len(e.State.ActiveDaemons)),
	}
	for id := range e.State.ActiveFuses {
		snap.fuses[id] = true
	}
	for id := range e.State.ActiveDaemons {
		snap.daemons[id] = true
	}
	return snap
}

// advanceDaemonsAndFuses runs after all per-object pipelines complete
// (spec section 4.5 step 11 / section 5's ordering rule): every fuse
// that was already running at the start of the turn decrements, fires
// and is removed at zero; every daemon already running ticks once.
// Both iterate in sorted-ID order so a turn's behavior is deterministic
// and reproducible from a save file.
func (e *Engine) advanceDaemonsAndFuses(snap activeSnapshot) {
	fuseIDs := make([]ids.FuseID, 0, len(e.State.ActiveFuses))
	for id := range e.State.ActiveFuses {
		if snap.fuses[id] {
			fuseIDs = append(fuseIDs, id)
		}
	}
	sort.Slice(fuseIDs, func(i, j int) bool { return fuseIDs[i] < fuseIDs[j] })

	for _, id := range fuseIDs {
		fs := e.State.ActiveFuses[id]
		fs.Remaining--
		if fs.Remaining > 0 {
			e.State.ActiveFuses[id] = fs
			continue
		}
		delete(e.State.ActiveFuses, id)
		fn, ok := e.Fuses[id]
		if !ok {
			// A world.NewScheduleEventAuto fuse has no registered
			// FuseFunc by design: it's a one-off, so its payload is
			// the message to print rather than code to run.
			if msg, isStr := fs.Payload.Str(); isStr && msg != "" {
				e.print(msg)
			} else {
				e.Log.Printf("fuse %s fired with no registered behavior", id)
			}
			continue
		}
		ctx := action.NewContext(vocab.Command{}, e.State, e.Scope, e.IO)
		result := fn(ctx, fs.Payload)
		e.applyResult(result)
		if result.Message != "" {
			e.print(result.Message)
		}
	}

	daemonIDs := make([]ids.DaemonID, 0, len(e.State.ActiveDaemons))
	for id := range e.State.ActiveDaemons {
		if snap.daemons[id] {
			daemonIDs = append(daemonIDs, id)
		}
	}
	sort.Slice(daemonIDs, func(i, j int) bool { return daemonIDs[i] < daemonIDs[j] })

	for _, id := range daemonIDs {
		ds, ok := e.State.ActiveDaemons[id]
		if !ok {
			continue
		}
		fn, ok := e.Daemons[id]
		if !ok {
			e.Log.Printf("daemon %s ticked with no registered behavior", id)
			continue
		}
		ctx := action.NewContext(vocab.Command{}, e.State, e.Scope, e.IO)
		result := fn(ctx, ds.Payload)
		e.applyResult(result)
		if result.Message != "" {
			e.print(result.Message)
		}
	}
}
