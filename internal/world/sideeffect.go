package world

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mdhenderson/gnusto/internal/ids"
	"github.com/mdhenderson/gnusto/internal/values"
)

// SideEffectKind_e enumerates the kinds of SideEffect (spec section 3.9).
type SideEffectKind_e int

const (
	SideEffectUnknown SideEffectKind_e = iota
	StartFuse
	StopFuse
	RunDaemon
	StopDaemon
	ScheduleEvent
)

var sideEffectKindToString = map[SideEffectKind_e]string{
	SideEffectUnknown: "?",
	StartFuse:         "StartFuse",
	StopFuse:          "StopFuse",
	RunDaemon:         "RunDaemon",
	StopDaemon:        "StopDaemon",
	ScheduleEvent:     "ScheduleEvent",
}

func (k SideEffectKind_e) String() string {
	if s, ok := sideEffectKindToString[k]; ok {
		return s
	}
	return fmt.Sprintf("SideEffectKind(%d)", int(k))
}

// SideEffect is applied after the StateChanges of the same
// ActionResult (spec section 3.9/4.1).
type SideEffect struct {
	Kind     SideEffectKind_e
	FuseID   ids.FuseID   // StartFuse / StopFuse
	DaemonID ids.DaemonID // RunDaemon / StopDaemon
	Turns    int          // StartFuse: initial countdown; ScheduleEvent: turns until it fires
	Payload  values.StateValue
}

func NewStartFuse(id ids.FuseID, turns int, payload values.StateValue) SideEffect {
	return SideEffect{Kind: StartFuse, FuseID: id, Turns: turns, Payload: payload}
}

func NewStopFuse(id ids.FuseID) SideEffect { return SideEffect{Kind: StopFuse, FuseID: id} }

func NewRunDaemon(id ids.DaemonID, payload values.StateValue) SideEffect {
	return SideEffect{Kind: RunDaemon, DaemonID: id, Payload: payload}
}

func NewStopDaemon(id ids.DaemonID) SideEffect { return SideEffect{Kind: StopDaemon, DaemonID: id} }

func NewScheduleEvent(id ids.FuseID, turns int, payload values.StateValue) SideEffect {
	return SideEffect{Kind: ScheduleEvent, FuseID: id, Turns: turns, Payload: payload}
}

// NewScheduleEventAuto is NewScheduleEvent for the common case where a
// hook just wants to schedule a one-off event without inventing a
// stable FuseID of its own -- firing the bell again in three turns,
// say, without colliding with any other scheduled ring. It returns the
// generated ID alongside the SideEffect so the caller can cancel it
// later with NewStopFuse if needed.
func NewScheduleEventAuto(turns int, payload values.StateValue) (ids.FuseID, SideEffect) {
	id := ids.FuseID("event-" + uuid.NewString())
	return id, NewScheduleEvent(id, turns, payload)
}
