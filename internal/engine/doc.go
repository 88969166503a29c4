// Package engine drives the turn pipeline (spec section 4.5): parse,
// multi-object expansion, the light gate, before/after-turn hooks,
// handler validate/process, atomic apply, pronoun update, and
// daemon/fuse advance. Engine owns the GameState and is the only
// component that calls GameState.Apply.
package engine
