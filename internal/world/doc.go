// Package world holds the data model the engine mutates: Item,
// Location, Player, and the GameState that owns all of them. It also
// defines StateChange and SideEffect, the only legal mutation
// currency (spec section 4.1), and apply, the single function that
// ever writes to a GameState.
package world
