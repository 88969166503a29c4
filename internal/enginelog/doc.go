// Package enginelog is the engine's guarded diagnostic logger: hook
// errors and daemon/fuse dead-ends are worth seeing while debugging a
// blueprint, but shouldn't spam a player's session by default.
package enginelog
