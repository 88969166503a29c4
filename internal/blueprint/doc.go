// Package blueprint loads a static game definition -- locations,
// items, the player's starting position -- and builds the initial
// engine.Engine from it. Blueprints are data; hook/daemon/fuse
// behavior is Go code and is attached separately through Behaviors,
// the same split the teacher draws between a turn report's data and
// the code that interprets it.
package blueprint
