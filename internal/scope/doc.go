// Package scope implements the pure, stateless queries a turn uses to
// decide what the player can see and touch: lighting, reachability,
// and visibility (spec section 4.2).
package scope
