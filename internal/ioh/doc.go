// Package ioh implements the I/O boundary (spec section 6.2):
// buffered printing, an atomic test-facing flush, and line-oriented
// input. It is the only component in the engine allowed to block.
package ioh
