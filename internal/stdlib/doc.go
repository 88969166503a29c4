// Package stdlib provides small filesystem helpers shared by the
// configuration loader and the save-game store: existence checks and
// an atomic file write so a crash mid-save never leaves a truncated
// file behind.
package stdlib
