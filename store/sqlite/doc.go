// Package sqlite is the save-game backing store: a GameState snapshot
// per save slot, persisted in a modernc.org/sqlite database the same
// way the teacher's internal/stores/sqlite persists turn reports.
package sqlite
