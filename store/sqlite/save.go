package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mdhenderson/gnusto/cerrs"
	"github.com/mdhenderson/gnusto/internal/world"
)

// SaveInfo is one row of `gnusto db list` (spec section 6.4's save
// metadata: slot name, timestamp, move count).
type SaveInfo struct {
	Slot      string
	Title     string
	Moves     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Save persists state under slot, creating the slot if it doesn't
// exist yet or overwriting it in place if it does -- the same
// "SAVE <name>" behavior a player expects from repeated saves to the
// same name.
func (s *Store) Save(slot, title string, state *world.GameState) error {
	if slot == "" {
		return fmt.Errorf("%w: empty save slot", cerrs.ErrInvalidPath)
	}
	blob, err := json.Marshal(state)
	if err != nil {
		return err
	}
	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.ExecContext(s.ctx, `
		INSERT INTO saves (slot, title, moves, state_json, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET
			title = excluded.title,
			moves = excluded.moves,
			state_json = excluded.state_json,
			updated_at = excluded.updated_at`,
		slot, title, state.Player.Moves, string(blob), now, now)
	return err
}

// Restore loads the GameState stored under slot. It returns
// cerrs.ErrSaveSlotNotFound if the slot doesn't exist.
func (s *Store) Restore(slot string) (*world.GameState, error) {
	var blob string
	err := s.db.QueryRowContext(s.ctx, `SELECT state_json FROM saves WHERE slot = ?`, slot).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, cerrs.ErrSaveSlotNotFound
	} else if err != nil {
		return nil, err
	}
	var state world.GameState
	if err := json.Unmarshal([]byte(blob), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// List returns every save slot, ordered by most recently updated
// first.
func (s *Store) List() ([]SaveInfo, error) {
	rows, err := s.db.QueryContext(s.ctx, `
		SELECT slot, title, moves, created_at, updated_at
		FROM saves ORDER BY updated_at DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []SaveInfo
	for rows.Next() {
		var info SaveInfo
		var createdAt, updatedAt string
		if err := rows.Scan(&info.Slot, &info.Title, &info.Moves, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		if info.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, err
		}
		if info.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	return out, rows.Err()
}

// Delete removes a save slot. It is not an error to delete a slot
// that doesn't exist.
func (s *Store) Delete(slot string) error {
	_, err := s.db.ExecContext(s.ctx, `DELETE FROM saves WHERE slot = ?`, slot)
	return err
}
