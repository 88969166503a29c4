package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log"

	_ "modernc.org/sqlite"

	"github.com/mdhenderson/gnusto/cerrs"
	"github.com/mdhenderson/gnusto/internal/stdlib"
)

//go:embed schema.sql
var schemaDDL string

// Store is a handle to an open save-game database.
type Store struct {
	path string
	db   *sql.DB
	ctx  context.Context
}

// Create creates a new, empty save-game database at path. It is an
// error if a file already exists there; the caller must remove it
// first to start fresh.
func Create(path string, ctx context.Context) error {
	if ok, err := stdlib.IsFileExists(path); err != nil {
		log.Printf("store: create: %q: %s\n", path, err)
		return err
	} else if ok {
		log.Printf("store: create: %q: database already exists\n", path)
		return cerrs.ErrDatabaseExists
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		log.Printf("store: create: %v\n", err)
		return err
	}
	defer func() { _ = db.Close() }()

	if err := enableForeignKeys(db); err != nil {
		log.Printf("store: create: %v\n", err)
		return err
	}

	if _, err := db.Exec(schemaDDL); err != nil {
		log.Printf("store: create: failed to initialize schema: %v\n", err)
		return fmt.Errorf("%w: %v", cerrs.ErrCreateSchema, err)
	}

	log.Printf("store: create: created %s\n", path)
	return nil
}

// Open opens an existing save-game database. Caller must call
// Close() when done.
func Open(path string, ctx context.Context) (*Store, error) {
	if ok, err := stdlib.IsFileExists(path); err != nil {
		log.Printf("store: open: %q: %v\n", path, err)
		return nil, err
	} else if !ok {
		log.Printf("store: open: %q: not a database\n", path)
		return nil, cerrs.ErrDatabaseNotFound
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		log.Printf("store: open: %s: %v\n", path, err)
		return nil, err
	}

	if err := enableForeignKeys(db); err != nil {
		_ = db.Close()
		log.Printf("store: open: %v\n", err)
		return nil, err
	}

	return &Store{path: path, db: db, ctx: ctx}, nil
}

func enableForeignKeys(db *sql.DB) error {
	rslt, err := db.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		return cerrs.ErrForeignKeysDisabled
	} else if rslt == nil {
		return cerrs.ErrPragmaReturnedNil
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
