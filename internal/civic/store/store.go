package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"statehouse/internal/civic/models"
)

// Schema is the DDL of every table the store reads.
//
//go:embed schema.sql
var Schema string

// Store groups the entity tables over one connection pool.
type Store struct {
	db *sql.DB

	Jurisdictions *Table[models.Jurisdiction]
	People        *Table[models.Person]
	Bills         *Table[models.Bill]
	Committees    *Table[models.Committee]
	Events        *Table[models.Event]
	Runs          *RunStore
}

func New(db *sql.DB) *Store {
	return &Store{
		db:            db,
		Jurisdictions: newJurisdictions(db),
		People:        newPeople(db),
		Bills:         newBills(db),
		Committees:    newCommittees(db),
		Events:        newEvents(db),
		Runs:          &RunStore{db: db},
	}
}

// Ping verifies the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}
