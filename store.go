package main

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// TicketStore is the row-store collaborator. Rows are addressed by stable
// position and field role; the store owns the table layout. Positions are
// monotonic and never reused, even after the deduplicator removes rows, so
// they are safe to bake into ticket IDs.
type TicketStore interface {
	ListTickets() ([]Ticket, error)
	UpdateField(position int64, field Field, value string) error
	SetRowHint(position int64, hint string) error
	DeleteTicket(position int64) error
}

// SQLiteStore backs the ticket table with SQLite. AUTOINCREMENT guarantees
// the never-reused position contract.
type SQLiteStore struct {
	db *sql.DB
}

func OpenStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS tickets (
		position   INTEGER PRIMARY KEY AUTOINCREMENT,
		reference  TEXT NOT NULL DEFAULT '',
		text       TEXT NOT NULL DEFAULT '',
		location   TEXT NOT NULL DEFAULT '',
		category   TEXT NOT NULL DEFAULT '',
		status     TEXT NOT NULL DEFAULT 'Open',
		ticket_id  TEXT NOT NULL DEFAULT '',
		row_hint   TEXT NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_tickets_status ON tickets(status);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// fieldColumns whitelists the columns reachable through UpdateField. Writing
// any other column is a programming error, not a data condition.
var fieldColumns = map[Field]string{
	FieldReference: "reference",
	FieldText:      "text",
	FieldLocation:  "location",
	FieldCategory:  "category",
	FieldStatus:    "status",
	FieldTicketID:  "ticket_id",
}

func (s *SQLiteStore) ListTickets() ([]Ticket, error) {
	rows, err := s.db.Query(
		`SELECT position, reference, text, location, category, status, ticket_id, row_hint, created_at
		 FROM tickets ORDER BY position`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickets []Ticket
	for rows.Next() {
		var t Ticket
		err := rows.Scan(
			&t.Position, &t.Reference, &t.Text, &t.Location, &t.Category,
			&t.Status, &t.TicketID, &t.RowHint, &t.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

func (s *SQLiteStore) UpdateField(position int64, field Field, value string) error {
	column, ok := fieldColumns[field]
	if !ok {
		return fmt.Errorf("unknown ticket field %q", field)
	}
	_, err := s.db.Exec(
		fmt.Sprintf("UPDATE tickets SET %s = ? WHERE position = ?", column),
		value, position,
	)
	return err
}

func (s *SQLiteStore) SetRowHint(position int64, hint string) error {
	_, err := s.db.Exec("UPDATE tickets SET row_hint = ? WHERE position = ?", hint, position)
	return err
}

func (s *SQLiteStore) DeleteTicket(position int64) error {
	_, err := s.db.Exec("DELETE FROM tickets WHERE position = ?", position)
	return err
}

// InsertTicket creates a row the way the external workflow does: reference
// and status populated, enrichment fields blank. Returns the new position.
func (s *SQLiteStore) InsertTicket(reference, status string) (int64, error) {
	if status == "" {
		status = StatusOpen
	}
	res, err := s.db.Exec(
		"INSERT INTO tickets (reference, status, created_at) VALUES (?, ?, ?)",
		reference, status, time.Now(),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
