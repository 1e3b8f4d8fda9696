package main

import (
	"strings"
	"time"
)

// Ticket is one row of the external ticket store. Identity and status fields
// are owned by the interactive workflow that creates rows; this service only
// ever fills in blank enrichment fields (Text, Location, Category, TicketID)
// and normalizes Reference into its hyperlink form.
type Ticket struct {
	Position  int64  // stable row position, never reused after deletion
	Reference string // permalink, plain or =HYPERLINK(...) decorated
	Text      string
	Location  string
	Category  string
	Status    string // "Open" / "Closed", mutated externally
	TicketID  string // "{LOC}-{YY}-{position}", assigned at most once
	RowHint   string // presentation hint derived from Location
	CreatedAt time.Time
}

// Field names an enrichment column of the store. The core addresses cells by
// (row position, field role) and never reconstructs the table layout itself.
type Field string

const (
	FieldReference Field = "reference"
	FieldText      Field = "text"
	FieldLocation  Field = "location"
	FieldCategory  Field = "category"
	FieldStatus    Field = "status"
	FieldTicketID  Field = "ticket_id"
)

const (
	StatusOpen   = "Open"
	StatusClosed = "Closed"
)

func (t Ticket) IsOpen() bool {
	return strings.EqualFold(strings.TrimSpace(t.Status), StatusOpen)
}
