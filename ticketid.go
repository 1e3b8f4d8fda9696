package main

import (
	"fmt"
	"strings"
)

// FormatTicketID derives the human-readable ticket identifier from a resolved
// location, the current year, and the record's stable row position:
// "Toronto", 2025, 42 -> "TOR-25-42". Positions are never reused, so the
// suffix stays unique even after duplicate rows are removed.
//
// The function is pure; the assign-at-most-once guarantee belongs to the
// caller, which must check for an existing value first.
func FormatTicketID(location string, year int, position int64) string {
	prefix := strings.ToUpper(location)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	return fmt.Sprintf("%s-%02d-%d", prefix, year%100, position)
}
