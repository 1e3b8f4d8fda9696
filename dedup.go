package main

import (
	"log"
	"sort"
)

// Deduplicate removes rows that repeat an earlier row's reference, comparing
// decoded target URLs so a plain permalink and its hyperlink-decorated form
// count as the same reference. The earliest position wins. Blank references
// never count as duplicates of each other.
//
// Deletions are applied from the highest position downward so removing one
// row never invalidates the position of another row still pending removal.
// Returns the number of rows removed.
func Deduplicate(store TicketStore) (int, error) {
	tickets, err := store.ListTickets()
	if err != nil {
		return 0, err
	}

	seen := make(map[string]int64)
	var remove []int64
	for _, t := range tickets {
		ref := ExtractHyperlinkTarget(t.Reference)
		if ref == "" {
			continue
		}
		if first, dup := seen[ref]; dup {
			log.Printf("dedup: row %d duplicates row %d (%s)", t.Position, first, ref)
			remove = append(remove, t.Position)
			continue
		}
		seen[ref] = t.Position
	}

	sort.Slice(remove, func(i, j int) bool { return remove[i] > remove[j] })
	removed := 0
	for _, pos := range remove {
		if err := store.DeleteTicket(pos); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}
