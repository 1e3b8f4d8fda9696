package main

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
)

// Engine is the reconciliation pass: for every row with a reference it fills
// in whichever enrichment fields are still blank, in a fixed order, and never
// overwrites a populated field. Running it again over fully-enriched data
// performs zero writes.
type Engine struct {
	store         TicketStore
	fetcher       MessageFetcher
	rules         []CategoryRule
	locations     map[string]string
	hints         map[string]string
	failureMarker string
	linkLabel     string
	now           func() time.Time
}

func NewEngine(cfg Config, store TicketStore, fetcher MessageFetcher) *Engine {
	return &Engine{
		store:         store,
		fetcher:       fetcher,
		rules:         cfg.Categories,
		locations:     cfg.Locations,
		hints:         cfg.LocationColors,
		failureMarker: cfg.FailureMarker,
		linkLabel:     cfg.LinkLabel,
		now:           time.Now,
	}
}

// PassSummary tracks counters for one reconciliation pass. Touched counts
// rows where an enrichment field (text, category, reference decoration,
// ticket ID) was written; Writes counts every store write, which is what the
// idempotence guarantee is stated against.
type PassSummary struct {
	Processed int
	Touched   int
	Failed    int
	Writes    int
}

func (e *Engine) Run() PassSummary {
	var summary PassSummary

	tickets, err := e.store.ListTickets()
	if err != nil {
		log.Printf("reconcile: listing tickets: %v", err)
		return summary
	}

	for _, t := range tickets {
		// Rows without a reference are not tickets yet; skip entirely.
		if strings.TrimSpace(t.Reference) == "" {
			continue
		}
		summary.Processed++

		touched, writes, err := e.reconcileTicket(t)
		summary.Writes += writes
		if touched {
			summary.Touched++
		}
		if err != nil {
			// One bad row never aborts the pass.
			summary.Failed++
			log.Printf("reconcile: row %d: %v", t.Position, err)
		}
	}

	log.Printf("reconcile: processed=%d touched=%d failed=%d writes=%d",
		summary.Processed, summary.Touched, summary.Failed, summary.Writes)
	return summary
}

// reconcileTicket applies the enrichment steps to one row. Later steps see
// the values written by earlier ones within the same pass through the local
// copy of t.
func (e *Engine) reconcileTicket(t Ticket) (touched bool, writes int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	link, parsed := ParsePermalink(ExtractHyperlinkTarget(t.Reference))

	// 1. Message text. A failed fetch writes the sentinel marker so the row
	// is not retried every pass; an unparseable reference leaves the field
	// blank for a later pass after the data is corrected.
	if t.Text == "" && parsed {
		text, ferr := e.fetcher.FetchMessage(link.ChannelID, link.MessageTimestamp)
		if ferr != nil {
			if !errors.Is(ferr, ErrMessageNotFound) {
				log.Printf("reconcile: row %d fetch failed: %v", t.Position, ferr)
			}
			text = e.failureMarker
		}
		if werr := e.store.UpdateField(t.Position, FieldText, text); werr != nil {
			return touched, writes, werr
		}
		t.Text = text
		touched = true
		writes++
	}

	// 2. Location, from the reference's channel.
	if t.Location == "" && t.Text != "" && parsed {
		if loc, found := ResolveLocation(link.ChannelID, e.locations); found {
			if werr := e.store.UpdateField(t.Position, FieldLocation, loc); werr != nil {
				return touched, writes, werr
			}
			t.Location = loc
			writes++
		}
	}

	// 3. Category. Zero matches is a valid outcome; the row stays
	// unclassified and is re-examined next pass.
	if t.Category == "" && t.Text != "" {
		if names := Classify(t.Text, e.rules); len(names) > 0 {
			joined := strings.Join(names, ", ")
			if werr := e.store.UpdateField(t.Position, FieldCategory, joined); werr != nil {
				return touched, writes, werr
			}
			t.Category = joined
			touched = true
			writes++
		}
	}

	// 4. Normalize the reference into its hyperlink form.
	if !IsHyperlink(t.Reference) {
		decorated := FormatHyperlink(strings.TrimSpace(t.Reference), e.linkLabel)
		if werr := e.store.UpdateField(t.Position, FieldReference, decorated); werr != nil {
			return touched, writes, werr
		}
		t.Reference = decorated
		touched = true
		writes++
	}

	// 5. Row presentation hint. Not an enrichment field; written only when
	// it would actually change.
	if t.Location != "" {
		if hint := HintForLocation(t.Location, e.hints); hint != "" && hint != t.RowHint {
			if werr := e.store.SetRowHint(t.Position, hint); werr != nil {
				return touched, writes, werr
			}
			writes++
		}
	}

	// 6. Ticket ID, once the location is known. Assigned at most once.
	if t.TicketID == "" && t.Location != "" {
		id := FormatTicketID(t.Location, e.now().Year(), t.Position)
		if werr := e.store.UpdateField(t.Position, FieldTicketID, id); werr != nil {
			return touched, writes, werr
		}
		touched = true
		writes++
	}

	return touched, writes, nil
}
