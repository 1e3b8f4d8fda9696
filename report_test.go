package main

import (
	"errors"
	"testing"
)

type fakeNotifier struct {
	sent []string
	err  error
}

func (n *fakeNotifier) Send(channelID, text string) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, channelID+": "+text)
	return nil
}

func TestCountOpenTicketsIsCaseInsensitive(t *testing.T) {
	store := newTestStore(t)
	mustInsert(t, store, "ref-1", "open")
	mustInsert(t, store, "ref-2", "OPEN")
	mustInsert(t, store, "ref-3", "Open")
	mustInsert(t, store, "ref-4", "Closed")
	mustInsert(t, store, "ref-5", "closed")

	count, err := CountOpenTickets(store)
	if err != nil {
		t.Fatalf("CountOpenTickets failed: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 open tickets, got %d", count)
	}
}

func TestBuildStatusSummary(t *testing.T) {
	if got := BuildStatusSummary(0); got != "No open tickets right now." {
		t.Fatalf("unexpected zero summary: %q", got)
	}
	if got := BuildStatusSummary(1); got != "1 open ticket needs attention." {
		t.Fatalf("unexpected singular summary: %q", got)
	}
	if got := BuildStatusSummary(3); got != "3 open tickets need attention." {
		t.Fatalf("unexpected plural summary: %q", got)
	}
}

func TestSendStatusReport(t *testing.T) {
	store := newTestStore(t)
	mustInsert(t, store, "ref-1", "Open")
	mustInsert(t, store, "ref-2", "Closed")

	notifier := &fakeNotifier{}
	SendStatusReport(store, notifier, "C0REPORT")

	if len(notifier.sent) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.sent))
	}
	if notifier.sent[0] != "C0REPORT: 1 open ticket needs attention." {
		t.Fatalf("unexpected notification: %q", notifier.sent[0])
	}
}

func TestSendStatusReportEmptyStore(t *testing.T) {
	store := newTestStore(t)

	notifier := &fakeNotifier{}
	SendStatusReport(store, notifier, "C0REPORT")

	if len(notifier.sent) != 1 || notifier.sent[0] != "C0REPORT: No open tickets right now." {
		t.Fatalf("unexpected notifications: %v", notifier.sent)
	}
}

func TestSendStatusReportWithoutChannelIsNoOp(t *testing.T) {
	store := newTestStore(t)
	notifier := &fakeNotifier{}

	SendStatusReport(store, notifier, "")

	if len(notifier.sent) != 0 {
		t.Fatalf("expected no notifications, got %v", notifier.sent)
	}
}

func TestSendStatusReportDeliveryFailureIsLoggedNotRetried(t *testing.T) {
	store := newTestStore(t)
	mustInsert(t, store, "ref-1", "Open")

	notifier := &fakeNotifier{err: errors.New("slack down")}
	SendStatusReport(store, notifier, "C0REPORT")

	if len(notifier.sent) != 0 {
		t.Fatalf("expected no successful sends, got %v", notifier.sent)
	}
}
