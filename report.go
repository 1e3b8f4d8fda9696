package main

import (
	"fmt"
	"log"

	"github.com/slack-go/slack"
)

// Notifier is the outbound notification collaborator. Delivery failure is
// logged by the caller, not retried, not escalated.
type Notifier interface {
	Send(channelID, text string) error
}

type slackNotifier struct {
	api *slack.Client
}

func NewSlackNotifier(api *slack.Client) Notifier {
	return &slackNotifier{api: api}
}

func (n *slackNotifier) Send(channelID, text string) error {
	_, _, err := n.api.PostMessage(channelID, slack.MsgOptionText(text, false))
	return err
}

// CountOpenTickets counts rows whose status is "Open", case-insensitively.
// Pure read, no mutation.
func CountOpenTickets(store TicketStore) (int, error) {
	tickets, err := store.ListTickets()
	if err != nil {
		return 0, err
	}
	count := 0
	for _, t := range tickets {
		if t.IsOpen() {
			count++
		}
	}
	return count, nil
}

func BuildStatusSummary(count int) string {
	switch count {
	case 0:
		return "No open tickets right now."
	case 1:
		return "1 open ticket needs attention."
	default:
		return fmt.Sprintf("%d open tickets need attention.", count)
	}
}

// SendStatusReport composes the open-ticket summary and delegates delivery.
func SendStatusReport(store TicketStore, notifier Notifier, channelID string) {
	if channelID == "" {
		log.Println("status report skipped: report_channel_id not set")
		return
	}
	count, err := CountOpenTickets(store)
	if err != nil {
		log.Printf("status report count error: %v", err)
		return
	}
	msg := BuildStatusSummary(count)
	if err := notifier.Send(channelID, msg); err != nil {
		log.Printf("status report send error: %v", err)
		return
	}
	log.Printf("status report sent: open=%d", count)
}
