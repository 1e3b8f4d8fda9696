package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/slack-go/slack"
)

// All outbound Slack calls (message fetch, notifications) share one client
// with a hard timeout, so a stalled call can never hang a pass.
const externalHTTPTimeout = 30 * time.Second

var externalHTTPClient = &http.Client{
	Timeout: externalHTTPTimeout,
}

// ErrMessageNotFound means the channel+timestamp pair resolved to no message
// (deleted, or the bot lost channel access). Callers treat it like any other
// fetch failure: failure is data, not a reason to abort the pass.
var ErrMessageNotFound = errors.New("message not found")

// MessageFetcher is the collaborator that turns a parsed permalink back into
// message text.
type MessageFetcher interface {
	FetchMessage(channelID, timestamp string) (string, error)
}

type slackFetcher struct {
	api *slack.Client
}

func NewSlackFetcher(api *slack.Client) MessageFetcher {
	return &slackFetcher{api: api}
}

func (f *slackFetcher) FetchMessage(channelID, timestamp string) (string, error) {
	resp, err := f.api.GetConversationHistory(&slack.GetConversationHistoryParameters{
		ChannelID: channelID,
		Latest:    timestamp,
		Oldest:    timestamp,
		Inclusive: true,
		Limit:     1,
	})
	if err != nil {
		return "", fmt.Errorf("conversation history %s@%s: %w", channelID, timestamp, err)
	}
	if len(resp.Messages) == 0 || resp.Messages[0].Text == "" {
		return "", ErrMessageNotFound
	}
	return resp.Messages[0].Text, nil
}
