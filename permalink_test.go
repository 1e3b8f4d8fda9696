package main

import "testing"

func TestParsePermalink(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   Permalink
		wantOK bool
	}{
		{
			name:   "channel permalink",
			input:  "https://example.slack.com/archives/C0123456789/p1234567890123456",
			want:   Permalink{ChannelID: "C0123456789", MessageTimestamp: "1234567890.123456"},
			wantOK: true,
		},
		{
			name:   "dm permalink",
			input:  "https://example.slack.com/archives/D024BE91L00/p9876543210987654",
			want:   Permalink{ChannelID: "D024BE91L00", MessageTimestamp: "9876543210.987654"},
			wantOK: true,
		},
		{name: "not a link", input: "not a link"},
		{name: "empty", input: ""},
		{name: "short timestamp", input: "https://example.slack.com/archives/C0123456789/p12345"},
		{name: "long timestamp", input: "https://example.slack.com/archives/C0123456789/p12345678901234567"},
		{name: "lowercase channel", input: "https://example.slack.com/archives/c0123456789/p1234567890123456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePermalink(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ok=%v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHyperlinkRoundTrip(t *testing.T) {
	url := "https://example.slack.com/archives/C0123456789/p1234567890123456"
	cell := FormatHyperlink(url, "Slack Thread")

	if !IsHyperlink(cell) {
		t.Fatalf("expected decorated cell to be recognized: %q", cell)
	}
	if IsHyperlink(url) {
		t.Fatal("plain URL should not be recognized as a hyperlink cell")
	}
	if got := ExtractHyperlinkTarget(cell); got != url {
		t.Fatalf("extracted %q, want %q", got, url)
	}
	if got := ExtractHyperlinkTarget("  " + url + " "); got != url {
		t.Fatalf("plain value not passed through trimmed: %q", got)
	}
}

func TestFormatHyperlinkDropsQuotes(t *testing.T) {
	cell := FormatHyperlink(`https://example.com/a"b`, `see "this"`)
	if got := ExtractHyperlinkTarget(cell); got != "https://example.com/ab" {
		t.Fatalf("unexpected target: %q", got)
	}
}
