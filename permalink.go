package main

import (
	"fmt"
	"regexp"
	"strings"
)

// Permalink is the decoded form of a Slack message permalink: the channel the
// message lives in and its timestamp in "{seconds}.{microseconds}" form, as
// accepted by the conversation history API.
type Permalink struct {
	ChannelID        string
	MessageTimestamp string
}

// The timestamp segment is exactly 16 digits; a longer digit run is not a
// permalink, so the pattern refuses a 17th digit.
var permalinkRegex = regexp.MustCompile(`/archives/([CDG][A-Z0-9]+)/p(\d{16})(?:[^0-9]|$)`)

var hyperlinkRegex = regexp.MustCompile(`^=HYPERLINK\("([^"]*)"\s*,\s*"[^"]*"\)$`)

// ParsePermalink extracts the channel ID and message timestamp from a
// permalink. Malformed input is a normal case (references come from free-form
// data sources), so a failed parse reports ok=false rather than an error.
func ParsePermalink(ref string) (Permalink, bool) {
	match := permalinkRegex.FindStringSubmatch(ref)
	if match == nil {
		return Permalink{}, false
	}
	digits := match[2]
	return Permalink{
		ChannelID:        match[1],
		MessageTimestamp: digits[:10] + "." + digits[10:],
	}, true
}

// IsHyperlink reports whether a stored reference cell is already in its
// decorated =HYPERLINK form.
func IsHyperlink(cell string) bool {
	return hyperlinkRegex.MatchString(strings.TrimSpace(cell))
}

// FormatHyperlink builds the decorated cell form of a reference. Quotes in
// either part are dropped; the cell grammar has no escape for them.
func FormatHyperlink(url, label string) string {
	url = strings.ReplaceAll(url, `"`, "")
	label = strings.ReplaceAll(label, `"`, "")
	return fmt.Sprintf(`=HYPERLINK("%s", "%s")`, url, label)
}

// ExtractHyperlinkTarget returns the target URL of a decorated reference
// cell, or the input unchanged (trimmed) when the cell holds a plain value.
func ExtractHyperlinkTarget(cell string) string {
	cell = strings.TrimSpace(cell)
	if match := hyperlinkRegex.FindStringSubmatch(cell); match != nil {
		return match[1]
	}
	return cell
}
