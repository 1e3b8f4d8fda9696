package main

import "strings"

// ResolveLocation maps a channel ID to its configured location name. Unknown
// channels are "not found", not errors: the field is left blank for a later
// pass once the mapping catches up.
func ResolveLocation(channelID string, locations map[string]string) (string, bool) {
	loc, ok := locations[channelID]
	return loc, ok
}

// HintForLocation picks the presentation hint for a resolved location by
// case-insensitive substring match against the configured location names.
// Unmatched locations get no hint. When several configured names match, the
// longest wins (ties broken alphabetically) so repeated passes always pick
// the same hint.
func HintForLocation(location string, hints map[string]string) string {
	lower := strings.ToLower(location)
	best := ""
	for name := range hints {
		if name == "" || !strings.Contains(lower, strings.ToLower(name)) {
			continue
		}
		if len(name) > len(best) || (len(name) == len(best) && name < best) {
			best = name
		}
	}
	if best == "" {
		return ""
	}
	return hints[best]
}
