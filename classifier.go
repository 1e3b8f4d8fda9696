package main

import (
	"regexp"
	"strings"
)

// SearchGroup is one alternative way of recognizing a category. Both modes
// match any one of the phrases; "exact" compares case-sensitively, "or"
// case-insensitively. Both modes respect word boundaries, so "cap" never
// matches inside "capture".
type SearchGroup struct {
	Mode    string   `yaml:"mode"`
	Phrases []string `yaml:"phrases"`
}

// CategoryRule names a category and the search groups that detect it. Groups
// are evaluated in order and the first match settles the category.
type CategoryRule struct {
	Name   string        `yaml:"name"`
	Groups []SearchGroup `yaml:"groups"`
}

const (
	matchModeExact = "exact"
	matchModeOr    = "or"
)

// Classify returns the names of every category whose rules match the text,
// in rule order, without duplicates. An empty result is a normal outcome: the
// ticket simply stays unclassified.
func Classify(text string, rules []CategoryRule) []string {
	var matched []string
	for _, rule := range rules {
		for _, group := range rule.Groups {
			if groupMatches(text, group) {
				matched = append(matched, rule.Name)
				break
			}
		}
	}
	return matched
}

func groupMatches(text string, group SearchGroup) bool {
	for _, phrase := range group.Phrases {
		phrase = strings.TrimSpace(phrase)
		if phrase == "" {
			continue
		}
		switch group.Mode {
		case matchModeExact:
			if phraseRegexp(phrase, false).MatchString(text) {
				return true
			}
		case matchModeOr:
			if phraseRegexp(phrase, true).MatchString(text) {
				return true
			}
		}
	}
	return false
}

// phraseRegexp compiles a whole-word pattern for one phrase. Phrases are
// literal text; special regex characters in them must not act as operators.
func phraseRegexp(phrase string, caseInsensitive bool) *regexp.Regexp {
	pattern := `\b` + regexp.QuoteMeta(phrase) + `\b`
	if caseInsensitive {
		pattern = `(?i)` + pattern
	}
	return regexp.MustCompile(pattern)
}
