package parser

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Conjunction patterns: "with John", "and Sarah", "Sarah and".
	namePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\bwith\s+([A-Z][a-z]+)`),
		regexp.MustCompile(`\band\s+([A-Z][a-z]+)`),
		regexp.MustCompile(`\b([A-Z][a-z]+)\s+and\b`),
	}

	quotedTitlePattern = regexp.MustCompile(`["“]([^"”]+)["”]|'([^']+)'`)

	urgentPattern = regexp.MustCompile(`(?i)\b(urgent|asap|immediately|critical)\b`)
	highPattern   = regexp.MustCompile(`(?i)\b(high|important)\b`)
	lowPattern    = regexp.MustCompile(`(?i)\b(low|normal)\b`)

	wordPattern = regexp.MustCompile(`[A-Za-z]+`)
)

// meetingKeywords are the recognized meeting types; each occurrence earns a
// small confidence bonus and anchors title generation.
var meetingKeywords = []string{"meeting", "call", "sync", "standup", "review", "discussion"}

// firstNameDictionary backs the fallback name extractor for utterances that
// skip conjunctions entirely ("Schedule John for Friday").
var firstNameDictionary = map[string]struct{}{
	"john": {}, "sarah": {}, "mike": {}, "michael": {}, "emily": {},
	"david": {}, "lisa": {}, "james": {}, "maria": {}, "robert": {},
	"jennifer": {}, "amy": {}, "chris": {}, "emma": {}, "daniel": {},
	"laura": {}, "kevin": {}, "anna": {}, "peter": {}, "rachel": {},
}

// titleStopwords never lead a generated title window.
var titleStopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "with": {}, "for": {}, "to": {},
	"schedule": {}, "set": {}, "up": {}, "book": {}, "create": {},
	"priority": {}, "urgent": {}, "high": {}, "low": {},
}

// descriptionMinLength is the threshold below which the raw text is too
// short to double as a description.
const descriptionMinLength = 20

// extractEmails returns the deduplicated email addresses in first-seen order.
func extractEmails(text string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, email := range emailPattern.FindAllString(text, -1) {
		key := strings.ToLower(email)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, email)
	}
	return out
}

// extractNames returns candidate participant names in first-seen order:
// conjunction patterns first, then the first-name dictionary fallback.
// Words that are part of an already-extracted email are skipped.
func extractNames(text string, emails []string) []string {
	emailText := strings.ToLower(strings.Join(emails, " "))

	var out []string
	seen := make(map[string]struct{})
	add := func(name string) {
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			return
		}
		if emailText != "" && strings.Contains(emailText, key) {
			return
		}
		seen[key] = struct{}{}
		out = append(out, name)
	}

	for _, pattern := range namePatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			add(m[1])
		}
	}

	// Dictionary fallback for names the conjunction patterns missed.
	for _, word := range wordPattern.FindAllString(text, -1) {
		if _, ok := firstNameDictionary[strings.ToLower(word)]; ok {
			add(word)
		}
	}
	return out
}

// extractPriority maps keyword classes to a priority label; absence stays
// empty (the orchestrator applies the "medium" default, not the parser).
func extractPriority(text string) string {
	switch {
	case urgentPattern.MatchString(text):
		return "urgent"
	case highPattern.MatchString(text):
		return "high"
	case lowPattern.MatchString(text):
		return "low"
	}
	return ""
}

// extractTitle picks a title: a quoted substring wins, then a window around
// a meeting-type keyword, then the first few words.
func extractTitle(text string) string {
	if m := quotedTitlePattern.FindStringSubmatch(text); m != nil {
		if m[1] != "" {
			return strings.TrimSpace(m[1])
		}
		return strings.TrimSpace(m[2])
	}

	words := wordPattern.FindAllString(text, -1)
	for i, word := range words {
		if !isMeetingKeyword(word) {
			continue
		}
		// Pull in up to two preceding qualifier words ("team sync",
		// "quarterly budget review").
		start := i
		for start > i-2 && start > 0 {
			prev := strings.ToLower(words[start-1])
			if _, stop := titleStopwords[prev]; stop {
				break
			}
			if isMeetingKeyword(prev) {
				break
			}
			start--
		}
		return titleCase(strings.Join(words[start:i+1], " "))
	}

	if len(words) >= 2 {
		end := 3
		if len(words) < end {
			end = len(words)
		}
		return titleCase(strings.Join(words[:end], " "))
	}
	return "New Meeting"
}

// extractDescription reuses the raw text as description when it is long
// enough to carry meaning on its own.
func extractDescription(text string) string {
	if len(text) > descriptionMinLength {
		return text
	}
	return ""
}

func isMeetingKeyword(word string) bool {
	word = strings.ToLower(word)
	for _, kw := range meetingKeywords {
		if word == kw {
			return true
		}
	}
	return false
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
