package parser

import (
	"strings"
	"time"

	"smartmeet/models"
	"smartmeet/utils"

	"go.uber.org/zap"
)

// Parser turns one free-text meeting request into a structured
// models.ParsedRequest with per-field confidence. Every field extractor is
// independent: a panic inside one extractor is caught at its boundary and
// degrades to "field absent" instead of aborting the parse.
type Parser struct {
	now func() time.Time
}

// New creates a Parser using the wall clock.
func New() *Parser {
	return &Parser{now: time.Now}
}

// NewWithClock creates a Parser with an injectable clock for deterministic
// date resolution.
func NewWithClock(now func() time.Time) *Parser {
	return &Parser{now: now}
}

// Parse extracts all recognized fields from text. The result is immutable
// once returned; callers must treat Confidence < models.MinimumConfidence
// as "not understood".
func (p *Parser) Parse(text string) models.ParsedRequest {
	text = strings.TrimSpace(text)
	parsed := models.ParsedRequest{OriginalText: text}
	if text == "" {
		return parsed
	}

	p.extract("emails", func() { parsed.ParticipantEmails = extractEmails(text) })
	p.extract("names", func() { parsed.ParticipantNames = extractNames(text, parsed.ParticipantEmails) })
	p.extract("date", func() { parsed.DateMentioned = extractDate(text, p.now()) })
	p.extract("time", func() { parsed.TimeMentioned = extractTime(text) })
	p.extract("duration", func() { parsed.DurationMentioned = extractDuration(text) })
	p.extract("priority", func() { parsed.PriorityMentioned = extractPriority(text) })
	p.extract("title", func() { parsed.Title = extractTitle(text) })
	p.extract("description", func() { parsed.Description = extractDescription(text) })

	parsed.Confidence = scoreConfidence(parsed)
	return parsed
}

// extract runs one extractor, converting a panic into "field absent".
func (p *Parser) extract(field string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			utils.GetLogger().Warn("extractor failed",
				zap.String("field", field), zap.Any("error", r))
		}
	}()
	fn()
}
