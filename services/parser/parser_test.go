package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedNow is a Wednesday morning, so weekday arithmetic is deterministic.
var fixedNow = time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

func testParser() *Parser {
	return NewWithClock(func() time.Time { return fixedNow })
}

func TestParseFullRequest(t *testing.T) {
	parsed := testParser().Parse("Schedule a meeting with John and Sarah tomorrow at 2pm for 1 hour")

	assert.Equal(t, []string{"John", "Sarah"}, parsed.ParticipantNames)
	assert.Empty(t, parsed.ParticipantEmails)
	assert.Equal(t, "2025-03-13", parsed.DateMentioned)
	assert.Equal(t, "2:00 PM", parsed.TimeMentioned)
	assert.Equal(t, "1 hour", parsed.DurationMentioned)
	assert.Equal(t, "Meeting", parsed.Title)
	assert.Empty(t, parsed.PriorityMentioned)
	assert.GreaterOrEqual(t, parsed.Confidence, 0.3)
}

func TestParseEmailsSkippedByNameExtractor(t *testing.T) {
	parsed := testParser().Parse("Set up a call with bob.jones@acme.com and Sarah")

	assert.Equal(t, []string{"bob.jones@acme.com"}, parsed.ParticipantEmails)
	assert.Equal(t, []string{"Sarah"}, parsed.ParticipantNames)
}

func TestParseGarbageNotUnderstood(t *testing.T) {
	parsed := testParser().Parse("asdf qwer zxcv")

	assert.False(t, parsed.HasParticipants())
	assert.Less(t, parsed.Confidence, 0.3)
}

func TestParseEmptyText(t *testing.T) {
	parsed := testParser().Parse("   ")

	assert.Equal(t, "", parsed.OriginalText)
	assert.Zero(t, parsed.Confidence)
}

func TestConfidenceAlwaysInRange(t *testing.T) {
	inputs := []string{
		"",
		"x",
		"urgent meeting call sync standup review discussion with John and Sarah tomorrow at 2pm for 1 hour",
		"Schedule John for Friday",
		"meeting",
	}
	p := testParser()
	for _, input := range inputs {
		c := p.Parse(input).Confidence
		assert.GreaterOrEqual(t, c, 0.0, "input %q", input)
		assert.LessOrEqual(t, c, 1.0, "input %q", input)
	}
}

func TestExtractDate(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"lunch today", "2025-03-12"},
		{"see you tomorrow", "2025-03-13"},
		{"what happened yesterday", "2025-03-11"},
		{"meet on Friday", "2025-03-14"},
		// Same weekday as the clock advances a full week.
		{"meet on Wednesday", "2025-03-19"},
		{"next Monday works", "2025-03-17"},
		{"this Thursday", "2025-03-13"},
		{"March 20 deadline", "2025-03-20"},
		// Month-day already passed this year rolls to next year.
		{"March 10 retro", "2026-03-10"},
		{"June 1st kickoff", "2025-06-01"},
		{"on 3/25 please", "2025-03-25"},
		{"on 4/5/26", "2026-04-05"},
		{"on 4/5/2026", "2026-04-05"},
		{"on 2/30", ""},
		{"on 13/1", ""},
		{"no date here", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, extractDate(tc.text, fixedNow), "text %q", tc.text)
	}
}

func TestExtractTime(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"at 2:30 pm", "2:30 PM"},
		{"at 9am", "9:00 AM"},
		{"at 14:30", "2:30 PM"},
		{"at 0:15", "12:15 AM"},
		{"at 12:00", "12:00 PM"},
		{"at 25:00", ""},
		{"at 13:70", ""},
		{"no time", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, extractTime(tc.text), "text %q", tc.text)
	}
}

func TestExtractDuration(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"for 1 hour", "1 hour"},
		{"for 2 hours", "2 hours"},
		{"90 minutes long", "1.5 hours"},
		{"45 min", "45 minutes"},
		{"for 2 hours and 15 minutes", "135 minutes"},
		{"half an hour", "30 minutes"},
		{"for 1/2 hour", "30 minutes"},
		{"no duration", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, extractDuration(tc.text), "text %q", tc.text)
	}
}

func TestExtractPriority(t *testing.T) {
	assert.Equal(t, "urgent", extractPriority("this is URGENT"))
	assert.Equal(t, "high", extractPriority("high priority sync"))
	assert.Equal(t, "low", extractPriority("low priority"))
	assert.Equal(t, "", extractPriority("plain request"))
}

func TestExtractTitle(t *testing.T) {
	assert.Equal(t, "Launch Plan", extractTitle(`Schedule "Launch Plan" with John`))
	assert.Equal(t, "Budget Review", extractTitle("Schedule a budget review with John"))
	assert.Equal(t, "Meeting", extractTitle("Schedule a meeting with John"))
	assert.Equal(t, "New Meeting", extractTitle("x"))
}

func TestParseClockRoundTrip(t *testing.T) {
	minutes, err := ParseClock("2:00 PM")
	require.NoError(t, err)
	assert.Equal(t, 840, minutes)

	_, err = ParseClock("not a time")
	assert.Error(t, err)
}

func TestDurationMinutes(t *testing.T) {
	assert.Equal(t, 60, DurationMinutes("1 hour"))
	assert.Equal(t, 90, DurationMinutes("1.5 hours"))
	assert.Equal(t, 135, DurationMinutes("135 minutes"))
	assert.Equal(t, 0, DurationMinutes(""))
	assert.Equal(t, 0, DurationMinutes("soonish"))
}
