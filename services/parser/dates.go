package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateStrategy is one rule in the ordered date cascade; the first strategy
// returning a non-empty "2006-01-02" string wins.
type dateStrategy func(text string, now time.Time) string

var dateStrategies = []dateStrategy{
	matchRelativeDay,
	matchWeekday,
	matchMonthNameDay,
	matchNumericDate,
}

var (
	relativeDayPattern = regexp.MustCompile(`(?i)\b(today|tomorrow|yesterday)\b`)
	weekdayPattern     = regexp.MustCompile(`(?i)\b(?:(next|this)\s+)?(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	monthDayPattern    = regexp.MustCompile(`(?i)\b(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:tember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?\s+(\d{1,2})(?:st|nd|rd|th)?\b`)
	numericPattern     = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?\b`)
)

var weekdays = map[string]time.Weekday{
	"monday": time.Monday, "tuesday": time.Tuesday, "wednesday": time.Wednesday,
	"thursday": time.Thursday, "friday": time.Friday, "saturday": time.Saturday,
	"sunday": time.Sunday,
}

var monthNames = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// extractDate runs the date cascade; empty string means no date mentioned.
func extractDate(text string, now time.Time) string {
	for _, strategy := range dateStrategies {
		if d := strategy(text, now); d != "" {
			return d
		}
	}
	return ""
}

func matchRelativeDay(text string, now time.Time) string {
	m := relativeDayPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	day := now
	switch strings.ToLower(m[1]) {
	case "tomorrow":
		day = now.AddDate(0, 0, 1)
	case "yesterday":
		day = now.AddDate(0, 0, -1)
	}
	return day.Format("2006-01-02")
}

// matchWeekday resolves a weekday name to its next occurrence; a weekday
// equal to today's advances a full week. A "next"/"this" qualifier does not
// change the computation.
func matchWeekday(text string, now time.Time) string {
	m := weekdayPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	target := weekdays[strings.ToLower(m[2])]
	ahead := int(target-now.Weekday()+7) % 7
	if ahead == 0 {
		ahead = 7
	}
	return now.AddDate(0, 0, ahead).Format("2006-01-02")
}

// matchMonthNameDay assumes the current year unless the date already
// passed, in which case it rolls over to the next year.
func matchMonthNameDay(text string, now time.Time) string {
	m := monthDayPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	month, ok := monthNames[strings.ToLower(m[1])[:3]]
	if !ok {
		return ""
	}
	day, err := strconv.Atoi(m[2])
	if err != nil || !validDayOfMonth(now.Year(), month, day) {
		return ""
	}
	candidate := time.Date(now.Year(), month, day, 0, 0, 0, 0, now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if candidate.Before(today) {
		candidate = candidate.AddDate(1, 0, 0)
	}
	return candidate.Format("2006-01-02")
}

// matchNumericDate handles month/day with an optional 2- or 4-digit year;
// a 2-digit year is read as 2000+yy.
func matchNumericDate(text string, now time.Time) string {
	m := numericPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return ""
	}

	year := now.Year()
	if m[3] != "" {
		y, err := strconv.Atoi(m[3])
		if err != nil || len(m[3]) == 3 {
			return ""
		}
		if len(m[3]) == 2 {
			y += 2000
		}
		year = y
	}
	if !validDayOfMonth(year, time.Month(month), day) {
		return ""
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location()).Format("2006-01-02")
}

func validDayOfMonth(year int, month time.Month, day int) bool {
	if day < 1 {
		return false
	}
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return d.Month() == month
}

var (
	clock12Pattern = regexp.MustCompile(`(?i)\b(\d{1,2}):(\d{2})\s*(am|pm)\b`)
	hour12Pattern  = regexp.MustCompile(`(?i)\b(\d{1,2})\s*(am|pm)\b`)
	clock24Pattern = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)
)

// extractTime runs the time chain. Out-of-range hours or minutes reject the
// match instead of being coerced. The result uses the "3:04 PM" format.
func extractTime(text string) string {
	if m := clock12Pattern.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour >= 1 && hour <= 12 && minute <= 59 {
			return fmt.Sprintf("%d:%02d %s", hour, minute, strings.ToUpper(m[3]))
		}
	}
	if m := hour12Pattern.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		if hour >= 1 && hour <= 12 {
			return fmt.Sprintf("%d:00 %s", hour, strings.ToUpper(m[2]))
		}
	}
	if m := clock24Pattern.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour <= 23 && minute <= 59 {
			period := "AM"
			switch {
			case hour == 0:
				hour = 12
			case hour == 12:
				period = "PM"
			case hour > 12:
				hour -= 12
				period = "PM"
			}
			return fmt.Sprintf("%d:%02d %s", hour, minute, period)
		}
	}
	return ""
}

// ParseClock converts a "3:04 PM" style string back into minutes from
// midnight. It is the inverse of extractTime's output format.
func ParseClock(clock string) (int, error) {
	t, err := time.Parse("3:04 PM", strings.ToUpper(strings.TrimSpace(clock)))
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", clock, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

var (
	hoursMinutesPattern = regexp.MustCompile(`(?i)\b(\d+)\s*hours?\s+(?:and\s+)?(\d+)\s*min(?:ute)?s?\b`)
	hoursPattern        = regexp.MustCompile(`(?i)(?:^|[^/\d.])(\d+(?:\.\d+)?)\s*hours?\b`)
	minutesPattern      = regexp.MustCompile(`(?i)\b(\d+)\s*min(?:ute)?s?\b`)
	halfHourPattern     = regexp.MustCompile(`(?i)\b(?:half|1/2)\s*(?:an\s+)?hour\b`)
)

// canonicalDurations maps minute counts onto their display labels.
var canonicalDurations = map[int]string{
	15: "15 minutes", 30: "30 minutes", 45: "45 minutes",
	60: "1 hour", 90: "1.5 hours", 120: "2 hours",
	150: "2.5 hours", 180: "3 hours",
}

// extractDuration runs the duration chain and renders a canonical label, or
// a literal "<n> minutes" for non-canonical values.
func extractDuration(text string) string {
	if m := hoursMinutesPattern.FindStringSubmatch(text); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		return durationLabel(hours*60 + minutes)
	}
	if m := hoursPattern.FindStringSubmatch(text); m != nil {
		hours, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return durationLabel(int(hours * 60))
		}
	}
	if m := minutesPattern.FindStringSubmatch(text); m != nil {
		minutes, _ := strconv.Atoi(m[1])
		return durationLabel(minutes)
	}
	if halfHourPattern.MatchString(text) {
		return durationLabel(30)
	}
	return ""
}

// DurationMinutes converts a duration label back into minutes; zero means
// the label was absent or unreadable.
func DurationMinutes(label string) int {
	for minutes, l := range canonicalDurations {
		if l == label {
			return minutes
		}
	}
	var n int
	if _, err := fmt.Sscanf(label, "%d minutes", &n); err == nil {
		return n
	}
	return 0
}

func durationLabel(minutes int) string {
	if label, ok := canonicalDurations[minutes]; ok {
		return label
	}
	return fmt.Sprintf("%d minutes", minutes)
}
