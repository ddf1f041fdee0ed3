package models

import (
	"fmt"
	"time"
)

// TimeSlotCandidate is a contiguous window of the requested duration on a
// single day where every listed participant was confirmed free. Start and
// End are minutes from midnight (e.g., 540 for 9:00 AM); Date uses the
// "2006-01-02" format.
type TimeSlotCandidate struct {
	Date         string   `json:"date"`
	Start        int      `json:"start"`
	End          int      `json:"end"`
	Participants []string `json:"participants"`
}

// StartClock renders Start as a 12-hour clock string, e.g. "2:00 PM".
func (s TimeSlotCandidate) StartClock() string {
	return minutesToClock(s.Start)
}

// EndClock renders End as a 12-hour clock string.
func (s TimeSlotCandidate) EndClock() string {
	return minutesToClock(s.End)
}

// StartTime combines Date and Start into an absolute time in loc.
func (s TimeSlotCandidate) StartTime(loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", s.Date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid slot date %q: %w", s.Date, err)
	}
	return day.Add(time.Duration(s.Start) * time.Minute), nil
}

func minutesToClock(m int) string {
	h := m / 60
	min := m % 60
	period := "AM"
	switch {
	case h == 0:
		h = 12
	case h == 12:
		period = "PM"
	case h > 12:
		h -= 12
		period = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", h, min, period)
}
