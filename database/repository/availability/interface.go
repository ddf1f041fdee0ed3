package availabilityRepo

import (
	"context"

	"smartmeet/models"
)

// BusyWindow is one committed busy interval on a participant's calendar.
// Start and End are minutes from midnight on Date ("2006-01-02").
type BusyWindow struct {
	Date  string `bson:"date" json:"date"`
	Start int    `bson:"start" json:"start"`
	End   int    `bson:"end" json:"end"`
}

// Repository is the availability provider. GetAvailability reports each
// participant's status for the exact window [startMin, endMin) on date:
// busy when any calendar entry overlaps it, available when the calendar is
// tracked and clear, unknown when no calendar exists for the email.
type Repository interface {
	GetAvailability(ctx context.Context, emails []string, date string, startMin, endMin int) (map[string]models.AvailabilityStatus, error)
}

// Overlaps reports whether the window [start, end) intersects w on the given date.
func (w BusyWindow) Overlaps(date string, start, end int) bool {
	return w.Date == date && start < w.End && w.Start < end
}
