package availabilityRepo

import (
	"context"
	"strings"

	"smartmeet/models"
)

// MemoryAvailabilityRepo is an in-memory Repository used for demo mode and
// tests. Only emails registered via Track or AddBusy have calendars; the
// rest report unknown.
type MemoryAvailabilityRepo struct {
	calendars map[string][]BusyWindow
}

// NewMemoryAvailabilityRepo creates an empty in-memory availability provider.
func NewMemoryAvailabilityRepo() *MemoryAvailabilityRepo {
	return &MemoryAvailabilityRepo{calendars: make(map[string][]BusyWindow)}
}

// Track registers an email as having a (possibly empty) calendar.
func (r *MemoryAvailabilityRepo) Track(email string) {
	key := strings.ToLower(email)
	if _, ok := r.calendars[key]; !ok {
		r.calendars[key] = nil
	}
}

// AddBusy records a busy window on the email's calendar.
func (r *MemoryAvailabilityRepo) AddBusy(email, date string, start, end int) {
	key := strings.ToLower(email)
	r.calendars[key] = append(r.calendars[key], BusyWindow{Date: date, Start: start, End: end})
}

// GetAvailability reports each email's status for [startMin, endMin) on date.
func (r *MemoryAvailabilityRepo) GetAvailability(ctx context.Context, emails []string, date string, startMin, endMin int) (map[string]models.AvailabilityStatus, error) {
	result := make(map[string]models.AvailabilityStatus, len(emails))
	for _, email := range emails {
		windows, tracked := r.calendars[strings.ToLower(email)]
		if !tracked {
			result[email] = models.StatusUnknown
			continue
		}
		status := models.StatusAvailable
		for _, w := range windows {
			if w.Overlaps(date, startMin, endMin) {
				status = models.StatusBusy
				break
			}
		}
		result[email] = status
	}
	return result, nil
}
