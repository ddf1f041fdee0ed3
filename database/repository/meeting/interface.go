package meetingRepo

import (
	"context"

	"smartmeet/models"
)

// Repository is the persistent meeting store. Save is an upsert keyed on
// the draft ID, so retrying a failed save with the same draft is safe.
type Repository interface {
	Save(ctx context.Context, draft models.MeetingDraft) error
	GetByID(ctx context.Context, id string) (*models.MeetingDraft, error)
	// ListByDateRange returns scheduled meetings starting within [from, to),
	// ordered by start time. Dates use the "2006-01-02" format.
	ListByDateRange(ctx context.Context, from, to string) ([]models.MeetingDraft, error)
}
