package meetingRepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"smartmeet/models"
)

// MemoryMeetingRepo is an in-memory Repository for demo mode and tests.
type MemoryMeetingRepo struct {
	mu       sync.RWMutex
	meetings map[string]models.MeetingDraft
}

// NewMemoryMeetingRepo creates an empty in-memory meeting store.
func NewMemoryMeetingRepo() *MemoryMeetingRepo {
	return &MemoryMeetingRepo{meetings: make(map[string]models.MeetingDraft)}
}

// Save upserts the draft by ID.
func (r *MemoryMeetingRepo) Save(ctx context.Context, draft models.MeetingDraft) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.meetings[draft.ID] = draft
	return nil
}

// GetByID returns the meeting, or nil when absent.
func (r *MemoryMeetingRepo) GetByID(ctx context.Context, id string) (*models.MeetingDraft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.meetings[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

// ListByDateRange returns scheduled meetings starting within [from, to),
// ordered by start time.
func (r *MemoryMeetingRepo) ListByDateRange(ctx context.Context, from, to string) ([]models.MeetingDraft, error) {
	fromDay, err := time.Parse("2006-01-02", from)
	if err != nil {
		return nil, err
	}
	toDay, err := time.Parse("2006-01-02", to)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.MeetingDraft
	for _, m := range r.meetings {
		if m.Status != models.MeetingScheduled || m.StartTime == nil {
			continue
		}
		start := *m.StartTime
		if start.Before(fromDay) || !start.Before(toDay) {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(*out[j].StartTime)
	})
	return out, nil
}
