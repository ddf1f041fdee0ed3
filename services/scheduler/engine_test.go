package scheduler

import (
	"context"
	"testing"
	"time"

	availabilityRepo "smartmeet/database/repository/availability"
	"smartmeet/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var engineNow = time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC)

func workHoursConfig() Config {
	return Config{
		WorkDayStartMin:          540,
		WorkDayEndMin:            1020,
		BucketMinutes:            30,
		UnknownCountsAsAvailable: true,
	}
}

func testEngine(repo *availabilityRepo.MemoryAvailabilityRepo, cfg Config) *Engine {
	return NewEngineWithClock(repo, cfg, func() time.Time { return engineNow })
}

func trackedParticipants(repo *availabilityRepo.MemoryAvailabilityRepo, emails ...string) []models.Participant {
	var out []models.Participant
	for _, email := range emails {
		repo.Track(email)
		out = append(out, models.Participant{Email: email, Name: email})
	}
	return out
}

func TestCheckWindowReportsBusyParticipants(t *testing.T) {
	repo := availabilityRepo.NewMemoryAvailabilityRepo()
	participants := trackedParticipants(repo, "a@company.com", "b@company.com")
	repo.AddBusy("a@company.com", "2025-03-13", 840, 900)

	engine := testEngine(repo, workHoursConfig())

	busy, err := engine.CheckWindow(context.Background(), participants, "2025-03-13", 840, 60)
	require.NoError(t, err)
	assert.Equal(t, []string{"a@company.com"}, busy)

	busy, err = engine.CheckWindow(context.Background(), participants, "2025-03-13", 600, 60)
	require.NoError(t, err)
	assert.Empty(t, busy)
}

func TestFindSlotsSkipsBusyWindowsAndStaysInHours(t *testing.T) {
	repo := availabilityRepo.NewMemoryAvailabilityRepo()
	participants := trackedParticipants(repo, "a@company.com", "b@company.com")
	repo.AddBusy("a@company.com", "2025-03-13", 540, 600)

	engine := testEngine(repo, workHoursConfig())

	slots, err := engine.FindSlots(context.Background(), participants, "2025-03-13", 1, 60)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	// First free 60-minute bucket is 10:00 because the 9:00 block is busy
	// and 9:30-10:30 still overlaps it.
	assert.Equal(t, 600, slots[0].Start)
	assert.Equal(t, 660, slots[0].End)

	for i, slot := range slots {
		assert.GreaterOrEqual(t, slot.Start, 540)
		assert.LessOrEqual(t, slot.End, 1020)
		if i > 0 {
			assert.Greater(t, slot.Start, slots[i-1].Start)
		}
	}
}

func TestFindSlotsUnknownStatusFlag(t *testing.T) {
	repo := availabilityRepo.NewMemoryAvailabilityRepo()
	// No calendar at all: every lookup reports unknown.
	participants := []models.Participant{{Email: "ghost@company.com"}}

	permissive := workHoursConfig()
	engine := testEngine(repo, permissive)
	slots, err := engine.FindSlots(context.Background(), participants, "2025-03-13", 1, 60)
	require.NoError(t, err)
	assert.NotEmpty(t, slots)

	strict := workHoursConfig()
	strict.UnknownCountsAsAvailable = false
	engine = testEngine(repo, strict)
	slots, err = engine.FindSlots(context.Background(), participants, "2025-03-13", 1, 60)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestFindSlotsNeverEmitsPastBuckets(t *testing.T) {
	repo := availabilityRepo.NewMemoryAvailabilityRepo()
	participants := trackedParticipants(repo, "a@company.com")

	noon := time.Date(2025, 3, 13, 12, 0, 0, 0, time.UTC)
	engine := NewEngineWithClock(repo, workHoursConfig(), func() time.Time { return noon })

	slots, err := engine.FindSlots(context.Background(), participants, "2025-03-13", 1, 60)
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	assert.Equal(t, 750, slots[0].Start)
}

func TestAlternativesStartDayAfterAndOrder(t *testing.T) {
	repo := availabilityRepo.NewMemoryAvailabilityRepo()
	participants := trackedParticipants(repo, "a@company.com", "b@company.com")

	engine := testEngine(repo, workHoursConfig())

	slots, err := engine.Alternatives(context.Background(), participants, "2025-03-13", 2, 60)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	assert.Equal(t, "2025-03-14", slots[0].Date)
	assert.Equal(t, 540, slots[0].Start)
	for i := 1; i < len(slots); i++ {
		prev, cur := slots[i-1], slots[i]
		assert.True(t, prev.Date < cur.Date || (prev.Date == cur.Date && prev.Start < cur.Start))
	}
}

func TestAlternativesNoAvailability(t *testing.T) {
	repo := availabilityRepo.NewMemoryAvailabilityRepo()
	participants := trackedParticipants(repo, "a@company.com")
	repo.AddBusy("a@company.com", "2025-03-14", 0, 1440)
	repo.AddBusy("a@company.com", "2025-03-15", 0, 1440)

	engine := testEngine(repo, workHoursConfig())

	_, err := engine.Alternatives(context.Background(), participants, "2025-03-13", 2, 60)
	assert.ErrorIs(t, err, ErrNoAvailability)
}
