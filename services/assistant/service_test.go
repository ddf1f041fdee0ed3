package assistant

import (
	"context"
	"testing"
	"time"

	"smartmeet/config"
	availabilityRepo "smartmeet/database/repository/availability"
	directoryRepo "smartmeet/database/repository/directory"
	meetingRepo "smartmeet/database/repository/meeting"
	"smartmeet/models"
	"smartmeet/services/notification"
	"smartmeet/services/parser"
	"smartmeet/services/resolver"
	"smartmeet/services/scheduler"
	"smartmeet/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var assistantNow = time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC)

// fakeReminder records enqueued reminders instead of talking to a queue.
type fakeReminder struct {
	meetings []models.MeetingDraft
}

func (f *fakeReminder) ScheduleMeetingReminder(ctx context.Context, meeting models.MeetingDraft) error {
	f.meetings = append(f.meetings, meeting)
	return nil
}

func setupAssistant(t *testing.T, directory []models.Participant, avail *availabilityRepo.MemoryAvailabilityRepo) (*DefaultAssistantService, *meetingRepo.MemoryMeetingRepo, *fakeReminder) {
	t.Helper()

	mr := miniredis.RunT(t)
	utils.SessionCacheClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	config.AppConfig.DefaultDurationMinutes = 60
	config.AppConfig.ConflictSearchDays = 2
	config.AppConfig.RescheduleSearchDays = 3
	config.AppConfig.SessionTTLMinutes = 30

	clock := func() time.Time { return assistantNow }
	engine := scheduler.NewEngineWithClock(avail, scheduler.Config{
		WorkDayStartMin:          540,
		WorkDayEndMin:            1020,
		BucketMinutes:            30,
		UnknownCountsAsAvailable: true,
	}, clock)

	meetings := meetingRepo.NewMemoryMeetingRepo()
	reminders := &fakeReminder{}

	svc := NewDefaultAssistantService(
		parser.NewWithClock(clock),
		resolver.NewResolver(directoryRepo.NewMemoryDirectoryRepo(directory)),
		engine,
		meetings,
		notification.NewDefaultNotificationService(),
		reminders,
	).WithClock(clock)

	return svc, meetings, reminders
}

func plainDirectory() []models.Participant {
	return []models.Participant{
		{Email: "john@company.com", Name: "John", AvailabilityStatus: models.StatusAvailable},
		{Email: "sarah@company.com", Name: "Sarah", AvailabilityStatus: models.StatusAvailable},
	}
}

func trackedAvailability(emails ...string) *availabilityRepo.MemoryAvailabilityRepo {
	repo := availabilityRepo.NewMemoryAvailabilityRepo()
	for _, email := range emails {
		repo.Track(email)
	}
	return repo
}

func TestProcessMessageNotUnderstood(t *testing.T) {
	svc, _, _ := setupAssistant(t, plainDirectory(), trackedAvailability())

	resp, err := svc.ProcessMessage(context.Background(), "", "zzz")
	require.NoError(t, err)
	assert.Equal(t, models.PayloadNotUnderstood, resp.Kind)
	assert.NotEmpty(t, resp.SessionID)
}

func TestProcessMessageHappyPathToScheduled(t *testing.T) {
	avail := trackedAvailability("john@company.com", "sarah@company.com")
	svc, meetings, reminders := setupAssistant(t, plainDirectory(), avail)

	resp, err := svc.ProcessMessage(context.Background(), "",
		"Schedule a meeting with John and Sarah tomorrow at 2pm for 1 hour")
	require.NoError(t, err)
	require.Equal(t, models.PayloadConfirmationRequest, resp.Kind)
	require.NotNil(t, resp.Meeting)

	draft := resp.Meeting
	require.NotNil(t, draft.StartTime)
	assert.Equal(t, time.Date(2025, 3, 13, 14, 0, 0, 0, time.UTC), *draft.StartTime)
	assert.Equal(t, 60, draft.DurationMinutes)
	assert.Len(t, draft.Participants, 2)
	assert.Equal(t, models.MeetingDraftStatus, draft.Status)

	scheduled, err := svc.ScheduleMeeting(context.Background(), resp.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.PayloadScheduled, scheduled.Kind)
	assert.Equal(t, draft.ID, scheduled.Meeting.ID)
	assert.Equal(t, models.MeetingScheduled, scheduled.Meeting.Status)

	stored, err := meetings.GetByID(context.Background(), draft.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, models.MeetingScheduled, stored.Status)

	require.Len(t, reminders.meetings, 1)
	assert.Equal(t, draft.ID, reminders.meetings[0].ID)

	// The session is gone once the meeting is committed.
	_, err = svc.ScheduleMeeting(context.Background(), resp.SessionID)
	var sessionErr *SessionError
	assert.ErrorAs(t, err, &sessionErr)
}

func TestProcessMessageDisambiguationFlow(t *testing.T) {
	directory := directoryRepo.CompanyDirectoryFixture()
	avail := trackedAvailability("john.smith@company.com")
	svc, _, _ := setupAssistant(t, directory, avail)

	resp, err := svc.ProcessMessage(context.Background(), "",
		"Schedule a meeting with John tomorrow at 2pm for 1 hour")
	require.NoError(t, err)
	require.Equal(t, models.PayloadParticipantMatches, resp.Kind)
	require.NotEmpty(t, resp.Matches)
	assert.Equal(t, "John", resp.Matches[0].Query)

	confirmed, err := svc.ConfirmParticipant(context.Background(), resp.SessionID, "John", "john.smith@company.com")
	require.NoError(t, err)
	require.Equal(t, models.PayloadConfirmationRequest, confirmed.Kind)
	require.NotNil(t, confirmed.Meeting)
	assert.Equal(t, []string{"john.smith@company.com"}, confirmed.Meeting.ParticipantEmails())
}

func TestProcessMessageConflictSuggestsAlternatives(t *testing.T) {
	avail := trackedAvailability("john@company.com", "sarah@company.com")
	avail.AddBusy("john@company.com", "2025-03-13", 840, 900)
	svc, _, _ := setupAssistant(t, plainDirectory(), avail)

	resp, err := svc.ProcessMessage(context.Background(), "",
		"Schedule a meeting with John and Sarah tomorrow at 2pm for 1 hour")
	require.NoError(t, err)
	require.Equal(t, models.PayloadTimeSlotSuggestions, resp.Kind)
	require.NotNil(t, resp.Conflict)
	assert.Equal(t, []string{"john@company.com"}, resp.Conflict.BusyParticipants)

	require.NotEmpty(t, resp.Slots)
	assert.LessOrEqual(t, len(resp.Slots), 5)
	// Alternatives start the day after the conflicted date.
	assert.Equal(t, "2025-03-14", resp.Slots[0].Date)

	selected, err := svc.SelectSlot(context.Background(), resp.SessionID, 0)
	require.NoError(t, err)
	require.Equal(t, models.PayloadConfirmationRequest, selected.Kind)
	require.NotNil(t, selected.Meeting.StartTime)
	assert.Equal(t, time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC), *selected.Meeting.StartTime)
}

func TestProcessMessageNoTimeSweepsTargetDay(t *testing.T) {
	avail := trackedAvailability("john@company.com", "sarah@company.com")
	svc, _, _ := setupAssistant(t, plainDirectory(), avail)

	resp, err := svc.ProcessMessage(context.Background(), "",
		"Schedule a meeting with John and Sarah tomorrow")
	require.NoError(t, err)
	require.Equal(t, models.PayloadTimeSlotSuggestions, resp.Kind)
	assert.Nil(t, resp.Conflict)
	require.NotEmpty(t, resp.Slots)
	for _, slot := range resp.Slots {
		assert.Equal(t, "2025-03-13", slot.Date)
	}
}

func TestAddExternalParticipantFlow(t *testing.T) {
	avail := trackedAvailability()
	svc, _, _ := setupAssistant(t, plainDirectory(), avail)

	resp, err := svc.ProcessMessage(context.Background(), "",
		"Schedule a meeting with Zyxwv tomorrow at 2pm for 1 hour")
	require.NoError(t, err)
	require.Equal(t, models.PayloadParticipantMatches, resp.Kind)
	require.NotEmpty(t, resp.Matches)
	assert.Empty(t, resp.Matches[0].Candidates)

	_, err = svc.AddExternalParticipant(context.Background(), resp.SessionID, "Zyxwv", "broken")
	var validationErr *resolver.ValidationError
	require.ErrorAs(t, err, &validationErr)

	confirmed, err := svc.AddExternalParticipant(context.Background(), resp.SessionID, "Zyxwv", "zyx@partner.io")
	require.NoError(t, err)
	require.Equal(t, models.PayloadConfirmationRequest, confirmed.Kind)
	assert.Equal(t, []string{"zyx@partner.io"}, confirmed.Meeting.ParticipantEmails())
}

func TestRequestTimeChange(t *testing.T) {
	avail := trackedAvailability("john@company.com", "sarah@company.com")
	svc, _, _ := setupAssistant(t, plainDirectory(), avail)

	resp, err := svc.ProcessMessage(context.Background(), "",
		"Schedule a meeting with John and Sarah tomorrow at 2pm for 1 hour")
	require.NoError(t, err)
	require.Equal(t, models.PayloadConfirmationRequest, resp.Kind)

	changed, err := svc.RequestTimeChange(context.Background(), resp.SessionID)
	require.NoError(t, err)
	require.Equal(t, models.PayloadTimeSlotSuggestions, changed.Kind)
	require.NotEmpty(t, changed.Slots)
	assert.Equal(t, "2025-03-14", changed.Slots[0].Date)

	// The draft was discarded, so committing now fails.
	_, err = svc.ScheduleMeeting(context.Background(), resp.SessionID)
	var sessionErr *SessionError
	assert.ErrorAs(t, err, &sessionErr)
}

func TestCancelSessionDiscardsState(t *testing.T) {
	avail := trackedAvailability("john@company.com", "sarah@company.com")
	svc, meetings, _ := setupAssistant(t, plainDirectory(), avail)

	resp, err := svc.ProcessMessage(context.Background(), "",
		"Schedule a meeting with John and Sarah tomorrow at 2pm for 1 hour")
	require.NoError(t, err)

	cancelled, err := svc.CancelSession(context.Background(), resp.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.PayloadCancelled, cancelled.Kind)

	_, err = svc.ScheduleMeeting(context.Background(), resp.SessionID)
	var sessionErr *SessionError
	assert.ErrorAs(t, err, &sessionErr)

	stored, err := meetings.ListByDateRange(context.Background(), "2025-03-12", "2025-03-20")
	require.NoError(t, err)
	assert.Empty(t, stored)
}
