package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"smartmeet/config"
	"smartmeet/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// NewReminderTask builds a delayed reminder task for the queue.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderScheduler enqueues the pre-meeting reminder for a scheduled
// meeting. Implementations must tolerate meetings starting too soon for a
// reminder by skipping silently.
type ReminderScheduler interface {
	ScheduleMeetingReminder(ctx context.Context, meeting models.MeetingDraft) error
}

// AsynqReminderScheduler enqueues reminders onto the asynq queue backed by
// the reminder Redis DB.
type AsynqReminderScheduler struct {
	Client *asynq.Client
}

// NewAsynqReminderScheduler builds a scheduler from the app Redis config.
func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &AsynqReminderScheduler{Client: client}
}

// ScheduleMeetingReminder enqueues a reminder to fire the configured lead
// time before the meeting starts. Meetings without a start time, or starting
// before the reminder could fire, are skipped without error.
func (s *AsynqReminderScheduler) ScheduleMeetingReminder(ctx context.Context, meeting models.MeetingDraft) error {
	if meeting.StartTime == nil {
		return nil
	}

	fireAt := meeting.StartTime.Add(-time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		MeetingID:  meeting.ID,
		Title:      meeting.Title,
		Body:       fmt.Sprintf("%q starts at %s", meeting.Title, meeting.StartTime.Format("3:04 PM")),
		FireDate:   meeting.StartTime.Format(time.RFC3339),
		Recipients: meeting.ParticipantEmails(),
	}

	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}
