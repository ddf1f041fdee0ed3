package notification

import (
	"context"
	"fmt"

	"smartmeet/models"
	"smartmeet/utils"

	"go.uber.org/zap"
)

// NotificationService defines the outbound notices the assistant emits when
// a meeting changes state or a reminder fires.
type NotificationService interface {
	NotifyMeetingScheduled(ctx context.Context, meeting models.MeetingDraft) error
	NotifyMeetingCancelled(ctx context.Context, meeting models.MeetingDraft) error
	SendReminder(ctx context.Context, payload models.ReminderPayload) error
}

// DefaultNotificationService writes notices to the structured log. There is
// no push or mail transport wired; a real channel plugs in behind the same
// interface.
type DefaultNotificationService struct{}

func NewDefaultNotificationService() *DefaultNotificationService {
	return &DefaultNotificationService{}
}

func (s *DefaultNotificationService) NotifyMeetingScheduled(ctx context.Context, meeting models.MeetingDraft) error {
	logger := utils.GetLogger()
	logger.Info("meeting scheduled",
		zap.String("meetingId", meeting.ID),
		zap.String("title", meeting.Title),
		zap.Strings("participants", meeting.ParticipantEmails()),
	)
	return nil
}

func (s *DefaultNotificationService) NotifyMeetingCancelled(ctx context.Context, meeting models.MeetingDraft) error {
	logger := utils.GetLogger()
	logger.Info("meeting cancelled",
		zap.String("meetingId", meeting.ID),
		zap.String("title", meeting.Title),
	)
	return nil
}

func (s *DefaultNotificationService) SendReminder(ctx context.Context, payload models.ReminderPayload) error {
	if len(payload.Recipients) == 0 {
		return fmt.Errorf("SendReminder: meeting %s has no recipients", payload.MeetingID)
	}
	logger := utils.GetLogger()
	logger.Info("reminder fired",
		zap.String("meetingId", payload.MeetingID),
		zap.String("title", payload.Title),
		zap.String("fireDate", payload.FireDate),
		zap.Strings("recipients", payload.Recipients),
	)
	return nil
}
