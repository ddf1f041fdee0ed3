package assistant

import (
	"context"
	"time"

	meetingRepo "smartmeet/database/repository/meeting"
	"smartmeet/models"
	"smartmeet/services/notification"
	"smartmeet/services/parser"
	"smartmeet/services/resolver"
	"smartmeet/services/scheduler"
	"smartmeet/services/tasks"
)

// AssistantService sequences one scheduling conversation: parse, resolve,
// disambiguate, search, commit. Every operation returns a response envelope
// telling the shell what to render next.
type AssistantService interface {
	ProcessMessage(ctx context.Context, sessionID, text string) (*models.AssistantResponse, error)
	ConfirmParticipant(ctx context.Context, sessionID, query, email string) (*models.AssistantResponse, error)
	AddExternalParticipant(ctx context.Context, sessionID, query, email string) (*models.AssistantResponse, error)
	SelectSlot(ctx context.Context, sessionID string, slotIndex int) (*models.AssistantResponse, error)
	ScheduleMeeting(ctx context.Context, sessionID string) (*models.AssistantResponse, error)
	RequestTimeChange(ctx context.Context, sessionID string) (*models.AssistantResponse, error)
	CancelSession(ctx context.Context, sessionID string) (*models.AssistantResponse, error)
}

// DefaultAssistantService implements AssistantService.
type DefaultAssistantService struct {
	Parser    *parser.Parser
	Resolver  *resolver.Resolver
	Engine    *scheduler.Engine
	Meetings  meetingRepo.Repository
	Notifier  notification.NotificationService
	Reminders tasks.ReminderScheduler

	now func() time.Time
}

// NewDefaultAssistantService wires the assistant with the wall clock.
func NewDefaultAssistantService(
	p *parser.Parser,
	r *resolver.Resolver,
	e *scheduler.Engine,
	meetings meetingRepo.Repository,
	notifier notification.NotificationService,
	reminders tasks.ReminderScheduler,
) *DefaultAssistantService {
	return &DefaultAssistantService{
		Parser:    p,
		Resolver:  r,
		Engine:    e,
		Meetings:  meetings,
		Notifier:  notifier,
		Reminders: reminders,
		now:       time.Now,
	}
}

// WithClock overrides the assistant clock.
func (s *DefaultAssistantService) WithClock(now func() time.Time) *DefaultAssistantService {
	s.now = now
	return s
}
