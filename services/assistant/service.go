package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"smartmeet/config"
	"smartmeet/models"
	"smartmeet/services/parser"
	"smartmeet/services/scheduler"
	"smartmeet/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxSlotPreview caps how many suggested slots a single response carries.
// The session keeps the full list so selection indexes stay valid.
const maxSlotPreview = 5

// ProcessMessage starts (or restarts) a conversation from one free-text
// request. Low-confidence parses are bounced back without creating state.
func (s *DefaultAssistantService) ProcessMessage(ctx context.Context, sessionID, text string) (*models.AssistantResponse, error) {
	logger := utils.GetLogger()
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	parsed := s.Parser.Parse(text)
	if parsed.Confidence < models.MinimumConfidence || !parsed.HasParticipants() {
		logger.Info("request not understood",
			zap.String("sessionId", sessionID),
			zap.Float64("confidence", parsed.Confidence),
		)
		return &models.AssistantResponse{
			SessionID: sessionID,
			Kind:      models.PayloadNotUnderstood,
			Message:   `I couldn't understand that request. Try something like "Schedule a meeting with John tomorrow at 2pm".`,
		}, nil
	}

	matches, err := s.Resolver.Resolve(ctx, parsed.ParticipantNames, parsed.ParticipantEmails)
	if err != nil {
		return nil, fmt.Errorf("participant resolution failed: %w", err)
	}

	duration := parser.DurationMinutes(parsed.DurationMentioned)
	if duration <= 0 {
		duration = config.AppConfig.DefaultDurationMinutes
	}

	session := &models.ScheduleSession{
		SessionID:       sessionID,
		Parsed:          &parsed,
		Matches:         matches,
		DurationMinutes: duration,
	}

	coordinator := newCoordinator(session)
	coordinator.SeedAutoConfirmations()
	if coordinator.Finalized() {
		coordinator.Finalize()
		return s.proceedToScheduling(ctx, session)
	}

	if err := saveSession(ctx, session); err != nil {
		return nil, err
	}
	return &models.AssistantResponse{
		SessionID: session.SessionID,
		Kind:      models.PayloadParticipantMatches,
		Message:   "I need help identifying some of the people you mentioned.",
		Matches:   coordinator.Pending(),
	}, nil
}

// ConfirmParticipant records the identity picked for one ambiguous query
// and resumes scheduling once nothing is left pending.
func (s *DefaultAssistantService) ConfirmParticipant(ctx context.Context, sessionID, query, email string) (*models.AssistantResponse, error) {
	session, err := loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.AwaitingDisambiguation() {
		return nil, NewSessionError("session is not waiting for participant confirmation")
	}

	coordinator := newCoordinator(session)
	if err := coordinator.Confirm(query, email); err != nil {
		return nil, err
	}
	return s.resumeOrSave(ctx, session, coordinator)
}

// AddExternalParticipant resolves a query to an email outside the company
// directory. An empty query adds an extra invitee instead.
func (s *DefaultAssistantService) AddExternalParticipant(ctx context.Context, sessionID, query, email string) (*models.AssistantResponse, error) {
	session, err := loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.AwaitingDisambiguation() {
		return nil, NewSessionError("session is not waiting for participant confirmation")
	}

	coordinator := newCoordinator(session)
	if err := coordinator.AddExternal(query, email); err != nil {
		return nil, err
	}
	return s.resumeOrSave(ctx, session, coordinator)
}

func (s *DefaultAssistantService) resumeOrSave(ctx context.Context, session *models.ScheduleSession, coordinator *DisambiguationCoordinator) (*models.AssistantResponse, error) {
	if coordinator.Finalized() {
		coordinator.Finalize()
		return s.proceedToScheduling(ctx, session)
	}

	if err := saveSession(ctx, session); err != nil {
		return nil, err
	}
	return &models.AssistantResponse{
		SessionID: session.SessionID,
		Kind:      models.PayloadParticipantMatches,
		Message:   "A few more people still need confirmation.",
		Matches:   coordinator.Pending(),
	}, nil
}

// SelectSlot turns one of the suggested slots into the meeting draft.
func (s *DefaultAssistantService) SelectSlot(ctx context.Context, sessionID string, slotIndex int) (*models.AssistantResponse, error) {
	session, err := loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.AwaitingSlotSelection() {
		return nil, NewSessionError("session has no slot suggestions to select from")
	}
	if slotIndex < 0 || slotIndex >= len(session.SuggestedSlots) {
		return nil, NewSessionError(fmt.Sprintf("slot index %d out of range", slotIndex))
	}

	slot := session.SuggestedSlots[slotIndex]
	start, err := slot.StartTime(s.now().Location())
	if err != nil {
		return nil, err
	}

	session.Draft = s.buildDraft(session, &start)
	session.SuggestedSlots = nil
	if err := saveSession(ctx, session); err != nil {
		return nil, err
	}
	return s.confirmationResponse(session), nil
}

// ScheduleMeeting commits the drafted meeting to the store. The save is an
// upsert on the draft ID, so retrying after a store failure is safe.
func (s *DefaultAssistantService) ScheduleMeeting(ctx context.Context, sessionID string) (*models.AssistantResponse, error) {
	session, err := loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Draft == nil {
		return nil, NewSessionError("session has no drafted meeting to schedule")
	}

	logger := utils.GetLogger()
	draft := *session.Draft
	draft.Status = models.MeetingScheduled
	draft.UpdatedAt = s.now()

	if err := s.Meetings.Save(ctx, draft); err != nil {
		return nil, &StoreError{Message: fmt.Sprintf("failed to save meeting %s", draft.ID), Err: err}
	}

	if err := s.Notifier.NotifyMeetingScheduled(ctx, draft); err != nil {
		logger.Warn("scheduled notification failed", zap.String("meetingId", draft.ID), zap.Error(err))
	}
	if s.Reminders != nil {
		if err := s.Reminders.ScheduleMeetingReminder(ctx, draft); err != nil {
			logger.Warn("reminder enqueue failed", zap.String("meetingId", draft.ID), zap.Error(err))
		}
	}

	deleteSession(ctx, sessionID)
	logger.Info("meeting scheduled", zap.String("meetingId", draft.ID), zap.String("sessionId", sessionID))

	return &models.AssistantResponse{
		SessionID: sessionID,
		Kind:      models.PayloadScheduled,
		Message:   fmt.Sprintf("%q has been scheduled.", draft.Title),
		Meeting:   &draft,
	}, nil
}

// RequestTimeChange discards the drafted start time and searches the days
// after it for alternatives.
func (s *DefaultAssistantService) RequestTimeChange(ctx context.Context, sessionID string) (*models.AssistantResponse, error) {
	session, err := loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Draft == nil || session.Draft.StartTime == nil {
		return nil, NewSessionError("session has no drafted meeting time to change")
	}

	afterDate := session.Draft.StartTime.Format("2006-01-02")
	slots, err := s.Engine.Alternatives(ctx, session.Participants, afterDate, config.AppConfig.RescheduleSearchDays, session.DurationMinutes)
	if errors.Is(err, scheduler.ErrNoAvailability) {
		return s.noAvailabilityResponse(ctx, session, nil)
	}
	if err != nil {
		return nil, err
	}

	session.Draft = nil
	session.SuggestedSlots = slots
	if err := saveSession(ctx, session); err != nil {
		return nil, err
	}
	return s.suggestionResponse(session, "Here are some other times when everyone is free.", nil), nil
}

// CancelSession discards the conversation. Already-scheduled meetings are
// untouched.
func (s *DefaultAssistantService) CancelSession(ctx context.Context, sessionID string) (*models.AssistantResponse, error) {
	deleteSession(ctx, sessionID)
	return &models.AssistantResponse{
		SessionID: sessionID,
		Kind:      models.PayloadCancelled,
		Message:   "Okay, I've cancelled that request.",
	}, nil
}

// proceedToScheduling runs the availability step once participants are
// final: either validate the requested window or sweep for suggestions.
func (s *DefaultAssistantService) proceedToScheduling(ctx context.Context, session *models.ScheduleSession) (*models.AssistantResponse, error) {
	parsed := session.Parsed

	targetDate := parsed.DateMentioned
	if targetDate == "" {
		targetDate = s.now().Format("2006-01-02")
	}

	if parsed.TimeMentioned != "" {
		startMin, err := parser.ParseClock(parsed.TimeMentioned)
		if err != nil {
			return nil, err
		}

		busy, err := s.Engine.CheckWindow(ctx, session.Participants, targetDate, startMin, session.DurationMinutes)
		if err != nil {
			return nil, err
		}
		if len(busy) == 0 {
			start, err := time.ParseInLocation("2006-01-02", targetDate, s.now().Location())
			if err != nil {
				return nil, fmt.Errorf("invalid meeting date %q: %w", targetDate, err)
			}
			startAt := start.Add(time.Duration(startMin) * time.Minute)

			session.Draft = s.buildDraft(session, &startAt)
			if err := saveSession(ctx, session); err != nil {
				return nil, err
			}
			return s.confirmationResponse(session), nil
		}

		conflict := &models.ConflictInfo{
			Message:          fmt.Sprintf("%s busy at that time.", busySummary(busy)),
			BusyParticipants: busy,
		}
		slots, err := s.Engine.Alternatives(ctx, session.Participants, targetDate, config.AppConfig.ConflictSearchDays, session.DurationMinutes)
		if errors.Is(err, scheduler.ErrNoAvailability) {
			return s.noAvailabilityResponse(ctx, session, conflict)
		}
		if err != nil {
			return nil, err
		}

		session.SuggestedSlots = slots
		if err := saveSession(ctx, session); err != nil {
			return nil, err
		}
		return s.suggestionResponse(session, "That time doesn't work for everyone. Here are some alternatives.", conflict), nil
	}

	slots, err := s.Engine.FindSlots(ctx, session.Participants, targetDate, 1, session.DurationMinutes)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return s.noAvailabilityResponse(ctx, session, nil)
	}

	session.SuggestedSlots = slots
	if err := saveSession(ctx, session); err != nil {
		return nil, err
	}
	return s.suggestionResponse(session, "Here are some times when everyone is free.", nil), nil
}

func (s *DefaultAssistantService) confirmationResponse(session *models.ScheduleSession) *models.AssistantResponse {
	draft := session.Draft
	when := ""
	if draft.StartTime != nil {
		when = fmt.Sprintf(" for %s on %s", draft.StartTime.Format("3:04 PM"), draft.StartTime.Format("Monday, January 2"))
	}
	return &models.AssistantResponse{
		SessionID: session.SessionID,
		Kind:      models.PayloadConfirmationRequest,
		Message:   fmt.Sprintf("Everyone is free%s. Confirm to schedule %q.", when, draft.Title),
		Meeting:   draft,
	}
}

func (s *DefaultAssistantService) suggestionResponse(session *models.ScheduleSession, message string, conflict *models.ConflictInfo) *models.AssistantResponse {
	preview := session.SuggestedSlots
	if len(preview) > maxSlotPreview {
		preview = preview[:maxSlotPreview]
	}
	return &models.AssistantResponse{
		SessionID: session.SessionID,
		Kind:      models.PayloadTimeSlotSuggestions,
		Message:   message,
		Slots:     preview,
		Conflict:  conflict,
	}
}

func (s *DefaultAssistantService) noAvailabilityResponse(ctx context.Context, session *models.ScheduleSession, conflict *models.ConflictInfo) (*models.AssistantResponse, error) {
	if err := saveSession(ctx, session); err != nil {
		return nil, err
	}
	return &models.AssistantResponse{
		SessionID: session.SessionID,
		Kind:      models.PayloadNoAvailability,
		Message:   "I couldn't find a time when everyone is free. Try a different date.",
		Conflict:  conflict,
	}, nil
}

// buildDraft assembles the meeting draft from session state. The draft ID
// is minted once and reused across save retries.
func (s *DefaultAssistantService) buildDraft(session *models.ScheduleSession, start *time.Time) *models.MeetingDraft {
	id := uuid.New().String()
	created := s.now()
	if session.Draft != nil {
		id = session.Draft.ID
		created = session.Draft.CreatedAt
	}

	parsed := session.Parsed
	return &models.MeetingDraft{
		ID:              id,
		Title:           meetingTitle(parsed.Title, session.Participants),
		Description:     parsed.Description,
		Participants:    session.Participants,
		StartTime:       start,
		DurationMinutes: session.DurationMinutes,
		Priority:        meetingPriority(parsed.PriorityMentioned),
		Status:          models.MeetingDraftStatus,
		CreatedAt:       created,
		UpdatedAt:       s.now(),
	}
}

// meetingTitle keeps an explicit title and otherwise derives one from the
// invitee list.
func meetingTitle(parsed string, participants []models.Participant) string {
	if parsed != "" && parsed != "New Meeting" {
		return parsed
	}
	switch len(participants) {
	case 0:
		return "New Meeting"
	case 1:
		return fmt.Sprintf("Meeting with %s", participants[0].Name)
	case 2:
		return fmt.Sprintf("Meeting with %s and %s", participants[0].Name, participants[1].Name)
	default:
		return fmt.Sprintf("Team Meeting (%d participants)", len(participants))
	}
}

func meetingPriority(mentioned string) models.Priority {
	switch mentioned {
	case "urgent":
		return models.PriorityUrgent
	case "high":
		return models.PriorityHigh
	case "low":
		return models.PriorityLow
	default:
		return models.PriorityMedium
	}
}

func busySummary(busy []string) string {
	switch len(busy) {
	case 1:
		return busy[0] + " is"
	default:
		return strings.Join(busy, ", ") + " are"
	}
}
