package models

// ScheduleSession holds everything in flight for one conversation between
// parsing a request and committing (or discarding) the resulting meeting.
// It is serialized as a single blob into the session cache; concurrent
// conversations use disjoint sessions. Deleting the session at any point
// cancels the attempt without touching already-scheduled meetings.
type ScheduleSession struct {
	SessionID       string                 `json:"sessionId"`
	Parsed          *ParsedRequest         `json:"parsed,omitempty"`
	Matches         []ParticipantMatch     `json:"matches,omitempty"`
	Confirmations   map[string]Participant `json:"confirmations,omitempty"`
	Participants    []Participant          `json:"participants,omitempty"`
	SuggestedSlots  []TimeSlotCandidate    `json:"suggestedSlots,omitempty"`
	DurationMinutes int                    `json:"durationMinutes,omitempty"`
	Draft           *MeetingDraft          `json:"draft,omitempty"`
}

// AwaitingDisambiguation reports whether the session is suspended waiting
// for the user to confirm participant queries.
func (s *ScheduleSession) AwaitingDisambiguation() bool {
	return s.Parsed != nil && len(s.Matches) > 0 && s.Draft == nil && len(s.Participants) == 0
}

// AwaitingSlotSelection reports whether the session is suspended waiting
// for the user to pick one of the suggested slots.
func (s *ScheduleSession) AwaitingSlotSelection() bool {
	return len(s.SuggestedSlots) > 0 && s.Draft == nil
}
