package models

// PayloadKind tags the shape of an assistant response so the shell knows
// which section of the payload to render.
type PayloadKind string

const (
	PayloadNotUnderstood       PayloadKind = "not_understood"
	PayloadParticipantMatches  PayloadKind = "participant_matches"
	PayloadTimeSlotSuggestions PayloadKind = "time_slot_suggestions"
	PayloadMeetingSummary      PayloadKind = "meeting_summary"
	PayloadConfirmationRequest PayloadKind = "confirmation_request"
	PayloadScheduled           PayloadKind = "scheduled"
	PayloadCancelled           PayloadKind = "cancelled"
	PayloadNoAvailability      PayloadKind = "no_availability"
)

// ConflictInfo describes why a requested window was rejected.
type ConflictInfo struct {
	Message          string   `json:"message"`
	BusyParticipants []string `json:"busyParticipants"`
}

// AssistantResponse is the single response envelope for every assistant
// operation. Exactly the fields implied by Kind are populated; the rest
// stay empty.
type AssistantResponse struct {
	SessionID string              `json:"sessionId"`
	Kind      PayloadKind         `json:"kind"`
	Message   string              `json:"message"`
	Matches   []ParticipantMatch  `json:"matches,omitempty"`
	Slots     []TimeSlotCandidate `json:"slots,omitempty"`
	Conflict  *ConflictInfo       `json:"conflict,omitempty"`
	Meeting   *MeetingDraft       `json:"meeting,omitempty"`
}
