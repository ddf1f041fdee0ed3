package models

// ParsedRequest is the structured form of one free-text scheduling
// utterance. It is produced once by the parser and never mutated afterwards.
// Dates use the "2006-01-02" wire format, times the "3:04 PM" clock format,
// matching what the rest of the engine consumes.
type ParsedRequest struct {
	OriginalText      string   `json:"originalText"`
	Title             string   `json:"title,omitempty"`
	ParticipantNames  []string `json:"participantNames,omitempty"`
	ParticipantEmails []string `json:"participantEmails,omitempty"`
	DateMentioned     string   `json:"dateMentioned,omitempty"`
	TimeMentioned     string   `json:"timeMentioned,omitempty"`
	DurationMentioned string   `json:"durationMentioned,omitempty"`
	PriorityMentioned string   `json:"priorityMentioned,omitempty"`
	Description       string   `json:"description,omitempty"`
	Confidence        float64  `json:"confidence"`
}

// MinimumConfidence is the threshold below which a parse is treated as
// "not understood" by callers.
const MinimumConfidence = 0.3

// Queries returns all participant queries (names then emails) that must be
// resolved before the request can proceed.
func (p ParsedRequest) Queries() []string {
	out := make([]string, 0, len(p.ParticipantNames)+len(p.ParticipantEmails))
	out = append(out, p.ParticipantNames...)
	out = append(out, p.ParticipantEmails...)
	return out
}

// HasParticipants reports whether the parser found anyone to invite.
func (p ParsedRequest) HasParticipants() bool {
	return len(p.ParticipantNames) > 0 || len(p.ParticipantEmails) > 0
}
