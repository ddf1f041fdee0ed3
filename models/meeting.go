package models

import "time"

// Priority of a meeting draft.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// MeetingStatus tracks the draft lifecycle: draft until the user confirms,
// scheduled once handed to the store, cancelled when discarded.
type MeetingStatus string

const (
	MeetingDraftStatus MeetingStatus = "draft"
	MeetingScheduled   MeetingStatus = "scheduled"
	MeetingCancelled   MeetingStatus = "cancelled"
)

// MeetingDraft is the meeting being assembled for one request. ID is
// assigned when the draft is created and stays stable across save retries.
type MeetingDraft struct {
	ID              string        `bson:"id" json:"id"`
	Title           string        `bson:"title" json:"title"`
	Description     string        `bson:"description,omitempty" json:"description,omitempty"`
	Organizer       string        `bson:"organizer,omitempty" json:"organizer,omitempty"`
	Participants    []Participant `bson:"participants" json:"participants"`
	StartTime       *time.Time    `bson:"startTime,omitempty" json:"startTime,omitempty"`
	DurationMinutes int           `bson:"durationMinutes" json:"durationMinutes"`
	Priority        Priority      `bson:"priority" json:"priority"`
	Status          MeetingStatus `bson:"status" json:"status"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// EndTime returns the draft end, or false when no start time is set.
func (m MeetingDraft) EndTime() (time.Time, bool) {
	if m.StartTime == nil {
		return time.Time{}, false
	}
	return m.StartTime.Add(time.Duration(m.DurationMinutes) * time.Minute), true
}

// ParticipantEmails returns the invitee emails in order.
func (m MeetingDraft) ParticipantEmails() []string {
	emails := make([]string, 0, len(m.Participants))
	for _, p := range m.Participants {
		emails = append(emails, p.Email)
	}
	return emails
}
