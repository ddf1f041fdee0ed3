package models

// ReminderPayload is the queued reminder task body. FireDate is the
// human-readable meeting start, carried so the notification can be built
// without a store lookup at delivery time.
type ReminderPayload struct {
	MeetingID  string   `json:"meetingId"`
	Title      string   `json:"title"`
	Body       string   `json:"body"`
	FireDate   string   `json:"fireDate"`
	Recipients []string `json:"recipients"`
}
