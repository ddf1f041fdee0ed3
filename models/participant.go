package models

// AvailabilityStatus is the closed set of states a participant's calendar
// can report for a time window.
type AvailabilityStatus string

const (
	StatusAvailable AvailabilityStatus = "available"
	StatusBusy      AvailabilityStatus = "busy"
	StatusUnknown   AvailabilityStatus = "unknown"
)

// Participant is a directory identity. Email is the unique key.
type Participant struct {
	Email              string             `bson:"email" json:"email"`
	Name               string             `bson:"name" json:"name"`
	Department         string             `bson:"department,omitempty" json:"department,omitempty"`
	Title              string             `bson:"title,omitempty" json:"title,omitempty"`
	AvailabilityStatus AvailabilityStatus `bson:"availabilityStatus" json:"availabilityStatus"`
}

// DedupeParticipants removes duplicate identities by email, preserving the
// first-seen order.
func DedupeParticipants(in []Participant) []Participant {
	seen := make(map[string]struct{}, len(in))
	out := make([]Participant, 0, len(in))
	for _, p := range in {
		if _, ok := seen[p.Email]; ok {
			continue
		}
		seen[p.Email] = struct{}{}
		out = append(out, p)
	}
	return out
}
