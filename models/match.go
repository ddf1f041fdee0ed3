package models

// MaxMatchCandidates caps how many candidates a single query may carry.
const MaxMatchCandidates = 10

// MaxSelectableCandidates caps how many candidates the shell offers for
// selection during disambiguation, regardless of how many were matched.
const MaxSelectableCandidates = 5

// ParticipantMatch is the resolution result for a single name or email
// query. Candidates are ordered best-first and deduplicated by email.
type ParticipantMatch struct {
	Query        string        `json:"query"`
	Candidates   []Participant `json:"candidates"`
	Confidence   float64       `json:"confidence"`
	IsExact      bool          `json:"isExact"`
	IsEmailQuery bool          `json:"isEmailQuery"`
}

// NeedsConfirmation reports whether the match is ambiguous enough that the
// user has to pick or confirm a candidate before scheduling can continue.
func (m ParticipantMatch) NeedsConfirmation() bool {
	return !m.IsExact || len(m.Candidates) > 1
}

// Best returns the top-ranked candidate, or false when there is none.
func (m ParticipantMatch) Best() (Participant, bool) {
	if len(m.Candidates) == 0 {
		return Participant{}, false
	}
	return m.Candidates[0], true
}
