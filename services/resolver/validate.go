package resolver

import (
	"strings"

	"smartmeet/models"
)

// ParticipantIssues lists the problems found in a finalized participant list.
type ParticipantIssues struct {
	InvalidEmails []string `json:"invalidEmails,omitempty"`
	Duplicates    []string `json:"duplicates,omitempty"`
	MissingNames  []string `json:"missingNames,omitempty"`
}

// Empty reports whether the list passed every check.
func (i ParticipantIssues) Empty() bool {
	return len(i.InvalidEmails) == 0 && len(i.Duplicates) == 0 && len(i.MissingNames) == 0
}

// ValidateParticipants checks a participant list for malformed emails,
// duplicate entries, and missing display names.
func ValidateParticipants(participants []models.Participant) ParticipantIssues {
	var issues ParticipantIssues
	seen := make(map[string]struct{}, len(participants))

	for _, p := range participants {
		if !IsValidEmail(p.Email) {
			issues.InvalidEmails = append(issues.InvalidEmails, p.Email)
		}
		key := strings.ToLower(p.Email)
		if _, dup := seen[key]; dup {
			issues.Duplicates = append(issues.Duplicates, p.Email)
		} else {
			seen[key] = struct{}{}
		}
		if strings.TrimSpace(p.Name) == "" {
			issues.MissingNames = append(issues.MissingNames, p.Email)
		}
	}
	return issues
}
