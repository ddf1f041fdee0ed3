package resolver

import (
	"fmt"
	"regexp"
	"strings"

	"smartmeet/models"
)

// ValidationError reports a malformed external participant email. It is
// surfaced to the user and never retried internally.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var emailSyntax = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsValidEmail checks RFC-light email syntax.
func IsValidEmail(email string) bool {
	return emailSyntax.MatchString(strings.TrimSpace(email))
}

// ExternalParticipant builds an identity for someone outside the company
// directory. The display name is derived from the local part.
func ExternalParticipant(email string) (models.Participant, error) {
	email = strings.TrimSpace(email)
	if !IsValidEmail(email) {
		return models.Participant{}, &ValidationError{
			Field:   "email",
			Message: fmt.Sprintf("invalid email format: %s", email),
		}
	}
	return models.Participant{
		Email:              email,
		Name:               nameFromEmail(email),
		Department:         "External",
		Title:              "External Participant",
		AvailabilityStatus: models.StatusUnknown,
	}, nil
}

// synthesizeIdentity creates the placeholder identity for a syntactically
// valid email the directory does not know.
func synthesizeIdentity(email string) models.Participant {
	return models.Participant{
		Email:              email,
		Name:               nameFromEmail(email),
		AvailabilityStatus: models.StatusUnknown,
	}
}

// nameFromEmail turns "jane.van_dam@x.io" into "Jane Van Dam".
func nameFromEmail(email string) string {
	local := email
	if at := strings.Index(email, "@"); at >= 0 {
		local = email[:at]
	}
	local = strings.NewReplacer(".", " ", "_", " ").Replace(local)

	words := strings.Fields(local)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
