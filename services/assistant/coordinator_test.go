package assistant

import (
	"testing"

	"smartmeet/models"
	"smartmeet/services/resolver"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ambiguousSession() *models.ScheduleSession {
	return &models.ScheduleSession{
		SessionID: "s1",
		Parsed: &models.ParsedRequest{
			ParticipantNames:  []string{"John"},
			ParticipantEmails: []string{"maria.garcia@company.com"},
		},
		Matches: []models.ParticipantMatch{
			{
				Query: "John",
				Candidates: []models.Participant{
					{Email: "john.smith@company.com", Name: "John Smith"},
					{Email: "john.brown@company.com", Name: "John Brown"},
				},
				Confidence: 0.7,
			},
			{
				Query: "maria.garcia@company.com",
				Candidates: []models.Participant{
					{Email: "maria.garcia@company.com", Name: "Maria Garcia"},
				},
				Confidence:   1.0,
				IsExact:      true,
				IsEmailQuery: true,
			},
		},
	}
}

func TestCoordinatorSeedsUnambiguousMatches(t *testing.T) {
	session := ambiguousSession()
	c := newCoordinator(session)
	c.SeedAutoConfirmations()

	assert.False(t, c.Finalized())
	pending := c.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, "John", pending[0].Query)
}

func TestCoordinatorConfirmFinalizes(t *testing.T) {
	session := ambiguousSession()
	c := newCoordinator(session)
	c.SeedAutoConfirmations()

	require.NoError(t, c.Confirm("John", "john.brown@company.com"))
	require.True(t, c.Finalized())

	participants := c.Finalize()
	require.Len(t, participants, 2)
	assert.Equal(t, "john.brown@company.com", participants[0].Email)
	assert.Equal(t, "maria.garcia@company.com", participants[1].Email)

	// Coordinator state is reset on finalize.
	assert.Nil(t, session.Matches)
	assert.Nil(t, session.Confirmations)
	assert.Equal(t, participants, session.Participants)
}

func TestCoordinatorConfirmRejectsUnknownCandidate(t *testing.T) {
	session := ambiguousSession()
	c := newCoordinator(session)

	err := c.Confirm("John", "stranger@company.com")
	var sessionErr *SessionError
	require.ErrorAs(t, err, &sessionErr)

	err = c.Confirm("Nobody", "john.smith@company.com")
	require.ErrorAs(t, err, &sessionErr)
}

func TestCoordinatorConfirmCapsSelectableCandidates(t *testing.T) {
	session := ambiguousSession()
	var candidates []models.Participant
	for i := 0; i < models.MaxMatchCandidates; i++ {
		candidates = append(candidates, models.Participant{
			Email: string(rune('a'+i)) + "@company.com",
			Name:  "Candidate",
		})
	}
	session.Matches[0].Candidates = candidates

	c := newCoordinator(session)
	// Beyond the selectable window the candidate is treated as unknown.
	err := c.Confirm("John", candidates[models.MaxSelectableCandidates].Email)
	var sessionErr *SessionError
	require.ErrorAs(t, err, &sessionErr)

	require.NoError(t, c.Confirm("John", candidates[0].Email))
}

func TestCoordinatorAddExternal(t *testing.T) {
	session := ambiguousSession()
	c := newCoordinator(session)
	c.SeedAutoConfirmations()

	err := c.AddExternal("John", "not-an-email")
	var validationErr *resolver.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.False(t, c.Finalized())

	require.NoError(t, c.AddExternal("John", "johnny@partner.io"))
	require.True(t, c.Finalized())

	participants := c.Finalize()
	require.Len(t, participants, 2)
	assert.Equal(t, "johnny@partner.io", participants[0].Email)
	assert.Equal(t, "External", participants[0].Department)
}

func TestCoordinatorFinalizeDedupesAndAppendsExtras(t *testing.T) {
	session := ambiguousSession()
	c := newCoordinator(session)
	c.SeedAutoConfirmations()

	// Confirming the ambiguous query to the same identity as the email
	// query must not duplicate the participant.
	session.Matches[0].Candidates = append(session.Matches[0].Candidates,
		models.Participant{Email: "maria.garcia@company.com", Name: "Maria Garcia"})
	require.NoError(t, c.Confirm("John", "maria.garcia@company.com"))

	// An extra invitee beyond the original queries rides along.
	require.NoError(t, c.AddExternal("", "guest@partner.io"))

	participants := c.Finalize()
	require.Len(t, participants, 2)
	assert.Equal(t, "maria.garcia@company.com", participants[0].Email)
	assert.Equal(t, "guest@partner.io", participants[1].Email)
}
