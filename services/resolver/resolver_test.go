package resolver

import (
	"context"
	"testing"

	directoryRepo "smartmeet/database/repository/directory"
	"smartmeet/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureResolver() *Resolver {
	return NewResolver(directoryRepo.NewMemoryDirectoryRepo(directoryRepo.CompanyDirectoryFixture()))
}

func TestResolveDirectoryEmail(t *testing.T) {
	matches, err := fixtureResolver().Resolve(context.Background(), nil, []string{"john.smith@company.com"})
	require.NoError(t, err)
	require.Len(t, matches, 1)

	m := matches[0]
	assert.True(t, m.IsEmailQuery)
	assert.True(t, m.IsExact)
	assert.Equal(t, 1.0, m.Confidence)
	require.Len(t, m.Candidates, 1)
	assert.Equal(t, "John Smith", m.Candidates[0].Name)
}

func TestResolveUnknownEmailSynthesizesIdentity(t *testing.T) {
	matches, err := fixtureResolver().Resolve(context.Background(), nil, []string{"jane.van_dam@example.org"})
	require.NoError(t, err)
	require.Len(t, matches, 1)

	m := matches[0]
	assert.True(t, m.IsEmailQuery)
	assert.False(t, m.IsExact)
	assert.Equal(t, 0.8, m.Confidence)
	require.Len(t, m.Candidates, 1)
	assert.Equal(t, "Jane Van Dam", m.Candidates[0].Name)
	assert.Equal(t, models.StatusUnknown, m.Candidates[0].AvailabilityStatus)
}

func TestResolveSkipsInvalidQueries(t *testing.T) {
	matches, err := fixtureResolver().Resolve(context.Background(), []string{"J", " "}, []string{"not-an-email"})
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestResolveExactFullName(t *testing.T) {
	matches, err := fixtureResolver().Resolve(context.Background(), []string{"Maria Garcia"}, nil)
	require.NoError(t, err)
	require.Len(t, matches, 1)

	m := matches[0]
	assert.True(t, m.IsExact)
	assert.Equal(t, 1.0, m.Confidence)
	assert.Equal(t, "maria.garcia@company.com", m.Candidates[0].Email)
}

func TestResolveSingleFirstName(t *testing.T) {
	matches, err := fixtureResolver().Resolve(context.Background(), []string{"Maria"}, nil)
	require.NoError(t, err)
	require.Len(t, matches, 1)

	m := matches[0]
	assert.False(t, m.IsExact)
	assert.Equal(t, 0.9, m.Confidence)
	require.Len(t, m.Candidates, 1)
}

func TestResolveAmbiguousFirstName(t *testing.T) {
	matches, err := fixtureResolver().Resolve(context.Background(), []string{"John"}, nil)
	require.NoError(t, err)
	require.Len(t, matches, 1)

	m := matches[0]
	assert.False(t, m.IsExact)
	assert.Equal(t, 0.7, m.Confidence)
	assert.True(t, m.NeedsConfirmation())
	assert.GreaterOrEqual(t, len(m.Candidates), 2)
	assert.Equal(t, "John Smith", m.Candidates[0].Name)

	// Candidates are deduped by email.
	seen := make(map[string]bool)
	for _, c := range m.Candidates {
		assert.False(t, seen[c.Email], "duplicate candidate %s", c.Email)
		seen[c.Email] = true
	}
}

func TestResolveAmbiguousLastName(t *testing.T) {
	matches, err := fixtureResolver().Resolve(context.Background(), []string{"Wilson"}, nil)
	require.NoError(t, err)
	require.Len(t, matches, 1)

	m := matches[0]
	assert.Equal(t, 0.6, m.Confidence)
	assert.Len(t, m.Candidates, 2)
}

func TestResolveNoMatches(t *testing.T) {
	matches, err := fixtureResolver().Resolve(context.Background(), []string{"Zyxwv"}, nil)
	require.NoError(t, err)
	require.Len(t, matches, 1)

	m := matches[0]
	assert.Empty(t, m.Candidates)
	assert.Equal(t, 0.0, m.Confidence)
	assert.True(t, m.NeedsConfirmation())
}

func TestResolveOrderAndDeterminism(t *testing.T) {
	r := fixtureResolver()
	names := []string{"John", "Maria"}
	emails := []string{"sarah.johnson@company.com"}

	first, err := r.Resolve(context.Background(), names, emails)
	require.NoError(t, err)
	second, err := r.Resolve(context.Background(), names, emails)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	// Emails resolve before names, input order preserved within each group.
	require.Len(t, first, 3)
	assert.Equal(t, "sarah.johnson@company.com", first[0].Query)
	assert.Equal(t, "John", first[1].Query)
	assert.Equal(t, "Maria", first[2].Query)
}

func TestExternalParticipant(t *testing.T) {
	p, err := ExternalParticipant("guest.user@partner.io")
	require.NoError(t, err)
	assert.Equal(t, "Guest User", p.Name)
	assert.Equal(t, "External", p.Department)
	assert.Equal(t, models.StatusUnknown, p.AvailabilityStatus)

	_, err = ExternalParticipant("not-an-email")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateParticipants(t *testing.T) {
	issues := ValidateParticipants([]models.Participant{
		{Email: "a@x.com", Name: "A"},
		{Email: "A@x.com", Name: "A Again"},
		{Email: "broken", Name: "B"},
		{Email: "c@x.com", Name: "  "},
	})

	assert.Equal(t, []string{"A@x.com"}, issues.Duplicates)
	assert.Equal(t, []string{"broken"}, issues.InvalidEmails)
	assert.Equal(t, []string{"c@x.com"}, issues.MissingNames)
	assert.False(t, issues.Empty())

	assert.True(t, ValidateParticipants(nil).Empty())
}
