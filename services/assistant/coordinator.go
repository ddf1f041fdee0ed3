package assistant

import (
	"fmt"
	"sort"
	"strings"

	"smartmeet/models"
	"smartmeet/services/resolver"
)

// DisambiguationCoordinator accumulates per-query confirmations on top of a
// session until every original name and email query has a confirmed
// identity. Its state lives entirely inside the session blob, so dropping
// the session discards the coordinator too.
type DisambiguationCoordinator struct {
	session *models.ScheduleSession
}

func newCoordinator(session *models.ScheduleSession) *DisambiguationCoordinator {
	if session.Confirmations == nil {
		session.Confirmations = make(map[string]models.Participant)
	}
	return &DisambiguationCoordinator{session: session}
}

// SeedAutoConfirmations records unambiguous matches without user input, so
// only the queries that genuinely need a decision stay pending.
func (c *DisambiguationCoordinator) SeedAutoConfirmations() {
	for _, m := range c.session.Matches {
		if m.NeedsConfirmation() {
			continue
		}
		if best, ok := m.Best(); ok {
			c.session.Confirmations[confirmKey(m.Query)] = best
		}
	}
}

// Confirm records the identity chosen for a query. The identity must be one
// of the selectable candidates for that query.
func (c *DisambiguationCoordinator) Confirm(query string, email string) error {
	match, ok := c.findMatch(query)
	if !ok {
		return NewSessionError(fmt.Sprintf("no pending match for %q", query))
	}

	selectable := match.Candidates
	if len(selectable) > models.MaxSelectableCandidates {
		selectable = selectable[:models.MaxSelectableCandidates]
	}
	for _, candidate := range selectable {
		if strings.EqualFold(candidate.Email, email) {
			c.session.Confirmations[confirmKey(query)] = candidate
			return nil
		}
	}
	return NewSessionError(fmt.Sprintf("%s is not a selectable candidate for %q", email, query))
}

// AddExternal resolves a query to someone outside the directory. The email
// must be syntactically valid; a ValidationError is surfaced as-is. When
// query is empty the participant is added as an extra invitee keyed by
// their email.
func (c *DisambiguationCoordinator) AddExternal(query, email string) error {
	identity, err := resolver.ExternalParticipant(email)
	if err != nil {
		return err
	}
	if query == "" {
		query = identity.Email
	}
	c.session.Confirmations[confirmKey(query)] = identity
	return nil
}

// Pending returns the queries still waiting for a decision, in match order.
func (c *DisambiguationCoordinator) Pending() []models.ParticipantMatch {
	var pending []models.ParticipantMatch
	for _, m := range c.session.Matches {
		if _, done := c.session.Confirmations[confirmKey(m.Query)]; !done {
			pending = append(pending, m)
		}
	}
	return pending
}

// Finalized reports whether the confirmed keys cover every original query.
func (c *DisambiguationCoordinator) Finalized() bool {
	if c.session.Parsed == nil {
		return false
	}
	for _, q := range c.session.Parsed.Queries() {
		if _, ok := c.session.Confirmations[confirmKey(q)]; !ok {
			return false
		}
	}
	return true
}

// Finalize emits the deduplicated participant list in query order, extras
// last, and resets the coordinator state on the session.
func (c *DisambiguationCoordinator) Finalize() []models.Participant {
	var ordered []models.Participant
	seen := make(map[string]struct{})

	appendOnce := func(p models.Participant) {
		key := strings.ToLower(p.Email)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		ordered = append(ordered, p)
	}

	for _, q := range c.session.Parsed.Queries() {
		if p, ok := c.session.Confirmations[confirmKey(q)]; ok {
			appendOnce(p)
		}
	}
	queryKeys := make(map[string]struct{}, len(c.session.Parsed.Queries()))
	for _, q := range c.session.Parsed.Queries() {
		queryKeys[confirmKey(q)] = struct{}{}
	}
	var extras []string
	for key := range c.session.Confirmations {
		if _, original := queryKeys[key]; !original {
			extras = append(extras, key)
		}
	}
	sort.Strings(extras)
	for _, key := range extras {
		appendOnce(c.session.Confirmations[key])
	}

	c.session.Participants = ordered
	c.session.Matches = nil
	c.session.Confirmations = nil
	return ordered
}

func (c *DisambiguationCoordinator) findMatch(query string) (models.ParticipantMatch, bool) {
	for _, m := range c.session.Matches {
		if confirmKey(m.Query) == confirmKey(query) {
			return m, true
		}
	}
	return models.ParticipantMatch{}, false
}

func confirmKey(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}
