package directoryRepo

import (
	"context"
	"strings"

	"smartmeet/models"
)

// MemoryDirectoryRepo is an in-memory Repository used for demo mode and
// tests. The snapshot is fixed at construction, so repeated lookups against
// the same repo are deterministic.
type MemoryDirectoryRepo struct {
	participants []models.Participant
}

// NewMemoryDirectoryRepo creates a directory over the given fixed snapshot.
func NewMemoryDirectoryRepo(participants []models.Participant) *MemoryDirectoryRepo {
	return &MemoryDirectoryRepo{participants: participants}
}

// List returns a copy of the directory snapshot.
func (r *MemoryDirectoryRepo) List(ctx context.Context) ([]models.Participant, error) {
	out := make([]models.Participant, len(r.participants))
	copy(out, r.participants)
	return out, nil
}

// GetByEmail returns the identity with the given email, or nil when absent.
func (r *MemoryDirectoryRepo) GetByEmail(ctx context.Context, email string) (*models.Participant, error) {
	for _, p := range r.participants {
		if strings.EqualFold(p.Email, email) {
			hit := p
			return &hit, nil
		}
	}
	return nil, nil
}

// Search returns up to limit identities whose name or email contains the
// query, exact email hits first.
func (r *MemoryDirectoryRepo) Search(ctx context.Context, query string, limit int) ([]models.Participant, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = models.MaxMatchCandidates
	}

	var found []models.Participant
	for _, p := range r.participants {
		if query == strings.ToLower(p.Email) {
			found = append([]models.Participant{p}, found...)
			continue
		}
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Email), query) {
			found = append(found, p)
		}
	}
	if len(found) > limit {
		found = found[:limit]
	}
	return found, nil
}
