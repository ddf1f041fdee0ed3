package directoryRepo

import (
	"context"

	"smartmeet/models"
)

// Repository is the participant directory provider. Lookups are synchronous
// and never retried here; a failed lookup propagates to the caller as an
// error, a missing record as (nil, nil).
type Repository interface {
	// List returns every directory identity.
	List(ctx context.Context) ([]models.Participant, error)
	// GetByEmail returns the identity with the given email, or nil when absent.
	GetByEmail(ctx context.Context, email string) (*models.Participant, error)
	// Search returns up to limit identities whose name or email contains the
	// query, exact email hits first.
	Search(ctx context.Context, query string, limit int) ([]models.Participant, error)
}
