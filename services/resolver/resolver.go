package resolver

import (
	"context"
	"fmt"
	"strings"

	directoryRepo "smartmeet/database/repository/directory"
	"smartmeet/models"
)

// Resolver maps name and email queries from a parsed request onto directory
// identities, producing one ranked ParticipantMatch per query. Resolution
// is a pure function of the query and the directory snapshot: the same
// query against the same snapshot always yields the same match.
type Resolver struct {
	Directory directoryRepo.Repository
}

// NewResolver creates a Resolver over the given directory.
func NewResolver(dir directoryRepo.Repository) *Resolver {
	return &Resolver{Directory: dir}
}

// Resolve processes email queries first (exact by key), then name queries
// (fuzzy cascade), preserving input order within each group.
func (r *Resolver) Resolve(ctx context.Context, names, emails []string) ([]models.ParticipantMatch, error) {
	matches := make([]models.ParticipantMatch, 0, len(names)+len(emails))

	for _, email := range emails {
		if !IsValidEmail(email) {
			continue
		}
		match, err := r.resolveEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}

	for _, name := range names {
		if len(strings.TrimSpace(name)) <= 1 {
			continue
		}
		match, err := r.resolveName(ctx, name)
		if err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}

	return matches, nil
}

// resolveEmail resolves a syntactically valid email: a directory hit is an
// exact match; an unknown address synthesizes a fresh identity at reduced
// confidence.
func (r *Resolver) resolveEmail(ctx context.Context, email string) (models.ParticipantMatch, error) {
	existing, err := r.Directory.GetByEmail(ctx, email)
	if err != nil {
		return models.ParticipantMatch{}, fmt.Errorf("directory lookup for %s failed: %w", email, err)
	}
	if existing != nil {
		return models.ParticipantMatch{
			Query:        email,
			Candidates:   []models.Participant{*existing},
			Confidence:   1.0,
			IsExact:      true,
			IsEmailQuery: true,
		}, nil
	}

	return models.ParticipantMatch{
		Query:        email,
		Candidates:   []models.Participant{synthesizeIdentity(email)},
		Confidence:   0.8,
		IsExact:      false,
		IsEmailQuery: true,
	}, nil
}

// resolveName runs the fuzzy cascade over the full directory snapshot.
func (r *Resolver) resolveName(ctx context.Context, name string) (models.ParticipantMatch, error) {
	directory, err := r.Directory.List(ctx)
	if err != nil {
		return models.ParticipantMatch{}, fmt.Errorf("directory listing failed: %w", err)
	}

	candidates := searchByName(name, directory)
	confidence := nameConfidence(name, candidates)

	return models.ParticipantMatch{
		Query:        name,
		Candidates:   candidates,
		Confidence:   confidence,
		IsExact:      len(candidates) == 1 && normalizeName(name) == normalizeName(candidates[0].Name),
		IsEmailQuery: false,
	}, nil
}

// searchByName applies the match cascade, case-insensitive: exact full
// name, first name, last name, substring either direction, token overlap.
// Exact hits go to the front; results are deduped by email and capped.
func searchByName(query string, directory []models.Participant) []models.Participant {
	q := normalizeName(query)
	if q == "" {
		return nil
	}

	var found []models.Participant
	for _, p := range directory {
		name := normalizeName(p.Name)

		if q == name {
			found = append([]models.Participant{p}, found...)
			continue
		}

		parts := strings.Fields(name)
		if len(parts) > 0 && q == parts[0] {
			found = append(found, p)
			continue
		}
		if len(parts) > 1 && q == parts[len(parts)-1] {
			found = append(found, p)
			continue
		}
		if strings.Contains(name, q) || strings.Contains(q, name) {
			found = append(found, p)
			continue
		}
		if tokenOverlap(q, name) > 0 {
			found = append(found, p)
		}
	}

	found = models.DedupeParticipants(found)
	if len(found) > models.MaxMatchCandidates {
		found = found[:models.MaxMatchCandidates]
	}
	return found
}

// nameConfidence scores the match set by the strongest rule the best
// candidate satisfies, degraded when the query stayed ambiguous.
func nameConfidence(query string, candidates []models.Participant) float64 {
	if len(candidates) == 0 {
		return 0.0
	}

	q := normalizeName(query)
	best := normalizeName(candidates[0].Name)
	single := len(candidates) == 1

	if q == best {
		return 1.0
	}

	parts := strings.Fields(best)
	if len(parts) > 0 && q == parts[0] {
		if single {
			return 0.9
		}
		return 0.7
	}
	if len(parts) > 1 && q == parts[len(parts)-1] {
		if single {
			return 0.8
		}
		return 0.6
	}
	if strings.Contains(best, q) || strings.Contains(q, best) {
		if single {
			return 0.7
		}
		return 0.5
	}

	if overlap := tokenOverlap(q, best); overlap > 0 {
		score := 0.3 + 0.1*float64(overlap)
		if score > 0.6 {
			score = 0.6
		}
		return score
	}
	return 0.3
}

// tokenOverlap counts query tokens that share a containment relation with
// any token of the candidate name.
func tokenOverlap(query, name string) int {
	nameTokens := strings.Fields(name)
	count := 0
	for _, qt := range strings.Fields(query) {
		for _, nt := range nameTokens {
			if strings.Contains(nt, qt) || strings.Contains(qt, nt) {
				count++
				break
			}
		}
	}
	return count
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
