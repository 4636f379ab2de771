package diagnosis

import (
	"context"
	"errors"

	"github.com/swasthyasetu/portal/pkg/browse"
)

// ErrNotFound is returned when no patient matches the requested id.
var ErrNotFound = errors.New("patient not found")

type PatientRepository interface {
	GetByID(ctx context.Context, id string) (*Patient, error)
	Search(ctx context.Context, criteria browse.Criteria) ([]Patient, error)
	All(ctx context.Context) ([]Patient, error)
}

type SuggestionRepository interface {
	Search(ctx context.Context, criteria browse.Criteria) ([]Suggestion, error)
	All(ctx context.Context) ([]Suggestion, error)
}
