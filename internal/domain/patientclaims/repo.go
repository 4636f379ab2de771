package patientclaims

import (
	"context"
	"errors"

	"github.com/swasthyasetu/portal/pkg/browse"
)

// ErrNotFound is returned when no claim matches the requested id.
var ErrNotFound = errors.New("claim not found")

type ClaimRepository interface {
	GetByID(ctx context.Context, id string) (*Claim, error)
	Search(ctx context.Context, criteria browse.Criteria) ([]Claim, error)
}
