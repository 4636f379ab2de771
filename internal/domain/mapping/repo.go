package mapping

import (
	"context"
	"errors"

	"github.com/swasthyasetu/portal/pkg/browse"
)

// ErrNotFound is returned when no mapping matches the requested id.
var ErrNotFound = errors.New("mapping not found")

type MappingRepository interface {
	GetByID(ctx context.Context, id string) (*Mapping, error)
	Search(ctx context.Context, criteria browse.Criteria) ([]Mapping, error)
	All(ctx context.Context) ([]Mapping, error)
}
