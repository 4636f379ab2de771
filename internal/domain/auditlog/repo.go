package auditlog

import (
	"context"
	"errors"

	"github.com/swasthyasetu/portal/pkg/browse"
)

// ErrNotFound is returned when no entry matches the requested id.
var ErrNotFound = errors.New("audit log entry not found")

// EntryRepository is the audit trail store. Unlike the other portal
// stores it grows at runtime: the audit middleware appends an entry for
// every recorded access.
type EntryRepository interface {
	GetByID(ctx context.Context, id string) (*Entry, error)
	Search(ctx context.Context, criteria browse.Criteria) ([]Entry, error)
	All(ctx context.Context) ([]Entry, error)
	Append(ctx context.Context, e Entry) error
}
