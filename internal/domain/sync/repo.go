package sync

import (
	"context"
	"errors"

	"github.com/swasthyasetu/portal/pkg/browse"
)

// ErrNotFound is returned when no sync service matches the requested id.
var ErrNotFound = errors.New("sync service not found")

type ServiceRepository interface {
	GetByID(ctx context.Context, id string) (*SyncService, error)
	Search(ctx context.Context, criteria browse.Criteria) ([]SyncService, error)
	All(ctx context.Context) ([]SyncService, error)
	Logs(ctx context.Context) ([]RunLog, error)
}
