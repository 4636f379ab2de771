package sync

import (
	"context"

	"github.com/swasthyasetu/portal/pkg/browse"
)

type memRepo struct {
	services []SyncService
	logs     []RunLog
}

// NewMemRepo creates the seeded in-memory sync store.
func NewMemRepo() ServiceRepository {
	return &memRepo{services: seedServices(), logs: seedLogs()}
}

func (r *memRepo) GetByID(_ context.Context, id string) (*SyncService, error) {
	for i := range r.services {
		if r.services[i].ID == id {
			s := r.services[i]
			return &s, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memRepo) Search(_ context.Context, criteria browse.Criteria) ([]SyncService, error) {
	return browse.Filter(r.services, criteria,
		func(s SyncService) []string { return []string{s.Name, s.Description, s.ID} },
		func(s SyncService, facet string) string {
			if facet == "status" {
				return s.Status
			}
			return ""
		},
	), nil
}

func (r *memRepo) All(_ context.Context) ([]SyncService, error) {
	out := make([]SyncService, len(r.services))
	copy(out, r.services)
	return out, nil
}

func (r *memRepo) Logs(_ context.Context) ([]RunLog, error) {
	out := make([]RunLog, len(r.logs))
	copy(out, r.logs)
	return out, nil
}
