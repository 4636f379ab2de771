package auditlog

import (
	"context"
	"strings"
	"sync"

	"github.com/swasthyasetu/portal/pkg/browse"
)

// memRepo holds the seeded fixtures plus live appended entries. Append is
// the only mutation, so reads copy under the same lock.
type memRepo struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewMemRepo creates the seeded in-memory audit trail.
func NewMemRepo() EntryRepository {
	return &memRepo{entries: seedEntries()}
}

func (r *memRepo) GetByID(_ context.Context, id string) (*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.entries {
		if r.entries[i].ID == id {
			e := r.entries[i]
			return &e, nil
		}
	}
	return nil, ErrNotFound
}

// Search matches the query against user name, action, resource, and
// details. The action facet is a substring-class match so that a filter
// like "login" catches "failed_login"; the user_type facet is equality.
func (r *memRepo) Search(_ context.Context, criteria browse.Criteria) ([]Entry, error) {
	r.mu.RLock()
	snapshot := make([]Entry, len(r.entries))
	copy(snapshot, r.entries)
	r.mu.RUnlock()

	action := criteria.Facet("action")
	matched := browse.Filter(snapshot, browse.Criteria{
		Query:  criteria.Query,
		Facets: map[string]string{"user_type": criteria.Facet("user_type")},
	},
		func(e Entry) []string { return []string{e.User.Name, e.Action, e.Resource, e.Details} },
		func(e Entry, facet string) string {
			if facet == "user_type" {
				return e.User.Type
			}
			return ""
		},
	)
	if action == browse.AllFacet {
		return matched, nil
	}
	out := matched[:0]
	for _, e := range matched {
		if strings.Contains(e.Action, action) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memRepo) All(_ context.Context) ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

func (r *memRepo) Append(_ context.Context, e Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
	return nil
}
