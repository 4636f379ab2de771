package mapping

import (
	"context"

	"github.com/swasthyasetu/portal/pkg/browse"
)

type memRepo struct {
	mappings []Mapping
}

// NewMemRepo creates the seeded in-memory mapping store.
func NewMemRepo() MappingRepository {
	return &memRepo{mappings: seedMappings()}
}

func (r *memRepo) GetByID(_ context.Context, id string) (*Mapping, error) {
	for i := range r.mappings {
		if r.mappings[i].ID == id {
			m := r.mappings[i]
			return &m, nil
		}
	}
	return nil, ErrNotFound
}

// Search matches the query against both terminology terms and both codes.
func (r *memRepo) Search(_ context.Context, criteria browse.Criteria) ([]Mapping, error) {
	return browse.Filter(r.mappings, criteria,
		func(m Mapping) []string {
			return []string{m.Namaste.Term, m.ICD11.Term, m.Namaste.Code, m.ICD11.Code}
		},
		func(m Mapping, facet string) string {
			if facet == "status" {
				return m.Status
			}
			return ""
		},
	), nil
}

func (r *memRepo) All(_ context.Context) ([]Mapping, error) {
	out := make([]Mapping, len(r.mappings))
	copy(out, r.mappings)
	return out, nil
}
