package patientclaims

import (
	"context"

	"github.com/swasthyasetu/portal/pkg/browse"
)

type memRepo struct {
	claims []Claim
}

// NewMemRepo creates the seeded in-memory claim store.
func NewMemRepo() ClaimRepository {
	return &memRepo{claims: seedClaims()}
}

func (r *memRepo) GetByID(_ context.Context, id string) (*Claim, error) {
	for i := range r.claims {
		if r.claims[i].ID == id {
			c := r.claims[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memRepo) Search(_ context.Context, criteria browse.Criteria) ([]Claim, error) {
	return browse.Filter(r.claims, criteria,
		func(c Claim) []string { return []string{c.ID, c.Hospital} },
		func(c Claim, facet string) string {
			if facet == "status" {
				return c.Status
			}
			return ""
		},
	), nil
}
