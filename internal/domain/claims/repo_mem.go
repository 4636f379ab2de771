package claims

import (
	"context"

	"github.com/swasthyasetu/portal/pkg/browse"
)

// memRepo holds the seeded claim and rule stores. Review actions never
// mutate them: a flagged claim stays flagged after an approve completes.
type memRepo struct {
	claims []Claim
	rules  []CoverageRule
}

// NewMemRepo creates the seeded in-memory claim store.
func NewMemRepo() ClaimRepository {
	return &memRepo{claims: seedClaims(), rules: seedRules()}
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
		func(c Claim) []string { return []string{c.PatientName, c.ID, c.DiagnosisCode} },
		func(c Claim, facet string) string {
			if facet == "status" {
				return c.Status
			}
			return ""
		},
	), nil
}

func (r *memRepo) All(_ context.Context) ([]Claim, error) {
	out := make([]Claim, len(r.claims))
	copy(out, r.claims)
	return out, nil
}

func (r *memRepo) Rules(_ context.Context) ([]CoverageRule, error) {
	out := make([]CoverageRule, len(r.rules))
	copy(out, r.rules)
	return out, nil
}
