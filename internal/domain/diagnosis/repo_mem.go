package diagnosis

import (
	"context"

	"github.com/swasthyasetu/portal/pkg/browse"
)

type memPatientRepo struct {
	patients []Patient
}

// NewMemPatientRepo creates the seeded in-memory patient roster.
func NewMemPatientRepo() PatientRepository {
	return &memPatientRepo{patients: seedPatients()}
}

func (r *memPatientRepo) GetByID(_ context.Context, id string) (*Patient, error) {
	for i := range r.patients {
		if r.patients[i].ID == id {
			p := r.patients[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

// Search matches the query against patient name and phone number, so a
// doctor can pull a chart with either a partial name or digits off a
// registration slip.
func (r *memPatientRepo) Search(_ context.Context, criteria browse.Criteria) ([]Patient, error) {
	return browse.Filter(r.patients, criteria,
		func(p Patient) []string { return []string{p.Name, p.Phone} },
		func(p Patient, facet string) string {
			if facet == "status" {
				return p.Status
			}
			return ""
		},
	), nil
}

func (r *memPatientRepo) All(_ context.Context) ([]Patient, error) {
	out := make([]Patient, len(r.patients))
	copy(out, r.patients)
	return out, nil
}

type memSuggestionRepo struct {
	suggestions []Suggestion
}

// NewMemSuggestionRepo creates the seeded ICD-11 suggestion catalogue.
func NewMemSuggestionRepo() SuggestionRepository {
	return &memSuggestionRepo{suggestions: seedSuggestions()}
}

func (r *memSuggestionRepo) Search(_ context.Context, criteria browse.Criteria) ([]Suggestion, error) {
	return browse.Filter(r.suggestions, criteria,
		func(s Suggestion) []string { return []string{s.Name, s.Code} },
		func(s Suggestion, facet string) string {
			if facet == "category" {
				return s.Category
			}
			return ""
		},
	), nil
}

func (r *memSuggestionRepo) All(_ context.Context) ([]Suggestion, error) {
	out := make([]Suggestion, len(r.suggestions))
	copy(out, r.suggestions)
	return out, nil
}
