package records

import (
	"context"
	"strings"

	"github.com/swasthyasetu/portal/pkg/browse"
)

type memRepo struct {
	vitals      Vitals
	medications []Medication
	history     []HistoryEntry
	labResults  []LabResult
}

// NewMemRepo creates the seeded in-memory health record store.
func NewMemRepo() RecordRepository {
	return &memRepo{
		vitals:      seedVitals(),
		medications: seedMedications(),
		history:     seedHistory(),
		labResults:  seedLabResults(),
	}
}

func (r *memRepo) Vitals(_ context.Context) (Vitals, error) {
	return r.vitals, nil
}

func (r *memRepo) Medications(_ context.Context) ([]Medication, error) {
	out := make([]Medication, len(r.medications))
	copy(out, r.medications)
	return out, nil
}

// SearchHistory matches the query against diagnosis, doctor, and notes.
// The type facet compares against the entry type's slug form, so
// "lab-test" selects "Lab Test" entries.
func (r *memRepo) SearchHistory(_ context.Context, criteria browse.Criteria) ([]HistoryEntry, error) {
	return browse.Filter(r.history, criteria,
		func(e HistoryEntry) []string { return []string{e.Diagnosis, e.Doctor, e.Notes} },
		func(e HistoryEntry, facet string) string {
			if facet == "type" {
				return strings.ReplaceAll(strings.ToLower(e.Type), " ", "-")
			}
			return ""
		},
	), nil
}

func (r *memRepo) History(_ context.Context) ([]HistoryEntry, error) {
	out := make([]HistoryEntry, len(r.history))
	copy(out, r.history)
	return out, nil
}

func (r *memRepo) LabResults(_ context.Context) ([]LabResult, error) {
	out := make([]LabResult, len(r.labResults))
	copy(out, r.labResults)
	return out, nil
}
