package records

import (
	"context"

	"github.com/swasthyasetu/portal/pkg/browse"
)

type RecordRepository interface {
	Vitals(ctx context.Context) (Vitals, error)
	Medications(ctx context.Context) ([]Medication, error)
	SearchHistory(ctx context.Context, criteria browse.Criteria) ([]HistoryEntry, error)
	History(ctx context.Context) ([]HistoryEntry, error)
	LabResults(ctx context.Context) ([]LabResult, error)
}
