package mapping

import (
	"context"
	"fmt"
	"time"

	"github.com/swasthyasetu/portal/internal/platform/dispatch"
	"github.com/swasthyasetu/portal/pkg/browse"
	"github.com/swasthyasetu/portal/pkg/export"
)

type Service struct {
	repo       MappingRepository
	dispatcher *dispatch.Dispatcher
}

func NewService(repo MappingRepository, dispatcher *dispatch.Dispatcher) *Service {
	return &Service{repo: repo, dispatcher: dispatcher}
}

func (s *Service) GetMapping(ctx context.Context, id string) (*Mapping, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) SearchMappings(ctx context.Context, criteria browse.Criteria) ([]Mapping, error) {
	return s.repo.Search(ctx, criteria)
}

// Review runs a simulated approve or reject on one mapping; the stored
// record keeps its status.
func (s *Service) Review(ctx context.Context, id, action string, _ ReviewInput) (dispatch.Outcome, error) {
	var verb string
	switch action {
	case "approve":
		verb = "approved"
	case "reject":
		verb = "rejected"
	default:
		return dispatch.Outcome{}, fmt.Errorf("unknown review action %q", action)
	}
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dispatch.Outcome{}, err
	}
	return s.dispatcher.Do(ctx, dispatch.Request{
		Key:     fmt.Sprintf("mappings/%s/%s", action, m.ID),
		Message: fmt.Sprintf("Mapping %s has been %s", m.ID, verb),
	})
}

// Stats reduces over the full mapping store, never the filtered view.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	byStatus := browse.CountBy(all, func(m Mapping) string { return m.Status })
	st := &Stats{
		Total:    len(all),
		Pending:  byStatus["pending"],
		Approved: byStatus["approved"],
		Rejected: byStatus["rejected"],
	}
	if len(all) > 0 {
		st.AvgConfidence = browse.SumBy(all, func(m Mapping) float64 { return float64(m.Confidence) }) / float64(len(all))
	}
	return st, nil
}

// ExportJSON serializes the filtered mappings with their nested
// terminology sub-records; the artifact round-trips back deep-equal.
func (s *Service) ExportJSON(ctx context.Context, criteria browse.Criteria) ([]byte, string, error) {
	matched, err := s.repo.Search(ctx, criteria)
	if err != nil {
		return nil, "", err
	}
	data, err := export.JSON(matched)
	if err != nil {
		return nil, "", err
	}
	return data, export.Filename("mappings", "json", time.Now()), nil
}
