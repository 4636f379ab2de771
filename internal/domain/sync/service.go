package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/swasthyasetu/portal/internal/platform/dispatch"
	"github.com/swasthyasetu/portal/pkg/browse"
)

type Service struct {
	repo       ServiceRepository
	dispatcher *dispatch.Dispatcher
	latency    time.Duration
}

// NewService creates the sync manager. latency is the simulated duration
// of a manual sync run; sync runs are longer than ordinary record
// actions, so they carry their own latency.
func NewService(repo ServiceRepository, dispatcher *dispatch.Dispatcher, latency time.Duration) *Service {
	return &Service{repo: repo, dispatcher: dispatcher, latency: latency}
}

func (s *Service) GetService(ctx context.Context, id string) (*SyncService, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) SearchServices(ctx context.Context, criteria browse.Criteria) ([]SyncService, error) {
	return s.repo.Search(ctx, criteria)
}

func (s *Service) ListLogs(ctx context.Context) ([]RunLog, error) {
	return s.repo.Logs(ctx)
}

// Run performs a simulated manual sync for one service. A second run
// while the first is in flight is rejected with dispatch.ErrInFlight; a
// cancelled run emits no completion toast.
func (s *Service) Run(ctx context.Context, id string) (dispatch.Outcome, error) {
	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dispatch.Outcome{}, err
	}
	return s.dispatcher.Do(ctx, dispatch.Request{
		Key:     fmt.Sprintf("sync/run/%s", svc.ID),
		Message: "Manual sync completed successfully!",
		Latency: s.latency,
	})
}

// SetAutoSync toggles automatic synchronization. The acknowledgement is a
// toast; the stored service record is not rewritten.
func (s *Service) SetAutoSync(ctx context.Context, id string, in AutoSyncInput) (dispatch.Outcome, error) {
	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dispatch.Outcome{}, err
	}
	verb := "disabled"
	if in.Enabled {
		verb = "enabled"
	}
	return s.dispatcher.Do(ctx, dispatch.Request{
		Key:     fmt.Sprintf("sync/autosync/%s", svc.ID),
		Message: fmt.Sprintf("Auto-sync %s for %s", verb, svc.ID),
	})
}

// Stats reduces over the full service store.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	byStatus := browse.CountBy(all, func(sv SyncService) string { return sv.Status })
	st := &Stats{
		TotalServices:   len(all),
		OnlineServices:  byStatus["online"],
		WarningServices: byStatus["warning"],
		OfflineServices: byStatus["offline"],
		TotalRecords:    int(browse.SumBy(all, func(sv SyncService) float64 { return float64(sv.RecordsProcessed) })),
	}
	if len(all) > 0 {
		st.AvgSuccessRate = browse.SumBy(all, func(sv SyncService) float64 { return sv.SuccessRate }) / float64(len(all))
	}
	return st, nil
}
