package auditlog

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/swasthyasetu/portal/internal/platform/middleware"
	"github.com/swasthyasetu/portal/pkg/browse"
	"github.com/swasthyasetu/portal/pkg/export"
)

type Service struct {
	repo EntryRepository
	seq  atomic.Uint64
}

func NewService(repo EntryRepository) *Service {
	s := &Service{repo: repo}
	s.seq.Store(7) // LOG001..LOG007 are seeded
	return s
}

func (s *Service) GetEntry(ctx context.Context, id string) (*Entry, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) SearchEntries(ctx context.Context, criteria browse.Criteria) ([]Entry, error) {
	return s.repo.Search(ctx, criteria)
}

// Stats reduces over the full trail, never the filtered view.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	return &Stats{
		TotalLogs:      len(all),
		CriticalEvents: browse.CountIf(all, func(e Entry) bool { return e.Severity == "critical" }),
		FailedActions:  browse.CountIf(all, func(e Entry) bool { return e.Status == "failed" }),
		UserActions:    browse.CountIf(all, func(e Entry) bool { return e.User.Type != "system" }),
	}, nil
}

// ExportCSV renders the filtered trail with the fixed column set.
func (s *Service) ExportCSV(ctx context.Context, criteria browse.Criteria) ([]byte, string, error) {
	matched, err := s.repo.Search(ctx, criteria)
	if err != nil {
		return nil, "", err
	}
	header := []string{"Timestamp", "User", "Action", "Resource", "Status", "Severity", "IP Address"}
	rows := make([][]string, 0, len(matched))
	for _, e := range matched {
		rows = append(rows, []string{e.Timestamp, e.User.Name, e.Action, e.Resource, e.Status, e.Severity, e.IPAddress})
	}
	data, err := export.CSV(header, rows)
	if err != nil {
		return nil, "", err
	}
	return data, export.Filename("audit-logs", "csv", time.Now()), nil
}

// RecordAccess implements middleware.AuditRecorder: every recorded portal
// access becomes a live trail entry in the same shape as the seeds.
func (s *Service) RecordAccess(entry middleware.AuditEntry) error {
	e := Entry{
		ID:        fmt.Sprintf("LOG%03d", s.seq.Add(1)),
		Timestamp: entry.Timestamp.Format("2006-01-02 15:04:05"),
		User: Actor{
			ID:   entry.UserID,
			Name: entry.UserName,
			Type: entry.Role,
		},
		Action:    fmt.Sprintf("%s_%s", entry.Resource, entry.Action),
		Resource:  fmt.Sprintf("%s %s", entry.Method, entry.Path),
		Details:   fmt.Sprintf("Request %s completed with status %d", entry.RequestID, entry.StatusCode),
		IPAddress: entry.IPAddress,
		Status:    "success",
		Severity:  "info",
	}
	if entry.UserID == "" {
		e.User = Actor{ID: "anonymous", Name: "Anonymous", Type: "unknown"}
	}
	if entry.StatusCode >= http.StatusBadRequest {
		e.Status = "failed"
		e.Severity = "warning"
	}
	if entry.StatusCode == http.StatusUnauthorized || entry.StatusCode == http.StatusForbidden {
		e.Severity = "critical"
	}
	return s.repo.Append(context.Background(), e)
}
