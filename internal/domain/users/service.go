package users

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/swasthyasetu/portal/internal/platform/dispatch"
	"github.com/swasthyasetu/portal/pkg/browse"
	"github.com/swasthyasetu/portal/pkg/export"
)

// Directory-wide headline figures shown on the dashboard cards. They
// describe the whole platform, not the fixture store.
const (
	directoryTotalUsers = 12847
	directoryDoctors    = 2847
	directoryPatients   = 9234
	directoryAdmins     = 766
)

var validActions = map[string]string{
	"activate":   "activated",
	"deactivate": "deactivated",
	"suspend":    "suspended",
	"delete":     "deleted",
}

type Service struct {
	repo       UserRepository
	dispatcher *dispatch.Dispatcher
}

func NewService(repo UserRepository, dispatcher *dispatch.Dispatcher) *Service {
	return &Service{repo: repo, dispatcher: dispatcher}
}

func (s *Service) GetUser(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) SearchUsers(ctx context.Context, criteria browse.Criteria) ([]User, error) {
	return s.repo.Search(ctx, criteria)
}

// Stats reduces over the full store, never the filtered view.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	return &Stats{
		TotalUsers: directoryTotalUsers,
		Doctors:    directoryDoctors,
		Patients:   directoryPatients,
		Admins:     directoryAdmins,
		TypeCounts: browse.CountBy(all, func(u User) string { return u.Type }),
	}, nil
}

// PerformAction runs a simulated administrative action on one user. The
// store is never mutated; the outcome is a toast acknowledging the action.
func (s *Service) PerformAction(ctx context.Context, id string, in ActionInput) (dispatch.Outcome, error) {
	verb, ok := validActions[in.Action]
	if !ok {
		return dispatch.Outcome{}, fmt.Errorf("unknown action %q", in.Action)
	}
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dispatch.Outcome{}, err
	}
	return s.dispatcher.Do(ctx, dispatch.Request{
		Key:     fmt.Sprintf("users/%s/%s", in.Action, id),
		Message: fmt.Sprintf("%s has been %s", u.Name, verb),
	})
}

// CreateUser validates the add-user form. Type, name, and email are
// required; a valid submission is acknowledged without touching the store.
func (s *Service) CreateUser(ctx context.Context, in CreateUserInput) (dispatch.Outcome, error) {
	var missing []string
	if strings.TrimSpace(in.Type) == "" {
		missing = append(missing, "type")
	}
	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(in.Email) == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return dispatch.Outcome{}, fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return s.dispatcher.Do(ctx, dispatch.Request{
		Key:     fmt.Sprintf("users/create/%s", strings.ToLower(in.Email)),
		Message: fmt.Sprintf("%s has been added as a %s", in.Name, in.Type),
	})
}

// ExportCSV renders the filtered directory as a CSV artifact.
func (s *Service) ExportCSV(ctx context.Context, criteria browse.Criteria) ([]byte, string, error) {
	matched, err := s.repo.Search(ctx, criteria)
	if err != nil {
		return nil, "", err
	}
	header := []string{"ID", "Name", "Email", "Type", "Status", "Last Login", "Created"}
	rows := make([][]string, 0, len(matched))
	for _, u := range matched {
		rows = append(rows, []string{u.ID, u.Name, u.Email, u.Type, u.Status, u.LastLogin, u.CreatedAt})
	}
	data, err := export.CSV(header, rows)
	if err != nil {
		return nil, "", err
	}
	return data, export.Filename("users", "csv", time.Now()), nil
}
