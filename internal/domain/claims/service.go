package claims

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/swasthyasetu/portal/internal/platform/dispatch"
	"github.com/swasthyasetu/portal/pkg/browse"
	"github.com/swasthyasetu/portal/pkg/export"
)

var reviewMessages = map[string]string{
	"approve": "Claim %s approved successfully",
	"reject":  "Claim %s rejected",
	"flag":    "Claim %s flagged for review",
}

type Service struct {
	repo       ClaimRepository
	dispatcher *dispatch.Dispatcher
}

func NewService(repo ClaimRepository, dispatcher *dispatch.Dispatcher) *Service {
	return &Service{repo: repo, dispatcher: dispatcher}
}

func (s *Service) GetClaim(ctx context.Context, id string) (*Claim, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) SearchClaims(ctx context.Context, criteria browse.Criteria) ([]Claim, error) {
	return s.repo.Search(ctx, criteria)
}

func (s *Service) ListRules(ctx context.Context) ([]CoverageRule, error) {
	return s.repo.Rules(ctx)
}

// Review runs a simulated review action on one claim. The outcome is an
// acknowledgement toast; the claim record keeps its stored status.
func (s *Service) Review(ctx context.Context, id, action string, _ ReviewInput) (dispatch.Outcome, error) {
	format, ok := reviewMessages[action]
	if !ok {
		return dispatch.Outcome{}, fmt.Errorf("unknown review action %q", action)
	}
	claim, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dispatch.Outcome{}, err
	}
	return s.dispatcher.Do(ctx, dispatch.Request{
		Key:     fmt.Sprintf("claims/%s/%s", action, claim.ID),
		Message: fmt.Sprintf(format, claim.ID),
	})
}

// CreateRule validates the rule form: diagnosisCode, diagnosisName, and
// insuranceProvider are required. A violation blocks the submission
// entirely; a valid one is acknowledged without touching the store.
func (s *Service) CreateRule(ctx context.Context, in CreateRuleInput) (dispatch.Outcome, error) {
	var missing []string
	if strings.TrimSpace(in.DiagnosisCode) == "" {
		missing = append(missing, "diagnosisCode")
	}
	if strings.TrimSpace(in.DiagnosisName) == "" {
		missing = append(missing, "diagnosisName")
	}
	if strings.TrimSpace(in.InsuranceProvider) == "" {
		missing = append(missing, "insuranceProvider")
	}
	if len(missing) > 0 {
		return dispatch.Outcome{}, fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return s.dispatcher.Do(ctx, dispatch.Request{
		Key:     fmt.Sprintf("claims/rules/create/%s", strings.ToLower(in.DiagnosisCode)),
		Message: "Coverage rule added successfully",
	})
}

// Analytics reduces over the full claim store, never the filtered view.
func (s *Service) Analytics(ctx context.Context) (*Analytics, error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	byStatus := browse.CountBy(all, func(c Claim) string { return c.Status })
	a := &Analytics{
		TotalClaims:      len(all),
		Approved:         byStatus["approved"],
		Rejected:         byStatus["rejected"],
		Pending:          byStatus["pending"],
		Flagged:          byStatus["flagged"],
		TotalClaimAmount: browse.SumBy(all, func(c Claim) float64 { return c.ClaimAmount }),
	}
	if a.TotalClaims > 0 {
		a.ApprovalRate = int(math.Round(float64(a.Approved) / float64(a.TotalClaims) * 100))
	}
	return a, nil
}

// ExportCSV renders the filtered claims as a CSV artifact.
func (s *Service) ExportCSV(ctx context.Context, criteria browse.Criteria) ([]byte, string, error) {
	matched, err := s.repo.Search(ctx, criteria)
	if err != nil {
		return nil, "", err
	}
	header := []string{"Claim ID", "Patient", "Diagnosis", "Code", "Provider", "Amount", "Status", "Submitted", "Doctor"}
	rows := make([][]string, 0, len(matched))
	for _, c := range matched {
		rows = append(rows, []string{
			c.ID, c.PatientName, c.Diagnosis, c.DiagnosisCode, c.InsuranceProvider,
			fmt.Sprintf("%.0f", c.ClaimAmount), c.Status, c.SubmittedDate, c.DoctorName,
		})
	}
	data, err := export.CSV(header, rows)
	if err != nil {
		return nil, "", err
	}
	return data, export.Filename("claims", "csv", time.Now()), nil
}
