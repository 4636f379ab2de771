package patientclaims

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/swasthyasetu/portal/internal/platform/dispatch"
	"github.com/swasthyasetu/portal/pkg/browse"
)

// maxClaimAmount is the submission ceiling in rupees.
const maxClaimAmount = 500000

// ValidationError reports every form violation at once so the client can
// mark each offending field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "invalid claim submission: " + strings.Join(parts, "; ")
}

type Service struct {
	repo       ClaimRepository
	dispatcher *dispatch.Dispatcher
	latency    time.Duration
	now        func() time.Time
}

// NewService creates the patient claim service. latency simulates the
// claim processing round-trip.
func NewService(repo ClaimRepository, dispatcher *dispatch.Dispatcher, latency time.Duration) *Service {
	return &Service{repo: repo, dispatcher: dispatcher, latency: latency, now: time.Now}
}

func (s *Service) GetClaim(ctx context.Context, id string) (*Claim, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) SearchClaims(ctx context.Context, criteria browse.Criteria) ([]Claim, error) {
	return s.repo.Search(ctx, criteria)
}

// Submit validates the claim form and, when valid, runs the simulated
// processing round-trip. Any violation blocks the submission entirely:
// nothing is dispatched and no partial claim exists anywhere.
func (s *Service) Submit(ctx context.Context, in SubmissionInput) (dispatch.Outcome, error) {
	if err := s.validate(in); err != nil {
		return dispatch.Outcome{}, err
	}
	return s.dispatcher.Do(ctx, dispatch.Request{
		Key:     fmt.Sprintf("patientclaims/submit/%s/%s", strings.ToLower(in.ClaimType), in.TreatmentDate),
		Message: "Claim submitted successfully! You will receive updates via email and SMS.",
		Latency: s.latency,
	})
}

func (s *Service) validate(in SubmissionInput) error {
	fields := make(map[string]string)

	if strings.TrimSpace(in.ClaimType) == "" {
		fields["claimType"] = "required"
	}
	if strings.TrimSpace(in.TreatmentDate) == "" {
		fields["treatmentDate"] = "required"
	} else if date, err := time.Parse("2006-01-02", in.TreatmentDate); err != nil {
		fields["treatmentDate"] = "must be a valid date (YYYY-MM-DD)"
	} else if date.After(s.now()) {
		fields["treatmentDate"] = "treatment date cannot be in the future"
	}
	if strings.TrimSpace(in.HospitalName) == "" {
		fields["hospitalName"] = "required"
	} else if len(strings.TrimSpace(in.HospitalName)) < 3 {
		fields["hospitalName"] = "hospital name must be at least 3 characters"
	}
	if strings.TrimSpace(in.DoctorName) == "" {
		fields["doctorName"] = "required"
	} else if len(strings.TrimSpace(in.DoctorName)) < 3 {
		fields["doctorName"] = "doctor name must be at least 3 characters"
	}
	if in.ClaimAmount <= 0 {
		fields["claimAmount"] = "please enter a valid amount"
	} else if in.ClaimAmount > maxClaimAmount {
		fields["claimAmount"] = "claim amount cannot exceed ₹5,00,000"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
