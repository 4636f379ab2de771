package diagnosis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/swasthyasetu/portal/internal/platform/dispatch"
	"github.com/swasthyasetu/portal/pkg/browse"
)

// ErrIncompleteEntry blocks submission before any dispatch happens when
// the form is missing a patient or has no diagnosis selected.
var ErrIncompleteEntry = errors.New("please select a patient and at least one diagnosis")

type Service struct {
	patients    PatientRepository
	suggestions SuggestionRepository
	dispatcher  *dispatch.Dispatcher
	latency     time.Duration
	now         func() time.Time
}

// NewService creates the diagnosis entry service. latency is the
// simulated duration of saving an entry, which is longer than ordinary
// record actions.
func NewService(patients PatientRepository, suggestions SuggestionRepository, dispatcher *dispatch.Dispatcher, latency time.Duration) *Service {
	return &Service{patients: patients, suggestions: suggestions, dispatcher: dispatcher, latency: latency, now: time.Now}
}

func (s *Service) GetPatient(ctx context.Context, id string) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *Service) SearchPatients(ctx context.Context, criteria browse.Criteria) ([]Patient, error) {
	return s.patients.Search(ctx, criteria)
}

// Problems returns one patient's problem list history.
func (s *Service) Problems(ctx context.Context, patientID string) ([]Problem, error) {
	p, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return p.Diagnoses, nil
}

func (s *Service) SearchSuggestions(ctx context.Context, criteria browse.Criteria) ([]Suggestion, error) {
	return s.suggestions.Search(ctx, criteria)
}

func (s *Service) TreatmentRecommendations(_ context.Context) Treatments {
	return seedTreatments()
}

// Submit saves a diagnosis entry. An entry without a patient or without
// at least one diagnosis is rejected before dispatch, so no toast is
// emitted for it. A duplicate submission while one is in flight for the
// same patient returns dispatch.ErrInFlight.
func (s *Service) Submit(ctx context.Context, in EntryInput) (dispatch.Outcome, error) {
	form := NewEntryForm()
	if in.PatientID != "" {
		p, err := s.patients.GetByID(ctx, in.PatientID)
		if err != nil {
			return dispatch.Outcome{}, err
		}
		form.SelectPatient(*p)
	}
	for _, code := range in.Diagnoses {
		form.AddDiagnosis(code)
	}
	form.SetNotes(in.Notes)
	form.SetPrescriptions(in.Prescriptions)

	checked, err := form.Input()
	if err != nil {
		return dispatch.Outcome{}, err
	}
	return s.dispatcher.Do(ctx, dispatch.Request{
		Key:     fmt.Sprintf("diagnosis/submit/%s", checked.PatientID),
		Message: "Diagnosis saved successfully!",
		Latency: s.latency,
	})
}
