package diagnosis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/swasthyasetu/portal/internal/platform/dispatch"
)

// RegistrationInput carries the new-patient form. Name, phone and date of
// birth are mandatory; the rest enriches the record.
type RegistrationInput struct {
	FirstName                string   `json:"firstName"`
	LastName                 string   `json:"lastName"`
	Email                    string   `json:"email"`
	Phone                    string   `json:"phone"`
	DateOfBirth              string   `json:"dateOfBirth"`
	Gender                   string   `json:"gender"`
	Address                  string   `json:"address"`
	City                     string   `json:"city"`
	State                    string   `json:"state"`
	Pincode                  string   `json:"pincode"`
	EmergencyContact         string   `json:"emergencyContact"`
	EmergencyPhone           string   `json:"emergencyPhone"`
	BloodGroup               string   `json:"bloodGroup"`
	Allergies                []string `json:"allergies"`
	Medications              []string `json:"medications"`
	MedicalHistory           string   `json:"medicalHistory"`
	InsuranceProvider        string   `json:"insuranceProvider"`
	InsuranceNumber          string   `json:"insuranceNumber"`
	PreferredAppointmentTime string   `json:"preferredAppointmentTime"`
}

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
	return "invalid patient registration: " + strings.Join(parts, "; ")
}

// RegisteredPatient is the composed record echoed back to the client.
// The demo save yields only a toast; nothing is persisted, so reloading
// the patient list will not show the new entry.
type RegisteredPatient struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	DateOfBirth string    `json:"dateOfBirth"`
	Allergies   []string  `json:"allergies"`
	Medications []string  `json:"medications"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Register validates the new-patient form and runs the simulated save.
// Any violation blocks the whole submission: nothing is dispatched and no
// toast is emitted.
func (s *Service) Register(ctx context.Context, in RegistrationInput) (*RegisteredPatient, dispatch.Outcome, error) {
	if err := s.validateRegistration(in); err != nil {
		return nil, dispatch.Outcome{}, err
	}
	out, err := s.dispatcher.Do(ctx, dispatch.Request{
		Key:     fmt.Sprintf("diagnosis/register/%s", strings.TrimSpace(in.Phone)),
		Message: "Patient added successfully!",
		Latency: s.latency,
	})
	if err != nil {
		return nil, dispatch.Outcome{}, err
	}
	rec := &RegisteredPatient{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.FirstName) + " " + strings.TrimSpace(in.LastName),
		Phone:       strings.TrimSpace(in.Phone),
		DateOfBirth: in.DateOfBirth,
		Allergies:   normalizeList(in.Allergies),
		Medications: normalizeList(in.Medications),
		CreatedAt:   s.now().UTC(),
	}
	return rec, out, nil
}

func (s *Service) validateRegistration(in RegistrationInput) error {
	fields := make(map[string]string)

	if strings.TrimSpace(in.FirstName) == "" {
		fields["firstName"] = "required"
	}
	if strings.TrimSpace(in.LastName) == "" {
		fields["lastName"] = "required"
	}
	if strings.TrimSpace(in.Phone) == "" {
		fields["phone"] = "required"
	}
	if strings.TrimSpace(in.DateOfBirth) == "" {
		fields["dateOfBirth"] = "required"
	} else if dob, err := time.Parse("2006-01-02", in.DateOfBirth); err != nil {
		fields["dateOfBirth"] = "must be a valid date (YYYY-MM-DD)"
	} else if dob.After(s.now()) {
		fields["dateOfBirth"] = "date of birth cannot be in the future"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// normalizeList trims entries, drops empties and deduplicates while
// keeping the order they were typed in, matching the form's chip inputs
// for allergies and medications.
func normalizeList(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
