package passport

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/swasthyasetu/portal/pkg/export"
)

const maskedValue = "••••••••••"

// passportURL is the public scan-access address embedded in the QR
// payload.
const passportURL = "https://swasthyasetu.health/passport/%s"

var htmlTemplate = template.Must(template.New("passport").Funcs(template.FuncMap{
	"join": func(vals []string) string { return strings.Join(vals, ", ") },
}).Parse(`<html>
  <head><title>Health Passport - {{.Name}}</title></head>
  <body style="font-family: Arial, sans-serif; padding: 20px;">
    <h1>SwasthyaSetu Health Passport</h1>
    <h2>{{.Name}}</h2>
    <p><strong>ID:</strong> {{.ID}}</p>
    <p><strong>Date of Birth:</strong> {{.DateOfBirth}}</p>
    <p><strong>Blood Group:</strong> {{.BloodGroup}}</p>
    <p><strong>Emergency Contact:</strong> {{.EmergencyContact.Name}} - {{.EmergencyContact.Phone}}</p>
    <h3>Medical Information</h3>
    <p><strong>Allergies:</strong> {{join .MedicalInfo.Allergies}}</p>
    <p><strong>Current Medications:</strong> {{join .MedicalInfo.CurrentMedications}}</p>
    <p><strong>Chronic Conditions:</strong> {{join .MedicalInfo.ChronicConditions}}</p>
    <p><em>Generated {{.Generated}}</em></p>
  </body>
</html>
`))

type Service struct {
	now func() time.Time
}

func NewService() *Service {
	return &Service{now: time.Now}
}

// Get returns the passport for the authenticated patient. Unless
// sensitive is set, direct contact details and insurance identifiers are
// masked; the clinical emergency fields stay visible either way.
func (s *Service) Get(_ context.Context, patientID, name string, sensitive bool) Passport {
	p := seedPassport()
	if patientID != "" {
		p.PatientID = patientID
	}
	if name != "" {
		p.Name = name
	}
	if !sensitive {
		p.Phone = maskedValue
		p.Email = "••••••@••••.com"
		p.Address = maskedValue
		p.EmergencyContact.Phone = maskedValue
		p.MedicalInfo.InsuranceProvider = maskedValue
		p.MedicalInfo.PolicyNumber = maskedValue
	}
	return p
}

// QR builds the minimal emergency payload: identity, blood group, the
// emergency phone, and allergies, with a scan URL and a generation
// timestamp.
func (s *Service) QR(ctx context.Context, patientID, name string) QRPayload {
	p := s.Get(ctx, patientID, name, true)
	return QRPayload{
		ID:               p.ID,
		Name:             p.Name,
		DOB:              p.DateOfBirth,
		BloodGroup:       p.BloodGroup,
		EmergencyContact: p.EmergencyContact.Phone,
		Allergies:        p.MedicalInfo.Allergies,
		URL:              fmt.Sprintf(passportURL, p.ID),
		Timestamp:        s.now().UTC().Format(time.RFC3339),
	}
}

// ExportJSON serializes the full unmasked passport.
func (s *Service) ExportJSON(ctx context.Context, patientID, name string) ([]byte, string, error) {
	p := s.Get(ctx, patientID, name, true)
	data, err := export.JSON(p)
	if err != nil {
		return nil, "", err
	}
	return data, export.Filename("health-passport", "json", s.now()), nil
}

// ExportHTML renders the printable passport document.
func (s *Service) ExportHTML(ctx context.Context, patientID, name string) ([]byte, string, error) {
	p := s.Get(ctx, patientID, name, true)
	now := s.now()

	var buf bytes.Buffer
	err := htmlTemplate.Execute(&buf, struct {
		Passport
		Generated string
	}{Passport: p, Generated: now.UTC().Format("2006-01-02")})
	if err != nil {
		return nil, "", fmt.Errorf("render passport: %w", err)
	}
	return buf.Bytes(), export.Filename("health-passport", "html", now), nil
}
