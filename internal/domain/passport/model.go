// Package passport serves the patient's digital health passport: a
// compact identity-plus-emergency-information document with a QR payload
// for scan access, sensitive-field redaction, and HTML/JSON export.
package passport

// EmergencyContact is the person to reach when the patient cannot speak
// for themselves.
type EmergencyContact struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Relation string `json:"relation"`
}

// MedicalInfo is the clinical section of the passport.
type MedicalInfo struct {
	Allergies          []string `json:"allergies"`
	ChronicConditions  []string `json:"chronicConditions"`
	CurrentMedications []string `json:"currentMedications"`
	LastCheckup        string   `json:"lastCheckup"`
	Vaccinations       []string `json:"vaccinations"`
	InsuranceProvider  string   `json:"insuranceProvider"`
	PolicyNumber       string   `json:"policyNumber"`
}

// Passport is the full health passport document.
type Passport struct {
	ID               string           `json:"id"`
	PatientID        string           `json:"patientId"`
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone"`
	DateOfBirth      string           `json:"dateOfBirth"`
	Gender           string           `json:"gender"`
	BloodGroup       string           `json:"bloodGroup"`
	Address          string           `json:"address"`
	EmergencyContact EmergencyContact `json:"emergencyContact"`
	MedicalInfo      MedicalInfo      `json:"medicalInfo"`
	SecurityLevel    string           `json:"securityLevel"`
	LastUpdated      string           `json:"lastUpdated"`
	Version          string           `json:"version"`
}

// QRPayload is the minimal data set encoded into the scan code: enough
// for emergency responders, nothing more.
type QRPayload struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	DOB              string   `json:"dob"`
	BloodGroup       string   `json:"bloodGroup"`
	EmergencyContact string   `json:"emergencyContact"`
	Allergies        []string `json:"allergies"`
	URL              string   `json:"url"`
	Timestamp        string   `json:"timestamp"`
}

func seedPassport() Passport {
	return Passport{
		ID:          "HP-2024-001",
		PatientID:   "patient-1",
		Name:        "Rajesh Kumar",
		Email:       "rajesh.kumar@email.com",
		Phone:       "+91 98765 43210",
		DateOfBirth: "1988-05-15",
		Gender:      "Male",
		BloodGroup:  "O+",
		Address:     "123 Health Street, Mumbai, Maharashtra 400001",
		EmergencyContact: EmergencyContact{
			Name:     "Sunita Kumar",
			Phone:    "+91 87654 32109",
			Relation: "Spouse",
		},
		MedicalInfo: MedicalInfo{
			Allergies:          []string{"Penicillin", "Peanuts"},
			ChronicConditions:  []string{"Type 2 Diabetes", "Hypertension"},
			CurrentMedications: []string{"Metformin 500mg", "Amlodipine 5mg"},
			LastCheckup:        "2024-01-15",
			Vaccinations:       []string{"COVID-19 (Booster)", "Influenza 2023"},
			InsuranceProvider:  "Star Health Insurance",
			PolicyNumber:       "SH123456789",
		},
		SecurityLevel: "Medium",
		LastUpdated:   "2024-01-15",
		Version:       "1.2",
	}
}
