// Package records implements the patient health records screen: a vitals
// snapshot, medications, medical history browsed by free-text search and
// a type facet, lab results, and a JSON export of the whole record graph.
package records

// Vital is one measured health indicator.
type Vital struct {
	Value  string `json:"value"`
	Status string `json:"status"`
	Trend  string `json:"trend"`
}

// Vitals is the patient's current snapshot.
type Vitals struct {
	BloodPressure Vital `json:"bloodPressure"`
	HeartRate     Vital `json:"heartRate"`
	Temperature   Vital `json:"temperature"`
	Weight        Vital `json:"weight"`
	BMI           Vital `json:"bmi"`
	BloodSugar    Vital `json:"bloodSugar"`
}

// Medication is one prescribed medicine.
type Medication struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	PrescribedBy string `json:"prescribedBy"`
	StartDate    string `json:"startDate"`
	Status       string `json:"status"` // active, completed
}

// HistoryEntry is one medical history event.
type HistoryEntry struct {
	ID            string   `json:"id"`
	Date          string   `json:"date"`
	Type          string   `json:"type"` // Consultation, Lab Test, Follow-up
	Doctor        string   `json:"doctor"`
	Diagnosis     string   `json:"diagnosis"`
	Status        string   `json:"status"`
	Notes         string   `json:"notes"`
	Prescriptions []string `json:"prescriptions"`
}

// LabResult is one laboratory test result.
type LabResult struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Test   string `json:"test"`
	Result string `json:"result"`
	Range  string `json:"range"`
	Status string `json:"status"` // normal, low, high
}

// RecordGraph is the complete exportable record set.
type RecordGraph struct {
	Vitals         Vitals         `json:"vitals"`
	Medications    []Medication   `json:"medications"`
	MedicalHistory []HistoryEntry `json:"medicalHistory"`
	LabResults     []LabResult    `json:"labResults"`
	ExportDate     string         `json:"exportDate,omitempty"`
}

func seedVitals() Vitals {
	return Vitals{
		BloodPressure: Vital{Value: "120/80", Status: "normal", Trend: "stable"},
		HeartRate:     Vital{Value: "72 bpm", Status: "normal", Trend: "stable"},
		Temperature:   Vital{Value: "98.6°F", Status: "normal", Trend: "stable"},
		Weight:        Vital{Value: "65 kg", Status: "normal", Trend: "decreasing"},
		BMI:           Vital{Value: "22.1", Status: "normal", Trend: "stable"},
		BloodSugar:    Vital{Value: "95 mg/dL", Status: "normal", Trend: "stable"},
	}
}

func seedMedications() []Medication {
	return []Medication{
		{
			ID: "1", Name: "Metformin", Dosage: "500mg", Frequency: "Twice daily",
			PrescribedBy: "Dr. Sharma", StartDate: "2024-01-01", Status: "active",
		},
		{
			ID: "2", Name: "Vitamin D3", Dosage: "1000 IU", Frequency: "Once daily",
			PrescribedBy: "Dr. Patel", StartDate: "2023-12-15", Status: "active",
		},
		{
			ID: "3", Name: "Amoxicillin", Dosage: "250mg", Frequency: "Three times daily",
			PrescribedBy: "Dr. Kumar", StartDate: "2023-11-20", Status: "completed",
		},
	}
}

func seedHistory() []HistoryEntry {
	return []HistoryEntry{
		{
			ID: "1", Date: "2024-01-15", Type: "Consultation", Doctor: "Dr. Sharma",
			Diagnosis: "Type 2 Diabetes - Well Controlled", Status: "ongoing",
			Notes:         "Blood sugar levels are well controlled. Continue current medication.",
			Prescriptions: []string{"Metformin 500mg twice daily", "Regular blood sugar monitoring"},
		},
		{
			ID: "2", Date: "2024-01-10", Type: "Lab Test", Doctor: "Dr. Patel",
			Diagnosis: "Vitamin D Deficiency", Status: "improving",
			Notes:         "Vitamin D levels low. Started supplementation.",
			Prescriptions: []string{"Vitamin D3 1000 IU daily"},
		},
		{
			ID: "3", Date: "2023-12-20", Type: "Follow-up", Doctor: "Dr. Kumar",
			Diagnosis: "Upper Respiratory Infection", Status: "resolved",
			Notes:         "Infection cleared completely. No further treatment needed.",
			Prescriptions: []string{},
		},
	}
}

func seedLabResults() []LabResult {
	return []LabResult{
		{ID: "1", Date: "2024-01-12", Test: "HbA1c", Result: "6.8%", Range: "< 7.0%", Status: "normal"},
		{ID: "2", Date: "2024-01-12", Test: "Fasting Glucose", Result: "95 mg/dL", Range: "70-100 mg/dL", Status: "normal"},
		{ID: "3", Date: "2024-01-10", Test: "Vitamin D", Result: "25 ng/mL", Range: "30-50 ng/mL", Status: "low"},
		{ID: "4", Date: "2024-01-08", Test: "Total Cholesterol", Result: "180 mg/dL", Range: "< 200 mg/dL", Status: "normal"},
	}
}
