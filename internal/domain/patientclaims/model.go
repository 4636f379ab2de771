// Package patientclaims implements the patient-side insurance claim
// screen: existing claims browsed by free-text search and a status facet,
// and a validated claim submission form with a simulated processing
// round-trip.
package patientclaims

// Claim is one of the patient's existing claims.
type Claim struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	Type            string `json:"type"`
	Amount          string `json:"amount"`
	Status          string `json:"status"` // approved, processing, rejected
	Hospital        string `json:"hospital"`
	ApprovedAmount  string `json:"approvedAmount,omitempty"`
	ProcessedDate   string `json:"processedDate,omitempty"`
	RejectionReason string `json:"rejectionReason,omitempty"`
}

// SubmissionInput is the new claim form payload.
type SubmissionInput struct {
	ClaimType            string  `json:"claimType"`
	TreatmentDate        string  `json:"treatmentDate"` // YYYY-MM-DD
	HospitalName         string  `json:"hospitalName"`
	DoctorName           string  `json:"doctorName"`
	DiagnosisCode        string  `json:"diagnosisCode,omitempty"`
	TreatmentDescription string  `json:"treatmentDescription,omitempty"`
	ClaimAmount          float64 `json:"claimAmount"`
	PolicyNumber         string  `json:"policyNumber,omitempty"`
}

func seedClaims() []Claim {
	return []Claim{
		{
			ID: "CLM001", Date: "2024-01-15", Type: "Hospitalization",
			Amount: "₹25,000", Status: "approved", Hospital: "Apollo Hospital",
			ApprovedAmount: "₹23,500", ProcessedDate: "2024-01-20",
		},
		{
			ID: "CLM002", Date: "2024-01-10", Type: "Outpatient",
			Amount: "₹5,500", Status: "processing", Hospital: "Max Healthcare",
		},
		{
			ID: "CLM003", Date: "2023-12-20", Type: "Pharmacy",
			Amount: "₹1,200", Status: "rejected", Hospital: "MedPlus Pharmacy",
			ApprovedAmount: "₹0", ProcessedDate: "2023-12-25",
			RejectionReason: "Medicine not covered under policy",
		},
	}
}
