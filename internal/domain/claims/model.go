// Package claims implements the admin insurance claim manager: the claim
// store browsed by free-text search and a status facet, coverage rule
// management, review actions, and claim analytics.
package claims

// Claim is one insurance claim under administrative review.
type Claim struct {
	ID                string  `json:"id"`
	PatientName       string  `json:"patientName"`
	PatientAvatar     string  `json:"patientAvatar,omitempty"`
	Diagnosis         string  `json:"diagnosis"`
	DiagnosisCode     string  `json:"diagnosisCode"`
	InsuranceProvider string  `json:"insuranceProvider"`
	ClaimAmount       float64 `json:"claimAmount"`
	Status            string  `json:"status"` // pending, approved, rejected, flagged
	SubmittedDate     string  `json:"submittedDate"`
	ReviewedDate      string  `json:"reviewedDate,omitempty"`
	ReviewerNotes     string  `json:"reviewerNotes,omitempty"`
	FlaggedReason     string  `json:"flaggedReason,omitempty"`
	DoctorName        string  `json:"doctorName"`
}

// CoverageRule maps a diagnosis code to the coverage a provider offers.
type CoverageRule struct {
	ID                string  `json:"id"`
	DiagnosisCode     string  `json:"diagnosisCode"`
	DiagnosisName     string  `json:"diagnosisName"`
	InsuranceProvider string  `json:"insuranceProvider"`
	Coverage          string  `json:"coverage"`
	MaxAmount         float64 `json:"maxAmount"`
	Copayment         int     `json:"copayment"`
	IsActive          bool    `json:"isActive"`
	CreatedDate       string  `json:"createdDate"`
}

// CreateRuleInput is the rule creation form payload.
type CreateRuleInput struct {
	DiagnosisCode     string  `json:"diagnosisCode"`
	DiagnosisName     string  `json:"diagnosisName"`
	InsuranceProvider string  `json:"insuranceProvider"`
	Coverage          string  `json:"coverage,omitempty"`
	MaxAmount         float64 `json:"maxAmount,omitempty"`
	Copayment         int     `json:"copayment,omitempty"`
}

// ReviewInput carries optional notes for a review action.
type ReviewInput struct {
	Notes string `json:"notes,omitempty"`
}

// Analytics reduces over the full claim store, never the filtered view.
type Analytics struct {
	TotalClaims      int     `json:"totalClaims"`
	Approved         int     `json:"approved"`
	Rejected         int     `json:"rejected"`
	Pending          int     `json:"pending"`
	Flagged          int     `json:"flagged"`
	ApprovalRate     int     `json:"approvalRate"` // rounded percent
	TotalClaimAmount float64 `json:"totalClaimAmount"`
}

const patientAvatar = "https://images.unsplash.com/photo-1676552055618-22ec8cde399a?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxoYXBweSUyMHBhdGllbnQlMjBoZWFsdGhjYXJlJTIwcG9ydHJhaXR8ZW58MXx8fHwxNzU4MjAzODE0fDA&ixlib=rb-4.1.0&q=80&w=1080"

func seedClaims() []Claim {
	return []Claim{
		{
			ID: "CLM-001", PatientName: "Rajesh Kumar", PatientAvatar: patientAvatar,
			Diagnosis: "Essential (primary) hypertension", DiagnosisCode: "I10",
			InsuranceProvider: "Star Health", ClaimAmount: 15000,
			Status: "pending", SubmittedDate: "2024-01-15",
			DoctorName: "Dr. Priya Sharma",
		},
		{
			ID: "CLM-002", PatientName: "Priya Patel", PatientAvatar: patientAvatar,
			Diagnosis: "Type 2 diabetes mellitus without complications", DiagnosisCode: "E11.9",
			InsuranceProvider: "HDFC ERGO", ClaimAmount: 25000,
			Status: "approved", SubmittedDate: "2024-01-12", ReviewedDate: "2024-01-14",
			ReviewerNotes: "All documentation verified. Claim approved.",
			DoctorName:    "Dr. Amit Singh",
		},
		{
			ID: "CLM-003", PatientName: "Amit Verma", PatientAvatar: patientAvatar,
			Diagnosis: "Acute nasopharyngitis (common cold)", DiagnosisCode: "J00",
			InsuranceProvider: "ICICI Lombard", ClaimAmount: 5000,
			Status: "flagged", SubmittedDate: "2024-01-10",
			FlaggedReason: "Diagnosis code mismatch with symptoms",
			DoctorName:    "Dr. Neha Gupta",
		},
		{
			ID: "CLM-004", PatientName: "Sunita Devi", PatientAvatar: patientAvatar,
			Diagnosis: "Asthma, unspecified", DiagnosisCode: "J45.9",
			InsuranceProvider: "New India Assurance", ClaimAmount: 12000,
			Status: "rejected", SubmittedDate: "2024-01-08", ReviewedDate: "2024-01-11",
			ReviewerNotes: "Pre-existing condition not disclosed during policy purchase.",
			DoctorName:    "Dr. Rakesh Kumar",
		},
	}
}

func seedRules() []CoverageRule {
	return []CoverageRule{
		{
			ID: "RULE-001", DiagnosisCode: "I10",
			DiagnosisName:     "Essential (primary) hypertension",
			InsuranceProvider: "Star Health", Coverage: "80%",
			MaxAmount: 50000, Copayment: 20, IsActive: true, CreatedDate: "2024-01-01",
		},
		{
			ID: "RULE-002", DiagnosisCode: "E11.9",
			DiagnosisName:     "Type 2 diabetes mellitus without complications",
			InsuranceProvider: "HDFC ERGO", Coverage: "100%",
			MaxAmount: 100000, Copayment: 0, IsActive: true, CreatedDate: "2024-01-01",
		},
		{
			ID: "RULE-003", DiagnosisCode: "J45.9",
			DiagnosisName:     "Asthma, unspecified",
			InsuranceProvider: "New India Assurance", Coverage: "70%",
			MaxAmount: 30000, Copayment: 30, IsActive: true, CreatedDate: "2024-01-01",
		},
	}
}
