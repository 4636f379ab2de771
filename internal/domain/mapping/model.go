// Package mapping implements the NAMASTE to ICD-11 terminology mapping
// reviewer: proposed code mappings browsed by free-text search and a
// status facet, with simulated approve/reject review actions and a JSON
// export of the nested mapping graph.
package mapping

// Term is one side of a mapping: a code in either the NAMASTE
// (traditional medicine) or ICD-11 terminology.
type Term struct {
	Code        string `json:"code"`
	Term        string `json:"term"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// Mapping is a proposed NAMASTE to ICD-11 correspondence under review.
type Mapping struct {
	ID            string `json:"id"`
	Namaste       Term   `json:"namaste"`
	ICD11         Term   `json:"icd11"`
	Confidence    int    `json:"confidence"` // percent
	Status        string `json:"status"`     // pending, approved, rejected
	SubmittedBy   string `json:"submittedBy"`
	SubmittedDate string `json:"submittedDate"`
	ReviewedBy    string `json:"reviewedBy,omitempty"`
	ReviewDate    string `json:"reviewDate,omitempty"`
	Comments      string `json:"comments,omitempty"`
}

// ReviewInput carries the reviewer's comments.
type ReviewInput struct {
	Comments string `json:"comments,omitempty"`
}

// Stats reduces over the full mapping store, never the filtered view.
type Stats struct {
	Total         int     `json:"total"`
	Pending       int     `json:"pending"`
	Approved      int     `json:"approved"`
	Rejected      int     `json:"rejected"`
	AvgConfidence float64 `json:"avgConfidence"`
}

func seedMappings() []Mapping {
	return []Mapping{
		{
			ID: "MAP001",
			Namaste: Term{
				Code: "NAM-12345", Term: "शर्करा रोग (Diabetes)",
				Category:    "endocrine",
				Description: "Traditional Ayurvedic term for diabetes mellitus",
			},
			ICD11: Term{
				Code: "5A11", Term: "Type 2 diabetes mellitus",
				Category:    "Endocrine, nutritional or metabolic diseases",
				Description: "Non-insulin-dependent diabetes mellitus",
			},
			Confidence: 95, Status: "pending",
			SubmittedBy: "Dr. Ramesh Gupta", SubmittedDate: "2024-01-15",
		},
		{
			ID: "MAP002",
			Namaste: Term{
				Code: "NAM-23456", Term: "हृदय रोग (Heart Disease)",
				Category:    "cardiovascular",
				Description: "General term for heart-related ailments",
			},
			ICD11: Term{
				Code: "BA00", Term: "Essential hypertension",
				Category:    "Diseases of the circulatory system",
				Description: "High blood pressure without known secondary cause",
			},
			Confidence: 87, Status: "approved",
			SubmittedBy: "Dr. Priya Sharma", SubmittedDate: "2024-01-12",
			ReviewedBy: "Admin Kumar", ReviewDate: "2024-01-14",
			Comments: "Good mapping with cultural context preserved",
		},
		{
			ID: "MAP003",
			Namaste: Term{
				Code: "NAM-34567", Term: "श्वास रोग (Respiratory Disease)",
				Category:    "respiratory",
				Description: "Breathing-related disorders in Ayurveda",
			},
			ICD11: Term{
				Code: "CA20", Term: "Asthma",
				Category:    "Diseases of the respiratory system",
				Description: "Chronic inflammatory airway disease",
			},
			Confidence: 78, Status: "rejected",
			SubmittedBy: "Dr. Meera Singh", SubmittedDate: "2024-01-10",
			ReviewedBy: "Admin Kumar", ReviewDate: "2024-01-13",
			Comments: "Too broad - NAMASTE term covers multiple respiratory conditions",
		},
		{
			ID: "MAP004",
			Namaste: Term{
				Code: "NAM-45678", Term: "संधिशोथ (Joint Inflammation)",
				Category:    "musculoskeletal",
				Description: "Inflammatory joint conditions",
			},
			ICD11: Term{
				Code: "FA20", Term: "Rheumatoid arthritis",
				Category:    "Diseases of the musculoskeletal system",
				Description: "Chronic inflammatory arthritis",
			},
			Confidence: 92, Status: "pending",
			SubmittedBy: "Dr. Amit Verma", SubmittedDate: "2024-01-14",
		},
	}
}
