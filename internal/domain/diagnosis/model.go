// Package diagnosis implements the doctor dashboard: the patient roster
// searched by name or phone, ICD-11 diagnosis suggestions, AYUSH and
// modern treatment recommendations, validated diagnosis entry with a
// simulated save, and per-patient problem list history.
package diagnosis

// PatientVitals is the roster patient's last recorded measurement set.
type PatientVitals struct {
	BloodPressure string `json:"bloodPressure"`
	HeartRate     string `json:"heartRate"`
	Temperature   string `json:"temperature"`
	Weight        string `json:"weight"`
	Height        string `json:"height"`
}

// Problem is one entry in a patient's problem list history.
type Problem struct {
	ID            string   `json:"id"`
	Date          string   `json:"date"`
	Diagnosis     string   `json:"diagnosis"`
	Status        string   `json:"status"`
	Notes         string   `json:"notes"`
	Prescriptions []string `json:"prescriptions"`
	Doctor        string   `json:"doctor"`
}

// Patient is one roster entry with their problem list.
type Patient struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	Age                int           `json:"age"`
	Gender             string        `json:"gender"`
	Phone              string        `json:"phone"`
	Avatar             string        `json:"avatar,omitempty"`
	Status             string        `json:"status"` // active, monitoring, recovered
	LastVisit          string        `json:"lastVisit"`
	Vitals             PatientVitals `json:"vitals"`
	Allergies          []string      `json:"allergies"`
	CurrentMedications []string      `json:"currentMedications"`
	TotalVisits        int           `json:"totalVisits"`
	Diagnoses          []Problem     `json:"diagnoses"`
}

// Suggestion is one ICD-11 diagnosis code offered during entry.
type Suggestion struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Treatments holds both recommendation tracks.
type Treatments struct {
	Ayush  []string `json:"ayush"`
	Modern []string `json:"modern"`
}

// EntryInput is the diagnosis entry form payload.
type EntryInput struct {
	PatientID     string   `json:"patientId"`
	Diagnoses     []string `json:"diagnoses"`
	Notes         string   `json:"notes,omitempty"`
	Prescriptions []string `json:"prescriptions,omitempty"`
}

func seedPatients() []Patient {
	return []Patient{
		{
			ID: "1", Name: "Rajesh Kumar", Age: 45, Gender: "Male",
			Phone:  "+91 98765 43210",
			Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=rajesh",
			Status: "active", LastVisit: "2024-01-15",
			Vitals: PatientVitals{
				BloodPressure: "140/90", HeartRate: "78 bpm", Temperature: "98.6°F",
				Weight: "75 kg", Height: "170 cm",
			},
			Allergies:          []string{"Penicillin", "Peanuts"},
			CurrentMedications: []string{"Amlodipine 5mg", "Metformin 500mg"},
			TotalVisits:        12,
			Diagnoses: []Problem{
				{
					ID: "1", Date: "2024-01-15",
					Diagnosis: "I10 - Essential (primary) hypertension", Status: "ongoing",
					Notes:         "Blood pressure remains elevated. Continue current medication.",
					Prescriptions: []string{"Amlodipine 5mg once daily", "Regular BP monitoring"},
					Doctor:        "Dr. Smith",
				},
				{
					ID: "2", Date: "2024-01-10",
					Diagnosis: "E11.9 - Type 2 diabetes mellitus without complications", Status: "stable",
					Notes:         "HbA1c levels improved. Continue current management.",
					Prescriptions: []string{"Metformin 500mg twice daily", "Dietary modifications"},
					Doctor:        "Dr. Smith",
				},
			},
		},
		{
			ID: "2", Name: "Priya Sharma", Age: 32, Gender: "Female",
			Phone:  "+91 87654 32109",
			Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=priya",
			Status: "monitoring", LastVisit: "2024-01-12",
			Vitals: PatientVitals{
				BloodPressure: "120/80", HeartRate: "72 bpm", Temperature: "98.2°F",
				Weight: "58 kg", Height: "162 cm",
			},
			Allergies:          []string{"Lactose"},
			CurrentMedications: []string{"Iron supplements", "Prenatal vitamins"},
			TotalVisits:        8,
			Diagnoses: []Problem{
				{
					ID: "1", Date: "2024-01-12",
					Diagnosis: "O99.0 - Anemia complicating pregnancy", Status: "improving",
					Notes:         "Iron levels improving with supplementation.",
					Prescriptions: []string{"Iron sulfate 325mg twice daily", "Prenatal vitamins"},
					Doctor:        "Dr. Patel",
				},
			},
		},
		{
			ID: "3", Name: "Amit Patel", Age: 28, Gender: "Male",
			Phone:  "+91 76543 21098",
			Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=amit",
			Status: "recovered", LastVisit: "2024-01-08",
			Vitals: PatientVitals{
				BloodPressure: "118/75", HeartRate: "68 bpm", Temperature: "98.4°F",
				Weight: "70 kg", Height: "175 cm",
			},
			Allergies:          []string{},
			CurrentMedications: []string{},
			TotalVisits:        3,
			Diagnoses: []Problem{
				{
					ID: "1", Date: "2024-01-08",
					Diagnosis: "J45.9 - Asthma, unspecified", Status: "resolved",
					Notes:         "Asthma symptoms well controlled with inhaler.",
					Prescriptions: []string{"Salbutamol inhaler as needed"},
					Doctor:        "Dr. Johnson",
				},
			},
		},
	}
}

func seedSuggestions() []Suggestion {
	return []Suggestion{
		{Code: "J00", Name: "Acute nasopharyngitis (common cold)", Category: "Respiratory"},
		{Code: "K59.0", Name: "Constipation", Category: "Digestive"},
		{Code: "M79.3", Name: "Panniculitis, unspecified", Category: "Musculoskeletal"},
		{Code: "R50.9", Name: "Fever, unspecified", Category: "General"},
		{Code: "I10", Name: "Essential (primary) hypertension", Category: "Cardiovascular"},
		{Code: "E11.9", Name: "Type 2 diabetes mellitus without complications", Category: "Endocrine"},
		{Code: "J45.9", Name: "Asthma, unspecified", Category: "Respiratory"},
		{Code: "M25.50", Name: "Pain in joint, unspecified", Category: "Musculoskeletal"},
	}
}

func seedTreatments() Treatments {
	return Treatments{
		Ayush: []string{
			"Tulsi (Holy Basil) - 2 tablets twice daily for respiratory health",
			"Ashwagandha - 500mg daily for stress management",
			"Triphala - 1 tablet before bed for digestive health",
			"Turmeric (Curcumin) - 500mg twice daily for inflammation",
		},
		Modern: []string{
			"Paracetamol 500mg - Every 6 hours for fever/pain",
			"Amoxicillin 500mg - Three times daily for bacterial infections",
			"Omeprazole 20mg - Once daily for acid reflux",
			"Metformin 500mg - Twice daily for diabetes management",
		},
	}
}
