// Package auditlog implements the admin audit trail: seeded security and
// activity entries plus live entries appended by the audit middleware,
// browsed by free-text search, an action-class facet, and a user-type
// facet.
package auditlog

// Actor identifies who performed a logged action.
type Actor struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Type   string `json:"type"`
	Avatar string `json:"avatar,omitempty"`
}

// Entry is one audit trail record.
type Entry struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	User      Actor  `json:"user"`
	Action    string `json:"action"`
	Resource  string `json:"resource"`
	Details   string `json:"details"`
	IPAddress string `json:"ipAddress"`
	UserAgent string `json:"userAgent"`
	Status    string `json:"status"`
	Severity  string `json:"severity"`
}

// Stats reduces over the full trail, never the filtered view.
type Stats struct {
	TotalLogs      int `json:"totalLogs"`
	CriticalEvents int `json:"criticalEvents"`
	FailedActions  int `json:"failedActions"`
	UserActions    int `json:"userActions"`
}

func seedEntries() []Entry {
	return []Entry{
		{
			ID: "LOG001", Timestamp: "2024-01-15 10:35:22",
			User: Actor{
				ID: "USR001", Name: "Dr. Rajesh Sharma", Email: "rajesh.sharma@hospital.com",
				Type: "doctor", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=rajesh",
			},
			Action:   "patient_data_access",
			Resource: "Patient Record - Priya Patel (ID: PAT123)",
			Details:  "Accessed patient medical history for consultation",
			IPAddress: "192.168.1.45",
			UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
			Status:    "success", Severity: "info",
		},
		{
			ID: "LOG002", Timestamp: "2024-01-15 10:32:15",
			User: Actor{
				ID: "USR002", Name: "Admin Kumar", Email: "admin@swasthyasetu.com",
				Type: "admin", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=admin",
			},
			Action:   "user_management",
			Resource: "User Account - Dr. Meera Singh",
			Details:  "Deactivated user account due to license expiry",
			IPAddress: "10.0.0.5",
			UserAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)",
			Status:    "success", Severity: "warning",
		},
		{
			ID: "LOG003", Timestamp: "2024-01-15 10:28:43",
			User: Actor{
				ID: "USR003", Name: "System", Email: "system@swasthyasetu.com",
				Type: "system", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=system",
			},
			Action:   "data_backup",
			Resource: "Patient Database",
			Details:  "Automated daily backup completed successfully",
			IPAddress: "localhost",
			UserAgent: "System Process",
			Status:    "success", Severity: "info",
		},
		{
			ID: "LOG004", Timestamp: "2024-01-15 10:25:18",
			User: Actor{
				ID: "USR004", Name: "Unauthorized User", Email: "unknown@example.com",
				Type: "unknown", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=unknown",
			},
			Action:   "failed_login",
			Resource: "Admin Panel",
			Details:  "Failed login attempt with invalid credentials",
			IPAddress: "203.198.45.12",
			UserAgent: "curl/7.68.0",
			Status:    "failed", Severity: "critical",
		},
		{
			ID: "LOG005", Timestamp: "2024-01-15 10:20:05",
			User: Actor{
				ID: "USR005", Name: "Priya Patel", Email: "priya.patel@gmail.com",
				Type: "patient", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=priya",
			},
			Action:   "insurance_claim",
			Resource: "Insurance Claim - CLM001",
			Details:  "Submitted new insurance claim for hospitalization",
			IPAddress: "192.168.1.87",
			UserAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 14_6 like Mac OS X)",
			Status:    "success", Severity: "info",
		},
		{
			ID: "LOG006", Timestamp: "2024-01-15 10:15:33",
			User: Actor{
				ID: "USR006", Name: "Dr. Amit Verma", Email: "amit.verma@clinic.com",
				Type: "doctor", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=amit",
			},
			Action:   "diagnosis_entry",
			Resource: "Diagnosis Record - DGN456",
			Details:  "Created new diagnosis entry for patient consultation",
			IPAddress: "192.168.1.23",
			UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
			Status:    "success", Severity: "info",
		},
		{
			ID: "LOG007", Timestamp: "2024-01-15 10:10:12",
			User: Actor{
				ID: "USR007", Name: "System", Email: "system@swasthyasetu.com",
				Type: "system", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=system",
			},
			Action:   "api_sync_error",
			Resource: "NAMASTE Mapping Service",
			Details:  "API synchronization failed - connection timeout",
			IPAddress: "localhost",
			UserAgent: "System Process",
			Status:    "failed", Severity: "error",
		},
	}
}
