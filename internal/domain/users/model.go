// Package users implements the admin user directory: a fixture-backed
// record store browsed by free-text search plus type and status facets,
// with simulated administrative actions.
package users

// User is one directory entry. Detail fields are role-specific: doctors
// carry department and license, patients phone and age, admins a role
// label and permissions.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Type      string `json:"type"`
	Status    string `json:"status"`
	LastLogin string `json:"lastLogin"`
	CreatedAt string `json:"createdAt"`
	Avatar    string `json:"avatar"`

	// Doctor fields
	Department    string `json:"department,omitempty"`
	LicenseNumber string `json:"licenseNumber,omitempty"`

	// Patient fields
	Phone string `json:"phone,omitempty"`
	Age   int    `json:"age,omitempty"`

	// Admin fields
	Role        string   `json:"role,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
}

// Stats summarizes the directory. DirectoryTotals are platform-wide
// headline figures; TypeCounts reduce over the full fixture store.
type Stats struct {
	TotalUsers int            `json:"totalUsers"`
	Doctors    int            `json:"doctors"`
	Patients   int            `json:"patients"`
	Admins     int            `json:"admins"`
	TypeCounts map[string]int `json:"typeCounts"`
}

// CreateUserInput is the add-user form payload. Submission is validated
// and acknowledged; the store itself is never mutated.
type CreateUserInput struct {
	Type  string `json:"type"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// ActionInput names a simulated administrative action on one user.
type ActionInput struct {
	Action string `json:"action"`
	Reason string `json:"reason,omitempty"`
}

func seedUsers() []User {
	return []User{
		{
			ID: "1", Name: "Dr. Rajesh Sharma", Email: "rajesh.sharma@hospital.com",
			Type: "doctor", Status: "active",
			LastLogin: "2024-01-15 10:30 AM", CreatedAt: "2023-08-15", Avatar: "./man.png",
			Department: "Cardiology", LicenseNumber: "MED123456",
		},
		{
			ID: "2", Name: "Priya Patel", Email: "priya.patel@gmail.com",
			Type: "patient", Status: "active",
			LastLogin: "2024-01-14 2:15 PM", CreatedAt: "2023-11-20", Avatar: "./woman.png",
			Phone: "+91 98765 43210", Age: 32,
		},
		{
			ID: "3", Name: "Admin Kumar", Email: "admin@swasthyasetu.com",
			Type: "admin", Status: "active",
			LastLogin: "2024-01-15 9:00 AM", CreatedAt: "2023-01-01", Avatar: "./man.png",
			Role: "Super Admin", Permissions: []string{"all"},
		},
		{
			ID: "4", Name: "Dr. Meera Singh", Email: "meera.singh@clinic.com",
			Type: "doctor", Status: "inactive",
			LastLogin: "2024-01-10 4:45 PM", CreatedAt: "2023-05-10", Avatar: "./woman.png",
			Department: "Pediatrics", LicenseNumber: "MED789012",
		},
		{
			ID: "5", Name: "Amit Verma", Email: "amit.verma@yahoo.com",
			Type: "patient", Status: "suspended",
			LastLogin: "2024-01-05 11:20 AM", CreatedAt: "2023-12-01", Avatar: "./man.png",
			Phone: "+91 87654 32109", Age: 28,
		},
	}
}
