// Package identity handles the sign-in surface: login fabricates a
// session for the chosen role and issues a bearer token, logout is an
// acknowledgement, and the session endpoint echoes the token's claims.
package identity

// User is the signed-in identity handed back to the client.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// LoginInput is the sign-in form payload. Name is optional; when empty
// the local part of the email is used.
type LoginInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session is the login response: the fabricated user plus their token.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
