// Package models holds the client-side records exchanged with the Carebook
// backend. These are pass-through shapes: the client never mutates their
// schema, only renders them (and flips an appointment status optimistically).
package models

// Role is the closed set of account roles the backend issues.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

// RoleFromCode maps the numeric role claim carried in access tokens to a
// role name: 1→patient, 2→doctor, 3→admin. Any other value defaults to
// patient.
func RoleFromCode(code int) Role {
	switch code {
	case 2:
		return RoleDoctor
	case 3:
		return RoleAdmin
	default:
		return RolePatient
	}
}

// User is the authenticated account profile. A serialized copy lives in the
// credential store between restarts.
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      Role   `json:"user_type"`
	Phone     string `json:"phone,omitempty"`
}

// FullName joins first and last name for display.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
