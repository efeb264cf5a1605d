package model

import "time"

type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
)

// Valid reports whether r is one of the two registrable roles.
func (r Role) Valid() bool {
	return r == RolePatient || r == RoleDoctor
}

// appointments never leave this state; there is no cancel/complete flow
const StatusScheduled = "scheduled"

type User struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time

	// doctor only
	Specialization string
	LicenseNumber  string
}

// Appointment is immutable once booked. PatientName and DoctorName are
// snapshots taken at booking time and are never refreshed.
type Appointment struct {
	ID            string
	PatientID     string
	PatientName   string
	DoctorID      string
	DoctorName    string
	WhenScheduled time.Time
	Reason        string
	Status        string
	CreatedAt     time.Time
}
