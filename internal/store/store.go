// Package store holds user and appointment records behind a single
// repository interface, with in-memory and Postgres implementations.
package store

import (
	"context"
	"errors"

	"clinic-scheduler/internal/model"
)

var (
	ErrDuplicateEmail = errors.New("email already registered")
	ErrNotFound       = errors.New("not found")
)

// Store is the persistence boundary for the clinic. Listing methods return
// records in insertion order.
type Store interface {
	// CreateUser fails with ErrDuplicateEmail if the email is taken. The check
	// and the insert are atomic.
	CreateUser(ctx context.Context, u *model.User) error
	UserByEmail(ctx context.Context, email string) (*model.User, error)
	UserByID(ctx context.Context, id string) (*model.User, error)
	UsersByRole(ctx context.Context, role model.Role) ([]model.User, error)
	CountUsers(ctx context.Context) (int, error)

	AppendAppointment(ctx context.Context, a *model.Appointment) error
	AppointmentsForPatient(ctx context.Context, patientID string) ([]model.Appointment, error)
	AppointmentsForDoctor(ctx context.Context, doctorID string) ([]model.Appointment, error)
	CountAppointments(ctx context.Context) (int, error)
}
