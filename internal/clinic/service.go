// Package clinic implements the credential store and appointment ledger
// operations on top of a store.Store.
package clinic

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"clinic-scheduler/internal/auth"
	"clinic-scheduler/internal/dashboard"
	"clinic-scheduler/internal/model"
	"clinic-scheduler/internal/session"
	"clinic-scheduler/internal/store"
)

type Service struct {
	store  store.Store
	hasher auth.Hasher
	loc    *time.Location
	now    func() time.Time
}

func New(st store.Store, h auth.Hasher, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{store: st, hasher: h, loc: loc, now: time.Now}
}

// WithClock swaps the time source; tests pin "now" with it.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Now is the reference instant for dashboards, in the clinic's location.
func (s *Service) Now() time.Time { return s.now().In(s.loc) }

func (s *Service) Location() *time.Location { return s.loc }

type Registration struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Role     model.Role

	// required when Role is doctor
	Specialization string
	LicenseNumber  string
}

func (r *Registration) validate() error {
	required := []struct{ field, val string }{
		{"email", r.Email},
		{"user_type", string(r.Role)},
		{"name", r.Name},
		{"phone", r.Phone},
		{"password", r.Password},
	}
	if r.Role == model.RoleDoctor {
		required = append(required,
			struct{ field, val string }{"specialization", r.Specialization},
			struct{ field, val string }{"license_number", r.LicenseNumber},
		)
	}
	for _, f := range required {
		if strings.TrimSpace(f.val) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidInput, f.field)
		}
	}
	if !r.Role.Valid() {
		return fmt.Errorf("%w: unknown user_type %q", ErrInvalidInput, r.Role)
	}
	return nil
}

// Register creates a user. Emails are compared exactly as given.
func (s *Service) Register(ctx context.Context, r Registration) (*model.User, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(r.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &model.User{
		ID:           uuid.NewString(),
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		PasswordHash: hash,
		Role:         r.Role,
		CreatedAt:    s.now().UTC(),
	}
	if r.Role == model.RoleDoctor {
		u.Specialization = r.Specialization
		u.LicenseNumber = r.LicenseNumber
	}

	if err := s.store.CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}
	return u, nil
}

// Authenticate succeeds only when the email exists, the password matches and
// the stored role equals the claimed one. Every mismatch looks the same to
// the caller.
func (s *Service) Authenticate(ctx context.Context, email, password string, role model.Role) (*model.User, error) {
	u, err := s.store.UserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !s.hasher.Check(u.PasswordHash, password) || u.Role != role {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *Service) FindByID(ctx context.Context, id string) (*model.User, error) {
	return s.store.UserByID(ctx, id)
}

func (s *Service) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	return s.store.UsersByRole(ctx, role)
}

// Book appends an appointment for the authenticated patient. The doctor id is
// resolved among all users. Both names are copied onto the record and are
// not kept in sync afterwards.
func (s *Service) Book(ctx context.Context, patient session.Identity, doctorID string, when time.Time, reason string) (*model.Appointment, error) {
	if doctorID == "" {
		return nil, ErrDoctorNotFound
	}
	if when.IsZero() {
		return nil, fmt.Errorf("%w: appointment_datetime is required", ErrInvalidInput)
	}
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: reason is required", ErrInvalidInput)
	}

	doc, err := s.store.UserByID(ctx, doctorID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrDoctorNotFound
	}
	if err != nil {
		return nil, err
	}

	apt := &model.Appointment{
		ID:            uuid.NewString(),
		PatientID:     patient.UserID,
		PatientName:   patient.Name,
		DoctorID:      doc.ID,
		DoctorName:    doc.Name,
		WhenScheduled: when,
		Reason:        reason,
		Status:        model.StatusScheduled,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.store.AppendAppointment(ctx, apt); err != nil {
		return nil, err
	}
	return apt, nil
}

func (s *Service) ListForPatient(ctx context.Context, patientID string) ([]model.Appointment, error) {
	return s.store.AppointmentsForPatient(ctx, patientID)
}

func (s *Service) ListForDoctor(ctx context.Context, doctorID string) ([]model.Appointment, error) {
	return s.store.AppointmentsForDoctor(ctx, doctorID)
}

// PatientView partitions the patient's appointments around Now.
func (s *Service) PatientView(ctx context.Context, patientID string) (dashboard.PatientView, error) {
	list, err := s.ListForPatient(ctx, patientID)
	if err != nil {
		return dashboard.PatientView{}, err
	}
	return dashboard.PartitionPatientView(list, s.Now()), nil
}

// DoctorView partitions the doctor's appointments around today's date.
func (s *Service) DoctorView(ctx context.Context, doctorID string) (dashboard.DoctorView, error) {
	list, err := s.ListForDoctor(ctx, doctorID)
	if err != nil {
		return dashboard.DoctorView{}, err
	}
	return dashboard.PartitionDoctorView(list, s.Now()), nil
}

// History returns every appointment the identity takes part in under its role.
func (s *Service) History(ctx context.Context, who session.Identity) ([]model.Appointment, error) {
	var (
		list []model.Appointment
		err  error
	)
	switch who.Role {
	case model.RolePatient:
		list, err = s.ListForPatient(ctx, who.UserID)
	case model.RoleDoctor:
		list, err = s.ListForDoctor(ctx, who.UserID)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return dashboard.HistoryFor(who.UserID, who.Role, list), nil
}

var scheduleLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
}

// ParseSchedule reads an appointment time as sent by a datetime-local input.
// Naive values are taken in the clinic's location; RFC 3339 keeps its offset.
func (s *Service) ParseSchedule(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: appointment_datetime is required", ErrInvalidInput)
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	for _, layout := range scheduleLayouts {
		if t, err := time.ParseInLocation(layout, raw, s.loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: bad appointment_datetime", ErrInvalidInput)
}
