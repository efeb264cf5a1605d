package store

import (
	"context"
	"sync"

	"clinic-scheduler/internal/model"
)

// Memory keeps everything in process. Writes take the exclusive lock, reads
// take the shared lock and return copies.
type Memory struct {
	mu      sync.RWMutex
	users   []model.User
	byEmail map[string]int
	byID    map[string]int
	appts   []model.Appointment
}

func NewMemory() *Memory {
	return &Memory{
		byEmail: make(map[string]int),
		byID:    make(map[string]int),
	}
}

func (m *Memory) CreateUser(_ context.Context, u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byEmail[u.Email]; ok {
		return ErrDuplicateEmail
	}
	m.users = append(m.users, *u)
	m.byEmail[u.Email] = len(m.users) - 1
	m.byID[u.ID] = len(m.users) - 1
	return nil
}

func (m *Memory) UserByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i, ok := m.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	u := m.users[i]
	return &u, nil
}

func (m *Memory) UserByID(_ context.Context, id string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	u := m.users[i]
	return &u, nil
}

func (m *Memory) UsersByRole(_ context.Context, role model.Role) ([]model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []model.User
	for _, u := range m.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *Memory) CountUsers(context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.users), nil
}

func (m *Memory) AppendAppointment(_ context.Context, a *model.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.appts = append(m.appts, *a)
	return nil
}

func (m *Memory) AppointmentsForPatient(_ context.Context, patientID string) ([]model.Appointment, error) {
	return m.filter(func(a *model.Appointment) bool { return a.PatientID == patientID }), nil
}

func (m *Memory) AppointmentsForDoctor(_ context.Context, doctorID string) ([]model.Appointment, error) {
	return m.filter(func(a *model.Appointment) bool { return a.DoctorID == doctorID }), nil
}

func (m *Memory) CountAppointments(context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.appts), nil
}

func (m *Memory) filter(keep func(*model.Appointment) bool) []model.Appointment {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []model.Appointment
	for i := range m.appts {
		if keep(&m.appts[i]) {
			out = append(out, m.appts[i])
		}
	}
	return out
}
