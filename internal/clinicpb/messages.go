package clinicpb

import (
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type User struct {
	Id             string
	Name           string
	Email          string
	Phone          string
	UserType       string
	Specialization string
	LicenseNumber  string
}

func (m *User) MarshalWire() []byte {
	var b []byte
	b = appendString(b, 1, m.Id)
	b = appendString(b, 2, m.Name)
	b = appendString(b, 3, m.Email)
	b = appendString(b, 4, m.Phone)
	b = appendString(b, 5, m.UserType)
	b = appendString(b, 6, m.Specialization)
	b = appendString(b, 7, m.LicenseNumber)
	return b
}

func (m *User) UnmarshalWire(b []byte) error {
	fields := map[protowire.Number]*string{
		1: &m.Id, 2: &m.Name, 3: &m.Email, 4: &m.Phone,
		5: &m.UserType, 6: &m.Specialization, 7: &m.LicenseNumber,
	}
	return walk(b, stringFields(fields))
}

type Appointment struct {
	Id            string
	PatientId     string
	PatientName   string
	DoctorId      string
	DoctorName    string
	WhenScheduled *timestamppb.Timestamp
	Reason        string
	Status        string
	CreatedAt     *timestamppb.Timestamp
}

func (m *Appointment) MarshalWire() []byte {
	var b []byte
	b = appendString(b, 1, m.Id)
	b = appendString(b, 2, m.PatientId)
	b = appendString(b, 3, m.PatientName)
	b = appendString(b, 4, m.DoctorId)
	b = appendString(b, 5, m.DoctorName)
	b = appendTimestamp(b, 6, m.WhenScheduled)
	b = appendString(b, 7, m.Reason)
	b = appendString(b, 8, m.Status)
	b = appendTimestamp(b, 9, m.CreatedAt)
	return b
}

func (m *Appointment) UnmarshalWire(b []byte) error {
	strs := stringFields(map[protowire.Number]*string{
		1: &m.Id, 2: &m.PatientId, 3: &m.PatientName, 4: &m.DoctorId,
		5: &m.DoctorName, 7: &m.Reason, 8: &m.Status,
	})
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 6:
			return consumeTimestamp(typ, b, &m.WhenScheduled)
		case 9:
			return consumeTimestamp(typ, b, &m.CreatedAt)
		}
		return strs(num, typ, b)
	})
}

type RegisterRequest struct {
	Email          string
	Password       string
	Name           string
	Phone          string
	UserType       string
	Specialization string
	LicenseNumber  string
}

func (m *RegisterRequest) MarshalWire() []byte {
	var b []byte
	b = appendString(b, 1, m.Email)
	b = appendString(b, 2, m.Password)
	b = appendString(b, 3, m.Name)
	b = appendString(b, 4, m.Phone)
	b = appendString(b, 5, m.UserType)
	b = appendString(b, 6, m.Specialization)
	b = appendString(b, 7, m.LicenseNumber)
	return b
}

func (m *RegisterRequest) UnmarshalWire(b []byte) error {
	return walk(b, stringFields(map[protowire.Number]*string{
		1: &m.Email, 2: &m.Password, 3: &m.Name, 4: &m.Phone,
		5: &m.UserType, 6: &m.Specialization, 7: &m.LicenseNumber,
	}))
}

type RegisterResponse struct {
	UserId string
}

func (m *RegisterResponse) MarshalWire() []byte { return appendString(nil, 1, m.UserId) }

func (m *RegisterResponse) UnmarshalWire(b []byte) error {
	return walk(b, stringFields(map[protowire.Number]*string{1: &m.UserId}))
}

type LoginRequest struct {
	Email    string
	Password string
	UserType string
}

func (m *LoginRequest) MarshalWire() []byte {
	var b []byte
	b = appendString(b, 1, m.Email)
	b = appendString(b, 2, m.Password)
	b = appendString(b, 3, m.UserType)
	return b
}

func (m *LoginRequest) UnmarshalWire(b []byte) error {
	return walk(b, stringFields(map[protowire.Number]*string{
		1: &m.Email, 2: &m.Password, 3: &m.UserType,
	}))
}

type LoginResponse struct {
	Token    string
	UserId   string
	Name     string
	UserType string
}

func (m *LoginResponse) MarshalWire() []byte {
	var b []byte
	b = appendString(b, 1, m.Token)
	b = appendString(b, 2, m.UserId)
	b = appendString(b, 3, m.Name)
	b = appendString(b, 4, m.UserType)
	return b
}

func (m *LoginResponse) UnmarshalWire(b []byte) error {
	return walk(b, stringFields(map[protowire.Number]*string{
		1: &m.Token, 2: &m.UserId, 3: &m.Name, 4: &m.UserType,
	}))
}

type ListDoctorsRequest struct{}

func (*ListDoctorsRequest) MarshalWire() []byte { return nil }
func (*ListDoctorsRequest) UnmarshalWire(b []byte) error { return walk(b, skipAll) }

type ListDoctorsResponse struct {
	Doctors []*User
}

func (m *ListDoctorsResponse) MarshalWire() []byte {
	var b []byte
	for _, u := range m.Doctors {
		b = appendMessage(b, 1, u.MarshalWire())
	}
	return b
}

func (m *ListDoctorsResponse) UnmarshalWire(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != 1 {
			return 0, nil
		}
		u := &User{}
		n, err := consumeMessage(typ, b, u)
		if n > 0 && err == nil {
			m.Doctors = append(m.Doctors, u)
		}
		return n, err
	})
}

type BookAppointmentRequest struct {
	DoctorId      string
	WhenScheduled *timestamppb.Timestamp
	Reason        string
}

func (m *BookAppointmentRequest) MarshalWire() []byte {
	var b []byte
	b = appendString(b, 1, m.DoctorId)
	b = appendTimestamp(b, 2, m.WhenScheduled)
	b = appendString(b, 3, m.Reason)
	return b
}

func (m *BookAppointmentRequest) UnmarshalWire(b []byte) error {
	strs := stringFields(map[protowire.Number]*string{1: &m.DoctorId, 3: &m.Reason})
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 2 {
			return consumeTimestamp(typ, b, &m.WhenScheduled)
		}
		return strs(num, typ, b)
	})
}

type BookAppointmentResponse struct {
	Appointment *Appointment
}

func (m *BookAppointmentResponse) MarshalWire() []byte {
	if m.Appointment == nil {
		return nil
	}
	return appendMessage(nil, 1, m.Appointment.MarshalWire())
}

func (m *BookAppointmentResponse) UnmarshalWire(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != 1 {
			return 0, nil
		}
		m.Appointment = &Appointment{}
		return consumeMessage(typ, b, m.Appointment)
	})
}

type PatientDashboardRequest struct{}

func (*PatientDashboardRequest) MarshalWire() []byte { return nil }
func (*PatientDashboardRequest) UnmarshalWire(b []byte) error { return walk(b, skipAll) }

type PatientDashboardResponse struct {
	Upcoming []*Appointment
	Past     []*Appointment
}

func (m *PatientDashboardResponse) MarshalWire() []byte {
	b := appendAppointments(nil, 1, m.Upcoming)
	return appendAppointments(b, 2, m.Past)
}

func (m *PatientDashboardResponse) UnmarshalWire(b []byte) error {
	return walk(b, appointmentLists(map[protowire.Number]*[]*Appointment{
		1: &m.Upcoming, 2: &m.Past,
	}))
}

type DoctorDashboardRequest struct{}

func (*DoctorDashboardRequest) MarshalWire() []byte { return nil }
func (*DoctorDashboardRequest) UnmarshalWire(b []byte) error { return walk(b, skipAll) }

type DoctorDashboardResponse struct {
	Today  []*Appointment
	Future []*Appointment
}

func (m *DoctorDashboardResponse) MarshalWire() []byte {
	b := appendAppointments(nil, 1, m.Today)
	return appendAppointments(b, 2, m.Future)
}

func (m *DoctorDashboardResponse) UnmarshalWire(b []byte) error {
	return walk(b, appointmentLists(map[protowire.Number]*[]*Appointment{
		1: &m.Today, 2: &m.Future,
	}))
}

type AppointmentHistoryRequest struct{}

func (*AppointmentHistoryRequest) MarshalWire() []byte { return nil }
func (*AppointmentHistoryRequest) UnmarshalWire(b []byte) error { return walk(b, skipAll) }

type AppointmentHistoryResponse struct {
	Appointments []*Appointment
}

func (m *AppointmentHistoryResponse) MarshalWire() []byte {
	return appendAppointments(nil, 1, m.Appointments)
}

func (m *AppointmentHistoryResponse) UnmarshalWire(b []byte) error {
	return walk(b, appointmentLists(map[protowire.Number]*[]*Appointment{1: &m.Appointments}))
}

func skipAll(protowire.Number, protowire.Type, []byte) (int, error) { return 0, nil }

func stringFields(fields map[protowire.Number]*string) fieldFunc {
	return func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		dst, ok := fields[num]
		if !ok {
			return 0, nil
		}
		return consumeString(typ, b, dst)
	}
}

func appendAppointments(b []byte, num protowire.Number, list []*Appointment) []byte {
	for _, a := range list {
		b = appendMessage(b, num, a.MarshalWire())
	}
	return b
}

func appointmentLists(lists map[protowire.Number]*[]*Appointment) fieldFunc {
	return func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		dst, ok := lists[num]
		if !ok {
			return 0, nil
		}
		a := &Appointment{}
		n, err := consumeMessage(typ, b, a)
		if n > 0 && err == nil {
			*dst = append(*dst, a)
		}
		return n, err
	}
}
