// Package dashboard derives the per-role views of an appointment list. All
// functions are pure and keep the input order.
package dashboard

import (
	"time"

	"clinic-scheduler/internal/model"
)

type PatientView struct {
	Upcoming []model.Appointment
	Past     []model.Appointment
}

type DoctorView struct {
	Today  []model.Appointment
	Future []model.Appointment
}

// PartitionPatientView puts appointments strictly after now in Upcoming and
// everything else, including one at exactly now, in Past.
func PartitionPatientView(list []model.Appointment, now time.Time) PatientView {
	var v PatientView
	for _, a := range list {
		if a.WhenScheduled.After(now) {
			v.Upcoming = append(v.Upcoming, a)
		} else {
			v.Past = append(v.Past, a)
		}
	}
	return v
}

// PartitionDoctorView compares calendar days in today's location. Appointments
// on an earlier day appear in neither bucket.
func PartitionDoctorView(list []model.Appointment, today time.Time) DoctorView {
	var v DoctorView
	day := dateOf(today, today.Location())
	for _, a := range list {
		d := dateOf(a.WhenScheduled, today.Location())
		switch {
		case d.Equal(day):
			v.Today = append(v.Today, a)
		case d.After(day):
			v.Future = append(v.Future, a)
		}
	}
	return v
}

// HistoryFor keeps the appointments where userID is the patient (role
// patient) or the doctor (role doctor).
func HistoryFor(userID string, role model.Role, list []model.Appointment) []model.Appointment {
	var out []model.Appointment
	for _, a := range list {
		if (role == model.RolePatient && a.PatientID == userID) ||
			(role == model.RoleDoctor && a.DoctorID == userID) {
			out = append(out, a)
		}
	}
	return out
}

func dateOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
