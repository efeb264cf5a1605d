package store

import (
	"context"

	"clinic-scheduler/internal/model"
)

func (s *Postgres) AppendAppointment(ctx context.Context, a *model.Appointment) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO appointments (id, patient_id, patient_name, doctor_id, doctor_name,
		                           when_scheduled, reason, status, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		a.ID, a.PatientID, a.PatientName, a.DoctorID, a.DoctorName,
		a.WhenScheduled, a.Reason, a.Status, a.CreatedAt,
	)
	return err
}

func (s *Postgres) AppointmentsForPatient(ctx context.Context, patientID string) ([]model.Appointment, error) {
	return s.listAppointments(ctx, `patient_id`, patientID)
}

func (s *Postgres) AppointmentsForDoctor(ctx context.Context, doctorID string) ([]model.Appointment, error) {
	return s.listAppointments(ctx, `doctor_id`, doctorID)
}

func (s *Postgres) CountAppointments(ctx context.Context) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM appointments`).Scan(&n)
	return n, err
}

// col is one of two fixed column names, never user input
func (s *Postgres) listAppointments(ctx context.Context, col, id string) ([]model.Appointment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, patient_id, patient_name, doctor_id, doctor_name,
		        when_scheduled, reason, status, created_at
		 FROM appointments
		 WHERE `+col+` = $1
		 ORDER BY seq`, id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(
			&a.ID, &a.PatientID, &a.PatientName, &a.DoctorID, &a.DoctorName,
			&a.WhenScheduled, &a.Reason, &a.Status, &a.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
