package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"clinic-scheduler/internal/clinic"
	"clinic-scheduler/internal/model"
	"clinic-scheduler/internal/session"
)

type bookForm struct {
	DoctorID string `form:"doctor_id"`
	When     string `form:"appointment_datetime"`
	Reason   string `form:"reason"`
}

func (s *Server) patientDashboard(c *gin.Context) {
	who := session.FromContext(c.Request.Context())
	v, err := s.svc.PatientView(c.Request.Context(), who.UserID)
	if err != nil {
		s.fail(c, "patient dashboard", err)
		return
	}
	s.render(c, "patient_dashboard.html", gin.H{"Upcoming": v.Upcoming, "Past": v.Past})
}

func (s *Server) doctorDashboard(c *gin.Context) {
	who := session.FromContext(c.Request.Context())
	v, err := s.svc.DoctorView(c.Request.Context(), who.UserID)
	if err != nil {
		s.fail(c, "doctor dashboard", err)
		return
	}
	s.render(c, "doctor_dashboard.html", gin.H{"Today": v.Today, "Future": v.Future})
}

func (s *Server) bookForm(c *gin.Context) {
	docs, err := s.svc.ListByRole(c.Request.Context(), model.RoleDoctor)
	if err != nil {
		s.fail(c, "list doctors", err)
		return
	}
	s.render(c, "book_appointment.html", gin.H{"Doctors": docs})
}

func (s *Server) book(c *gin.Context) {
	who := session.FromContext(c.Request.Context())

	var f bookForm
	if err := c.ShouldBind(&f); err != nil {
		s.flash(c, flashError, "Invalid booking form.")
		c.Redirect(http.StatusFound, "/book-appointment")
		return
	}

	when, err := s.svc.ParseSchedule(f.When)
	if err == nil {
		_, err = s.svc.Book(c.Request.Context(), who, f.DoctorID, when, f.Reason)
	}
	switch {
	case errors.Is(err, clinic.ErrDoctorNotFound):
		slog.Warn("booking rejected", "patient_id", who.UserID, "doctor_id", f.DoctorID)
		s.flash(c, flashError, "Doctor not found")
		c.Redirect(http.StatusFound, "/book-appointment")
		return
	case errors.Is(err, clinic.ErrInvalidInput):
		s.flash(c, flashError, err.Error())
		c.Redirect(http.StatusFound, "/book-appointment")
		return
	case err != nil:
		s.fail(c, "book", err)
		return
	}

	slog.Info("appointment booked", "patient_id", who.UserID, "doctor_id", f.DoctorID)
	s.flash(c, flashSuccess, "Appointment booked successfully!")
	c.Redirect(http.StatusFound, "/patient/dashboard")
}

func (s *Server) history(c *gin.Context) {
	list, err := s.svc.History(c.Request.Context(), session.FromContext(c.Request.Context()))
	if err != nil {
		s.fail(c, "history", err)
		return
	}
	s.render(c, "appointment_history.html", gin.H{"Appointments": list})
}
