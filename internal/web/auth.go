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

type registerForm struct {
	Email          string `form:"email"`
	UserType       string `form:"user_type"`
	Name           string `form:"name"`
	Phone          string `form:"phone"`
	Password       string `form:"password"`
	Specialization string `form:"specialization"`
	LicenseNumber  string `form:"license_number"`
}

type loginForm struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
	UserType string `form:"user_type" binding:"required"`
}

func (s *Server) index(c *gin.Context) {
	s.render(c, "index.html", nil)
}

func (s *Server) registerForm(c *gin.Context) {
	s.render(c, "register.html", nil)
}

func (s *Server) register(c *gin.Context) {
	var f registerForm
	if err := c.ShouldBind(&f); err != nil {
		slog.Warn("register form rejected", "error", err, "remote_addr", c.ClientIP())
		s.flash(c, flashError, "Invalid registration form.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	u, err := s.svc.Register(c.Request.Context(), clinic.Registration{
		Name:           f.Name,
		Email:          f.Email,
		Phone:          f.Phone,
		Password:       f.Password,
		Role:           model.Role(f.UserType),
		Specialization: f.Specialization,
		LicenseNumber:  f.LicenseNumber,
	})
	switch {
	case errors.Is(err, clinic.ErrDuplicateUser):
		slog.Warn("register failed", "error", err, "email", f.Email, "remote_addr", c.ClientIP())
		s.flash(c, flashError, "User already exists.")
		c.Redirect(http.StatusFound, "/register")
		return
	case errors.Is(err, clinic.ErrInvalidInput):
		s.flash(c, flashError, err.Error())
		c.Redirect(http.StatusFound, "/register")
		return
	case err != nil:
		s.fail(c, "register", err)
		return
	}

	slog.Info("user registered", "user_id", u.ID, "user_type", u.Role, "remote_addr", c.ClientIP())
	s.flash(c, flashSuccess, "Registration successful. Please login.")
	c.Redirect(http.StatusFound, "/login")
}

func (s *Server) loginForm(c *gin.Context) {
	s.render(c, "login.html", nil)
}

// login re-renders the form on failure rather than redirecting.
func (s *Server) login(c *gin.Context) {
	var f loginForm
	if err := c.ShouldBind(&f); err != nil {
		slog.Warn("login form rejected", "error", err, "remote_addr", c.ClientIP())
		s.flash(c, flashError, "Invalid credentials")
		s.render(c, "login.html", nil)
		return
	}

	u, err := s.svc.Authenticate(c.Request.Context(), f.Email, f.Password, model.Role(f.UserType))
	if errors.Is(err, clinic.ErrInvalidCredentials) {
		slog.Warn("login failed", "email", f.Email, "remote_addr", c.ClientIP())
		s.flash(c, flashError, "Invalid credentials")
		s.render(c, "login.html", nil)
		return
	}
	if err != nil {
		s.fail(c, "login", err)
		return
	}

	if err := s.startSession(c, session.FromUser(u)); err != nil {
		s.fail(c, "login", err)
		return
	}
	slog.Info("user login successful", "user_id", u.ID, "remote_addr", c.ClientIP())
	c.Redirect(http.StatusFound, dashboardFor(u.Role))
}

// logout works with or without a session.
func (s *Server) logout(c *gin.Context) {
	s.clearSession(c)
	s.flash(c, flashSuccess, "Logged out successfully.")
	c.Redirect(http.StatusFound, "/")
}

func dashboardFor(role model.Role) string {
	if role == model.RoleDoctor {
		return "/doctor/dashboard"
	}
	return "/patient/dashboard"
}

func (s *Server) fail(c *gin.Context, op string, err error) {
	slog.Error("request failed", "op", op, "error", err, "path", c.Request.URL.Path)
	c.String(http.StatusInternalServerError, "internal error")
}
