package web

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"clinic-scheduler/internal/session"
)

const sessionCookie = "session"

// identify decodes the session cookie, if any, into the request context.
// A cookie that fails to verify is dropped.
func (s *Server) identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(sessionCookie)
		if err != nil || raw == "" {
			c.Next()
			return
		}
		id, err := s.codec.Decode(raw)
		if err != nil {
			slog.Warn("dropping bad session cookie", "error", err, "remote_addr", c.ClientIP())
			s.clearSession(c)
			c.Next()
			return
		}
		c.Request = c.Request.WithContext(session.WithIdentity(c.Request.Context(), id))
		c.Next()
	}
}

// guard runs a gate check before the handler. Denied requests go to the login
// page, with the gate's message when it has one.
func (s *Server) guard(check func(session.Identity) session.Decision) gin.HandlerFunc {
	return func(c *gin.Context) {
		d := check(session.FromContext(c.Request.Context()))
		if d.Allowed {
			c.Next()
			return
		}
		if d.Message != "" {
			s.flash(c, flashError, d.Message)
		}
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
	}
}

func (s *Server) startSession(c *gin.Context, id session.Identity) error {
	tok, err := s.codec.Encode(id)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, tok, 0, "/", "", s.cookieSecure, true)
	return nil
}

func (s *Server) clearSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, "", -1, "/", "", s.cookieSecure, true)
}
