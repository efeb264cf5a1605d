// Package web is the server-rendered HTML surface of the clinic.
package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"clinic-scheduler/internal/clinic"
	"clinic-scheduler/internal/middleware"
	"clinic-scheduler/internal/model"
	"clinic-scheduler/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

type Server struct {
	svc          *clinic.Service
	codec        *session.Codec
	rl           *middleware.RateLimiter
	cookieSecure bool
	proxies      []string
}

func New(svc *clinic.Service, codec *session.Codec, rl *middleware.RateLimiter, cookieSecure bool) *Server {
	return &Server{svc: svc, codec: codec, rl: rl, cookieSecure: cookieSecure}
}

// TrustProxies lists the IPs or CIDRs whose X-Forwarded-For is believed.
// By default no proxy is trusted and the client IP is the peer address.
func (s *Server) TrustProxies(proxies []string) *Server {
	s.proxies = proxies
	return s
}

// Router builds the gin engine with every page route.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	if err := r.SetTrustedProxies(s.proxies); err != nil {
		slog.Error("bad trusted proxies, trusting none", "error", err)
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(gin.Recovery(), requestLog(), s.identify())
	r.SetHTMLTemplate(s.templates())

	r.GET("/healthz", health)
	r.GET("/", s.index)

	r.GET("/register", s.registerForm)
	r.POST("/register", middleware.RateLimitGin(s.rl), s.register)
	r.GET("/login", s.loginForm)
	r.POST("/login", middleware.RateLimitGin(s.rl), s.login)
	r.GET("/logout", s.logout)

	r.GET("/patient/dashboard", s.guard(patientOnly), s.patientDashboard)
	r.GET("/doctor/dashboard", s.guard(doctorOnly), s.doctorDashboard)
	r.GET("/book-appointment", s.guard(patientOnly), s.bookForm)
	r.POST("/book-appointment", s.guard(patientOnly), s.book)
	r.GET("/appointment-history", s.guard(session.RequireAuthenticated), s.history)

	return r
}

func patientOnly(id session.Identity) session.Decision {
	return session.RequireRole(id, model.RolePatient)
}

func doctorOnly(id session.Identity) session.Decision {
	return session.RequireRole(id, model.RoleDoctor)
}

func (s *Server) templates() *template.Template {
	loc := s.svc.Location()
	funcs := template.FuncMap{
		"when": func(t time.Time) string { return t.In(loc).Format("2006-01-02 15:04") },
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}

func health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	default:
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"remote_addr", c.ClientIP(),
		)
	}
}

// render adds the flashes and the current identity to every page.
func (s *Server) render(c *gin.Context, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Flashes"] = s.takeFlashes(c)
	data["User"] = session.FromContext(c.Request.Context())
	c.HTML(http.StatusOK, name, data)
}
