package web

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
)

const (
	flashCookie  = "flash"
	flashKey     = "web.flashes"
	flashSuccess = "success"
	flashError   = "error"

	// keeps the cookie well under the 4 KB browsers accept
	maxFlashLen = 256
)

type Flash struct {
	Kind    string `json:"k"`
	Message string `json:"m"`
}

// flash queues a notice for the next rendered page. It lands in a cookie so
// it survives a redirect, and in the context so a page rendered by the same
// request shows it too.
func (s *Server) flash(c *gin.Context, kind, msg string) {
	msg = truncate(msg, maxFlashLen)
	pending := append(s.pending(c), Flash{Kind: kind, Message: msg})
	c.Set(flashKey, pending)

	b, err := json.Marshal(pending)
	if err != nil {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, base64.RawURLEncoding.EncodeToString(b), 0, "/", "", s.cookieSecure, true)
}

// pending is every flash not yet shown: the ones carried in by the request
// cookie plus the ones queued during this request.
func (s *Server) pending(c *gin.Context) []Flash {
	if v, ok := c.Get(flashKey); ok {
		return v.([]Flash)
	}
	var out []Flash
	if raw, err := c.Cookie(flashCookie); err == nil && raw != "" {
		if b, err := base64.RawURLEncoding.DecodeString(raw); err == nil {
			_ = json.Unmarshal(b, &out)
		}
	}
	c.Set(flashKey, out)
	return out
}

// takeFlashes empties the queue.
func (s *Server) takeFlashes(c *gin.Context) []Flash {
	out := s.pending(c)
	if len(out) == 0 {
		return nil
	}
	c.Set(flashKey, []Flash(nil))
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, "", -1, "/", "", s.cookieSecure, true)
	return out
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	// back up to a rune boundary
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "…"
}
