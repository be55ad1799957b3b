package session

import (
	"net/http"
	"strings"
)

// Cookies reads and writes the session cookie.
type Cookies struct {
	Name        string
	ForceSecure bool
}

// Token returns the raw session token from r, or "".
func (c Cookies) Token(r *http.Request) string {
	ck, err := r.Cookie(c.Name)
	if err != nil {
		return ""
	}
	return ck.Value
}

// Set writes token with the signer's lifetime.
func (c Cookies) Set(w http.ResponseWriter, r *http.Request, token string, s *Signer) {
	ck := c.base(r)
	ck.Value = token
	ck.MaxAge = int(s.TTL().Seconds())
	http.SetCookie(w, ck)
}

// Clear expires the session cookie on the client.
func (c Cookies) Clear(w http.ResponseWriter, r *http.Request) {
	ck := c.base(r)
	ck.MaxAge = -1
	http.SetCookie(w, ck)
}

func (c Cookies) base(r *http.Request) *http.Cookie {
	return &http.Cookie{
		Name:     c.Name,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   c.ForceSecure || isSecure(r),
	}
}

func isSecure(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	proto := r.Header.Get("X-Forwarded-Proto")
	if i := strings.IndexByte(proto, ','); i >= 0 {
		proto = proto[:i]
	}
	return strings.EqualFold(strings.TrimSpace(proto), "https")
}
