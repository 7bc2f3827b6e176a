// Package cookie persists the client's chosen display currency. The
// resolution logic never sees which adapter produced the raw value; it only
// validates the code against the enabled set.
package cookie

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DefaultCookieName is the wire name of the preference cookie.
const DefaultCookieName = "preferred-currency"

// maxAge is one year, matching how long an explicit choice is remembered.
const maxAge = 365 * 24 * 60 * 60

// PreferenceStore reads and writes the raw preferred-currency value for one
// client. No validation happens at this layer.
type PreferenceStore interface {
	// Get returns the stored code and whether one was present.
	Get() (string, bool)

	// Set stores code with a 1-year lifetime.
	Set(code string)

	// Clear expires the stored value immediately.
	Clear()
}

// GinStore is the server-side adapter: it reads the preference from the
// request cookies and writes Set-Cookie headers on the response.
type GinStore struct {
	c    *gin.Context
	name string
}

var _ PreferenceStore = (*GinStore)(nil)

// NewGinStore returns a store bound to one request/response cycle.
func NewGinStore(c *gin.Context, name string) *GinStore {
	if name == "" {
		name = DefaultCookieName
	}
	return &GinStore{c: c, name: name}
}

func (s *GinStore) Get() (string, bool) {
	value, err := s.c.Cookie(s.name)
	if err != nil || value == "" {
		return "", false
	}
	return value, true
}

func (s *GinStore) Set(code string) {
	http.SetCookie(s.c.Writer, &http.Cookie{
		Name:     s.name,
		Value:    code,
		MaxAge:   maxAge,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
		Secure:   s.secureTransport(),
	})
}

func (s *GinStore) Clear() {
	http.SetCookie(s.c.Writer, &http.Cookie{
		Name:     s.name,
		Value:    "",
		MaxAge:   -1,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
		Secure:   s.secureTransport(),
	})
}

// secureTransport reports whether the request arrived over HTTPS, directly or
// via a terminating proxy.
func (s *GinStore) secureTransport() bool {
	if s.c.Request.TLS != nil {
		return true
	}
	return s.c.GetHeader("X-Forwarded-Proto") == "https"
}

// MemoryStore is an in-process adapter used by tests and non-HTTP callers.
type MemoryStore struct {
	value string
	set   bool
}

var _ PreferenceStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get() (string, bool) {
	return s.value, s.set
}

func (s *MemoryStore) Set(code string) {
	s.value = code
	s.set = true
}

func (s *MemoryStore) Clear() {
	s.value = ""
	s.set = false
}
