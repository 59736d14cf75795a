package middleware

import (
	"net/http"

	"practice-scheduler/config"

	"github.com/gorilla/csrf"
)

// CSRFMiddleware protects the admin forms. Without a key it lets every
// request through.
type CSRFMiddleware struct {
	protect func(http.Handler) http.Handler
	secure  bool
}

func NewCSRFMiddleware(cfg config.SessionConfig) *CSRFMiddleware {
	m := &CSRFMiddleware{secure: cfg.CSRFSecure}
	if len(cfg.CSRFKey) > 0 {
		m.protect = csrf.Protect(cfg.CSRFKey,
			csrf.Secure(cfg.CSRFSecure),
			csrf.Path("/"),
			csrf.FieldName("csrf_token"),
		)
	}
	return m
}

func (m *CSRFMiddleware) Handle(next http.Handler) http.Handler {
	if m.protect == nil {
		return next
	}

	protected := m.protect(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.secure {
			r = csrf.PlaintextHTTPRequest(r)
		}
		protected.ServeHTTP(w, r)
	})
}
