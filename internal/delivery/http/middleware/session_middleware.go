package middleware

import (
	"context"
	"net/http"
	"time"

	"artmarket-backend/internal/domain"
	"artmarket-backend/pkg/logger"

	"github.com/google/uuid"
)

const (
	SessionHeader = "X-Session-ID"
	SessionCookie = "session_id"
)

// NewSessionMiddleware resolves the visitor session from the X-Session-ID
// header or the session_id cookie and issues a new one when both are missing
// or malformed. The id is echoed in both places.
func NewSessionMiddleware(ttl time.Duration, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(SessionHeader)
			if id == "" {
				if c, err := r.Cookie(SessionCookie); err == nil {
					id = c.Value
				}
			}
			if uuid.Validate(id) != nil {
				id = uuid.NewString()
			}

			w.Header().Set(SessionHeader, id)
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				Secure:   secure,
				MaxAge:   int(ttl.Seconds()),
				SameSite: http.SameSiteLaxMode,
			})

			l := logger.WithSessionID(*logger.WithContext(r.Context()), id)
			ctx := logger.NewContext(r.Context(), &l)
			ctx = context.WithValue(ctx, domain.SessionContextKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionID returns the id set by the session middleware.
func SessionID(r *http.Request) string {
	id, _ := r.Context().Value(domain.SessionContextKey).(string)
	return id
}
