package middleware

import (
	"context"
	"net/http"

	"artmarket-backend/internal/domain"
	"artmarket-backend/pkg/logger"
	"artmarket-backend/pkg/utils"
)

// AuthMiddleware requires a valid access token and puts the token's user in
// the request context. Claims are trusted as is, so no database hit is made.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := utils.ExtractClaims(r)
		if err != nil {
			if err == utils.ErrNoToken {
				utils.WriteError(w, http.StatusUnauthorized, "Unauthorized: No token provided")
				return
			}
			utils.WriteError(w, http.StatusUnauthorized, "Unauthorized: Invalid token")
			return
		}

		user := &domain.User{
			ID:    claims.UserID,
			Email: claims.Email,
			Role:  claims.Role,
		}

		l := logger.WithContext(r.Context()).With().Str("user_id", user.ID).Logger()
		ctx := logger.NewContext(r.Context(), &l)
		ctx = context.WithValue(ctx, domain.UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CurrentUser returns the authenticated user set by AuthMiddleware.
func CurrentUser(r *http.Request) (*domain.User, bool) {
	user, ok := r.Context().Value(domain.UserContextKey).(*domain.User)
	return user, ok && user != nil
}
