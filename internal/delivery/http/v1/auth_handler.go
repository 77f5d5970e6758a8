package v1

import (
	"net/http"
	"time"

	"artmarket-backend/internal/delivery/http/middleware"
	"artmarket-backend/internal/usecase"
	"artmarket-backend/pkg/apperr"
	"artmarket-backend/pkg/logger"
	"artmarket-backend/pkg/utils"
)

const refreshTokenCookie = "refresh_token"

type AuthHandler struct {
	authUC        *usecase.AuthUsecase
	refreshExpiry time.Duration
	secureCookies bool
}

func NewAuthHandler(authUC *usecase.AuthUsecase, refreshExpiry time.Duration, secureCookies bool) *AuthHandler {
	return &AuthHandler{authUC: authUC, refreshExpiry: refreshExpiry, secureCookies: secureCookies}
}

// POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req usecase.RegisterRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.WriteAppError(w, r, err)
		return
	}

	sess, err := h.authUC.Register(r.Context(), req, r.UserAgent())
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	h.writeSession(w, http.StatusCreated, sess)
}

// POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req usecase.LoginRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.WriteAppError(w, r, err)
		return
	}

	sess, err := h.authUC.Login(r.Context(), req, r.UserAgent())
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	logger.WithContext(r.Context()).Info().Str("user_id", sess.User.ID).Msg("User logged in")
	h.writeSession(w, http.StatusOK, sess)
}

func (h *AuthHandler) writeSession(w http.ResponseWriter, status int, sess *usecase.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshTokenCookie,
		Value:    sess.RefreshToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(h.refreshExpiry.Seconds()),
	})
	utils.WriteJSON(w, status, map[string]interface{}{
		"accessToken": sess.AccessToken,
		"user":        sess.User,
	})
}

// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(refreshTokenCookie)
	if err != nil || cookie.Value == "" {
		utils.WriteAppError(w, r, apperr.Unauthorized("Refresh token missing"))
		return
	}

	token, err := h.authUC.RefreshAccessToken(r.Context(), cookie.Value)
	if err != nil {
		// Clear cookie if invalid
		http.SetCookie(w, &http.Cookie{Name: refreshTokenCookie, MaxAge: -1, Path: "/"})
		utils.WriteAppError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{"accessToken": token})
}

// POST /api/v1/auth/logout. Revocation failures do not block clearing cookies.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(refreshTokenCookie); err == nil && cookie.Value != "" {
		if err := h.authUC.RevokeToken(r.Context(), cookie.Value); err != nil {
			logger.WithContext(r.Context()).Error().Err(err).Msg("Failed to revoke token on logout")
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     utils.AccessTokenCookie,
		MaxAge:   -1,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
	})
	http.SetCookie(w, &http.Cookie{
		Name:   refreshTokenCookie,
		MaxAge: -1,
		Path:   "/",
	})
	w.WriteHeader(http.StatusOK)
}

// GET /api/v1/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	current, ok := middleware.CurrentUser(r)
	if !ok {
		utils.WriteAppError(w, r, apperr.Unauthorized("Unauthorized"))
		return
	}

	user, err := h.authUC.GetUser(r.Context(), current.ID)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, user)
}
