package v1

import (
	"net/http"

	"artmarket-backend/internal/delivery/http/middleware"
	"artmarket-backend/internal/usecase"
	"artmarket-backend/pkg/apperr"
	"artmarket-backend/pkg/utils"
)

// SessionHandler serves the visitor's follows, favourites and cart. Every
// route runs behind the session middleware.
type SessionHandler struct {
	sessionUC *usecase.SessionUsecase
}

func NewSessionHandler(uc *usecase.SessionUsecase) *SessionHandler {
	return &SessionHandler{sessionUC: uc}
}

// GET /api/v1/session
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.sessionUC.Snapshot(middleware.SessionID(r)))
}

// POST /api/v1/session/follows/{artistId}
func (h *SessionHandler) ToggleFollow(w http.ResponseWriter, r *http.Request) {
	artistID := r.PathValue("artistId")
	if artistID == "" {
		utils.WriteAppError(w, r, apperr.BadRequest("Artist ID required"))
		return
	}
	followed := h.sessionUC.ToggleFollow(middleware.SessionID(r), artistID)
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"artistId": artistID,
		"followed": followed,
	})
}

// POST /api/v1/session/favourites
func (h *SessionHandler) ToggleFavourite(w http.ResponseWriter, r *http.Request) {
	var req usecase.SelectionRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.WriteAppError(w, r, err)
		return
	}

	key, favourite, err := h.sessionUC.ToggleFavourite(middleware.SessionID(r), req)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"key":       key,
		"favourite": favourite,
	})
}

// POST /api/v1/session/cart
func (h *SessionHandler) ToggleCart(w http.ResponseWriter, r *http.Request) {
	var req usecase.SelectionRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.WriteAppError(w, r, err)
		return
	}

	key, inCart, err := h.sessionUC.ToggleCart(middleware.SessionID(r), req)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"key":    key,
		"inCart": inCart,
	})
}

// POST /api/v1/session/checkout
func (h *SessionHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req usecase.CheckoutRequest
	if r.ContentLength != 0 {
		if err := utils.DecodeAndValidate(r, &req); err != nil {
			utils.WriteAppError(w, r, err)
			return
		}
	}

	handoff, err := h.sessionUC.Checkout(middleware.SessionID(r), req)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, handoff)
}
